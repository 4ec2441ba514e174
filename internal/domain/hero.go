// Package domain contains the records read from upstream services and the
// view model handed to the rendering layer.
// This package has no dependencies on other internal packages.
package domain

// Link is a call-to-action: a label and the target it navigates to.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Image references a remote image and its alternative text.
// Alt is empty when the upstream omitted it.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// HeroContent is the CMS-managed hero block of the homepage.
// Optional blocks are nil when the CMS omitted them.
type HeroContent struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	CTAPrimary   *Link  `json:"ctaPrimary,omitempty"`
	CTASecondary *Link  `json:"ctaSecondary,omitempty"`
	Background   *Image `json:"background,omitempty"`
}
