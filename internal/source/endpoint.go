package source

import (
	"net/url"
	"strconv"
)

// Shape is the JSON type expected inside a response envelope.
type Shape int

const (
	ShapeObject Shape = iota
	ShapeList
)

// Endpoint describes one fixed upstream read.
type Endpoint struct {
	// Name identifies the source in logs, errors and cache keys.
	Name string

	// Path is appended to the client's base URL.
	Path  string
	Query url.Values

	// Envelope is the top-level field that wraps the payload.
	Envelope string
	Shape    Shape
}

// Key returns a stable cache key for the endpoint: its name plus the encoded
// query. url.Values.Encode sorts by key, so equal parameter sets give equal keys.
func (e Endpoint) Key() string {
	return e.Name + "?" + e.Query.Encode()
}

// HeroEndpoint is the CMS homepage hero for locale.
func HeroEndpoint(locale string) Endpoint {
	return Endpoint{
		Name:     "hero",
		Path:     "/api/cms/home.hero",
		Query:    url.Values{"locale": {locale}},
		Envelope: "payload",
		Shape:    ShapeObject,
	}
}

// TrailsEndpoint lists the oldest published trails first.
func TrailsEndpoint(limit int) Endpoint {
	return Endpoint{
		Name: "trails",
		Path: "/api/trails",
		Query: url.Values{
			"status": {"published"},
			"sort":   {"createdAt.asc"},
			"limit":  {strconv.Itoa(limit)},
		},
		Envelope: "items",
		Shape:    ShapeList,
	}
}

// ExpeditionsEndpoint lists published expeditions starting in the next 60 days.
// The date window is expressed in the booking service's relative syntax.
func ExpeditionsEndpoint(limit int) Endpoint {
	return Endpoint{
		Name: "expeditions",
		Path: "/api/expeditions",
		Query: url.Values{
			"status":   {"published"},
			"dateFrom": {"today"},
			"dateTo":   {"+60d"},
			"limit":    {strconv.Itoa(limit)},
		},
		Envelope: "items",
		Shape:    ShapeList,
	}
}
