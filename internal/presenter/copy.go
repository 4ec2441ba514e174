// Package presenter turns upstream records into the render-ready view model.
// Nothing here performs I/O; every function is a pure mapping.
package presenter

import "github.com/trilhabr/home-aggregator/internal/domain"

// HeroDefaults is the copy shown when the CMS hero is unavailable or partial.
type HeroDefaults struct {
	Title         string
	Subtitle      string
	Primary       domain.Link
	Secondary     domain.Link
	BackgroundAlt string
}

// SectionCopy is the static text around a list section.
type SectionCopy struct {
	Title        string
	Subtitle     string
	Href         string
	EmptyMessage string
}

// Copy is every piece of fixed display text the presenter uses. It is
// supplied at startup; see DefaultCopy.
type Copy struct {
	Hero             HeroDefaults
	TrailPlaceholder string
	Trails           SectionCopy
	Expeditions      SectionCopy
	GuideCallout     domain.Callout

	// TrailHrefPrefix and ExpeditionHrefPrefix are joined with a record id.
	TrailHrefPrefix      string
	ExpeditionHrefPrefix string

	// PriceSuffix follows the formatted price, e.g. "/ pessoa".
	PriceSuffix string

	// SlotsFormat receives the available slot count.
	SlotsFormat  string
	SoldOutLabel string
}

// DefaultCopy returns the Brazilian Portuguese homepage copy.
func DefaultCopy() Copy {
	return Copy{
		Hero: HeroDefaults{
			Title:         "Descubra trilhas reais, reserve expedições com guias verificados",
			Subtitle:      "Conectamos você a parques e montanhas do Brasil com segurança, transparência e suporte.",
			Primary:       domain.Link{Label: "Explorar trilhas", Href: "/trilhas"},
			Secondary:     domain.Link{Label: "Organizar expedições", Href: "/guias"},
			BackgroundAlt: "Paisagem de montanha",
		},
		TrailPlaceholder: "/images/placeholder-trail.jpg",
		Trails: SectionCopy{
			Title:        "Trilhas em destaque",
			Subtitle:     "Seleção dinâmica baseada no banco (ordem: criadas primeiro ou curadoria CMS).",
			Href:         "/trilhas",
			EmptyMessage: "Sem trilhas disponíveis no momento.",
		},
		Expeditions: SectionCopy{
			Title:        "Próximas expedições",
			Subtitle:     "Listadas pelo período (próximos 60 dias), 100% do banco.",
			Href:         "/expedicoes",
			EmptyMessage: "Sem expedições publicadas no período.",
		},
		GuideCallout: domain.Callout{
			Title: "É guia verificado no Cadastur?",
			Body:  "Publique expedições, gerencie vagas e receba pagamentos com transparência.",
			CTA:   domain.Link{Label: "Começar agora", Href: "/guias"},
		},
		TrailHrefPrefix:      "/trilhas/",
		ExpeditionHrefPrefix: "/expedicoes/",
		PriceSuffix:          "/ pessoa",
		SlotsFormat:          "%d vagas",
		SoldOutLabel:         "Esgotado",
	}
}
