// Package tema decides which administrative tema a SED event belongs to.
// The rule set is a fixed decision table over case family, case type, age
// bracket and person count; every branch is kept explicit so it stays
// unit-testable in isolation.
package tema

import (
	"journalforing/internal/gjenny"
	"journalforing/internal/sak"
	sedmodels "journalforing/internal/sed/models"
	"journalforing/pkg/domain"
)

// Disability-plausible working-age bracket. Domain constants taken as given;
// the bounds are inclusive.
const (
	uforeAlderMin = 18
	uforeAlderMax = 61
)

// ClassifyInput carries everything the tema decision depends on. Alder is
// nil when no age could be resolved; Sak, Dokument and GjennySak are nil
// when absent.
type ClassifyInput struct {
	Hendelse       sedmodels.SedHendelse
	Alder          *int
	AntallPersoner int
	Sak            *sak.Sak
	Dokument       sedmodels.Document
	GjennySak      *gjenny.Sak
}

// Classifier resolves the tema for a SED event. Pure: no I/O.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Tema applies the classification rules in priority order.
func (c *Classifier) Tema(in ClassifyInput) domain.Tema {
	// Unknown age: only an explicit disability signal can override PEN.
	if in.Alder == nil {
		if in.Hendelse.BucType == sedmodels.PBuc03 || in.Sak.ErUforep() || dokumentErUfore(in.Dokument) {
			return domain.TemaUforetrygd
		}
		return domain.TemaPensjon
	}

	// A bereavement case in Gjenny overrides ordinary pension routing.
	if in.GjennySak != nil {
		if in.GjennySak.SakType == gjenny.SakBarnepensjon {
			return domain.TemaBarnepensjon
		}
		return domain.TemaOmstilling
	}

	// Single applicant inside the disability-plausible working-age bracket.
	bracket := in.AntallPersoner == 1 && *in.Alder >= uforeAlderMin && *in.Alder <= uforeAlderMax

	switch in.Hendelse.BucType {
	case sedmodels.PBuc03:
		return domain.TemaUforetrygd

	case sedmodels.PBuc05:
		if dokumentErUfore(in.Dokument) || in.Sak.ErUforep() || bracket {
			return domain.TemaUforetrygd
		}
		return domain.TemaPensjon

	case sedmodels.PBuc06, sedmodels.PBuc07, sedmodels.PBuc08:
		if in.Sak.ErUforep() || bracket {
			return domain.TemaUforetrygd
		}
		return domain.TemaPensjon

	case sedmodels.PBuc09, sedmodels.PBuc10, sedmodels.HBuc07:
		if (bracket || in.Sak.ErUforep()) && in.AntallPersoner == 1 {
			return domain.TemaUforetrygd
		}
		return domain.TemaPensjon

	default:
		if in.Sak.ErUforep() && bracket {
			return domain.TemaUforetrygd
		}
		return domain.TemaPensjon
	}
}

// dokumentErUfore queries the disability-indicator capability. Content types
// without the capability never indicate disability.
func dokumentErUfore(doc sedmodels.Document) bool {
	if doc == nil {
		return false
	}
	indikator, ok := doc.(sedmodels.HarUforeIndikator)
	return ok && indikator.ErUforepensjon()
}
