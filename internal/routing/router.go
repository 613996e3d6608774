// Package routing decides which organizational unit owns the task produced
// by a SED event. Identity mismatch always defeats automatic routing; the
// primary arbeidsfordeling router is authoritative only when it resolves a
// concrete unit, and abstentions fall through to age/country or tema rules.
package routing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"journalforing/internal/identity"
	"journalforing/internal/person"
	"journalforing/internal/sak"
	sedmodels "journalforing/internal/sed/models"
	"journalforing/internal/tema"
	"journalforing/pkg/domain"
)

// ArbeidsfordelingRequest is the primary router's input.
type ArbeidsfordelingRequest struct {
	Person       *person.Person
	Foedselsdato time.Time
	Sakstype     *sak.Sakstype
	Hendelse     sedmodels.SedHendelse
	HendelseType sedmodels.HendelseType
	Sak          *sak.Sak
	Diskresjon   bool
	Tema         domain.Tema
}

// ArbeidsfordelingClient is the primary geography/case-type router.
// EnhetIDOgFordeling is its abstention signal.
type ArbeidsfordelingClient interface {
	HentEnhet(ctx context.Context, req ArbeidsfordelingRequest) (domain.Enhet, error)
}

// RouteInput carries everything the unit decision depends on.
type RouteInput struct {
	// FoedselsdatoFraSed is the birth date as stated on the document, nil
	// when the document carries none.
	FoedselsdatoFraSed *time.Time
	Person             *person.Person
	Hendelse           sedmodels.SedHendelse
	HendelseType       sedmodels.HendelseType
	Sak                *sak.Sak
	Diskresjon         bool
	AntallPersoner     int
	Dokument           sedmodels.Document
	Tema               domain.Tema
}

// Router resolves the owning unit. Deterministic for identical inputs and
// identical collaborator answers.
type Router struct {
	arbeidsfordeling ArbeidsfordelingClient
	behandlingstema  tema.BehandlingstemaClient
	logger           *slog.Logger
}

func NewRouter(arbeidsfordeling ArbeidsfordelingClient, behandlingstema tema.BehandlingstemaClient, logger *slog.Logger) *Router {
	return &Router{
		arbeidsfordeling: arbeidsfordeling,
		behandlingstema:  behandlingstema,
		logger:           logger,
	}
}

// Enhet decides the owning organizational unit for the event.
func (r *Router) Enhet(ctx context.Context, in RouteInput) (domain.Enhet, error) {
	// Hard gate: identity that cannot be confirmed goes to manual triage
	// regardless of every other input.
	if !r.identBekreftet(in) {
		r.logger.InfoContext(ctx, "identity not confirmed, routing to manual triage",
			"rinaSakId", in.Hendelse.RinaSakID,
			"sedType", in.Hendelse.SedType,
		)
		return domain.EnhetIDOgFordeling, nil
	}

	req := ArbeidsfordelingRequest{
		Person:       in.Person,
		Foedselsdato: *in.FoedselsdatoFraSed,
		Hendelse:     in.Hendelse,
		HendelseType: in.HendelseType,
		Sak:          in.Sak,
		Diskresjon:   in.Diskresjon,
		Tema:         in.Tema,
	}
	if in.Sak != nil {
		req.Sakstype = &in.Sak.Sakstype
	}
	enhet, err := r.arbeidsfordeling.HentEnhet(ctx, req)
	if err != nil {
		return "", fmt.Errorf("hent arbeidsfordeling: %w", err)
	}
	if enhet != domain.EnhetIDOgFordeling {
		return enhet, nil
	}

	// The primary router abstained. Multi-person case families fall back on
	// age and residency alone; everything else falls back on tema.
	switch in.Hendelse.BucType {
	case sedmodels.PBuc05, sedmodels.PBuc10:
		return enhetFraAlderOgLand(*in.FoedselsdatoFraSed, in.Person, in.AntallPersoner, time.Now()), nil
	}

	return tema.EnhetForBehandlingstema(ctx, r.behandlingstema, tema.ClassifyInput{
		Hendelse:       in.Hendelse,
		AntallPersoner: in.AntallPersoner,
		Sak:            in.Sak,
		Dokument:       in.Dokument,
	}, in.Tema, in.Person)
}

// identBekreftet applies the hard gate: the document must carry a birth
// date, the person's ident must encode one, and the two must agree.
func (r *Router) identBekreftet(in RouteInput) bool {
	if in.FoedselsdatoFraSed == nil {
		return false
	}
	if in.Person == nil {
		return false
	}
	if identity.ErNpid(in.Person.Fnr) {
		return false
	}
	if in.Person.Foedselsdato == nil {
		return false
	}
	doc := *in.FoedselsdatoFraSed
	reg := *in.Person.Foedselsdato
	return doc.Year() == reg.Year() && doc.Month() == reg.Month() && doc.Day() == reg.Day()
}

// enhetFraAlderOgLand is the age/country fallback for the multi-person case
// families. Age brackets are domain constants: >61 pensioner, <18 child,
// [19,61] disability-plausible, exactly 18 unresolvable.
func enhetFraAlderOgLand(foedselsdato time.Time, p *person.Person, antallPersoner int, now time.Time) domain.Enhet {
	alder := identity.AlderFraDato(foedselsdato, now)
	bosattNorge := p.BosattNorge()

	switch {
	case alder > 61 || alder < 18:
		if bosattNorge {
			return domain.EnhetNFPUtlandAalesund
		}
		return domain.EnhetPensjonUtland

	case alder >= 19 && alder <= 61:
		if antallPersoner > 1 {
			// Multi-person cases in the disability bracket are inherently
			// ambiguous and need manual triage.
			return domain.EnhetIDOgFordeling
		}
		if bosattNorge {
			return domain.EnhetUforeUtlandstilsnitt
		}
		return domain.EnhetUforeUtland

	default: // age exactly 18
		return domain.EnhetIDOgFordeling
	}
}
