package journalforing

import (
	"context"
	"errors"

	"journalforing/internal/gjenny"
	"journalforing/internal/person"
	"journalforing/internal/sak"
	sedmodels "journalforing/internal/sed/models"
	"journalforing/pkg/platform/sentinel"
)

// hentGjennySak resolves a bereavement record for the event: first a live
// lookup on the national case id the document carries, then the mirrored
// blob keyed by RINA case id. Lookup failures degrade to "no record"; the
// record only ever upgrades routing, never blocks it.
func (s *Service) hentGjennySak(ctx context.Context, hendelse sedmodels.SedHendelse, dokument sedmodels.Document) *gjenny.Sak {
	if dokument != nil {
		if sakID := dokument.NavSaksnummer(); sakID != "" {
			gs, err := s.gjenny.HentSak(ctx, sakID)
			if err == nil {
				return gs
			}
			if !errors.Is(err, sentinel.ErrNotFound) {
				s.logger.WarnContext(ctx, "gjenny-oppslag feilet, fortsetter uten",
					"sakId", sakID, "error", err)
			}
		}
	}

	finnes, err := s.gjenny.Finnes(ctx, hendelse.RinaSakID)
	if err != nil {
		s.logger.WarnContext(ctx, "gjenny-cache utilgjengelig, fortsetter uten",
			"rinaSakId", hendelse.RinaSakID, "error", err)
		return nil
	}
	if !finnes {
		return nil
	}
	gs, err := s.gjenny.HentFraCache(ctx, hendelse.RinaSakID)
	if err != nil {
		s.logger.WarnContext(ctx, "gjenny-cache lesing feilet, fortsetter uten",
			"rinaSakId", hendelse.RinaSakID, "error", err)
		return nil
	}
	return gs
}

// hentSak resolves the national case id the journalpost should link to.
// Candidates are tried in order; the first usable one wins, and none at all
// leaves the journalpost unlinked for a case worker to attach.
func (s *Service) hentSak(ctx context.Context, hendelse sedmodels.SedHendelse, p *person.Person, sakInformasjon *sak.Sak, dokument sedmodels.Document, gjennySak *gjenny.Sak) string {
	sakIDFraDokument := ""
	if dokument != nil {
		sakIDFraDokument = dokument.NavSaksnummer()
	}

	// A candidate quoting the RINA case id back as a national case id is a
	// self-reference, not a linkage. One self-referencing candidate poisons
	// the whole resolution: falling through to a weaker candidate would link
	// a case the event never named.
	kandidater := []string{sakIDFraDokument}
	if sakInformasjon != nil {
		kandidater = append(kandidater, sakInformasjon.SakID)
	}
	if gjennySak != nil {
		kandidater = append(kandidater, gjennySak.SakID)
	}
	for _, kandidat := range kandidater {
		if kandidat != "" && kandidat == hendelse.RinaSakID {
			return ""
		}
	}

	// No resolved person means no linkage: attaching a case to an unknown
	// user would finalize against the wrong identity.
	if p == nil {
		return ""
	}

	if gjennySak != nil && gjennySak.SakID != "" {
		return gjennySak.SakID
	}
	if sakInformasjon != nil && sak.GyldigSaksnummer(sakInformasjon.SakID) {
		return sakInformasjon.SakID
	}
	if sak.GyldigSaksnummer(sakIDFraDokument) {
		return sakIDFraDokument
	}

	s.logger.InfoContext(ctx, "ingen gyldig saksreferanse funnet, journalpost opprettes uten sak",
		"rinaSakId", hendelse.RinaSakID)
	return ""
}
