package journalforing

import (
	"context"

	"journalforing/internal/gjenny"
	"journalforing/internal/journalpost"
	"journalforing/internal/oppgave"
	"journalforing/internal/person"
	"journalforing/internal/routing"
	"journalforing/internal/sak"
	sedmodels "journalforing/internal/sed/models"
	"journalforing/internal/statistikk"
	"journalforing/pkg/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

// Arkiv is the archive submission surface the orchestrator drives.
type Arkiv interface {
	Opprett(ctx context.Context, req journalpost.OpprettJournalpostRequest) (*journalpost.OpprettJournalpostResponse, error)
	VurderSettAvbrutt(ctx context.Context, brukerID string, hendelseType sedmodels.HendelseType, journalpostID string) (bool, error)
	OppdaterDistribusjonsinfo(ctx context.Context, journalpostID string) error
}

// EnhetVelger resolves the owning organizational unit.
type EnhetVelger interface {
	Enhet(ctx context.Context, in routing.RouteInput) (domain.Enhet, error)
}

// GjennyOppslag is the combined live-lookup and mirrored-cache surface for
// bereavement cases.
type GjennyOppslag interface {
	// HentSak queries Gjenny by national case id; sentinel.ErrNotFound when
	// no record exists.
	HentSak(ctx context.Context, sakID string) (*gjenny.Sak, error)
	// Finnes reports whether a mirrored payload exists for the RINA case.
	Finnes(ctx context.Context, rinaSakID string) (bool, error)
	// HentFraCache fetches the mirrored payload for the RINA case.
	HentFraCache(ctx context.Context, rinaSakID string) (*gjenny.Sak, error)
}

// Oppgaver emits tasks on the main processing path.
type Oppgaver interface {
	Opprett(ctx context.Context, m oppgave.Melding) error
}

// Krav triggers case initiation for inbound claim documents.
type Krav interface {
	VurderKrav(ctx context.Context, hendelse sedmodels.SedHendelse, eksisterendeSak *sak.Sak, kravAlder, kravUfore bool) error
}

// Pending is the deferred-user store/reconcile surface.
type Pending interface {
	Lagre(ctx context.Context, req journalpost.OpprettJournalpostRequest, hendelse sedmodels.SedHendelse, hendelseType sedmodels.HendelseType) error
	Gjenoppta(ctx context.Context, rinaSakID string, p *person.Person, tema domain.Tema, enhet domain.Enhet) error
}

// Statistikk appends outcome events to the statistics outbox.
type Statistikk interface {
	Append(ctx context.Context, m statistikk.Melding) error
}
