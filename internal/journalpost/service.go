package journalpost

import (
	"context"
	"fmt"
	"log/slog"

	sedmodels "journalforing/internal/sed/models"
	"journalforing/pkg/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Klient is the archive's HTTP API.
type Klient interface {
	// Opprett submits a journalpost. With forsoekFerdigstill the archive
	// finalizes immediately when the request is complete enough.
	Opprett(ctx context.Context, req OpprettJournalpostRequest, forsoekFerdigstill bool) (*OpprettJournalpostResponse, error)

	// OppdaterDistribusjonsinfo marks an already-finalized outbound
	// journalpost as dispatched.
	OppdaterDistribusjonsinfo(ctx context.Context, journalpostID string) error

	// SettStatusAvbrutt marks the journalpost aborted.
	SettStatusAvbrutt(ctx context.Context, journalpostID string) error
}

// Service wraps the archive client with the submission rules the
// orchestrator depends on.
type Service struct {
	klient Klient
	logger *slog.Logger
}

func NewService(klient Klient, logger *slog.Logger) *Service {
	return &Service{klient: klient, logger: logger}
}

// Opprett submits the request. Finalization is only attempted when the
// routing decision was automatic filing.
func (s *Service) Opprett(ctx context.Context, req OpprettJournalpostRequest) (*OpprettJournalpostResponse, error) {
	forsoekFerdigstill := req.JournalfoerendeEnhet == domain.EnhetAutomatiskJournalforing
	resp, err := s.klient.Opprett(ctx, req, forsoekFerdigstill)
	if err != nil {
		return nil, fmt.Errorf("opprett journalpost: %w", err)
	}
	s.logger.InfoContext(ctx, "journalpost opprettet",
		"journalpostId", resp.JournalpostID,
		"ferdigstilt", resp.Ferdigstilt,
		"enhet", req.JournalfoerendeEnhet,
		"tema", req.Tema,
	)
	return resp, nil
}

// VurderSettAvbrutt applies the archive's abort rule: only an outbound
// document without a resolvable user is marked aborted. Reports whether the
// journalpost was aborted.
func (s *Service) VurderSettAvbrutt(ctx context.Context, brukerID string, hendelseType sedmodels.HendelseType, journalpostID string) (bool, error) {
	if hendelseType != sedmodels.HendelseSendt || brukerID != "" || journalpostID == "" {
		return false, nil
	}
	if err := s.klient.SettStatusAvbrutt(ctx, journalpostID); err != nil {
		return false, fmt.Errorf("sett status avbrutt %s: %w", journalpostID, err)
	}
	s.logger.InfoContext(ctx, "journalpost satt til avbrutt", "journalpostId", journalpostID)
	return true, nil
}

// OppdaterDistribusjonsinfo finalizes distribution info for an outbound,
// already-finalized journalpost.
func (s *Service) OppdaterDistribusjonsinfo(ctx context.Context, journalpostID string) error {
	if err := s.klient.OppdaterDistribusjonsinfo(ctx, journalpostID); err != nil {
		return fmt.Errorf("oppdater distribusjonsinfo %s: %w", journalpostID, err)
	}
	return nil
}
