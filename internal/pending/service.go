package pending

import (
	"context"
	"fmt"
	"log/slog"

	"journalforing/internal/journalpost"
	"journalforing/internal/oppgave"
	pendingmetrics "journalforing/internal/pending/metrics"
	"journalforing/internal/person"
	sedmodels "journalforing/internal/sed/models"
	"journalforing/pkg/domain"
)

// Arkiv is the archive submission port the reconciliation path uses.
type Arkiv interface {
	Opprett(ctx context.Context, req journalpost.OpprettJournalpostRequest) (*journalpost.OpprettJournalpostResponse, error)
}

// Oppgaver emits the deferred task after a record is reconciled.
type Oppgaver interface {
	Opprett(ctx context.Context, m oppgave.Melding) error
}

// Service implements the deferred-user store/reconcile pair.
type Service struct {
	store    Store
	arkiv    Arkiv
	oppgaver Oppgaver
	logger   *slog.Logger
	metrics  *pendingmetrics.Metrics
}

func NewService(store Store, arkiv Arkiv, oppgaver Oppgaver, logger *slog.Logger, metrics *pendingmetrics.Metrics) *Service {
	return &Service{
		store:    store,
		arkiv:    arkiv,
		oppgaver: oppgaver,
		logger:   logger,
		metrics:  metrics,
	}
}

// Lagre persists an archival request that had no resolvable user, keyed by
// case id. A storage failure is fatal for the event: the transport must
// redeliver.
func (s *Service) Lagre(ctx context.Context, req journalpost.OpprettJournalpostRequest, hendelse sedmodels.SedHendelse, hendelseType sedmodels.HendelseType) error {
	key := Key(hendelse.RinaSakID, hendelse.RinaDokumentID)
	record := Record{
		Journalpost:  req,
		Hendelse:     hendelse,
		HendelseType: hendelseType,
	}
	if err := s.store.Save(ctx, key, record); err != nil {
		return fmt.Errorf("lagre journalpost uten bruker: %w", err)
	}
	s.metrics.IncStored()
	s.logger.InfoContext(ctx, "journalpost lagret uten bruker",
		"rinaSakId", hendelse.RinaSakID,
		"rinaDokumentId", hendelse.RinaDokumentID,
	)
	return nil
}

// Gjenoppta reconciles every pending record for the case with the newly
// resolved person, tema and unit. A failure on one record is logged and
// skipped; sibling records still reconcile.
func (s *Service) Gjenoppta(ctx context.Context, rinaSakID string, p *person.Person, tema domain.Tema, enhet domain.Enhet) error {
	keys, err := s.store.ListKeys(ctx, rinaSakID)
	if err != nil {
		return fmt.Errorf("list pending for %s: %w", rinaSakID, err)
	}

	for _, key := range keys {
		if err := s.gjenopptaEn(ctx, key, p, tema, enhet); err != nil {
			s.metrics.IncReconcileFailed()
			s.logger.ErrorContext(ctx, "reconcile of pending journalpost failed, continuing with siblings",
				"key", key,
				"rinaSakId", rinaSakID,
				"error", err,
			)
			continue
		}
		s.metrics.IncReconciled()
	}
	return nil
}

func (s *Service) gjenopptaEn(ctx context.Context, key string, p *person.Person, tema domain.Tema, enhet domain.Enhet) error {
	record, err := s.store.Get(ctx, key)
	if err != nil {
		return err
	}

	// Merge into a copy: only topic, user and unit change, everything else
	// stays as stored.
	merged := record.Journalpost
	merged.Tema = tema
	merged.Behandlingstema = journalpost.BehandlingstemaFor(tema)
	merged.JournalfoerendeEnhet = enhet
	merged.Bruker = &journalpost.Bruker{ID: p.Fnr, IDType: "FNR"}

	resp, err := s.arkiv.Opprett(ctx, merged)
	if err != nil {
		return err
	}

	oppgaveType := oppgave.TypeJournalforing
	hendelseType := sedmodels.HendelseSendt
	if record.HendelseType == sedmodels.HendelseMottatt {
		oppgaveType = oppgave.TypeBehandleSed
		hendelseType = sedmodels.HendelseMottatt
	}
	if err := s.oppgaver.Opprett(ctx, oppgave.Melding{
		SedType:         record.Hendelse.SedType,
		JournalpostID:   resp.JournalpostID,
		TildeltEnhetsnr: enhet,
		AktoerID:        p.AktoerID,
		RinaSakID:       record.Hendelse.RinaSakID,
		HendelseType:    hendelseType,
		OppgaveType:     oppgaveType,
		Tema:            tema,
	}); err != nil {
		return err
	}

	return s.store.Delete(ctx, key)
}
