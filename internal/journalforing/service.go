// Package journalforing orchestrates the main processing path for one SED
// event: tema classification, unit routing, archival, post-archival followup
// and case initiation. The package owns sequencing and failure policy; every
// decision rule lives in the package that owns it.
package journalforing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"journalforing/internal/gjenny"
	"journalforing/internal/identity"
	"journalforing/internal/journalforing/metrics"
	"journalforing/internal/journalpost"
	"journalforing/internal/krav"
	"journalforing/internal/oppgave"
	"journalforing/internal/person"
	"journalforing/internal/routing"
	"journalforing/internal/sak"
	sedmodels "journalforing/internal/sed/models"
	"journalforing/internal/statistikk"
	"journalforing/internal/tema"
	"journalforing/pkg/domain"
)

// gjennyAldersgrense is the retirement-age bound in the manual-handling
// guard for outbound bereavement documents.
const gjennyAldersgrense = 67

// JournalforRequest carries one fully resolved SED event. Person is nil when
// no identity could be confirmed; FoedselsdatoFraSed is nil when the
// document states no birth date; Dokument is nil when the document payload
// could not be fetched or parsed.
type JournalforRequest struct {
	Hendelse           sedmodels.SedHendelse
	HendelseType       sedmodels.HendelseType
	Person             *person.Person
	FoedselsdatoFraSed *time.Time
	SakInformasjon     *sak.Sak
	Dokument           sedmodels.Document
	Diskresjon         bool
	AntallPersoner     int
	Saksbehandler      string
}

// Service is the orchestrator. Side-effecting and not idempotent across the
// archive boundary; the transport must only retry on returned error.
type Service struct {
	arkiv         Arkiv
	ruter         EnhetVelger
	klassifiserer *tema.Classifier
	gjenny        GjennyOppslag
	oppgaver      Oppgaver
	krav          Krav
	pending       Pending
	statistikk    Statistikk
	logger        *slog.Logger
	metrics       *metrics.Metrics
	tracer        trace.Tracer
	now           func() time.Time
}

func NewService(
	arkiv Arkiv,
	ruter EnhetVelger,
	gjenny GjennyOppslag,
	oppgaver Oppgaver,
	kravService Krav,
	pending Pending,
	statistikk Statistikk,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		arkiv:         arkiv,
		ruter:         ruter,
		klassifiserer: tema.NewClassifier(),
		gjenny:        gjenny,
		oppgaver:      oppgaver,
		krav:          kravService,
		pending:       pending,
		statistikk:    statistikk,
		logger:        logger,
		metrics:       m,
		tracer:        otel.Tracer("journalforing"),
		now:           time.Now,
	}
}

// Journalfor runs the full pipeline for one event. Any returned error means
// the event must be redelivered; side effects already taken (an archived
// journalpost, an emitted task) are not rolled back.
func (s *Service) Journalfor(ctx context.Context, req JournalforRequest) (err error) {
	ctx, span := s.tracer.Start(ctx, "Journalfor", trace.WithAttributes(
		attribute.String("rina.sak.id", req.Hendelse.RinaSakID),
		attribute.String("sed.type", string(req.Hendelse.SedType)),
		attribute.String("buc.type", string(req.Hendelse.BucType)),
		attribute.String("hendelse.type", string(req.HendelseType)),
	))
	defer span.End()

	start := s.now()
	defer func() {
		s.metrics.ObserveVarighet(s.now().Sub(start))
		if err != nil {
			s.metrics.IncFeilet()
			span.RecordError(err)
			span.SetStatus(codes.Error, "journalforing feilet")
		}
	}()

	s.logger.InfoContext(ctx, "journalforer sed-hendelse",
		"rinaSakId", req.Hendelse.RinaSakID,
		"rinaDokumentId", req.Hendelse.RinaDokumentID,
		"sedType", req.Hendelse.SedType,
		"bucType", req.Hendelse.BucType,
		"hendelseType", req.HendelseType,
		"identifisertPerson", req.Person != nil,
		"saksbehandler", req.Saksbehandler)

	alder := s.alder(req)
	gjennySak := s.hentGjennySak(ctx, req.Hendelse, req.Dokument)

	t := s.klassifiserer.Tema(tema.ClassifyInput{
		Hendelse:       req.Hendelse,
		Alder:          alder,
		AntallPersoner: req.AntallPersoner,
		Sak:            req.SakInformasjon,
		Dokument:       req.Dokument,
		GjennySak:      gjennySak,
	})

	enhet, err := s.ruter.Enhet(ctx, routing.RouteInput{
		FoedselsdatoFraSed: req.FoedselsdatoFraSed,
		Person:             req.Person,
		Hendelse:           req.Hendelse,
		HendelseType:       req.HendelseType,
		Sak:                req.SakInformasjon,
		Diskresjon:         req.Diskresjon,
		AntallPersoner:     req.AntallPersoner,
		Dokument:           req.Dokument,
		Tema:               t,
	})
	if err != nil {
		return fmt.Errorf("bestem enhet: %w", err)
	}

	sakID := s.hentSak(ctx, req.Hendelse, req.Person, req.SakInformasjon, req.Dokument, gjennySak)

	jpReq := journalpost.Build(journalpost.BuildInput{
		Hendelse:     req.Hendelse,
		HendelseType: req.HendelseType,
		Person:       req.Person,
		Enhet:        enhet,
		Tema:         t,
		SakID:        sakID,
		Avsender:     avsenderMottaker(req.Hendelse, req.HendelseType),
	})

	resp, err := s.arkiv.Opprett(ctx, jpReq)
	if err != nil {
		return fmt.Errorf("opprett journalpost: %w", err)
	}
	span.SetAttributes(
		attribute.String("journalpost.id", resp.JournalpostID),
		attribute.Bool("journalpost.ferdigstilt", resp.Ferdigstilt),
		attribute.String("tema", string(t)),
		attribute.String("enhet", string(enhet)),
	)

	if err := s.etterbehandle(ctx, req, jpReq, resp, t, enhet, alder, gjennySak); err != nil {
		return err
	}

	s.lagreStatistikk(ctx, req, enhet)
	s.metrics.IncBehandlet(string(t), string(enhet))
	s.logger.InfoContext(ctx, "sed-hendelse journalfort",
		"rinaSakId", req.Hendelse.RinaSakID,
		"journalpostId", resp.JournalpostID,
		"tema", t,
		"enhet", enhet,
		"ferdigstilt", resp.Ferdigstilt)
	return nil
}

// etterbehandle runs every step after archival: abort evaluation,
// distribution finalization, task emission, deferred-user bookkeeping and
// case initiation.
func (s *Service) etterbehandle(
	ctx context.Context,
	req JournalforRequest,
	jpReq journalpost.OpprettJournalpostRequest,
	resp *journalpost.OpprettJournalpostResponse,
	t domain.Tema,
	enhet domain.Enhet,
	alder *int,
	gjennySak *gjenny.Sak,
) error {
	brukerID := ""
	if jpReq.Bruker != nil {
		brukerID = jpReq.Bruker.ID
	}

	avbrutt, err := s.arkiv.VurderSettAvbrutt(ctx, brukerID, req.HendelseType, resp.JournalpostID)
	if err != nil {
		return fmt.Errorf("vurder avbrutt: %w", err)
	}
	if avbrutt {
		s.metrics.IncAvbrutt()
	}

	// Deferred-user bookkeeping. An aborted journalpost is dead and never
	// reconciled; everything else either waits for a user or releases the
	// case's waiting records now that one exists.
	switch {
	case req.Person == nil && !avbrutt:
		if err := s.pending.Lagre(ctx, jpReq, req.Hendelse, req.HendelseType); err != nil {
			return err
		}
	case req.Person != nil:
		if err := s.pending.Gjenoppta(ctx, req.Hendelse.RinaSakID, req.Person, t, enhet); err != nil {
			return err
		}
	}

	if resp.Ferdigstilt && req.HendelseType == sedmodels.HendelseSendt {
		if err := s.arkiv.OppdaterDistribusjonsinfo(ctx, resp.JournalpostID); err != nil {
			return fmt.Errorf("oppdater distribusjonsinfo: %w", err)
		}
	}

	switch {
	case !resp.Ferdigstilt && !avbrutt:
		if req.Hendelse.BucType == sedmodels.PBuc02 &&
			req.HendelseType == sedmodels.HendelseSendt &&
			alder != nil && *alder > gjennyAldersgrense &&
			gjennySak != nil {
			return &AvbruttMedGjennySakError{
				RinaSakID:     req.Hendelse.RinaSakID,
				JournalpostID: resp.JournalpostID,
			}
		}
		if err := s.opprettOppgave(ctx, req, resp.JournalpostID, oppgave.TypeJournalforing, t, enhet); err != nil {
			return err
		}
	case resp.Ferdigstilt && req.HendelseType == sedmodels.HendelseMottatt:
		if err := s.opprettOppgave(ctx, req, resp.JournalpostID, oppgave.TypeBehandleSed, t, enhet); err != nil {
			return err
		}
		kravAlder, kravUfore := kravFlagg(req.Hendelse, req.Dokument)
		if err := s.krav.VurderKrav(ctx, req.Hendelse, req.SakInformasjon, kravAlder, kravUfore); err != nil {
			return fmt.Errorf("vurder krav: %w", err)
		}
	default:
		s.logger.InfoContext(ctx, "ingen oppgave opprettet for journalposten",
			"journalpostId", resp.JournalpostID,
			"rinaSakId", req.Hendelse.RinaSakID,
			"ferdigstilt", resp.Ferdigstilt,
			"avbrutt", avbrutt,
			"hendelseType", req.HendelseType)
	}

	return nil
}

func (s *Service) opprettOppgave(ctx context.Context, req JournalforRequest, journalpostID string, oppgaveType oppgave.Type, t domain.Tema, enhet domain.Enhet) error {
	m := oppgave.Melding{
		SedType:         req.Hendelse.SedType,
		JournalpostID:   journalpostID,
		TildeltEnhetsnr: enhet,
		RinaSakID:       req.Hendelse.RinaSakID,
		HendelseType:    req.HendelseType,
		OppgaveType:     oppgaveType,
		Tema:            t,
	}
	if req.Person != nil {
		m.AktoerID = req.Person.AktoerID
	}
	if err := s.oppgaver.Opprett(ctx, m); err != nil {
		return fmt.Errorf("opprett %s-oppgave: %w", oppgaveType, err)
	}
	return nil
}

// lagreStatistikk appends the outcome event to the outbox. Statistics are
// best effort and never fail an already-archived event.
func (s *Service) lagreStatistikk(ctx context.Context, req JournalforRequest, enhet domain.Enhet) {
	m := statistikk.Melding{
		RinaSakID:       req.Hendelse.RinaSakID,
		RinaDokumentID:  req.Hendelse.RinaDokumentID,
		DokumentVersjon: req.Hendelse.RinaDokumentVersjon,
		Tidspunkt:       s.now().UTC(),
		Enhet:           enhet,
		BucType:         req.Hendelse.BucType,
		SedType:         req.Hendelse.SedType,
		HendelseType:    req.HendelseType,
	}
	if req.SakInformasjon != nil {
		m.Sakstype = string(req.SakInformasjon.Sakstype)
	}
	if err := s.statistikk.Append(ctx, m); err != nil {
		s.logger.ErrorContext(ctx, "statistikk-lagring feilet",
			"rinaSakId", req.Hendelse.RinaSakID, "error", err)
	}
}

// alder resolves the person's age. A confirmed national identity wins; an
// NPID carries no birth date so the document's stated date is the fallback,
// as it is when no person resolved at all.
func (s *Service) alder(req JournalforRequest) *int {
	now := s.now()
	if req.Person != nil && req.Person.Fnr != "" && !identity.ErNpid(req.Person.Fnr) {
		if a, ok := identity.Alder(req.Person.Fnr, now); ok {
			return &a
		}
	}
	if req.Person != nil && req.Person.Foedselsdato != nil {
		a := identity.AlderFraDato(*req.Person.Foedselsdato, now)
		return &a
	}
	if req.FoedselsdatoFraSed != nil {
		a := identity.AlderFraDato(*req.FoedselsdatoFraSed, now)
		return &a
	}
	return nil
}

// kravFlagg decides whether the event is the case family's inbound claim
// document. Old-age initiation additionally requires the claim document to
// pass automatic-initiation validation.
func kravFlagg(hendelse sedmodels.SedHendelse, dokument sedmodels.Document) (kravAlder, kravUfore bool) {
	switch {
	case hendelse.BucType == sedmodels.PBuc01 && hendelse.SedType == sedmodels.SedP2000:
		p2000, ok := dokument.(*sedmodels.P2000)
		return ok && krav.GyldigForAutomatiskKrav(p2000), false
	case hendelse.BucType == sedmodels.PBuc03 && hendelse.SedType == sedmodels.SedP2200:
		return false, true
	}
	return false, false
}
