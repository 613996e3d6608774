// Package kafka is the inbound boundary: it decodes SED events from the
// document-exchange topics, resolves person and case context, and hands one
// fully resolved request to the orchestrator.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"journalforing/internal/identity"
	"journalforing/internal/journalforing"
	"journalforing/internal/person"
	"journalforing/internal/platform/kafka/consumer"
	"journalforing/internal/sak"
	sedmodels "journalforing/internal/sed/models"
	"journalforing/pkg/platform/sentinel"
)

// DokumentHenter fetches the document content the event refers to.
type DokumentHenter interface {
	HentSed(ctx context.Context, rinaSakID, dokumentID string, sedType sedmodels.SedType) (sedmodels.Document, error)
}

// PersonOppslag resolves a person by national identifier.
type PersonOppslag interface {
	Hent(ctx context.Context, ident string) (*person.Person, error)
}

// Journalforer runs the main pipeline for one resolved event.
type Journalforer interface {
	Journalfor(ctx context.Context, req journalforing.JournalforRequest) error
}

// SedHendelseHandler consumes the inbound and outbound SED topics. The topic
// a message arrived on decides the event direction.
type SedHendelseHandler struct {
	mottattTopic string
	sendtTopic   string

	dokumenter   DokumentHenter
	personer     PersonOppslag
	saker        sak.RegistryClient
	journalforer Journalforer
	logger       *slog.Logger
}

func NewSedHendelseHandler(
	mottattTopic, sendtTopic string,
	dokumenter DokumentHenter,
	personer PersonOppslag,
	saker sak.RegistryClient,
	journalforer Journalforer,
	logger *slog.Logger,
) *SedHendelseHandler {
	return &SedHendelseHandler{
		mottattTopic: mottattTopic,
		sendtTopic:   sendtTopic,
		dokumenter:   dokumenter,
		personer:     personer,
		saker:        saker,
		journalforer: journalforer,
		logger:       logger,
	}
}

// Handle processes one event. A returned error leaves the record
// uncommitted for redelivery; filtered events return nil and commit.
func (h *SedHendelseHandler) Handle(ctx context.Context, msg *consumer.Message) error {
	hendelse, err := sedmodels.ParseSedHendelse(msg.Value)
	if err != nil {
		return err
	}

	if !hendelse.ErPensjonSektor() {
		h.logger.DebugContext(ctx, "hendelse utenfor pensjonsomraadet, hopper over",
			"rinaSakId", hendelse.RinaSakID,
			"sektorKode", hendelse.SektorKode,
			"bucType", hendelse.BucType)
		return nil
	}

	var hendelseType sedmodels.HendelseType
	switch msg.Topic {
	case h.mottattTopic:
		hendelseType = sedmodels.HendelseMottatt
	case h.sendtTopic:
		hendelseType = sedmodels.HendelseSendt
	default:
		return fmt.Errorf("uventet topic %s", msg.Topic)
	}

	dokument, err := h.dokumenter.HentSed(ctx, hendelse.RinaSakID, hendelse.RinaDokumentID, hendelse.SedType)
	if err != nil {
		return fmt.Errorf("hent dokument: %w", err)
	}

	p, err := h.hentPerson(ctx, hendelse, dokument)
	if err != nil {
		return err
	}

	req := journalforing.JournalforRequest{
		Hendelse:           hendelse,
		HendelseType:       hendelseType,
		Person:             p,
		FoedselsdatoFraSed: sedmodels.FoedselsdatoFraDokument(dokument),
		SakInformasjon:     h.hentSakInformasjon(ctx, p, dokument),
		Dokument:           dokument,
		AntallPersoner:     sedmodels.AntallPersoner(dokument),
	}
	if p != nil {
		req.Diskresjon = p.Diskresjonskode.Gradert()
	}

	return h.journalforer.Journalfor(ctx, req)
}

// hentPerson resolves the person referenced by the event or the document.
// An absent, malformed or unknown identifier resolves to no person; only
// registry unavailability is an error.
func (h *SedHendelseHandler) hentPerson(ctx context.Context, hendelse sedmodels.SedHendelse, dokument sedmodels.Document) (*person.Person, error) {
	ident := hendelse.NavBruker
	if ident == "" {
		ident = sedmodels.NorskIdent(dokument)
	}
	if ident == "" {
		return nil, nil
	}
	if !identity.Gyldig(ident) && !identity.ErNpid(ident) {
		h.logger.InfoContext(ctx, "ugyldig ident paa hendelse, behandler uten person",
			"rinaSakId", hendelse.RinaSakID)
		return nil, nil
	}

	p, err := h.personer.Hent(ctx, ident)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			h.logger.InfoContext(ctx, "ident ukjent i personregisteret, behandler uten person",
				"rinaSakId", hendelse.RinaSakID)
			return nil, nil
		}
		return nil, fmt.Errorf("hent person: %w", err)
	}
	return p, nil
}

// hentSakInformasjon finds the person's pension case matching the national
// case number the document quotes. Lookup failure degrades to no case.
func (h *SedHendelseHandler) hentSakInformasjon(ctx context.Context, p *person.Person, dokument sedmodels.Document) *sak.Sak {
	if p == nil || p.AktoerID == "" || dokument == nil {
		return nil
	}
	saksnummer := dokument.NavSaksnummer()
	if saksnummer == "" {
		return nil
	}

	saker, err := h.saker.HentSaker(ctx, p.AktoerID)
	if err != nil {
		h.logger.WarnContext(ctx, "saksoppslag feilet, fortsetter uten sak",
			"aktoerId", p.AktoerID, "error", err)
		return nil
	}
	for i := range saker {
		if saker[i].SakID == saksnummer {
			return &saker[i]
		}
	}
	return nil
}
