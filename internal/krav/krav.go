// Package krav emits case-initiation events when an inbound claim document
// signals a new benefit application.
package krav

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"journalforing/internal/sak"
	sedmodels "journalforing/internal/sed/models"
)

// Reason codes on emitted case-initiation events.
const (
	GrunnAlderSoknad = "ALDER_NY_SOKNAD"
	GrunnUforeSoknad = "UFORE_NY_SOKNAD"
)

// Melding is the case-initiation event contract.
type Melding struct {
	SakID       string `json:"sakId,omitempty"`
	BucID       string `json:"bucId"`
	Grunn       string `json:"grunn"`
	Beskrivelse string `json:"beskrivelse"`
}

// Producer publishes one message to the case-initiation topic.
type Producer interface {
	Produce(ctx context.Context, key, value []byte) error
}

// Service decides whether a just-archived inbound document should open a new
// case.
type Service struct {
	producer Producer
	logger   *slog.Logger

	// alderKravAktivert gates old-age initiation. The upstream case system
	// does not support automatic old-age initiation in production yet, so
	// the flag is only set in test environments. Injected, never read from
	// ambient state.
	alderKravAktivert bool
}

func NewService(producer Producer, alderKravAktivert bool, logger *slog.Logger) *Service {
	return &Service{
		producer:          producer,
		alderKravAktivert: alderKravAktivert,
		logger:            logger,
	}
}

// VurderKrav emits a case-initiation event for supported claim documents.
// kravAlder and kravUfore flag that the case family's inbound claim document
// was just received. Unsupported document types are logged and skipped.
func (s *Service) VurderKrav(ctx context.Context, hendelse sedmodels.SedHendelse, eksisterendeSak *sak.Sak, kravAlder, kravUfore bool) error {
	switch {
	case kravAlder:
		if hendelse.SedType != sedmodels.SedP2000 {
			s.logger.InfoContext(ctx, "krav alder flagged for unsupported sed type, skipping",
				"sedType", hendelse.SedType, "rinaSakId", hendelse.RinaSakID)
			return nil
		}
		if !s.alderKravAktivert {
			s.logger.InfoContext(ctx, "krav alder disabled in this environment, skipping",
				"rinaSakId", hendelse.RinaSakID)
			return nil
		}
		return s.emit(ctx, hendelse, eksisterendeSak, GrunnAlderSoknad, "Krav om alderspensjon mottatt")

	case kravUfore:
		if hendelse.SedType != sedmodels.SedP2200 {
			s.logger.InfoContext(ctx, "krav ufore flagged for unsupported sed type, skipping",
				"sedType", hendelse.SedType, "rinaSakId", hendelse.RinaSakID)
			return nil
		}
		return s.emit(ctx, hendelse, eksisterendeSak, GrunnUforeSoknad, "Krav om uførepensjon mottatt")
	}
	return nil
}

func (s *Service) emit(ctx context.Context, hendelse sedmodels.SedHendelse, eksisterendeSak *sak.Sak, grunn, beskrivelse string) error {
	m := Melding{
		BucID:       hendelse.RinaSakID,
		Grunn:       grunn,
		Beskrivelse: beskrivelse,
	}
	if eksisterendeSak != nil {
		m.SakID = eksisterendeSak.SakID
	}
	value, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode krav melding: %w", err)
	}
	if err := s.producer.Produce(ctx, []byte(hendelse.RinaSakID), value); err != nil {
		return fmt.Errorf("publish krav melding: %w", err)
	}
	s.logger.InfoContext(ctx, "krav-initialisering publisert",
		"grunn", grunn, "rinaSakId", hendelse.RinaSakID)
	return nil
}

// GyldigForAutomatiskKrav validates the old-age claim document for automatic
// initiation: the civil-status and citizenship blocks must be present, and
// an undated civil-status entry cannot be a completed fact.
func GyldigForAutomatiskKrav(doc *sedmodels.P2000) bool {
	if doc == nil || doc.Nav == nil || doc.Nav.Bruker == nil || doc.Nav.Bruker.Person == nil {
		return false
	}
	p := doc.Nav.Bruker.Person
	if len(p.Sivilstand) == 0 || len(p.Statsborgerskap) == 0 {
		return false
	}
	for _, s := range p.Sivilstand {
		if s.Fradato == "" {
			return false
		}
	}
	return true
}
