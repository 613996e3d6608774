// Package oppgave emits task messages to the task system's topic.
package oppgave

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	sedmodels "journalforing/internal/sed/models"
	"journalforing/pkg/domain"
)

// Type is the kind of task a case worker receives.
type Type string

const (
	// TypeJournalforing asks a case worker to finish filing the document.
	TypeJournalforing Type = "JOURNALFORING"

	// TypeBehandleSed asks a case worker to process an already-filed
	// document.
	TypeBehandleSed Type = "BEHANDLE_SED"
)

// Melding is the task message contract.
type Melding struct {
	SedType         sedmodels.SedType      `json:"sedType"`
	JournalpostID   string                 `json:"journalpostId,omitempty"`
	TildeltEnhetsnr domain.Enhet           `json:"tildeltEnhetsnr"`
	AktoerID        string                 `json:"aktoerId,omitempty"`
	RinaSakID       string                 `json:"rinaSakId"`
	HendelseType    sedmodels.HendelseType `json:"hendelseType"`
	Filnavn         string                 `json:"filnavn,omitempty"`
	OppgaveType     Type                   `json:"oppgaveType"`
	Tema            domain.Tema            `json:"tema"`
	Advarsel        string                 `json:"advarsel,omitempty"`
}

// OppdaterMelding updates an existing task after reconciliation.
type OppdaterMelding struct {
	JournalpostID   string       `json:"journalpostId"`
	Status          string       `json:"status"`
	TildeltEnhetsnr domain.Enhet `json:"tildeltEnhetsnr"`
	Tema            domain.Tema  `json:"tema"`
	AktoerID        string       `json:"aktoerId,omitempty"`
	RinaSakID       string       `json:"rinaSakId"`
}

// Producer publishes one message to the task topic.
type Producer interface {
	Produce(ctx context.Context, key, value []byte) error
}

// Publisher emits task messages. Task emission sits on the main processing
// path: a failure here fails the whole event and the transport redelivers.
type Publisher struct {
	producer Producer
	logger   *slog.Logger
}

func NewPublisher(producer Producer, logger *slog.Logger) *Publisher {
	return &Publisher{producer: producer, logger: logger}
}

// Opprett emits a new task.
func (p *Publisher) Opprett(ctx context.Context, m Melding) error {
	value, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode oppgave: %w", err)
	}
	if err := p.producer.Produce(ctx, []byte(m.RinaSakID), value); err != nil {
		return fmt.Errorf("publish oppgave: %w", err)
	}
	p.logger.InfoContext(ctx, "oppgave opprettet",
		"oppgaveType", m.OppgaveType,
		"enhet", m.TildeltEnhetsnr,
		"rinaSakId", m.RinaSakID,
		"sedType", m.SedType,
	)
	return nil
}

// Oppdater emits a task update.
func (p *Publisher) Oppdater(ctx context.Context, m OppdaterMelding) error {
	value, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode oppgave update: %w", err)
	}
	if err := p.producer.Produce(ctx, []byte(m.RinaSakID), value); err != nil {
		return fmt.Errorf("publish oppgave update: %w", err)
	}
	return nil
}
