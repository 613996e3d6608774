// Package statistikk publishes processing-outcome events for the statistics
// pipeline via a transactional outbox. Statistics are observability only:
// failures here must never affect the business outcome of an event.
package statistikk

import (
	"context"
	"time"

	sedmodels "journalforing/internal/sed/models"
	"journalforing/pkg/domain"
)

// Melding is the statistics event contract.
type Melding struct {
	RinaSakID       string                 `json:"rinaSakId"`
	RinaDokumentID  string                 `json:"rinaDokumentId"`
	DokumentVersjon string                 `json:"dokumentVersjon"`
	Tidspunkt       time.Time              `json:"tidspunkt"`
	Enhet           domain.Enhet           `json:"enhet,omitempty"`
	BucType         sedmodels.BucType      `json:"bucType"`
	SedType         sedmodels.SedType      `json:"sedType"`
	Sakstype        string                 `json:"sakType,omitempty"`
	HendelseType    sedmodels.HendelseType `json:"hendelseType"`
}

// Rad is one stored outbox row awaiting publication.
type Rad struct {
	ID      string
	Payload []byte
}

// Store is the outbox. Append happens on the event's processing path;
// a background worker drains rows to the statistics topic.
type Store interface {
	Append(ctx context.Context, m Melding) error
	NextBatch(ctx context.Context, limit int) ([]Rad, error)
	MarkPublished(ctx context.Context, ids []string) error
}
