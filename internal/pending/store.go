// Package pending handles documents that arrive before the user is known:
// the archival request is persisted keyed by case id, and reconciled when a
// later document in the same case resolves a person.
package pending

import (
	"context"
	"fmt"

	"journalforing/internal/journalpost"
	sedmodels "journalforing/internal/sed/models"
)

// Record is the persisted tuple for one unresolved document.
type Record struct {
	Journalpost  journalpost.OpprettJournalpostRequest `json:"journalpost"`
	Hendelse     sedmodels.SedHendelse                 `json:"sedHendelse"`
	HendelseType sedmodels.HendelseType                `json:"hendelseType"`
}

// Store is the keyed repository for pending records. One record per document
// id; multiple records may exist per case id. Any store with read-after-write
// consistency per key satisfies the reconciliation ordering requirement.
type Store interface {
	Save(ctx context.Context, key string, r Record) error
	Get(ctx context.Context, key string) (Record, error)
	ListKeys(ctx context.Context, rinaSakID string) ([]string, error)
	Delete(ctx context.Context, key string) error
}

// Key builds the store key for a case/document pair.
func Key(rinaSakID, rinaDokumentID string) string {
	return fmt.Sprintf("journalpost/%s/%s.json", rinaSakID, rinaDokumentID)
}

// Prefix builds the listing prefix for all pending records under a case.
func Prefix(rinaSakID string) string {
	return fmt.Sprintf("journalpost/%s/", rinaSakID)
}
