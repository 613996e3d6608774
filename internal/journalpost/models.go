// Package journalpost models the archival request submitted to the national
// document archive and wraps the archive client's business rules.
package journalpost

import (
	"journalforing/pkg/domain"
)

// Type is the document direction as the archive records it.
type Type string

const (
	TypeInngaaende Type = "INNGAAENDE"
	TypeUtgaaende  Type = "UTGAAENDE"
)

// AvsenderMottaker is the sender/receiver descriptor. Nil on a request means
// the counterpart could not be determined; the archive accepts that and a
// case worker fills it in.
type AvsenderMottaker struct {
	ID   string `json:"id,omitempty"`
	Navn string `json:"navn,omitempty"`
	Land string `json:"land,omitempty"`
}

// Bruker is the user reference. Nil is the crux of the deferred-user
// problem: a request without one can be archived but not finalized against a
// person.
type Bruker struct {
	ID     string `json:"id"`
	IDType string `json:"idType"`
}

// Sak is the linked national case reference.
type Sak struct {
	FagsakID     string `json:"fagsakid"`
	Fagsaksystem string `json:"fagsaksystem"`
	Sakstype     string `json:"sakstype"`
}

// Dokument is the payload reference for the archived document.
type Dokument struct {
	Tittel   string `json:"tittel"`
	Brevkode string `json:"brevkode"`
}

// OpprettJournalpostRequest is the record submitted to the archive. Built
// once per SED event; the deferred-user path mutates a copy, never the
// original.
type OpprettJournalpostRequest struct {
	AvsenderMottaker     *AvsenderMottaker      `json:"avsenderMottaker,omitempty"`
	Behandlingstema      domain.Behandlingstema `json:"behandlingstema,omitempty"`
	Bruker               *Bruker                `json:"bruker,omitempty"`
	Dokumenter           []Dokument             `json:"dokumenter"`
	JournalfoerendeEnhet domain.Enhet           `json:"journalfoerendeEnhet"`
	JournalpostType      Type                   `json:"journalpostType"`
	Kanal                string                 `json:"kanal"`
	Sak                  *Sak                   `json:"sak,omitempty"`
	Tema                 domain.Tema            `json:"tema"`
	Tittel               string                 `json:"tittel"`
	EksternReferanseID   string                 `json:"eksternReferanseId"`
}

// OpprettJournalpostResponse reports the created journalpost and whether the
// archive finalized it immediately.
type OpprettJournalpostResponse struct {
	JournalpostID string `json:"journalpostId"`
	Ferdigstilt   bool   `json:"journalpostferdigstilt"`
}
