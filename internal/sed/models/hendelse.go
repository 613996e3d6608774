package models

import (
	"encoding/json"
	"fmt"
)

// SedHendelse is one inbound or outbound SED notification from the EESSI
// message bus. It is immutable: created by the transport, consumed once per
// processing attempt.
type SedHendelse struct {
	ID                  int64   `json:"id"`
	SektorKode          string  `json:"sektorKode"`
	BucType             BucType `json:"bucType"`
	RinaSakID           string  `json:"rinaSakId"`
	AvsenderID          string  `json:"avsenderId"`
	AvsenderNavn        string  `json:"avsenderNavn"`
	AvsenderLand        string  `json:"avsenderLand"`
	MottakerID          string  `json:"mottakerId"`
	MottakerNavn        string  `json:"mottakerNavn"`
	MottakerLand        string  `json:"mottakerLand"`
	RinaDokumentID      string  `json:"rinaDokumentId"`
	RinaDokumentVersjon string  `json:"rinaDokumentVersjon"`
	SedType             SedType `json:"sedType"`
	NavBruker           string  `json:"navBruker,omitempty"`
}

// ParseSedHendelse decodes a raw event payload. A payload that does not
// decode, or that lacks the identifiers every downstream step depends on, is
// malformed input and must be surfaced to the transport.
func ParseSedHendelse(payload []byte) (SedHendelse, error) {
	var h SedHendelse
	if err := json.Unmarshal(payload, &h); err != nil {
		return SedHendelse{}, fmt.Errorf("decode sed hendelse: %w", err)
	}
	if h.RinaSakID == "" || h.RinaDokumentID == "" || h.SedType == "" {
		return SedHendelse{}, fmt.Errorf("sed hendelse missing required fields: rinaSakId=%q rinaDokumentId=%q sedType=%q",
			h.RinaSakID, h.RinaDokumentID, h.SedType)
	}
	return h, nil
}

// ErPensjonSektor reports whether the event belongs to the pension sector.
// Events from other sectors are acknowledged and skipped.
func (h SedHendelse) ErPensjonSektor() bool {
	return h.SektorKode == "P" && h.BucType.ErPensjonBuc()
}
