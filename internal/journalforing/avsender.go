package journalforing

import (
	"journalforing/internal/journalpost"
	sedmodels "journalforing/internal/sed/models"
)

// avsenderMottaker derives the counterpart institution for the archival
// request: the sender for inbound documents, the receiver for outbound.
// Returns nil when id or country is missing; the archive accepts that.
func avsenderMottaker(hendelse sedmodels.SedHendelse, hendelseType sedmodels.HendelseType) *journalpost.AvsenderMottaker {
	id, navn, land := hendelse.AvsenderID, hendelse.AvsenderNavn, hendelse.AvsenderLand
	if hendelseType == sedmodels.HendelseSendt {
		id, navn, land = hendelse.MottakerID, hendelse.MottakerNavn, hendelse.MottakerLand
	}
	if id == "" || land == "" {
		return nil
	}
	return &journalpost.AvsenderMottaker{
		ID:   id,
		Navn: navn,
		Land: normaliserLand(land),
	}
}

// normaliserLand maps the institution-registry country code for the United
// Kingdom to the ISO code the archive expects.
func normaliserLand(land string) string {
	if land == "UK" {
		return "GB"
	}
	return land
}
