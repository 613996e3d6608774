package journalpost

import (
	"fmt"

	"github.com/google/uuid"

	"journalforing/internal/person"
	sedmodels "journalforing/internal/sed/models"
	"journalforing/pkg/domain"
)

// fagsaksystemPensjon identifies the national pension case system on linked
// case references.
const fagsaksystemPensjon = "PP01"

// sedTittel carries the human-readable description used in journalpost
// titles.
var sedTittel = map[sedmodels.SedType]string{
	sedmodels.SedP2000:  "Krav om alderspensjon",
	sedmodels.SedP2100:  "Krav om gjenlevendepensjon",
	sedmodels.SedP2200:  "Krav om uførepensjon",
	sedmodels.SedP5000:  "Trygdetid",
	sedmodels.SedP6000:  "Vedtak om pensjon",
	sedmodels.SedP7000:  "Samlet melding om vedtak",
	sedmodels.SedP8000:  "Anmodning om tilleggsinformasjon",
	sedmodels.SedP10000: "Overføring av tilleggsinformasjon",
	sedmodels.SedP15000: "Overføring av pensjonssak",
}

// behandlingstemaForTema is the default sub-topic stamped on the request for
// each tema. PEN is left to the archive to derive.
var behandlingstemaForTema = map[domain.Tema]domain.Behandlingstema{
	domain.TemaUforetrygd:   domain.BehandlingstemaUforepensjon,
	domain.TemaBarnepensjon: domain.BehandlingstemaBarnepensjon,
	domain.TemaOmstilling:   domain.BehandlingstemaGjenlevende,
}

// BehandlingstemaFor returns the default sub-topic for a tema, empty for
// temas the archive derives itself.
func BehandlingstemaFor(t domain.Tema) domain.Behandlingstema {
	return behandlingstemaForTema[t]
}

// BuildInput is everything the request builder needs.
type BuildInput struct {
	Hendelse     sedmodels.SedHendelse
	HendelseType sedmodels.HendelseType
	Person       *person.Person
	Enhet        domain.Enhet
	Tema         domain.Tema
	SakID        string
	Avsender     *AvsenderMottaker
}

// Build assembles the archival request. Unresolved person and missing linked
// case produce a request without bruker/sak, which the archive accepts.
func Build(in BuildInput) OpprettJournalpostRequest {
	req := OpprettJournalpostRequest{
		AvsenderMottaker:     in.Avsender,
		Behandlingstema:      behandlingstemaForTema[in.Tema],
		JournalfoerendeEnhet: in.Enhet,
		Kanal:                "EESSI",
		Tema:                 in.Tema,
		Tittel:               tittel(in.HendelseType, in.Hendelse.SedType),
		EksternReferanseID:   uuid.NewString(),
		Dokumenter: []Dokument{{
			Tittel:   tittel(in.HendelseType, in.Hendelse.SedType),
			Brevkode: string(in.Hendelse.SedType),
		}},
	}

	if in.HendelseType == sedmodels.HendelseSendt {
		req.JournalpostType = TypeUtgaaende
	} else {
		req.JournalpostType = TypeInngaaende
	}

	if in.Person != nil && in.Person.Fnr != "" {
		req.Bruker = &Bruker{ID: in.Person.Fnr, IDType: "FNR"}
	}
	if in.SakID != "" {
		req.Sak = &Sak{
			FagsakID:     in.SakID,
			Fagsaksystem: fagsaksystemPensjon,
			Sakstype:     "FAGSAK",
		}
	}
	return req
}

func tittel(hendelseType sedmodels.HendelseType, sedType sedmodels.SedType) string {
	retning := "Inngående"
	if hendelseType == sedmodels.HendelseSendt {
		retning = "Utgående"
	}
	if beskrivelse, ok := sedTittel[sedType]; ok {
		return fmt.Sprintf("%s %s - %s", retning, sedType, beskrivelse)
	}
	return fmt.Sprintf("%s %s", retning, sedType)
}
