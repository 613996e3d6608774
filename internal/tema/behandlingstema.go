package tema

import (
	"context"
	"fmt"

	"journalforing/internal/person"
	"journalforing/internal/sak"
	sedmodels "journalforing/internal/sed/models"
	"journalforing/pkg/domain"
)

// BehandlingstemaClient resolves the finer administrative category for a
// case. External collaborator; only consulted when the primary router
// abstains.
type BehandlingstemaClient interface {
	Behandlingstema(ctx context.Context, buc sedmodels.BucType, sakstype *sak.Sakstype, tema domain.Tema, antallPersoner int, dokument sedmodels.Document) (domain.Behandlingstema, error)
}

// EnhetForBehandlingstema maps the resolved behandlingstema and the person's
// country of residence to one of the four foreign-liaison units. Total
// function: two residence branches, each with exactly two outcomes.
func EnhetForBehandlingstema(ctx context.Context, client BehandlingstemaClient, in ClassifyInput, tema domain.Tema, p *person.Person) (domain.Enhet, error) {
	var sakstype *sak.Sakstype
	if in.Sak != nil {
		sakstype = &in.Sak.Sakstype
	}
	behandlingstema, err := client.Behandlingstema(ctx, in.Hendelse.BucType, sakstype, tema, in.AntallPersoner, in.Dokument)
	if err != nil {
		return "", fmt.Errorf("hent behandlingstema: %w", err)
	}

	ufore := behandlingstema == domain.BehandlingstemaUforepensjon
	if p.BosattNorge() {
		if ufore {
			return domain.EnhetUforeUtlandstilsnitt, nil
		}
		return domain.EnhetNFPUtlandAalesund, nil
	}
	if ufore {
		return domain.EnhetUforeUtland, nil
	}
	return domain.EnhetPensjonUtland, nil
}
