package tema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journalforing/internal/person"
	"journalforing/internal/sak"
	sedmodels "journalforing/internal/sed/models"
	"journalforing/pkg/domain"
)

func TestRegelBasertBehandlingstema(t *testing.T) {
	r := NewRegelBasertBehandlingstema()
	ctx := context.Background()

	sakstype := func(s sak.Sakstype) *sak.Sakstype { return &s }

	tests := []struct {
		name     string
		buc      sedmodels.BucType
		sakstype *sak.Sakstype
		tema     domain.Tema
		dokument sedmodels.Document
		want     domain.Behandlingstema
	}{
		{"case record uforep", sedmodels.PBuc01, sakstype(sak.SakUforep), domain.TemaPensjon, nil, domain.BehandlingstemaUforepensjon},
		{"case record alder", sedmodels.PBuc03, sakstype(sak.SakAlder), domain.TemaPensjon, nil, domain.BehandlingstemaAlder},
		{"case record gjenlev", sedmodels.PBuc01, sakstype(sak.SakGjenlev), domain.TemaPensjon, nil, domain.BehandlingstemaGjenlevende},
		{"case record barnep", sedmodels.PBuc01, sakstype(sak.SakBarnep), domain.TemaPensjon, nil, domain.BehandlingstemaBarnepensjon},
		{"generic case record falls to buc", sedmodels.PBuc02, sakstype(sak.SakGenerell), domain.TemaPensjon, nil, domain.BehandlingstemaGjenlevende},
		{"old-age family", sedmodels.PBuc01, nil, domain.TemaPensjon, nil, domain.BehandlingstemaAlder},
		{"survivor family", sedmodels.PBuc02, nil, domain.TemaPensjon, nil, domain.BehandlingstemaGjenlevende},
		{"disability family", sedmodels.PBuc03, nil, domain.TemaPensjon, nil, domain.BehandlingstemaUforepensjon},
		{"disability tema fallback", sedmodels.PBuc05, nil, domain.TemaUforetrygd, nil, domain.BehandlingstemaUforepensjon},
		{"child-survivor tema fallback", sedmodels.PBuc05, nil, domain.TemaBarnepensjon, nil, domain.BehandlingstemaBarnepensjon},
		{"resettlement tema fallback", sedmodels.PBuc05, nil, domain.TemaOmstilling, nil, domain.BehandlingstemaGjenlevende},
		{"default is old-age", sedmodels.PBuc05, nil, domain.TemaPensjon, nil, domain.BehandlingstemaAlder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Behandlingstema(ctx, tt.buc, tt.sakstype, tt.tema, 1, tt.dokument)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type fastBehandlingstema struct {
	svar domain.Behandlingstema
}

func (f fastBehandlingstema) Behandlingstema(context.Context, sedmodels.BucType, *sak.Sakstype, domain.Tema, int, sedmodels.Document) (domain.Behandlingstema, error) {
	return f.svar, nil
}

func TestEnhetForBehandlingstema(t *testing.T) {
	ctx := context.Background()
	in := ClassifyInput{Hendelse: sedmodels.SedHendelse{BucType: sedmodels.PBuc01}}

	bosatt := &person.Person{Bostedsland: person.LandkodeNorge}
	utland := &person.Person{Bostedsland: "SWE"}

	tests := []struct {
		name            string
		behandlingstema domain.Behandlingstema
		person          *person.Person
		want            domain.Enhet
	}{
		{"disability, resident", domain.BehandlingstemaUforepensjon, bosatt, domain.EnhetUforeUtlandstilsnitt},
		{"disability, abroad", domain.BehandlingstemaUforepensjon, utland, domain.EnhetUforeUtland},
		{"pension, resident", domain.BehandlingstemaAlder, bosatt, domain.EnhetNFPUtlandAalesund},
		{"pension, abroad", domain.BehandlingstemaAlder, utland, domain.EnhetPensjonUtland},
		{"unknown residency counts as abroad", domain.BehandlingstemaAlder, nil, domain.EnhetPensjonUtland},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EnhetForBehandlingstema(ctx, fastBehandlingstema{svar: tt.behandlingstema}, in, domain.TemaPensjon, tt.person)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
