package routing

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journalforing/internal/person"
	"journalforing/internal/sak"
	sedmodels "journalforing/internal/sed/models"
	"journalforing/pkg/domain"
)

type fastArbeidsfordeling struct {
	svar     domain.Enhet
	err      error
	antall   int
	sisteReq ArbeidsfordelingRequest
}

func (f *fastArbeidsfordeling) HentEnhet(_ context.Context, req ArbeidsfordelingRequest) (domain.Enhet, error) {
	f.antall++
	f.sisteReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.svar, nil
}

type fastBehandlingstema struct {
	svar domain.Behandlingstema
}

func (f *fastBehandlingstema) Behandlingstema(context.Context, sedmodels.BucType, *sak.Sakstype, domain.Tema, int, sedmodels.Document) (domain.Behandlingstema, error) {
	return f.svar, nil
}

func dato(year, month, day int) *time.Time {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &d
}

func bekreftetPerson(fnr string, foedselsdato *time.Time, bostedsland string) *person.Person {
	return &person.Person{
		Fnr:          fnr,
		AktoerID:     "2000001",
		Foedselsdato: foedselsdato,
		Bostedsland:  bostedsland,
	}
}

func testRouter(arbeidsfordeling *fastArbeidsfordeling, behandlingstema domain.Behandlingstema) *Router {
	return NewRouter(arbeidsfordeling, &fastBehandlingstema{svar: behandlingstema}, slog.New(slog.DiscardHandler))
}

func TestEnhet_HardGate(t *testing.T) {
	ctx := context.Background()
	fd := dato(1956, 3, 15)

	tests := []struct {
		name string
		in   RouteInput
	}{
		{
			name: "no birth date on the document",
			in: RouteInput{
				Person: bekreftetPerson("15035612480", fd, person.LandkodeNorge),
			},
		},
		{
			name: "no resolved person",
			in: RouteInput{
				FoedselsdatoFraSed: fd,
			},
		},
		{
			name: "npid ident carries no verifiable birth date",
			in: RouteInput{
				FoedselsdatoFraSed: fd,
				Person:             bekreftetPerson("01219012345", fd, person.LandkodeNorge),
			},
		},
		{
			name: "registry has no birth date",
			in: RouteInput{
				FoedselsdatoFraSed: fd,
				Person:             bekreftetPerson("15035612480", nil, person.LandkodeNorge),
			},
		},
		{
			name: "document and registry disagree",
			in: RouteInput{
				FoedselsdatoFraSed: fd,
				Person:             bekreftetPerson("15035612480", dato(1956, 3, 16), person.LandkodeNorge),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			af := &fastArbeidsfordeling{svar: domain.EnhetAutomatiskJournalforing}
			r := testRouter(af, domain.BehandlingstemaAlder)

			enhet, err := r.Enhet(ctx, tt.in)
			require.NoError(t, err)
			assert.Equal(t, domain.EnhetIDOgFordeling, enhet)
			assert.Zero(t, af.antall, "gate must short-circuit before the primary router")
		})
	}
}

func TestEnhet_PrimaerRuterVinner(t *testing.T) {
	ctx := context.Background()
	fd := dato(1956, 3, 15)
	in := RouteInput{
		FoedselsdatoFraSed: fd,
		Person:             bekreftetPerson("15035612480", fd, person.LandkodeNorge),
		Hendelse:           sedmodels.SedHendelse{BucType: sedmodels.PBuc01},
		Tema:               domain.TemaPensjon,
	}

	af := &fastArbeidsfordeling{svar: domain.EnhetAutomatiskJournalforing}
	r := testRouter(af, domain.BehandlingstemaAlder)

	enhet, err := r.Enhet(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, domain.EnhetAutomatiskJournalforing, enhet)
	assert.Equal(t, 1, af.antall)
	assert.Equal(t, domain.TemaPensjon, af.sisteReq.Tema)
}

func TestEnhet_AvstaaelseFallback(t *testing.T) {
	ctx := context.Background()
	fd := dato(1956, 3, 15)

	t.Run("multi-person families fall back on age and residency", func(t *testing.T) {
		af := &fastArbeidsfordeling{svar: domain.EnhetIDOgFordeling}
		r := testRouter(af, domain.BehandlingstemaAlder)

		enhet, err := r.Enhet(ctx, RouteInput{
			FoedselsdatoFraSed: fd,
			Person:             bekreftetPerson("15035612480", fd, person.LandkodeNorge),
			Hendelse:           sedmodels.SedHendelse{BucType: sedmodels.PBuc05},
			AntallPersoner:     1,
		})
		require.NoError(t, err)
		// Born 1956: past the disability bracket, resident in Norway.
		assert.Equal(t, domain.EnhetNFPUtlandAalesund, enhet)
	})

	t.Run("everything else falls back on behandlingstema", func(t *testing.T) {
		af := &fastArbeidsfordeling{svar: domain.EnhetIDOgFordeling}
		r := testRouter(af, domain.BehandlingstemaUforepensjon)

		enhet, err := r.Enhet(ctx, RouteInput{
			FoedselsdatoFraSed: fd,
			Person:             bekreftetPerson("15035612480", fd, "SWE"),
			Hendelse:           sedmodels.SedHendelse{BucType: sedmodels.PBuc01},
			Tema:               domain.TemaUforetrygd,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.EnhetUforeUtland, enhet)
	})
}

func TestEnhetFraAlderOgLand(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	bosatt := &person.Person{Bostedsland: person.LandkodeNorge}
	utland := &person.Person{Bostedsland: "SWE"}

	fdAlder := func(years int) time.Time {
		return time.Date(2026-years, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name           string
		alder          int
		person         *person.Person
		antallPersoner int
		want           domain.Enhet
	}{
		{"pensioner resident", 70, bosatt, 1, domain.EnhetNFPUtlandAalesund},
		{"pensioner abroad", 70, utland, 1, domain.EnhetPensjonUtland},
		{"child resident", 10, bosatt, 1, domain.EnhetNFPUtlandAalesund},
		{"child abroad", 10, utland, 1, domain.EnhetPensjonUtland},
		{"bracket resident", 45, bosatt, 1, domain.EnhetUforeUtlandstilsnitt},
		{"bracket abroad", 45, utland, 1, domain.EnhetUforeUtland},
		{"bracket bottom", 19, utland, 1, domain.EnhetUforeUtland},
		{"bracket top", 61, bosatt, 1, domain.EnhetUforeUtlandstilsnitt},
		{"bracket multi-person is manual", 45, bosatt, 2, domain.EnhetIDOgFordeling},
		{"exactly eighteen is manual", 18, bosatt, 1, domain.EnhetIDOgFordeling},
		{"exactly eighteen abroad is manual", 18, utland, 1, domain.EnhetIDOgFordeling},
		{"sixty-two is pensioner branch", 62, utland, 1, domain.EnhetPensjonUtland},
		{"seventeen is child branch", 17, bosatt, 1, domain.EnhetNFPUtlandAalesund},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := enhetFraAlderOgLand(fdAlder(tt.alder), tt.person, tt.antallPersoner, now)
			assert.Equal(t, tt.want, got, "age %d", tt.alder)
		})
	}
}

func TestEnhet_Deterministisk(t *testing.T) {
	ctx := context.Background()
	fd := dato(1956, 3, 15)
	in := RouteInput{
		FoedselsdatoFraSed: fd,
		Person:             bekreftetPerson("15035612480", fd, person.LandkodeNorge),
		Hendelse:           sedmodels.SedHendelse{BucType: sedmodels.PBuc01},
	}

	af := &fastArbeidsfordeling{svar: domain.EnhetAutomatiskJournalforing}
	r := testRouter(af, domain.BehandlingstemaAlder)

	first, err := r.Enhet(ctx, in)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		got, err := r.Enhet(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}
