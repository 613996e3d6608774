package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSedDispatch(t *testing.T) {
	tests := []struct {
		sedType SedType
		want    any
	}{
		{SedP2000, &P2000{}},
		{SedP2100, &P2100{}},
		{SedP2200, &P2200{}},
		{SedP5000, &P5000{}},
		{SedP6000, &P6000{}},
		{SedP7000, &P7000{}},
		{SedP10000, &P10000{}},
		{SedP8000, &Generisk{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.sedType), func(t *testing.T) {
			doc, err := ParseSed(tt.sedType, []byte(`{"nav": {}}`))
			require.NoError(t, err)
			assert.IsType(t, tt.want, doc)
			assert.Equal(t, tt.sedType, doc.Type())
		})
	}

	t.Run("malformed content is an error", func(t *testing.T) {
		_, err := ParseSed(SedP2000, []byte(`{`))
		assert.Error(t, err)
	})
}

func TestNavSaksnummer(t *testing.T) {
	t.Run("norwegian case reference wins", func(t *testing.T) {
		doc, err := ParseSed(SedP2000, []byte(`{"nav": {"eessisak": [
			{"land": "SE", "saksnummer": "999"},
			{"land": "NO", "saksnummer": "22915555"}
		]}}`))
		require.NoError(t, err)
		assert.Equal(t, "22915555", doc.NavSaksnummer())
	})

	t.Run("no norwegian reference", func(t *testing.T) {
		doc, err := ParseSed(SedP2000, []byte(`{"nav": {"eessisak": [{"land": "SE", "saksnummer": "999"}]}}`))
		require.NoError(t, err)
		assert.Empty(t, doc.NavSaksnummer())
	})

	t.Run("missing nav section", func(t *testing.T) {
		doc, err := ParseSed(SedP2000, []byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, doc.NavSaksnummer())
	})
}

func TestErUforepensjon(t *testing.T) {
	t.Run("P5000 pensjonstype on ytelser", func(t *testing.T) {
		doc, err := ParseSed(SedP5000, []byte(`{"pensjon": {"ytelser": [{"pensjonstype": "01"}, {"pensjonstype": "03"}]}}`))
		require.NoError(t, err)
		assert.True(t, doc.(HarUforeIndikator).ErUforepensjon())
	})

	t.Run("P6000 type on vedtak", func(t *testing.T) {
		doc, err := ParseSed(SedP6000, []byte(`{"pensjon": {"vedtak": [{"type": "03"}]}}`))
		require.NoError(t, err)
		assert.True(t, doc.(HarUforeIndikator).ErUforepensjon())
	})

	t.Run("P7000 pensjonType under samletVedtak", func(t *testing.T) {
		doc, err := ParseSed(SedP7000, []byte(`{"pensjon": {"samletVedtak": {"tildeltePensjoner": [{"pensjonType": "03"}]}}}`))
		require.NoError(t, err)
		assert.True(t, doc.(HarUforeIndikator).ErUforepensjon())
	})

	t.Run("P10000 ytelsestype under merinformasjon", func(t *testing.T) {
		doc, err := ParseSed(SedP10000, []byte(`{"pensjon": {"merinformasjon": {"ytelser": [{"ytelsestype": "03"}]}}}`))
		require.NoError(t, err)
		assert.True(t, doc.(HarUforeIndikator).ErUforepensjon())
	})

	t.Run("non-disability pension type", func(t *testing.T) {
		doc, err := ParseSed(SedP6000, []byte(`{"pensjon": {"vedtak": [{"type": "01"}]}}`))
		require.NoError(t, err)
		assert.False(t, doc.(HarUforeIndikator).ErUforepensjon())
	})

	t.Run("empty content never indicates disability", func(t *testing.T) {
		for _, st := range []SedType{SedP5000, SedP6000, SedP7000, SedP10000} {
			doc, err := ParseSed(st, []byte(`{}`))
			require.NoError(t, err)
			assert.False(t, doc.(HarUforeIndikator).ErUforepensjon(), string(st))
		}
	})

	t.Run("claim documents carry no indicator capability", func(t *testing.T) {
		doc, err := ParseSed(SedP2000, []byte(`{}`))
		require.NoError(t, err)
		_, ok := doc.(HarUforeIndikator)
		assert.False(t, ok)
	})
}

func TestPersonUtsnitt(t *testing.T) {
	payload := []byte(`{"nav": {
		"bruker": {"person": {
			"fornavn": "Ola",
			"foedselsdato": "1956-03-15",
			"pin": [{"land": "SE", "identifikator": "198001019999"}, {"land": "NO", "identifikator": "15035612480"}]
		}},
		"annenperson": {"person": {"fornavn": "Kari"}}
	}}`)
	doc, err := ParseSed(SedP2000, payload)
	require.NoError(t, err)

	t.Run("norwegian pin", func(t *testing.T) {
		assert.Equal(t, "15035612480", NorskIdent(doc))
	})

	t.Run("stated birth date", func(t *testing.T) {
		fd := FoedselsdatoFraDokument(doc)
		require.NotNil(t, fd)
		assert.Equal(t, time.Date(1956, 3, 15, 0, 0, 0, 0, time.UTC), *fd)
	})

	t.Run("person count includes annenperson", func(t *testing.T) {
		assert.Equal(t, 2, AntallPersoner(doc))
	})

	t.Run("empty document", func(t *testing.T) {
		tom, err := ParseSed(SedP2000, []byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, NorskIdent(tom))
		assert.Nil(t, FoedselsdatoFraDokument(tom))
		assert.Zero(t, AntallPersoner(tom))
	})

	t.Run("unparsable birth date resolves to nil", func(t *testing.T) {
		d, err := ParseSed(SedP2000, []byte(`{"nav": {"bruker": {"person": {"foedselsdato": "15.03.1956"}}}}`))
		require.NoError(t, err)
		assert.Nil(t, FoedselsdatoFraDokument(d))
	})
}
