package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSedHendelse(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		payload := []byte(`{
			"rinaSakId": "147729",
			"rinaDokumentId": "b12e06dda2c7474b9998c7139c841646",
			"rinaDokumentVersjon": "1",
			"sedType": "P2000",
			"bucType": "P_BUC_01",
			"sektorKode": "P",
			"avsenderId": "NO:NAVAT02",
			"avsenderNavn": "NAVAT02",
			"avsenderLand": "NO",
			"mottakerId": "SE:123456",
			"mottakerNavn": "FK",
			"mottakerLand": "SE",
			"navBruker": "01019012480"
		}`)
		h, err := ParseSedHendelse(payload)
		require.NoError(t, err)
		assert.Equal(t, "147729", h.RinaSakID)
		assert.Equal(t, SedP2000, h.SedType)
		assert.Equal(t, PBuc01, h.BucType)
		assert.Equal(t, "01019012480", h.NavBruker)
	})

	t.Run("malformed json is an error", func(t *testing.T) {
		_, err := ParseSedHendelse([]byte(`{"rinaSakId":`))
		assert.Error(t, err)
	})

	t.Run("missing required fields is an error", func(t *testing.T) {
		_, err := ParseSedHendelse([]byte(`{"rinaSakId": "147729"}`))
		assert.Error(t, err)
	})
}

func TestErPensjonSektor(t *testing.T) {
	tests := []struct {
		name   string
		sektor string
		buc    BucType
		want   bool
	}{
		{"pension sector and pension buc", "P", PBuc01, true},
		{"horizontal buc in pension sector", "P", HBuc07, true},
		{"wrong sector", "H", PBuc01, false},
		{"pension sector with unknown buc", "P", BucType("FB_BUC_01"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := SedHendelse{SektorKode: tt.sektor, BucType: tt.buc}
			assert.Equal(t, tt.want, h.ErPensjonSektor())
		})
	}
}
