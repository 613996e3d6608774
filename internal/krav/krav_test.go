package krav

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journalforing/internal/sak"
	sedmodels "journalforing/internal/sed/models"
)

type producerFake struct {
	keys   [][]byte
	values [][]byte
	err    error
}

func (p *producerFake) Produce(_ context.Context, key, value []byte) error {
	if p.err != nil {
		return p.err
	}
	p.keys = append(p.keys, key)
	p.values = append(p.values, value)
	return nil
}

func kravService(producer Producer, alderAktivert bool) *Service {
	return NewService(producer, alderAktivert, slog.New(slog.DiscardHandler))
}

func TestVurderKrav_Alder(t *testing.T) {
	ctx := context.Background()
	hendelse := sedmodels.SedHendelse{RinaSakID: "147729", SedType: sedmodels.SedP2000}

	t.Run("enabled emits initiation with linked case", func(t *testing.T) {
		producer := &producerFake{}
		svc := kravService(producer, true)

		err := svc.VurderKrav(ctx, hendelse, &sak.Sak{SakID: "22915550", Sakstype: sak.SakAlder}, true, false)
		require.NoError(t, err)
		require.Len(t, producer.values, 1)
		assert.Equal(t, []byte("147729"), producer.keys[0])

		var m Melding
		require.NoError(t, json.Unmarshal(producer.values[0], &m))
		assert.Equal(t, "147729", m.BucID)
		assert.Equal(t, "22915550", m.SakID)
		assert.Equal(t, GrunnAlderSoknad, m.Grunn)
	})

	t.Run("disabled emits nothing", func(t *testing.T) {
		producer := &producerFake{}
		svc := kravService(producer, false)

		require.NoError(t, svc.VurderKrav(ctx, hendelse, nil, true, false))
		assert.Empty(t, producer.values)
	})

	t.Run("flag on the wrong sed type is skipped", func(t *testing.T) {
		producer := &producerFake{}
		svc := kravService(producer, true)

		feil := sedmodels.SedHendelse{RinaSakID: "147729", SedType: sedmodels.SedP8000}
		require.NoError(t, svc.VurderKrav(ctx, feil, nil, true, false))
		assert.Empty(t, producer.values)
	})
}

func TestVurderKrav_Ufore(t *testing.T) {
	ctx := context.Background()
	hendelse := sedmodels.SedHendelse{RinaSakID: "147729", SedType: sedmodels.SedP2200}

	t.Run("emits initiation without linked case", func(t *testing.T) {
		producer := &producerFake{}
		// The old-age flag does not gate disability initiation.
		svc := kravService(producer, false)

		require.NoError(t, svc.VurderKrav(ctx, hendelse, nil, false, true))
		require.Len(t, producer.values, 1)

		var m Melding
		require.NoError(t, json.Unmarshal(producer.values[0], &m))
		assert.Equal(t, GrunnUforeSoknad, m.Grunn)
		assert.Empty(t, m.SakID)
	})

	t.Run("flag on the wrong sed type is skipped", func(t *testing.T) {
		producer := &producerFake{}
		svc := kravService(producer, true)

		feil := sedmodels.SedHendelse{RinaSakID: "147729", SedType: sedmodels.SedP2000}
		require.NoError(t, svc.VurderKrav(ctx, feil, nil, false, true))
		assert.Empty(t, producer.values)
	})
}

func TestVurderKrav_IngenFlagg(t *testing.T) {
	producer := &producerFake{}
	svc := kravService(producer, true)
	require.NoError(t, svc.VurderKrav(context.Background(), sedmodels.SedHendelse{SedType: sedmodels.SedP5000}, nil, false, false))
	assert.Empty(t, producer.values)
}

func TestVurderKrav_PubliseringsfeilPropagerer(t *testing.T) {
	svc := kravService(&producerFake{err: errors.New("broker down")}, false)
	err := svc.VurderKrav(context.Background(), sedmodels.SedHendelse{RinaSakID: "147729", SedType: sedmodels.SedP2200}, nil, false, true)
	assert.ErrorContains(t, err, "publish krav melding")
}

func TestGyldigForAutomatiskKrav(t *testing.T) {
	parse := func(t *testing.T, payload string) *sedmodels.P2000 {
		t.Helper()
		doc, err := sedmodels.ParseSed(sedmodels.SedP2000, []byte(payload))
		require.NoError(t, err)
		p2000, ok := doc.(*sedmodels.P2000)
		require.True(t, ok)
		return p2000
	}

	t.Run("complete document is valid", func(t *testing.T) {
		doc := parse(t, `{"nav":{"bruker":{"person":{
			"sivilstand":[{"fradato":"2000-01-01","status":"gift"}],
			"statsborgerskap":[{"land":"NO"}]}}}}`)
		assert.True(t, GyldigForAutomatiskKrav(doc))
	})

	t.Run("missing civil status is invalid", func(t *testing.T) {
		doc := parse(t, `{"nav":{"bruker":{"person":{
			"statsborgerskap":[{"land":"NO"}]}}}}`)
		assert.False(t, GyldigForAutomatiskKrav(doc))
	})

	t.Run("missing citizenship is invalid", func(t *testing.T) {
		doc := parse(t, `{"nav":{"bruker":{"person":{
			"sivilstand":[{"fradato":"2000-01-01","status":"gift"}]}}}}`)
		assert.False(t, GyldigForAutomatiskKrav(doc))
	})

	t.Run("undated civil status entry is invalid", func(t *testing.T) {
		doc := parse(t, `{"nav":{"bruker":{"person":{
			"sivilstand":[{"status":"gift"}],
			"statsborgerskap":[{"land":"NO"}]}}}}`)
		assert.False(t, GyldigForAutomatiskKrav(doc))
	})

	t.Run("missing person block is invalid", func(t *testing.T) {
		assert.False(t, GyldigForAutomatiskKrav(parse(t, `{}`)))
		assert.False(t, GyldigForAutomatiskKrav(nil))
	})
}
