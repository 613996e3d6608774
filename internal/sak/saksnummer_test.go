package sak

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGyldigSaksnummer(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"22915550", true},
		{"10000001", true},
		{"29999999", true},
		{"32915550", false}, // wrong leading digit
		{"02915550", false},
		{"2291555", false},   // too short
		{"229155501", false}, // too long
		{"2291555a", false},
		{"147729", false}, // RINA case id
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, GyldigSaksnummer(tt.id))
		})
	}
}

func TestErUforep(t *testing.T) {
	assert.True(t, (&Sak{Sakstype: SakUforep}).ErUforep())
	assert.False(t, (&Sak{Sakstype: SakAlder}).ErUforep())
	var ingen *Sak
	assert.False(t, ingen.ErUforep())
}
