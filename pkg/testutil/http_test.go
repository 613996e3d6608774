package testutil

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadBodyIsRepeatable(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"postgres":"ok","redis":"ok"}`))
	})

	rr := DoRequest(handler, NewRequest(t, http.MethodGet, "/health"))
	AssertStatusOK(t, rr)

	first := ReadBody(t, rr)
	second := ReadBody(t, rr)
	assert.Equal(t, first, second)

	AssertJSONContains(t, rr, "postgres", "ok")
	AssertJSONContains(t, rr, "redis", "ok")
}
