package routing

import (
	"context"
	"fmt"

	"journalforing/internal/platform/httpclient"
	"journalforing/pkg/domain"
)

// arbeidsfordelingKriterier is the primary router's wire contract.
type arbeidsfordelingKriterier struct {
	Tema              string `json:"tema"`
	Behandlingstema   string `json:"behandlingstema,omitempty"`
	GeografiskOmraade string `json:"geografiskOmraade,omitempty"`
	Diskresjonskode   string `json:"diskresjonskode,omitempty"`
	Temagruppe        string `json:"temagruppe"`
}

type arbeidsfordelingEnhet struct {
	EnhetNr string `json:"enhetNr"`
}

// HTTPArbeidsfordelingClient calls the national unit-distribution service.
// An empty answer is the abstention signal, not an error.
type HTTPArbeidsfordelingClient struct {
	client *httpclient.Client
}

func NewHTTPArbeidsfordelingClient(client *httpclient.Client) *HTTPArbeidsfordelingClient {
	return &HTTPArbeidsfordelingClient{client: client}
}

func (c *HTTPArbeidsfordelingClient) HentEnhet(ctx context.Context, req ArbeidsfordelingRequest) (domain.Enhet, error) {
	kriterier := arbeidsfordelingKriterier{
		Tema:       string(req.Tema),
		Temagruppe: "PENS",
	}
	if req.Person != nil {
		kriterier.GeografiskOmraade = req.Person.GeografiskTilknytning
		kriterier.Diskresjonskode = string(req.Person.Diskresjonskode)
	}

	var enheter []arbeidsfordelingEnhet
	if err := c.client.PostJSON(ctx, "/arbeidsfordeling/enheter/bestmatch", kriterier, &enheter); err != nil {
		return "", fmt.Errorf("arbeidsfordeling: %w", err)
	}
	if len(enheter) == 0 || enheter[0].EnhetNr == "" {
		return domain.EnhetIDOgFordeling, nil
	}
	return domain.Enhet(enheter[0].EnhetNr), nil
}
