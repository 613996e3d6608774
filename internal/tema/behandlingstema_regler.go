package tema

import (
	"context"

	"journalforing/internal/sak"
	sedmodels "journalforing/internal/sed/models"
	"journalforing/pkg/domain"
)

// RegelBasertBehandlingstema resolves behandlingstema from the case record
// when one exists, falling back to the case family and finally the tema.
// Rule-based and local: the finer category follows deterministically from
// inputs the pipeline already holds.
type RegelBasertBehandlingstema struct{}

func NewRegelBasertBehandlingstema() *RegelBasertBehandlingstema {
	return &RegelBasertBehandlingstema{}
}

func (r *RegelBasertBehandlingstema) Behandlingstema(_ context.Context, buc sedmodels.BucType, sakstype *sak.Sakstype, t domain.Tema, _ int, dokument sedmodels.Document) (domain.Behandlingstema, error) {
	if sakstype != nil {
		switch *sakstype {
		case sak.SakUforep:
			return domain.BehandlingstemaUforepensjon, nil
		case sak.SakAlder:
			return domain.BehandlingstemaAlder, nil
		case sak.SakGjenlev, sak.SakOmsorg:
			return domain.BehandlingstemaGjenlevende, nil
		case sak.SakBarnep:
			return domain.BehandlingstemaBarnepensjon, nil
		}
	}

	switch buc {
	case sedmodels.PBuc01:
		return domain.BehandlingstemaAlder, nil
	case sedmodels.PBuc02:
		return domain.BehandlingstemaGjenlevende, nil
	case sedmodels.PBuc03:
		return domain.BehandlingstemaUforepensjon, nil
	}

	if dokumentErUfore(dokument) || t == domain.TemaUforetrygd {
		return domain.BehandlingstemaUforepensjon, nil
	}
	if t == domain.TemaBarnepensjon {
		return domain.BehandlingstemaBarnepensjon, nil
	}
	if t == domain.TemaOmstilling {
		return domain.BehandlingstemaGjenlevende, nil
	}
	return domain.BehandlingstemaAlder, nil
}
