// Package sak models pre-existing case facts from the national pension case
// registry and exposes the lookup port the orchestrator depends on.
package sak

// Sakstype is the benefit category of a pension case.
type Sakstype string

const (
	SakAlder    Sakstype = "ALDER"
	SakUforep   Sakstype = "UFOREP"
	SakGjenlev  Sakstype = "GJENLEV"
	SakBarnep   Sakstype = "BARNEP"
	SakGenerell Sakstype = "GENRL"
	SakOmsorg   Sakstype = "OMSORG"
)

// Sakstatus is the processing status of a pension case.
type Sakstatus string

const (
	StatusOpprettet     Sakstatus = "OPPRETTET"
	StatusTilBehandling Sakstatus = "TIL_BEHANDLING"
	StatusLopende       Sakstatus = "LOPENDE"
	StatusAvsluttet     Sakstatus = "AVSLUTTET"
)

// Sak is one pre-existing case. A case may be entirely absent for an event;
// callers treat a nil *Sak as "no prior case".
type Sak struct {
	SakID    string    `json:"sakId"`
	Sakstype Sakstype  `json:"sakType"`
	Status   Sakstatus `json:"sakStatus"`
}

// ErUforep reports whether the case is a disability case. Convenience for
// the classifier's case-type checks, nil-safe.
func (s *Sak) ErUforep() bool {
	return s != nil && s.Sakstype == SakUforep
}
