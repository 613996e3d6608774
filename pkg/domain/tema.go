package domain

// Tema is the top-level administrative domain a journalpost is filed under.
// Invariant: every routing decision resolves to exactly one Tema.
type Tema string

const (
	// TemaPensjon covers old-age, survivor and child pensions.
	TemaPensjon Tema = "PEN"

	// TemaUforetrygd covers disability benefits.
	TemaUforetrygd Tema = "UFO"

	// TemaBarnepensjon is the child-survivor tema owned by the Gjenny
	// bereavement system. Only ever produced by a Gjenny override.
	TemaBarnepensjon Tema = "EYB"

	// TemaOmstilling is the resettlement-benefit tema owned by Gjenny.
	TemaOmstilling Tema = "EYO"
)

func (t Tema) String() string { return string(t) }

// Behandlingstema is the finer administrative category used to pick an
// owning unit when the primary router abstains.
type Behandlingstema string

const (
	BehandlingstemaAlder           Behandlingstema = "ab0254"
	BehandlingstemaGjenlevende     Behandlingstema = "ab0011"
	BehandlingstemaBarnepensjon    Behandlingstema = "ab0255"
	BehandlingstemaUforepensjon    Behandlingstema = "ab0194"
	BehandlingstemaTilbakebetaling Behandlingstema = "ab0007"
)

func (b Behandlingstema) String() string { return string(b) }
