package models

// SedType identifies the kind of structured cross-border pension document
// exchanged through EESSI.
type SedType string

const (
	SedP2000  SedType = "P2000"  // old-age pension claim
	SedP2100  SedType = "P2100"  // survivor pension claim
	SedP2200  SedType = "P2200"  // disability pension claim
	SedP5000  SedType = "P5000"  // insurance periods
	SedP6000  SedType = "P6000"  // pension decision
	SedP7000  SedType = "P7000"  // summary of decisions
	SedP8000  SedType = "P8000"  // request for additional information
	SedP10000 SedType = "P10000" // transfer of additional information
	SedP15000 SedType = "P15000" // transfer of pension claim
)

// BucType is the case family a SED belongs to.
type BucType string

const (
	PBuc01 BucType = "P_BUC_01" // old-age pension claim
	PBuc02 BucType = "P_BUC_02" // survivor pension claim
	PBuc03 BucType = "P_BUC_03" // disability pension claim
	PBuc04 BucType = "P_BUC_04" // care period notification
	PBuc05 BucType = "P_BUC_05" // insurance period coordination
	PBuc06 BucType = "P_BUC_06" // life-event / entitlement exchange
	PBuc07 BucType = "P_BUC_07" // pension application exchange
	PBuc08 BucType = "P_BUC_08" // pension application exchange
	PBuc09 BucType = "P_BUC_09" // multi-party information exchange
	PBuc10 BucType = "P_BUC_10" // multi-party pension claim
	HBuc07 BucType = "H_BUC_07" // horizontal information exchange
)

// pensionBucTypes is the closed set of case families this service handles.
var pensionBucTypes = map[BucType]bool{
	PBuc01: true, PBuc02: true, PBuc03: true, PBuc04: true, PBuc05: true,
	PBuc06: true, PBuc07: true, PBuc08: true, PBuc09: true, PBuc10: true,
	HBuc07: true,
}

// ErPensjonBuc reports whether the buc type belongs to the pension sector
// case families this service routes.
func (b BucType) ErPensjonBuc() bool {
	return pensionBucTypes[b]
}

// HendelseType is the direction of a SED event.
type HendelseType string

const (
	// HendelseMottatt marks an inbound document received from a foreign
	// institution.
	HendelseMottatt HendelseType = "MOTTATT"

	// HendelseSendt marks an outbound document sent from NAV.
	HendelseSendt HendelseType = "SENDT"
)

func (h HendelseType) String() string { return string(h) }
