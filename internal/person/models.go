package person

import "time"

// LandkodeNorge is the three-letter country code the person registry uses
// for residents of Norway.
const LandkodeNorge = "NOR"

// Diskresjonskode marks a restricted-address category on a person.
type Diskresjonskode string

const (
	DiskresjonIngen            Diskresjonskode = ""
	DiskresjonStrengtFortrolig Diskresjonskode = "SPSF"
	DiskresjonFortrolig        Diskresjonskode = "SPFO"
)

// Gradert reports whether the person carries any restricted-address marker.
func (d Diskresjonskode) Gradert() bool {
	return d == DiskresjonStrengtFortrolig || d == DiskresjonFortrolig
}

// Rolle is the person's relationship to the case.
type Rolle string

const (
	RolleForsikret   Rolle = "FORSIKRET"
	RolleGjenlevende Rolle = "GJENLEVENDE"
	RolleAvdod       Rolle = "AVDOD"
	RolleBarn        Rolle = "BARN"
	RolleVerge       Rolle = "VERGE"
)

// Person is a resolved identity from the person registry.
type Person struct {
	// Fnr is the national identity number. Empty when the registry entry was
	// matched by other means.
	Fnr string `json:"fnr,omitempty"`

	// AktoerID is the stable internal person key used by the case registry
	// and the task system.
	AktoerID string `json:"aktoerId"`

	Foedselsdato          *time.Time      `json:"foedselsdato,omitempty"`
	Bostedsland           string          `json:"bostedsland,omitempty"`
	GeografiskTilknytning string          `json:"geografiskTilknytning,omitempty"`
	Diskresjonskode       Diskresjonskode `json:"diskresjonskode,omitempty"`
	Rolle                 Rolle           `json:"rolle,omitempty"`
}

// BosattNorge reports whether the person resides in Norway.
func (p *Person) BosattNorge() bool {
	return p != nil && p.Bostedsland == LandkodeNorge
}
