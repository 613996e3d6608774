package models

import (
	"encoding/json"
	"fmt"
)

// uforePensjonstype is the EESSI code for a disability-type pension in the
// pension-type fields carried by P5000/P6000/P7000/P10000.
const uforePensjonstype = "03"

// Document is the structured content of the SED the current event refers to.
type Document interface {
	Type() SedType
	// NavSaksnummer returns the national case number the sending institution
	// stamped on the document, or "" when none is present.
	NavSaksnummer() string
}

// HarUforeIndikator is implemented by document contents that carry an
// explicit pension-type field. Each SED type stores the field under its own
// structural path, so the classifier queries the capability instead of
// type-casing on content layout.
type HarUforeIndikator interface {
	ErUforepensjon() bool
}

// Eessisak is a national case reference stamped on the document.
type Eessisak struct {
	InstitusjonsID string `json:"institusjonsid"`
	Saksnummer     string `json:"saksnummer"`
	Land           string `json:"land"`
}

// Sivilstand is one civil-status entry on the document's person block.
type Sivilstand struct {
	Fradato string `json:"fradato"`
	Status  string `json:"status"`
}

// Statsborgerskap is one citizenship entry on the document's person block.
type Statsborgerskap struct {
	Land string `json:"land"`
}

// Pin is one national identifier entry on a person block.
type Pin struct {
	Land          string `json:"land"`
	Identifikator string `json:"identifikator"`
}

// Person is the person block carried by claim documents.
type Person struct {
	Fornavn         string            `json:"fornavn"`
	Etternavn       string            `json:"etternavn"`
	Foedselsdato    string            `json:"foedselsdato"`
	Pin             []Pin             `json:"pin"`
	Sivilstand      []Sivilstand      `json:"sivilstand"`
	Statsborgerskap []Statsborgerskap `json:"statsborgerskap"`
}

// NorskIdent returns the Norwegian identifier on the person block, or "".
func (p *Person) NorskIdent() string {
	if p == nil {
		return ""
	}
	for _, pin := range p.Pin {
		if pin.Land == "NO" && pin.Identifikator != "" {
			return pin.Identifikator
		}
	}
	return ""
}

// Bruker wraps the person block.
type Bruker struct {
	Person *Person `json:"person"`
}

// Nav is the national section present on every SED.
type Nav struct {
	Eessisak    []Eessisak `json:"eessisak"`
	Bruker      *Bruker    `json:"bruker"`
	AnnenPerson *Bruker    `json:"annenperson"`
}

type sedBase struct {
	Nav *Nav `json:"nav"`
}

// Personer returns the person blocks on the document, main user first.
func (s sedBase) Personer() []*Person {
	if s.Nav == nil {
		return nil
	}
	var personer []*Person
	if s.Nav.Bruker != nil && s.Nav.Bruker.Person != nil {
		personer = append(personer, s.Nav.Bruker.Person)
	}
	if s.Nav.AnnenPerson != nil && s.Nav.AnnenPerson.Person != nil {
		personer = append(personer, s.Nav.AnnenPerson.Person)
	}
	return personer
}

func (s sedBase) NavSaksnummer() string {
	if s.Nav == nil {
		return ""
	}
	for _, sak := range s.Nav.Eessisak {
		if sak.Land == "NO" && sak.Saksnummer != "" {
			return sak.Saksnummer
		}
	}
	return ""
}

// P2000 is the old-age pension claim document.
type P2000 struct {
	sedBase
}

func (*P2000) Type() SedType { return SedP2000 }

// P2100 is the survivor pension claim document.
type P2100 struct {
	sedBase
}

func (*P2100) Type() SedType { return SedP2100 }

// P2200 is the disability pension claim document.
type P2200 struct {
	sedBase
}

func (*P2200) Type() SedType { return SedP2200 }

// P5000 carries insurance periods; the pension type sits on each ytelse entry.
type P5000 struct {
	sedBase
	Pensjon *P5000Pensjon `json:"pensjon"`
}

type P5000Pensjon struct {
	Ytelser []P5000Ytelse `json:"ytelser"`
}

type P5000Ytelse struct {
	Pensjonstype string `json:"pensjonstype"`
}

func (*P5000) Type() SedType { return SedP5000 }

func (p *P5000) ErUforepensjon() bool {
	if p.Pensjon == nil {
		return false
	}
	for _, y := range p.Pensjon.Ytelser {
		if y.Pensjonstype == uforePensjonstype {
			return true
		}
	}
	return false
}

// P6000 is a pension decision; the pension type sits on each vedtak entry.
type P6000 struct {
	sedBase
	Pensjon *P6000Pensjon `json:"pensjon"`
}

type P6000Pensjon struct {
	Vedtak []P6000Vedtak `json:"vedtak"`
}

type P6000Vedtak struct {
	Type string `json:"type"`
}

func (*P6000) Type() SedType { return SedP6000 }

func (p *P6000) ErUforepensjon() bool {
	if p.Pensjon == nil {
		return false
	}
	for _, v := range p.Pensjon.Vedtak {
		if v.Type == uforePensjonstype {
			return true
		}
	}
	return false
}

// P7000 is a summary of decisions; the pension type sits on each granted
// pension under samletVedtak.
type P7000 struct {
	sedBase
	Pensjon *P7000Pensjon `json:"pensjon"`
}

type P7000Pensjon struct {
	SamletVedtak *P7000SamletVedtak `json:"samletVedtak"`
}

type P7000SamletVedtak struct {
	TildeltePensjoner []P7000TildeltPensjon `json:"tildeltePensjoner"`
}

type P7000TildeltPensjon struct {
	PensjonType string `json:"pensjonType"`
}

func (*P7000) Type() SedType { return SedP7000 }

func (p *P7000) ErUforepensjon() bool {
	if p.Pensjon == nil || p.Pensjon.SamletVedtak == nil {
		return false
	}
	for _, t := range p.Pensjon.SamletVedtak.TildeltePensjoner {
		if t.PensjonType == uforePensjonstype {
			return true
		}
	}
	return false
}

// P10000 transfers additional information; the pension type sits under
// merinformasjon.
type P10000 struct {
	sedBase
	Pensjon *P10000Pensjon `json:"pensjon"`
}

type P10000Pensjon struct {
	Merinformasjon *P10000Merinformasjon `json:"merinformasjon"`
}

type P10000Merinformasjon struct {
	Ytelser []P10000Ytelse `json:"ytelser"`
}

type P10000Ytelse struct {
	Ytelsestype string `json:"ytelsestype"`
}

func (*P10000) Type() SedType { return SedP10000 }

func (p *P10000) ErUforepensjon() bool {
	if p.Pensjon == nil || p.Pensjon.Merinformasjon == nil {
		return false
	}
	for _, y := range p.Pensjon.Merinformasjon.Ytelser {
		if y.Ytelsestype == uforePensjonstype {
			return true
		}
	}
	return false
}

// Generisk covers SED types without a modeled content layout. Only the nav
// section is decoded.
type Generisk struct {
	sedBase
	sedType SedType
}

func (g *Generisk) Type() SedType { return g.sedType }

// ParseSed decodes raw document content into the concrete type for the given
// SED type. Unknown types decode into Generisk.
func ParseSed(sedType SedType, payload []byte) (Document, error) {
	var doc Document
	switch sedType {
	case SedP2000:
		doc = &P2000{}
	case SedP2100:
		doc = &P2100{}
	case SedP2200:
		doc = &P2200{}
	case SedP5000:
		doc = &P5000{}
	case SedP6000:
		doc = &P6000{}
	case SedP7000:
		doc = &P7000{}
	case SedP10000:
		doc = &P10000{}
	default:
		doc = &Generisk{sedType: sedType}
	}
	if err := json.Unmarshal(payload, doc); err != nil {
		return nil, fmt.Errorf("decode %s content: %w", sedType, err)
	}
	return doc, nil
}
