package models

import "time"

// harPersoner is satisfied by every modeled content type through sedBase.
type harPersoner interface {
	Personer() []*Person
}

// NorskIdent extracts the main user's Norwegian identifier from the
// document, or "" when the document carries none.
func NorskIdent(doc Document) string {
	personer := personerFra(doc)
	if len(personer) == 0 {
		return ""
	}
	return personer[0].NorskIdent()
}

// FoedselsdatoFraDokument extracts the main user's stated birth date. Nil
// when absent or unparsable.
func FoedselsdatoFraDokument(doc Document) *time.Time {
	personer := personerFra(doc)
	if len(personer) == 0 || personer[0].Foedselsdato == "" {
		return nil
	}
	fd, err := time.Parse("2006-01-02", personer[0].Foedselsdato)
	if err != nil {
		return nil
	}
	return &fd
}

// AntallPersoner counts the person blocks on the document.
func AntallPersoner(doc Document) int {
	return len(personerFra(doc))
}

func personerFra(doc Document) []*Person {
	hp, ok := doc.(harPersoner)
	if !ok || doc == nil {
		return nil
	}
	return hp.Personer()
}
