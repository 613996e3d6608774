// Package identity derives age and birth-date signals from Norwegian national
// identity numbers. Parsing never fails loudly: a malformed or placeholder
// ident resolves to "unknown" and routing falls back accordingly.
package identity

import (
	"time"
)

var (
	k1Weights = [9]int{3, 7, 6, 1, 8, 9, 4, 5, 2}
	k2Weights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
)

// ErNpid reports whether the ident belongs to the secondary id-space issued
// to persons without a civil-registry entry. The month field is offset by 20,
// and the digits do not encode a usable birth date; callers must supply the
// birth date from the document instead.
func ErNpid(ident string) bool {
	if !wellFormed(ident) {
		return false
	}
	month := digits2(ident, 2)
	return month >= 21 && month <= 32
}

// Foedselsdato extracts the birth date encoded in an ordinary ident or a
// D-number. Returns false for malformed idents, placeholder idents, NPIDs and
// idents whose control digits do not verify.
func Foedselsdato(ident string) (time.Time, bool) {
	if !Gyldig(ident) || ErNpid(ident) {
		return time.Time{}, false
	}

	day := digits2(ident, 0)
	if day > 40 { // D-number
		day -= 40
	}
	month := digits2(ident, 2)
	year := digits2(ident, 4)
	individ := digits3(ident, 6)

	century, ok := century(year, individ)
	if !ok {
		return time.Time{}, false
	}

	birth := time.Date(century+year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components; a shifted date means the
	// encoded day/month was impossible.
	if birth.Day() != day || int(birth.Month()) != month {
		return time.Time{}, false
	}
	return birth, true
}

// Alder resolves the whole-year age encoded in the ident as of now. The
// second return is false when no age can be derived.
func Alder(ident string, now time.Time) (int, bool) {
	birth, ok := Foedselsdato(ident)
	if !ok {
		return 0, false
	}
	return AlderFraDato(birth, now), true
}

// AlderFraDato computes whole elapsed years between birth and now, not
// calendar-year subtraction.
func AlderFraDato(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// Gyldig reports whether the ident is a well-formed, non-placeholder national
// identity number with verifying control digits. NPIDs are considered valid
// idents; they simply lack a birth-date encoding.
func Gyldig(ident string) bool {
	if !wellFormed(ident) {
		return false
	}
	if placeholder(ident) {
		return false
	}
	return kontrollsifre(ident)
}

func wellFormed(ident string) bool {
	if len(ident) != 11 {
		return false
	}
	for _, r := range ident {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// placeholder catches the non-person idents institutions stamp on documents
// when no real user is known.
func placeholder(ident string) bool {
	zero := true
	for _, r := range ident[6:] {
		if r != '0' {
			zero = false
			break
		}
	}
	return zero
}

func kontrollsifre(ident string) bool {
	var d [11]int
	for i := 0; i < 11; i++ {
		d[i] = int(ident[i] - '0')
	}

	sum := 0
	for i, w := range k1Weights {
		sum += d[i] * w
	}
	k1 := 11 - sum%11
	if k1 == 11 {
		k1 = 0
	}
	if k1 == 10 || k1 != d[9] {
		return false
	}

	sum = 0
	for i, w := range k2Weights {
		sum += d[i] * w
	}
	k2 := 11 - sum%11
	if k2 == 11 {
		k2 = 0
	}
	return k2 != 10 && k2 == d[10]
}

// century resolves the two-digit year against the individnummer series.
func century(year, individ int) (int, bool) {
	switch {
	case individ < 500:
		return 1900, true
	case individ < 750 && year >= 54:
		return 1800, true
	case individ >= 900 && year >= 40:
		return 1900, true
	case year < 40:
		return 2000, true
	default:
		return 0, false
	}
}

func digits2(s string, i int) int {
	return int(s[i]-'0')*10 + int(s[i+1]-'0')
}

func digits3(s string, i int) int {
	return int(s[i]-'0')*100 + int(s[i+1]-'0')*10 + int(s[i+2]-'0')
}
