package sak

// GyldigSaksnummer reports whether an id matches the domestic pension case
// numbering pattern: exactly 8 digits with a leading 1 or 2. Ids from foreign
// institutions and RINA case ids do not match and must never be linked as a
// national case reference.
func GyldigSaksnummer(id string) bool {
	if len(id) != 8 {
		return false
	}
	if id[0] != '1' && id[0] != '2' {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
