package domain

// Enhet is the organizational unit (case-worker queue) that owns a task or an
// automatically filed journalpost. The numeric codes are NAV unit codes and
// part of the wire contract with the task and archival systems.
type Enhet string

const (
	// EnhetAutomatiskJournalforing means no human review is needed.
	EnhetAutomatiskJournalforing Enhet = "9999"

	// EnhetIDOgFordeling is the manual-triage catch-all. The primary router
	// also returns it as an abstention signal.
	EnhetIDOgFordeling Enhet = "4303"

	// EnhetPensjonUtland handles pension cases for users residing abroad.
	EnhetPensjonUtland Enhet = "0001"

	// EnhetUforeUtland handles disability cases for users residing abroad.
	EnhetUforeUtland Enhet = "4475"

	// EnhetUforeUtlandstilsnitt handles disability cases with a foreign
	// element for users residing in Norway.
	EnhetUforeUtlandstilsnitt Enhet = "4476"

	// EnhetNFPUtlandAalesund handles pension cases with a foreign element
	// for users residing in Norway.
	EnhetNFPUtlandAalesund Enhet = "4862"

	// EnhetDiskresjonskode handles persons with a restricted address.
	EnhetDiskresjonskode Enhet = "2103"
)

func (e Enhet) String() string { return string(e) }
