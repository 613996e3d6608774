package journalforing

import "fmt"

// AvbruttMedGjennySakError signals the one condition the pipeline refuses to
// resolve automatically: an outbound P_BUC_02 document for a person past
// retirement age whose case also has a bereavement record in Gjenny. The
// journalpost is neither finalized nor aborted, and no task exists to carry
// it, so the error must surface to an operator instead of being swallowed.
type AvbruttMedGjennySakError struct {
	RinaSakID     string
	JournalpostID string
}

func (e *AvbruttMedGjennySakError) Error() string {
	return fmt.Sprintf("journalpost %s for rina-sak %s: sendt P_BUC_02 over aldersgrense med gjenny-sak, krever manuell behandling",
		e.JournalpostID, e.RinaSakID)
}
