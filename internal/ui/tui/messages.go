package tui

import "github.com/afuentes/fracto/internal/domain"

// convertDoneMsg carries the results for one input revision. seq ties the
// message to the keystroke that triggered it so stale conversions are
// discarded instead of overwriting newer ones.
type convertDoneMsg struct {
	seq     int
	input   string
	kind    domain.InputKind
	results []domain.Result
	err     error
}
