// Package ports declares the interfaces the presentation layers depend on,
// keeping them decoupled from concrete implementations.
package ports

import "github.com/afuentes/fracto/internal/domain"

// Converter turns a raw input string into labeled results. Implemented by
// usecase.Converter; the TUI depends on this interface so tests can swap in
// fakes.
type Converter interface {
	Classify(input string) domain.InputKind
	Convert(input string) ([]domain.Result, error)
}
