package tui

import (
	"log/slog"

	"github.com/afuentes/fracto/internal/ports"
)

type Deps struct {
	Converter ports.Converter

	Logger *slog.Logger
	Debug  bool
}
