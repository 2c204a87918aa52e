package tui

import (
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/afuentes/fracto/internal/ports"
)

func cmdConvert(conv ports.Converter, log *slog.Logger, seq int, input string) tea.Cmd {
	if log == nil {
		log = slog.Default()
	}

	return func() tea.Msg {
		if conv == nil {
			return convertDoneMsg{seq: seq, input: input, err: errors.New("Converter is nil")}
		}

		kind := conv.Classify(input)
		results, err := conv.Convert(input)

		if err != nil {
			log.Debug("convert.rejected", "input", input, "err", err)
		} else {
			log.Debug("convert.ok", "input", input, "kind", string(kind), "results", len(results))
		}

		return convertDoneMsg{seq: seq, input: input, kind: kind, results: results, err: err}
	}
}
