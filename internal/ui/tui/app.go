package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type resultItem struct {
	label string
	value string
}

func (i resultItem) Title() string       { return i.value }
func (i resultItem) Description() string { return i.label }
func (i resultItem) FilterValue() string { return i.value }

type model struct {
	theme Theme
	deps  Deps

	input   textinput.Model
	results list.Model

	// seq increments on every input change; convertDoneMsg carrying an older
	// seq is stale and dropped.
	seq  int
	hint string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	in := textinput.New()
	in.Placeholder = `2/4, 0.1(6), 0.333...`
	in.Prompt = "> "
	in.Focus()

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Results"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return model{
		theme:   t,
		deps:    deps,
		input:   in,
		results: l,
		hint:    "Type a fraction or a decimal",
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.results.SetSize(w-8, h-12)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "down":
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		if value := m.input.Value(); value != before {
			m.seq++
			if value == "" {
				m.results.SetItems(nil)
				m.hint = "Type a fraction or a decimal"
				return m, cmd
			}
			return m, tea.Batch(cmd, cmdConvert(m.deps.Converter, m.deps.Logger, m.seq, value))
		}
		return m, cmd

	case convertDoneMsg:
		if msg.seq != m.seq {
			return m, nil
		}

		if msg.err != nil {
			m.results.SetItems(nil)
			m.hint = userMessage(msg.err)
			return m, nil
		}

		items := make([]list.Item, 0, len(msg.results))
		for _, r := range msg.results {
			items = append(items, resultItem{label: r.Label, value: r.Value})
		}
		m.results.SetItems(items)
		m.hint = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("fracto") + "\n" +
		m.theme.Subtitle.Render("Exact fraction ↔ decimal conversion") + "\n"

	body := m.results.View()
	if m.hint != "" {
		body = m.theme.Subtitle.Render(m.hint)
	}

	help := m.theme.Help.Render("↑/↓ navigate • esc quit")
	return wrap.Render(header + "\n" + m.input.View() + "\n\n" + m.theme.Card.Render(body) + "\n" + help)
}
