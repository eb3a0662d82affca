package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/structpack"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	err      error
	formatIn textinput.Model
	inputs   []textinput.Model
	fields   []field
	decoded  []structpack.Value
	packed   []byte
	format   string
	size     int
	focusIdx int
	state    modelState
}

type modelState int

const (
	stateFormat modelState = iota
	stateValues
	stateResult
)

func newInspectorModel(format string) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "<h x I ?"
	ti.Prompt = "format: "
	ti.Width = 40
	ti.SetValue(format)
	ti.Focus()
	return &inspectorModel{formatIn: ti, state: stateFormat}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "enter":
			switch m.state {
			case stateFormat:
				fields, size, err := layoutOf(m.formatIn.Value())
				if err != nil || len(fields) == 0 {
					break
				}
				m.format = m.formatIn.Value()
				m.fields = fields
				m.size = size
				m.prepareInputs()
				m.state = stateValues

			case stateValues:
				m.packValues()
				m.state = stateResult

			case stateResult:
				m.state = stateFormat
				m.formatIn.Focus()
				m.err = nil
			}
			return m, nil

		case "tab":
			if m.state == stateValues && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateValues:
				m.state = stateFormat
				m.formatIn.Focus()
				m.inputs = nil
			case stateResult:
				m.state = stateValues
				m.err = nil
			case stateFormat:
				return m, tea.Quit
			}
			return m, nil
		}
	}

	switch m.state {
	case stateFormat:
		var cmd tea.Cmd
		m.formatIn, cmd = m.formatIn.Update(msg)
		return m, cmd

	case stateValues:
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *inspectorModel) prepareInputs() {
	m.inputs = make([]textinput.Model, len(m.fields))
	for i, f := range m.fields {
		ti := textinput.New()
		ti.Placeholder = f.kind.String()
		ti.Prompt = fmt.Sprintf("[%d] %c: ", i, f.kind.Tag())
		ti.Width = 24
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *inspectorModel) packValues() {
	values := make([]structpack.Value, len(m.inputs))
	for i, input := range m.inputs {
		v, err := parseValue(strings.TrimSpace(input.Value()), m.fields[i].kind)
		if err != nil {
			m.err = err
			return
		}
		values[i] = v
	}

	packed, err := structpack.Pack(m.format, values...)
	if err != nil {
		m.err = err
		return
	}

	decoded, err := structpack.UnpackValues(m.format, packed)
	if err != nil {
		m.err = err
		return
	}

	m.packed = packed
	m.decoded = decoded
	m.err = nil
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("structpack"))
	b.WriteString("\n\n")

	switch m.state {
	case stateFormat:
		b.WriteString(m.formatIn.View())
		b.WriteString("\n\n")
		m.viewLayout(&b, m.formatIn.Value())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter edit values • esc quit"))

	case stateValues:
		b.WriteString(fmt.Sprintf("Format %s, %d bytes\n\n", tagStyle.Render(m.format), m.size))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(kindStyle.Render(m.fields[i].kind.String()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter pack • esc back"))

	case stateResult:
		b.WriteString(fmt.Sprintf("Format %s\n\n", tagStyle.Render(m.format)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString("Packed:  ")
			b.WriteString(resultStyle.Render(fmt.Sprintf("% x", m.packed)))
			b.WriteString("\n\nDecoded:\n")
			for i, v := range m.decoded {
				b.WriteString(fmt.Sprintf("  [%d] offset %d: %s\n",
					i, m.fields[i].offset, resultStyle.Render(v.String())))
			}
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter new format • esc edit values"))
	}

	return b.String()
}

// viewLayout renders the live layout table for the format being typed, or
// the parse error when the text is not a valid format.
func (m *inspectorModel) viewLayout(b *strings.Builder, format string) {
	fields, size, err := layoutOf(format)
	if err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("%v", err)))
		b.WriteString("\n")
		return
	}
	if len(fields) == 0 {
		b.WriteString(helpStyle.Render("type a format string, e.g. <h x I ?"))
		b.WriteString("\n")
		return
	}

	b.WriteString(fmt.Sprintf("%d bytes, %d fields\n\n", size, len(fields)))
	b.WriteString(helpStyle.Render(fmt.Sprintf("  %-6s  %-3s  %-4s  %-5s  %s", "Offset", "Tag", "Kind", "Width", "Order")))
	b.WriteString("\n")
	for _, f := range fields {
		b.WriteString(fmt.Sprintf("  %6d  %s  %s  %5d  %s\n",
			f.offset,
			tagStyle.Render(fmt.Sprintf("%-3c", f.kind.Tag())),
			kindStyle.Render(fmt.Sprintf("%-4s", f.kind)),
			f.kind.Width(), f.order))
	}
}

func runInteractive(format string) error {
	p := tea.NewProgram(newInspectorModel(format), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
