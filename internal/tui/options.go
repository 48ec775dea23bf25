package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zperson/internal/cli"
	"github.com/zarlcorp/zperson/internal/format"
	"github.com/zarlcorp/zperson/internal/person"
)

const (
	rowSex = iota
	rowMinAge
	rowMaxAge
	rowSave
	rowCount
)

var rowLabels = [rowCount]string{
	"sex",
	"min age",
	"max age",
	"save",
}

// sex choices cycled on the sex row; empty means random
var sexChoices = []person.Sex{"", person.Male, person.Female}

// optionsModel edits the generation options.
type optionsModel struct {
	sexIdx int
	minAge textinput.Model
	maxAge textinput.Model
	focus  int
	errMsg string
}

// saveOptionsMsg carries validated options back to the root model.
type saveOptionsMsg struct {
	opts person.GenerateOptions
}

func newOptionsModel(opts person.GenerateOptions) optionsModel {
	m := optionsModel{
		minAge: newAgeInput(opts.MinAge),
		maxAge: newAgeInput(opts.MaxAge),
	}
	for i, s := range sexChoices {
		if s == opts.Sex {
			m.sexIdx = i
		}
	}
	return m
}

func newAgeInput(v int) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 3
	ti.Width = 5
	ti.Prompt = ""
	ti.SetValue(strconv.Itoa(v))
	return ti
}

func (m optionsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m optionsModel) Update(msg tea.Msg) (optionsModel, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	// digits and deletion go to the focused age field
	if m.focus == rowMinAge || m.focus == rowMaxAge {
		if isDigits(kmsg) || kmsg.Type == tea.KeyBackspace || kmsg.Type == tea.KeyDelete {
			return m.updateInputs(msg)
		}
	}

	if key.Matches(kmsg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(kmsg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	switch {
	case key.Matches(kmsg, zstyle.KeyTab), key.Matches(kmsg, zstyle.KeyDown):
		return m.setFocus((m.focus + 1) % rowCount), nil
	case kmsg.Type == tea.KeyShiftTab, key.Matches(kmsg, zstyle.KeyUp):
		return m.setFocus((m.focus + rowCount - 1) % rowCount), nil
	}

	if key.Matches(kmsg, zstyle.KeyEnter) || kmsg.String() == " " {
		switch m.focus {
		case rowSex:
			m.sexIdx = (m.sexIdx + 1) % len(sexChoices)
			return m, nil
		case rowSave:
			return m.submit()
		default:
			return m.setFocus(m.focus + 1), nil
		}
	}

	return m, nil
}

func (m optionsModel) updateInputs(msg tea.Msg) (optionsModel, tea.Cmd) {
	var c1, c2 tea.Cmd
	m.minAge, c1 = m.minAge.Update(msg)
	m.maxAge, c2 = m.maxAge.Update(msg)
	return m, tea.Batch(c1, c2)
}

func (m optionsModel) setFocus(row int) optionsModel {
	m.focus = row
	m.minAge.Blur()
	m.maxAge.Blur()
	switch row {
	case rowMinAge:
		m.minAge.Focus()
	case rowMaxAge:
		m.maxAge.Focus()
	}
	return m
}

// submit validates the form the same way the command line does.
func (m optionsModel) submit() (optionsModel, tea.Cmd) {
	minAge, err1 := strconv.Atoi(strings.TrimSpace(m.minAge.Value()))
	maxAge, err2 := strconv.Atoi(strings.TrimSpace(m.maxAge.Value()))
	if err1 != nil || err2 != nil {
		m.errMsg = "ages must be whole numbers"
		return m, nil
	}

	req := cli.GenerateRequest{
		Sex:    string(sexChoices[m.sexIdx]),
		MinAge: minAge,
		MaxAge: maxAge,
		Count:  1,
		Format: format.Table.String(),
	}
	if err := req.Validate(); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	opts, err := req.Options()
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	return m, func() tea.Msg { return saveOptionsMsg{opts: opts} }
}

func (m optionsModel) sexLabel() string {
	if s := sexChoices[m.sexIdx]; s != "" {
		return string(s)
	}
	return "Any"
}

func (m optionsModel) View() string {
	s := "\n"

	for i, label := range rowLabels {
		var value string
		switch i {
		case rowSex:
			value = m.sexLabel()
		case rowMinAge:
			value = m.minAge.View()
		case rowMaxAge:
			value = m.maxAge.View()
		}

		l := zstyle.MutedText.Render(fmt.Sprintf("%-8s", label))
		if i == rowSave {
			l = label
		}
		if i == m.focus {
			s += zstyle.Highlight.Render(fmt.Sprintf("  > %s %s", l, value)) + "\n"
		} else {
			s += fmt.Sprintf("    %s %s\n", l, value)
		}
	}

	s += "\n"
	if m.errMsg != "" {
		s += "  " + zstyle.StatusErr.Render(m.errMsg) + "\n"
	} else {
		s += "\n"
	}
	return s
}

func isDigits(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	for _, r := range msg.Runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
