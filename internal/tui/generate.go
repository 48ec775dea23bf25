package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zperson/internal/cli"
	"github.com/zarlcorp/zperson/internal/format"
	"github.com/zarlcorp/zperson/internal/person"
)

// generateModel displays a generated person with actions.
type generateModel struct {
	person  person.Person
	err     error
	fields  []format.Field
	cursor  int
	flash   string
	flashAt time.Time
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func newGenerateModel(p person.Person, err error) generateModel {
	m := generateModel{person: p, err: err}
	if err == nil {
		m.fields = format.Fields(p)
	}
	return m
}

func (m generateModel) Init() tea.Cmd {
	return nil
}

func (m generateModel) Update(msg tea.Msg) (generateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m generateModel) handleKey(msg tea.KeyMsg) (generateModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if msg.String() == "n" {
		return m, func() tea.Msg { return navigateMsg{view: viewGenerate} }
	}

	// nothing to select or copy after a failed generation
	if m.err != nil {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		val := m.fields[m.cursor].Value
		if err := copyToClipboard(val); err != nil {
			return m.setFlash("copy: " + err.Error()), clearFlashAfter()
		}
		return m.setFlash("copied!"), clearFlashAfter()
	}

	if msg.String() == "c" {
		if err := copyToClipboard(m.allFieldsText()); err != nil {
			return m.setFlash("copy: " + err.Error()), clearFlashAfter()
		}
		return m.setFlash("copied all!"), clearFlashAfter()
	}

	return m, nil
}

func (m generateModel) setFlash(msg string) generateModel {
	m.flash = msg
	m.flashAt = time.Now()
	return m
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func (m generateModel) allFieldsText() string {
	var b strings.Builder
	for _, f := range m.fields {
		fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
	}
	return b.String()
}

func (m generateModel) View() string {
	s := "\n"

	if m.err != nil {
		s += "  " + zstyle.StatusErr.Render(errorText(m.err)) + "\n\n"
		return s
	}

	for i, f := range m.fields {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-11s", strings.ToLower(f.Label)))
		if i == m.cursor {
			s += zstyle.ActiveBorder.Render(fmt.Sprintf("  > %s %s", label, f.Value)) + "\n"
		} else {
			s += fmt.Sprintf("    %s %s\n", label, f.Value)
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

// errorText names the corpus problem behind a failed generation.
func errorText(err error) string {
	return "generate: " + cli.Describe(err).Error()
}
