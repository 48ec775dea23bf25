package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zperson/internal/person"
)

type menuChoice int

const (
	menuGenerate menuChoice = iota
	menuOptions
	menuQuit
)

var menuItems = []string{
	"Generate person",
	"Options",
	"Quit",
}

// menuModel is the main menu view.
type menuModel struct {
	cursor  int
	version string
	opts    person.GenerateOptions
}

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

func newMenuModel(version string, opts person.GenerateOptions) menuModel {
	return menuModel{version: version, opts: opts}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) {
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m, m.selectItem()
		}
	}

	return m, nil
}

func (m menuModel) selectItem() tea.Cmd {
	switch menuChoice(m.cursor) {
	case menuGenerate:
		return func() tea.Msg { return navigateMsg{view: viewGenerate} }
	case menuOptions:
		return func() tea.Msg { return navigateMsg{view: viewOptions} }
	case menuQuit:
		return tea.Quit
	}
	return nil
}

func (m menuModel) View() string {
	title := zstyle.Title.Render("zperson")
	ver := zstyle.MutedText.Render(m.version)

	s := fmt.Sprintf("\n  %s %s\n\n", title, ver)

	for i, item := range menuItems {
		mi := zstyle.MenuItem{
			Label:  item,
			Active: m.cursor == i,
		}
		s += zstyle.RenderMenuItem(mi, accent) + "\n"
	}

	s += "\n  " + zstyle.MutedText.Render(describeOptions(m.opts)) + "\n"
	s += "\n  " + zstyle.MutedText.Render("j/k navigate  enter select  q quit") + "\n\n"
	return s
}

// describeOptions summarizes generation options for the menu.
func describeOptions(opts person.GenerateOptions) string {
	sex := "any sex"
	if opts.Sex != "" {
		sex = string(opts.Sex)
	}
	return fmt.Sprintf("%s, age %d-%d", sex, opts.MinAge, opts.MaxAge)
}
