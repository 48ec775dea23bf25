// Package tui implements the interactive Bubble Tea front end for zperson.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zperson/internal/person"
)

// accent colors the header and menu cursor.
var accent = lipgloss.Color("#5fafd7")

type viewID int

const (
	viewMenu viewID = iota
	viewGenerate
	viewOptions
)

// Model is the root TUI model.
type Model struct {
	version string
	gen     *person.Generator
	opts    person.GenerateOptions

	active   viewID
	menu     menuModel
	generate generateModel
	options  optionsModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model. Generated people default to the full
// 0-100 age range with a random sex.
func New(version string, gen *person.Generator) Model {
	opts := person.GenerateOptions{MinAge: 0, MaxAge: 100}
	return Model{
		version: version,
		gen:     gen,
		opts:    opts,
		active:  viewMenu,
		menu:    newMenuModel(version, opts),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		return m.navigate(msg.view)

	case personMsg:
		m.generate = newGenerateModel(msg.person, msg.err)
		m.active = viewGenerate
		return m, nil

	case saveOptionsMsg:
		m.opts = msg.opts
		return m.navigate(viewMenu)
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	if m.active == viewMenu {
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewGenerate:
		content = m.generate.View()
	case viewOptions:
		content = m.options.View()
	}

	header := zstyle.RenderHeader("zperson", viewTitle(m.active), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewGenerate:
		return "Generated Person"
	case viewOptions:
		return "Options"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewGenerate:
		return []zstyle.HelpPair{
			{Key: "c", Desc: "copy all"},
			{Key: "enter", Desc: "copy field"},
			{Key: "n", Desc: "new"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewOptions:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "enter", Desc: "cycle/save"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewGenerate:
		m.generate, cmd = m.generate.Update(msg)
	case viewOptions:
		m.options, cmd = m.options.Update(msg)
	}

	return m, cmd
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		m.menu = newMenuModel(m.version, m.opts)
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewGenerate:
		return m, generateCmd(m.gen, m.opts)

	case viewOptions:
		m.options = newOptionsModel(m.opts)
		m.active = viewOptions
		return m, m.options.Init()
	}

	return m, nil
}

// personMsg carries the result of a generation.
type personMsg struct {
	person person.Person
	err    error
}

// generateCmd generates one person off the update loop.
func generateCmd(gen *person.Generator, opts person.GenerateOptions) tea.Cmd {
	return func() tea.Msg {
		p, err := gen.Generate(opts)
		return personMsg{person: p, err: err}
	}
}
