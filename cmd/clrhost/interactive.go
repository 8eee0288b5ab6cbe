package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/clrhost/tpa"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	asmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func newInteractiveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Pick assemblies from the application directory and run them",
		Long: `List the managed assemblies in the application directory, run the selected
one with the entered arguments and come back to the list. Every run shares
one runtime session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("interactive mode needs a terminal")
			}

			l, err := opts.start()
			if err != nil {
				return err
			}
			defer l.close()

			assemblies, err := tpa.List(l.appDir)
			if err != nil {
				return err
			}
			if len(assemblies) == 0 {
				return fmt.Errorf("no assemblies in %s", l.appDir)
			}

			var last string
			for {
				choice, err := pickAssembly(l.appDir, assemblies, last)
				if err != nil {
					return err
				}
				if choice == nil {
					return nil
				}

				name := filepath.Base(choice.path)
				code, err := l.session.ExecuteAssembly(choice.path, choice.args)
				if err != nil {
					last = errorStyle.Render(fmt.Sprintf("%s: %v", name, err))
				} else {
					last = resultStyle.Render(fmt.Sprintf("%s exited with code %d", name, code))
				}
			}
		},
	}
}

type selection struct {
	path string
	args []string
}

type pickerState int

const (
	stateSelectAssembly pickerState = iota
	stateInputArgs
)

type pickerModel struct {
	input      textinput.Model
	choice     *selection
	dir        string
	last       string
	assemblies []string
	selected   int
	state      pickerState
}

func newPickerModel(dir string, assemblies []string, last string) *pickerModel {
	ti := textinput.New()
	ti.Placeholder = "arguments"
	ti.Prompt = "args: "
	ti.Width = 60

	return &pickerModel{
		input:      ti,
		dir:        dir,
		last:       last,
		assemblies: assemblies,
		state:      stateSelectAssembly,
	}
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateSelectAssembly {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectAssembly && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectAssembly && m.selected < len(m.assemblies)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectAssembly:
				m.state = stateInputArgs
				m.input.SetValue("")
				return m, m.input.Focus()

			case stateInputArgs:
				m.choice = &selection{
					path: m.assemblies[m.selected],
					args: strings.Fields(m.input.Value()),
				}
				return m, tea.Quit
			}

		case "esc":
			if m.state == stateInputArgs {
				m.input.Blur()
				m.state = stateSelectAssembly
			}
			return m, nil
		}
	}

	if m.state == stateInputArgs {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *pickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CLR Host"))
	b.WriteString(" ")
	b.WriteString(m.dir)
	b.WriteString("\n\n")

	if m.last != "" {
		b.WriteString(m.last)
		b.WriteString("\n\n")
	}

	switch m.state {
	case stateSelectAssembly:
		b.WriteString("Select an assembly to run:\n\n")
		for i, path := range m.assemblies {
			name := filepath.Base(path)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + name))
			} else {
				b.WriteString("  " + asmStyle.Render(name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputArgs:
		b.WriteString(fmt.Sprintf("Running %s\n\n", asmStyle.Render(filepath.Base(m.assemblies[m.selected]))))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter run • esc back"))
	}

	return b.String()
}

// pickAssembly shows the picker and returns the chosen assembly, or nil when
// the user quit. The managed program runs after the picker exits so it owns
// the terminal.
func pickAssembly(dir string, assemblies []string, last string) (*selection, error) {
	p := tea.NewProgram(newPickerModel(dir, assemblies, last))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(*pickerModel).choice, nil
}
