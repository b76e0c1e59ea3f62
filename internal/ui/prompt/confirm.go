package prompt

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/new-branch/internal/ui/styles"
)

// ConfirmResult holds the answer to a yes/no prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	prompt string
	result ConfirmResult
	done   bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.result.Confirmed = true
	case "n", "N", "enter":
	case "ctrl+c", "esc", "q":
		m.result.Cancelled = true
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) render() string {
	if m.done {
		return ""
	}
	return styles.TitleStyle.Render(m.prompt) + " " + styles.MutedStyle.Render("[y/N]") + " "
}

func (m confirmModel) View() tea.View {
	return tea.NewView(m.render())
}

// Confirm asks a yes/no question. Enter alone answers no.
func Confirm(ctx context.Context, prompt string) (ConfirmResult, error) {
	final, err := run(ctx, confirmModel{prompt: prompt})
	if err != nil {
		return ConfirmResult{}, err
	}
	return final.(confirmModel).result, nil
}
