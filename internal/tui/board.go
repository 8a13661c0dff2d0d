package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/engine"
)

func RunBoard(ctx context.Context, svc *engine.Service, userKey string, out io.Writer) error {
	m := newBoardModel(ctx, svc, userKey)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
