package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/tkarvinen/moviedeck/internal/tui"
)

// SearchCmd represents the search command
type SearchCmd struct {
	Query       []string `arg:"" help:"Title to search for"`
	Page        int      `help:"Result page to fetch" default:"1"`
	Interactive bool     `short:"i" help:"Pick a result interactively and show its details"`
}

func (s *SearchCmd) Run() error {
	app, err := newAppFunc()
	if err != nil {
		return err
	}
	defer app.Close()

	query := strings.Join(s.Query, " ")
	ctx := context.Background()

	results := app.catalog.Search(ctx, query, s.Page)
	if !s.Interactive {
		app.renderList(fmt.Sprintf("Results for %q (page %d)", query, s.Page), results)
		return nil
	}

	selection, err := tui.SelectMovie(query, results)
	if err != nil {
		return fmt.Errorf("selection failed: %w", err)
	}
	if selection.Action != tui.ActionSelected {
		return nil
	}

	detail := app.catalog.GetByID(ctx, selection.Selection.ID)
	if detail == nil {
		return fmt.Errorf("movie %s not found", selection.Selection.ID)
	}
	app.renderDetail(detail)
	return nil
}
