package cmd

import (
	"fmt"

	"github.com/tkarvinen/moviedeck/internal/staticdata"
)

// ThemeCmd shows or updates UI preferences
type ThemeCmd struct {
	Set       string   `help:"Theme to switch to" enum:"dark,light," default:"" optional:""`
	Languages []string `help:"Languages to enable for browsing" optional:""`
}

func (t *ThemeCmd) Run() error {
	app, err := newAppFunc()
	if err != nil {
		return err
	}
	defer app.Close()

	if t.Set != "" {
		if !app.prefs.SetTheme(t.Set) {
			return fmt.Errorf("failed to save theme")
		}
	}
	if len(t.Languages) > 0 {
		for _, language := range t.Languages {
			if _, ok := staticdata.ByLanguage(language); !ok {
				return fmt.Errorf("unknown language %q (available: %v)", language, staticdata.Languages())
			}
		}
		if !app.prefs.SetLanguages(t.Languages) {
			return fmt.Errorf("failed to save languages")
		}
	}

	fmt.Fprintln(output, themeSummary(app.prefs.Load()))
	return nil
}
