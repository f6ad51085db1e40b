package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tkarvinen/moviedeck/internal/event"
	"github.com/tkarvinen/moviedeck/internal/movie"
	"github.com/tkarvinen/moviedeck/internal/prefs"
)

// output is overridable in tests.
var output io.Writer = os.Stdout

type renderStyles struct {
	title    lipgloss.Style
	meta     lipgloss.Style
	overview lipgloss.Style
	favorite lipgloss.Style
	heading  lipgloss.Style
}

func stylesForTheme(theme string) renderStyles {
	titleColor := lipgloss.Color("254")
	metaColor := lipgloss.Color("247")
	if theme == "light" {
		titleColor = lipgloss.Color("235")
		metaColor = lipgloss.Color("240")
	}

	return renderStyles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(titleColor),
		meta:     lipgloss.NewStyle().Foreground(metaColor).Faint(true),
		overview: lipgloss.NewStyle().Foreground(metaColor),
		favorite: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("211")),
		heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")).MarginBottom(1),
	}
}

func (a *app) styles() renderStyles {
	return stylesForTheme(a.prefs.Load().Theme)
}

// renderList prints one line per movie. The favorite marker is re-checked
// against the live store because cached records may carry a stale flag.
func (a *app) renderList(heading string, movies []movie.Movie) {
	styles := a.styles()

	fmt.Fprintln(output, styles.heading.Render(heading))
	if len(movies) == 0 {
		fmt.Fprintln(output, styles.meta.Render("  (no movies)"))
		return
	}

	for _, m := range movies {
		marker := "  "
		if a.favorites.IsFavorite(m.ID) {
			marker = styles.favorite.Render("♥") + " "
		}
		line := fmt.Sprintf("%s%s (%s)", marker, styles.title.Render(m.Title), m.Year)
		meta := fmt.Sprintf("%s/10 | %s | %s", m.Rating, m.Genre, m.ID)
		fmt.Fprintln(output, line)
		fmt.Fprintln(output, "    "+styles.meta.Render(meta))
	}
}

func (a *app) renderDetail(m *movie.Movie) {
	styles := a.styles()

	header := fmt.Sprintf("%s (%s)", m.Title, m.Year)
	if a.favorites.IsFavorite(m.ID) {
		header += " " + styles.favorite.Render("♥")
	}
	fmt.Fprintln(output, styles.title.Render(header))

	fields := []struct {
		label, value string
	}{
		{"ID", m.ID},
		{"Rating", m.Rating + "/10"},
		{"Genre", m.Genre},
		{"Language", m.Language},
		{"Director", m.Director},
		{"Actors", m.Actors},
		{"Released", m.ReleaseDate},
		{"Runtime", m.Runtime},
		{"Poster", m.PosterURL},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(output, "  %s %s\n", styles.meta.Render(f.label+":"), f.value)
	}

	if m.Overview != "" {
		fmt.Fprintln(output)
		fmt.Fprintln(output, "  "+styles.overview.Render(m.Overview))
	}
}

var toastStyles = map[event.Severity]lipgloss.Style{
	event.SeverityInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
	event.SeveritySuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	event.SeverityError:   lipgloss.NewStyle().Foreground(lipgloss.Color("161")).Bold(true),
}

// renderToast prints a transient notification published on the event bus.
func renderToast(t event.Toast) {
	style, ok := toastStyles[t.Severity]
	if !ok {
		style = toastStyles[event.SeverityInfo]
	}
	label := strings.ToUpper(t.Severity.String())
	fmt.Fprintln(output, style.Render(fmt.Sprintf("[%s] %s", label, t.Message)))
}

func themeSummary(p prefs.Preferences) string {
	return fmt.Sprintf("theme: %s\nlanguages: %s", p.Theme, strings.Join(p.Languages, ", "))
}
