// Package staticdata ships a bundled movie dataset that is served without
// any network access. Records use composite Language_Year_Position ids so
// they can be told apart from IMDb ids.
package staticdata

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tkarvinen/moviedeck/internal/movie"
)

// DefaultLanguage is served when a requested language is not in the dataset.
const DefaultLanguage = "English"

//go:embed movies.json
var moviesFS embed.FS

var (
	loadOnce  sync.Once
	byLang    map[string][]movie.Raw
	languages []string
)

// load parses the embedded dataset once. The file ships inside the binary,
// so a parse failure is a build defect and panics.
func load() {
	loadOnce.Do(func() {
		data, err := moviesFS.ReadFile("movies.json")
		if err != nil {
			panic(fmt.Sprintf("bundled dataset missing: %v", err))
		}
		if err := json.Unmarshal(data, &byLang); err != nil {
			panic(fmt.Sprintf("bundled dataset corrupt: %v", err))
		}
		for lang := range byLang {
			languages = append(languages, lang)
		}
		sort.Strings(languages)
	})
}

// Languages returns the dataset's languages in sorted order.
func Languages() []string {
	load()
	out := make([]string, len(languages))
	copy(out, languages)
	return out
}

// ByLanguage returns the bundled records for a language. The boolean reports
// whether the language is modeled; callers fall back to DefaultLanguage when
// it is not.
func ByLanguage(language string) ([]movie.Raw, bool) {
	load()
	records, ok := byLang[language]
	if !ok {
		return nil, false
	}
	out := make([]movie.Raw, len(records))
	copy(out, records)
	return out, true
}

// FindByID looks up a single bundled record by its composite id.
func FindByID(id string) (movie.Raw, bool) {
	load()
	lang, _, ok := splitID(id)
	if !ok {
		return movie.Raw{}, false
	}
	for _, raw := range byLang[lang] {
		if raw.ID == id {
			return raw, true
		}
	}
	return movie.Raw{}, false
}

// IsStaticID reports whether an id belongs to the bundled dataset. IMDb ids
// ("tt"-prefixed) are never static; everything else must parse as
// Language_Year_Position with a language the dataset actually models.
func IsStaticID(id string) bool {
	load()
	_, _, ok := splitID(id)
	return ok
}

func splitID(id string) (lang, rest string, ok bool) {
	if strings.HasPrefix(id, "tt") {
		return "", "", false
	}
	parts := strings.Split(id, "_")
	if len(parts) < 3 {
		return "", "", false
	}
	if _, known := byLang[parts[0]]; !known {
		return "", "", false
	}
	return parts[0], strings.Join(parts[1:], "_"), true
}
