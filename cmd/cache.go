package cmd

import (
	"fmt"

	"github.com/tkarvinen/moviedeck/internal/event"
)

// CacheCmd represents the cache command and its subcommands
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Drop every cached search, listing, and detail entry"`
}

// CacheClearCmd drops all cache entries, leaving favorites and preferences
// alone
type CacheClearCmd struct{}

func (c *CacheClearCmd) Run() error {
	app, err := newAppFunc()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.cache.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	app.bus.PublishToast("Cache cleared.", event.SeveritySuccess)
	return nil
}
