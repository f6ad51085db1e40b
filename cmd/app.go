package cmd

import (
	"fmt"

	"github.com/tkarvinen/moviedeck/internal/cache"
	"github.com/tkarvinen/moviedeck/internal/catalog"
	"github.com/tkarvinen/moviedeck/internal/config"
	"github.com/tkarvinen/moviedeck/internal/event"
	"github.com/tkarvinen/moviedeck/internal/favorites"
	"github.com/tkarvinen/moviedeck/internal/omdb"
	"github.com/tkarvinen/moviedeck/internal/prefs"
	"github.com/tkarvinen/moviedeck/internal/storage"
)

// app holds the wired-up services shared by all commands. Every command
// creates one, runs, and closes it.
type app struct {
	store     storage.Store
	bus       *event.Bus
	cache     *cache.Cache
	favorites *favorites.Store
	prefs     *prefs.Store
	catalog   *catalog.Service
}

// newAppFunc is overridable in tests.
var newAppFunc = newApp

func newApp() (*app, error) {
	store, err := storage.NewSQLiteStore(config.StateDBFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	bus := event.NewBus()
	bus.OnToast(renderToast)

	c := cache.New(store)
	favs := favorites.New(store, bus)
	client := omdb.NewClient(config.OMDBAPIKey)

	return &app{
		store:     store,
		bus:       bus,
		cache:     c,
		favorites: favs,
		prefs:     prefs.New(store),
		catalog:   catalog.New(client, c, favs, bus),
	}, nil
}

func (a *app) Close() {
	_ = a.store.Close()
}
