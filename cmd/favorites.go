package cmd

import (
	"context"
	"fmt"

	"github.com/tkarvinen/moviedeck/internal/event"
)

// FavoritesCmd represents the favorites command and its subcommands
type FavoritesCmd struct {
	List   FavoritesListCmd   `cmd:"" default:"1" help:"List favorite movies"`
	Add    FavoritesAddCmd    `cmd:"" help:"Add a movie to favorites by id"`
	Remove FavoritesRemoveCmd `cmd:"" help:"Remove a movie from favorites by id"`
	Clear  FavoritesClearCmd  `cmd:"" help:"Remove all favorites"`
}

// FavoritesListCmd lists the favorites in insertion order
type FavoritesListCmd struct{}

func (f *FavoritesListCmd) Run() error {
	app, err := newAppFunc()
	if err != nil {
		return err
	}
	defer app.Close()

	app.renderList("Favorites", app.favorites.List())
	return nil
}

// FavoritesAddCmd adds one movie to the favorites set
type FavoritesAddCmd struct {
	ID string `arg:"" help:"IMDb id or bundled catalog id"`
}

func (f *FavoritesAddCmd) Run() error {
	app, err := newAppFunc()
	if err != nil {
		return err
	}
	defer app.Close()

	m := app.catalog.GetByID(context.Background(), f.ID)
	if m == nil {
		return fmt.Errorf("movie %s not found", f.ID)
	}

	if !app.favorites.Add(*m) {
		app.bus.PublishToast(fmt.Sprintf("%s is already a favorite.", m.Title), event.SeverityInfo)
		return nil
	}
	app.bus.PublishToast(fmt.Sprintf("Added %s to favorites.", m.Title), event.SeveritySuccess)
	return nil
}

// FavoritesRemoveCmd removes one movie from the favorites set
type FavoritesRemoveCmd struct {
	ID string `arg:"" help:"IMDb id or bundled catalog id"`
}

func (f *FavoritesRemoveCmd) Run() error {
	app, err := newAppFunc()
	if err != nil {
		return err
	}
	defer app.Close()

	if !app.favorites.Remove(f.ID) {
		return fmt.Errorf("failed to remove %s from favorites", f.ID)
	}
	app.bus.PublishToast(fmt.Sprintf("Removed %s from favorites.", f.ID), event.SeveritySuccess)
	return nil
}

// FavoritesClearCmd empties the favorites set
type FavoritesClearCmd struct{}

func (f *FavoritesClearCmd) Run() error {
	app, err := newAppFunc()
	if err != nil {
		return err
	}
	defer app.Close()

	if !app.favorites.Clear() {
		return fmt.Errorf("failed to clear favorites")
	}
	app.bus.PublishToast("Cleared all favorites.", event.SeveritySuccess)
	return nil
}
