package cmd

// BrowseCmd represents the browse command
type BrowseCmd struct {
	Language string `arg:"" optional:"" help:"Language to browse (defaults to the languages enabled in preferences)"`
}

func (b *BrowseCmd) Run() error {
	app, err := newAppFunc()
	if err != nil {
		return err
	}
	defer app.Close()

	if b.Language != "" {
		app.renderList(b.Language+" movies", app.catalog.ListingsByLanguage(b.Language))
		return nil
	}

	for _, language := range app.prefs.Load().Languages {
		app.renderList(language+" movies", app.catalog.ListingsByLanguage(language))
	}
	return nil
}
