package cmd

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/tkarvinen/moviedeck/internal/config"
)

// CLI represents the complete command structure for the moviedeck application
type CLI struct {
	// Global flags
	APIKey     string `help:"OMDb API key" env:"OMDB_API_KEY"`
	StateDB    string `help:"Path to the local state SQLite database file" default:"./moviedeck.db"`
	ListingTTL string `help:"Cache time-to-live for search and listing results (e.g., 1h)" default:"1h"`
	DetailTTL  string `help:"Cache time-to-live for movie details (e.g., 24h)" default:"24h"`

	Search    SearchCmd    `cmd:"" help:"Search movies by title"`
	Movie     MovieCmd     `cmd:"" help:"Show details for a single movie"`
	Browse    BrowseCmd    `cmd:"" help:"Browse the bundled listings by language"`
	Favorites FavoritesCmd `cmd:"" help:"Manage favorite movies"`
	Theme     ThemeCmd     `cmd:"" help:"Show or change UI preferences"`
	Cache     CacheCmd     `cmd:"" help:"Manage the local cache"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("moviedeck"),
		kong.Description("Discover movies through OMDb and a bundled offline catalog."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("storage.dbfile", "./moviedeck.db")
	viper.SetDefault("posters.dir", "./Images/")
	viper.SetDefault("cache.listing_ttl", "1h")
	viper.SetDefault("cache.detail_ttl", "24h")

	// Enable environment variable support
	viper.AutomaticEnv()
	if err := viper.BindEnv("OMDBAPIKey", "OMDB_API_KEY"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("No config file found, using defaults")
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	if cli.APIKey != "" {
		viper.Set("OMDBAPIKey", cli.APIKey)
	}
	viper.Set("storage.dbfile", cli.StateDB)
	viper.Set("cache.listing_ttl", cli.ListingTTL)
	viper.Set("cache.detail_ttl", cli.DetailTTL)

	// Refresh globals from the merged flag/env/file view
	config.InitConfig()
}

func initLogging() {
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	slog.SetDefault(slog.New(handler))
}
