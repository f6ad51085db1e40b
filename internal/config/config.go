package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// OMDBAPIKey is the API key for OMDb (Open Movie Database)
	OMDBAPIKey string
	// StateDBFile is the SQLite file holding cache, favorites, and preferences
	StateDBFile string
	// PosterDir is where downloaded poster images are saved
	PosterDir string
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("storage.dbfile", "./moviedeck.db")
	viper.SetDefault("posters.dir", "./Images/")
	viper.SetDefault("cache.listing_ttl", "1h")
	viper.SetDefault("cache.detail_ttl", "24h")

	// Get values from viper
	OMDBAPIKey = viper.GetString("OMDBAPIKey")
	StateDBFile = viper.GetString("storage.dbfile")
	PosterDir = viper.GetString("posters.dir")
}
