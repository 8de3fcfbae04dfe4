package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DataConfig lists the geo-data files to load.
type DataConfig struct {
	Airports  string `json:"airports" mapstructure:"airports"`
	Visited   string `json:"visited" mapstructure:"visited"`
	Routes    string `json:"routes" mapstructure:"routes"`
	Countries string `json:"countries" mapstructure:"countries"`
}

// MapConfig holds the initial detail map view and hit-testing settings.
type MapConfig struct {
	CenterLat float64 `json:"centerLat" mapstructure:"centerLat"`
	CenterLon float64 `json:"centerLon" mapstructure:"centerLon"`
	Zoom      float64 `json:"zoom" mapstructure:"zoom"`
	MinZoom   float64 `json:"minZoom" mapstructure:"minZoom"`
	MaxZoom   float64 `json:"maxZoom" mapstructure:"maxZoom"`
	TileSize  int     `json:"tileSize" mapstructure:"tileSize"`
	HitRadius int     `json:"hitRadius" mapstructure:"hitRadius"`
}

type UIConfig struct {
	Provider int `json:"provider" mapstructure:"provider"`
}

type Config struct {
	LogLevel string     `json:"logLevel" mapstructure:"logLevel"`
	LogFile  string     `json:"logFile" mapstructure:"logFile"`
	Data     DataConfig `json:"data" mapstructure:"data"`
	Map      MapConfig  `json:"map" mapstructure:"map"`
	UI       UIConfig   `json:"ui" mapstructure:"ui"`
}

// SetDefaults registers default values on the global viper instance.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "airmap.log")

	viper.SetDefault("data.airports", "data/airports.dat")
	viper.SetDefault("data.visited", "data/visited.dat")
	viper.SetDefault("data.routes", "data/routes.dat")
	viper.SetDefault("data.countries", "data/countries.geojson")

	viper.SetDefault("map.centerLat", 50.26)
	viper.SetDefault("map.centerLon", 12.1)
	viper.SetDefault("map.zoom", 4)
	viper.SetDefault("map.minZoom", 1)
	viper.SetDefault("map.maxZoom", 10)
	viper.SetDefault("map.tileSize", 64)
	viper.SetDefault("map.hitRadius", 3)

	viper.SetDefault("ui.provider", 1)
}

// Load reads configuration and returns it typed. With an empty path, an
// optional airmap.{yaml,json,toml} is searched in the working directory and
// $HOME/.config/airmap; a missing file there is not an error. AIRMAP_* env
// vars override file values (AIRMAP_MAP_ZOOM for map.zoom).
func Load(path string) (Config, error) {
	SetDefaults()

	viper.SetEnvPrefix("airmap")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("airmap")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/airmap")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}
