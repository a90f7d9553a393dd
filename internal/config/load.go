package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the resolved settings for one run.
type Config struct {
	ResultsDir string
	OutDir     string
	Prefix     string
	Verbose    bool
}

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".netioplot")
	}

	viper.SetEnvPrefix("NETIOPLOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Set defaults
	viper.SetDefault("results_dir", "results")
	viper.SetDefault("out_dir", ".")
	viper.SetDefault("prefix", "MT25033")
	viper.SetDefault("verbose", false)

	// If a config file is found, read it in. Not having one is fine.
	_ = viper.ReadInConfig()
}

// FromViper snapshots the current viper state into a Config.
func FromViper() Config {
	return Config{
		ResultsDir: viper.GetString("results_dir"),
		OutDir:     viper.GetString("out_dir"),
		Prefix:     viper.GetString("prefix"),
		Verbose:    viper.GetBool("verbose"),
	}
}
