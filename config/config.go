package config

import (
	"os"
	"path"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/chiplab/chipletc/log"
)

// Config holds the tool-level settings. Everything has a working default;
// the config file and CHIPLETC_* environment variables override it.
type Config struct {
	// Output is the default path of the generated configuration file.
	Output string `mapstructure:"output"`
	// FirmwareManifest optionally points at a firmware manifest used to
	// replace the default boot-loader entries.
	FirmwareManifest string `mapstructure:"firmware_manifest"`
}

const configFileName = "config.yaml"

var config *Config

func configDir() (string, error) {
	if dir, ok := os.LookupEnv("CHIPLETC_CONFIG_DIR"); ok {
		return dir, nil
	}
	if xdgConfigHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		return path.Join(xdgConfigHome, "chipletc"), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return path.Join(home, ".config", "chipletc"), nil
}

func loadConfiguration() Config {
	v := viper.New()
	v.SetDefault("output", "conf.lua")
	v.SetDefault("firmware_manifest", "")
	v.SetEnvPrefix("CHIPLETC")
	v.AutomaticEnv()

	dir, err := configDir()
	if err != nil {
		log.Debug("Unable to find the configuration directory: %s. Using default configuration.\n", err)
	} else {
		v.SetConfigFile(path.Join(dir, configFileName))
		if err := v.ReadInConfig(); err != nil {
			log.Debug("No configuration file loaded: %s. Using default configuration.\n", err)
		} else {
			log.Debug("Loaded configuration from %s.\n", v.ConfigFileUsed())
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		log.Warning("Invalid configuration: %s. Using default configuration.\n", err)
		return Config{Output: "conf.lua"}
	}
	return config
}

// GetConfig returns the tool configuration, loading it on first use.
func GetConfig() Config {
	if config == nil {
		loadedConfig := loadConfiguration()
		config = &loadedConfig
	}
	return *config
}
