package repo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// defaultPathName is the default config dir name
	defaultPathName = ".cita-cli"
	// defaultPathRoot is the path to the default config dir location.
	defaultPathRoot = "~/" + defaultPathName
	// envDir is the environment variable used to change the path root.
	envDir = "CITA_CLI_PATH"
	// Config name
	configName = "cita-cli.toml"

	// DefaultURI is used when neither config file nor flag names an endpoint.
	DefaultURI = "http://127.0.0.1:1337"
)

// Config is the process-wide client configuration. It is loaded once at
// startup; global flags override individual fields before any command runs.
type Config struct {
	URI       string `mapstructure:"uri" json:"uri"`
	Debug     bool   `mapstructure:"debug" json:"debug"`
	Color     bool   `mapstructure:"color" json:"color"`
	Algorithm string `mapstructure:"algorithm" json:"algorithm"`
	ChainID   uint32 `mapstructure:"chain_id" json:"chain_id"`
	Version   uint32 `mapstructure:"version" json:"version"`
}

func defaultConfig() *Config {
	return &Config{
		URI:       DefaultURI,
		Color:     true,
		Algorithm: "sha3",
	}
}

// PathRoot returns the config directory, honoring the CITA_CLI_PATH env var.
func PathRoot() (string, error) {
	dir := os.Getenv(envDir)
	if dir == "" {
		dir = defaultPathRoot
	}
	return homedir.Expand(dir)
}

// UnmarshalConfig loads the configuration. A missing config file is not an
// error: commands must work against a bare endpoint with defaults.
func UnmarshalConfig(configPath string) (*Config, error) {
	v := viper.New()
	if configPath == "" {
		root, err := PathRoot()
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(filepath.Join(root, configName))
	} else {
		v.SetConfigFile(configPath)
	}
	v.SetConfigType("toml")
	v.AutomaticEnv()
	v.SetEnvPrefix("CITA_CLI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config := defaultConfig()
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(errors.Cause(err)) && configPath == "" {
			return config, nil
		}
		return nil, errors.Wrap(err, "read config")
	}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return config, nil
}
