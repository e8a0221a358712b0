package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/layerlens/layerlens/pkg/errors"
	"github.com/layerlens/layerlens/pkg/store"
)

// Connection defaults matching a stock local Neo4j.
const (
	defaultURI  = "bolt://localhost:7687"
	defaultUser = "neo4j"
)

// Environment variable names for store connection settings.
const (
	envURI      = "LAYERLENS_NEO4J_URI"
	envUser     = "LAYERLENS_NEO4J_USER"
	envPassword = "LAYERLENS_NEO4J_PASSWORD"
	envDatabase = "LAYERLENS_NEO4J_DATABASE"
)

// connFlags holds the store connection flags shared by every store-facing
// command. Values resolve with precedence flags > environment > config
// file > defaults.
type connFlags struct {
	uri        string
	user       string
	password   string
	database   string
	configPath string
}

// register adds the connection flags to cmd.
func (f *connFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.uri, "uri", "", "Neo4j connection URI (default "+defaultURI+")")
	cmd.Flags().StringVar(&f.user, "user", "", "Neo4j username (default "+defaultUser+")")
	cmd.Flags().StringVar(&f.password, "password", "", "Neo4j password")
	cmd.Flags().StringVar(&f.database, "database", "", "Neo4j database (server default if empty)")
	cmd.Flags().StringVar(&f.configPath, "config", "", "TOML config file (default ~/.config/layerlens/config.toml)")
}

// fileConfig mirrors the [store] table of the TOML config file:
//
//	[store]
//	uri = "bolt://graph.internal:7687"
//	username = "neo4j"
//	password = "secret"
//	database = "packages"
type fileConfig struct {
	Store struct {
		URI      string `toml:"uri"`
		Username string `toml:"username"`
		Password string `toml:"password"`
		Database string `toml:"database"`
	} `toml:"store"`
}

// resolve merges flags, environment, config file and defaults into a
// store config. The password has no default; a missing password is an
// error because the importer cannot authenticate without one.
func (f *connFlags) resolve() (store.Config, error) {
	file, err := loadFileConfig(f.configPath)
	if err != nil {
		return store.Config{}, err
	}

	cfg := store.Config{
		URI:      pick(f.uri, os.Getenv(envURI), file.Store.URI, defaultURI),
		Username: pick(f.user, os.Getenv(envUser), file.Store.Username, defaultUser),
		Password: pick(f.password, os.Getenv(envPassword), file.Store.Password, ""),
		Database: pick(f.database, os.Getenv(envDatabase), file.Store.Database, ""),
	}

	if cfg.Password == "" {
		return store.Config{}, errors.New(errors.ErrCodeInvalidInput,
			"store password required (--password, %s, or config file)", envPassword)
	}
	return cfg, nil
}

// loadFileConfig reads the TOML config file. An explicitly passed path
// must exist; the default path is optional.
func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "load config %s", path)
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG config location (~/.config/layerlens/config.toml).
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// pick returns the first non-empty value.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
