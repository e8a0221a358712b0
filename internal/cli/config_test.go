package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/layerlens/layerlens/pkg/errors"
)

func TestConnFlags_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // no config file present

	f := connFlags{password: "secret"}
	cfg, err := f.resolve()
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if cfg.URI != defaultURI {
		t.Errorf("URI = %q, want %q", cfg.URI, defaultURI)
	}
	if cfg.Username != defaultUser {
		t.Errorf("Username = %q, want %q", cfg.Username, defaultUser)
	}
	if cfg.Database != "" {
		t.Errorf("Database = %q, want empty", cfg.Database)
	}
}

func TestConnFlags_PasswordRequired(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(envPassword, "")

	f := connFlags{}
	if _, err := f.resolve(); errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Fatalf("resolve() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestConnFlags_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	confDir := filepath.Join(dir, appName)
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatal(err)
	}
	toml := `[store]
uri = "bolt://from-file:7687"
username = "filer"
password = "filepass"
database = "filedb"
`
	if err := os.WriteFile(filepath.Join(confDir, "config.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(envURI, "bolt://from-env:7687")

	f := connFlags{}
	cfg, err := f.resolve()
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if cfg.URI != "bolt://from-env:7687" {
		t.Errorf("URI = %q, want env value", cfg.URI)
	}
	if cfg.Username != "filer" || cfg.Password != "filepass" || cfg.Database != "filedb" {
		t.Errorf("file values not applied: %+v", cfg)
	}
}

func TestConnFlags_FlagsWinOverEverything(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(envURI, "bolt://from-env:7687")
	t.Setenv(envPassword, "envpass")

	f := connFlags{uri: "bolt://from-flag:7687", password: "flagpass"}
	cfg, err := f.resolve()
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if cfg.URI != "bolt://from-flag:7687" {
		t.Errorf("URI = %q, want flag value", cfg.URI)
	}
	if cfg.Password != "flagpass" {
		t.Errorf("Password = %q, want flag value", cfg.Password)
	}
}

func TestConnFlags_ExplicitConfigMustExist(t *testing.T) {
	f := connFlags{configPath: filepath.Join(t.TempDir(), "nope.toml"), password: "secret"}
	if _, err := f.resolve(); errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Fatalf("resolve() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestConnFlags_ExplicitConfigApplies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layerlens.toml")
	toml := `[store]
password = "tomlpass"
`
	if err := os.WriteFile(path, []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	f := connFlags{configPath: path}
	cfg, err := f.resolve()
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if cfg.Password != "tomlpass" {
		t.Errorf("Password = %q, want tomlpass", cfg.Password)
	}
}

func TestPick(t *testing.T) {
	if got := pick("", "", "third", "fourth"); got != "third" {
		t.Errorf("pick() = %q, want third", got)
	}
	if got := pick(); got != "" {
		t.Errorf("pick() = %q, want empty", got)
	}
}
