package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdziat/fluentkit/pkg/builders"
	pkgerrors "github.com/jdziat/fluentkit/pkg/errors"
)

// clearEnv unsets every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvDisabled, EnvDemos, EnvVerbose, EnvDBHost, EnvDBPort,
		EnvDBName, EnvDBUser, EnvDBPassword, EnvDBMaxConnections,
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.Runner.Demos)
	assert.False(t, cfg.Runner.Verbose)

	db, err := cfg.DatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, builders.DefaultHost, db.Host())
	assert.Equal(t, builders.DefaultPort, db.Port())
	assert.Equal(t, builders.DefaultMaxConnections, db.MaxConnections())
	assert.Equal(t, builders.DefaultConnectTimeout, db.ConnectTimeout())
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "fluentkit.yaml", `
runner:
  demos: [person, query]
  verbose: true
database:
  host: db.internal
  port: 3306
  name: shop
  username: app
  password: secret
  max_connections: 25
  connect_timeout: 5s
  ssl: true
  options:
    charset: utf8mb4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"person", "query"}, cfg.Runner.Demos)
	assert.True(t, cfg.Runner.Verbose)

	db, err := cfg.DatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", db.Host())
	assert.Equal(t, 3306, db.Port())
	assert.Equal(t, "shop", db.Database())
	assert.Equal(t, "app", db.Username())
	assert.Equal(t, "secret", db.Password())
	assert.Equal(t, 25, db.MaxConnections())
	assert.Equal(t, 5*time.Second, db.ConnectTimeout())
	assert.True(t, db.SSL())
	assert.Equal(t, map[string]string{"charset": "utf8mb4"}, db.Options())
}

func TestLoad_HCL(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "fluentkit.hcl", `
runner {
  demos = ["calculator"]
}

database {
  host            = "hcl-host"
  port            = 6543
  connect_timeout = "750ms"
  options = {
    sslmode = "disable"
  }
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"calculator"}, cfg.Runner.Demos)
	assert.False(t, cfg.Runner.Verbose)

	db, err := cfg.DatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, "hcl-host", db.Host())
	assert.Equal(t, 6543, db.Port())
	assert.Equal(t, 750*time.Millisecond, db.ConnectTimeout())
	assert.Equal(t, builders.DefaultMaxConnections, db.MaxConnections(), "unset values keep builder defaults")
	v, ok := db.Option("sslmode")
	assert.True(t, ok)
	assert.Equal(t, "disable", v)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "partial.yml", "database:\n  name: reports\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	db, err := cfg.DatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, "reports", db.Database())
	assert.Equal(t, builders.DefaultHost, db.Host())
	assert.Equal(t, builders.DefaultPort, db.Port())
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{
			name:    "unsupported extension",
			path:    writeFile(t, dir, "config.json", `{}`),
			wantErr: pkgerrors.ErrUnsupportedConfigFormat,
		},
		{
			name:    "malformed yaml",
			path:    writeFile(t, dir, "bad.yaml", "runner: [unclosed"),
			wantErr: pkgerrors.ErrInvalidConfig,
		},
		{
			name:    "malformed hcl",
			path:    writeFile(t, dir, "bad.hcl", "database {"),
			wantErr: pkgerrors.ErrInvalidConfig,
		},
		{
			name:    "bad timeout",
			path:    writeFile(t, dir, "timeout.yaml", "database:\n  connect_timeout: soon\n"),
			wantErr: pkgerrors.ErrInvalidConfig,
		},
		{
			name:    "empty demo name",
			path:    writeFile(t, dir, "demos.yaml", "runner:\n  demos: [person, \" \"]\n"),
			wantErr: pkgerrors.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("code", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "config.json"))
		assert.Equal(t, pkgerrors.ErrCodeConfig, pkgerrors.CodeOf(err))
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "fluentkit.yaml", `
runner:
  demos: [person]
database:
  host: from-file
  port: 1111
`)
	t.Setenv(EnvDemos, "query, sequence,,")
	t.Setenv(EnvVerbose, "1")
	t.Setenv(EnvDBHost, "from-env")
	t.Setenv(EnvDBPort, "2222")
	t.Setenv(EnvDBName, "envdb")
	t.Setenv(EnvDBUser, "envuser")
	t.Setenv(EnvDBMaxConnections, "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"query", "sequence"}, cfg.Runner.Demos)
	assert.True(t, cfg.Runner.Verbose)

	db, err := cfg.DatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-env", db.Host())
	assert.Equal(t, 2222, db.Port())
	assert.Equal(t, "envdb", db.Database())
	assert.Equal(t, "envuser", db.Username())
	assert.Equal(t, 3, db.MaxConnections())
}

func TestLoad_BadEnvInt(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDBPort, "eighty")

	_, err := Load(writeFile(t, t.TempDir(), "c.yaml", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidConfig)
	assert.Contains(t, err.Error(), EnvDBPort)
}

func TestLoad_PasswordExpansion(t *testing.T) {
	clearEnv(t)
	t.Setenv("FLUENTKIT_TEST_SECRET", "hunter2")
	path := writeFile(t, t.TempDir(), "c.yaml", "database:\n  password: pre-${FLUENTKIT_TEST_SECRET}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Database.Password)
	assert.Equal(t, "pre-hunter2", *cfg.Database.Password)

	t.Run("literal dollar in file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "c.yaml", "database:\n  password: \"pa$sword\"\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.NotNil(t, cfg.Database.Password)
		assert.Equal(t, "pa$sword", *cfg.Database.Password)
	})

	t.Run("environment value is not expanded", func(t *testing.T) {
		t.Setenv(EnvDBPassword, "s3cr$t!${FLUENTKIT_TEST_SECRET}")
		path := writeFile(t, t.TempDir(), "c.yaml", "database:\n  password: from-file\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.NotNil(t, cfg.Database.Password)
		assert.Equal(t, "s3cr$t!${FLUENTKIT_TEST_SECRET}", *cfg.Database.Password)
	})
}

func TestLoad_NoFileFound(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Empty(t, findConfigFileFrom(nested))

	hclPath := writeFile(t, root, ".fluentkit.hcl", "")
	assert.Equal(t, hclPath, findConfigFileFrom(nested))

	// .yaml wins over .hcl in the same directory.
	yamlPath := writeFile(t, root, ".fluentkit.yaml", "")
	assert.Equal(t, yamlPath, findConfigFileFrom(nested))

	// The nearest directory wins.
	nearPath := writeFile(t, filepath.Join(root, "a"), ".fluentkit.yml", "")
	assert.Equal(t, nearPath, findConfigFileFrom(nested))

	t.Chdir(nested)
	got := FindConfigFile()
	// Resolve symlinks in temp dirs (macOS /var -> /private/var).
	wantDir, _ := filepath.EvalSymlinks(filepath.Dir(nearPath))
	gotDir, _ := filepath.EvalSymlinks(filepath.Dir(got))
	assert.Equal(t, wantDir, gotDir)
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("FLUENTKIT_TEST_VAR", "value")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dollar brace", "${FLUENTKIT_TEST_VAR}", "value"},
		{"bare dollar is literal", "$FLUENTKIT_TEST_VAR", "$FLUENTKIT_TEST_VAR"},
		{"literal dollar in word", "pa$sword", "pa$sword"},
		{"unclosed brace", "${FLUENTKIT_TEST_VAR", "${FLUENTKIT_TEST_VAR"},
		{"mixed", "a-${FLUENTKIT_TEST_VAR}-b", "a-value-b"},
		{"plain", "plain-text", "plain-text"},
		{"empty", "", ""},
		{"unset", "${FLUENTKIT_TEST_UNSET}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandEnvVar(tt.input))
		})
	}
}

func TestDatabaseSettings_Apply(t *testing.T) {
	host := "h"
	ssl := true
	bad := "later"

	t.Run("only set values applied", func(t *testing.T) {
		b := builders.NewDatabaseConfig().Port(9999)
		got, err := DatabaseSettings{Host: &host, SSL: &ssl}.Apply(b)
		require.NoError(t, err)
		assert.Same(t, b, got)

		cfg := got.Build()
		assert.Equal(t, "h", cfg.Host())
		assert.Equal(t, 9999, cfg.Port())
		assert.True(t, cfg.SSL())
	})

	t.Run("bad timeout", func(t *testing.T) {
		_, err := DatabaseSettings{ConnectTimeout: &bad}.Apply(builders.NewDatabaseConfig())
		var verr *pkgerrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "database.connect_timeout", verr.Field)
	})
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("FLUENTKIT_TEST_STR", "x")
	t.Setenv("FLUENTKIT_TEST_INT", " 42 ")
	t.Setenv("FLUENTKIT_TEST_BAD", "4x2")
	t.Setenv("FLUENTKIT_TEST_EMPTY", "")

	assert.Equal(t, "x", GetEnvString("FLUENTKIT_TEST_STR", "d"))
	assert.Equal(t, "d", GetEnvString("FLUENTKIT_TEST_EMPTY", "d"))

	n, ok, err := GetEnvInt("FLUENTKIT_TEST_INT")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok, err = GetEnvInt("FLUENTKIT_TEST_EMPTY")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = GetEnvInt("FLUENTKIT_TEST_BAD")
	assert.Error(t, err)
	assert.True(t, ok)

	assert.Nil(t, GetEnvList("FLUENTKIT_TEST_EMPTY"))

	for _, v := range []string{"true", "1"} {
		t.Setenv(EnvDisabled, v)
		assert.True(t, IsDisabled(), v)
	}
	for _, v := range []string{"", "false", "yes"} {
		t.Setenv(EnvDisabled, v)
		assert.False(t, IsDisabled(), v)
	}
}
