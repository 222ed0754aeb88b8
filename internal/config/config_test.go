package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func write(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "decint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := write(t, `
workers: 4
lenient: true
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	want := &Config{
		Workers: 4,
		Lenient: true,
		Logging: LoggingConfig{Level: "debug"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, lvl)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DECINT_WORKERS", "2")
	t.Setenv("DECINT_LENIENT", "true")
	t.Setenv("DECINT_LOG_LEVEL", "warn")

	cfg, err := Load(write(t, "workers: 8\n"))
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Workers)
	require.True(t, cfg.Lenient)
	require.Equal(t, "warn", cfg.Logging.Level)
}

func TestInvalid(t *testing.T) {
	type TC struct {
		name    string
		content string
		env     map[string]string
	}

	tcs := []TC{
		{name: "negative workers", content: "workers: -1\n"},
		{name: "bad level", content: "logging: {level: loud}\n"},
		{name: "bad yaml", content: "workers: [\n"},
		{name: "bad env workers", env: map[string]string{"DECINT_WORKERS": "many"}},
		{name: "bad env lenient", env: map[string]string{"DECINT_LENIENT": "maybe"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load(write(t, tc.content))
			require.Error(t, err)
			require.True(t, Error.Has(err), "%+v", err)
		})
	}
}
