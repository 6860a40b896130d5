package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.Equal(t, "init.lua", cfg.Launch.InitScript)
	require.False(t, cfg.Launch.BugReport)
	require.Empty(t, cfg.Executable)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	saved := Default()
	saved.Executable = "/games/faf/bin/ForgedAlliance.exe"
	saved.Wrapper = "/usr/local/bin/fa-wine-wrapper"
	saved.Launch.BugReport = true
	require.NoError(t, Save(path, saved))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, saved, loaded)
}

func TestLoadAppliesInitScriptDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("executable = \"/opt/fa/bin/fa.exe\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/opt/fa/bin/fa.exe", cfg.Executable)
	require.Equal(t, "init.lua", cfg.Launch.InitScript)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("executable = [broken\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), path)
}

func TestSaveRejectsBlankInitScript(t *testing.T) {
	cfg := Config{Launch: LaunchBlock{InitScript: ""}}
	err := Save(filepath.Join(t.TempDir(), "config.toml"), cfg)
	require.ErrorIs(t, err, ErrMissingInitScript)
}

func TestDefaultPathHonorsOverride(t *testing.T) {
	t.Setenv("FAF_REPLAY_CONFIG", "/tmp/custom.toml")
	require.Equal(t, "/tmp/custom.toml", DefaultPath())
}
