package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/statelayer/internal/config"
	slerrors "github.com/alexisbeaulieu97/statelayer/pkg/errors"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-15"

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, "statelayer 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-15")
}

func parseRoot(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()

	flags := &rootFlags{}
	root := buildRootCmd(flags)
	require.NoError(t, root.ParseFlags(args))
	return resolveConfig(root, flags)
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := parseRoot(t)
	require.NoError(t, err)
	require.Equal(t, config.Default(), *cfg)
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statelayer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\ninput: touch\n"), 0o600))

	cfg, err := parseRoot(t, "--config", path, "--theme", "light", "-v")
	require.NoError(t, err)
	require.Equal(t, "light", cfg.Theme)
	require.Equal(t, config.InputTouch, cfg.Input, "file value kept when flag not set")
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestResolveConfigRejectsUnknownTheme(t *testing.T) {
	_, err := parseRoot(t, "--theme", "sepia")

	var validationErr *slerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "theme", validationErr.Field)
}

func TestRootFailsToMountWithoutTerminal(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(*os.File) bool { return false }

	root := newRootCmd()
	root.SetArgs([]string{})

	err := root.Execute()
	var mountErr *slerrors.MountError
	require.ErrorAs(t, err, &mountErr)
	require.Equal(t, "stdout", mountErr.Target)
}

func TestCheckMountRequiresStdin(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(f *os.File) bool { return f == os.Stdout }

	err := checkMount(os.Stdin, os.Stdout)
	var mountErr *slerrors.MountError
	require.ErrorAs(t, err, &mountErr)
	require.Equal(t, "stdin", mountErr.Target)

	isTerminal = func(*os.File) bool { return true }
	require.NoError(t, checkMount(os.Stdin, os.Stdout))
}
