package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/sheetstat-go/pkg/sheetstat"
	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/gsheets"
)

func execute(t *testing.T, p *sheetstat.Pipeline, args ...string) error {
	t.Helper()
	cmd := newRootCmd(p)
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.ExecuteContext(context.Background())
}

func TestRejectsConflictingSources(t *testing.T) {
	called := false
	p := &sheetstat.Pipeline{
		Acquire: func(context.Context, bool) (*gsheets.Credentials, error) {
			called = true
			return nil, gsheets.ErrCredentialsNotFound
		},
	}

	err := execute(t, p, "--id", "abc", "--csv", "data.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
	assert.Equal(t, sheetstat.ExitFailure, sheetstat.ExitCode(err))
	assert.False(t, called)
}

func TestRequiresSource(t *testing.T) {
	err := execute(t, &sheetstat.Pipeline{})
	require.Error(t, err)
	assert.Equal(t, sheetstat.ExitFailure, sheetstat.ExitCode(err))
}

func TestCredentialsExitCode(t *testing.T) {
	p := &sheetstat.Pipeline{
		Acquire: func(_ context.Context, skipDefault bool) (*gsheets.Credentials, error) {
			assert.True(t, skipDefault)
			return nil, gsheets.ErrCredentialsNotFound
		},
	}

	err := execute(t, p, "--id", "abc", "--no-default-credentials")
	assert.Equal(t, sheetstat.ExitCredentials, sheetstat.ExitCode(err))
}

func TestLoadFailureExitCode(t *testing.T) {
	err := execute(t, &sheetstat.Pipeline{}, "--csv", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Equal(t, sheetstat.ExitLoad, sheetstat.ExitCode(err))
}

func TestBadURLExitCode(t *testing.T) {
	err := execute(t, &sheetstat.Pipeline{}, "--url", "https://docs.google.com/spreadsheets/d/")
	assert.Equal(t, sheetstat.ExitLoad, sheetstat.ExitCode(err))
}

func TestSavePlots(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "air.csv")
	require.NoError(t, os.WriteFile(path, []byte("pm25;o3\n1;4\n2;3\n3;5\n"), 0o644))
	prefix := filepath.Join(dir, "run_")

	err := execute(t, &sheetstat.Pipeline{}, "--csv", path, "--sep", ";", "--save-plots", "--out-prefix", prefix)
	require.NoError(t, err)

	matches, err := filepath.Glob(prefix + "*.png")
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}
