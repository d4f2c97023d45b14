package main_test

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/fwojciec/wallparse"
	main "github.com/fwojciec/wallparse/cmd/wallparse"
	"github.com/fwojciec/wallparse/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints summary with sorted classes", func(t *testing.T) {
		t.Parallel()

		path := writeExport(t, t.TempDir(), "wall.html", wallHTML)
		prober := &mock.Prober{
			ProbeFn: func(_ context.Context, r io.Reader) (*wallparse.Probe, error) {
				b, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, wallHTML, string(b))
				return &wallparse.Probe{
					Title:    "Alice - Wall",
					Entries:  2,
					Comments: 1,
					Classes:  map[string]int{"span.profile": 3, "div.feedentry": 2},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Prober: prober}

		err := (&main.ProbeCmd{File: path}).Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "Title:    Alice - Wall")
		assert.Contains(t, out, "Entries:  2")
		assert.Less(t, bytes.Index(stdout.Bytes(), []byte("div.feedentry")), bytes.Index(stdout.Bytes(), []byte("span.profile")))
		assert.Empty(t, stderr.String())
	})

	t.Run("warns about documents that are not wall exports", func(t *testing.T) {
		t.Parallel()

		path := writeExport(t, t.TempDir(), "page.html", "<html></html>")
		prober := &mock.Prober{
			ProbeFn: func(context.Context, io.Reader) (*wallparse.Probe, error) {
				return &wallparse.Probe{Classes: map[string]int{}}, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Prober: prober}

		err := (&main.ProbeCmd{File: path}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "does not look like a wall export")
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Prober: &mock.Prober{}}

		err := (&main.ProbeCmd{File: filepath.Join(t.TempDir(), "missing.html")}).Run(deps)

		require.Error(t, err)
	})
}

func TestMain_Run_Probe(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeExport(t, dir, "wall.html", wallHTML)

	stdout, _, err := run(t, filepath.Join(dir, "test.db"), "probe", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Notice:   Downloaded by Alice on May 4, 2011")
	assert.Contains(t, stdout, "Entries:  2")
	assert.Contains(t, stdout, "Comments: 1")
}
