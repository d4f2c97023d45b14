package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/wallparse"
	main "github.com/fwojciec/wallparse/cmd/wallparse"
	"github.com/fwojciec/wallparse/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes export when --force is set", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		exports := &mock.ExportService{
			FindExportsFn: func(_ context.Context, filter wallparse.ExportFilter) ([]*wallparse.Export, error) {
				if filter.Name != nil && *filter.Name == "2011" {
					return []*wallparse.Export{{ID: "exp-123", Name: "2011"}}, nil
				}
				return []*wallparse.Export{}, nil
			},
			DeleteExportFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Exports: exports,
		}

		err := (&main.DeleteCmd{Name: "2011", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "exp-123", deletedID)
		assert.Contains(t, stdout.String(), "Deleted")
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Exports: &mock.ExportService{},
		}

		err := (&main.DeleteCmd{Name: "2011"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, wallparse.EINVALID, wallparse.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("returns ENOTFOUND for unknown export", func(t *testing.T) {
		t.Parallel()

		exports := &mock.ExportService{
			FindExportsFn: func(context.Context, wallparse.ExportFilter) ([]*wallparse.Export, error) {
				return nil, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Exports: exports}

		err := (&main.DeleteCmd{Name: "2011", Force: true}).Run(deps)

		assert.Equal(t, wallparse.ENOTFOUND, wallparse.ErrorCode(err))
		assert.Contains(t, stderr.String(), "wallparse list")
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes profile and limit to the record filter", func(t *testing.T) {
		t.Parallel()

		var got wallparse.RecordFilter
		exports := &mock.ExportService{
			FindExportsFn: func(context.Context, wallparse.ExportFilter) ([]*wallparse.Export, error) {
				return []*wallparse.Export{{ID: "exp-1", Name: "2011"}}, nil
			},
		}
		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, filter wallparse.RecordFilter) ([]*wallparse.Record, error) {
				got = filter
				return []*wallparse.Record{{Profile: "Dave", Datetime: "May 2", Data: "Hi"}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Exports: exports, Records: records}

		err := (&main.ShowCmd{Name: "2011", Profile: "Dave", Limit: 5, Format: "text"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.ExportID)
		assert.Equal(t, "exp-1", *got.ExportID)
		require.NotNil(t, got.Profile)
		assert.Equal(t, "Dave", *got.Profile)
		assert.Equal(t, 5, got.Limit)
		assert.Equal(t, "## Dave (May 2)\nHi\n", stdout.String())
	})
}
