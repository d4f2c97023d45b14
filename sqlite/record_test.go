package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/wallparse"
	"github.com/fwojciec/wallparse/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestRecordService_CreateRecord(t *testing.T) {
	t.Parallel()

	t.Run("assigns IDs and positions", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		export := createTestExport(t, db, "2012")
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		first := &wallparse.Record{ExportID: export.ID, Profile: "Alice", Datetime: "May 4", Type: wallparse.RecordTypeText}
		second := &wallparse.Record{
			ExportID: export.ID,
			Profile:  "Alice",
			Datetime: "May 5",
			Type:     wallparse.RecordTypeText,
			Comments: []*wallparse.Record{
				{Profile: "Bob", Datetime: "May 5", Data: "one"},
				{Profile: "Carol", Datetime: "May 6", Data: "two"},
			},
		}
		require.NoError(t, svc.CreateRecord(ctx, first))
		require.NoError(t, svc.CreateRecord(ctx, second))

		assert.NotEmpty(t, first.ID)
		assert.Equal(t, 1, first.Position)
		assert.Equal(t, 2, second.Position)
		assert.Equal(t, 2, second.Comments[1].Position)
		assert.Equal(t, export.ID, second.Comments[0].ExportID)
	})

	t.Run("stores content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		export := createTestExport(t, db, "2012")
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		rec := &wallparse.Record{ExportID: export.ID, Profile: "Alice", Datetime: "May 4", Data: "Hello"}
		require.NoError(t, svc.CreateRecord(ctx, rec))

		var hash string
		require.NoError(t, db.QueryRowContext(ctx, "SELECT content_hash FROM records WHERE id = ?", rec.ID).Scan(&hash))
		assert.Len(t, hash, 16)
	})

	t.Run("requires export", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		err := svc.CreateRecord(context.Background(), &wallparse.Record{Profile: "Alice", Datetime: "May 4"})

		assert.Equal(t, wallparse.EINVALID, wallparse.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown export", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		err := svc.CreateRecord(context.Background(), &wallparse.Record{ExportID: "missing", Profile: "Alice", Datetime: "May 4"})

		assert.Equal(t, wallparse.ENOTFOUND, wallparse.ErrorCode(err))
	})

	t.Run("rejects invalid comment without writing", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		export := createTestExport(t, db, "2012")
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		err := svc.CreateRecord(ctx, &wallparse.Record{
			ExportID: export.ID,
			Profile:  "Alice",
			Datetime: "May 4",
			Comments: []*wallparse.Record{{Data: "anonymous"}},
		})

		assert.Equal(t, wallparse.EINVALID, wallparse.ErrorCode(err))
		var n int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&n))
		assert.Equal(t, 0, n)
	})
}

func TestRecordService_FindRecordByID(t *testing.T) {
	t.Parallel()

	t.Run("round trips a post with comments and likes", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		export := createTestExport(t, db, "2012")
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		rec := &wallparse.Record{
			ExportID: export.ID,
			Profile:  "Alice",
			Datetime: "May 4",
			Data:     "Hello\nworld",
			Likes:    ptr("2 people like this."),
			Type:     wallparse.RecordTypeLink,
			Comments: []*wallparse.Record{
				{Profile: "Bob", Datetime: "May 5", Data: "Nice & tidy", Type: wallparse.RecordTypeText},
				{Profile: "Carol", Datetime: "May 6", Data: "Agreed", Type: wallparse.RecordTypeText},
			},
		}
		require.NoError(t, svc.CreateRecord(ctx, rec))

		found, err := svc.FindRecordByID(ctx, rec.ID)

		require.NoError(t, err)
		assert.Equal(t, "Alice", found.Profile)
		assert.Equal(t, "Hello\nworld", found.Data)
		assert.Equal(t, wallparse.RecordTypeLink, found.Type)
		require.NotNil(t, found.Likes)
		assert.Equal(t, "2 people like this.", *found.Likes)
		require.Len(t, found.Comments, 2)
		assert.Equal(t, "Bob", found.Comments[0].Profile)
		assert.Equal(t, "Agreed", found.Comments[1].Data)
		assert.Nil(t, found.Comments[0].Likes)
	})

	t.Run("keeps absent and empty comments distinct", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		export := createTestExport(t, db, "2012")
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		absent := &wallparse.Record{ExportID: export.ID, Profile: "Alice", Datetime: "May 4"}
		empty := &wallparse.Record{ExportID: export.ID, Profile: "Alice", Datetime: "May 5", Comments: []*wallparse.Record{}}
		require.NoError(t, svc.CreateRecord(ctx, absent))
		require.NoError(t, svc.CreateRecord(ctx, empty))

		foundAbsent, err := svc.FindRecordByID(ctx, absent.ID)
		require.NoError(t, err)
		foundEmpty, err := svc.FindRecordByID(ctx, empty.ID)
		require.NoError(t, err)

		assert.Nil(t, foundAbsent.Comments)
		assert.NotNil(t, foundEmpty.Comments)
		assert.Empty(t, foundEmpty.Comments)
	})

	t.Run("returns ENOTFOUND for missing record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		_, err := svc.FindRecordByID(context.Background(), "missing")

		assert.Equal(t, wallparse.ENOTFOUND, wallparse.ErrorCode(err))
	})
}

func TestRecordService_FindRecords(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) (*sqlite.DB, *wallparse.Export, *wallparse.Export) {
		t.Helper()
		db := setupTestDB(t)
		a := createTestExport(t, db, "a")
		b := createTestExport(t, db, "b")
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()
		for _, rec := range []*wallparse.Record{
			{ExportID: a.ID, Profile: "Alice", Datetime: "1", Comments: []*wallparse.Record{{Profile: "Bob", Datetime: "1a"}}},
			{ExportID: a.ID, Profile: "Bob", Datetime: "2"},
			{ExportID: a.ID, Profile: "Alice", Datetime: "3"},
			{ExportID: b.ID, Profile: "Alice", Datetime: "4"},
		} {
			require.NoError(t, svc.CreateRecord(ctx, rec))
		}
		return db, a, b
	}

	t.Run("returns posts of an export in order without comment rows", func(t *testing.T) {
		t.Parallel()

		db, a, _ := seed(t)
		svc := sqlite.NewRecordService(db)

		recs, err := svc.FindRecords(context.Background(), wallparse.RecordFilter{ExportID: &a.ID})

		require.NoError(t, err)
		require.Len(t, recs, 3)
		assert.Equal(t, "1", recs[0].Datetime)
		assert.Equal(t, "2", recs[1].Datetime)
		assert.Equal(t, "3", recs[2].Datetime)
		require.Len(t, recs[0].Comments, 1)
		assert.Equal(t, "Bob", recs[0].Comments[0].Profile)
		assert.Nil(t, recs[1].Comments)
	})

	t.Run("filters by profile", func(t *testing.T) {
		t.Parallel()

		db, a, _ := seed(t)
		svc := sqlite.NewRecordService(db)

		recs, err := svc.FindRecords(context.Background(), wallparse.RecordFilter{ExportID: &a.ID, Profile: ptr("Alice")})

		require.NoError(t, err)
		assert.Len(t, recs, 2)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db, a, _ := seed(t)
		svc := sqlite.NewRecordService(db)

		recs, err := svc.FindRecords(context.Background(), wallparse.RecordFilter{ExportID: &a.ID, Limit: 1, Offset: 1})

		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "2", recs[0].Datetime)
	})
}

func TestRecordService_DeleteRecordsByExport(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	a := createTestExport(t, db, "a")
	b := createTestExport(t, db, "b")
	svc := sqlite.NewRecordService(db)
	ctx := context.Background()
	require.NoError(t, svc.CreateRecord(ctx, &wallparse.Record{ExportID: a.ID, Profile: "Alice", Datetime: "1"}))
	require.NoError(t, svc.CreateRecord(ctx, &wallparse.Record{ExportID: b.ID, Profile: "Alice", Datetime: "2"}))

	require.NoError(t, svc.DeleteRecordsByExport(ctx, a.ID))

	remaining, err := svc.FindRecords(ctx, wallparse.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, b.ID, remaining[0].ExportID)
}
