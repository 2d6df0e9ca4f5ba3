package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/eduvault/eduvault/internal/db"
	"github.com/eduvault/eduvault/internal/pkg/apperrors"
)

func TestNewCatalogService_SeedsFreshStore(t *testing.T) {
	env := newTestEnv(t)

	list, err := env.catalog.ListUploads("all", "all", "")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "r1", list[0].ID)
	assert.Equal(t, "r2", list[1].ID)
	assert.Equal(t, "r3", list[2].ID)
}

func TestNewCatalogService_InitIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.catalog.AddComment("r3", "Nice"))

	// rebuilding the stack over the same database must load, not reseed
	again := buildEnv(t, env.database)
	r, ok := again.catalog.Get("r3")
	require.True(t, ok)
	assert.Equal(t, []string{"Nice"}, r.Comments)

	once := buildEnv(t, env.database)
	twice := buildEnv(t, env.database)
	onceList, _ := once.catalog.ListUploads("all", "all", "")
	twiceList, _ := twice.catalog.ListUploads("all", "all", "")
	assert.Equal(t, onceList, twiceList)
}

func TestNewCatalogService_RecoversFromCorruptValue(t *testing.T) {
	env := newTestEnv(t)

	err := env.database.DB.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(db.CatalogBucket).Put([]byte("resources"), []byte("{definitely not json"))
	})
	require.NoError(t, err)

	recovered := buildEnv(t, env.database)
	list, err := recovered.catalog.ListUploads("all", "all", "")
	require.NoError(t, err)
	assert.Len(t, list, 3) // back to the seed catalog

	// and the recovery was persisted, so the next load is clean
	final := buildEnv(t, env.database)
	finalList, err := final.catalog.ListUploads("all", "all", "")
	require.NoError(t, err)
	assert.Equal(t, list, finalList)
}

func TestListRecent_SortsByCreatedDescending(t *testing.T) {
	env := newTestEnv(t)

	list := env.catalog.ListRecent("", "")
	require.Len(t, list, 3)
	assert.Equal(t, "r1", list[0].ID) // 2025-08-02
	assert.Equal(t, "r3", list[1].ID) // 2025-08-01
	assert.Equal(t, "r2", list[2].ID) // 2025-07-28
}

func TestListRecent_StableForEqualDates(t *testing.T) {
	env := newTestEnv(t)

	// both created "today"; upload prepends, so second sits before first
	first, err := env.catalog.Upload(UploadRequest{Title: "First"})
	require.NoError(t, err)
	second, err := env.catalog.Upload(UploadRequest{Title: "Second"})
	require.NoError(t, err)

	list := env.catalog.ListRecent("", "")
	require.Len(t, list, 5)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, "r1", list[2].ID) // same date as the uploads, keeps its relative spot
}

func TestListRecent_FiltersCompose(t *testing.T) {
	env := newTestEnv(t)

	byGrade := env.catalog.ListRecent("9", "")
	require.Len(t, byGrade, 1)
	assert.Equal(t, "r2", byGrade[0].ID)

	// search spans title+uploader+type, case-insensitively
	byType := env.catalog.ListRecent("", "PPTX")
	require.Len(t, byType, 1)
	assert.Equal(t, "r1", byType[0].ID)

	both := env.catalog.ListRecent("9", "flowchart")
	require.Len(t, both, 1)
	assert.Equal(t, "r2", both[0].ID)

	none := env.catalog.ListRecent("9", "algorithm")
	assert.Empty(t, none)

	all := env.catalog.ListRecent("all", "")
	assert.Len(t, all, 3)
}

func TestListUploads_FiltersAndEmptyState(t *testing.T) {
	env := newTestEnv(t)

	pdfs, err := env.catalog.ListUploads("pdf", "all", "")
	require.NoError(t, err)
	require.Len(t, pdfs, 1)
	assert.Equal(t, "r2", pdfs[0].ID)

	// uploads search covers title+uploader but not type
	_, err = env.catalog.ListUploads("all", "all", "pptx")
	assert.ErrorIs(t, err, apperrors.ErrNoUploadsFound)

	byUploader, err := env.catalog.ListUploads("all", "all", "kuzu")
	require.NoError(t, err)
	require.Len(t, byUploader, 1)
	assert.Equal(t, "r3", byUploader[0].ID)

	_, err = env.catalog.ListUploads("pdf", "10", "")
	assert.ErrorIs(t, err, apperrors.ErrNoUploadsFound)
}

func TestListSaved_SeedScenario(t *testing.T) {
	env := newTestEnv(t)

	saved := env.catalog.ListSaved()
	require.Len(t, saved, 1)
	assert.Equal(t, "r2", saved[0].ID)
}

func TestSummaryCounts_SeedScenario(t *testing.T) {
	env := newTestEnv(t)

	sum := env.catalog.SummaryCounts("2025-08-02")
	assert.Equal(t, 1, sum.UploadsToday) // r1
	assert.Equal(t, 3, sum.TotalUploads)
	assert.Equal(t, 1, sum.TotalSaved)
	assert.Equal(t, 0, sum.TotalDownloaded)
	assert.Equal(t, 0, sum.UnreadNotifications)
}

func TestToggleSave_Involution(t *testing.T) {
	env := newTestEnv(t)

	for _, id := range []string{"r1", "r2", "r3"} {
		before, ok := env.catalog.Get(id)
		require.True(t, ok)

		_, err := env.catalog.ToggleSave(id)
		require.NoError(t, err)
		_, err = env.catalog.ToggleSave(id)
		require.NoError(t, err)

		after, ok := env.catalog.Get(id)
		require.True(t, ok)
		assert.Equal(t, before.Saved, after.Saved, "toggling %s twice must restore it", id)
	}
}

func TestToggleSave_MissingIDIsSilentNoop(t *testing.T) {
	env := newTestEnv(t)

	r, err := env.catalog.ToggleSave("r-does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestRate_BoundsAndExactSet(t *testing.T) {
	env := newTestEnv(t)

	for _, v := range []int{0, -1, 6, 42} {
		err := env.catalog.Rate("r1", v)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRating)
	}
	r, _ := env.catalog.Get("r1")
	assert.Equal(t, 3, r.Rating, "rejected ratings must leave the value unchanged")

	for _, v := range []int{1, 2, 3, 4, 5} {
		require.NoError(t, env.catalog.Rate("r1", v))
		r, _ := env.catalog.Get("r1")
		assert.Equal(t, v, r.Rating)
	}

	// lookup miss is not an error
	assert.NoError(t, env.catalog.Rate("r-does-not-exist", 4))
}

func TestAddComment_RejectsEmptyAppendsInOrder(t *testing.T) {
	env := newTestEnv(t)

	assert.ErrorIs(t, env.catalog.AddComment("r3", ""), apperrors.ErrEmptyComment)
	assert.ErrorIs(t, env.catalog.AddComment("r3", "   "), apperrors.ErrEmptyComment)

	r, _ := env.catalog.Get("r3")
	assert.Empty(t, r.Comments)

	require.NoError(t, env.catalog.AddComment("r3", "Nice"))
	require.NoError(t, env.catalog.AddComment("r3", "Very nice"))

	r, _ = env.catalog.Get("r3")
	assert.Equal(t, []string{"Nice", "Very nice"}, r.Comments)

	// lookup miss is a silent no-op
	assert.NoError(t, env.catalog.AddComment("r-does-not-exist", "hello"))
}

func TestRecordDownload_AppendsAndAllowsDuplicates(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.catalog.RecordDownload("r1"))
	require.NoError(t, env.catalog.RecordDownload("r2"))
	require.NoError(t, env.catalog.RecordDownload("r1"))

	list := env.catalog.ListDownloaded()
	require.Len(t, list, 3)
	assert.Equal(t, "r1", list[0].ID)
	assert.Equal(t, "r2", list[1].ID)
	assert.Equal(t, "r1", list[2].ID)

	assert.Equal(t, 3, env.catalog.SummaryCounts("2025-08-02").TotalDownloaded)
}

func TestListDownloaded_SkipsUnresolvableIDs(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.catalog.RecordDownload("r-gone"))
	require.NoError(t, env.catalog.RecordDownload("r2"))

	list := env.catalog.ListDownloaded()
	require.Len(t, list, 1)
	assert.Equal(t, "r2", list[0].ID)

	// the dangling id still counts as a download
	assert.Equal(t, 2, env.catalog.SummaryCounts("2025-08-02").TotalDownloaded)
}

func TestUpload_DefaultsAndMyUploadsScenario(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.account.Login("Ada", "")
	require.NoError(t, err)

	uploaded, err := env.catalog.Upload(UploadRequest{Title: "Quiz", Type: "pdf"})
	require.NoError(t, err)

	mine := env.catalog.ListMyUploads("Ada")
	require.Len(t, mine, 1)
	r := mine[0]
	assert.Equal(t, uploaded.ID, r.ID)
	assert.Equal(t, "Quiz", r.Title)
	assert.Equal(t, "Ada", r.Uploader)
	assert.Equal(t, "8", r.Grade)
	assert.Equal(t, 3, r.Rating)
	assert.False(t, r.Saved)
	assert.Empty(t, r.Comments)
	assert.Equal(t, "2025-08-02", r.Created)
}

func TestUpload_FreshIDAndNativeOrderFirst(t *testing.T) {
	env := newTestEnv(t)

	seen := map[string]bool{}
	for _, r := range env.catalog.ListRecent("", "") {
		seen[r.ID] = true
	}

	uploaded, err := env.catalog.Upload(UploadRequest{})
	require.NoError(t, err)
	assert.False(t, seen[uploaded.ID], "new id must not collide with existing ids")
	assert.Equal(t, "Untitled", uploaded.Title)

	list, err := env.catalog.ListUploads("all", "all", "")
	require.NoError(t, err)
	assert.Equal(t, uploaded.ID, list[0].ID, "newest upload leads the native order")
}

func TestUpload_NumericCoercion(t *testing.T) {
	env := newTestEnv(t)

	r, err := env.catalog.Upload(UploadRequest{Size: "3.4", Rating: "5"})
	require.NoError(t, err)
	assert.Equal(t, "3.4 MB", r.Size)
	assert.Equal(t, 5, r.Rating)

	r, err = env.catalog.Upload(UploadRequest{Size: "huge", Rating: "lots"})
	require.NoError(t, err)
	assert.Equal(t, "1 MB", r.Size)
	assert.Equal(t, 3, r.Rating)

	// upload deliberately skips the 1-5 bound that Rate enforces
	r, err = env.catalog.Upload(UploadRequest{Rating: "7"})
	require.NoError(t, err)
	assert.Equal(t, 7, r.Rating)
}

func TestUpload_AnnouncesOnFeed(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.Upload(UploadRequest{Title: "Quiz"})
	require.NoError(t, err)

	feed := env.notifs.List()
	require.Len(t, feed, 1)
	assert.Equal(t, "New resource uploaded: Quiz", feed[0].Text)
	assert.False(t, feed[0].Read)
	assert.Equal(t, "2025-08-02", feed[0].Date)

	assert.Equal(t, 1, env.catalog.SummaryCounts("2025-08-02").UnreadNotifications)
}

func TestAggregateByUploader_FirstAppearanceOrder(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.Upload(UploadRequest{Title: "Extra", Uploader: "Thinley", Rating: "2"})
	require.NoError(t, err)

	stats := env.catalog.AggregateByUploader()
	require.Len(t, stats, 3)

	// upload prepends, so Thinley now appears first
	assert.Equal(t, "Thinley", stats[0].Name)
	assert.Equal(t, 2, stats[0].Uploads)
	assert.InDelta(t, 3.0, stats[0].AverageRating, 1e-9) // (2+4)/2

	assert.Equal(t, "Sonam Pema", stats[1].Name)
	assert.Equal(t, 1, stats[1].Uploads)
	assert.InDelta(t, 3.0, stats[1].AverageRating, 1e-9)

	assert.Equal(t, "Kuzu", stats[2].Name)
	assert.InDelta(t, 5.0, stats[2].AverageRating, 1e-9)
}

func TestQueryResultsAreSnapshots(t *testing.T) {
	env := newTestEnv(t)

	list := env.catalog.ListRecent("", "")
	require.NotEmpty(t, list)
	list[0].Title = "mutated"
	if len(list[0].Comments) > 0 {
		list[0].Comments[0] = "mutated"
	}

	r, ok := env.catalog.Get(list[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", r.Title)
	if len(r.Comments) > 0 {
		assert.NotEqual(t, "mutated", r.Comments[0])
	}
}

func TestMutationsPersistAcrossRestart(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.ToggleSave("r1")
	require.NoError(t, err)
	require.NoError(t, env.catalog.Rate("r3", 2))
	require.NoError(t, env.catalog.RecordDownload("r1"))
	_, err = env.catalog.Upload(UploadRequest{Title: "Persisted"})
	require.NoError(t, err)

	restarted := buildEnv(t, env.database)

	r1, _ := restarted.catalog.Get("r1")
	assert.True(t, r1.Saved)
	r3, _ := restarted.catalog.Get("r3")
	assert.Equal(t, 2, r3.Rating)
	assert.Len(t, restarted.catalog.ListDownloaded(), 1)

	list, err := restarted.catalog.ListUploads("all", "all", "persisted")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Persisted", list[0].Title)
}
