package content_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mediacatalog/internal/auth"
	"mediacatalog/internal/database"
	"mediacatalog/internal/domain/album"
	"mediacatalog/internal/domain/content"
	"mediacatalog/internal/domain/episode"
	"mediacatalog/internal/pkg/fsutil"
	"mediacatalog/internal/storage"
)

var admin = auth.AuthContext{Role: auth.RoleAdmin}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:content_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func setupService(t *testing.T) (*content.Service, *storage.Layout, *gorm.DB, string) {
	t.Helper()
	db := setupDB(t)
	root := t.TempDir()
	layout := storage.NewLayout(root, "data")
	return content.NewService(content.NewRepository(db), layout, nil), layout, db, root
}

func insertEpisode(t *testing.T, db *gorm.DB) (*album.Album, *episode.Episode) {
	t.Helper()
	a := &album.Album{UUID: uuid.New().String(), Title: "Parent Album", Enable: true}
	require.NoError(t, db.Create(a).Error)
	e := &episode.Episode{AlbumID: a.ID, UUID: uuid.New().String(), Title: "Parent Episode"}
	require.NoError(t, db.Create(e).Error)
	return a, e
}

func stageFile(t *testing.T, root, name string) string {
	t.Helper()
	path := filepath.Join(root, "tmp", t.Name(), name)
	require.NoError(t, fsutil.SaveFile(path, []byte("bytes of "+name)))
	return path
}

func TestCreateForEpisodeCommitsRowsThenFiles(t *testing.T) {
	svc, layout, db, root := setupService(t)
	a, e := insertEpisode(t, db)
	ctx := context.Background()

	files := []string{
		stageFile(t, root, "p1.png"),
		stageFile(t, root, "p2.png"),
		stageFile(t, root, "p3.png"),
	}

	resp, err := svc.CreateForEpisode(ctx, admin, &content.AddEpisodeContentsRequest{
		EpisodeID: e.ID,
		Files:     files,
	})
	require.NoError(t, err)
	require.Len(t, resp, 3)

	for i, c := range resp {
		assert.Equal(t, int32(i), c.IndexNo, "index follows submission order")
		assert.True(t, strings.HasPrefix(c.URL, "data/"+a.UUID+"/"+e.UUID+"/"))
		assert.True(t, fsutil.FileExists(layout.Abs(c.URL)))
		assert.Equal(t, "image/png", c.ContentType)
	}
	for _, src := range files {
		assert.False(t, fsutil.FileExists(src), "staged sources gone after move")
	}
}

func TestCreateForEpisodeUnknownEpisode(t *testing.T) {
	svc, _, _, root := setupService(t)
	_, err := svc.CreateForEpisode(context.Background(), admin, &content.AddEpisodeContentsRequest{
		EpisodeID: 77,
		Files:     []string{stageFile(t, root, "p1.png")},
	})
	assert.ErrorIs(t, err, content.ErrAlbumNotFound)
}

// sabotageRepo deletes one staged file during the row write, simulating a
// file vanishing between the insert and the move step.
type sabotageRepo struct {
	content.Repository
	victim string
}

func (r *sabotageRepo) CreateBatch(ctx context.Context, cs []content.Content) error {
	if err := r.Repository.CreateBatch(ctx, cs); err != nil {
		return err
	}
	return os.Remove(r.victim)
}

func TestCreateForEpisodeLostFileKeepsRows(t *testing.T) {
	db := setupDB(t)
	root := t.TempDir()
	layout := storage.NewLayout(root, "data")
	_, e := insertEpisode(t, db)
	ctx := context.Background()

	files := []string{
		stageFile(t, root, "p1.png"),
		stageFile(t, root, "p2.png"),
		stageFile(t, root, "p3.png"),
	}
	repo := &sabotageRepo{Repository: content.NewRepository(db), victim: files[1]}
	svc := content.NewService(repo, layout, nil)

	_, err := svc.CreateForEpisode(ctx, admin, &content.AddEpisodeContentsRequest{
		EpisodeID: e.ID,
		Files:     files,
	})
	assert.ErrorIs(t, err, content.ErrFilesLost)

	// all three rows committed; only two files made it to their destinations
	rows, err := repo.ListByEpisodeID(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	atDest := 0
	for _, row := range rows {
		if fsutil.FileExists(layout.Abs(row.URL)) {
			atDest++
		}
	}
	assert.Equal(t, 2, atDest)
}

func TestListByEpisodeUUIDOrdersByIndex(t *testing.T) {
	svc, _, db, root := setupService(t)
	_, e := insertEpisode(t, db)
	ctx := context.Background()

	_, err := svc.CreateForEpisode(ctx, admin, &content.AddEpisodeContentsRequest{
		EpisodeID: e.ID,
		Files: []string{
			stageFile(t, root, "p1.png"),
			stageFile(t, root, "p2.png"),
		},
	})
	require.NoError(t, err)

	got, total, err := svc.ListByEpisodeUUID(ctx, e.UUID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, got, 2)
	assert.Equal(t, int32(0), got[0].IndexNo)
	assert.Equal(t, int32(1), got[1].IndexNo)

	_, _, err = svc.ListByEpisodeUUID(ctx, "no-such-uuid")
	assert.ErrorIs(t, err, content.ErrEpisodeNotFound)
}

func TestUpdateSwapsFileAndFields(t *testing.T) {
	svc, layout, db, root := setupService(t)
	_, e := insertEpisode(t, db)
	ctx := context.Background()

	created, err := svc.CreateForEpisode(ctx, admin, &content.AddEpisodeContentsRequest{
		EpisodeID: e.ID,
		Files:     []string{stageFile(t, root, "old.png")},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)

	newFile := stageFile(t, root, "new.jpg")
	adsURL := "https://ads.example.com/a"
	indexNo := int32(5)
	updated, err := svc.Update(ctx, admin, created[0].UUID, &content.UpdateContentRequest{
		File:    &newFile,
		AdsURL:  &adsURL,
		IndexNo: &indexNo,
	})
	require.NoError(t, err)

	assert.NotEqual(t, created[0].URL, updated.URL)
	assert.Equal(t, "image/jpeg", updated.ContentType)
	assert.Equal(t, int32(5), updated.IndexNo)
	require.NotNil(t, updated.AdsURL)
	assert.Equal(t, adsURL, *updated.AdsURL)
	assert.True(t, fsutil.FileExists(layout.Abs(updated.URL)))
	assert.False(t, fsutil.FileExists(layout.Abs(created[0].URL)), "old asset discarded")
}

func TestDeleteRemovesFileThenRow(t *testing.T) {
	svc, layout, db, root := setupService(t)
	_, e := insertEpisode(t, db)
	ctx := context.Background()

	created, err := svc.CreateForEpisode(ctx, admin, &content.AddEpisodeContentsRequest{
		EpisodeID: e.ID,
		Files:     []string{stageFile(t, root, "p1.png")},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)

	require.NoError(t, svc.Delete(ctx, admin, created[0].UUID))
	assert.False(t, fsutil.FileExists(layout.Abs(created[0].URL)))

	assert.ErrorIs(t, svc.Delete(ctx, admin, created[0].UUID), content.ErrContentNotFound)
}
