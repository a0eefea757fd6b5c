package episode_test

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
	"mediacatalog/internal/domain/episode"
	"mediacatalog/internal/pkg/fsutil"
	"mediacatalog/internal/storage"
)

var admin = auth.AuthContext{Role: auth.RoleAdmin}

func setupService(t *testing.T) (*episode.Service, *storage.Layout, *gorm.DB, string) {
	t.Helper()
	dsn := fmt.Sprintf("file:episode_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	root := t.TempDir()
	layout := storage.NewLayout(root, "data")
	return episode.NewService(episode.NewRepository(db), layout, nil), layout, db, root
}

func insertAlbum(t *testing.T, db *gorm.DB) *album.Album {
	t.Helper()
	a := &album.Album{UUID: uuid.New().String(), Title: "Parent", Enable: true}
	require.NoError(t, db.Create(a).Error)
	return a
}

func stageFile(t *testing.T, root, name string) string {
	t.Helper()
	path := filepath.Join(root, "tmp", t.Name(), name)
	require.NoError(t, fsutil.SaveFile(path, []byte("bytes of "+name)))
	return path
}

func TestCreateRequiresExistingAlbum(t *testing.T) {
	svc, _, _, _ := setupService(t)
	_, err := svc.Create(context.Background(), admin, &episode.CreateEpisodeRequest{AlbumID: 42, Title: "x"})
	assert.ErrorIs(t, err, episode.ErrAlbumNotFound)
}

func TestCreateWithoutFile(t *testing.T) {
	svc, _, db, _ := setupService(t)
	parent := insertAlbum(t, db)

	resp, err := svc.Create(context.Background(), admin, &episode.CreateEpisodeRequest{
		AlbumID: parent.ID,
		Title:   "Episode 1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.UUID)
	assert.Equal(t, "Episode 1", resp.Title)
	assert.Nil(t, resp.URL)
}

func TestCreateWithFileCommitsUnderAlbumNamespace(t *testing.T) {
	svc, layout, db, root := setupService(t)
	parent := insertAlbum(t, db)
	file := stageFile(t, root, "page.png")

	resp, err := svc.Create(context.Background(), admin, &episode.CreateEpisodeRequest{
		AlbumID: parent.ID,
		Title:   "Episode 1",
		File:    &file,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.URL)
	assert.True(t, strings.HasPrefix(*resp.URL, "data/"+parent.UUID+"/"+resp.UUID+"/"))
	assert.True(t, fsutil.FileExists(layout.Abs(*resp.URL)))
	assert.False(t, fsutil.FileExists(file), "staged source gone after move")
	require.NotNil(t, resp.ContentType)
	assert.Equal(t, "image/png", *resp.ContentType)
}

func TestListByAlbumFiltersTitle(t *testing.T) {
	svc, _, db, _ := setupService(t)
	parent := insertAlbum(t, db)
	ctx := context.Background()

	for _, title := range []string{"Intro", "Finale", "Intro Redux"} {
		_, err := svc.Create(ctx, admin, &episode.CreateEpisodeRequest{AlbumID: parent.ID, Title: title})
		require.NoError(t, err)
	}

	got, total, err := svc.ListByAlbumID(ctx, parent.ID, episode.FilterEpisodesRequest{Title: "Intro"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, got, 2)
}

func TestUpdateTitleOnlyKeepsAsset(t *testing.T) {
	svc, layout, db, root := setupService(t)
	parent := insertAlbum(t, db)
	ctx := context.Background()

	file := stageFile(t, root, "page.png")
	created, err := svc.Create(ctx, admin, &episode.CreateEpisodeRequest{AlbumID: parent.ID, Title: "Old", File: &file})
	require.NoError(t, err)

	newTitle := "New"
	updated, err := svc.Update(ctx, admin, created.UUID, &episode.UpdateEpisodeRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Title)
	require.NotNil(t, updated.URL)
	assert.Equal(t, *created.URL, *updated.URL)
	assert.True(t, fsutil.FileExists(layout.Abs(*created.URL)))
}

func TestUpdateWithFileSwapsAsset(t *testing.T) {
	svc, layout, db, root := setupService(t)
	parent := insertAlbum(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, admin, &episode.CreateEpisodeRequest{
		AlbumID: parent.ID, Title: "E", File: ptr(stageFile(t, root, "old.png")),
	})
	require.NoError(t, err)

	newFile := stageFile(t, root, "new.jpg")
	updated, err := svc.Update(ctx, admin, created.UUID, &episode.UpdateEpisodeRequest{File: &newFile})
	require.NoError(t, err)

	require.NotNil(t, updated.URL)
	assert.NotEqual(t, *created.URL, *updated.URL)
	assert.True(t, fsutil.FileExists(layout.Abs(*updated.URL)))
	assert.False(t, fsutil.FileExists(layout.Abs(*created.URL)), "old asset discarded")
}

func TestDeleteRemovesNamespaceAndRow(t *testing.T) {
	svc, layout, db, root := setupService(t)
	parent := insertAlbum(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, admin, &episode.CreateEpisodeRequest{
		AlbumID: parent.ID, Title: "E", File: ptr(stageFile(t, root, "page.png")),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, admin, created.UUID))

	_, statErr := os.Stat(layout.Abs(layout.EpisodeDir(parent.UUID, created.UUID)))
	assert.True(t, os.IsNotExist(statErr), "episode namespace directory removed")

	assert.ErrorIs(t, svc.Delete(ctx, admin, created.UUID), episode.ErrAlbumNotFound)
}

func ptr(s string) *string { return &s }
