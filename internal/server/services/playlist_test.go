package services

import (
	"context"
	"errors"
	"testing"

	"github.com/okunevd/streamhub/internal/common"
	"github.com/okunevd/streamhub/internal/server/models"
)

func TestPlaylistCreate(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()
	s := NewPlaylistService(db, &fakeRepoManager{p: &fakePlaylistsRepo{}})

	p, err := s.Create(context.Background(), "u1", "watch later", "queue")
	if err != nil || p.ID != "p-new" {
		t.Fatalf("Create: %+v err=%v", p, err)
	}

	if _, err := s.Create(context.Background(), "u1", "", "d"); !errors.Is(err, common.ErrorInvalidInput) {
		t.Fatalf("want ErrorInvalidInput, got %v", err)
	}
}

func TestPlaylistUpdate_OwnerOnly(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	playlists := &fakePlaylistsRepo{getOut: &models.Playlist{ID: "p1", OwnerID: "u1"}}
	s := NewPlaylistService(db, &fakeRepoManager{p: playlists})

	name := "renamed"
	if _, err := s.Update(context.Background(), "u2", "p1", &name, nil); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
	if _, err := s.Update(context.Background(), "u1", "p1", nil, nil); !errors.Is(err, common.ErrorInvalidInput) {
		t.Fatalf("want ErrorInvalidInput, got %v", err)
	}
}

func TestPlaylistAddVideo(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	playlists := &fakePlaylistsRepo{getOut: &models.Playlist{ID: "p1", OwnerID: "u1"}}
	videos := &fakeVideosRepo{getOut: &models.Video{ID: "v1"}}
	s := NewPlaylistService(db, &fakeRepoManager{p: playlists, v: videos})

	p, err := s.AddVideo(context.Background(), "u1", "p1", "v1")
	if err != nil || !playlists.added || p == nil {
		t.Fatalf("AddVideo: added=%v err=%v", playlists.added, err)
	}
}

func TestPlaylistAddVideo_AlreadyPresent(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	playlists := &fakePlaylistsRepo{
		getOut: &models.Playlist{ID: "p1", OwnerID: "u1"},
		addErr: common.ErrorConflict,
	}
	videos := &fakeVideosRepo{getOut: &models.Video{ID: "v1"}}
	s := NewPlaylistService(db, &fakeRepoManager{p: playlists, v: videos})

	if _, err := s.AddVideo(context.Background(), "u1", "p1", "v1"); !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want ErrorConflict, got %v", err)
	}
}

func TestPlaylistRemoveVideo_NotInPlaylist(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	playlists := &fakePlaylistsRepo{
		getOut:    &models.Playlist{ID: "p1", OwnerID: "u1"},
		removeErr: common.ErrorNotFound,
	}
	s := NewPlaylistService(db, &fakeRepoManager{p: playlists})

	if _, err := s.RemoveVideo(context.Background(), "u1", "p1", "v-absent"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestPlaylistDelete_OwnerOnly(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	playlists := &fakePlaylistsRepo{getOut: &models.Playlist{ID: "p1", OwnerID: "u1"}}
	s := NewPlaylistService(db, &fakeRepoManager{p: playlists})

	if err := s.Delete(context.Background(), "u2", "p1"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
	if err := s.Delete(context.Background(), "u1", "p1"); err != nil || !playlists.deleted {
		t.Fatalf("Delete: deleted=%v err=%v", playlists.deleted, err)
	}
}
