package services

import (
	"context"
	"errors"
	"testing"

	"github.com/okunevd/streamhub/internal/common"
	"github.com/okunevd/streamhub/internal/server/models"
)

func TestCommentAdd(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	videos := &fakeVideosRepo{getOut: &models.Video{ID: "v1", IsPublished: true}}
	s := NewCommentService(db, &fakeRepoManager{v: videos, c: &fakeCommentsRepo{}})

	c, err := s.Add(context.Background(), "u1", "v1", "nice")
	if err != nil || c.ID != "c-new" {
		t.Fatalf("Add: %+v err=%v", c, err)
	}

	if _, err := s.Add(context.Background(), "u1", "v1", ""); !errors.Is(err, common.ErrorInvalidInput) {
		t.Fatalf("want ErrorInvalidInput, got %v", err)
	}
}

func TestCommentAdd_VideoMissing(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	videos := &fakeVideosRepo{getErr: common.ErrorNotFound}
	s := NewCommentService(db, &fakeRepoManager{v: videos, c: &fakeCommentsRepo{}})

	if _, err := s.Add(context.Background(), "u1", "ghost", "hi"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestCommentUpdateDelete_AuthorOnly(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	comments := &fakeCommentsRepo{
		getOut:    &models.Comment{ID: "c1", OwnerID: "u1"},
		updateOut: &models.Comment{ID: "c1", OwnerID: "u1", Content: "edited"},
	}
	s := NewCommentService(db, &fakeRepoManager{c: comments})

	if _, err := s.Update(context.Background(), "u2", "c1", "x"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}

	c, err := s.Update(context.Background(), "u1", "c1", "edited")
	if err != nil || c.Content != "edited" {
		t.Fatalf("Update: %+v err=%v", c, err)
	}

	if err := s.Delete(context.Background(), "u2", "c1"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
	if err := s.Delete(context.Background(), "u1", "c1"); err != nil || !comments.deleted {
		t.Fatalf("Delete: deleted=%v err=%v", comments.deleted, err)
	}
}
