package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okunevd/streamhub/internal/common"
	"github.com/okunevd/streamhub/internal/dbx"
	"github.com/okunevd/streamhub/internal/server/media"
	"github.com/okunevd/streamhub/internal/server/models"
	"github.com/okunevd/streamhub/internal/server/repositories/repomanager"
)

// PublishParams carries the upload form for a new video.
type PublishParams struct {
	Title       string
	Description string
	Duration    float64
	VideoFile   *FileUpload
	Thumbnail   *FileUpload
}

// VideoService implements the video lifecycle: publish, fetch (with view
// counting and watch history), list, update, delete, and publish toggling.
type VideoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	media       media.Store
}

func NewVideoService(db *sql.DB, m repomanager.RepositoryManager, store media.Store) *VideoService {
	return &VideoService{db: db, repomanager: m, media: store}
}

// Publish uploads the video file and thumbnail to the media store and
// creates the record. New videos start unpublished.
func (s *VideoService) Publish(ctx context.Context, ownerID string, params PublishParams) (*models.Video, error) {
	if params.Title == "" || params.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", common.ErrorInvalidInput)
	}
	if params.VideoFile == nil || params.Thumbnail == nil {
		return nil, fmt.Errorf("%w: video file and thumbnail are required", common.ErrorInvalidInput)
	}

	videoURL, err := s.media.Upload(ctx, "videos", params.VideoFile.ContentType, params.VideoFile.Body)
	if err != nil {
		return nil, fmt.Errorf("error uploading video file: %w", err)
	}
	thumbURL, err := s.media.Upload(ctx, "thumbnails", params.Thumbnail.ContentType, params.Thumbnail.Body)
	if err != nil {
		return nil, fmt.Errorf("error uploading thumbnail: %w", err)
	}

	video := &models.Video{
		OwnerID:     ownerID,
		Title:       params.Title,
		Description: params.Description,
		VideoFile:   videoURL,
		Thumbnail:   thumbURL,
		Duration:    params.Duration,
	}
	return s.repomanager.Videos(s.db).Create(ctx, video)
}

// Get fetches one video. Unpublished videos are visible to their owner only;
// for everyone else they do not exist. A successful fetch increments the view
// counter and, for an authenticated viewer, appends to watch history; both
// writes land in one transaction.
func (s *VideoService) Get(ctx context.Context, id, viewerID string) (*models.Video, error) {
	video, err := s.repomanager.Videos(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, common.ErrorNotFound
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Videos(tx).IncrementViews(ctx, id); err != nil {
			return err
		}
		if viewerID != "" {
			return s.repomanager.Users(tx).AppendWatchHistory(ctx, viewerID, id)
		}
		return nil
	}); err != nil {
		return nil, common.ErrorInternal
	}

	video.Views++
	return video, nil
}

// List returns a page of videos matching the filter plus the total count.
func (s *VideoService) List(ctx context.Context, filter models.VideoFilter, limit, offset int) ([]*models.Video, int64, error) {
	return s.repomanager.Videos(s.db).List(ctx, filter, limit, offset)
}

// Update changes title/description/thumbnail on the caller's own video. A
// new thumbnail replaces the stored media object best-effort.
func (s *VideoService) Update(ctx context.Context, actorID, id string, title, description *string, thumbnail *FileUpload) (*models.Video, error) {
	if title == nil && description == nil && thumbnail == nil {
		return nil, fmt.Errorf("%w: nothing to update", common.ErrorInvalidInput)
	}

	current, err := s.getOwned(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	var thumbURL *string
	if thumbnail != nil {
		url, err := s.media.Upload(ctx, "thumbnails", thumbnail.ContentType, thumbnail.Body)
		if err != nil {
			return nil, fmt.Errorf("error uploading thumbnail: %w", err)
		}
		thumbURL = &url
	}

	updated, err := s.repomanager.Videos(s.db).Update(ctx, id, title, description, thumbURL)
	if err != nil {
		return nil, err
	}
	if thumbURL != nil {
		_ = s.media.Delete(ctx, current.Thumbnail)
	}
	return updated, nil
}

// Delete removes the caller's own video along with its media objects.
func (s *VideoService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.getOwned(ctx, id, actorID); err != nil {
		return err
	}

	deleted, err := s.repomanager.Videos(s.db).Delete(ctx, id)
	if err != nil {
		return err
	}
	_ = s.media.Delete(ctx, deleted.VideoFile)
	_ = s.media.Delete(ctx, deleted.Thumbnail)
	return nil
}

// TogglePublish flips the published flag on the caller's own video.
func (s *VideoService) TogglePublish(ctx context.Context, actorID, id string) (*models.Video, error) {
	if _, err := s.getOwned(ctx, id, actorID); err != nil {
		return nil, err
	}
	return s.repomanager.Videos(s.db).TogglePublish(ctx, id)
}

func (s *VideoService) getOwned(ctx context.Context, id, actorID string) (*models.Video, error) {
	video, err := s.repomanager.Videos(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if video.OwnerID != actorID {
		return nil, common.ErrorUnauthorized
	}
	return video, nil
}
