package services

import (
	"context"
	"database/sql"

	"github.com/okunevd/streamhub/internal/server/models"
	"github.com/okunevd/streamhub/internal/server/repositories/repomanager"
)

// DashboardService serves the channel owner's private views: aggregate
// totals and the full video list including unpublished entries.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager) *DashboardService {
	return &DashboardService{db: db, repomanager: m}
}

// GetStats aggregates totals for the caller's channel.
func (s *DashboardService) GetStats(ctx context.Context, ownerID string) (*models.ChannelStats, error) {
	return s.repomanager.Videos(s.db).GetChannelStats(ctx, ownerID)
}

// ListVideos returns the caller's own videos, unpublished included.
func (s *DashboardService) ListVideos(ctx context.Context, ownerID string, filter models.VideoFilter, limit, offset int) ([]*models.Video, int64, error) {
	filter.OwnerID = ownerID
	filter.PublishedOnly = false
	return s.repomanager.Videos(s.db).List(ctx, filter, limit, offset)
}
