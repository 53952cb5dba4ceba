package videos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/okunevd/streamhub/internal/common"
	"github.com/okunevd/streamhub/internal/dbx"
	"github.com/okunevd/streamhub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const videoColumns = `v.id, v.owner_id, v.title, v.description, v.video_file, v.thumbnail,
	v.duration, v.views, v.is_published, v.created_at, v.updated_at`

func scanVideo(row *sql.Row, v *models.Video) error {
	return row.Scan(&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoFile, &v.Thumbnail,
		&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt)
}

func (r *PostgresRepository) Create(ctx context.Context, video *models.Video) (*models.Video, error) {
	query :=
		`INSERT INTO videos (owner_id, title, description, video_file, thumbnail, duration)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, views, is_published, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		video.OwnerID, video.Title, video.Description, video.VideoFile, video.Thumbnail, video.Duration).
		Scan(&video.ID, &video.Views, &video.IsPublished, &video.CreatedAt, &video.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return video, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Video, error) {
	query :=
		`SELECT ` + videoColumns + `,
		        o.id, o.handle, o.full_name, o.avatar,
		        (SELECT COUNT(*) FROM likes l WHERE l.video_id = v.id)
		 FROM videos v
		 JOIN users o ON o.id = v.owner_id
		 WHERE v.id = $1
		 `

	v := &models.Video{Owner: &models.UserSummary{}}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoFile, &v.Thumbnail,
		&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
		&v.Owner.ID, &v.Owner.Handle, &v.Owner.FullName, &v.Owner.Avatar,
		&v.LikeCount)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return v, nil
}

// sortColumn whitelists user-supplied sort keys.
func sortColumn(sortBy string) string {
	switch sortBy {
	case "views":
		return "v.views"
	case "title":
		return "v.title"
	default:
		return "v.created_at"
	}
}

func (r *PostgresRepository) List(ctx context.Context, filter models.VideoFilter, limit, offset int) ([]*models.Video, int64, error) {
	var conds []string
	var args []any

	if filter.PublishedOnly {
		conds = append(conds, "v.is_published")
	}
	if filter.OwnerID != "" {
		args = append(args, filter.OwnerID)
		conds = append(conds, fmt.Sprintf("v.owner_id = $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, filter.Query)
		conds = append(conds, fmt.Sprintf(
			"to_tsvector('english', v.title || ' ' || v.description) @@ plainto_tsquery('english', $%d)", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM videos v %s`, where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	direction := "DESC"
	if filter.SortAsc {
		direction = "ASC"
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT `+videoColumns+`,
		        o.id, o.handle, o.full_name, o.avatar,
		        (SELECT COUNT(*) FROM likes l WHERE l.video_id = v.id)
		 FROM videos v
		 JOIN users o ON o.id = v.owner_id
		 %s
		 ORDER BY %s %s
		 LIMIT $%d OFFSET $%d`,
		where, sortColumn(filter.SortBy), direction, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Video
	for rows.Next() {
		v := &models.Video{Owner: &models.UserSummary{}}
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoFile, &v.Thumbnail,
			&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
			&v.Owner.ID, &v.Owner.Handle, &v.Owner.FullName, &v.Owner.Avatar,
			&v.LikeCount); err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	return result, total, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, title, description, thumbnail *string) (*models.Video, error) {
	query :=
		`UPDATE videos v
		 SET title = COALESCE($2, title),
		     description = COALESCE($3, description),
		     thumbnail = COALESCE($4, thumbnail),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING ` + videoColumns

	v := &models.Video{}
	if err := scanVideo(r.db.QueryRowContext(ctx, query, id, title, description, thumbnail), v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (*models.Video, error) {
	query :=
		`DELETE FROM videos v
		 WHERE id = $1
		 RETURNING ` + videoColumns

	v := &models.Video{}
	if err := scanVideo(r.db.QueryRowContext(ctx, query, id), v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) TogglePublish(ctx context.Context, id string) (*models.Video, error) {
	query :=
		`UPDATE videos v
		 SET is_published = NOT is_published, updated_at = now()
		 WHERE id = $1
		 RETURNING ` + videoColumns

	v := &models.Video{}
	if err := scanVideo(r.db.QueryRowContext(ctx, query, id), v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) IncrementViews(ctx context.Context, id string) error {
	query := `UPDATE videos SET views = views + 1 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListLikedBy(ctx context.Context, userID string) ([]*models.Video, error) {
	query :=
		`SELECT ` + videoColumns + `,
		        o.id, o.handle, o.full_name, o.avatar
		 FROM likes l
		 JOIN videos v ON v.id = l.video_id
		 JOIN users o ON o.id = v.owner_id
		 WHERE l.liked_by = $1 AND l.video_id IS NOT NULL
		 ORDER BY l.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Video
	for rows.Next() {
		v := &models.Video{Owner: &models.UserSummary{}}
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoFile, &v.Thumbnail,
			&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
			&v.Owner.ID, &v.Owner.Handle, &v.Owner.FullName, &v.Owner.Avatar); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetChannelStats(ctx context.Context, ownerID string) (*models.ChannelStats, error) {
	query :=
		`SELECT
		    (SELECT COUNT(*) FROM videos v WHERE v.owner_id = $1),
		    (SELECT COALESCE(SUM(v.views), 0) FROM videos v WHERE v.owner_id = $1),
		    (SELECT COUNT(*) FROM likes l JOIN videos v ON v.id = l.video_id WHERE v.owner_id = $1),
		    (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = $1)
		 `

	stats := &models.ChannelStats{}
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(
		&stats.TotalVideos, &stats.TotalViews, &stats.TotalLikes, &stats.TotalSubscribers)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return stats, nil
}
