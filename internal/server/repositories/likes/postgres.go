package likes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

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

func targetColumn(target models.LikeTarget) (string, error) {
	switch target {
	case models.LikeTargetVideo:
		return "video_id", nil
	case models.LikeTargetComment:
		return "comment_id", nil
	case models.LikeTargetTweet:
		return "tweet_id", nil
	default:
		return "", fmt.Errorf("unknown like target %q: %w", target, common.ErrorInvalidInput)
	}
}

func (r *PostgresRepository) Find(ctx context.Context, userID string, target models.LikeTarget, targetID string) (*models.Like, error) {
	column, err := targetColumn(target)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		`SELECT id, liked_by, video_id, comment_id, tweet_id, created_at
		 FROM likes
		 WHERE liked_by = $1 AND %s = $2
		 `, column)

	like := &models.Like{Target: target}
	err = r.db.QueryRowContext(ctx, query, userID, targetID).Scan(
		&like.ID, &like.LikedByID, &like.VideoID, &like.CommentID, &like.TweetID, &like.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return like, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID string, target models.LikeTarget, targetID string) (*models.Like, error) {
	column, err := targetColumn(target)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		`INSERT INTO likes (liked_by, %s)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `, column)

	like := &models.Like{Target: target, LikedByID: userID}
	switch target {
	case models.LikeTargetVideo:
		like.VideoID = &targetID
	case models.LikeTargetComment:
		like.CommentID = &targetID
	case models.LikeTargetTweet:
		like.TweetID = &targetID
	}

	err = r.db.QueryRowContext(ctx, query, userID, targetID).Scan(&like.ID, &like.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return like, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
