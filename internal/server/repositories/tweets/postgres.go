package tweets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) Create(ctx context.Context, tweet *models.Tweet) (*models.Tweet, error) {
	query :=
		`INSERT INTO tweets (owner_id, content)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, tweet.OwnerID, tweet.Content).
		Scan(&tweet.ID, &tweet.CreatedAt, &tweet.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return tweet, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Tweet, error) {
	query :=
		`SELECT id, owner_id, content, created_at, updated_at
		 FROM tweets
		 WHERE id = $1
		 `

	tw := &models.Tweet{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tw.ID, &tw.OwnerID, &tw.Content, &tw.CreatedAt, &tw.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return tw, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Tweet, error) {
	query :=
		`SELECT t.id, t.owner_id, t.content, t.created_at, t.updated_at,
		        o.id, o.handle, o.full_name, o.avatar,
		        (SELECT COUNT(*) FROM likes l WHERE l.tweet_id = t.id)
		 FROM tweets t
		 JOIN users o ON o.id = t.owner_id
		 WHERE t.owner_id = $1
		 ORDER BY t.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Tweet
	for rows.Next() {
		tw := &models.Tweet{Owner: &models.UserSummary{}}
		if err := rows.Scan(
			&tw.ID, &tw.OwnerID, &tw.Content, &tw.CreatedAt, &tw.UpdatedAt,
			&tw.Owner.ID, &tw.Owner.Handle, &tw.Owner.FullName, &tw.Owner.Avatar,
			&tw.LikeCount); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, tw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) UpdateContent(ctx context.Context, id, content string) (*models.Tweet, error) {
	query :=
		`UPDATE tweets
		 SET content = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING id, owner_id, content, created_at, updated_at
		 `

	tw := &models.Tweet{}
	err := r.db.QueryRowContext(ctx, query, id, content).Scan(
		&tw.ID, &tw.OwnerID, &tw.Content, &tw.CreatedAt, &tw.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return tw, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
