package users

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

const sanitizedColumns = `id, handle, email, full_name, avatar, cover_image, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func scanSanitized(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Handle, &user.Email, &user.FullName,
		&user.Avatar, &user.CoverImage, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (handle, email, full_name, avatar, cover_image, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Handle, user.Email, user.FullName, user.Avatar, user.CoverImage, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + sanitizedColumns + ` FROM users WHERE id = $1`
	return scanSanitized(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	query :=
		`SELECT id, handle, email, full_name, avatar, cover_image, password_hash, refresh_token, created_at, updated_at
		 FROM users
		 WHERE handle = $1 OR email = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, login).Scan(
		&user.ID, &user.Handle, &user.Email, &user.FullName, &user.Avatar,
		&user.CoverImage, &user.PasswordHash, &user.RefreshToken,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id string, fullName, email *string) (*models.User, error) {
	query :=
		`UPDATE users
		 SET full_name = COALESCE($2, full_name),
		     email = COALESCE($3, email),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING ` + sanitizedColumns

	user, err := scanSanitized(r.db.QueryRowContext(ctx, query, id, fullName, email))
	if err != nil && isUniqueViolation(err) {
		return nil, common.ErrorConflict
	}
	return user, err
}

func (r *PostgresRepository) UpdateAvatar(ctx context.Context, id, url string) (string, error) {
	return r.swapImage(ctx, "avatar", id, url)
}

func (r *PostgresRepository) UpdateCoverImage(ctx context.Context, id, url string) (string, error) {
	return r.swapImage(ctx, "cover_image", id, url)
}

func (r *PostgresRepository) swapImage(ctx context.Context, column, id, url string) (string, error) {
	// The self-join lets a single statement return the pre-update value.
	query := fmt.Sprintf(
		`UPDATE users u
		 SET %[1]s = $2, updated_at = now()
		 FROM users prev
		 WHERE u.id = $1 AND prev.id = u.id
		 RETURNING prev.%[1]s`, column)

	var previous string
	if err := r.db.QueryRowContext(ctx, query, id, url).Scan(&previous); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return previous, nil
}

func (r *PostgresRepository) SetRefreshToken(ctx context.Context, id string, token *string) error {
	query := `UPDATE users SET refresh_token = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, token)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) SwapRefreshToken(ctx context.Context, id, old, new string) (bool, error) {
	query :=
		`UPDATE users SET refresh_token = $3
		 WHERE id = $1 AND refresh_token = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, old, new)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) GetChannelProfile(ctx context.Context, handle, viewerID string) (*models.ChannelProfile, error) {
	query :=
		`SELECT u.id, u.handle, u.full_name, u.avatar, u.cover_image,
		        (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id),
		        (SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.id),
		        EXISTS (SELECT 1 FROM subscriptions s WHERE s.channel_id = u.id AND s.subscriber_id = $2)
		 FROM users u
		 WHERE u.handle = $1
		 `

	p := &models.ChannelProfile{}
	err := r.db.QueryRowContext(ctx, query, handle, nullIfEmpty(viewerID)).Scan(
		&p.ID, &p.Handle, &p.FullName, &p.Avatar, &p.CoverImage,
		&p.SubscriberCount, &p.SubscribedToCount, &p.IsSubscribed)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) AppendWatchHistory(ctx context.Context, userID, videoID string) error {
	query := `INSERT INTO watch_history (user_id, video_id) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, userID, videoID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetWatchHistory(ctx context.Context, userID string, limit, offset int) ([]*models.Video, error) {
	query :=
		`SELECT v.id, v.owner_id, v.title, v.description, v.video_file, v.thumbnail,
		        v.duration, v.views, v.is_published, v.created_at, v.updated_at,
		        o.id, o.handle, o.full_name, o.avatar
		 FROM watch_history h
		 JOIN videos v ON v.id = h.video_id
		 JOIN users o ON o.id = v.owner_id
		 WHERE h.user_id = $1
		 ORDER BY h.watched_at DESC
		 LIMIT $2 OFFSET $3
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
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

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
