package subscriptions

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

func (r *PostgresRepository) Find(ctx context.Context, subscriberID, channelID string) (*models.Subscription, error) {
	query :=
		`SELECT id, subscriber_id, channel_id, created_at
		 FROM subscriptions
		 WHERE subscriber_id = $1 AND channel_id = $2
		 `

	s := &models.Subscription{}
	err := r.db.QueryRowContext(ctx, query, subscriberID, channelID).Scan(
		&s.ID, &s.SubscriberID, &s.ChannelID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Create(ctx context.Context, subscriberID, channelID string) (*models.Subscription, error) {
	query :=
		`INSERT INTO subscriptions (subscriber_id, channel_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	s := &models.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	if err := r.db.QueryRowContext(ctx, query, subscriberID, channelID).Scan(&s.ID, &s.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) ListSubscribers(ctx context.Context, channelID string) ([]*models.Subscription, error) {
	query :=
		`SELECT s.id, s.subscriber_id, s.channel_id, s.created_at,
		        u.id, u.handle, u.full_name, u.avatar
		 FROM subscriptions s
		 JOIN users u ON u.id = s.subscriber_id
		 WHERE s.channel_id = $1
		 ORDER BY s.created_at DESC
		 `

	return r.list(ctx, query, channelID, func(s *models.Subscription) *models.UserSummary {
		s.Subscriber = &models.UserSummary{}
		return s.Subscriber
	})
}

func (r *PostgresRepository) ListSubscribedTo(ctx context.Context, subscriberID string) ([]*models.Subscription, error) {
	query :=
		`SELECT s.id, s.subscriber_id, s.channel_id, s.created_at,
		        u.id, u.handle, u.full_name, u.avatar
		 FROM subscriptions s
		 JOIN users u ON u.id = s.channel_id
		 WHERE s.subscriber_id = $1
		 ORDER BY s.created_at DESC
		 `

	return r.list(ctx, query, subscriberID, func(s *models.Subscription) *models.UserSummary {
		s.Channel = &models.UserSummary{}
		return s.Channel
	})
}

func (r *PostgresRepository) list(ctx context.Context, query, arg string, summary func(*models.Subscription) *models.UserSummary) ([]*models.Subscription, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Subscription
	for rows.Next() {
		s := &models.Subscription{}
		u := summary(s)
		if err := rows.Scan(&s.ID, &s.SubscriberID, &s.ChannelID, &s.CreatedAt,
			&u.ID, &u.Handle, &u.FullName, &u.Avatar); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
