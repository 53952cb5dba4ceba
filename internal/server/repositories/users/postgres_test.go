package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/okunevd/streamhub/internal/common"
	"github.com/okunevd/streamhub/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(handle,\s*email,\s*full_name,\s*avatar,\s*cover_image,\s*password_hash\)`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("u1", now, now)
	mock.ExpectQuery(q).
		WithArgs("alice", "alice@example.com", "Alice", "http://m/a/1", "", "hash").
		WillReturnRows(rows)

	u := &models.User{Handle: "alice", Email: "alice@example.com", FullName: "Alice", Avatar: "http://m/a/1", PasswordHash: "hash"}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "u1" || got.Handle != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^INSERT\s+INTO\s+users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_handle_key"})

	_, err := repo.Create(context.Background(), &models.User{Handle: "alice"})
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want ErrorConflict, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^INSERT\s+INTO\s+users`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Handle: "alice"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "handle", "email", "full_name", "avatar", "cover_image", "created_at", "updated_at"}).
		AddRow("u1", "alice", "alice@example.com", "Alice", "http://m/a/1", "", now, now)
	mock.ExpectQuery(`^SELECT\s+id,\s*handle,.*FROM\s+users\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "u1")
	if err != nil || got.Handle != "alice" {
		t.Fatalf("GetByID: %+v err=%v", got, err)
	}

	mock.ExpectQuery(`^SELECT\s+id,\s*handle,.*FROM\s+users\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), "ghost"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestGetByLogin_IncludesSecrets(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	stored := "refresh-token-value"
	rows := sqlmock.NewRows([]string{"id", "handle", "email", "full_name", "avatar", "cover_image", "password_hash", "refresh_token", "created_at", "updated_at"}).
		AddRow("u1", "alice", "alice@example.com", "Alice", "", "", "bcrypt-hash", stored, now, now)
	mock.ExpectQuery(`WHERE\s+handle\s*=\s*\$1\s+OR\s+email\s*=\s*\$1`).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetByLogin(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByLogin error: %v", err)
	}
	if got.PasswordHash != "bcrypt-hash" || got.RefreshToken == nil || *got.RefreshToken != stored {
		t.Fatalf("full row expected: %+v", got)
	}
}

func TestSwapRefreshToken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^UPDATE\s+users\s+SET\s+refresh_token\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1\s+AND\s+refresh_token\s*=\s*\$2`

	// stored token matches: one row updated
	mock.ExpectExec(q).
		WithArgs("u1", "old-token", "new-token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.SwapRefreshToken(context.Background(), "u1", "old-token", "new-token")
	if err != nil || !ok {
		t.Fatalf("swap matched: ok=%v err=%v", ok, err)
	}

	// stored token already rotated: no rows
	mock.ExpectExec(q).
		WithArgs("u1", "stale-token", "new-token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.SwapRefreshToken(context.Background(), "u1", "stale-token", "new-token")
	if err != nil || ok {
		t.Fatalf("swap stale: ok=%v err=%v", ok, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestSetRefreshToken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^UPDATE\s+users\s+SET\s+refresh_token\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1`

	token := "fresh"
	mock.ExpectExec(q).WithArgs("u1", token).WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.SetRefreshToken(context.Background(), "u1", &token); err != nil {
		t.Fatalf("SetRefreshToken error: %v", err)
	}

	// clearing for an unknown user
	mock.ExpectExec(q).WithArgs("ghost", nil).WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.SetRefreshToken(context.Background(), "ghost", nil); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestGetChannelProfile(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "handle", "full_name", "avatar", "cover_image", "subs", "subbed", "is_subscribed"}).
		AddRow("u1", "alice", "Alice", "http://m/a/1", "", int64(12), int64(3), true)
	mock.ExpectQuery(`FROM\s+users\s+u\s+WHERE\s+u\.handle\s*=\s*\$1`).
		WithArgs("alice", "u2").
		WillReturnRows(rows)

	p, err := repo.GetChannelProfile(context.Background(), "alice", "u2")
	if err != nil {
		t.Fatalf("GetChannelProfile error: %v", err)
	}
	if p.SubscriberCount != 12 || p.SubscribedToCount != 3 || !p.IsSubscribed {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestAppendWatchHistory(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^INSERT\s+INTO\s+watch_history`).
		WithArgs("u1", "v1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.AppendWatchHistory(context.Background(), "u1", "v1"); err != nil {
		t.Fatalf("AppendWatchHistory error: %v", err)
	}
}
