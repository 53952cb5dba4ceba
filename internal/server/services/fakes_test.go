package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/okunevd/streamhub/internal/dbx"
	"github.com/okunevd/streamhub/internal/server/models"
	commentsrepo "github.com/okunevd/streamhub/internal/server/repositories/comments"
	likesrepo "github.com/okunevd/streamhub/internal/server/repositories/likes"
	playlistsrepo "github.com/okunevd/streamhub/internal/server/repositories/playlists"
	subscriptionsrepo "github.com/okunevd/streamhub/internal/server/repositories/subscriptions"
	tweetsrepo "github.com/okunevd/streamhub/internal/server/repositories/tweets"
	usersrepo "github.com/okunevd/streamhub/internal/server/repositories/users"
	videosrepo "github.com/okunevd/streamhub/internal/server/repositories/videos"
)

// --- shared helpers ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// fakeMediaStore counts uploads and records deletions.
type fakeMediaStore struct {
	uploads   int
	uploadErr error
	deleted   []string
	deleteErr error
}

func (f *fakeMediaStore) Upload(ctx context.Context, kind, contentType string, body io.Reader) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads++
	return fmt.Sprintf("http://media.test/%s/%d", kind, f.uploads), nil
}

func (f *fakeMediaStore) Delete(ctx context.Context, url string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, url)
	return nil
}

// --- fake repositories ---

type fakeUsersRepo struct {
	createErr error

	getByIDOut *models.User
	getByIDErr error

	getByLoginOut *models.User
	getByLoginErr error

	updateProfileOut *models.User
	updateProfileErr error

	updateAvatarPrev string
	updateAvatarErr  error
	updateCoverPrev  string
	updateCoverErr   error

	setRefreshGot    *string // captured argument
	setRefreshCalled bool
	setRefreshErr    error

	swapOK     bool
	swapErr    error
	swapGotOld string
	swapGotNew string
	swapGotID  string
	swapCalled bool

	channelOut *models.ChannelProfile
	channelErr error

	appendWatchGot []string // userID, videoID
	appendWatchErr error

	watchHistoryOut []*models.Video
	watchHistoryErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *u
	out.ID = "u-new"
	return &out, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDOut, nil
}

func (f *fakeUsersRepo) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	if f.getByLoginErr != nil {
		return nil, f.getByLoginErr
	}
	return f.getByLoginOut, nil
}

func (f *fakeUsersRepo) UpdateProfile(ctx context.Context, id string, fullName, email *string) (*models.User, error) {
	if f.updateProfileErr != nil {
		return nil, f.updateProfileErr
	}
	return f.updateProfileOut, nil
}

func (f *fakeUsersRepo) UpdateAvatar(ctx context.Context, id, url string) (string, error) {
	return f.updateAvatarPrev, f.updateAvatarErr
}

func (f *fakeUsersRepo) UpdateCoverImage(ctx context.Context, id, url string) (string, error) {
	return f.updateCoverPrev, f.updateCoverErr
}

func (f *fakeUsersRepo) SetRefreshToken(ctx context.Context, id string, token *string) error {
	f.setRefreshCalled = true
	f.setRefreshGot = token
	return f.setRefreshErr
}

func (f *fakeUsersRepo) SwapRefreshToken(ctx context.Context, id, old, new string) (bool, error) {
	f.swapCalled = true
	f.swapGotID, f.swapGotOld, f.swapGotNew = id, old, new
	return f.swapOK, f.swapErr
}

func (f *fakeUsersRepo) GetChannelProfile(ctx context.Context, handle, viewerID string) (*models.ChannelProfile, error) {
	if f.channelErr != nil {
		return nil, f.channelErr
	}
	return f.channelOut, nil
}

func (f *fakeUsersRepo) AppendWatchHistory(ctx context.Context, userID, videoID string) error {
	f.appendWatchGot = []string{userID, videoID}
	return f.appendWatchErr
}

func (f *fakeUsersRepo) GetWatchHistory(ctx context.Context, userID string, limit, offset int) ([]*models.Video, error) {
	return f.watchHistoryOut, f.watchHistoryErr
}

type fakeVideosRepo struct {
	createErr error

	getOut *models.Video
	getErr error

	listOut   []*models.Video
	listTotal int64
	listErr   error
	listGot   models.VideoFilter

	updateOut *models.Video
	updateErr error

	deleteOut *models.Video
	deleteErr error

	toggleOut *models.Video
	toggleErr error

	incCalled bool
	incErr    error

	likedOut []*models.Video
	likedErr error

	statsOut *models.ChannelStats
	statsErr error
}

func (f *fakeVideosRepo) Create(ctx context.Context, v *models.Video) (*models.Video, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *v
	out.ID = "v-new"
	return &out, nil
}

func (f *fakeVideosRepo) GetByID(ctx context.Context, id string) (*models.Video, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeVideosRepo) List(ctx context.Context, filter models.VideoFilter, limit, offset int) ([]*models.Video, int64, error) {
	f.listGot = filter
	return f.listOut, f.listTotal, f.listErr
}

func (f *fakeVideosRepo) Update(ctx context.Context, id string, title, description, thumbnail *string) (*models.Video, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeVideosRepo) Delete(ctx context.Context, id string) (*models.Video, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return f.deleteOut, nil
}

func (f *fakeVideosRepo) TogglePublish(ctx context.Context, id string) (*models.Video, error) {
	if f.toggleErr != nil {
		return nil, f.toggleErr
	}
	return f.toggleOut, nil
}

func (f *fakeVideosRepo) IncrementViews(ctx context.Context, id string) error {
	f.incCalled = true
	return f.incErr
}

func (f *fakeVideosRepo) ListLikedBy(ctx context.Context, userID string) ([]*models.Video, error) {
	return f.likedOut, f.likedErr
}

func (f *fakeVideosRepo) GetChannelStats(ctx context.Context, ownerID string) (*models.ChannelStats, error) {
	return f.statsOut, f.statsErr
}

type fakeCommentsRepo struct {
	createErr error

	getOut *models.Comment
	getErr error

	listOut   []*models.Comment
	listTotal int64
	listErr   error

	updateOut *models.Comment
	updateErr error

	deleteErr error
	deleted   bool
}

func (f *fakeCommentsRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *c
	out.ID = "c-new"
	return &out, nil
}

func (f *fakeCommentsRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeCommentsRepo) ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]*models.Comment, int64, error) {
	return f.listOut, f.listTotal, f.listErr
}

func (f *fakeCommentsRepo) UpdateContent(ctx context.Context, id, content string) (*models.Comment, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeCommentsRepo) Delete(ctx context.Context, id string) error {
	f.deleted = true
	return f.deleteErr
}

type fakeLikesRepo struct {
	findOut *models.Like
	findErr error

	createOut *models.Like
	createErr error
	created   bool

	deleteErr error
	deleted   bool
}

func (f *fakeLikesRepo) Find(ctx context.Context, userID string, target models.LikeTarget, targetID string) (*models.Like, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeLikesRepo) Create(ctx context.Context, userID string, target models.LikeTarget, targetID string) (*models.Like, error) {
	f.created = true
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeLikesRepo) Delete(ctx context.Context, id string) error {
	f.deleted = true
	return f.deleteErr
}

type fakePlaylistsRepo struct {
	createErr error

	getOut *models.Playlist
	getErr error

	listOut []*models.Playlist
	listErr error

	updateOut *models.Playlist
	updateErr error

	deleteErr error
	deleted   bool

	addErr    error
	added     bool
	removeErr error
	removed   bool
}

func (f *fakePlaylistsRepo) Create(ctx context.Context, p *models.Playlist) (*models.Playlist, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *p
	out.ID = "p-new"
	return &out, nil
}

func (f *fakePlaylistsRepo) GetByID(ctx context.Context, id string) (*models.Playlist, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakePlaylistsRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Playlist, error) {
	return f.listOut, f.listErr
}

func (f *fakePlaylistsRepo) Update(ctx context.Context, id string, name, description *string) (*models.Playlist, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakePlaylistsRepo) Delete(ctx context.Context, id string) error {
	f.deleted = true
	return f.deleteErr
}

func (f *fakePlaylistsRepo) AddVideo(ctx context.Context, playlistID, videoID string) error {
	f.added = true
	return f.addErr
}

func (f *fakePlaylistsRepo) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	f.removed = true
	return f.removeErr
}

type fakeSubscriptionsRepo struct {
	findOut *models.Subscription
	findErr error

	createOut *models.Subscription
	createErr error
	created   bool

	deleteErr error
	deleted   bool

	subscribersOut []*models.Subscription
	subscribersErr error
	subscribedOut  []*models.Subscription
	subscribedErr  error
}

func (f *fakeSubscriptionsRepo) Find(ctx context.Context, subscriberID, channelID string) (*models.Subscription, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeSubscriptionsRepo) Create(ctx context.Context, subscriberID, channelID string) (*models.Subscription, error) {
	f.created = true
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeSubscriptionsRepo) Delete(ctx context.Context, id string) error {
	f.deleted = true
	return f.deleteErr
}

func (f *fakeSubscriptionsRepo) ListSubscribers(ctx context.Context, channelID string) ([]*models.Subscription, error) {
	return f.subscribersOut, f.subscribersErr
}

func (f *fakeSubscriptionsRepo) ListSubscribedTo(ctx context.Context, subscriberID string) ([]*models.Subscription, error) {
	return f.subscribedOut, f.subscribedErr
}

type fakeTweetsRepo struct {
	createErr error

	getOut *models.Tweet
	getErr error

	listOut []*models.Tweet
	listErr error

	updateOut *models.Tweet
	updateErr error

	deleteErr error
	deleted   bool
}

func (f *fakeTweetsRepo) Create(ctx context.Context, tw *models.Tweet) (*models.Tweet, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *tw
	out.ID = "t-new"
	return &out, nil
}

func (f *fakeTweetsRepo) GetByID(ctx context.Context, id string) (*models.Tweet, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeTweetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Tweet, error) {
	return f.listOut, f.listErr
}

func (f *fakeTweetsRepo) UpdateContent(ctx context.Context, id, content string) (*models.Tweet, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeTweetsRepo) Delete(ctx context.Context, id string) error {
	f.deleted = true
	return f.deleteErr
}

// fakeRepoManager vends the fakes regardless of the DBTX handed in.
type fakeRepoManager struct {
	u  *fakeUsersRepo
	v  *fakeVideosRepo
	c  *fakeCommentsRepo
	l  *fakeLikesRepo
	p  *fakePlaylistsRepo
	s  *fakeSubscriptionsRepo
	tw *fakeTweetsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository            { return m.u }
func (m *fakeRepoManager) Videos(db dbx.DBTX) videosrepo.Repository          { return m.v }
func (m *fakeRepoManager) Comments(db dbx.DBTX) commentsrepo.Repository      { return m.c }
func (m *fakeRepoManager) Likes(db dbx.DBTX) likesrepo.Repository            { return m.l }
func (m *fakeRepoManager) Playlists(db dbx.DBTX) playlistsrepo.Repository    { return m.p }
func (m *fakeRepoManager) Subscriptions(db dbx.DBTX) subscriptionsrepo.Repository {
	return m.s
}
func (m *fakeRepoManager) Tweets(db dbx.DBTX) tweetsrepo.Repository { return m.tw }
