package optimistic

import (
	"context"
	"io"
	"log/slog"

	"thoughts/internal/client/api"
	"thoughts/internal/client/models"
	"thoughts/internal/client/store"
	"thoughts/internal/logging"
)

// fakeAPI implements api.Client for controller tests. Only the methods
// these tests exercise have configurable behavior; the rest return
// zero values.
type fakeAPI struct {
	toggleLikeErr     error
	toggleLikeCalls   int
	toggleLikeGate    chan struct{} // when set, ToggleLike blocks until closed
	toggleLikeStarted chan struct{} // when set, closed once ToggleLike is entered

	createCommentFn    func(postID, text string) (*models.Comment, error)
	createCommentCalls int

	updateCommentFn    func(commentID, text string) (*models.Comment, error)
	updateCommentCalls int

	deleteCommentErr   error
	deleteCommentCalls int

	updatePostFn    func(postID string, fields map[string]string) (*models.Post, error)
	updatePostCalls int

	deletePostErr   error
	deletePostCalls int
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*models.User, error) {
	return nil, nil
}
func (f *fakeAPI) Register(ctx context.Context, username, email, password string) error { return nil }
func (f *fakeAPI) VerifyEmail(ctx context.Context, userID, token string) (string, error) {
	return "", nil
}
func (f *fakeAPI) SendResetLink(ctx context.Context, email string) (string, error) { return "", nil }
func (f *fakeAPI) CheckResetLink(ctx context.Context, userID, token string) error  { return nil }
func (f *fakeAPI) ResetPassword(ctx context.Context, userID, token, password string) error {
	return nil
}
func (f *fakeAPI) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return nil, nil
}
func (f *fakeAPI) UpdateProfile(ctx context.Context, userID string, fields map[string]string) (*models.Profile, error) {
	return nil, nil
}
func (f *fakeAPI) UploadProfileImage(ctx context.Context, filename string, data []byte) (string, error) {
	return "", nil
}
func (f *fakeAPI) ListUsers(ctx context.Context, page, limit int) (*models.UserPage, error) {
	return nil, nil
}
func (f *fakeAPI) BlockUser(ctx context.Context, userID string) (string, error)  { return "", nil }
func (f *fakeAPI) VerifyUser(ctx context.Context, userID string) (string, error) { return "", nil }
func (f *fakeAPI) DeleteUser(ctx context.Context, userID string) (string, error) { return "", nil }
func (f *fakeAPI) ListPosts(ctx context.Context, page, limit int, category string) (*models.PostPage, error) {
	return nil, nil
}
func (f *fakeAPI) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return nil, nil
}
func (f *fakeAPI) CreatePost(ctx context.Context, fields map[string]string, imageName string, image []byte) (*models.Post, error) {
	return nil, nil
}

func (f *fakeAPI) UpdatePost(ctx context.Context, postID string, fields map[string]string, imageName string, image []byte) (*models.Post, error) {
	f.updatePostCalls++
	if f.updatePostFn != nil {
		return f.updatePostFn(postID, fields)
	}
	return &models.Post{ID: postID}, nil
}

func (f *fakeAPI) DeletePost(ctx context.Context, postID string) (string, error) {
	f.deletePostCalls++
	return "Post deleted", f.deletePostErr
}

func (f *fakeAPI) ToggleLike(ctx context.Context, postID string) (*models.Post, error) {
	f.toggleLikeCalls++
	if f.toggleLikeStarted != nil {
		close(f.toggleLikeStarted)
		f.toggleLikeStarted = nil
	}
	if f.toggleLikeGate != nil {
		<-f.toggleLikeGate
	}
	if f.toggleLikeErr != nil {
		return nil, f.toggleLikeErr
	}
	return &models.Post{ID: postID}, nil
}

func (f *fakeAPI) ListCategories(ctx context.Context) ([]models.Category, error) { return nil, nil }
func (f *fakeAPI) CreateCategory(ctx context.Context, title string) (*models.Category, error) {
	return nil, nil
}
func (f *fakeAPI) UpdateCategory(ctx context.Context, categoryID, title string) (*models.Category, error) {
	return nil, nil
}
func (f *fakeAPI) DeleteCategory(ctx context.Context, categoryID string) (string, error) {
	return "", nil
}
func (f *fakeAPI) ListComments(ctx context.Context, page int) (*models.CommentPage, error) {
	return nil, nil
}

func (f *fakeAPI) CreateComment(ctx context.Context, postID, text string) (*models.Comment, error) {
	f.createCommentCalls++
	if f.createCommentFn != nil {
		return f.createCommentFn(postID, text)
	}
	return &models.Comment{ID: "c-server", PostID: postID, Text: text}, nil
}

func (f *fakeAPI) UpdateComment(ctx context.Context, commentID, text string) (*models.Comment, error) {
	f.updateCommentCalls++
	if f.updateCommentFn != nil {
		return f.updateCommentFn(commentID, text)
	}
	return &models.Comment{ID: commentID, Text: text}, nil
}

func (f *fakeAPI) DeleteComment(ctx context.Context, commentID string) (string, error) {
	f.deleteCommentCalls++
	return "Comment deleted", f.deleteCommentErr
}

var _ api.Client = (*fakeAPI)(nil)

// scriptedConfirmer answers confirmation prompts from a fixed script.
type scriptedConfirmer struct {
	answers []bool
}

func (c *scriptedConfirmer) Confirm(title, text string) bool {
	if len(c.answers) == 0 {
		return false
	}
	a := c.answers[0]
	c.answers = c.answers[1:]
	return a
}

// memRepo is an in-memory storage.Repository for building auth stores.
type memRepo struct {
	user *models.User
}

func (m *memRepo) Save(ctx context.Context, user *models.User) error {
	u := *user
	m.user = &u
	return nil
}

func (m *memRepo) Load(ctx context.Context) (*models.User, error) { return m.user, nil }
func (m *memRepo) Clear(ctx context.Context) error                { m.user = nil; return nil }

func testLogger() logging.Logger {
	return logging.NewText(io.Discard, slog.LevelError)
}

func loggedInStore(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, user models.User) *store.AuthStore {
	t.Helper()
	s := store.NewAuthStore(&memRepo{})
	if err := s.Login(context.Background(), &user); err != nil {
		t.Fatalf("login: %v", err)
	}
	return s
}
