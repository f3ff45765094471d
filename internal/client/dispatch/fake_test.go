package dispatch

import (
	"context"
	"io"
	"log/slog"

	"thoughts/internal/client/api"
	"thoughts/internal/client/models"
	"thoughts/internal/logging"
)

// fakeAPI implements api.Client with per-method hooks and call
// counters for the workflows these tests exercise.
type fakeAPI struct {
	loginFn    func(email, password string) (*models.User, error)
	loginCalls int

	registerFn    func(username, email, password string) error
	registerCalls int

	getProfileFn    func(userID string) (*models.Profile, error)
	getProfileCalls int

	updateProfileFn     func(userID string, fields map[string]string) (*models.Profile, error)
	updateProfileCalls  int
	lastProfileFields   map[string]string
	uploadImageFn       func(filename string, data []byte) (string, error)
	uploadImageCalls    int
	createPostFn        func(fields map[string]string, imageName string, image []byte) (*models.Post, error)
	createPostCalls     int
	verifyEmailErr      error
	sendResetLinkErr    error
	checkResetLinkErr   error
	resetPasswordErr    error
	blockUserErr        error
	blockUserCalls      int
	verifyUserErr       error
	verifyUserCalls     int
	deleteUserErr       error
	deleteUserCalls     int
	createCategoryErr   error
	updateCategoryErr   error
	deleteCategoryErr   error
	deleteCategoryCalls int
	deleteCommentErr    error
	deleteCommentCalls  int
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*models.User, error) {
	f.loginCalls++
	if f.loginFn != nil {
		return f.loginFn(email, password)
	}
	return &models.User{ID: "u1", Email: email, Token: "tok"}, nil
}

func (f *fakeAPI) Register(ctx context.Context, username, email, password string) error {
	f.registerCalls++
	if f.registerFn != nil {
		return f.registerFn(username, email, password)
	}
	return nil
}

func (f *fakeAPI) VerifyEmail(ctx context.Context, userID, token string) (string, error) {
	return "Your account has been verified", f.verifyEmailErr
}

func (f *fakeAPI) SendResetLink(ctx context.Context, email string) (string, error) {
	return "Reset link sent", f.sendResetLinkErr
}

func (f *fakeAPI) CheckResetLink(ctx context.Context, userID, token string) error {
	return f.checkResetLinkErr
}

func (f *fakeAPI) ResetPassword(ctx context.Context, userID, token, password string) error {
	return f.resetPasswordErr
}

func (f *fakeAPI) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	f.getProfileCalls++
	if f.getProfileFn != nil {
		return f.getProfileFn(userID)
	}
	return &models.Profile{User: models.User{ID: userID}}, nil
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, userID string, fields map[string]string) (*models.Profile, error) {
	f.updateProfileCalls++
	f.lastProfileFields = fields
	if f.updateProfileFn != nil {
		return f.updateProfileFn(userID, fields)
	}
	return &models.Profile{User: models.User{ID: userID}}, nil
}

func (f *fakeAPI) UploadProfileImage(ctx context.Context, filename string, data []byte) (string, error) {
	f.uploadImageCalls++
	if f.uploadImageFn != nil {
		return f.uploadImageFn(filename, data)
	}
	return "https://img/new.png", nil
}

func (f *fakeAPI) ListUsers(ctx context.Context, page, limit int) (*models.UserPage, error) {
	return &models.UserPage{}, nil
}

func (f *fakeAPI) BlockUser(ctx context.Context, userID string) (string, error) {
	f.blockUserCalls++
	return "User blocked", f.blockUserErr
}

func (f *fakeAPI) VerifyUser(ctx context.Context, userID string) (string, error) {
	f.verifyUserCalls++
	return "User verified", f.verifyUserErr
}

func (f *fakeAPI) DeleteUser(ctx context.Context, userID string) (string, error) {
	f.deleteUserCalls++
	return "User deleted", f.deleteUserErr
}

func (f *fakeAPI) ListPosts(ctx context.Context, page, limit int, category string) (*models.PostPage, error) {
	return &models.PostPage{}, nil
}

func (f *fakeAPI) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return &models.Post{ID: postID}, nil
}

func (f *fakeAPI) CreatePost(ctx context.Context, fields map[string]string, imageName string, image []byte) (*models.Post, error) {
	f.createPostCalls++
	if f.createPostFn != nil {
		return f.createPostFn(fields, imageName, image)
	}
	return &models.Post{ID: "p-new", Title: fields["title"]}, nil
}

func (f *fakeAPI) UpdatePost(ctx context.Context, postID string, fields map[string]string, imageName string, image []byte) (*models.Post, error) {
	return &models.Post{ID: postID}, nil
}

func (f *fakeAPI) DeletePost(ctx context.Context, postID string) (string, error) { return "", nil }

func (f *fakeAPI) ToggleLike(ctx context.Context, postID string) (*models.Post, error) {
	return &models.Post{ID: postID}, nil
}

func (f *fakeAPI) ListCategories(ctx context.Context) ([]models.Category, error) { return nil, nil }

func (f *fakeAPI) CreateCategory(ctx context.Context, title string) (*models.Category, error) {
	return &models.Category{ID: "cat1", Title: title}, f.createCategoryErr
}

func (f *fakeAPI) UpdateCategory(ctx context.Context, categoryID, title string) (*models.Category, error) {
	return &models.Category{ID: categoryID, Title: title}, f.updateCategoryErr
}

func (f *fakeAPI) DeleteCategory(ctx context.Context, categoryID string) (string, error) {
	f.deleteCategoryCalls++
	return "Category deleted", f.deleteCategoryErr
}

func (f *fakeAPI) ListComments(ctx context.Context, page int) (*models.CommentPage, error) {
	return &models.CommentPage{}, nil
}

func (f *fakeAPI) CreateComment(ctx context.Context, postID, text string) (*models.Comment, error) {
	return &models.Comment{ID: "c1", PostID: postID, Text: text}, nil
}

func (f *fakeAPI) UpdateComment(ctx context.Context, commentID, text string) (*models.Comment, error) {
	return &models.Comment{ID: commentID, Text: text}, nil
}

func (f *fakeAPI) DeleteComment(ctx context.Context, commentID string) (string, error) {
	f.deleteCommentCalls++
	return "Comment deleted", f.deleteCommentErr
}

var _ api.Client = (*fakeAPI)(nil)

// fakeNotifier records notifications.
type fakeNotifier struct {
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *fakeNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

// scriptedConfirmer answers confirmation prompts from a fixed script.
type scriptedConfirmer struct {
	answers []bool
	asked   int
}

func (c *scriptedConfirmer) Confirm(title, text string) bool {
	c.asked++
	if len(c.answers) == 0 {
		return false
	}
	a := c.answers[0]
	c.answers = c.answers[1:]
	return a
}

// memRepo is an in-memory storage.Repository.
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
