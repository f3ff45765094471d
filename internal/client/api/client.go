package api

import (
	"context"

	"thoughts/internal/client/models"
)

// Client is the remote API surface of the Thoughts backend.
//
// Contract:
//   - Every method honors context cancellation and deadlines.
//   - Failures are either one of the package sentinel errors or an
//     *APIError carrying the backend message; both match errors.Is
//     against the sentinels.
//   - Authorized calls read the bearer token at call time, never at
//     construction time, so a token cleared by logout is not reused.
type Client interface {
	// auth
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, username, email, password string) error
	VerifyEmail(ctx context.Context, userID, token string) (string, error)
	SendResetLink(ctx context.Context, email string) (string, error)
	CheckResetLink(ctx context.Context, userID, token string) error
	ResetPassword(ctx context.Context, userID, token, password string) error

	// users
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, fields map[string]string) (*models.Profile, error)
	UploadProfileImage(ctx context.Context, filename string, data []byte) (string, error)
	ListUsers(ctx context.Context, page, limit int) (*models.UserPage, error)
	BlockUser(ctx context.Context, userID string) (string, error)
	VerifyUser(ctx context.Context, userID string) (string, error)
	DeleteUser(ctx context.Context, userID string) (string, error)

	// posts
	ListPosts(ctx context.Context, page, limit int, category string) (*models.PostPage, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	CreatePost(ctx context.Context, fields map[string]string, imageName string, image []byte) (*models.Post, error)
	UpdatePost(ctx context.Context, postID string, fields map[string]string, imageName string, image []byte) (*models.Post, error)
	DeletePost(ctx context.Context, postID string) (string, error)
	ToggleLike(ctx context.Context, postID string) (*models.Post, error)

	// categories
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, title string) (*models.Category, error)
	UpdateCategory(ctx context.Context, categoryID, title string) (*models.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) (string, error)

	// comments
	ListComments(ctx context.Context, page int) (*models.CommentPage, error)
	CreateComment(ctx context.Context, postID, text string) (*models.Comment, error)
	UpdateComment(ctx context.Context, commentID, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID string) (string, error)
}
