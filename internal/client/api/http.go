package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"thoughts/internal/client/models"
	"thoughts/internal/logging"
)

// TokenSource supplies the current bearer token. It is consulted on
// every request so that login/logout take effect immediately, including
// for requests built before the session changed.
type TokenSource func() string

// HTTPClient implements Client over the backend's REST/JSON interface.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	log     logging.Logger
}

// NewHTTPClient constructs a client for the API at baseURL. The timeout
// bounds every request; token may be nil for a client that never sends
// credentials.
func NewHTTPClient(baseURL string, timeout time.Duration, token TokenSource, log logging.Logger) *HTTPClient {
	if token == nil {
		token = func() string { return "" }
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
		log:     log.With("component", "api"),
	}
}

// envelopes matching the backend response shapes

type userEnvelope struct {
	User models.User `json:"user"`
}

type profileEnvelope struct {
	User models.Profile `json:"user"`
}

type postEnvelope struct {
	Post models.Post `json:"post"`
}

type commentEnvelope struct {
	Comment models.Comment `json:"comment"`
	Message string         `json:"message"`
}

type categoryEnvelope struct {
	Category models.Category `json:"category"`
}

type categoriesEnvelope struct {
	Categories []models.Category `json:"categories"`
}

type imageEnvelope struct {
	ProfileImage string `json:"profileImage"`
}

type messageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// errorBody is the backend failure payload: a message plus an optional
// field->message validation map.
type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if t := c.token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return &APIError{StatusCode: resp.StatusCode, Message: eb.Message, FieldErrors: eb.Errors}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}

// get performs an idempotent read with a short capped-backoff retry on
// transient failures. Mutations are never retried.
func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	backoff := retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, nil, "", out)
		if err != nil && isTransient(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func isTransient(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return true // network-level failure
}

// doMultipart submits fields plus an optional file part named "image".
func (c *HTTPClient) doMultipart(ctx context.Context, method, path string, fields map[string]string, imageName string, image []byte, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("writing field %s: %w", k, err)
		}
	}
	if image != nil {
		part, err := w.CreateFormFile("image", imageName)
		if err != nil {
			return fmt.Errorf("creating file part: %w", err)
		}
		if _, err := part.Write(image); err != nil {
			return fmt.Errorf("writing file part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.do(ctx, method, path, &buf, w.FormDataContentType(), out)
}

// --- auth ---

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	var env userEnvelope
	in := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", in, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) error {
	in := map[string]string{"username": username, "email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/register", in, nil)
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, userID, token string) (string, error) {
	var env messageEnvelope
	path := fmt.Sprintf("/api/auth/%s/verfiy/%s", url.PathEscape(userID), url.PathEscape(token))
	if err := c.get(ctx, path, &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) SendResetLink(ctx context.Context, email string) (string, error) {
	var env messageEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/api/password/link", map[string]string{"email": email}, &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) CheckResetLink(ctx context.Context, userID, token string) error {
	path := fmt.Sprintf("/api/password/check/%s/%s", url.PathEscape(userID), url.PathEscape(token))
	return c.get(ctx, path, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, userID, token, password string) error {
	path := fmt.Sprintf("/api/password/reset/%s/%s", url.PathEscape(userID), url.PathEscape(token))
	return c.doJSON(ctx, http.MethodPost, path, map[string]string{"password": password}, nil)
}

// --- users ---

func (c *HTTPClient) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var env profileEnvelope
	if err := c.get(ctx, "/api/users/profile/"+url.PathEscape(userID), &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, userID string, fields map[string]string) (*models.Profile, error) {
	var env profileEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/api/users/profile/"+url.PathEscape(userID), fields, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (c *HTTPClient) UploadProfileImage(ctx context.Context, filename string, data []byte) (string, error) {
	var env imageEnvelope
	if err := c.doMultipart(ctx, http.MethodPost, "/api/users/profile/image", nil, filename, data, &env); err != nil {
		return "", err
	}
	return env.ProfileImage, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, page, limit int) (*models.UserPage, error) {
	var env models.UserPage
	path := "/api/users?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	if err := c.get(ctx, path, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *HTTPClient) BlockUser(ctx context.Context, userID string) (string, error) {
	var env messageEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/api/users/block/"+url.PathEscape(userID), nil, &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) VerifyUser(ctx context.Context, userID string) (string, error) {
	var env messageEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/api/users/verify/"+url.PathEscape(userID), nil, &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, userID string) (string, error) {
	var env messageEnvelope
	if err := c.do(ctx, http.MethodDelete, "/api/users/profile/"+url.PathEscape(userID), nil, "", &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

// --- posts ---

func (c *HTTPClient) ListPosts(ctx context.Context, page, limit int, category string) (*models.PostPage, error) {
	var env models.PostPage
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if category != "" {
		q.Set("category", category)
	}
	if err := c.get(ctx, "/api/posts?"+q.Encode(), &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	var env postEnvelope
	if err := c.get(ctx, "/api/posts/"+url.PathEscape(postID), &env); err != nil {
		return nil, err
	}
	return &env.Post, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, fields map[string]string, imageName string, image []byte) (*models.Post, error) {
	var env postEnvelope
	if err := c.doMultipart(ctx, http.MethodPost, "/api/posts", fields, imageName, image, &env); err != nil {
		return nil, err
	}
	return &env.Post, nil
}

func (c *HTTPClient) UpdatePost(ctx context.Context, postID string, fields map[string]string, imageName string, image []byte) (*models.Post, error) {
	var env postEnvelope
	if err := c.doMultipart(ctx, http.MethodPut, "/api/posts/"+url.PathEscape(postID), fields, imageName, image, &env); err != nil {
		return nil, err
	}
	return &env.Post, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, postID string) (string, error) {
	var env messageEnvelope
	if err := c.do(ctx, http.MethodDelete, "/api/posts/"+url.PathEscape(postID), nil, "", &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) ToggleLike(ctx context.Context, postID string) (*models.Post, error) {
	var env postEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/api/posts/like/"+url.PathEscape(postID), nil, &env); err != nil {
		return nil, err
	}
	return &env.Post, nil
}

// --- categories ---

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var env categoriesEnvelope
	if err := c.get(ctx, "/api/categories", &env); err != nil {
		return nil, err
	}
	return env.Categories, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, title string) (*models.Category, error) {
	var env categoryEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/api/categories", map[string]string{"title": title}, &env); err != nil {
		return nil, err
	}
	return &env.Category, nil
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, categoryID, title string) (*models.Category, error) {
	var env categoryEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/api/categories/"+url.PathEscape(categoryID), map[string]string{"title": title}, &env); err != nil {
		return nil, err
	}
	return &env.Category, nil
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, categoryID string) (string, error) {
	var env messageEnvelope
	if err := c.do(ctx, http.MethodDelete, "/api/categories/"+url.PathEscape(categoryID), nil, "", &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

// --- comments ---

func (c *HTTPClient) ListComments(ctx context.Context, page int) (*models.CommentPage, error) {
	var env models.CommentPage
	if err := c.get(ctx, "/api/comments?page="+strconv.Itoa(page), &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, postID, text string) (*models.Comment, error) {
	var env commentEnvelope
	in := map[string]string{"post": postID, "text": text}
	if err := c.doJSON(ctx, http.MethodPost, "/api/comments", in, &env); err != nil {
		return nil, err
	}
	return &env.Comment, nil
}

func (c *HTTPClient) UpdateComment(ctx context.Context, commentID, text string) (*models.Comment, error) {
	var env commentEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/api/comments/"+url.PathEscape(commentID), map[string]string{"text": text}, &env); err != nil {
		return nil, err
	}
	return &env.Comment, nil
}

func (c *HTTPClient) DeleteComment(ctx context.Context, commentID string) (string, error) {
	var env messageEnvelope
	if err := c.do(ctx, http.MethodDelete, "/api/comments/"+url.PathEscape(commentID), nil, "", &env); err != nil {
		return "", err
	}
	return env.Message, nil
}
