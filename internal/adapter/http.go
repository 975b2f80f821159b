package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-books-api/internal/config"
	"github.com/MKhiriev/go-books-api/internal/etag"
	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/internal/utils"
	"github.com/MKhiriev/go-books-api/models"
	"github.com/go-resty/resty/v2"
)

const (
	booksPath   = "/api/v1/books/"
	authPath    = "/api/v1/auth/"
	versionPath = "/api/version"
	healthPath  = "/api/health"
)

type httpBooksClient struct {
	client *utils.HTTPClient

	token  string
	locale string

	logger *logger.Logger
}

// NewHTTPBooksClient constructs the REST implementation of [BooksClient].
// It normalises cfg.BaseURL, applies cfg.RequestTimeout and seeds the token
// from cfg.Token. cfg.Locale, when set, is sent as Accept-Language.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPBooksClient(cfg config.Adapter, logger *logger.Logger) (BooksClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	c := &httpBooksClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		locale: strings.TrimSpace(cfg.Locale),
		logger: logger,
	}
	c.SetToken(cfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [BooksClient].
func (c *httpBooksClient) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

// Token implements [BooksClient].
func (c *httpBooksClient) Token() string {
	return c.token
}

// Register implements [BooksClient]. The token is read from the
// Authorization response header.
func (c *httpBooksClient) Register(ctx context.Context, req models.RegisterRequest) (Result[models.AuthResponse], error) {
	resp, err := c.request(ctx).SetBody(req).Post(authPath + "register")
	if err != nil {
		return Result[models.AuthResponse]{}, fmt.Errorf("register request: %w", err)
	}

	return c.storeToken(resp)
}

// Login implements [BooksClient].
func (c *httpBooksClient) Login(ctx context.Context, req models.LoginRequest) (Result[models.AuthResponse], error) {
	resp, err := c.request(ctx).SetBody(req).Post(authPath + "login")
	if err != nil {
		return Result[models.AuthResponse]{}, fmt.Errorf("login request: %w", err)
	}

	return c.storeToken(resp)
}

func (c *httpBooksClient) storeToken(resp *resty.Response) (Result[models.AuthResponse], error) {
	result, err := decodeResult[models.AuthResponse](resp)
	if err != nil {
		return result, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		// the envelope carries the token as well
		if result.Data.Token == "" {
			return result, fmt.Errorf("parse bearer token: %w", err)
		}
		token = result.Data.Token
	}

	c.SetToken(token)
	c.logger.Debug().Str("username", result.Data.Username).Msg("token stored")

	return result, nil
}

// Me implements [BooksClient].
func (c *httpBooksClient) Me(ctx context.Context) (Result[models.Identity], error) {
	resp, err := c.request(ctx).Get(authPath + "me")
	if err != nil {
		return Result[models.Identity]{}, fmt.Errorf("me request: %w", err)
	}

	return decodeResult[models.Identity](resp)
}

// ListBooks implements [BooksClient].
func (c *httpBooksClient) ListBooks(ctx context.Context, ifNoneMatch string) (Result[[]models.Book], error) {
	resp, err := c.conditional(ctx, ifNoneMatch).Get(booksPath)
	if err != nil {
		return Result[[]models.Book]{}, fmt.Errorf("list books request: %w", err)
	}

	return decodeResult[[]models.Book](resp)
}

// GetBook implements [BooksClient].
func (c *httpBooksClient) GetBook(ctx context.Context, id int64, ifNoneMatch string) (Result[models.Book], error) {
	resp, err := c.conditional(ctx, ifNoneMatch).Get(bookPath(id))
	if err != nil {
		return Result[models.Book]{}, fmt.Errorf("get book request: %w", err)
	}

	return decodeResult[models.Book](resp)
}

// CreateBook implements [BooksClient].
func (c *httpBooksClient) CreateBook(ctx context.Context, book models.Book) (Result[models.Book], error) {
	resp, err := c.request(ctx).SetBody(book).Post(booksPath)
	if err != nil {
		return Result[models.Book]{}, fmt.Errorf("create book request: %w", err)
	}

	return decodeResult[models.Book](resp)
}

// UpdateBook implements [BooksClient].
func (c *httpBooksClient) UpdateBook(ctx context.Context, id int64, book models.Book, ifMatch string) (Result[models.Book], error) {
	req := c.request(ctx).SetBody(book)
	if ifMatch != "" {
		req.SetHeader(etag.HeaderIfMatch, ifMatch)
	}

	resp, err := req.Put(bookPath(id))
	if err != nil {
		return Result[models.Book]{}, fmt.Errorf("update book request: %w", err)
	}

	return decodeResult[models.Book](resp)
}

// DeleteBook implements [BooksClient].
func (c *httpBooksClient) DeleteBook(ctx context.Context, id int64) (Result[any], error) {
	resp, err := c.request(ctx).Delete(bookPath(id))
	if err != nil {
		return Result[any]{}, fmt.Errorf("delete book request: %w", err)
	}

	return decodeResult[any](resp)
}

// Version implements [BooksClient].
func (c *httpBooksClient) Version(ctx context.Context) (Result[models.VersionResponse], error) {
	resp, err := c.request(ctx).Get(versionPath)
	if err != nil {
		return Result[models.VersionResponse]{}, fmt.Errorf("version request: %w", err)
	}

	return decodeResult[models.VersionResponse](resp)
}

// Health implements [BooksClient].
func (c *httpBooksClient) Health(ctx context.Context) (Result[models.HealthResponse], error) {
	resp, err := c.request(ctx).Get(healthPath)
	if err != nil {
		return Result[models.HealthResponse]{}, fmt.Errorf("health request: %w", err)
	}

	return decodeResult[models.HealthResponse](resp)
}

// request starts a request carrying the stored token and locale.
func (c *httpBooksClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if c.token != "" {
		req.SetHeader("Authorization", "Bearer "+c.token)
	}
	if c.locale != "" {
		req.SetHeader("Accept-Language", c.locale)
	}
	return req
}

func (c *httpBooksClient) conditional(ctx context.Context, ifNoneMatch string) *resty.Request {
	req := c.request(ctx)
	if ifNoneMatch != "" {
		req.SetHeader(etag.HeaderIfNoneMatch, ifNoneMatch)
	}
	return req
}

func bookPath(id int64) string {
	return booksPath + strconv.FormatInt(id, 10)
}

// decodeResult maps error statuses and unwraps the success envelope.
func decodeResult[T any](resp *resty.Response) (Result[T], error) {
	result := Result[T]{ETag: resp.Header().Get(etag.HeaderETag)}

	if err := mapHTTPError(resp); err != nil {
		return result, err
	}
	if resp.StatusCode() == http.StatusNotModified {
		result.NotModified = true
		return result, nil
	}

	var envelope models.APIResponse[T]
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return result, fmt.Errorf("decode response: %w", err)
	}

	result.Message = envelope.Message
	result.Data = envelope.Data

	return result, nil
}
