package client

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

	"github.com/google/uuid"

	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/common"
	"github.com/eduhub/eduhub/internal/logging"
	"github.com/eduhub/eduhub/internal/netx"
)

const maxResponseBody = 8 << 20

// HTTPClient talks to the EduHub REST API under baseURL
// (e.g. "http://localhost:5000/api").
type HTTPClient struct {
	baseURL *url.URL
	hc      *http.Client
	timeout time.Duration
	log     logging.Logger
	newID   func() string
}

// NewHTTPClient validates baseURL. A zero timeout disables the per-request
// deadline; a nil logger discards.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api base url %q: scheme must be http or https", baseURL)
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &HTTPClient{
		baseURL: u,
		hc:      &http.Client{},
		timeout: timeout,
		log:     logger,
		newID:   uuid.NewString,
	}, nil
}

// envelope is the common {success, message, data} response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Token   string          `json:"token"`
	User    *models.User    `json:"user"`
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool { return r.status >= 200 && r.status < 300 }

func (r response) envelope() (envelope, error) {
	var env envelope
	if len(bytes.TrimSpace(r.body)) == 0 {
		return env, nil
	}
	err := json.Unmarshal(r.body, &env)
	return env, err
}

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do sends one request and reads the whole body while the deadline is alive.
func (c *HTTPClient) do(ctx context.Context, op, method, target, token string, body io.Reader, contentType string) (response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return response{}, fmt.Errorf("%s: %w", op, err)
	}
	reqID := c.newID()
	req.Header.Set(common.RequestIDHeaderName, reqID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerValue(token))
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "op", op, "request_id", reqID, "error", err)
		if netx.IsTransportError(err) {
			return response{}, fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
		}
		return response{}, fmt.Errorf("%s: %w", op, err)
	}
	defer netx.DrainAndClose(resp)

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return response{}, fmt.Errorf("%s: read body: %w: %w", op, ErrUnavailable, err)
	}
	c.log.Debug(ctx, "request done", "op", op, "request_id", reqID,
		"status", resp.StatusCode, "elapsed", time.Since(start))
	return response{status: resp.StatusCode, body: data}, nil
}

// statusError maps a non-2xx response onto the error taxonomy.
func statusError(op string, r response) error {
	se := &StatusError{Op: op, StatusCode: r.status, Err: ErrServer}
	if env, err := r.envelope(); err == nil {
		se.Message = env.Message
	}
	switch r.status {
	case http.StatusUnauthorized:
		se.Err = ErrUnauthorized
	case http.StatusNotFound:
		se.Err = ErrNotFound
	case http.StatusRequestEntityTooLarge:
		se.Err = ErrPayloadTooLarge
	}
	return se
}

// rejected maps a 2xx {success:false} response. A message mentioning
// "not found" is treated as NotFound, anything else as a server error.
func rejected(op string, r response, env envelope) error {
	se := &StatusError{Op: op, StatusCode: r.status, Message: env.Message, Err: ErrServer}
	if strings.Contains(strings.ToLower(env.Message), "not found") {
		se.Err = ErrNotFound
	}
	return se
}

// call runs a JSON round trip and returns the decoded envelope of a
// successful {success:true} response.
func (c *HTTPClient) call(ctx context.Context, op, method, target, token string, body io.Reader, contentType string) (envelope, error) {
	r, err := c.do(ctx, op, method, target, token, body, contentType)
	if err != nil {
		return envelope{}, err
	}
	if !r.ok() {
		return envelope{}, statusError(op, r)
	}
	env, err := r.envelope()
	if err != nil {
		return envelope{}, &StatusError{Op: op, StatusCode: r.status, Message: "malformed response", Err: ErrServer}
	}
	if !env.Success {
		return envelope{}, rejected(op, r, env)
	}
	return env, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	const op = "login"
	payload, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	r, err := c.do(ctx, op, http.MethodPost, c.endpoint("/admin/login", nil), "", bytes.NewReader(payload), "application/json")
	if err != nil {
		return "", nil, err
	}
	if !r.ok() {
		return "", nil, statusError(op, r)
	}
	env, err := r.envelope()
	if err != nil {
		return "", nil, &StatusError{Op: op, StatusCode: r.status, Message: "malformed response", Err: ErrServer}
	}
	if !env.Success || env.Token == "" {
		return "", nil, &StatusError{Op: op, StatusCode: r.status, Message: env.Message, Err: ErrUnauthorized}
	}

	user := env.User
	if user == nil {
		user = &models.User{Username: username}
	}
	return env.Token, user, nil
}

func (c *HTTPClient) Verify(ctx context.Context, token string) (*models.User, error) {
	const op = "verify"
	r, err := c.do(ctx, op, http.MethodGet, c.endpoint("/admin/verify", nil), token, nil, "")
	if err != nil {
		return nil, err
	}
	if !r.ok() {
		if err := verifyRejection(op, r); err != nil {
			return nil, err
		}
		return nil, statusError(op, r)
	}
	env, err := r.envelope()
	if err != nil {
		return nil, &StatusError{Op: op, StatusCode: r.status, Message: "malformed response", Err: ErrServer}
	}
	if !env.Success {
		return nil, &StatusError{Op: op, StatusCode: r.status, Message: env.Message, Err: ErrUnauthorized}
	}
	return env.User, nil
}

// verifyRejection reports a 4xx reply carrying a {success:false} body as
// a token rejection and returns nil otherwise. 5xx replies and bodies that
// are not JSON stay server errors.
func verifyRejection(op string, r response) error {
	if r.status < 400 || r.status >= 500 || len(bytes.TrimSpace(r.body)) == 0 {
		return nil
	}
	env, err := r.envelope()
	if err != nil || env.Success {
		return nil
	}
	return &StatusError{Op: op, StatusCode: r.status, Message: env.Message, Err: ErrUnauthorized}
}

func (c *HTTPClient) ListContent(ctx context.Context, q models.ContentQuery) ([]models.ContentItem, error) {
	const op = "list content"
	env, err := c.call(ctx, op, http.MethodGet, c.endpoint("/content", q.Values()), "", nil, "")
	if err != nil {
		return nil, err
	}

	items := []models.ContentItem{}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return items, nil
	}
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, fmt.Errorf("%s: decode items: %w", op, err)
	}
	return items, nil
}

func (c *HTTPClient) CreateContent(ctx context.Context, token string, nc models.NewContent) error {
	const op = "create content"
	payload, err := json.Marshal(nc)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	_, err = c.call(ctx, op, http.MethodPost, c.endpoint("/content", nil), token, bytes.NewReader(payload), "application/json")
	return err
}

func (c *HTTPClient) UploadContent(ctx context.Context, token string, u Upload) (*models.ContentItem, error) {
	const op = "upload content"
	if u.File == nil || u.File.Open == nil {
		return nil, fmt.Errorf("%s: no file selected", op)
	}

	body, contentType, err := encodeUpload(u)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	env, err := c.call(ctx, op, http.MethodPost, c.endpoint("/content/upload", nil), token, body, contentType)
	if err != nil {
		return nil, err
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, nil
	}
	var item models.ContentItem
	if err := json.Unmarshal(env.Data, &item); err != nil {
		c.log.Warn(ctx, "upload response data not decoded", "error", err)
		return nil, nil
	}
	return &item, nil
}

// encodeUpload buffers the multipart form. Uploads are capped server-side,
// so holding the body in memory keeps retries and Content-Length simple.
func encodeUpload(u Upload) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", u.File.Name)
	if err != nil {
		return nil, "", err
	}
	src, err := u.File.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", u.File.Name, err)
	}
	_, err = io.Copy(fw, src)
	_ = src.Close()
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", u.File.Name, err)
	}

	fields := []struct{ k, v string }{
		{"semester", strconv.Itoa(u.Semester)},
		{"subject", u.Subject},
		{"category", string(u.Category)},
		{"title", u.Title},
		{"description", u.Description},
		{"type", u.Type},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.k, f.v); err != nil {
			return nil, "", err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

func (c *HTTPClient) DeleteContent(ctx context.Context, token, id string) error {
	const op = "delete content"
	if id == "" {
		return fmt.Errorf("%s: empty id: %w", op, ErrNotFound)
	}
	_, err := c.call(ctx, op, http.MethodDelete, c.endpoint("/content/"+url.PathEscape(id), nil), token, nil, "application/json")
	return err
}

func (c *HTTPClient) StorageStatus(ctx context.Context, token string) (models.StorageStatus, error) {
	const op = "storage status"
	r, err := c.do(ctx, op, http.MethodGet, c.endpoint("/api/storage-status", nil), token, nil, "")
	if err != nil {
		return models.StorageStatus{}, err
	}
	if !r.ok() {
		return models.StorageStatus{}, statusError(op, r)
	}
	var st models.StorageStatus
	if err := json.Unmarshal(r.body, &st); err != nil {
		return models.StorageStatus{}, &StatusError{Op: op, StatusCode: r.status, Message: "malformed response", Err: ErrServer}
	}
	return st, nil
}

// Download fetches fileURL, which may be relative to the API host, into w.
func (c *HTTPClient) Download(ctx context.Context, fileURL string, w io.Writer) (int64, error) {
	const op = "download"
	ref, err := url.Parse(fileURL)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	target := c.baseURL.ResolveReference(ref).String()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	n, err := netx.Download(ctx, c.hc, target, w)
	if err == nil {
		return n, nil
	}
	var se *netx.StatusError
	if errors.As(err, &se) {
		return n, statusError(op, response{status: se.StatusCode})
	}
	if netx.IsTransportError(err) {
		return n, fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
	return n, fmt.Errorf("%s: %w", op, err)
}

var _ Client = (*HTTPClient)(nil)
