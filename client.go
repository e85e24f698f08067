package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/google/uuid"
)

// SessionTerminator tears the session down when the backend rejects the
// bearer token. *SessionStore satisfies it.
type SessionTerminator interface {
	Logout(ctx context.Context) error
}

// RedirectFunc sends the navigation layer somewhere, typically the login
// page after a forced logout.
type RedirectFunc func(path string)

// failureClass is one row of the inbound classification table. A zero
// status marks the fallback row for any other answered status.
type failureClass struct {
	status   int
	kind     NoticeKind
	teardown bool
	err      *goerrors.Error
}

// Ordered classification for answered requests. First match on status wins;
// the zero-status row catches the rest. New classifications are new rows.
var failureTable = []failureClass{
	{status: http.StatusUnauthorized, kind: NoticeSessionExpired, teardown: true, err: ErrSessionExpired},
	{status: http.StatusForbidden, kind: NoticeForbidden, err: ErrForbidden},
	{status: http.StatusNotFound, kind: NoticeNotFound, err: ErrNotFound},
	{status: http.StatusInternalServerError, kind: NoticeServerError, err: ErrServerError},
	{status: 0, kind: NoticeRequestFailed, err: nil},
}

// Client is the request pipeline every portal call flows through. The
// outbound stage attaches the session's bearer token; the inbound stage
// unwraps successful bodies and classifies failures through failureTable,
// emitting a Notice and re-raising a categorized error. The pipeline never
// swallows errors and never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client

	tokens     TokenSource
	terminator SessionTerminator
	redirect   RedirectFunc
	loginPath  string

	notices NoticeSink
	logger  Logger
}

// NewClient builds the pipeline from cfg. Wire the session store afterwards
// with WithTokenSource and WithSessionTerminator; until then requests go out
// unauthenticated.
func NewClient(cfg Config) *Client {
	timeout := time.Duration(cfg.GetRequestTimeout()) * time.Second

	return &Client{
		baseURL:    strings.TrimRight(cfg.GetBaseURL(), "/"),
		loginPath:  cfg.GetLoginPath(),
		httpClient: &http.Client{Timeout: timeout},
		notices:    noopNoticeSink{},
		logger:     defLogger{},
	}
}

func (c *Client) WithLogger(logger Logger) *Client {
	c.logger = logger
	return c
}

// WithTokenSource sets where the outbound stage reads the bearer token.
func (c *Client) WithTokenSource(tokens TokenSource) *Client {
	c.tokens = tokens
	return c
}

// WithSessionTerminator sets the collaborator logged out on a 401.
func (c *Client) WithSessionTerminator(t SessionTerminator) *Client {
	c.terminator = t
	return c
}

// WithRedirect sets the navigation hook invoked after a forced logout.
func (c *Client) WithRedirect(fn RedirectFunc) *Client {
	c.redirect = fn
	return c
}

// WithNoticeSink sets where user-facing failure notices go.
func (c *Client) WithNoticeSink(sink NoticeSink) *Client {
	c.notices = normalizeNoticeSink(sink)
	return c
}

// WithHTTPClient swaps the underlying transport, mostly for tests.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, "", nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	reader, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, "application/json", reader, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	reader, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, "application/json", reader, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil, out)
}

// PostForm sends a form-encoded body, the shape the login endpoint expects.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	body := strings.NewReader(form.Encode())
	return c.do(ctx, http.MethodPost, path, nil, "application/x-www-form-urlencoded", body, out)
}

// Upload sends a single file as a multipart form, used for logo and version
// uploads.
func (c *Client) Upload(ctx context.Context, path, field, filename string, content io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "unable to build multipart form")
	}
	if _, err := io.Copy(fw, content); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "unable to buffer upload")
	}
	if err := mw.Close(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "unable to finalize multipart form")
	}

	return c.do(ctx, http.MethodPost, path, nil, mw.FormDataContentType(), &buf, out)
}

func encodeJSON(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "unable to serialize request body")
	}
	return bytes.NewReader(data), nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "unable to build request")
	}

	// outbound stage: never blocks, never fails
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return c.rejectWithoutResponse(ctx, method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		if out == nil {
			io.Copy(io.Discard, res.Body)
			return nil
		}
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryBadInput, "unable to decode response body")
		}
		return nil
	}

	return c.reject(ctx, method, path, res)
}

// rejectWithoutResponse handles transport failures: no status to classify,
// always a network-error notice.
func (c *Client) rejectWithoutResponse(ctx context.Context, method, path string, cause error) error {
	notice := Notice{
		Kind:       NoticeNetworkError,
		Message:    ErrNetworkFailure.Message,
		OccurredAt: time.Now(),
	}
	c.emit(ctx, notice)

	meta := map[string]any{"method": method, "path": path}
	c.logger.Error("request transport failure: %s", print.MaybePrettyJSON(meta))

	richErr := ErrNetworkFailure.Clone()
	richErr.Source = cause
	return richErr.WithMetadata(meta)
}

func (c *Client) reject(ctx context.Context, method, path string, res *http.Response) error {
	detail := decodeDetail(res.Body)
	class := classify(res.StatusCode)

	message := ""
	var richErr *goerrors.Error
	if class.err != nil {
		richErr = class.err.Clone()
		message = richErr.Message
	} else {
		message = detail
		if message == "" {
			message = "request failed"
		}
		richErr = goerrors.New(message, goerrors.CategoryOperation).
			WithTextCode(TextCodeBackendError)
	}

	if class.teardown {
		c.teardown(ctx)
	}

	c.emit(ctx, Notice{
		Kind:       class.kind,
		Message:    message,
		Status:     res.StatusCode,
		OccurredAt: time.Now(),
	})

	meta := map[string]any{
		"method": method,
		"path":   path,
		"status": res.StatusCode,
	}
	if detail != "" {
		meta["detail"] = detail
	}

	c.logger.Debug("request rejected: %s", print.MaybePrettyJSON(meta))
	return richErr.WithMetadata(meta)
}

// teardown runs the 401 side effects: exactly one logout, then a redirect
// to the login destination.
func (c *Client) teardown(ctx context.Context) {
	if c.terminator != nil {
		if err := c.terminator.Logout(ctx); err != nil {
			c.logger.Error("session teardown failed: %v", err)
		}
	}
	if c.redirect != nil {
		c.redirect(c.loginPath)
	}
}

func (c *Client) emit(ctx context.Context, notice Notice) {
	if err := c.notices.Notify(ctx, notice); err != nil {
		c.logger.Error("notice sink failed: %v", err)
	}
}

func classify(status int) failureClass {
	for _, class := range failureTable {
		if class.status == status || class.status == 0 {
			return class
		}
	}
	// table always ends with the fallback row
	return failureTable[len(failureTable)-1]
}

// decodeDetail pulls the backend's error message out of a failure body.
// The portal backend reports errors as {"detail": "..."}.
func decodeDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 1<<16))
	if err != nil || len(data) == 0 {
		return ""
	}

	var envelope struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return ""
	}
	return envelope.Detail
}
