package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"room-booking-bff/internal/infra"
	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/pkg/errs"
	"room-booking-bff/internal/usecase/shared"
)

// maxErrorBody caps how much of a failed response is kept for the log.
const maxErrorBody = 4 << 10

// Client talks to the PHP backend. Every call forwards the caller's session
// token and unwraps the {success, data, message} envelope.
type Client struct {
	base     *url.URL
	http     *http.Client
	cfg      config.UpstreamConfig
	sessions shared.SessionStore
	events   shared.SessionEvents
	clock    clock.Clock
	logger   *slog.Logger
}

func NewClient(
	cfg config.UpstreamConfig,
	httpClient *http.Client,
	sessions shared.SessionStore,
	events shared.SessionEvents,
	clk clock.Clock,
	logger *slog.Logger,
) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errs.Wrapf(errs.ErrValidation, "invalid upstream base url %q", cfg.BaseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		base:     base,
		http:     httpClient,
		cfg:      cfg,
		sessions: sessions,
		events:   events,
		clock:    clk,
		logger:   logger,
	}, nil
}

type call struct {
	method   string
	resource string
	query    url.Values
	body     any // JSON encoded when set

	// raw bodies (multipart uploads) take precedence over body
	raw         io.Reader
	contentType string

	timeout time.Duration
}

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// doJSON runs c and decodes the envelope's data into out (which may be nil).
func (c *Client) doJSON(ctx context.Context, cl call, out any) error {
	resp, cancel, err := c.send(ctx, cl)
	if err != nil {
		return err
	}
	defer cancel()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportErr(ctx, resp.StatusCode, cl, err)
	}
	return c.decode(cl, resp.StatusCode, body, out)
}

// stream runs c and hands back the open response. The caller owns the body;
// closing it also releases the call's timeout.
func (c *Client) stream(ctx context.Context, cl call) (*http.Response, error) {
	resp, cancel, err := c.send(ctx, cl)
	if err != nil {
		return nil, err
	}
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

func (c *Client) send(ctx context.Context, cl call) (*http.Response, context.CancelFunc, error) {
	timeout := cl.timeout
	if timeout <= 0 {
		timeout = c.cfg.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)

	req, err := c.newRequest(ctx, cl)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		cancel()
		return nil, nil, c.transportErr(ctx, 0, cl, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, cancel, nil
	}

	defer cancel()
	defer resp.Body.Close()
	head, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return nil, nil, c.statusErr(ctx, cl, resp.StatusCode, head)
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	u := c.base.ResolveReference(&url.URL{Path: cl.resource})
	if len(cl.query) > 0 {
		u.RawQuery = cl.query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case cl.raw != nil:
		body = cl.raw
		contentType = cl.contentType
	case cl.body != nil:
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(cl.body); err != nil {
			return nil, errs.Wrap(err, "encode upstream request")
		}
		body = &buf
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u.String(), body)
	if err != nil {
		return nil, errs.Wrap(err, "build upstream request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if sess, ok := shared.SessionFrom(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}
	return req, nil
}

func (c *Client) statusErr(ctx context.Context, cl call, status int, body []byte) error {
	msg := cl.method + " " + cl.resource
	if m := envelopeMessage(body); m != "" {
		msg += ": " + m
	}

	switch status {
	case http.StatusUnauthorized:
		c.expire(ctx)
		return infra.WrapErr(c.logger, infra.KindUnauthorized, status, msg, nil)
	case http.StatusNotFound, http.StatusGone:
		return infra.WrapErr(c.logger, infra.KindNotFound, status, msg, nil)
	case http.StatusConflict:
		return infra.WrapErr(c.logger, infra.KindConflict, status, msg, nil)
	default:
		return infra.WrapErr(c.logger, infra.KindTransport, status, msg, nil)
	}
}

func (c *Client) transportErr(ctx context.Context, status int, cl call, err error) error {
	msg := cl.method + " " + cl.resource
	if ctx.Err() != nil {
		msg += ": timed out"
	}
	return infra.WrapErr(c.logger, infra.KindTransport, status, msg, err)
}

func (c *Client) decode(cl call, status int, body []byte, out any) error {
	msg := cl.method + " " + cl.resource

	raw, ok := recoverJSON(body)
	if !ok {
		return infra.WrapErr(c.logger, infra.KindMalformed, status, msg, errs.New(snippet(body)))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || (env.Success == nil && env.Data == nil) {
		// some endpoints answer without the envelope
		env = envelope{Data: raw}
	}

	if env.Success != nil && !*env.Success {
		return infra.WrapErr(c.logger, rejectionKind(env.Message), status, msg+": "+env.Message, nil)
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return infra.WrapErr(c.logger, infra.KindMalformed, status, msg, err)
	}
	return nil
}

// expire drops a session the backend no longer accepts and tells whoever is
// holding state for it.
func (c *Client) expire(ctx context.Context) {
	sess, ok := shared.SessionFrom(ctx)
	if !ok {
		return
	}
	if c.sessions != nil {
		if err := c.sessions.Revoke(context.WithoutCancel(ctx), sess.Token); err != nil {
			c.logger.Warn("failed to revoke expired session", "error", err)
		}
	}
	if c.events != nil {
		c.events.Publish(shared.SessionExpired{ActorName: sess.Actor.Name(), At: c.clock.Now()})
	}
}

// rejectionKind sorts a success=false answer. The backend reports vanished
// rows and double transitions only through the message text.
func rejectionKind(message string) infra.ErrorKind {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "not found"), strings.Contains(m, "tidak ditemukan"):
		return infra.KindNotFound
	case strings.Contains(m, "already"), strings.Contains(m, "sudah"):
		return infra.KindConflict
	default:
		return infra.KindRejected
	}
}

// recoverJSON returns body itself when it is valid JSON, otherwise the first
// valid JSON document that follows stray output such as PHP warnings.
func recoverJSON(body []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(body)
	if json.Valid(trimmed) {
		return trimmed, len(trimmed) > 0
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != '{' && trimmed[i] != '[' {
			continue
		}
		if candidate := trimmed[i:]; json.Valid(candidate) {
			return candidate, true
		}
	}
	return nil, false
}

func envelopeMessage(body []byte) string {
	raw, ok := recoverJSON(body)
	if !ok {
		return ""
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	return env.Message
}

func snippet(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	if s == "" {
		return "empty body"
	}
	return s
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
