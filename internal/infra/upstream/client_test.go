//go:build unit

package upstream

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"room-booking-bff/internal/infra"
	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/pkg/errs"
	"room-booking-bff/internal/usecase/shared"
	"room-booking-bff/tests/common/builder"
	sharedmock "room-booking-bff/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var fixedNow = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

// newTestClient points a client at handler. sessions and events may be nil.
func newTestClient(t *testing.T, handler http.HandlerFunc, sessions shared.SessionStore, events shared.SessionEvents) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig().Upstream
	cfg.BaseURL = srv.URL + "/api"
	cfg.Timeout = 500 * time.Millisecond

	c, err := NewClient(cfg, srv.Client(), sessions, events, clock.NewMockClock(fixedNow), discardLogger)
	require.NoError(t, err)
	return c
}

func aliceCtx() context.Context {
	return shared.WithSession(context.Background(), shared.Session{Token: "tok-alice", Actor: builder.NewActor("Alice")})
}

func TestNewClient_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "not a url", "/relative/only"} {
		_, err := NewClient(config.UpstreamConfig{BaseURL: raw}, nil, nil, nil, clock.NewMockClock(fixedNow), discardLogger)
		assert.Error(t, err, raw)
	}
}

func TestDoJSON_ForwardsTokenAndUnwrapsEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rooms", r.URL.Path)
		assert.Equal(t, "list", r.URL.Query().Get("action"))
		assert.Equal(t, "Bearer tok-alice", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"success":true,"data":{"name":"Merapi"},"message":"ok"}`)
	}, nil, nil)

	var out struct{ Name string }
	err := c.doJSON(aliceCtx(), call{method: http.MethodGet, resource: "rooms", query: map[string][]string{"action": {"list"}}}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Merapi", out.Name)
}

func TestDoJSON_NoTokenWithoutSession(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"success":true}`)
	}, nil, nil)

	require.NoError(t, c.doJSON(context.Background(), call{method: http.MethodGet, resource: "server_time"}, nil))
}

func TestDoJSON_RecoversJSONAfterWarnings(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<br />\n<b>Warning</b>: Undefined index {oops} in api.php on line 3<br />\n"+
			`{"success":true,"data":[1,2,3]}`)
	}, nil, nil)

	var out []int
	require.NoError(t, c.doJSON(aliceCtx(), call{method: http.MethodGet, resource: "x"}, &out))
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestDoJSON_BareBodyWithoutEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"date":"2024-01-10","time":"09:30:00","timezone":"Asia/Jakarta"}`)
	}, nil, nil)

	var out serverTimeWire
	require.NoError(t, c.doJSON(aliceCtx(), call{method: http.MethodGet, resource: "server_time"}, &out))
	assert.Equal(t, flexString("09:30:00"), out.Time)
}

func TestDoJSON_ErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   infra.ErrorKind
		class  error
	}{
		{"not found", http.StatusNotFound, `{"success":false,"message":"gone"}`, infra.KindNotFound, errs.ErrNotFound},
		{"gone", http.StatusGone, ``, infra.KindNotFound, errs.ErrNotFound},
		{"conflict", http.StatusConflict, ``, infra.KindConflict, errs.ErrConflict},
		{"server error", http.StatusInternalServerError, `oops`, infra.KindTransport, errs.ErrUpstream},
		{"rejected", http.StatusOK, `{"success":false,"message":"Quota exceeded"}`, infra.KindRejected, errs.ErrRejected},
		{"rejected as not found", http.StatusOK, `{"success":false,"message":"Booking tidak ditemukan"}`, infra.KindNotFound, errs.ErrNotFound},
		{"rejected as already done", http.StatusOK, `{"success":false,"message":"Request already responded"}`, infra.KindConflict, errs.ErrConflict},
		{"malformed", http.StatusOK, `<html>Fatal error</html>`, infra.KindMalformed, errs.ErrMalformedResponse},
		{"empty body", http.StatusOK, ``, infra.KindMalformed, errs.ErrMalformedResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}, nil, nil)

			err := c.doJSON(aliceCtx(), call{method: http.MethodGet, resource: "bookings"}, &struct{}{})
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tt.kind), err.Error())
			assert.True(t, errs.Is(err, tt.class))
		})
	}
}

func TestDoJSON_DataOfWrongShapeIsMalformed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":"not a list"}`)
	}, nil, nil)

	var out []int
	err := c.doJSON(aliceCtx(), call{method: http.MethodGet, resource: "x"}, &out)
	assert.True(t, errs.Is(err, errs.ErrMalformedResponse))
}

func TestDoJSON_Timeout(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, nil, nil)
	defer close(release)

	err := c.doJSON(aliceCtx(), call{method: http.MethodGet, resource: "x", timeout: 20 * time.Millisecond}, nil)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindTransport))
	assert.True(t, errs.Is(err, errs.ErrUpstream))
}

func TestDoJSON_UnauthorizedExpiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := sharedmock.NewMockSessionStore(ctrl)
	events := sharedmock.NewMockSessionEvents(ctrl)

	sessions.EXPECT().Revoke(gomock.Any(), "tok-alice").Return(nil)
	events.EXPECT().Publish(shared.SessionExpired{ActorName: "Alice", At: fixedNow})

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, sessions, events)

	err := c.doJSON(aliceCtx(), call{method: http.MethodGet, resource: "bookings"}, nil)
	assert.True(t, errs.Is(err, errs.ErrSessionExpired))
	assert.True(t, infra.IsKind(err, infra.KindUnauthorized))
}

func TestRecoverJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{`{"a":1}`, `{"a":1}`, true},
		{"  [1]  ", `[1]`, true},
		{"Notice: x\n{\"a\":1}", `{"a":1}`, true},
		{"Deprecated: {bad} [x\n[1,2]", `[1,2]`, true},
		{"no json here", ``, false},
		{"", ``, false},
	}
	for _, tt := range tests {
		got, ok := recoverJSON([]byte(tt.in))
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, string(got), tt.in)
	}
}
