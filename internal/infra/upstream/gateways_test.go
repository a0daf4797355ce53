//go:build unit

package upstream

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/domain/cancelrequest"
	"room-booking-bff/internal/pkg/errs"
	"room-booking-bff/internal/usecase/shared"
	"room-booking-bff/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jakarta = time.FixedZone("WIB", 7*60*60)

func TestBookingGateway_ListActiveMergesSources(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/bookings":
			_, _ = io.WriteString(w, `{"success":true,"data":[
				{"id":"12","room_name":"Merapi","topic":"Standup","date":"2024-01-10","start_time":"09:00:00",
				 "end_time":"09:15:00","participants":"6","pic":"Alice","meeting_type":"External",
				 "facilities":"projector, whiteboard","requires_rispat":"1","status":"active"},
				{"id":0,"date":"","start_time":""}
			]}`)
		case "/api/ai_bookings":
			_, _ = io.WriteString(w, `{"success":true,"data":[
				{"id":12,"room_name":"Bromo","topic":"Review","date":"2024-01-10","start_time":"13:00",
				 "pic":"Bob","facilities":["tv"],"requires_rispat":false}
			]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}, nil, nil)

	got, err := NewBookingGateway(c, discardLogger).ListActive(aliceCtx())
	require.NoError(t, err)
	require.Len(t, got, 2)

	form := got[0]
	assert.Equal(t, booking.FormID(12), form.ID())
	assert.Equal(t, "09:00", form.StartTime())
	assert.Equal(t, "09:15", form.EndTime())
	assert.Equal(t, 6, form.Participants())
	assert.Equal(t, booking.MeetingExternal, form.MeetingType())
	assert.Equal(t, []string{"projector", "whiteboard"}, form.Facilities())
	assert.True(t, form.RequiresRispat())

	ai := got[1]
	assert.Equal(t, booking.AIID(12), ai.ID())
	assert.Equal(t, "", ai.EndTime())
	assert.Equal(t, []string{"tv"}, ai.Facilities())
	assert.Equal(t, booking.StateActive, ai.State())
}

func TestBookingGateway_ListActiveFailsWhenOneSourceFails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/ai_bookings" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `{"success":true,"data":[]}`)
	}, nil, nil)

	_, err := NewBookingGateway(c, discardLogger).ListActive(aliceCtx())
	assert.True(t, errs.Is(err, errs.ErrUpstream))
}

func TestBookingGateway_GetRoutesBySource(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai_bookings", r.URL.Path)
		assert.Equal(t, "get", r.URL.Query().Get("action"))
		assert.Equal(t, "7", r.URL.Query().Get("id"))
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":7,"date":"2024-01-10","start_time":"10:00","pic":"Alice","status":"selesai"}}`)
	}, nil, nil)

	b, err := NewBookingGateway(c, discardLogger).Get(aliceCtx(), booking.AIID(7))
	require.NoError(t, err)
	assert.Equal(t, booking.AIID(7), b.ID())
	assert.Equal(t, booking.StateCompleted, b.State())
}

func TestBookingGateway_GetEmptyDataIsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":null}`)
	}, nil, nil)

	_, err := NewBookingGateway(c, discardLogger).Get(aliceCtx(), booking.FormID(7))
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestBookingGateway_Mutations(t *testing.T) {
	t.Run("complete posts the action body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/ai_bookings", r.URL.Path)
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "complete", body["action"])
			assert.Equal(t, float64(5), body["booking_id"])
			_, _ = io.WriteString(w, `{"success":true,"message":"done"}`)
		}, nil, nil)

		require.NoError(t, NewBookingGateway(c, discardLogger).Complete(aliceCtx(), booking.AIID(5)))
	})

	t.Run("cancel sends id and reason as query", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/bookings", r.URL.Path)
			assert.Equal(t, "5", r.URL.Query().Get("id"))
			assert.Equal(t, "Room double-booked", r.URL.Query().Get("reason"))
			_, _ = io.WriteString(w, `{"success":true}`)
		}, nil, nil)

		require.NoError(t, NewBookingGateway(c, discardLogger).Cancel(aliceCtx(), booking.FormID(5), "Room double-booked"))
	})
}

func TestCancelRequestGateway_Create(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "create", r.URL.Query().Get("action"))
		var body createCancelRequestBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, createCancelRequestBody{
			BookingID:     42,
			BookingType:   "ai",
			RequesterName: "Bob",
			OwnerName:     "Alice",
			Reason:        "Room double-booked",
		}, body)
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":"31","created_at":"2024-01-10 08:05:00"}}`)
	}, nil, nil)

	req, err := cancelrequest.New(booking.AIID(42), builder.NewActor("Bob"), "Alice", "Room double-booked", fixedNow)
	require.NoError(t, err)

	got, err := NewCancelRequestGateway(c, jakarta, discardLogger).Create(aliceCtx(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(31), got.ID())
	assert.Equal(t, cancelrequest.StatusPending, got.Status())
	assert.Equal(t, "Bob", got.Requester().Name)
	assert.True(t, time.Date(2024, 1, 10, 8, 5, 0, 0, jakarta).Equal(got.CreatedAt()))
}

func TestCancelRequestGateway_CreateWithoutIDIsMalformed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":{}}`)
	}, nil, nil)

	req, err := cancelrequest.New(booking.FormID(42), builder.NewActor("Bob"), "Alice", "reason", fixedNow)
	require.NoError(t, err)

	_, err = NewCancelRequestGateway(c, jakarta, discardLogger).Create(aliceCtx(), req)
	assert.True(t, errs.Is(err, errs.ErrMalformedResponse))
}

func TestCancelRequestGateway_List(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "get_by_owner", r.URL.Query().Get("action"))
		assert.Equal(t, "Alice", r.URL.Query().Get("owner_name"))
		_, _ = io.WriteString(w, `{"success":true,"data":[
			{"id":1,"booking_id":"12","booking_type":"form","requester_name":"Bob","owner_name":"Alice",
			 "reason":"clash","status":"pending","created_at":"2024-01-10T08:00:00+07:00"},
			{"id":2,"booking_id":"ai_9","requester_name":"Carol","owner_name":"Alice",
			 "reason":"moved","status":"APPROVED","response_message":"ok"},
			{"id":3,"booking_id":"x","owner_name":"Alice"}
		]}`)
	}, nil, nil)

	got, err := NewCancelRequestGateway(c, jakarta, discardLogger).ListByOwner(aliceCtx(), "Alice")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, booking.FormID(12), got[0].BookingID())
	assert.Equal(t, booking.AIID(9), got[1].BookingID())
	assert.Equal(t, cancelrequest.StatusApproved, got[1].Status())
	assert.Equal(t, "ok", got[1].ResponseMessage().String())
}

func TestCancelRequestGateway_Respond(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "respond", r.URL.Query().Get("action"))
		var body respondCancelRequestBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, respondCancelRequestBody{RequestID: 3, Status: "rejected", ResponseMessage: "no"}, body)
		_, _ = io.WriteString(w, `{"success":true}`)
	}, nil, nil)

	err := NewCancelRequestGateway(c, jakarta, discardLogger).Respond(aliceCtx(), 3, cancelrequest.StatusRejected, "no")
	require.NoError(t, err)
}

func TestRispatGateway_UploadStreamsMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "upload", r.URL.Query().Get("action"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "7", r.FormValue("booking_id"))
		assert.Equal(t, "Alice", r.FormValue("uploaded_by"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		content, _ := io.ReadAll(f)
		assert.Equal(t, "notulen.pdf", hdr.Filename)
		assert.Equal(t, "%PDF-1.4 minutes", string(content))

		_, _ = io.WriteString(w, `{"success":true,"data":{"id":"99","file_size":"16","uploaded_at":"2024-01-10 10:00:00"}}`)
	}, nil, nil)

	got, err := NewRispatGateway(c, jakarta, discardLogger).Upload(aliceCtx(), shared.RispatUpload{
		BookingID:  booking.AIID(7),
		FileName:   "../../notulen.pdf",
		Size:       16,
		Body:       strings.NewReader("%PDF-1.4 minutes"),
		UploadedBy: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), got.ID)
	assert.Equal(t, int64(7), got.BookingID)
	assert.Equal(t, int64(16), got.FileSize)
	assert.Equal(t, "notulen.pdf", got.FileName)
}

// countingBody serves n bytes and counts reads made after Upload returned.
type countingBody struct {
	left      int
	returned  atomic.Bool
	lateReads atomic.Int32
}

func (b *countingBody) Read(p []byte) (int, error) {
	if b.returned.Load() {
		b.lateReads.Add(1)
	}
	if b.left == 0 {
		return 0, io.EOF
	}
	n := min(len(p), b.left)
	for i := range n {
		p[i] = 'x'
	}
	b.left -= n
	return n, nil
}

func TestRispatGateway_UploadReleasesBodyOnEarlyReject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		_, _ = io.WriteString(w, `{"success":false,"message":"File too large"}`)
	}, nil, nil)

	body := &countingBody{left: 8 << 20}
	_, err := NewRispatGateway(c, jakarta, discardLogger).Upload(aliceCtx(), shared.RispatUpload{
		BookingID: booking.AIID(7),
		FileName:  "big.pdf",
		Size:      8 << 20,
		Body:      body,
	})
	body.returned.Store(true)
	require.Error(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, body.lateReads.Load(), "body must not be read after Upload returns")
}

func TestRispatGateway_ListAndDelete(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("action") {
		case "list":
			assert.Equal(t, "7", r.URL.Query().Get("booking_id"))
			_, _ = io.WriteString(w, `{"success":true,"data":[{"id":1,"booking_id":7,"file_name":"a.pdf","mime_type":"application/pdf"}]}`)
		case "delete":
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "1", r.URL.Query().Get("file_id"))
			_, _ = io.WriteString(w, `{"success":true}`)
		}
	}, nil, nil)
	g := NewRispatGateway(c, jakarta, discardLogger)

	files, err := g.List(aliceCtx(), booking.FormID(7))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.pdf", files[0].FileName)
	assert.Equal(t, "application/pdf", files[0].MimeType)

	require.NoError(t, g.Delete(aliceCtx(), 1))
}

func TestRispatGateway_Download(t *testing.T) {
	t.Run("binary body is proxied", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Content-Disposition", `attachment; filename="notulen rapat.pdf"`)
			_, _ = io.WriteString(w, "%PDF")
		}, nil, nil)

		d, err := NewRispatGateway(c, jakarta, discardLogger).Download(aliceCtx(), 4)
		require.NoError(t, err)
		defer d.Body.Close()
		body, _ := io.ReadAll(d.Body)
		assert.Equal(t, "%PDF", string(body))
		assert.Equal(t, "notulen rapat.pdf", d.FileName)
		assert.Equal(t, "application/pdf", d.ContentType)
	})

	t.Run("json envelope error is surfaced", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"success":false,"message":"File not found"}`)
		}, nil, nil)

		_, err := NewRispatGateway(c, jakarta, discardLogger).Download(aliceCtx(), 4)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestRoomGateway_List(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "merapi", r.URL.Query().Get("search"))
		_, _ = io.WriteString(w, `{"success":true,"data":[{"id":"1","name":"Ruang Rapat Merapi","capacity":"10","location":"Lt. 2","facilities":"tv,ac"}]}`)
	}, nil, nil)

	rooms, err := NewRoomGateway(c).List(aliceCtx(), " merapi ")
	require.NoError(t, err)
	assert.Equal(t, []shared.Room{{ID: 1, Name: "Ruang Rapat Merapi", Capacity: 10, Location: "Lt. 2", Facilities: []string{"tv", "ac"}}}, rooms)
}

func TestServerTimeSource(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/server_time", r.URL.Path)
		_, _ = io.WriteString(w, `{"success":true,"data":{"date":"2024-01-10","time":"09:30:12","timezone":"Asia/Jakarta"}}`)
	}, nil, nil)

	got, err := NewServerTimeSource(c).ServerTime(aliceCtx())
	require.NoError(t, err)
	assert.Equal(t, shared.ServerTime{Date: "2024-01-10", Time: "09:30:12", Timezone: "Asia/Jakarta"}, got)
}
