//go:build e2e

package fakebackend

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// Backend imitates the booking backend's envelope API closely enough for the
// BFF to run against it.
type Backend struct {
	mu sync.Mutex

	bookings map[string]map[int64]Booking // resource -> id -> row
	requests []CancelRequest
	nextReq  int64
	rooms    []Room
	date     string
	time     string

	// tokens the backend answers 401 for
	expired map[string]bool
	// calls records "METHOD resource action" for every request
	calls []string

	server *httptest.Server
}

type Booking struct {
	ID             int64    `json:"id"`
	RoomName       string   `json:"room_name"`
	Topic          string   `json:"topic"`
	Date           string   `json:"date"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	Participants   int      `json:"participants"`
	PIC            string   `json:"pic"`
	MeetingType    string   `json:"meeting_type"`
	Facilities     []string `json:"facilities"`
	RequiresRispat bool     `json:"requires_rispat"`
	Status         string   `json:"status"`
}

type CancelRequest struct {
	ID              int64  `json:"id"`
	BookingID       int64  `json:"booking_id"`
	BookingType     string `json:"booking_type"`
	RequesterName   string `json:"requester_name"`
	OwnerName       string `json:"owner_name"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
	ResponseMessage string `json:"response_message"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type Room struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Capacity   int      `json:"capacity"`
	Location   string   `json:"location"`
	Facilities []string `json:"facilities"`
}

func Start() *Backend {
	b := &Backend{}
	b.Reset()

	engine := gin.New()
	api := engine.Group("/api", b.authenticate)
	{
		api.GET("/server_time", b.serverTime)
		api.GET("/rooms", b.listRooms)
		api.GET("/rispat", b.listRispat)
		for _, resource := range []string{"bookings", "ai_bookings"} {
			api.GET("/"+resource, b.getBookings(resource))
			api.POST("/"+resource, b.completeBooking(resource))
			api.DELETE("/"+resource, b.cancelBooking(resource))
		}
		api.GET("/cancel_requests", b.listCancelRequests)
		api.POST("/cancel_requests", b.writeCancelRequest)
	}

	b.server = httptest.NewServer(engine)
	return b
}

// URL is the base the BFF should be configured with.
func (b *Backend) URL() string { return b.server.URL + "/api" }

func (b *Backend) Close() { b.server.Close() }

// Reset drops every row and puts the clock back to 2024-01-10 09:30.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bookings = map[string]map[int64]Booking{"bookings": {}, "ai_bookings": {}}
	b.requests = nil
	b.nextReq = 100
	b.rooms = []Room{{ID: 1, Name: "Ruang Rapat Merapi", Capacity: 12, Location: "Lt. 3", Facilities: []string{"projector"}}}
	b.date, b.time = "2024-01-10", "09:30:00"
	b.expired = map[string]bool{}
	b.calls = nil
}

func (b *Backend) SetTime(date, clock string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.date, b.time = date, clock
}

func (b *Backend) PutBooking(ai bool, row Booking) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if row.Status == "" {
		row.Status = "active"
	}
	b.bookings[resourceOf(ai)][row.ID] = row
}

func (b *Backend) Booking(ai bool, id int64) (Booking, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	row, ok := b.bookings[resourceOf(ai)][id]
	return row, ok
}

func (b *Backend) CancelRequests() []CancelRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.requests)
}

// ExpireToken makes every later call carrying token fail with 401.
func (b *Backend) ExpireToken(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expired[token] = true
}

// Calls counts recorded requests with the given prefix, e.g. "POST bookings".
func (b *Backend) Calls(prefix string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func resourceOf(ai bool) string {
	if ai {
		return "ai_bookings"
	}
	return "bookings"
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
}

func (b *Backend) authenticate(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	b.mu.Lock()
	resource := strings.TrimPrefix(c.Request.URL.Path, "/api/")
	b.calls = append(b.calls, c.Request.Method+" "+resource+" "+c.Query("action"))
	expired := b.expired[token]
	b.mu.Unlock()

	if token == "" || expired {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Session expired"})
		return
	}
	c.Next()
}

func (b *Backend) serverTime(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ok(c, gin.H{"date": b.date, "time": b.time, "timezone": "Asia/Jakarta"})
}

func (b *Backend) listRooms(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ok(c, b.rooms)
}

func (b *Backend) listRispat(c *gin.Context) {
	ok(c, []any{})
}

func (b *Backend) getBookings(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()

		switch c.Query("action") {
		case "list":
			rows := make([]Booking, 0)
			for _, row := range b.bookings[resource] {
				if row.Status == "active" {
					rows = append(rows, row)
				}
			}
			slices.SortFunc(rows, func(a, b Booking) int { return int(a.ID - b.ID) })
			ok(c, rows)
		case "get":
			id, _ := strconv.ParseInt(c.Query("id"), 10, 64)
			row, found := b.bookings[resource][id]
			if !found {
				fail(c, "Booking not found")
				return
			}
			ok(c, row)
		default:
			fail(c, "unknown action")
		}
	}
}

func (b *Backend) completeBooking(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Action    string `json:"action"`
			BookingID int64  `json:"booking_id"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Action != "complete" {
			fail(c, "invalid request")
			return
		}
		b.transition(c, resource, body.BookingID, "completed")
	}
}

func (b *Backend) cancelBooking(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Query("id"), 10, 64)
		b.transition(c, resource, id, "cancelled")
	}
}

func (b *Backend) transition(c *gin.Context, resource string, id int64, status string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	row, found := b.bookings[resource][id]
	if !found || row.Status != "active" {
		fail(c, "Booking not found")
		return
	}
	row.Status = status
	b.bookings[resource][id] = row
	ok(c, nil)
}

func (b *Backend) listCancelRequests(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rows := make([]CancelRequest, 0)
	for _, r := range b.requests {
		switch c.Query("action") {
		case "get_by_owner":
			if strings.EqualFold(r.OwnerName, c.Query("owner_name")) {
				rows = append(rows, r)
			}
		case "get_by_requester":
			if strings.EqualFold(r.RequesterName, c.Query("requester_name")) {
				rows = append(rows, r)
			}
		}
	}
	ok(c, rows)
}

func (b *Backend) writeCancelRequest(c *gin.Context) {
	switch c.Query("action") {
	case "create":
		var r CancelRequest
		if err := c.ShouldBindJSON(&r); err != nil {
			fail(c, "invalid request")
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		b.nextReq++
		r.ID = b.nextReq
		r.Status = "pending"
		r.CreatedAt = b.date + " " + b.time
		r.UpdatedAt = r.CreatedAt
		b.requests = append(b.requests, r)
		ok(c, gin.H{"id": r.ID, "created_at": r.CreatedAt})

	case "respond":
		var body struct {
			RequestID       int64  `json:"request_id"`
			Status          string `json:"status"`
			ResponseMessage string `json:"response_message"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			fail(c, "invalid request")
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.requests {
			if b.requests[i].ID != body.RequestID {
				continue
			}
			if b.requests[i].Status != "pending" {
				fail(c, "Request already processed")
				return
			}
			b.requests[i].Status = body.Status
			b.requests[i].ResponseMessage = body.ResponseMessage
			b.requests[i].UpdatedAt = b.date + " " + b.time
			ok(c, nil)
			return
		}
		fail(c, "Request not found")

	default:
		fail(c, "unknown action")
	}
}
