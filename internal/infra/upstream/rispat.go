package upstream

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/infra"
	"room-booking-bff/internal/usecase/shared"
)

type rispatFileWire struct {
	ID         flexInt    `json:"id"`
	BookingID  flexInt    `json:"booking_id"`
	FileName   flexString `json:"file_name"`
	FileSize   flexInt    `json:"file_size"`
	MimeType   flexString `json:"mime_type"`
	UploadedBy flexString `json:"uploaded_by"`
	RawAt      flexTime   `json:"uploaded_at"`
}

func (w rispatFileWire) toShared(loc *time.Location) (shared.RispatFile, error) {
	var f shared.RispatFile
	if err := copyWire(&f, w); err != nil {
		return shared.RispatFile{}, err
	}
	f.UploadedAt = w.RawAt.In(loc)
	return f, nil
}

// RispatGateway handles meeting minutes. Files are keyed by the booking's
// row number; the backend does not tell form and assistant bookings apart here.
type RispatGateway struct {
	client          *Client
	listTimeout     time.Duration
	transferTimeout time.Duration
	loc             *time.Location
	logger          *slog.Logger
}

func NewRispatGateway(client *Client, loc *time.Location, logger *slog.Logger) *RispatGateway {
	return &RispatGateway{
		client:          client,
		listTimeout:     client.cfg.ListTimeout,
		transferTimeout: client.cfg.TransferTimeout,
		loc:             loc,
		logger:          logger,
	}
}

var _ shared.RispatGateway = (*RispatGateway)(nil)

func (g *RispatGateway) List(ctx context.Context, bookingID booking.ID) ([]shared.RispatFile, error) {
	var rows []rispatFileWire
	err := g.client.doJSON(ctx, call{
		method:   http.MethodGet,
		resource: "rispat",
		query:    url.Values{"action": {"list"}, "booking_id": {strconv.FormatInt(bookingID.Number(), 10)}},
		timeout:  g.listTimeout,
	}, &rows)
	if err != nil {
		return nil, err
	}

	out := make([]shared.RispatFile, 0, len(rows))
	for _, w := range rows {
		f, err := w.toShared(g.loc)
		if err != nil {
			return nil, infra.WrapErr(g.logger, infra.KindMalformed, http.StatusOK, "rispat listing", err)
		}
		out = append(out, f)
	}
	return out, nil
}

// Upload streams the file to the backend as multipart form data without
// buffering it in memory.
func (g *RispatGateway) Upload(ctx context.Context, upload shared.RispatUpload) (*shared.RispatFile, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	done := make(chan struct{})
	go func() {
		defer close(done)
		pw.CloseWithError(writeRispatForm(mw, upload))
	}()

	var w rispatFileWire
	err := g.client.doJSON(ctx, call{
		method:      http.MethodPost,
		resource:    "rispat",
		query:       url.Values{"action": {"upload"}},
		raw:         pr,
		contentType: mw.FormDataContentType(),
		timeout:     g.transferTimeout,
	}, &w)
	// unblocks the writer if the request ended before reading everything;
	// upload.Body belongs to the caller again once the writer has returned
	pr.CloseWithError(io.ErrClosedPipe)
	<-done
	if err != nil {
		return nil, err
	}

	f, err := w.toShared(g.loc)
	if err != nil {
		return nil, infra.WrapErr(g.logger, infra.KindMalformed, http.StatusOK, "rispat upload", err)
	}
	if f.FileName == "" {
		f.FileName = path.Base(upload.FileName)
	}
	if f.BookingID == 0 {
		f.BookingID = upload.BookingID.Number()
	}
	return &f, nil
}

func writeRispatForm(mw *multipart.Writer, upload shared.RispatUpload) error {
	if err := mw.WriteField("booking_id", strconv.FormatInt(upload.BookingID.Number(), 10)); err != nil {
		return err
	}
	if upload.UploadedBy != "" {
		if err := mw.WriteField("uploaded_by", upload.UploadedBy); err != nil {
			return err
		}
	}
	part, err := mw.CreateFormFile("file", path.Base(upload.FileName))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, upload.Body); err != nil {
		return err
	}
	return mw.Close()
}

func (g *RispatGateway) Delete(ctx context.Context, fileID int64) error {
	return g.client.doJSON(ctx, call{
		method:   http.MethodDelete,
		resource: "rispat",
		query:    url.Values{"action": {"delete"}, "file_id": {strconv.FormatInt(fileID, 10)}},
		timeout:  g.listTimeout,
	}, nil)
}

// Download proxies the binary body. The caller must close Body.
func (g *RispatGateway) Download(ctx context.Context, fileID int64) (*shared.RispatDownload, error) {
	resp, err := g.client.stream(ctx, call{
		method:   http.MethodGet,
		resource: "rispat",
		query:    url.Values{"action": {"download"}, "file_id": {strconv.FormatInt(fileID, 10)}},
		timeout:  g.transferTimeout,
	})
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if mt, _, perr := mime.ParseMediaType(contentType); perr == nil && mt == "application/json" {
		// the backend answers errors on this route with a 200 JSON envelope
		defer resp.Body.Close()
		body, rerr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if rerr != nil {
			return nil, infra.WrapErr(g.logger, infra.KindTransport, resp.StatusCode, "rispat download", rerr)
		}
		if derr := g.client.decode(call{method: http.MethodGet, resource: "rispat"}, resp.StatusCode, body, nil); derr != nil {
			return nil, derr
		}
		return nil, infra.WrapErr(g.logger, infra.KindMalformed, resp.StatusCode, "rispat download returned JSON instead of a file", nil)
	}

	name := "rispat-" + strconv.FormatInt(fileID, 10)
	if _, params, perr := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); perr == nil && params["filename"] != "" {
		name = path.Base(params["filename"])
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &shared.RispatDownload{
		FileName:    name,
		ContentType: contentType,
		Size:        resp.ContentLength,
		Body:        resp.Body,
	}, nil
}
