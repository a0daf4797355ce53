package response

import (
	"time"

	"room-booking-bff/internal/usecase/shared"
)

type RispatFileResponse struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"booking_id"`
	FileName   string    `json:"file_name"`
	FileSize   int64     `json:"file_size"`
	MimeType   string    `json:"mime_type,omitempty"`
	UploadedBy string    `json:"uploaded_by,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func FromRispatFile(f *shared.RispatFile) *RispatFileResponse {
	return &RispatFileResponse{
		ID:         f.ID,
		BookingID:  f.BookingID,
		FileName:   f.FileName,
		FileSize:   f.FileSize,
		MimeType:   f.MimeType,
		UploadedBy: f.UploadedBy,
		UploadedAt: f.UploadedAt,
	}
}

func FromRispatFiles(files []shared.RispatFile) []*RispatFileResponse {
	res := make([]*RispatFileResponse, len(files))
	for i := range files {
		res[i] = FromRispatFile(&files[i])
	}
	return res
}
