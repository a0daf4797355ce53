package commands

import (
	"context"
	"strings"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/domain/user"
	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/pkg/errs"
	"room-booking-bff/internal/usecase/shared"
)

var (
	ErrEmptyFile          = errs.Define(errs.ErrValidation, "uploaded file is empty")
	ErrFileTooLarge       = errs.Define(errs.ErrValidation, "uploaded file exceeds the size limit")
	ErrMissingFileName    = errs.Define(errs.ErrValidation, "file name is required")
	ErrRispatFileNotFound = errs.Define(errs.ErrNotFound, "meeting minutes file not found")
)

type RispatCommands interface {
	Upload(ctx context.Context, actor user.Actor, upload shared.RispatUpload) (*shared.RispatFile, error)
	Delete(ctx context.Context, actor user.Actor, bookingID booking.ID, fileID int64) error
}

type rispatCommandsImpl struct {
	bookings shared.BookingGateway
	rispat   shared.RispatGateway
	maxBytes int64
}

func NewRispatCommands(bookings shared.BookingGateway, rispat shared.RispatGateway, cfg config.UpstreamConfig) RispatCommands {
	return &rispatCommandsImpl{bookings: bookings, rispat: rispat, maxBytes: cfg.MaxUploadBytes}
}

func (uc *rispatCommandsImpl) Upload(ctx context.Context, actor user.Actor, upload shared.RispatUpload) (*shared.RispatFile, error) {
	upload.FileName = strings.TrimSpace(upload.FileName)
	switch {
	case upload.FileName == "":
		return nil, ErrMissingFileName
	case upload.Size <= 0:
		return nil, ErrEmptyFile
	case uc.maxBytes > 0 && upload.Size > uc.maxBytes:
		return nil, ErrFileTooLarge
	}

	if err := uc.authorize(ctx, actor, upload.BookingID); err != nil {
		return nil, err
	}
	upload.UploadedBy = actor.Name()
	return uc.rispat.Upload(ctx, upload)
}

func (uc *rispatCommandsImpl) Delete(ctx context.Context, actor user.Actor, bookingID booking.ID, fileID int64) error {
	if err := uc.authorize(ctx, actor, bookingID); err != nil {
		return err
	}

	files, err := uc.rispat.List(ctx, bookingID)
	if err != nil {
		return err
	}
	found := false
	for _, f := range files {
		if f.ID == fileID {
			found = true
			break
		}
	}
	if !found {
		return ErrRispatFileNotFound
	}
	return uc.rispat.Delete(ctx, fileID)
}

func (uc *rispatCommandsImpl) authorize(ctx context.Context, actor user.Actor, id booking.ID) error {
	b, err := uc.bookings.Get(ctx, id)
	if err != nil {
		return err
	}
	return booking.Authorize(actor, b, booking.ActionManageRispat, booking.Facts{}).Err()
}
