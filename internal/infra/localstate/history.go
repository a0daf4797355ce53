package localstate

import (
	"context"
	"encoding/json"
	"log/slog"

	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/pkg/errs"
	"room-booking-bff/internal/usecase/shared"
)

// HistoryLog keeps the last finalized bookings per user, newest first,
// bounded by the configured limit.
type HistoryLog struct {
	store  shared.KVStore
	keys   keys
	limit  int
	logger *slog.Logger
}

func NewHistoryLog(store shared.KVStore, storeCfg config.StoreConfig, cfg config.HistoryConfig, logger *slog.Logger) *HistoryLog {
	return &HistoryLog{store: store, keys: keys{prefix: storeCfg.KeyPrefix}, limit: cfg.Limit, logger: logger}
}

var _ shared.HistoryLog = (*HistoryLog)(nil)

func (h *HistoryLog) Append(ctx context.Context, owner string, entry shared.HistoryEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return errs.Wrap(err, "encode history entry")
	}
	return h.store.Push(ctx, h.keys.history(owner), data, h.limit)
}

// List skips entries it cannot decode rather than failing the whole view.
func (h *HistoryLog) List(ctx context.Context, owner string) ([]shared.HistoryEntry, error) {
	raw, err := h.store.Range(ctx, h.keys.history(owner), h.limit)
	if err != nil {
		return nil, err
	}
	out := make([]shared.HistoryEntry, 0, len(raw))
	for _, data := range raw {
		var e shared.HistoryEntry
		if err := json.Unmarshal(data, &e); err != nil {
			h.logger.Warn("skipping unreadable history entry", "owner", owner, "error", err)
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
