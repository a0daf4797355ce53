package notification

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/pkg/errs"
	"room-booking-bff/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

// Poller keeps a pending-requests snapshot for every owner that asked for one
// recently and refreshes all of them on a fixed interval. Owners that stop
// asking for longer than the idle timeout are dropped, as are sessions the
// backend rejected.
type Poller struct {
	source   Source
	clock    clock.Clock
	interval time.Duration
	idle     time.Duration
	limit    int
	logger   *slog.Logger

	mu      sync.Mutex
	watches map[string]*watch

	runMu       sync.Mutex
	cancel      context.CancelFunc
	done        chan struct{}
	unsubscribe func()
}

type watch struct {
	session  shared.Session
	snapshot *shared.NotificationSnapshot
	lastSeen time.Time
}

func NewPoller(source Source, clk clock.Clock, cfg config.NotificationConfig, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	limit := cfg.Concurrency
	if limit <= 0 {
		limit = 1
	}
	return &Poller{
		source:   source,
		clock:    clk,
		interval: cfg.PollInterval,
		idle:     cfg.IdleTimeout,
		limit:    limit,
		logger:   logger,
		watches:  make(map[string]*watch),
	}
}

var _ shared.NotificationFeed = (*Poller)(nil)

func watchKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Latest returns the snapshot for the session in ctx, fetching it on first use.
func (p *Poller) Latest(ctx context.Context) (*shared.NotificationSnapshot, error) {
	sess, ok := shared.SessionFrom(ctx)
	if !ok {
		return nil, errs.ErrSessionExpired
	}
	key := watchKey(sess.Actor.Name())

	var snap *shared.NotificationSnapshot
	p.mu.Lock()
	if w, found := p.watches[key]; found {
		w.session = sess
		w.lastSeen = p.clock.Now()
		snap = w.snapshot
	}
	p.mu.Unlock()

	if snap != nil {
		return snap, nil
	}
	return p.poll(ctx, sess, true)
}

// Refresh re-polls the session in ctx right away, used after an action that
// may have changed the pending set.
func (p *Poller) Refresh(ctx context.Context) {
	sess, ok := shared.SessionFrom(ctx)
	if !ok {
		return
	}
	if _, err := p.poll(ctx, sess, true); err != nil {
		p.logger.Warn("notification refresh failed", "owner", sess.Actor.Name(), "error", err)
	}
}

func (p *Poller) Forget(ownerName string) {
	p.mu.Lock()
	delete(p.watches, watchKey(ownerName))
	p.mu.Unlock()
}

func (p *Poller) Watching() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.watches)
}

func (p *Poller) poll(ctx context.Context, sess shared.Session, create bool) (*shared.NotificationSnapshot, error) {
	pending, err := p.source.Pending(shared.WithSession(ctx, sess), sess.Actor)
	if err != nil {
		if errs.Is(err, errs.ErrSessionExpired) {
			p.Forget(sess.Actor.Name())
		}
		return nil, err
	}

	now := p.clock.Now()
	snap := &shared.NotificationSnapshot{
		Owner:       sess.Actor.Name(),
		Pending:     pending,
		RefreshedAt: now,
	}

	key := watchKey(sess.Actor.Name())
	p.mu.Lock()
	defer p.mu.Unlock()
	w, found := p.watches[key]
	switch {
	case found:
		w.snapshot = snap
	case create:
		p.watches[key] = &watch{session: sess, snapshot: snap, lastSeen: now}
	}
	return snap, nil
}

// PollAll drops idle owners and refreshes the rest with bounded concurrency.
func (p *Poller) PollAll(ctx context.Context) {
	now := p.clock.Now()

	p.mu.Lock()
	sessions := make([]shared.Session, 0, len(p.watches))
	for key, w := range p.watches {
		if p.idle > 0 && now.Sub(w.lastSeen) > p.idle {
			delete(p.watches, key)
			continue
		}
		sessions = append(sessions, w.session)
	}
	p.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)
	for _, sess := range sessions {
		g.Go(func() error {
			if _, err := p.poll(gctx, sess, false); err != nil {
				p.logger.Warn("notification poll failed", "owner", sess.Actor.Name(), "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Run polls until ctx is done.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.PollAll(ctx)
		}
	}
}

// Start runs the poller in the background and forgets owners whose session
// expired. Stop must be called to release the goroutine.
func (p *Poller) Start(events shared.SessionEvents) {
	p.runMu.Lock()
	defer p.runMu.Unlock()
	if p.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	if events != nil {
		p.unsubscribe = events.Subscribe(func(e shared.SessionExpired) {
			p.Forget(e.ActorName)
		})
	}
	go func() {
		defer close(p.done)
		p.Run(ctx)
	}()
}

func (p *Poller) Stop(ctx context.Context) error {
	p.runMu.Lock()
	defer p.runMu.Unlock()
	if p.cancel == nil {
		return nil
	}
	p.cancel()
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	select {
	case <-p.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	p.cancel = nil
	return nil
}
