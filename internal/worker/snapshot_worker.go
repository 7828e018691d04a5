package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go-gin-attendance-log/internal/model"
	"go-gin-attendance-log/internal/queue"
	"go-gin-attendance-log/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrAlreadyStarted = errors.New("subscription already started")

// SnapshotLoader loads a user's full collection.
type SnapshotLoader interface {
	List(ctx context.Context, userID uuid.UUID) ([]*model.EventRecord, error)
}

type SnapshotSubscription interface {
	// Start delivers the current collection, then a fresh full collection
	// after every change, until Stop or ctx is done.
	Start(ctx context.Context) error
	// Stop returns once no further callback can run. It must not be called
	// from inside the callback.
	Stop()
}

type SnapshotWorkerImpl struct {
	userID     uuid.UUID
	feed       queue.ChangeFeed
	loader     SnapshotLoader
	onSnapshot func([]*model.EventRecord)

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	stopped atomic.Bool
}

func NewSnapshotWorker(feed queue.ChangeFeed, loader SnapshotLoader, userID uuid.UUID, onSnapshot func([]*model.EventRecord)) SnapshotSubscription {
	return &SnapshotWorkerImpl{
		userID:     userID,
		feed:       feed,
		loader:     loader,
		onSnapshot: onSnapshot,
	}
}

func (w *SnapshotWorkerImpl) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil || w.stopped.Load() {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	changes, err := w.feed.Listen(ctx, w.userID)
	if err != nil {
		cancel()
		return err
	}

	w.cancel = cancel
	w.done = make(chan struct{})
	go w.run(ctx, changes)
	return nil
}

func (w *SnapshotWorkerImpl) run(ctx context.Context, changes <-chan model.EventChange) {
	defer close(w.done)
	w.deliver(ctx)
	for range changes {
		w.deliver(ctx)
	}
}

func (w *SnapshotWorkerImpl) deliver(ctx context.Context) {
	events, err := w.loader.List(ctx, w.userID)
	if err != nil {
		if ctx.Err() == nil {
			logger.WithComponent("worker").Warn("load snapshot failed", zap.String("user_id", w.userID.String()), zap.Error(err))
		}
		return
	}
	if w.stopped.Load() || ctx.Err() != nil {
		return
	}
	w.onSnapshot(events)
}

func (w *SnapshotWorkerImpl) Stop() {
	w.stopped.Store(true)

	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
