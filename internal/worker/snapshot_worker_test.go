package worker_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go-gin-attendance-log/internal/model"
	"go-gin-attendance-log/internal/queue"
	"go-gin-attendance-log/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	mu     sync.Mutex
	events []*model.EventRecord
	err    error
	calls  atomic.Int32
}

func (l *fakeLoader) List(_ context.Context, _ uuid.UUID) ([]*model.EventRecord, error) {
	l.calls.Add(1)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	out := make([]*model.EventRecord, len(l.events))
	copy(out, l.events)
	return out, nil
}

func (l *fakeLoader) add(e *model.EventRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func TestSnapshotWorker(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - initial snapshot then full replacement on change", func(t *testing.T) {
		feed := queue.NewMemoryChangeFeed()
		loader := &fakeLoader{events: []*model.EventRecord{{Title: "Carmen"}}}
		snapshots := make(chan []*model.EventRecord, 10)
		sub := worker.NewSnapshotWorker(feed, loader, userID, func(events []*model.EventRecord) {
			snapshots <- events
		})

		require.NoError(t, sub.Start(ctx))
		defer sub.Stop()

		first := <-snapshots
		require.Len(t, first, 1)

		loader.add(&model.EventRecord{Title: "Hamlet"})
		require.NoError(t, feed.Publish(ctx, model.EventChange{UserID: userID}))

		select {
		case second := <-snapshots:
			assert.Len(t, second, 2)
		case <-time.After(2 * time.Second):
			t.Fatal("no snapshot after change")
		}
	})

	t.Run("Success - other users changes are ignored", func(t *testing.T) {
		feed := queue.NewMemoryChangeFeed()
		loader := &fakeLoader{}
		snapshots := make(chan []*model.EventRecord, 10)
		sub := worker.NewSnapshotWorker(feed, loader, userID, func(events []*model.EventRecord) {
			snapshots <- events
		})
		require.NoError(t, sub.Start(ctx))
		defer sub.Stop()
		<-snapshots

		require.NoError(t, feed.Publish(ctx, model.EventChange{UserID: uuid.New()}))

		select {
		case <-snapshots:
			t.Fatal("unexpected snapshot")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("Success - no callback after Stop", func(t *testing.T) {
		feed := queue.NewMemoryChangeFeed()
		loader := &fakeLoader{}
		var after atomic.Int32
		var stopped atomic.Bool
		first := make(chan struct{}, 1)
		sub := worker.NewSnapshotWorker(feed, loader, userID, func([]*model.EventRecord) {
			if stopped.Load() {
				after.Add(1)
			}
			select {
			case first <- struct{}{}:
			default:
			}
		})
		require.NoError(t, sub.Start(ctx))
		<-first

		sub.Stop()
		stopped.Store(true)
		for i := 0; i < 5; i++ {
			require.NoError(t, feed.Publish(ctx, model.EventChange{UserID: userID}))
		}
		time.Sleep(50 * time.Millisecond)

		assert.Zero(t, after.Load())
	})

	t.Run("Success - load failure skips the snapshot", func(t *testing.T) {
		feed := queue.NewMemoryChangeFeed()
		loader := &fakeLoader{err: errors.New("db error")}
		called := atomic.Int32{}
		sub := worker.NewSnapshotWorker(feed, loader, userID, func([]*model.EventRecord) { called.Add(1) })
		require.NoError(t, sub.Start(ctx))

		assert.Eventually(t, func() bool { return loader.calls.Load() >= 1 }, time.Second, 10*time.Millisecond)
		sub.Stop()
		assert.Zero(t, called.Load())
	})

	t.Run("Failed - start twice", func(t *testing.T) {
		sub := worker.NewSnapshotWorker(queue.NewMemoryChangeFeed(), &fakeLoader{}, userID, func([]*model.EventRecord) {})
		require.NoError(t, sub.Start(ctx))
		defer sub.Stop()
		assert.ErrorIs(t, sub.Start(ctx), worker.ErrAlreadyStarted)
	})

	t.Run("Success - Stop before Start is a no-op", func(t *testing.T) {
		sub := worker.NewSnapshotWorker(queue.NewMemoryChangeFeed(), &fakeLoader{}, userID, func([]*model.EventRecord) {})
		assert.NotPanics(t, sub.Stop)
	})
}
