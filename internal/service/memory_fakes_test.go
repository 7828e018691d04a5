package service_test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go-gin-attendance-log/internal/model"
	apperrors "go-gin-attendance-log/pkg/app_errors"

	"github.com/google/uuid"
)

// memoryEventRepository keeps records in insertion order.
type memoryEventRepository struct {
	mu      sync.Mutex
	records []*model.EventRecord
}

func newMemoryEventRepository() *memoryEventRepository {
	return &memoryEventRepository{}
}

func (r *memoryEventRepository) Create(_ context.Context, event *model.EventRecord) (*model.EventRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := *event
	created.CreatedAt = time.Now().UTC()
	r.records = append(r.records, &created)
	return &created, nil
}

func (r *memoryEventRepository) FindByID(_ context.Context, id uuid.UUID) (*model.EventRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.records {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}

func (r *memoryEventRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*model.EventRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]*model.EventRecord, 0)
	for _, e := range r.records {
		if e.UserID == userID {
			events = append(events, e)
		}
	}
	return events, nil
}

func (r *memoryEventRepository) ListAll(_ context.Context) ([]*model.EventRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.EventRecord{}, r.records...), nil
}

// memorySnapshotCache applies the same generation check as the Redis cache.
type memorySnapshotCache struct {
	mu          sync.Mutex
	snapshots   map[uuid.UUID][]*model.EventRecord
	generations map[uuid.UUID]int64
	beforePut   func()
}

func newMemorySnapshotCache() *memorySnapshotCache {
	return &memorySnapshotCache{
		snapshots:   make(map[uuid.UUID][]*model.EventRecord),
		generations: make(map[uuid.UUID]int64),
	}
}

// holdFirstPut blocks the first Put until resume is closed; paused is closed
// once that Put is waiting.
func (c *memorySnapshotCache) holdFirstPut() (paused <-chan struct{}, resume chan struct{}) {
	p := make(chan struct{})
	resume = make(chan struct{})
	var held atomic.Bool
	c.beforePut = func() {
		if held.CompareAndSwap(false, true) {
			close(p)
			<-resume
		}
	}
	return p, resume
}

func (c *memorySnapshotCache) Get(_ context.Context, userID uuid.UUID) ([]*model.EventRecord, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	events, ok := c.snapshots[userID]
	return events, ok, nil
}

func (c *memorySnapshotCache) Generation(_ context.Context, userID uuid.UUID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[userID], nil
}

func (c *memorySnapshotCache) Put(_ context.Context, userID uuid.UUID, generation int64, events []*model.EventRecord) (bool, error) {
	if c.beforePut != nil {
		c.beforePut()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[userID] != generation {
		return false, nil
	}
	c.snapshots[userID] = events
	return true, nil
}

func (c *memorySnapshotCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[userID]++
	delete(c.snapshots, userID)
	return nil
}
