package queue

import (
	"context"
	"fmt"
	"sync"

	"go-gin-attendance-log/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type ChangeFeed interface {
	// Publish announces that a user's collection changed.
	Publish(ctx context.Context, change model.EventChange) error
	// Listen delivers changes for userID until ctx is done, then closes the
	// channel. Changes not yet received coalesce into one.
	Listen(ctx context.Context, userID uuid.UUID) (<-chan model.EventChange, error)
}

// NewChangeFeed builds the feed named by backend. The memory feed only
// reaches listeners in the same process.
func NewChangeFeed(backend string, client *redis.Client, config *RedisStreamChangeFeedConfig) (ChangeFeed, error) {
	switch backend {
	case "", BackendRedis:
		return NewRedisStreamChangeFeed(client, config), nil
	case BackendMemory:
		return NewMemoryChangeFeed(), nil
	default:
		return nil, fmt.Errorf("unknown feed backend %q", backend)
	}
}

// MemoryChangeFeedImpl fans changes out inside one process.
type MemoryChangeFeedImpl struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[uuid.UUID]map[int]chan model.EventChange
}

func NewMemoryChangeFeed() ChangeFeed {
	return &MemoryChangeFeedImpl{
		listeners: make(map[uuid.UUID]map[int]chan model.EventChange),
	}
}

func (f *MemoryChangeFeedImpl) Publish(ctx context.Context, change model.EventChange) error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, ch := range f.listeners[change.UserID] {
		select {
		case ch <- change:
		default:
			// a change is already pending for this listener
		}
	}
	return nil
}

func (f *MemoryChangeFeedImpl) Listen(ctx context.Context, userID uuid.UUID) (<-chan model.EventChange, error) {
	ch := make(chan model.EventChange, 1)

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	if f.listeners[userID] == nil {
		f.listeners[userID] = make(map[int]chan model.EventChange)
	}
	f.listeners[userID][id] = ch
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.listeners[userID], id)
		if len(f.listeners[userID]) == 0 {
			delete(f.listeners, userID)
		}
		close(ch)
		f.mu.Unlock()
	}()

	return ch, nil
}
