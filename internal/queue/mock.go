package queue

import (
	"context"
	"sync"
)

// MockRedisClient provides an in-memory implementation for tests and for
// running without Redis.
type MockRedisClient struct {
	mu     sync.Mutex
	queues map[string][][]byte

	// Err, when set, is returned by Push.
	Err error
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		queues: make(map[string][][]byte),
	}
}

func (m *MockRedisClient) Close() error {
	return nil
}

func (m *MockRedisClient) Push(ctx context.Context, queue string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.queues[queue] = append([][]byte{payload}, m.queues[queue]...)
	return nil
}

// Items returns the queue contents head first.
func (m *MockRedisClient) Items(queue string) [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.queues[queue]))
	copy(out, m.queues[queue])
	return out
}
