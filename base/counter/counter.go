package counter

import "sync"

// Counter is a monotonic uint64 counter safe for concurrent use
type Counter struct {
	count uint64
	mu    sync.RWMutex
}

func NewCounter() *Counter {
	return &Counter{}
}

func NewCounterAt(start uint64) *Counter {
	return &Counter{count: start}
}

func (c *Counter) Add(val uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count += val
}

func (c *Counter) Count() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.count
}
