package logging

import (
	"math/rand/v2"
	"strconv"
	"sync"
	"time"
)

// RequestIDHolder keeps an optional current-request identifier for call sites
// that cannot thread a context. The holder is process-wide, not per-call:
// in concurrent server environments a value set here leaks across requests,
// so prefer ContextWithRequestID wherever a context is available.
type RequestIDHolder struct {
	mu sync.RWMutex
	id string
}

// NewRequestIDHolder returns an empty holder.
func NewRequestIDHolder() *RequestIDHolder {
	return &RequestIDHolder{}
}

// Set stores the current request identifier.
func (h *RequestIDHolder) Set(id string) {
	h.mu.Lock()
	h.id = id
	h.mu.Unlock()
}

// Get returns the current request identifier, or an empty string when none
// is set.
func (h *RequestIDHolder) Get() string {
	if h == nil {
		return ""
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.id
}

// Clear removes the current request identifier.
func (h *RequestIDHolder) Clear() {
	h.mu.Lock()
	h.id = ""
	h.mu.Unlock()
}

// Generate creates a fresh identifier, stores it, and returns it.
func (h *RequestIDHolder) Generate() string {
	id := NewRequestID()
	h.Set(id)
	return id
}

// NewRequestID builds an identifier of the form <epoch>-<random-base36>.
func NewRequestID() string {
	epoch := strconv.FormatInt(time.Now().UnixMilli(), 10)
	random := strconv.FormatUint(rand.Uint64(), 36)
	return epoch + "-" + random
}
