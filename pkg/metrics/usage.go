package metrics

import "sync"

// Usage counts upstream API calls and their failures by error code.
// The zero value is ready to use.
type Usage struct {
	mu       sync.Mutex
	requests int64
	failures map[string]int64
}

// UsageSnapshot is a point-in-time copy of Usage.
type UsageSnapshot struct {
	Requests int64            `json:"requests"`
	Failures map[string]int64 `json:"failures,omitempty"`
}

// Record counts one call. An empty code means the call succeeded.
func (u *Usage) Record(code string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.requests++
	if code == "" {
		return
	}
	if u.failures == nil {
		u.failures = make(map[string]int64)
	}
	u.failures[code]++
}

// Snapshot copies the current counters.
func (u *Usage) Snapshot() UsageSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	snap := UsageSnapshot{Requests: u.requests}
	if len(u.failures) > 0 {
		snap.Failures = make(map[string]int64, len(u.failures))
		for code, n := range u.failures {
			snap.Failures[code] = n
		}
	}
	return snap
}

// IsZero reports whether no calls were recorded.
func (s UsageSnapshot) IsZero() bool {
	return s.Requests == 0 && len(s.Failures) == 0
}
