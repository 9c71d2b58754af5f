package server

import (
	"sync"

	"golang.org/x/time/rate"
)

// clientLimiter rate-limits per client identifier (IP address). Limiters are
// created lazily per client and kept for the life of the server; for a demo
// service the client set is small enough that no eviction is needed.
type clientLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

func newClientLimiter(reqPerSec float64, burst int) *clientLimiter {
	return &clientLimiter{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(reqPerSec),
		b: burst,
	}
}

// Allow reports whether the client may proceed right now. A limiter with
// zero rate disables limiting entirely.
func (cl *clientLimiter) Allow(client string) bool {
	if cl.r <= 0 {
		return true
	}
	return cl.limiterFor(client).Allow()
}

func (cl *clientLimiter) limiterFor(client string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if lim, ok := cl.m[client]; ok {
		return lim
	}
	lim := rate.NewLimiter(cl.r, cl.b)
	cl.m[client] = lim
	return lim
}
