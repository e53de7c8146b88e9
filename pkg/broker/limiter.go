package broker

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-sender rate limiters: sender -> rate limiter.
// Senders it has not seen yet get a limiter with the store's defaults.
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(sender string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[sender]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[sender] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(sender string, senderRate rate.Limit, senderBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[sender] = rate.NewLimiter(senderRate, senderBurst)
}

// Allow consumes one token for the sender. A nil store disables limiting and
// allows everything, so callers can hold an optional store without checking.
func (s *RateLimiterStore) Allow(sender string) bool {
	if s == nil {
		return true
	}
	return s.GetLimiter(sender).Allow()
}
