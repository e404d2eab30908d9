package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	strikeKeyPrefix = "ratelimit:strikes:"
	banKeyPrefix    = "ratelimit:ban:"

	strikeWindow = time.Hour
	banDuration  = 24 * time.Hour
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps a token bucket per client IP and records repeated
// violations as strikes in redis; enough strikes inside the window gets the
// IP banned for a day.
type Limiter struct {
	rdb        *redis.Client
	rps        rate.Limit
	burst      int
	maxStrikes int

	mu       sync.Mutex
	visitors map[string]*visitor
}

func New(rdb *redis.Client, rps float64, burst, maxStrikes int) *Limiter {
	return &Limiter{
		rdb:        rdb,
		rps:        rate.Limit(rps),
		burst:      burst,
		maxStrikes: maxStrikes,
		visitors:   make(map[string]*visitor),
	}
}

// Allow reports whether the client may proceed.
func (l *Limiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

// Strike records one violation and bans the client when it has accumulated
// too many inside the window.
func (l *Limiter) Strike(ip, route string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	key := strikeKeyPrefix + ip
	strikes, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		log.Warn().Err(err).Str("ip", ip).Msg("failed to record rate limit strike")
		return
	}
	if strikes == 1 {
		l.rdb.Expire(ctx, key, strikeWindow)
	}

	if int(strikes) >= l.maxStrikes {
		if err := l.rdb.Set(ctx, banKeyPrefix+ip, route, banDuration).Err(); err != nil {
			log.Warn().Err(err).Str("ip", ip).Msg("failed to record ban")
			return
		}
		log.Warn().
			Str("ip", ip).
			Str("route", route).
			Int64("strikes", strikes).
			Msg("client banned for repeated rate limit violations")
	}
}

// Banned reports whether the client is currently banned.
func (l *Limiter) Banned(ip string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	n, err := l.rdb.Exists(ctx, banKeyPrefix+ip).Result()
	if err != nil {
		return false
	}
	return n > 0
}

// StartVisitorCleanupLoop drops idle per-IP buckets. Run as a goroutine.
func (l *Limiter) StartVisitorCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		l.mu.Lock()
		for ip, v := range l.visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(l.visitors, ip)
			}
		}
		l.mu.Unlock()
	}
}

// String describes the limiter settings, for startup logging.
func (l *Limiter) String() string {
	return fmt.Sprintf("%v req/s burst %d, ban after %d strikes", l.rps, l.burst, l.maxStrikes)
}
