package token_bucket

import (
	"sync"
	"time"
)

// Keyed держит отдельное ведро на каждый ключ (ip клиента, id пользователя).
// Ведра, которые долго не трогали и успели наполниться, удаляются при очередном Allow.
type Keyed struct {
	capacity   int
	refillRate float64
	idleTTL    time.Duration
	now        func() time.Time

	mu        sync.Mutex
	buckets   map[string]*keyedEntry
	lastSweep time.Time
}

type keyedEntry struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewKeyed(capacity int, refillRate float64, idleTTL time.Duration) *Keyed {
	return newKeyed(capacity, refillRate, idleTTL, time.Now)
}

func newKeyed(capacity int, refillRate float64, idleTTL time.Duration, now func() time.Time) *Keyed {
	return &Keyed{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		now:        now,
		buckets:    make(map[string]*keyedEntry),
		lastSweep:  now(),
	}
}

func (k *Keyed) Allow(key string) bool {
	now := k.now()

	k.mu.Lock()
	entry, ok := k.buckets[key]
	if !ok {
		entry = &keyedEntry{bucket: newTokenBucket(k.capacity, k.refillRate, k.now)}
		k.buckets[key] = entry
	}
	entry.lastSeen = now

	if k.idleTTL > 0 && now.Sub(k.lastSweep) >= k.idleTTL {
		k.sweep(now)
	}
	k.mu.Unlock()

	return entry.bucket.Allow()
}

// Len возвращает число живых ведер.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

func (k *Keyed) sweep(now time.Time) {
	for key, entry := range k.buckets {
		if now.Sub(entry.lastSeen) >= k.idleTTL && entry.bucket.full() {
			delete(k.buckets, key)
		}
	}
	k.lastSweep = now
}
