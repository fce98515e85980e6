// Package ttlcache - кэш одного значения с временем жизни и явной инвалидацией.
package ttlcache

import (
	"context"
	"sync"
	"time"
)

type LoadFunc[T any] func(ctx context.Context) (T, error)

// Value хранит результат load до истечения ttl. Конкурентные промахи
// сливаются в одну загрузку под мьютексом.
type Value[T any] struct {
	ttl  time.Duration
	load LoadFunc[T]
	now  func() time.Time

	mu       sync.Mutex
	value    T
	loadedAt time.Time
	valid    bool
}

func New[T any](ttl time.Duration, load LoadFunc[T]) *Value[T] {
	return NewWithClock(ttl, load, time.Now)
}

func NewWithClock[T any](ttl time.Duration, load LoadFunc[T], now func() time.Time) *Value[T] {
	return &Value[T]{
		ttl:  ttl,
		load: load,
		now:  now,
	}
}

// Get возвращает закэшированное значение или загружает новое.
// Ошибка загрузки не кэшируется.
func (v *Value[T]) Get(ctx context.Context) (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.isValidLocked() {
		return v.value, nil
	}

	value, err := v.load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	v.value = value
	v.loadedAt = v.now()
	v.valid = true
	return value, nil
}

// Invalidate сбрасывает значение, следующий Get пойдет в источник.
func (v *Value[T]) Invalidate() {
	v.mu.Lock()
	defer v.mu.Unlock()

	var zero T
	v.value = zero
	v.valid = false
}

func (v *Value[T]) IsValid() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.isValidLocked()
}

func (v *Value[T]) isValidLocked() bool {
	return v.valid && v.now().Sub(v.loadedAt) < v.ttl
}
