package token_bucket

import (
	"sync"
	"time"
)

// KeyedTokenBucket держит отдельный bucket на ключ (обычно IP клиента).
// Используется для публичных эндпоинтов: оформление заказа и вход в админку.
type KeyedTokenBucket struct {
	capacity   int
	refillRate float64
	now        func() time.Time

	mu      sync.Mutex
	buckets map[string]*TokenBucket
}

func NewKeyedTokenBucket(capacity int, refillRate float64) *KeyedTokenBucket {
	return &KeyedTokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		now:        time.Now,
		buckets:    make(map[string]*TokenBucket),
	}
}

func (k *KeyedTokenBucket) AllowKey(key string) bool {
	return k.bucket(key).Allow()
}

// Cleanup удаляет bucket'ы, к которым не обращались дольше idle. Возвращает число удалённых.
func (k *KeyedTokenBucket) Cleanup(idle time.Duration) int {
	now := k.now()

	k.mu.Lock()
	defer k.mu.Unlock()

	removed := 0
	for key, b := range k.buckets {
		if b.idleSince(now) > idle {
			delete(k.buckets, key)
			removed++
		}
	}
	return removed
}

// Len количество отслеживаемых ключей.
func (k *KeyedTokenBucket) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

func (k *KeyedTokenBucket) bucket(key string) *TokenBucket {
	k.mu.Lock()
	defer k.mu.Unlock()

	b, ok := k.buckets[key]
	if !ok {
		b = newTokenBucket(k.capacity, k.refillRate, k.now)
		k.buckets[key] = b
	}
	return b
}
