// Package jitter добавляет случайность в интервалы повторов,
// чтобы повторные попытки разных клиентов не совпадали по времени.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration возвращает d с джиттером в диапазоне [d, d*(1+jitterFactor)].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	randMutex.Lock()
	f := globalRand.Float64()
	randMutex.Unlock()
	return d + time.Duration(f*jitterFactor*float64(d))
}

// Backoff описывает экспоненциальную задержку между попытками.
type Backoff struct {
	Base   time.Duration
	Max    time.Duration
	Factor float64
	// Rand используется вместо глобального генератора, если задан.
	Rand *rand.Rand
}

// NewBackoff создаёт Backoff с коэффициентом DefaultJitter.
func NewBackoff(base, max time.Duration) *Backoff {
	return &Backoff{Base: base, Max: max, Factor: DefaultJitter}
}

// Next возвращает задержку перед попыткой attempt (нумерация с нуля).
// Задержка без джиттера удваивается на каждой попытке и ограничена Max.
func (b *Backoff) Next(attempt int) time.Duration {
	d := b.base(attempt)
	if b.Rand != nil {
		return d + time.Duration(b.Rand.Float64()*b.Factor*float64(d))
	}
	return Duration(d, b.Factor)
}

func (b *Backoff) base(attempt int) time.Duration {
	d := b.Base
	for i := 0; i < attempt; i++ {
		d *= 2
		if b.Max > 0 && d >= b.Max {
			return b.Max
		}
	}
	return d
}
