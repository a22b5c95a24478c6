// Package idgen выдаёт идентификаторы новых продуктов.
package idgen

import (
	"strconv"
	"sync"
	"time"

	"github.com/DRSN-tech/catalog-admin/internal/cfg"
	"github.com/google/uuid"
)

// Generator — источник строковых идентификаторов.
type Generator interface {
	NewID() string
}

// TimestampGenerator выдаёт Unix-время в миллисекундах в десятичной записи.
// Если часы не сдвинулись с прошлого вызова, значение увеличивается на единицу,
// чтобы идентификаторы не повторялись.
type TimestampGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewTimestampGenerator() *TimestampGenerator {
	return NewTimestampGeneratorWithClock(time.Now)
}

func NewTimestampGeneratorWithClock(now func() time.Time) *TimestampGenerator {
	return &TimestampGenerator{now: now}
}

func (g *TimestampGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms

	return strconv.FormatInt(ms, 10)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// New выбирает генератор по стратегии из конфигурации.
func New(c *cfg.AdminCfg) Generator {
	if c != nil && c.IDStrategy == cfg.IDStrategyUUID {
		return NewUUIDGenerator()
	}
	return NewTimestampGenerator()
}
