package noise

import (
	"sync"

	"github.com/annel0/noise-gen/vec"
)

// Cache запоминает значение источника для последней запрошенной точки.
// Помогает, когда один и тот же дорогой источник подключён к нескольким
// входам графа и вычисляется в одной точке по несколько раз (типичный
// случай — управляющий источник Select). Кэш ведётся отдельно для каждой
// размерности и защищён мьютексом, так что узел остаётся безопасным для
// конкурентного чтения.
type Cache struct {
	Source Fn

	mu sync.Mutex

	ok2 bool
	p2  vec.Vec2Float
	v2  float64

	ok3 bool
	p3  vec.Vec3Float
	v3  float64

	ok4 bool
	p4  vec.Vec4Float
	v4  float64
}

// NewCache оборачивает источник кэшем последней точки.
func NewCache(source Fn) *Cache {
	return &Cache{Source: source}
}

// Get2 возвращает кэшированное либо свежевычисленное значение.
func (c *Cache) Get2(p vec.Vec2Float) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ok2 && c.p2 == p {
		return c.v2
	}
	c.p2 = p
	c.v2 = c.Source.Get2(p)
	c.ok2 = true
	return c.v2
}

// Get3 возвращает кэшированное либо свежевычисленное значение.
func (c *Cache) Get3(p vec.Vec3Float) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ok3 && c.p3 == p {
		return c.v3
	}
	c.p3 = p
	c.v3 = c.Source.Get3(p)
	c.ok3 = true
	return c.v3
}

// Get4 возвращает кэшированное либо свежевычисленное значение.
func (c *Cache) Get4(p vec.Vec4Float) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ok4 && c.p4 == p {
		return c.v4
	}
	c.p4 = p
	c.v4 = c.Source.Get4(p)
	c.ok4 = true
	return c.v4
}
