package noise

import "github.com/annel0/noise-gen/vec"

// Constant возвращает одно и то же значение в любой точке. Сам по себе
// бесполезен, но удобен как источник для составных узлов и в тестах.
type Constant struct {
	Value float64
}

// NewConstant создаёт узел с фиксированным значением.
func NewConstant(value float64) *Constant {
	return &Constant{Value: value}
}

// Get2 возвращает константу.
func (c *Constant) Get2(_ vec.Vec2Float) float64 { return c.Value }

// Get3 возвращает константу.
func (c *Constant) Get3(_ vec.Vec3Float) float64 { return c.Value }

// Get4 возвращает константу.
func (c *Constant) Get4(_ vec.Vec4Float) float64 { return c.Value }
