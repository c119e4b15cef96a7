package noise

import "github.com/annel0/noise-gen/vec"

// Checkerboard выдаёт чередующиеся блоки -1.0 и 1.0 размером 2^size.
// Значение определяется XOR-чётностью целых частей координат,
// маскированных размером блока. Это отладочный узор, а не когерентный шум.
type Checkerboard struct {
	size uint64
}

// NewCheckerboard создаёт узор с размером блока 2^size.
func NewCheckerboard(size uint) *Checkerboard {
	return &Checkerboard{size: 1 << size}
}

// WithSize возвращает узор с другим размером блока 2^size.
func (c *Checkerboard) WithSize(size uint) *Checkerboard {
	return NewCheckerboard(size)
}

func (c *Checkerboard) parity(coords ...float64) float64 {
	var acc uint64
	for _, a := range coords {
		acc = (acc & c.size) ^ (uint64(int64(a)) & c.size)
	}
	if acc > 0 {
		return -1.0
	}
	return 1.0
}

// Get2 возвращает значение клетки в 2D.
func (c *Checkerboard) Get2(p vec.Vec2Float) float64 { return c.parity(p.X, p.Y) }

// Get3 возвращает значение клетки в 3D.
func (c *Checkerboard) Get3(p vec.Vec3Float) float64 { return c.parity(p.X, p.Y, p.Z) }

// Get4 возвращает значение клетки в 4D.
func (c *Checkerboard) Get4(p vec.Vec4Float) float64 { return c.parity(p.X, p.Y, p.Z, p.W) }
