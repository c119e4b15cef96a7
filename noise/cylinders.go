package noise

import (
	"math"

	"github.com/annel0/noise-gen/vec"
)

// Cylinders выдаёт бесконечные концентрические кольца вокруг оси z,
// как годовые кольца дерева. Значение зависит от дробной части
// расстояния проекции (x,y) до начала координат: на целых радиусах 1.0,
// посередине между ними -1.0.
type Cylinders struct {
	Frequency float64
}

// NewCylinders создаёт узел с частотой 1.0.
func NewCylinders() *Cylinders {
	return &Cylinders{Frequency: 1.0}
}

// WithFrequency возвращает узел с другой частотой колец.
func (c *Cylinders) WithFrequency(frequency float64) *Cylinders {
	return &Cylinders{Frequency: frequency}
}

func (c *Cylinders) rings(x, y float64) float64 {
	x *= c.Frequency
	y *= c.Frequency

	distFromCenter := math.Sqrt(x*x + y*y)
	distFromSmaller := distFromCenter - math.Floor(distFromCenter)
	distFromLarger := 1.0 - distFromSmaller
	nearest := math.Min(distFromSmaller, distFromLarger)

	// Сдвигаем результат в диапазон [-1, 1].
	return 1.0 - nearest*4.0
}

// Get2 возвращает значение колец в 2D.
func (c *Cylinders) Get2(p vec.Vec2Float) float64 { return c.rings(p.X, p.Y) }

// Get3 возвращает значение колец в 3D (z игнорируется).
func (c *Cylinders) Get3(p vec.Vec3Float) float64 { return c.rings(p.X, p.Y) }

// Get4 возвращает значение колец в 4D (z и w игнорируются).
func (c *Cylinders) Get4(p vec.Vec4Float) float64 { return c.rings(p.X, p.Y) }
