package noise

import "github.com/annel0/noise-gen/vec"

// Таблицы градиентов для решёточных генераторов. Диагональные 2D-векторы
// нормированы, чтобы амплитуда вклада не зависела от направления.

const diag = 0.70710678118654752440 // 1/sqrt(2)

var grad2 = [8]vec.Vec2Float{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	{X: diag, Y: diag}, {X: -diag, Y: diag}, {X: diag, Y: -diag}, {X: -diag, Y: -diag},
}

// 12 рёберных векторов куба.
var grad3 = [12]vec.Vec3Float{
	{X: 1, Y: 1, Z: 0}, {X: -1, Y: 1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: -1, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: 1}, {X: -1, Y: 0, Z: 1}, {X: 1, Y: 0, Z: -1}, {X: -1, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: 1}, {X: 0, Y: -1, Z: 1}, {X: 0, Y: 1, Z: -1}, {X: 0, Y: -1, Z: -1},
}

// 32 вектора вида (0,±1,±1,±1) и их перестановки.
var grad4 = [32]vec.Vec4Float{
	{X: 0, Y: 1, Z: 1, W: 1}, {X: 0, Y: 1, Z: 1, W: -1}, {X: 0, Y: 1, Z: -1, W: 1}, {X: 0, Y: 1, Z: -1, W: -1},
	{X: 0, Y: -1, Z: 1, W: 1}, {X: 0, Y: -1, Z: 1, W: -1}, {X: 0, Y: -1, Z: -1, W: 1}, {X: 0, Y: -1, Z: -1, W: -1},
	{X: 1, Y: 0, Z: 1, W: 1}, {X: 1, Y: 0, Z: 1, W: -1}, {X: 1, Y: 0, Z: -1, W: 1}, {X: 1, Y: 0, Z: -1, W: -1},
	{X: -1, Y: 0, Z: 1, W: 1}, {X: -1, Y: 0, Z: 1, W: -1}, {X: -1, Y: 0, Z: -1, W: 1}, {X: -1, Y: 0, Z: -1, W: -1},
	{X: 1, Y: 1, Z: 0, W: 1}, {X: 1, Y: 1, Z: 0, W: -1}, {X: 1, Y: -1, Z: 0, W: 1}, {X: 1, Y: -1, Z: 0, W: -1},
	{X: -1, Y: 1, Z: 0, W: 1}, {X: -1, Y: 1, Z: 0, W: -1}, {X: -1, Y: -1, Z: 0, W: 1}, {X: -1, Y: -1, Z: 0, W: -1},
	{X: 1, Y: 1, Z: 1, W: 0}, {X: 1, Y: 1, Z: -1, W: 0}, {X: 1, Y: -1, Z: 1, W: 0}, {X: 1, Y: -1, Z: -1, W: 0},
	{X: -1, Y: 1, Z: 1, W: 0}, {X: -1, Y: 1, Z: -1, W: 0}, {X: -1, Y: -1, Z: 1, W: 0}, {X: -1, Y: -1, Z: -1, W: 0},
}

// gradDot2 возвращает скалярное произведение градиента по хэшу и смещения.
func gradDot2(hash uint8, dx, dy float64) float64 {
	g := grad2[hash&7]
	return g.X*dx + g.Y*dy
}

func gradDot3(hash uint8, dx, dy, dz float64) float64 {
	g := grad3[hash%12]
	return g.X*dx + g.Y*dy + g.Z*dz
}

func gradDot4(hash uint8, dx, dy, dz, dw float64) float64 {
	g := grad4[hash&31]
	return g.X*dx + g.Y*dy + g.Z*dz + g.W*dw
}
