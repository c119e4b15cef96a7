package vec

import "math"

// Vec4Float представляет 4D координаты с плавающей точкой
type Vec4Float struct {
	X, Y, Z, W float64
}

// Add складывает два вектора
func (v Vec4Float) Add(other Vec4Float) Vec4Float {
	return Vec4Float{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z, W: v.W + other.W}
}

// Sub вычитает вектор
func (v Vec4Float) Sub(other Vec4Float) Vec4Float {
	return Vec4Float{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z, W: v.W - other.W}
}

// Mul умножает вектор на скаляр
func (v Vec4Float) Mul(scalar float64) Vec4Float {
	return Vec4Float{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar, W: v.W * scalar}
}

// Length возвращает длину вектора
func (v Vec4Float) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// DistanceTo вычисляет расстояние до другой точки
func (v Vec4Float) DistanceTo(other Vec4Float) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	dw := v.W - other.W
	return math.Sqrt(dx*dx + dy*dy + dz*dz + dw*dw)
}
