package noise

import (
	"math"

	"github.com/annel0/noise-gen/vec"
)

// PointTransform — чистое преобразование координат точки перед передачей
// источнику. Используется узлом Transformed и фракталом (лакунарность).
type PointTransform interface {
	Apply2(p vec.Vec2Float) vec.Vec2Float
	Apply3(p vec.Vec3Float) vec.Vec3Float
	Apply4(p vec.Vec4Float) vec.Vec4Float
}

// UniformScale равномерно масштабирует точку по всем осям.
type UniformScale struct {
	Scale float64
}

// NewUniformScale создаёт преобразование с указанным множителем.
func NewUniformScale(scale float64) UniformScale {
	return UniformScale{Scale: scale}
}

// Apply2 масштабирует 2D-точку.
func (u UniformScale) Apply2(p vec.Vec2Float) vec.Vec2Float { return p.Mul(u.Scale) }

// Apply3 масштабирует 3D-точку.
func (u UniformScale) Apply3(p vec.Vec3Float) vec.Vec3Float { return p.Mul(u.Scale) }

// Apply4 масштабирует 4D-точку.
func (u UniformScale) Apply4(p vec.Vec4Float) vec.Vec4Float { return p.Mul(u.Scale) }

// Transformed вычисляет источник в преобразованной точке.
type Transformed struct {
	Source    Fn
	Transform PointTransform
}

// NewTransformed оборачивает источник произвольным преобразованием точки.
func NewTransformed(source Fn, transform PointTransform) *Transformed {
	return &Transformed{Source: source, Transform: transform}
}

// Get2 вычисляет источник в преобразованной 2D-точке.
func (t *Transformed) Get2(p vec.Vec2Float) float64 { return t.Source.Get2(t.Transform.Apply2(p)) }

// Get3 вычисляет источник в преобразованной 3D-точке.
func (t *Transformed) Get3(p vec.Vec3Float) float64 { return t.Source.Get3(t.Transform.Apply3(p)) }

// Get4 вычисляет источник в преобразованной 4D-точке.
func (t *Transformed) Get4(p vec.Vec4Float) float64 { return t.Source.Get4(t.Transform.Apply4(p)) }

// ScalePoint масштабирует координаты точки по осям независимо.
type ScalePoint struct {
	Source     Fn
	X, Y, Z, W float64
}

// NewScalePoint создаёт узел с единичными множителями.
func NewScalePoint(source Fn) *ScalePoint {
	return &ScalePoint{Source: source, X: 1, Y: 1, Z: 1, W: 1}
}

// WithScale возвращает узел с одинаковым множителем по всем осям.
func (s *ScalePoint) WithScale(scale float64) *ScalePoint {
	return &ScalePoint{Source: s.Source, X: scale, Y: scale, Z: scale, W: scale}
}

// WithXScale возвращает узел с другим множителем по x.
func (s *ScalePoint) WithXScale(scale float64) *ScalePoint {
	c := *s
	c.X = scale
	return &c
}

// WithYScale возвращает узел с другим множителем по y.
func (s *ScalePoint) WithYScale(scale float64) *ScalePoint {
	c := *s
	c.Y = scale
	return &c
}

// WithZScale возвращает узел с другим множителем по z.
func (s *ScalePoint) WithZScale(scale float64) *ScalePoint {
	c := *s
	c.Z = scale
	return &c
}

// WithWScale возвращает узел с другим множителем по w.
func (s *ScalePoint) WithWScale(scale float64) *ScalePoint {
	c := *s
	c.W = scale
	return &c
}

// Get2 вычисляет источник в масштабированной точке.
func (s *ScalePoint) Get2(p vec.Vec2Float) float64 {
	return s.Source.Get2(vec.Vec2Float{X: p.X * s.X, Y: p.Y * s.Y})
}

// Get3 вычисляет источник в масштабированной точке.
func (s *ScalePoint) Get3(p vec.Vec3Float) float64 {
	return s.Source.Get3(vec.Vec3Float{X: p.X * s.X, Y: p.Y * s.Y, Z: p.Z * s.Z})
}

// Get4 вычисляет источник в масштабированной точке.
func (s *ScalePoint) Get4(p vec.Vec4Float) float64 {
	return s.Source.Get4(vec.Vec4Float{X: p.X * s.X, Y: p.Y * s.Y, Z: p.Z * s.Z, W: p.W * s.W})
}

// TranslatePoint сдвигает координаты точки на постоянный вектор.
type TranslatePoint struct {
	Source     Fn
	X, Y, Z, W float64
}

// NewTranslatePoint создаёт узел с нулевым сдвигом.
func NewTranslatePoint(source Fn) *TranslatePoint {
	return &TranslatePoint{Source: source}
}

// WithTranslation возвращает узел с одинаковым сдвигом по всем осям.
func (t *TranslatePoint) WithTranslation(d float64) *TranslatePoint {
	return &TranslatePoint{Source: t.Source, X: d, Y: d, Z: d, W: d}
}

// WithXTranslation возвращает узел с другим сдвигом по x.
func (t *TranslatePoint) WithXTranslation(d float64) *TranslatePoint {
	c := *t
	c.X = d
	return &c
}

// WithYTranslation возвращает узел с другим сдвигом по y.
func (t *TranslatePoint) WithYTranslation(d float64) *TranslatePoint {
	c := *t
	c.Y = d
	return &c
}

// WithZTranslation возвращает узел с другим сдвигом по z.
func (t *TranslatePoint) WithZTranslation(d float64) *TranslatePoint {
	c := *t
	c.Z = d
	return &c
}

// WithWTranslation возвращает узел с другим сдвигом по w.
func (t *TranslatePoint) WithWTranslation(d float64) *TranslatePoint {
	c := *t
	c.W = d
	return &c
}

// Get2 вычисляет источник в сдвинутой точке.
func (t *TranslatePoint) Get2(p vec.Vec2Float) float64 {
	return t.Source.Get2(vec.Vec2Float{X: p.X + t.X, Y: p.Y + t.Y})
}

// Get3 вычисляет источник в сдвинутой точке.
func (t *TranslatePoint) Get3(p vec.Vec3Float) float64 {
	return t.Source.Get3(vec.Vec3Float{X: p.X + t.X, Y: p.Y + t.Y, Z: p.Z + t.Z})
}

// Get4 вычисляет источник в сдвинутой точке.
func (t *TranslatePoint) Get4(p vec.Vec4Float) float64 {
	return t.Source.Get4(vec.Vec4Float{X: p.X + t.X, Y: p.Y + t.Y, Z: p.Z + t.Z, W: p.W + t.W})
}

// RotatePoint поворачивает точку вокруг начала координат. Углы задаются
// в градусах вокруг осей x, y и z; матрица поворота вычисляется при
// конструировании. В 2D применяется только угол вокруг z, в 4D
// поворачиваются координаты x/y/z, а w передаётся без изменений.
type RotatePoint struct {
	Source                 Fn
	xAngle, yAngle, zAngle float64

	m11, m12, m13 float64
	m21, m22, m23 float64
	m31, m32, m33 float64
}

// NewRotatePoint создаёт узел с нулевыми углами.
func NewRotatePoint(source Fn) *RotatePoint {
	r := &RotatePoint{Source: source}
	r.computeMatrix()
	return r
}

// WithAngles возвращает узел с другими углами поворота (в градусах).
func (r *RotatePoint) WithAngles(xAngle, yAngle, zAngle float64) *RotatePoint {
	c := &RotatePoint{Source: r.Source, xAngle: xAngle, yAngle: yAngle, zAngle: zAngle}
	c.computeMatrix()
	return c
}

func (r *RotatePoint) computeMatrix() {
	xCos := math.Cos(r.xAngle * math.Pi / 180.0)
	yCos := math.Cos(r.yAngle * math.Pi / 180.0)
	zCos := math.Cos(r.zAngle * math.Pi / 180.0)
	xSin := math.Sin(r.xAngle * math.Pi / 180.0)
	ySin := math.Sin(r.yAngle * math.Pi / 180.0)
	zSin := math.Sin(r.zAngle * math.Pi / 180.0)

	r.m11 = ySin*xSin*zSin + yCos*zCos
	r.m12 = xCos * zSin
	r.m13 = ySin*zCos - yCos*xSin*zSin
	r.m21 = ySin*xSin*zCos - yCos*zSin
	r.m22 = xCos * zCos
	r.m23 = -yCos*xSin*zCos - ySin*zSin
	r.m31 = -ySin * xCos
	r.m32 = xSin
	r.m33 = yCos * xCos
}

// Get2 поворачивает точку в плоскости xy (угол вокруг z).
func (r *RotatePoint) Get2(p vec.Vec2Float) float64 {
	cos := math.Cos(r.zAngle * math.Pi / 180.0)
	sin := math.Sin(r.zAngle * math.Pi / 180.0)
	return r.Source.Get2(vec.Vec2Float{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	})
}

// Get3 применяет матрицу поворота к точке.
func (r *RotatePoint) Get3(p vec.Vec3Float) float64 {
	return r.Source.Get3(vec.Vec3Float{
		X: r.m11*p.X + r.m12*p.Y + r.m13*p.Z,
		Y: r.m21*p.X + r.m22*p.Y + r.m23*p.Z,
		Z: r.m31*p.X + r.m32*p.Y + r.m33*p.Z,
	})
}

// Get4 поворачивает x/y/z, оставляя w неизменной.
func (r *RotatePoint) Get4(p vec.Vec4Float) float64 {
	return r.Source.Get4(vec.Vec4Float{
		X: r.m11*p.X + r.m12*p.Y + r.m13*p.Z,
		Y: r.m21*p.X + r.m22*p.Y + r.m23*p.Z,
		Z: r.m31*p.X + r.m32*p.Y + r.m33*p.Z,
		W: p.W,
	})
}
