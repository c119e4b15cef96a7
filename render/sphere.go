package render

import (
	"math"

	"github.com/dgravesa/go-parallel/parallel"

	"github.com/annel0/noise-gen/noise"
	"github.com/annel0/noise-gen/vec"
)

// SphereMapBuilder строит карту значений, сэмплируя источник на
// поверхности единичной сферы. Долгота и широта задаются в градусах;
// карта — равнопромежуточная проекция (столбец — долгота, строка —
// широта).
type SphereMapBuilder struct {
	Source   noise.Fn
	Width    int
	Height   int
	SouthLat float64
	NorthLat float64
	WestLon  float64
	EastLon  float64
}

// NewSphereMapBuilder создаёт билдер полной сферы 256x128.
func NewSphereMapBuilder(source noise.Fn) *SphereMapBuilder {
	return &SphereMapBuilder{
		Source:   source,
		Width:    256,
		Height:   128,
		SouthLat: -90.0,
		NorthLat: 90.0,
		WestLon:  -180.0,
		EastLon:  180.0,
	}
}

// WithSize возвращает билдер с другим размером карты.
func (b *SphereMapBuilder) WithSize(width, height int) *SphereMapBuilder {
	c := *b
	c.Width = width
	c.Height = height
	return &c
}

// WithBounds возвращает билдер с другим диапазоном широт и долгот.
func (b *SphereMapBuilder) WithBounds(southLat, northLat, westLon, eastLon float64) *SphereMapBuilder {
	c := *b
	c.SouthLat = southLat
	c.NorthLat = northLat
	c.WestLon = westLon
	c.EastLon = eastLon
	return &c
}

// latLonToXYZ переводит сферические координаты (в градусах) в точку на
// единичной сфере.
func latLonToXYZ(lat, lon float64) vec.Vec3Float {
	r := math.Cos(lat * math.Pi / 180.0)
	return vec.Vec3Float{
		X: r * math.Cos(lon*math.Pi/180.0),
		Y: math.Sin(lat * math.Pi / 180.0),
		Z: r * math.Sin(lon*math.Pi/180.0),
	}
}

// Build вычисляет карту. Паникует при вырожденном диапазоне координат.
func (b *SphereMapBuilder) Build() *NoiseMap {
	if b.SouthLat >= b.NorthLat || b.WestLon >= b.EastLon {
		panic("render: вырожденный диапазон координат сферы")
	}
	m := NewNoiseMap(b.Width, b.Height)

	lonExtent := b.EastLon - b.WestLon
	latExtent := b.NorthLat - b.SouthLat
	lonStep := lonExtent / float64(b.Width)
	latStep := latExtent / float64(b.Height)

	parallel.For(b.Height, func(row, _ int) {
		lat := b.SouthLat + latStep*float64(row)
		for col := 0; col < b.Width; col++ {
			lon := b.WestLon + lonStep*float64(col)
			m.Set(col, row, b.Source.Get3(latLonToXYZ(lat, lon)))
		}
	})
	return m
}
