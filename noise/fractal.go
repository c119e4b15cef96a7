package noise

import (
	"math"
	"math/rand"

	"github.com/annel0/noise-gen/vec"
)

// Параметры фрактала по умолчанию.
const (
	DefaultFractalSeed = 0xD0786B3E
	DefaultLayers      = 6
	DefaultPersistence = 0.5
	MaxLayers          = 32
)

// DefaultLacunarity — шаг частоты между слоями по умолчанию. Иррациональное
// значение сбивает совпадение узлов решётки соседних слоёв.
var DefaultLacunarity = math.Pi * 2.0 / 3.0

// LayerFactory строит источник одного слоя фрактала по его сиду.
type LayerFactory func(seed uint32) Fn

// Fractal суммирует несколько слоёв одного источника, вычисленных на
// возрастающих частотах. Частоту между слоями повышает преобразование
// точки (по умолчанию равномерное масштабирование на лакунарность),
// а способ свёртки значений слоёв задаёт LayerBlender.
//
// Сид слоя k зависит только от сида фрактала и номера k, поэтому смена
// числа слоёв не меняет уже построенные нижние слои.
type Fractal struct {
	layers    []Fn
	factory   LayerFactory
	transform PointTransform
	blender   LayerBlender
	frequency float64
	seed      uint32
}

// NewFractal создаёт фрактал с указанным числом слоёв и фабрикой
// источников. Паникует, если layers < 1 или layers > MaxLayers.
func NewFractal(layers int, factory LayerFactory) *Fractal {
	f := &Fractal{
		factory:   factory,
		transform: NewUniformScale(DefaultLacunarity),
		blender:   NewHomogeneousBlender(DefaultPersistence),
		frequency: 1.0,
		seed:      DefaultFractalSeed,
	}
	f.rebuild(layers)
	return f
}

// layerSeeds выдаёт сиды первых n слоёв: это префикс детерминированной
// последовательности, порождённой сидом фрактала.
func layerSeeds(seed uint32, n int) []uint32 {
	rng := rand.New(rand.NewSource(int64(seed)))
	seeds := make([]uint32, n)
	for i := range seeds {
		seeds[i] = rng.Uint32()
	}
	return seeds
}

func (f *Fractal) rebuild(layers int) {
	if layers < 1 {
		panic("noise: фрактал без слоёв")
	}
	if layers > MaxLayers {
		panic("noise: слишком много слоёв фрактала")
	}
	seeds := layerSeeds(f.seed, layers)
	f.layers = make([]Fn, layers)
	for i, s := range seeds {
		f.layers[i] = f.factory(s)
	}
}

// Seed возвращает сид фрактала.
func (f *Fractal) Seed() uint32 { return f.seed }

// Layers возвращает число слоёв.
func (f *Fractal) Layers() int { return len(f.layers) }

// WithSeed возвращает фрактал с другим сидом; все слои пересоздаются.
func (f *Fractal) WithSeed(seed uint32) *Fractal {
	if seed == f.seed {
		return f
	}
	c := *f
	c.seed = seed
	c.rebuild(len(f.layers))
	return &c
}

// WithLayers возвращает фрактал с другим числом слоёв. Нижние слои
// сохраняют свои сиды. Паникует при n < 1 и n > MaxLayers.
func (f *Fractal) WithLayers(n int) *Fractal {
	if n == len(f.layers) {
		return f
	}
	c := *f
	c.rebuild(n)
	return &c
}

// WithFunction возвращает фрактал с другой фабрикой слоёв.
func (f *Fractal) WithFunction(factory LayerFactory) *Fractal {
	c := *f
	c.factory = factory
	c.rebuild(len(f.layers))
	return &c
}

// WithFrequency возвращает фрактал с другой базовой частотой.
func (f *Fractal) WithFrequency(frequency float64) *Fractal {
	c := *f
	c.frequency = frequency
	return &c
}

// WithTransform возвращает фрактал с другим межслойным преобразованием
// точки.
func (f *Fractal) WithTransform(transform PointTransform) *Fractal {
	c := *f
	c.transform = transform
	return &c
}

// WithLacunarity — сокращение для равномерного масштабирования между
// слоями.
func (f *Fractal) WithLacunarity(lacunarity float64) *Fractal {
	return f.WithTransform(NewUniformScale(lacunarity))
}

// WithBlender возвращает фрактал с другой стратегией свёртки слоёв.
func (f *Fractal) WithBlender(blender LayerBlender) *Fractal {
	c := *f
	c.blender = blender
	return &c
}

// WithPersistence возвращает фрактал, чья стратегия свёртки использует
// другое затухание. Паникует, если текущая стратегия затухания не имеет.
func (f *Fractal) WithPersistence(persistence float64) *Fractal {
	pb, ok := f.blender.(PersistenceBlender)
	if !ok {
		panic("noise: стратегия свёртки не поддерживает затухание")
	}
	return f.WithBlender(pb.WithPersistence(persistence))
}

// Get2 вычисляет фрактал в 2D-точке.
func (f *Fractal) Get2(p vec.Vec2Float) float64 {
	p = p.Mul(f.frequency)
	values := make([]float64, len(f.layers))
	for i, layer := range f.layers {
		values[i] = layer.Get2(p)
		p = f.transform.Apply2(p)
	}
	return f.blender.Blend(values)
}

// Get3 вычисляет фрактал в 3D-точке.
func (f *Fractal) Get3(p vec.Vec3Float) float64 {
	p = p.Mul(f.frequency)
	values := make([]float64, len(f.layers))
	for i, layer := range f.layers {
		values[i] = layer.Get3(p)
		p = f.transform.Apply3(p)
	}
	return f.blender.Blend(values)
}

// Get4 вычисляет фрактал в 4D-точке.
func (f *Fractal) Get4(p vec.Vec4Float) float64 {
	p = p.Mul(f.frequency)
	values := make([]float64, len(f.layers))
	for i, layer := range f.layers {
		values[i] = layer.Get4(p)
		p = f.transform.Apply4(p)
	}
	return f.blender.Blend(values)
}

func perlinFactory(seed uint32) Fn { return NewPerlin(seed) }

// NewFractalPerlin — классический fBm на слоях Перлина.
func NewFractalPerlin() *Fractal {
	return NewFractal(DefaultLayers, perlinFactory)
}

// NewBillow — fBm со свёрнутыми слоями: мягкие округлые формы.
func NewBillow() *Fractal {
	return NewFractal(DefaultLayers, perlinFactory).
		WithBlender(NewBillowBlender(DefaultPersistence))
}

// NewBasicMulti — неоднородный мультифрактал: детализация растёт там,
// где нижние слои уже дали заметное значение.
func NewBasicMulti() *Fractal {
	return NewFractal(DefaultLayers, perlinFactory).
		WithBlender(NewHeterogeneousBlender(DefaultPersistence))
}

// NewHybridMulti — синоним NewBasicMulti, сохранён для читаемости кода,
// использующего устоявшееся имя алгоритма.
func NewHybridMulti() *Fractal {
	return NewBasicMulti()
}

// NewRidgedMulti — мультифрактал с острыми гребнями на слоях Перлина.
func NewRidgedMulti() *Fractal {
	return NewFractal(DefaultLayers, perlinFactory).
		WithBlender(NewRidgedBlender(DefaultPersistence))
}
