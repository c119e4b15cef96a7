package noise

import (
	"testing"

	"github.com/annel0/noise-gen/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerSeedsArePrefixStable(t *testing.T) {
	// Сиды первых слоёв не зависят от общего числа слоёв
	short := layerSeeds(1234, 3)
	long := layerSeeds(1234, 8)
	assert.Equal(t, short, long[:3], "Префикс последовательности сидов должен быть стабилен")

	// Разные сиды фрактала — разные последовательности
	other := layerSeeds(1235, 3)
	assert.NotEqual(t, short, other)
}

func TestFractalWithLayersKeepsLowerLayers(t *testing.T) {
	f := NewFractalPerlin()
	g := f.WithLayers(3)

	require.Equal(t, 3, g.Layers())
	require.Equal(t, DefaultLayers, f.Layers(), "Исходный фрактал не изменился")

	for i := 0; i < 3; i++ {
		fs := f.layers[i].(Seedable).Seed()
		gs := g.layers[i].(Seedable).Seed()
		assert.Equal(t, fs, gs, "Нижний слой %d сменил сид при изменении числа слоёв", i)
	}
}

func TestFractalPanicsOnBadLayerCount(t *testing.T) {
	assert.Panics(t, func() { NewFractal(0, perlinFactory) })
	assert.Panics(t, func() { NewFractalPerlin().WithLayers(0) })
	assert.Panics(t, func() { NewFractalPerlin().WithLayers(MaxLayers + 1) })
}

func TestFractalSingleLayerEqualsItsSource(t *testing.T) {
	f := NewFractal(1, perlinFactory)
	seed := layerSeeds(DefaultFractalSeed, 1)[0]
	raw := NewPerlin(seed)

	// Один слой, однородная свёртка, частота 1: фрактал равен слою
	p := vec.Vec2Float{X: 0.6, Y: 1.4}
	assert.Equal(t, raw.Get2(p), f.Get2(p))

	p3 := vec.Vec3Float{X: 0.6, Y: 1.4, Z: -0.2}
	assert.Equal(t, raw.Get3(p3), f.Get3(p3))
}

func TestFractalDeterminismAndImmutability(t *testing.T) {
	f1 := NewFractalPerlin()
	f2 := NewFractalPerlin()

	p := vec.Vec2Float{X: 0.35, Y: 0.81}
	assert.Equal(t, f1.Get2(p), f2.Get2(p))

	// Билдеры не трогают исходный фрактал
	before := f1.Get2(p)
	_ = f1.WithSeed(999).WithLayers(2).WithFrequency(4.0)
	assert.Equal(t, before, f1.Get2(p))

	// Тот же сид возвращает тот же экземпляр
	assert.Same(t, f1, f1.WithSeed(f1.Seed()))
}

func TestFractalFrequencyEquivalence(t *testing.T) {
	f := NewFractalPerlin()
	scaled := f.WithFrequency(2.0)

	p := vec.Vec2Float{X: 0.25, Y: -0.75}
	assert.Equal(t, f.Get2(p.Mul(2.0)), scaled.Get2(p))
}

func TestFractalWithPersistencePanicsOnFixedBlender(t *testing.T) {
	// Свёртка без затухания не принимает WithPersistence
	f := NewFractalPerlin().WithBlender(fixedBlender{})
	assert.Panics(t, func() { f.WithPersistence(0.7) })
}

type fixedBlender struct{}

func (fixedBlender) Blend(values []float64) float64 { return values[0] }

func TestHomogeneousBlender(t *testing.T) {
	b := NewHomogeneousBlender(0.5)

	// 1*1 + 1*0.5 + 1*0.25
	assert.InDelta(t, 1.75, b.Blend([]float64{1, 1, 1}), 1e-15)
	assert.InDelta(t, 0.5, b.Blend([]float64{0.5}), 1e-15)
}

func TestBillowBlender(t *testing.T) {
	b := NewBillowBlender(0.5)

	// |0.5|*2-1 = 0, |-0.5|*2-1 = 0
	assert.InDelta(t, 0.0, b.Blend([]float64{0.5}), 1e-15)
	assert.InDelta(t, 0.0, b.Blend([]float64{-0.5}), 1e-15)
	// |1|*2-1 = 1, второй слой |0|*2-1 = -1 с весом 0.5
	assert.InDelta(t, 0.5, b.Blend([]float64{1, 0}), 1e-15)
}

func TestHeterogeneousBlender(t *testing.T) {
	b := NewHeterogeneousBlender(0.5)

	// Один слой проходит как есть
	assert.Equal(t, 0.3, b.Blend([]float64{0.3}))

	// Нулевой нижний слой обнуляет вклад верхних
	assert.Equal(t, 0.0, b.Blend([]float64{0, 1, 1}))

	// values = [1, 1]: weight=1, signal=0.5, result=1.5
	assert.InDelta(t, 1.5, b.Blend([]float64{1, 1}), 1e-15)
}

func TestRidgedBlender(t *testing.T) {
	b := NewRidgedBlender(0.5)

	// (1-|0|)^2 = 1 с начальным весом 1
	assert.InDelta(t, 1.0, b.Blend([]float64{0}), 1e-15)

	// Пики источника сворачиваются в нули гребней
	assert.InDelta(t, 0.0, b.Blend([]float64{1}), 1e-15)
	assert.InDelta(t, 0.0, b.Blend([]float64{-1}), 1e-15)

	// Два нулевых слоя: 1 + 0.5*0.5 (вес второго = 1/2)
	assert.InDelta(t, 1.25, b.Blend([]float64{0, 0}), 1e-15)

	// Аттенюация 1 снимает ослабление веса
	loose := b.WithAttenuation(1.0)
	assert.InDelta(t, 1.5, loose.Blend([]float64{0, 0}), 1e-15)
}

func TestFractalPresetsDiffer(t *testing.T) {
	p := vec.Vec2Float{X: 0.42, Y: 0.13}

	fbm := NewFractalPerlin().Get2(p)
	billow := NewBillow().Get2(p)
	ridged := NewRidgedMulti().Get2(p)
	multi := NewBasicMulti().Get2(p)

	assert.NotEqual(t, fbm, billow)
	assert.NotEqual(t, fbm, ridged)
	assert.NotEqual(t, fbm, multi)
	assert.Equal(t, multi, NewHybridMulti().Get2(p), "HybridMulti — синоним BasicMulti")
}
