// Package presets собирает готовые графы шума для CLI и тайл-сервера.
package presets

import (
	"fmt"
	"sort"

	"github.com/annel0/noise-gen/noise"
)

// Params — общие параметры пресета.
type Params struct {
	Seed      uint32
	Frequency float64
	Layers    int
}

type builder func(p Params) noise.Fn

var registry = map[string]builder{
	"perlin":       buildPerlin,
	"opensimplex":  buildOpenSimplex,
	"supersimplex": buildSuperSimplex,
	"value":        buildValue,
	"cells":        buildCells,
	"checkerboard": buildCheckerboard,
	"fbm":          buildFbm,
	"billow":       buildBillow,
	"ridged":       buildRidged,
	"wood":         buildWood,
	"granite":      buildGranite,
	"terrain":      buildTerrain,
}

// Names возвращает отсортированный список имён пресетов.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build собирает граф шума по имени пресета.
func Build(name string, p Params) (noise.Fn, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("неизвестный пресет %q (доступны: %v)", name, Names())
	}
	if p.Frequency <= 0 {
		p.Frequency = 1.0
	}
	if p.Layers < 1 {
		p.Layers = noise.DefaultLayers
	}
	return b(p), nil
}

func buildPerlin(p Params) noise.Fn {
	return noise.NewScalePoint(noise.NewPerlin(p.Seed)).WithScale(p.Frequency)
}

func buildOpenSimplex(p Params) noise.Fn {
	return noise.NewScalePoint(noise.NewOpenSimplex(p.Seed)).WithScale(p.Frequency)
}

func buildSuperSimplex(p Params) noise.Fn {
	return noise.NewScalePoint(noise.NewSuperSimplex(p.Seed)).WithScale(p.Frequency)
}

func buildValue(p Params) noise.Fn {
	return noise.NewScalePoint(noise.NewValue(p.Seed)).WithScale(p.Frequency)
}

func buildCells(p Params) noise.Fn {
	return noise.NewWorley(p.Seed).WithFrequency(p.Frequency)
}

func buildCheckerboard(p Params) noise.Fn {
	return noise.NewCheckerboard(0)
}

func buildFbm(p Params) noise.Fn {
	return noise.NewFractalPerlin().
		WithSeed(p.Seed).
		WithLayers(p.Layers).
		WithFrequency(p.Frequency)
}

func buildBillow(p Params) noise.Fn {
	return noise.NewBillow().
		WithSeed(p.Seed).
		WithLayers(p.Layers).
		WithFrequency(p.Frequency)
}

func buildRidged(p Params) noise.Fn {
	return noise.NewRidgedMulti().
		WithSeed(p.Seed).
		WithLayers(p.Layers).
		WithFrequency(p.Frequency)
}

// buildWood — годовые кольца с волокнами: кольца вдоль оси z, зерно из
// сплющенного fbm, два слоя турбулентности и наклон ствола.
func buildWood(p Params) noise.Fn {
	baseWood := noise.NewCylinders().WithFrequency(16.0)

	grainNoise := noise.NewFractalPerlin().
		WithSeed(p.Seed).
		WithLayers(3).
		WithFrequency(48.0).
		WithLacunarity(2.20703125)
	scaledGrain := noise.NewScalePoint(grainNoise).WithYScale(0.25)
	grain := noise.NewScaleBias(scaledGrain).WithScale(0.25).WithBias(0.125)

	combined := noise.Add(baseWood, grain)
	perturbed := noise.NewTurbulence(combined).
		WithSeed(p.Seed + 1).
		WithFrequency(4.0).
		WithPower(1.0 / 256.0).
		WithRoughness(4)

	translated := noise.NewTranslatePoint(perturbed).WithZTranslation(1.48)
	rotated := noise.NewRotatePoint(translated).WithAngles(84.0, 0, 0)

	return noise.NewTurbulence(rotated).
		WithSeed(p.Seed + 2).
		WithFrequency(2.0).
		WithPower(1.0 / 64.0).
		WithRoughness(4)
}

// buildGranite — зернистый камень: billow-основа плюс инвертированные
// ячейки Уорли как вкрапления, всё под сильной турбулентностью.
func buildGranite(p Params) noise.Fn {
	primary := noise.NewBillow().
		WithSeed(p.Seed).
		WithLayers(6).
		WithFrequency(8.0).
		WithPersistence(0.625).
		WithLacunarity(2.18359375)

	grains := noise.NewWorley(p.Seed + 1).
		WithFrequency(16.0).
		WithReturnType(noise.ReturnDistance)
	scaledGrains := noise.NewScaleBias(grains).WithScale(-0.5).WithBias(0.0)

	combined := noise.Add(primary, scaledGrains)

	return noise.NewTurbulence(combined).
		WithSeed(p.Seed + 2).
		WithFrequency(4.0).
		WithPower(1.0 / 8.0).
		WithRoughness(6)
}

// buildTerrain — рельеф: гребнистые горы и пологие равнины, выбранные
// сглаженным Select по медленному fbm-контролю.
func buildTerrain(p Params) noise.Fn {
	mountains := noise.NewRidgedMulti().
		WithSeed(p.Seed).
		WithLayers(p.Layers).
		WithFrequency(p.Frequency * 2.0)
	// Гребни неотрицательны; приводим к общей шкале [-1,1]
	scaledMountains := noise.NewScaleBias(mountains).WithScale(1.0).WithBias(-1.0)

	plains := noise.NewBillow().
		WithSeed(p.Seed + 1).
		WithLayers(p.Layers).
		WithFrequency(p.Frequency * 0.5)
	scaledPlains := noise.NewScaleBias(plains).WithScale(0.125).WithBias(-0.25)

	control := noise.NewFractalPerlin().
		WithSeed(p.Seed + 2).
		WithLayers(p.Layers).
		WithFrequency(p.Frequency * 0.25)

	return noise.NewSelect(scaledPlains, scaledMountains, noise.NewCache(control)).
		WithBounds(0.0, 1000.0).
		WithFalloff(0.25)
}
