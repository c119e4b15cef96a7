package noise

import "math"

// LayerBlender сворачивает упорядоченный список значений слоёв фрактала
// в один скаляр. Первый элемент — значение нижнего слоя. Список всегда
// содержит хотя бы один элемент: это гарантирует конструктор фрактала.
type LayerBlender interface {
	Blend(values []float64) float64
}

// PersistenceBlender реализуют стратегии, у которых есть коэффициент
// затухания амплитуды последующих слоёв.
type PersistenceBlender interface {
	LayerBlender
	WithPersistence(persistence float64) LayerBlender
}

// HomogeneousBlender — однородная сумма: вклад слоя i взвешивается
// persistence^i независимо от значений остальных слоёв.
type HomogeneousBlender struct {
	Persistence float64
}

// NewHomogeneousBlender создаёт стратегию с указанным затуханием.
func NewHomogeneousBlender(persistence float64) *HomogeneousBlender {
	return &HomogeneousBlender{Persistence: persistence}
}

// WithPersistence возвращает стратегию с другим затуханием.
func (b *HomogeneousBlender) WithPersistence(persistence float64) LayerBlender {
	return &HomogeneousBlender{Persistence: persistence}
}

// Blend суммирует слои с геометрическим затуханием амплитуды.
func (b *HomogeneousBlender) Blend(values []float64) float64 {
	var result float64
	amplitude := 1.0
	for _, v := range values {
		result += v * amplitude
		amplitude *= b.Persistence
	}
	return result
}

// BillowBlender — вариант однородной суммы, в котором каждое значение
// слоя предварительно сворачивается в 2|v|-1: получаются округлые
// "облачные" формы.
type BillowBlender struct {
	Persistence float64
}

// NewBillowBlender создаёт стратегию с указанным затуханием.
func NewBillowBlender(persistence float64) *BillowBlender {
	return &BillowBlender{Persistence: persistence}
}

// WithPersistence возвращает стратегию с другим затуханием.
func (b *BillowBlender) WithPersistence(persistence float64) LayerBlender {
	return &BillowBlender{Persistence: persistence}
}

// Blend сворачивает значения слоёв и суммирует их с затуханием.
func (b *BillowBlender) Blend(values []float64) float64 {
	var result float64
	amplitude := 1.0
	for _, v := range values {
		result += (2.0*math.Abs(v) - 1.0) * amplitude
		amplitude *= b.Persistence
	}
	return result
}

// HeterogeneousBlender — неоднородная сумма: вклад слоя дополнительно
// масштабируется накопленным результатом, так что детализация растёт
// там, где нижние слои уже дали заметное значение.
type HeterogeneousBlender struct {
	Persistence float64
}

// NewHeterogeneousBlender создаёт стратегию с указанным затуханием.
func NewHeterogeneousBlender(persistence float64) *HeterogeneousBlender {
	return &HeterogeneousBlender{Persistence: persistence}
}

// WithPersistence возвращает стратегию с другим затуханием.
func (b *HeterogeneousBlender) WithPersistence(persistence float64) LayerBlender {
	return &HeterogeneousBlender{Persistence: persistence}
}

// Blend накапливает слои с обратной связью по результату.
func (b *HeterogeneousBlender) Blend(values []float64) float64 {
	result := values[0]
	weight := result
	amplitude := b.Persistence
	for _, v := range values[1:] {
		if weight > 1.0 {
			weight = 1.0
		}
		signal := v * amplitude
		result += weight * signal
		weight *= signal
		amplitude *= b.Persistence
	}
	return result
}

// RidgedBlender — мультифрактал с острыми гребнями: значение слоя
// сворачивается в 1-|v|, возводится в квадрат и взвешивается бегущим
// весом, производным от свёрнутого значения предыдущего слоя.
type RidgedBlender struct {
	Persistence float64
	Attenuation float64
}

// NewRidgedBlender создаёт стратегию с указанным затуханием и
// аттенюацией 2.0.
func NewRidgedBlender(persistence float64) *RidgedBlender {
	return &RidgedBlender{Persistence: persistence, Attenuation: 2.0}
}

// WithPersistence возвращает стратегию с другим затуханием.
func (b *RidgedBlender) WithPersistence(persistence float64) LayerBlender {
	return &RidgedBlender{Persistence: persistence, Attenuation: b.Attenuation}
}

// WithAttenuation возвращает стратегию с другой аттенюацией бегущего веса.
func (b *RidgedBlender) WithAttenuation(attenuation float64) *RidgedBlender {
	return &RidgedBlender{Persistence: b.Persistence, Attenuation: attenuation}
}

// Blend накапливает свёрнутые слои; результат неотрицателен и обычно
// лежит в диапазоне [0, 2].
func (b *RidgedBlender) Blend(values []float64) float64 {
	var result float64
	weight := 1.0
	amplitude := 1.0
	for _, v := range values {
		signal := 1.0 - math.Abs(v)
		signal *= signal
		signal *= weight

		// Вес следующего слоя зависит от свёрнутого значения текущего.
		weight = signal / b.Attenuation
		if weight > 1.0 {
			weight = 1.0
		}
		if weight < 0.0 {
			weight = 0.0
		}

		result += signal * amplitude
		amplitude *= b.Persistence
	}
	return result
}
