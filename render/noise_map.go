// Package render превращает граф шума в плоские и сферические карты
// значений и сохраняет их в изображения.
package render

// NoiseMap — прямоугольная сетка значений шума. Запросы за пределами
// сетки возвращают граничное значение, как при доступе к блокам за
// границей чанка.
type NoiseMap struct {
	width  int
	height int
	border float64
	values []float64
}

// NewNoiseMap создаёт карту width x height, заполненную нулями.
func NewNoiseMap(width, height int) *NoiseMap {
	if width < 1 || height < 1 {
		panic("render: размеры карты должны быть положительными")
	}
	return &NoiseMap{
		width:  width,
		height: height,
		values: make([]float64, width*height),
	}
}

// Width возвращает ширину карты.
func (m *NoiseMap) Width() int { return m.width }

// Height возвращает высоту карты.
func (m *NoiseMap) Height() int { return m.height }

// SetBorderValue задаёт значение, возвращаемое за пределами карты.
func (m *NoiseMap) SetBorderValue(v float64) { m.border = v }

// Get возвращает значение ячейки либо граничное значение.
func (m *NoiseMap) Get(x, y int) float64 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return m.border
	}
	return m.values[y*m.width+x]
}

// Set записывает значение ячейки; запись за пределами карты игнорируется.
func (m *NoiseMap) Set(x, y int, v float64) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.values[y*m.width+x] = v
}

// MinMax возвращает минимальное и максимальное значения карты.
func (m *NoiseMap) MinMax() (minV, maxV float64) {
	minV = m.values[0]
	maxV = m.values[0]
	for _, v := range m.values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return minV, maxV
}
