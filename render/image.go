package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// ImageRenderer раскрашивает карту значений градиентом и сохраняет её в
// PNG-файл.
type ImageRenderer struct {
	Gradient *ColorGradient
}

// NewImageRenderer создаёт рендерер с градациями серого.
func NewImageRenderer() *ImageRenderer {
	return &ImageRenderer{Gradient: NewGrayscaleGradient()}
}

// WithGradient возвращает рендерер с другим градиентом.
func (r *ImageRenderer) WithGradient(g *ColorGradient) *ImageRenderer {
	return &ImageRenderer{Gradient: g}
}

// Render переводит карту значений в изображение.
func (r *ImageRenderer) Render(m *NoiseMap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			img.SetRGBA(x, y, r.Gradient.GetColor(m.Get(x, y)))
		}
	}
	return img
}

// WritePNG рендерит карту и записывает её в файл.
func (r *ImageRenderer) WritePNG(path string, m *NoiseMap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("создание файла изображения: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, r.Render(m)); err != nil {
		return fmt.Errorf("кодирование PNG: %w", err)
	}
	return nil
}
