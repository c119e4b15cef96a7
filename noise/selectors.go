package noise

import "github.com/annel0/noise-gen/vec"

// Blend линейно интерполирует между двумя источниками, используя значение
// третьего (управляющего) источника как коэффициент. Коэффициент не
// ограничивается [0,1]: значения вне диапазона экстраполируют.
type Blend struct {
	Source1 Fn
	Source2 Fn
	Control Fn
}

// NewBlend создаёт узел смешивания.
func NewBlend(source1, source2, control Fn) *Blend {
	return &Blend{Source1: source1, Source2: source2, Control: control}
}

// Get2 возвращает смешанное значение.
func (b *Blend) Get2(p vec.Vec2Float) float64 {
	return lerp(b.Source1.Get2(p), b.Source2.Get2(p), b.Control.Get2(p))
}

// Get3 возвращает смешанное значение.
func (b *Blend) Get3(p vec.Vec3Float) float64 {
	return lerp(b.Source1.Get3(p), b.Source2.Get3(p), b.Control.Get3(p))
}

// Get4 возвращает смешанное значение.
func (b *Blend) Get4(p vec.Vec4Float) float64 {
	return lerp(b.Source1.Get4(p), b.Source2.Get4(p), b.Control.Get4(p))
}

// Select выбирает значение одного из двух источников по значению
// управляющего: внутри диапазона [Lower, Upper] выдаётся Source2, вне —
// Source1. При ненулевом Falloff переходы через края диапазона
// сглаживаются кубической S-кривой; при Falloff == 0 переключение
// жёсткое, причём сама граница относится к Source2.
type Select struct {
	Source1 Fn
	Source2 Fn
	Control Fn
	Lower   float64
	Upper   float64
	Falloff float64
}

// NewSelect создаёт узел с диапазоном [0, 1] и без сглаживания.
func NewSelect(source1, source2, control Fn) *Select {
	return &Select{
		Source1: source1,
		Source2: source2,
		Control: control,
		Lower:   0.0,
		Upper:   1.0,
	}
}

// WithBounds возвращает узел с другим диапазоном выбора. Lower > Upper
// принимается и инвертирует эффективный диапазон.
func (s *Select) WithBounds(lower, upper float64) *Select {
	c := *s
	c.Lower = lower
	c.Upper = upper
	return &c
}

// WithFalloff возвращает узел с другим сглаживанием краёв.
func (s *Select) WithFalloff(falloff float64) *Select {
	c := *s
	c.Falloff = falloff
	return &c
}

// choose реализует выбор по уже вычисленному управляющему значению;
// сами источники вычисляются лениво через замыкания.
func (s *Select) choose(control float64, source1, source2 func() float64) float64 {
	if s.Falloff > 0.0 {
		switch {
		case control < s.Lower-s.Falloff:
			return source1()
		case control < s.Lower+s.Falloff:
			// Вход в диапазон.
			alpha := cubic((control - (s.Lower - s.Falloff)) / (2 * s.Falloff))
			return lerp(source1(), source2(), alpha)
		case control < s.Upper-s.Falloff:
			return source2()
		case control < s.Upper+s.Falloff:
			// Выход из диапазона.
			alpha := cubic((control - (s.Upper - s.Falloff)) / (2 * s.Falloff))
			return lerp(source2(), source1(), alpha)
		default:
			return source1()
		}
	}
	if control < s.Lower || control > s.Upper {
		return source1()
	}
	return source2()
}

// Get2 возвращает выбранное значение.
func (s *Select) Get2(p vec.Vec2Float) float64 {
	return s.choose(s.Control.Get2(p),
		func() float64 { return s.Source1.Get2(p) },
		func() float64 { return s.Source2.Get2(p) })
}

// Get3 возвращает выбранное значение.
func (s *Select) Get3(p vec.Vec3Float) float64 {
	return s.choose(s.Control.Get3(p),
		func() float64 { return s.Source1.Get3(p) },
		func() float64 { return s.Source2.Get3(p) })
}

// Get4 возвращает выбранное значение.
func (s *Select) Get4(p vec.Vec4Float) float64 {
	return s.choose(s.Control.Get4(p),
		func() float64 { return s.Source1.Get4(p) },
		func() float64 { return s.Source2.Get4(p) })
}
