package noise

// lerp — линейная интерполяция между a и b; коэффициент не ограничивается
// диапазоном [0,1], значения вне его дают экстраполяцию.
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// quintic — сглаживающая S-кривая пятой степени 6t⁵-15t⁴+10t³.
// Убирает видимые артефакты решётки при интерполяции градиентного шума.
func quintic(t float64) float64 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}

// cubic — кубическая S-кривая 3t²-2t³, используется при сглаживании
// краёв диапазона у Select.
func cubic(t float64) float64 {
	return t * t * (3.0 - 2.0*t)
}

// scaleShift переводит значение из [0,1] обратно в [-1,1].
func scaleShift(value, scale float64) float64 {
	return value*scale - 1.0
}
