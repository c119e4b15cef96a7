// Package noise реализует когерентный шум и граф композиции шумовых функций.
//
// Узлы графа неизменяемы после конструирования: все методы конфигурации
// With* возвращают новое значение узла, а Get2/Get3/Get4 — чистые функции
// от (конфигурация, точка). Поэтому один и тот же узел можно безопасно
// вычислять из нескольких горутин и использовать как вход сразу для
// нескольких родительских узлов.
package noise

import "github.com/annel0/noise-gen/vec"

// Fn — базовый контракт шумовой функции: скалярное значение в точке
// размерности 2, 3 или 4. Генераторы обычно выдают значения примерно
// в диапазоне [-1.0, 1.0], но составные узлы могут выходить за него.
//
// Узел, алгоритм которого не определён для какой-то размерности,
// паникует из соответствующего метода (это ошибка программиста,
// как и пустой стек слоёв у фрактала).
type Fn interface {
	Get2(p vec.Vec2Float) float64
	Get3(p vec.Vec3Float) float64
	Get4(p vec.Vec4Float) float64
}

// Seedable реализуют узлы, выход которых зависит от псевдослучайности.
// WithSeed возвращает новую конфигурацию узла, никогда не мутирует
// существующую.
type Seedable interface {
	Fn
	Seed() uint32
}
