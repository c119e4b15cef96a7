package noise

import "math/rand"

const permTableSize = 256

// PermutationTable — детерминированная перестановка 0..255, удвоенная до
// 512 элементов, чтобы вложенные индексации не требовали взятия остатка.
// Одинаковый сид всегда даёт побайтово одинаковую таблицу; таблица
// неизменяема после создания и принадлежит своему генератору.
type PermutationTable struct {
	seed   uint32
	values [permTableSize * 2]uint8
}

// NewPermutationTable строит таблицу из 32-битного сида детерминированной
// тасовкой Фишера–Йетса на локальном генераторе случайных чисел.
func NewPermutationTable(seed uint32) *PermutationTable {
	t := &PermutationTable{seed: seed}

	var source [permTableSize]uint8
	for i := range source {
		source[i] = uint8(i)
	}

	// Локальный детерминированный генератор, как при генерации чанков:
	// никакого глобального состояния.
	rng := rand.New(rand.NewSource(int64(seed)))
	for i := permTableSize - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		source[i], source[j] = source[j], source[i]
	}

	for i := 0; i < permTableSize; i++ {
		t.values[i] = source[i]
		t.values[i+permTableSize] = source[i]
	}
	return t
}

// Seed возвращает сид, из которого построена таблица.
func (t *PermutationTable) Seed() uint32 {
	return t.seed
}

// Hash1 сворачивает одну целочисленную координату решётки в байт.
func (t *PermutationTable) Hash1(x int64) uint8 {
	return t.values[uint8(x)]
}

// Hash2 сворачивает две координаты решётки вложенными выборками из таблицы.
func (t *PermutationTable) Hash2(x, y int64) uint8 {
	return t.values[int(t.values[uint8(x)])+int(uint8(y))]
}

// Hash3 сворачивает три координаты решётки.
func (t *PermutationTable) Hash3(x, y, z int64) uint8 {
	return t.values[int(t.values[int(t.values[uint8(x)])+int(uint8(y))])+int(uint8(z))]
}

// Hash4 сворачивает четыре координаты решётки.
func (t *PermutationTable) Hash4(x, y, z, w int64) uint8 {
	return t.values[int(t.values[int(t.values[int(t.values[uint8(x)])+int(uint8(y))])+int(uint8(z))])+int(uint8(w))]
}
