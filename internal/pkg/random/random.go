package random

import (
	"math/rand"
	"time"
)

// Chooser - источник случайных решений симуляции.
// Ядру нужно только "выбрать один из N равновероятно".
type Chooser interface {
	// Intn возвращает число из [0, n)
	Intn(n int) int

	// Shuffle перемешивает n элементов через swap
	Shuffle(n int, swap func(i, j int))
}

// New создает Chooser на основе math/rand.
// seed == 0 означает недетерминированный запуск.
func New(seed int64) Chooser {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
