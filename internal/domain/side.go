package domain

// Side представляет берег, у которого находится паром или транспорт
type Side string

const (
	SideLeft  Side = "LEFT"  // Левый берег
	SideRight Side = "RIGHT" // Правый берег
)

// Sides - все допустимые берега в фиксированном порядке (индекс 0 - LEFT)
var Sides = [2]Side{SideLeft, SideRight}

// IsValid проверяет, что значение - один из двух берегов
func (s Side) IsValid() bool {
	return s == SideLeft || s == SideRight
}

// Opposite возвращает противоположный берег
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

func (s Side) String() string {
	return string(s)
}
