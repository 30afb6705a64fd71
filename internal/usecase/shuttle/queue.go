package shuttle

import (
	"github.com/frontandrew/ferry/internal/domain"
)

// Queue - очередь ожидающих погрузки, строго FIFO
type Queue struct {
	items []*domain.Vehicle
}

// Push ставит транспорт в конец очереди
func (q *Queue) Push(v *domain.Vehicle) {
	q.items = append(q.items, v)
}

// Peek возвращает первого в очереди или nil
func (q *Queue) Peek() *domain.Vehicle {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

// Pop извлекает первого в очереди или возвращает nil
func (q *Queue) Pop() *domain.Vehicle {
	if len(q.items) == 0 {
		return nil
	}
	v := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return v
}

func (q *Queue) Len() int {
	return len(q.items)
}

func (q *Queue) IsEmpty() bool {
	return len(q.items) == 0
}

// Snapshot возвращает копию очереди в порядке обслуживания
func (q *Queue) Snapshot() []*domain.Vehicle {
	out := make([]*domain.Vehicle, len(q.items))
	copy(out, q.items)
	return out
}

// SideQueues - очереди левого и правого берега
type SideQueues struct {
	left  Queue
	right Queue
}

// NewSideQueues раскладывает транспорт по очередям согласно CurrentSide, сохраняя порядок
func NewSideQueues(vehicles []*domain.Vehicle) *SideQueues {
	q := &SideQueues{}
	for _, v := range vehicles {
		q.For(v.CurrentSide).Push(v)
	}
	return q
}

// For возвращает очередь берега side
func (q *SideQueues) For(side domain.Side) *Queue {
	if side == domain.SideLeft {
		return &q.left
	}
	return &q.right
}

// IsEmpty - обе очереди пусты
func (q *SideQueues) IsEmpty() bool {
	return q.left.IsEmpty() && q.right.IsEmpty()
}

// Len возвращает общее количество ожидающих
func (q *SideQueues) Len() int {
	return q.left.Len() + q.right.Len()
}
