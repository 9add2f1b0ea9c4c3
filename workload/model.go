package workload

import (
	"fmt"
	"strings"

	"github.com/joykm/deque-bag-adt/linkedlist"
)

const (
	SinglySeparator   = " -> "
	CircularSeparator = " <-> "
)

// Model 基于切片的参照实现，语义与两种链表一致
type Model struct {
	items []int
	sep   string
}

func NewModel(sep string, values ...int) *Model {
	items := make([]int, len(values))
	copy(items, values)
	return &Model{items: items, sep: sep}
}

func (m *Model) Len() int {
	return len(m.items)
}

func (m *Model) InsertBefore(value int, index int) error {
	if index < 0 || index > len(m.items) {
		return fmt.Errorf("%w: index %d", linkedlist.ErrIndexOutOfBounds, index)
	}
	m.items = append(m.items, 0)
	copy(m.items[index+1:], m.items[index:])
	m.items[index] = value
	return nil
}

func (m *Model) RemoveAt(index int) error {
	if index < 0 || index >= len(m.items) {
		return fmt.Errorf("%w: index %d", linkedlist.ErrIndexOutOfBounds, index)
	}
	m.items = append(m.items[:index], m.items[index+1:]...)
	return nil
}

func (m *Model) PushFront(value int) {
	m.items = append([]int{value}, m.items...)
}

func (m *Model) PushBack(value int) {
	m.items = append(m.items, value)
}

func (m *Model) Front() (int, bool) {
	if len(m.items) == 0 {
		return 0, false
	}
	return m.items[0], true
}

func (m *Model) Back() (int, bool) {
	if len(m.items) == 0 {
		return 0, false
	}
	return m.items[len(m.items)-1], true
}

func (m *Model) RemoveFromFront() (int, bool) {
	v, ok := m.Front()
	if ok {
		m.items = m.items[1:]
	}
	return v, ok
}

func (m *Model) RemoveFromBack() (int, bool) {
	v, ok := m.Back()
	if ok {
		m.items = m.items[:len(m.items)-1]
	}
	return v, ok
}

func (m *Model) Contains(value int) bool {
	for _, v := range m.items {
		if v == value {
			return true
		}
	}
	return false
}

func (m *Model) Remove(value int) bool {
	for i, v := range m.items {
		if v == value {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Model) IsEmpty() bool {
	return len(m.items) == 0
}

func (m *Model) Reverse() {
	for i, j := 0, len(m.items)-1; i < j; i, j = i+1, j-1 {
		m.items[i], m.items[j] = m.items[j], m.items[i]
	}
}

func (m *Model) String() string {
	parts := make([]string, len(m.items))
	for i, v := range m.items {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, m.sep) + "]"
}

var (
	_ linkedlist.Deque[int] = (*Model)(nil)
	_ linkedlist.Reverser   = (*Model)(nil)
)
