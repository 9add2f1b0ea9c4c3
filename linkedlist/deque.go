package linkedlist

// Deque 表示一个双端队列，LinkedList 与 CircularList 都实现了它
type Deque[T comparable] interface {
	InsertBefore(value T, index int) error
	RemoveAt(index int) error
	PushFront(value T)
	PushBack(value T)
	Front() (T, bool)
	Back() (T, bool)
	RemoveFromFront() (T, bool)
	RemoveFromBack() (T, bool)
	Contains(value T) bool
	Remove(value T) bool
	IsEmpty() bool
	String() string
}

// Reverser 支持原地反转
type Reverser interface {
	Reverse()
}

var (
	_ Deque[int] = (*LinkedList[int])(nil)
	_ Deque[int] = (*CircularList[int])(nil)
	_ Reverser   = (*CircularList[int])(nil)
)
