package linkedlist

/*

	循环双向链表：只有一个哨兵节点，空表时 sentinel.next == sentinel.prev == sentinel
	任何修改之后，环上每个节点都满足 n.next.prev == n 且 n.prev.next == n

*/

import (
	"fmt"
	"strings"
)

type dlNode[T comparable] struct {
	data T
	next *dlNode[T]
	prev *dlNode[T]
}

type CircularList[T comparable] struct {
	sentinel *dlNode[T]
}

// NewCircularList 创建循环链表，values 按顺序从尾部插入
func NewCircularList[T comparable](values ...T) *CircularList[T] {
	s := &dlNode[T]{}
	s.next = s
	s.prev = s
	l := &CircularList[T]{sentinel: s}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// InsertBefore 在 index 位置的节点之前插入，index 为 0 时插入到最前面
func (l *CircularList[T]) InsertBefore(value T, index int) error {
	if index < 0 {
		return indexError(index)
	}
	cur := l.sentinel
	for i := 0; i < index; i++ {
		if cur.next == l.sentinel {
			return indexError(index)
		}
		cur = cur.next
	}
	n := &dlNode[T]{data: value}
	n.next = cur.next
	n.prev = cur
	// cur.next 必须最后改写，前一步还要通过它找到原后继
	cur.next.prev = n
	cur.next = n
	return nil
}

// RemoveAt 删除 index 位置的节点，前驱直接由 prev 得到
func (l *CircularList[T]) RemoveAt(index int) error {
	if index < 0 || l.IsEmpty() {
		return indexError(index)
	}
	cur := l.sentinel.next
	for i := 0; i < index; i++ {
		if cur.next == l.sentinel {
			return indexError(index)
		}
		cur = cur.next
	}
	l.unlink(cur)
	return nil
}

func (l *CircularList[T]) unlink(n *dlNode[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// PushFront 在哨兵之后添加一个元素
func (l *CircularList[T]) PushFront(value T) {
	n := &dlNode[T]{data: value}
	n.next = l.sentinel.next
	n.prev = l.sentinel
	l.sentinel.next = n
	n.next.prev = n
}

// PushBack 在哨兵之前添加一个元素
func (l *CircularList[T]) PushBack(value T) {
	n := &dlNode[T]{data: value}
	n.next = l.sentinel
	n.prev = l.sentinel.prev
	n.prev.next = n
	l.sentinel.prev = n
}

// Front 返回第一个元素但不移除
func (l *CircularList[T]) Front() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.sentinel.next.data, true
}

// Back 返回最后一个元素但不移除
func (l *CircularList[T]) Back() (T, bool) {
	if l.sentinel.prev == l.sentinel {
		var zero T
		return zero, false
	}
	return l.sentinel.prev.data, true
}

// RemoveFromFront 移除并返回第一个元素，空表时什么也不做
func (l *CircularList[T]) RemoveFromFront() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	first := l.sentinel.next
	l.unlink(first)
	return first.data, true
}

// RemoveFromBack 移除并返回最后一个元素，空表时什么也不做
func (l *CircularList[T]) RemoveFromBack() (T, bool) {
	if l.sentinel.prev == l.sentinel {
		var zero T
		return zero, false
	}
	last := l.sentinel.prev
	l.unlink(last)
	return last.data, true
}

func (l *CircularList[T]) Contains(value T) bool {
	for cur := l.sentinel.next; cur != l.sentinel; cur = cur.next {
		if cur.data == value {
			return true
		}
	}
	return false
}

// Remove 删除第一个等于 value 的节点，返回是否删除
func (l *CircularList[T]) Remove(value T) bool {
	for cur := l.sentinel.next; cur != l.sentinel; cur = cur.next {
		if cur.data == value {
			l.unlink(cur)
			return true
		}
	}
	return false
}

func (l *CircularList[T]) IsEmpty() bool {
	return l.sentinel.next == l.sentinel
}

// Reverse 原地反转，不分配新节点
// 从哨兵开始，每个节点（包括哨兵）交换一次 next 与 prev，
// 交换前记下原来的 next 用于前进，回到哨兵时结束
func (l *CircularList[T]) Reverse() {
	cur := l.sentinel
	for {
		next := cur.next
		cur.next, cur.prev = cur.prev, next
		cur = next
		if cur == l.sentinel {
			return
		}
	}
}

// String 输出形如 [1 <-> 2 <-> 3] 的字符串，空表输出 []
func (l *CircularList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for cur := l.sentinel.next; cur != l.sentinel; cur = cur.next {
		if cur != l.sentinel.next {
			sb.WriteString(" <-> ")
		}
		sb.WriteString(fmt.Sprint(cur.data))
	}
	sb.WriteString("]")
	return sb.String()
}
