package linkedlist

/*

	单向链表：head 与 tail 两个哨兵节点在构造时分配，不保存数据，也不会被删除
	所有真实节点都位于 head 与 tail 之间，head.next 为 tail 时链表为空

*/

import (
	"fmt"
	"strings"
)

type slNode[T comparable] struct {
	data T
	next *slNode[T]
}

type LinkedList[T comparable] struct {
	head *slNode[T]
	tail *slNode[T]
}

// NewLinkedList 创建链表，values 按顺序从尾部插入
func NewLinkedList[T comparable](values ...T) *LinkedList[T] {
	l := &LinkedList[T]{
		head: &slNode[T]{},
		tail: &slNode[T]{},
	}
	l.head.next = l.tail
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// InsertBefore 在 index 位置的节点之前插入，index 为 0 时插入到最前面
func (l *LinkedList[T]) InsertBefore(value T, index int) error {
	if index < 0 {
		return indexError(index)
	}
	cur := l.head
	for i := 0; i < index; i++ {
		if cur.next == l.tail {
			return indexError(index)
		}
		cur = cur.next
	}
	n := &slNode[T]{data: value}
	// 先接上后继，再改 cur.next，否则会丢掉后半段
	n.next = cur.next
	cur.next = n
	return nil
}

// RemoveAt 删除 index 位置的节点
func (l *LinkedList[T]) RemoveAt(index int) error {
	if index < 0 || l.IsEmpty() {
		return indexError(index)
	}
	prev, cur := l.head, l.head.next
	for i := 0; i < index; i++ {
		if cur.next == l.tail {
			return indexError(index)
		}
		prev, cur = cur, cur.next
	}
	prev.next = cur.next
	return nil
}

// PushFront 在 head 之后添加一个元素
func (l *LinkedList[T]) PushFront(value T) {
	n := &slNode[T]{data: value}
	n.next = l.head.next
	l.head.next = n
}

// PushBack 在 tail 之前添加一个元素
func (l *LinkedList[T]) PushBack(value T) {
	cur := l.head
	for cur.next != l.tail {
		cur = cur.next
	}
	n := &slNode[T]{data: value}
	n.next = cur.next
	cur.next = n
}

// Front 返回第一个元素但不移除
func (l *LinkedList[T]) Front() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.head.next.data, true
}

// Back 返回最后一个元素但不移除
func (l *LinkedList[T]) Back() (T, bool) {
	cur := l.head
	for cur.next != l.tail {
		cur = cur.next
	}
	if cur == l.head {
		var zero T
		return zero, false
	}
	return cur.data, true
}

// RemoveFromFront 移除并返回第一个元素，空表时什么也不做
func (l *LinkedList[T]) RemoveFromFront() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	first := l.head.next
	l.head.next = first.next
	return first.data, true
}

// RemoveFromBack 移除并返回最后一个元素，需要同步维护前驱
func (l *LinkedList[T]) RemoveFromBack() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	prev, cur := l.head, l.head.next
	for cur.next != l.tail {
		prev, cur = cur, cur.next
	}
	prev.next = cur.next
	return cur.data, true
}

func (l *LinkedList[T]) Contains(value T) bool {
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		if cur.data == value {
			return true
		}
	}
	return false
}

// Remove 删除第一个等于 value 的节点，返回是否删除
func (l *LinkedList[T]) Remove(value T) bool {
	for prev, cur := l.head, l.head.next; cur != l.tail; prev, cur = cur, cur.next {
		if cur.data == value {
			prev.next = cur.next
			return true
		}
	}
	return false
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.head.next == l.tail
}

// String 输出形如 [1 -> 2 -> 3] 的字符串，空表输出 []
func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		if cur != l.head.next {
			sb.WriteString(" -> ")
		}
		sb.WriteString(fmt.Sprint(cur.data))
	}
	sb.WriteString("]")
	return sb.String()
}
