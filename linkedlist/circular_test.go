package linkedlist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (l *CircularList[T]) values() []T {
	res := make([]T, 0)
	for cur := l.sentinel.next; cur != l.sentinel; cur = cur.next {
		res = append(res, cur.data)
	}
	return res
}

// 沿 prev 方向收集数据（从最后一个到第一个）
func (l *CircularList[T]) backward() []T {
	res := make([]T, 0)
	for cur := l.sentinel.prev; cur != l.sentinel; cur = cur.prev {
		res = append(res, cur.data)
	}
	return res
}

// 检查环的对称性，并确认 next 方向与 prev 方向走过的节点数一致
func requireSymmetric[T comparable](t *testing.T, l *CircularList[T]) {
	t.Helper()
	cur := l.sentinel
	steps := 0
	for {
		require.Same(t, cur, cur.next.prev)
		require.Same(t, cur, cur.prev.next)
		cur = cur.next
		steps++
		if cur == l.sentinel {
			break
		}
	}
	require.Equal(t, steps-1, len(l.backward()))
}

func TestCircularListConstruction(t *testing.T) {
	empty := NewCircularList[int]()
	assert.Equal(t, "[]", empty.String())
	assert.True(t, empty.IsEmpty())
	assert.Same(t, empty.sentinel, empty.sentinel.next)
	assert.Same(t, empty.sentinel, empty.sentinel.prev)

	l := NewCircularList(1, 2, 3)
	assert.Equal(t, "[1 <-> 2 <-> 3]", l.String())
	assert.Equal(t, []int{3, 2, 1}, l.backward())
	requireSymmetric(t, l)
}

func TestCircularListInsertBefore(t *testing.T) {
	l := NewCircularList(1, 2, 3)
	require.NoError(t, l.InsertBefore(9, 1))
	assert.Equal(t, "[1 <-> 9 <-> 2 <-> 3]", l.String())
	require.NoError(t, l.InsertBefore(0, 0))
	require.NoError(t, l.InsertBefore(10, 5))
	assert.Equal(t, "[0 <-> 1 <-> 9 <-> 2 <-> 3 <-> 10]", l.String())
	requireSymmetric(t, l)

	for _, index := range []int{-1, 7, 50} {
		assert.ErrorIs(t, l.InsertBefore(4, index), ErrIndexOutOfBounds, "index %d", index)
	}
	assert.Equal(t, "[0 <-> 1 <-> 9 <-> 2 <-> 3 <-> 10]", l.String())
}

func TestCircularListInsertPlacement(t *testing.T) {
	for n := 0; n < 6; n++ {
		for index := 0; index <= n; index++ {
			start := make([]int, n)
			for i := range start {
				start[i] = i
			}
			l := NewCircularList(start...)
			require.NoError(t, l.InsertBefore(-1, index))
			vals := l.values()
			require.Len(t, vals, n+1)
			assert.Equal(t, -1, vals[index])
			requireSymmetric(t, l)
		}
	}
}

func TestCircularListRemoveAt(t *testing.T) {
	l := NewCircularList(1, 2, 3, 4)
	require.NoError(t, l.RemoveAt(3))
	require.NoError(t, l.RemoveAt(0))
	assert.Equal(t, "[2 <-> 3]", l.String())
	requireSymmetric(t, l)

	assert.ErrorIs(t, l.RemoveAt(2), ErrIndexOutOfBounds)
	assert.ErrorIs(t, l.RemoveAt(-1), ErrIndexOutOfBounds)

	require.NoError(t, l.RemoveAt(1))
	require.NoError(t, l.RemoveAt(0))
	assert.True(t, l.IsEmpty())
	requireSymmetric(t, l)
	assert.ErrorIs(t, l.RemoveAt(0), ErrIndexOutOfBounds)
}

func TestCircularListEnds(t *testing.T) {
	l := NewCircularList[string]()
	_, ok := l.Front()
	assert.False(t, ok)
	_, ok = l.Back()
	assert.False(t, ok)
	_, ok = l.RemoveFromFront()
	assert.False(t, ok)
	_, ok = l.RemoveFromBack()
	assert.False(t, ok)

	l.PushFront("b")
	l.PushFront("a")
	l.PushBack("c")
	requireSymmetric(t, l)
	v, _ := l.Front()
	assert.Equal(t, "a", v)
	v, _ = l.Back()
	assert.Equal(t, "c", v)

	v, ok = l.RemoveFromBack()
	assert.True(t, ok)
	assert.Equal(t, "c", v)
	v, ok = l.RemoveFromFront()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, "[b]", l.String())
	requireSymmetric(t, l)
}

func TestCircularListFIFODrain(t *testing.T) {
	input := []int{4, 4, 2, 7}
	l := NewCircularList(input...)
	out := make([]int, 0)
	for !l.IsEmpty() {
		v, _ := l.RemoveFromFront()
		out = append(out, v)
	}
	assert.Equal(t, input, out)
}

func TestCircularListContainsAndRemove(t *testing.T) {
	l := NewCircularList(1, 2, 3, 2)
	assert.True(t, l.Contains(2))
	assert.True(t, l.Remove(2))
	assert.Equal(t, "[1 <-> 3 <-> 2]", l.String())
	requireSymmetric(t, l)

	before := l.String()
	assert.False(t, l.Remove(5))
	assert.Equal(t, before, l.String())

	assert.True(t, l.Remove(2))
	assert.False(t, l.Contains(2))
	assert.True(t, l.Remove(1))
	assert.True(t, l.Remove(3))
	assert.True(t, l.IsEmpty())
	assert.False(t, l.Remove(3))
	requireSymmetric(t, l)
}

func TestCircularListReverse(t *testing.T) {
	l := NewCircularList(1, 2, 3)
	l.Reverse()
	assert.Equal(t, "[3 <-> 2 <-> 1]", l.String())
	requireSymmetric(t, l)

	empty := NewCircularList[int]()
	empty.Reverse()
	assert.Equal(t, "[]", empty.String())
	requireSymmetric(t, empty)

	single := NewCircularList(7)
	single.Reverse()
	assert.Equal(t, "[7]", single.String())
	requireSymmetric(t, single)
}

// 反转两次等于原表；反转后正向遍历等于原表反向遍历
func TestCircularListReverseRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for n := 0; n < 20; n++ {
		start := make([]int, n)
		for i := range start {
			start[i] = r.Intn(100)
		}
		l := NewCircularList(start...)
		original := l.values()
		backward := l.backward()

		l.Reverse()
		assert.Equal(t, backward, l.values())
		requireSymmetric(t, l)

		l.Reverse()
		assert.Equal(t, original, l.values())
		requireSymmetric(t, l)
	}
}

// 反转不分配新节点：反转前后节点集合不变
func TestCircularListReverseKeepsNodes(t *testing.T) {
	l := NewCircularList(1, 2, 3, 4)
	nodes := make(map[*dlNode[int]]bool)
	for cur := l.sentinel.next; cur != l.sentinel; cur = cur.next {
		nodes[cur] = true
	}
	sentinel := l.sentinel
	l.Reverse()
	assert.Same(t, sentinel, l.sentinel)
	count := 0
	for cur := l.sentinel.next; cur != l.sentinel; cur = cur.next {
		assert.True(t, nodes[cur])
		count++
	}
	assert.Equal(t, len(nodes), count)
}

// 随机修改后环的对称性始终成立
func TestCircularListRandomOps(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	l := NewCircularList[int]()
	model := make([]int, 0)
	for i := 0; i < 2000; i++ {
		v := r.Intn(10)
		switch r.Intn(8) {
		case 0:
			l.PushFront(v)
			model = append([]int{v}, model...)
		case 1:
			l.PushBack(v)
			model = append(model, v)
		case 2:
			if _, ok := l.RemoveFromFront(); ok {
				model = model[1:]
			}
		case 3:
			if _, ok := l.RemoveFromBack(); ok {
				model = model[:len(model)-1]
			}
		case 4:
			index := r.Intn(len(model) + 2)
			if err := l.InsertBefore(v, index); err == nil {
				model = append(model[:index], append([]int{v}, model[index:]...)...)
			}
		case 5:
			index := r.Intn(len(model) + 1)
			if err := l.RemoveAt(index); err == nil {
				model = append(model[:index], model[index+1:]...)
			} else {
				assert.GreaterOrEqual(t, index, len(model))
			}
		case 6:
			if l.Remove(v) {
				for j, m := range model {
					if m == v {
						model = append(model[:j], model[j+1:]...)
						break
					}
				}
			}
		case 7:
			l.Reverse()
			for a, b := 0, len(model)-1; a < b; a, b = a+1, b-1 {
				model[a], model[b] = model[b], model[a]
			}
		}
		requireSymmetric(t, l)
		require.Equal(t, model, l.values())
		require.Equal(t, len(model) == 0, l.IsEmpty())
		for q := 0; q < 10; q++ {
			assert.Equal(t, sliceContains(model, q), l.Contains(q))
		}
	}
}
