package workload

import (
	"fmt"
	"math/rand"
	"time"
)

type OpKind int

const (
	OpInsertBefore OpKind = iota
	OpRemoveAt
	OpPushFront
	OpPushBack
	OpPopFront
	OpPopBack
	OpPeekFront
	OpPeekBack
	OpContains
	OpRemove
	OpReverse
	opKindNum
)

var opKindNames = [...]string{
	"InsertBefore",
	"RemoveAt",
	"PushFront",
	"PushBack",
	"PopFront",
	"PopBack",
	"PeekFront",
	"PeekBack",
	"Contains",
	"Remove",
	"Reverse",
}

func (k OpKind) String() string {
	if k < 0 || k >= opKindNum {
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
	return opKindNames[k]
}

type Op struct {
	Kind  OpKind
	Value int
	Index int
}

func (o Op) String() string {
	switch o.Kind {
	case OpInsertBefore:
		return fmt.Sprintf("%v(%d, %d)", o.Kind, o.Value, o.Index)
	case OpRemoveAt:
		return fmt.Sprintf("%v(%d)", o.Kind, o.Index)
	case OpPushFront, OpPushBack, OpContains, OpRemove:
		return fmt.Sprintf("%v(%d)", o.Kind, o.Value)
	default:
		return fmt.Sprintf("%v()", o.Kind)
	}
}

// Generator 生成随机操作序列
type Generator struct {
	rng        *rand.Rand
	valueRange int
}

// NewGenerator seed 为 0 时使用当前时间作为种子
func NewGenerator(seed int64, valueRange int) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		valueRange: valueRange,
	}
}

func (g *Generator) Value() int {
	return g.rng.Intn(g.valueRange)
}

func (g *Generator) Values(n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = g.Value()
	}
	return res
}

// Next 根据当前长度生成下一个操作，index 取自 [-1, size+1]，覆盖越界路径
func (g *Generator) Next(size int) Op {
	return Op{
		Kind:  OpKind(g.rng.Intn(int(opKindNum))),
		Value: g.Value(),
		Index: g.rng.Intn(size+3) - 1,
	}
}
