package timecounter

import (
	"log"
	"time"
)

// DequeTimeCounter 按操作类别累计耗时（微秒）
type DequeTimeCounter struct {
	InsertTime  int64
	RemoveTime  int64
	QueryTime   int64
	ReverseTime int64
}

func NewDequeTimeCounter() *DequeTimeCounter {
	return &DequeTimeCounter{
		InsertTime:  0,
		RemoveTime:  0,
		QueryTime:   0,
		ReverseTime: 0,
	}
}

func (t *DequeTimeCounter) AddInsertTime(start_time time.Time) {
	t.InsertTime += time.Since(start_time).Microseconds()
}

func (t *DequeTimeCounter) AddRemoveTime(start_time time.Time) {
	t.RemoveTime += time.Since(start_time).Microseconds()
}

func (t *DequeTimeCounter) AddQueryTime(start_time time.Time) {
	t.QueryTime += time.Since(start_time).Microseconds()
}

func (t *DequeTimeCounter) AddReverseTime(start_time time.Time) {
	t.ReverseTime += time.Since(start_time).Microseconds()
}

func (t *DequeTimeCounter) Total() int64 {
	return t.InsertTime + t.RemoveTime + t.QueryTime + t.ReverseTime
}

func (t *DequeTimeCounter) Print() {
	log.Printf("InsertTime: %v, RemoveTime: %v, QueryTime: %v, ReverseTime: %v", t.InsertTime, t.RemoveTime, t.QueryTime, t.ReverseTime)
}

func (t *DequeTimeCounter) Clear() {
	t.InsertTime = 0
	t.RemoveTime = 0
	t.QueryTime = 0
	t.ReverseTime = 0
}
