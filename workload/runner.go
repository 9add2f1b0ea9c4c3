package workload

/*

	随机负载：对链表与切片参照模型同时执行同一操作，
	每一步比较返回值、越界错误以及渲染结果的指纹，一旦不一致立即返回 ErrDiverged

*/

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joykm/deque-bag-adt/config"
	"github.com/joykm/deque-bag-adt/context"
	"github.com/joykm/deque-bag-adt/linkedlist"
)

var ErrDiverged = errors.New("deque diverged from model")

type Report struct {
	Kind        string
	Ops         int
	OutOfBounds int
	Skipped     int
	Final       string
	Fingerprint uint64
}

func (r *Report) String() string {
	return fmt.Sprintf("%s: ops=%d outOfBounds=%d skipped=%d fingerprint=%016x final=%s",
		r.Kind, r.Ops, r.OutOfBounds, r.Skipped, r.Fingerprint, r.Final)
}

type Runner struct {
	ctx   *context.Context
	gen   *Generator
	group *FingerprintGroup
}

func NewRunner(ctx *context.Context) *Runner {
	wc := ctx.Config.WorkloadConfig
	return &Runner{
		ctx:   ctx,
		gen:   NewGenerator(wc.Seed, wc.ValueRange),
		group: NewFingerprintGroup(2),
	}
}

// RunConfigured 按配置中的 Kind 构造链表并运行
func (r *Runner) RunConfigured() ([]*Report, error) {
	kinds := []string{r.ctx.Config.WorkloadConfig.Kind}
	if kinds[0] == config.KindBoth {
		kinds = []string{config.KindSingly, config.KindCircular}
	}
	reports := make([]*Report, 0, len(kinds))
	for _, kind := range kinds {
		report, err := r.RunKind(kind)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (r *Runner) RunKind(kind string) (*Report, error) {
	values := r.gen.Values(r.ctx.Config.WorkloadConfig.InitialSize)
	var (
		d   linkedlist.Deque[int]
		sep string
	)
	switch kind {
	case config.KindSingly:
		d, sep = linkedlist.NewLinkedList(values...), SinglySeparator
	case config.KindCircular:
		d, sep = linkedlist.NewCircularList(values...), CircularSeparator
	default:
		return nil, fmt.Errorf("unknown deque kind %q", kind)
	}
	report, err := r.Run(d, NewModel(sep, values...))
	if report != nil {
		report.Kind = kind
	}
	return report, err
}

// Run 对 d 与 model 执行 OpCount 个随机操作
func (r *Runner) Run(d linkedlist.Deque[int], model *Model) (*Report, error) {
	report := &Report{}
	if !r.group.Equal(d, model) {
		return report, fmt.Errorf("%w: initial state: deque %s, model %s", ErrDiverged, d, model)
	}
	verbose := r.ctx.Config.WorkloadConfig.Verbose
	for step := 0; step < r.ctx.Config.WorkloadConfig.OpCount; step++ {
		op := r.gen.Next(model.Len())
		if op.Kind == OpReverse {
			if _, ok := d.(linkedlist.Reverser); !ok {
				report.Skipped++
				continue
			}
		}
		got := r.apply(op, d)
		want := apply(op, model)
		report.Ops++
		if got.err != nil {
			report.OutOfBounds++
		}
		if err := compare(got, want); err != nil {
			return report, fmt.Errorf("%w: step %d %v: %v", ErrDiverged, step, op, err)
		}
		if !r.group.Equal(d, model) {
			return report, fmt.Errorf("%w: step %d %v: deque %s, model %s", ErrDiverged, step, op, d, model)
		}
		if verbose {
			log.Printf("step %d %v -> %s", step, op, d)
		}
	}
	report.Final = d.String()
	report.Fingerprint = Fingerprint(d)
	return report, nil
}

type result struct {
	value int
	ok    bool
	err   error
}

// apply 在被测链表上执行操作并按类别计时
func (r *Runner) apply(op Op, d linkedlist.Deque[int]) result {
	tc := r.ctx.TimeCounter
	start_time := time.Now()
	res := apply(op, d)
	switch op.Kind {
	case OpInsertBefore, OpPushFront, OpPushBack:
		tc.AddInsertTime(start_time)
	case OpRemoveAt, OpPopFront, OpPopBack, OpRemove:
		tc.AddRemoveTime(start_time)
	case OpReverse:
		tc.AddReverseTime(start_time)
	default:
		tc.AddQueryTime(start_time)
	}
	return res
}

func apply(op Op, d linkedlist.Deque[int]) result {
	var res result
	switch op.Kind {
	case OpInsertBefore:
		res.err = d.InsertBefore(op.Value, op.Index)
	case OpRemoveAt:
		res.err = d.RemoveAt(op.Index)
	case OpPushFront:
		d.PushFront(op.Value)
	case OpPushBack:
		d.PushBack(op.Value)
	case OpPopFront:
		res.value, res.ok = d.RemoveFromFront()
	case OpPopBack:
		res.value, res.ok = d.RemoveFromBack()
	case OpPeekFront:
		res.value, res.ok = d.Front()
	case OpPeekBack:
		res.value, res.ok = d.Back()
	case OpContains:
		res.ok = d.Contains(op.Value)
	case OpRemove:
		res.ok = d.Remove(op.Value)
	case OpReverse:
		d.(linkedlist.Reverser).Reverse()
	}
	return res
}

func compare(got, want result) error {
	gotOOB := errors.Is(got.err, linkedlist.ErrIndexOutOfBounds)
	wantOOB := errors.Is(want.err, linkedlist.ErrIndexOutOfBounds)
	if gotOOB != wantOOB {
		return fmt.Errorf("error mismatch: deque %v, model %v", got.err, want.err)
	}
	if got.ok != want.ok || got.value != want.value {
		return fmt.Errorf("result mismatch: deque (%d, %t), model (%d, %t)", got.value, got.ok, want.value, want.ok)
	}
	return nil
}
