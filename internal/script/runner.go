package script

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/pavanmanishd/vector"
)

// Runner applies operations to a vector of ints and logs each step.
type Runner struct {
	v      *vector.Vector[int]
	logger *zap.Logger
}

// NewRunner returns a runner over an empty vector. A nil logger discards
// output.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{v: vector.New[int](), logger: logger}
}

// Vector returns the vector the runner mutates.
func (r *Runner) Vector() *vector.Vector[int] {
	return r.v
}

// Run applies ops in order. Out-of-range steps are logged at warn level and
// skipped; any other error, including ErrAllocation, stops the run.
func (r *Runner) Run(ops []Op) error {
	for _, op := range ops {
		err := r.Apply(op)
		switch {
		case err == nil:
		case errors.Is(err, vector.ErrOutOfRange):
			r.logger.Warn("step skipped", zap.String("op", op.Text), zap.Error(err))
		default:
			return err
		}
	}
	return nil
}

// allocate runs a capacity-changing call and turns a runtime allocation
// panic into ErrAllocation. The vector is unchanged when it fails.
func allocate(op Op, grow func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("%q: %w: %v", op.Text, ErrAllocation, rerr)
		}
	}()
	grow()
	return nil
}

// Apply performs a single operation. Positions for pop, insert and erase
// are checked here because the vector does not check them.
func (r *Runner) Apply(op Op) error {
	v := r.v
	switch op.Kind {
	case KindPush:
		v.PushBack(op.Args[0])
	case KindPop:
		if v.Empty() {
			return &vector.RangeError{Index: -1, Size: 0}
		}
		v.PopBack()
	case KindInsert:
		pos := op.Args[0]
		if pos < v.Begin() || pos > v.End() {
			return &vector.RangeError{Index: pos, Size: v.Len()}
		}
		v.Insert(pos, op.Args[1])
	case KindErase:
		pos := op.Args[0]
		if pos < v.Begin() || pos >= v.End() {
			return &vector.RangeError{Index: pos, Size: v.Len()}
		}
		v.Erase(pos)
	case KindResize:
		if err := allocate(op, func() { v.Resize(op.Args[0]) }); err != nil {
			return err
		}
	case KindReserve:
		if err := allocate(op, func() { v.Reserve(op.Args[0]) }); err != nil {
			return err
		}
	case KindClear:
		v.Clear()
	case KindAt:
		x, err := v.At(op.Args[0])
		if err != nil {
			return err
		}
		r.logger.Info("read", zap.String("op", op.Text), zap.Int("value", x))
		return nil
	case KindSet:
		p, err := v.Ref(op.Args[0])
		if err != nil {
			return err
		}
		*p = op.Args[1]
	default:
		return ErrUnknownOp
	}

	r.logger.Info("step",
		zap.String("op", op.Text),
		zap.Int("size", v.Len()),
		zap.Int("capacity", v.Cap()),
		zap.Ints("contents", v.Slice()),
	)
	return nil
}
