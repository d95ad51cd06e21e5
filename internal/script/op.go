package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownOp is returned for an operation name the runner does not know.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrBadArgument is returned when an operation has the wrong number of
	// arguments or a non-integer argument.
	ErrBadArgument = errors.New("bad argument")
	// ErrAllocation is returned when a resize or reserve cannot allocate the
	// requested capacity.
	ErrAllocation = errors.New("allocation failed")
)

// Kind identifies a vector operation.
type Kind int

const (
	KindPush Kind = iota
	KindPop
	KindInsert
	KindErase
	KindResize
	KindReserve
	KindClear
	KindAt
	KindSet
)

var kindNames = [...]string{
	KindPush:    "push",
	KindPop:     "pop",
	KindInsert:  "insert",
	KindErase:   "erase",
	KindResize:  "resize",
	KindReserve: "reserve",
	KindClear:   "clear",
	KindAt:      "at",
	KindSet:     "set",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

var kindArity = map[Kind]int{
	KindPush:    1,
	KindPop:     0,
	KindInsert:  2,
	KindErase:   1,
	KindResize:  1,
	KindReserve: 1,
	KindClear:   0,
	KindAt:      1,
	KindSet:     2,
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Op is one parsed step, e.g. "insert:1:9".
type Op struct {
	Kind Kind
	Args []int
	Text string
}

// Parse parses a single "name[:arg...]" token.
func Parse(tok string) (Op, error) {
	parts := strings.Split(tok, ":")
	kind, ok := kindsByName[parts[0]]
	if !ok {
		return Op{}, fmt.Errorf("%q: %w", tok, ErrUnknownOp)
	}

	args := parts[1:]
	if len(args) != kindArity[kind] {
		return Op{}, fmt.Errorf("%q: want %d arguments, got %d: %w", tok, kindArity[kind], len(args), ErrBadArgument)
	}

	op := Op{Kind: kind, Args: make([]int, len(args)), Text: tok}
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return Op{}, fmt.Errorf("%q: argument %d: %w", tok, i+1, ErrBadArgument)
		}
		op.Args[i] = n
	}
	if (kind == KindResize || kind == KindReserve) && op.Args[0] < 0 {
		return Op{}, fmt.Errorf("%q: negative size: %w", tok, ErrBadArgument)
	}
	return op, nil
}

// ParseAll parses every token, stopping at the first error.
func ParseAll(toks []string) ([]Op, error) {
	ops := make([]Op, 0, len(toks))
	for _, tok := range toks {
		op, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
