// Package scenario parses and replays scripted cache operations.
//
// A script is a list of operations written as
//
//	put:KEY=VALUE   store VALUE under KEY
//	get:KEY         read KEY and report the value
//	print           dump the cache content
package scenario

import (
	"errors"
	"fmt"
	"io"
	"strings"

	cache "github.com/krisalay/policy-cache"
)

// Kind is the type of a scripted operation.
type Kind string

const (
	Put   Kind = "put"
	Get   Kind = "get"
	Print Kind = "print"
)

// Op is one scripted operation.
type Op struct {
	Kind  Kind
	Key   string
	Value string
}

func (o Op) String() string {
	switch o.Kind {
	case Put:
		return fmt.Sprintf("put:%s=%s", o.Key, o.Value)
	case Get:
		return "get:" + o.Key
	default:
		return string(o.Kind)
	}
}

// ErrBadOp is returned by Parse for text that is not an operation.
var ErrBadOp = errors.New("bad operation")

// Parse reads one operation.
func Parse(s string) (Op, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, string(Print)) {
		return Op{Kind: Print}, nil
	}

	kind, rest, ok := strings.Cut(s, ":")
	if !ok {
		return Op{}, fmt.Errorf("%w: %q", ErrBadOp, s)
	}

	switch Kind(strings.ToLower(kind)) {
	case Get:
		return Op{Kind: Get, Key: rest}, nil
	case Put:
		key, value, ok := strings.Cut(rest, "=")
		if !ok {
			return Op{}, fmt.Errorf("%w: %q has no value", ErrBadOp, s)
		}
		return Op{Kind: Put, Key: key, Value: value}, nil
	default:
		return Op{}, fmt.Errorf("%w: %q", ErrBadOp, s)
	}
}

// ParseAll parses every argument, stopping at the first error.
func ParseAll(args []string) ([]Op, error) {
	ops := make([]Op, 0, len(args))
	for _, a := range args {
		op, err := Parse(a)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Run applies ops to c in order. Get results and cache dumps are written to w.
func Run(c *cache.Cache, ops []Op, w io.Writer) {
	for _, op := range ops {
		switch op.Kind {
		case Put:
			c.Put(op.Key, op.Value)
		case Get:
			fmt.Fprintf(w, "GET %s = %v\n", op.Key, c.Get(op.Key))
		case Print:
			c.Print(w)
		}
	}
}
