package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/inoxlang/seqlist/internal/memds"
	"github.com/inoxlang/seqlist/internal/seqlist"
)

const OPERATIONS_HELP = `
Operations (N, I, J, S are integers, V is a JSON scalar or a bare string):
	reverse, sort, sort-desc
	take:N, take-last:N, drop:N, drop-front:N, drop-first, drop-last, drop-at:I
	append:V, prepend:V, set:I=V, intersperse:V, sublist:S,N, swap:I,J

Terminal operations (last operation of the pipeline):
	len, first, last, min, max, sum, chunks:N
`

var (
	OPERATION_NAMES = []string{
		"reverse", "sort", "sort-desc", "take:", "take-last:", "drop:", "drop-front:", "drop-first", "drop-last",
		"drop-at:", "append:", "prepend:", "set:", "intersperse:", "sublist:", "swap:",
		"len", "first", "last", "min", "max", "sum", "chunks:",
	}

	ErrNotANumber = errors.New("element is not a number")
)

type operation struct {
	text string

	//transform returns false if the list was empty and the operation requires an element.
	transform func(seqlist.List[any]) (seqlist.List[any], bool)

	//set for terminal operations
	finish func(seqlist.List[any]) (any, error)
}

func parsePipeline(texts []string) (*memds.ArrayQueue[operation], error) {
	pipeline := memds.NewArrayQueue[operation]()

	for i, text := range texts {
		op, err := parseOperation(text)
		if err != nil {
			return nil, fmt.Errorf("invalid operation %q: %w", text, err)
		}
		if op.finish != nil && i != len(texts)-1 {
			return nil, fmt.Errorf("%q is a terminal operation, it should be the last one", text)
		}
		pipeline.Enqueue(op)
	}

	return pipeline, nil
}

func parseOperation(text string) (operation, error) {
	name, arg, hasArg := strings.Cut(text, ":")
	op := operation{text: text}

	transform := func(fn func(seqlist.List[any]) seqlist.List[any]) {
		op.transform = func(l seqlist.List[any]) (seqlist.List[any], bool) {
			return fn(l), true
		}
	}

	var err error
	var n, i, j int

	switch name {
	case "reverse":
		transform(seqlist.List[any].Reverse)
	case "sort":
		transform(func(l seqlist.List[any]) seqlist.List[any] {
			return l.Sort(compareElements)
		})
	case "sort-desc":
		transform(func(l seqlist.List[any]) seqlist.List[any] {
			return l.Sort(func(a, b any) seqlist.Ordering {
				return compareElements(b, a)
			})
		})
	case "take", "take-last", "drop", "drop-front", "drop-at":
		n, err = parseIntArg(arg, hasArg)
		if err != nil {
			return op, err
		}
		transform(func(l seqlist.List[any]) seqlist.List[any] {
			switch name {
			case "take":
				return l.Take(n)
			case "take-last":
				return l.TakeLast(n)
			case "drop":
				return l.Drop(n)
			case "drop-front":
				return l.DropFromFront(n)
			default:
				return l.DropAt(n)
			}
		})
	case "drop-first":
		op.transform = func(l seqlist.List[any]) (seqlist.List[any], bool) {
			_, others, err := l.DropFirst()
			return others, err == nil
		}
	case "drop-last":
		op.transform = func(l seqlist.List[any]) (seqlist.List[any], bool) {
			others, _, err := l.DropLast()
			return others, err == nil
		}
	case "append", "prepend", "intersperse":
		if !hasArg {
			return op, errors.New("missing value")
		}
		v := parseValue(arg)
		transform(func(l seqlist.List[any]) seqlist.List[any] {
			switch name {
			case "append":
				return l.Append(v)
			case "prepend":
				return l.Prepend(v)
			default:
				return l.Intersperse(v)
			}
		})
	case "set":
		index, value, ok := strings.Cut(arg, "=")
		if !ok {
			return op, errors.New("expected set:I=V")
		}
		i, err = strconv.Atoi(index)
		if err != nil {
			return op, err
		}
		v := parseValue(value)
		transform(func(l seqlist.List[any]) seqlist.List[any] {
			return l.Set(i, v)
		})
	case "sublist", "swap":
		i, j, err = parseIntPair(arg)
		if err != nil {
			return op, err
		}
		transform(func(l seqlist.List[any]) seqlist.List[any] {
			if name == "swap" {
				return l.Swap(i, j)
			}
			return l.Sublist(i, j)
		})

	//terminal operations

	case "len":
		op.finish = func(l seqlist.List[any]) (any, error) {
			return l.Len(), nil
		}
	case "first":
		op.finish = func(l seqlist.List[any]) (any, error) {
			return l.First()
		}
	case "last":
		op.finish = func(l seqlist.List[any]) (any, error) {
			return l.Last()
		}
	case "min", "max", "sum":
		op.finish = func(l seqlist.List[any]) (any, error) {
			numbers, err := seqlist.MapTry(l, toNumber)
			if err != nil {
				return nil, err
			}
			switch name {
			case "min":
				return seqlist.Min(numbers)
			case "max":
				return seqlist.Max(numbers)
			default:
				return seqlist.SumFloats(numbers), nil
			}
		}
	case "chunks":
		n, err = parseIntArg(arg, hasArg)
		if err != nil {
			return op, err
		}
		if n <= 0 {
			return op, errors.New("the chunk size should be positive")
		}
		op.finish = func(l seqlist.List[any]) (any, error) {
			return seqlist.ChunksOf(l, n), nil
		}
	default:
		return op, errors.New("unknown operation")
	}

	if hasArg && !requiresArg(name) {
		return op, errors.New("unexpected argument")
	}
	return op, nil
}

func requiresArg(name string) bool {
	for _, opName := range OPERATION_NAMES {
		if opName == name+":" {
			return true
		}
	}
	return false
}

func parseIntArg(arg string, hasArg bool) (int, error) {
	if !hasArg {
		return 0, errors.New("missing integer argument")
	}
	return strconv.Atoi(arg)
}

func parseIntPair(arg string) (int, int, error) {
	first, second, ok := strings.Cut(arg, ",")
	if !ok {
		return 0, 0, errors.New("expected two integers separated by a comma")
	}
	a, err := strconv.Atoi(first)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(second)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// parseValue parses s as a JSON scalar, s is returned as a string if it is not valid JSON.
func parseValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return normalizeElement(v)
}

// normalizeElement converts the numbers decoded from JSON or YAML to float64.
func normalizeElement(v any) any {
	if f, err := toNumber(v); err == nil {
		return f
	}
	return v
}

func toNumber(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("%w: %v", ErrNotANumber, v)
	}
}

// compareElements orders null < booleans < numbers < strings < other values, strings are
// compared in natural order.
func compareElements(a, b any) seqlist.Ordering {
	rankA, rankB := rank(a), rank(b)
	if rankA != rankB {
		return seqlist.CompareOrdered(rankA, rankB)
	}

	switch a := a.(type) {
	case bool:
		b := b.(bool)
		if a == b {
			return seqlist.Eq
		}
		if !a {
			return seqlist.Lt
		}
		return seqlist.Gt
	case float64:
		return seqlist.CompareOrdered(a, b.(float64))
	case string:
		return seqlist.NaturalOrder(a, b.(string))
	default:
		return seqlist.Eq
	}
}

func rank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case float64:
		return 2
	case string:
		return 3
	default:
		return 4
	}
}
