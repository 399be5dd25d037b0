package seqlist

// Map returns the list of f(e) for each element e, f is called from left to right.
// l is consumed: when it is unique and U is the same type as T the buffer is reused.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	return IndexedMap(l, func(e T, _ int) U {
		return f(e)
	})
}

// IndexedMap is like Map but f also receives the index of the element.
func IndexedMap[T, U any](l List[T], f func(e T, i int) U) List[U] {
	if l.length == 0 {
		l.Release()
		return List[U]{}
	}

	if l.IsUnique() {
		if buf, ok := any(l.buf).(*buffer[U]); ok {
			slots := buf.slots[l.offset : l.offset+l.length]
			for i, e := range l.view() {
				slots[i] = f(e, i)
			}
			return List[U]{buf: buf, offset: l.offset, length: l.length}
		}
	}

	mapped := newList[U](l.length)
	for i, e := range l.view() {
		mapped.buf.slots[i] = f(e, i)
	}
	mapped.length = l.length
	l.Release()
	return mapped
}

// MapTry is like Map but stops at the first error returned by f, l is not consumed.
func MapTry[T, U any](l List[T], f func(T) (U, error)) (List[U], error) {
	mapped := newList[U](l.length)
	for i, e := range l.view() {
		v, err := f(e)
		if err != nil {
			return List[U]{}, err
		}
		mapped.buf.slots[i] = v
	}
	mapped.length = l.length
	return mapped, nil
}

// Walk calls step for each element from left to right, threading the state through the
// calls, and returns the final state.
func Walk[T, S any](l List[T], start S, step func(state S, e T) S) S {
	state := start
	for _, e := range l.view() {
		state = step(state, e)
	}
	return state
}

// WalkWithIndex is like Walk but step also receives the index of the element.
func WalkWithIndex[T, S any](l List[T], start S, step func(state S, e T, i int) S) S {
	state := start
	for i, e := range l.view() {
		state = step(state, e, i)
	}
	return state
}

// WalkBackwards is like Walk but elements are visited from right to left.
func WalkBackwards[T, S any](l List[T], start S, step func(state S, e T) S) S {
	state := start
	view := l.view()
	for i := len(view) - 1; i >= 0; i-- {
		state = step(state, view[i])
	}
	return state
}

// Step is returned by the step functions of WalkUntil and WalkBackwardsUntil.
type Step[S any] struct {
	state S
	done  bool
}

// Continue returns a step that continues the walk with state.
func Continue[S any](state S) Step[S] {
	return Step[S]{state: state}
}

// Done returns a step that stops the walk, state is the result of the walk.
func Done[S any](state S) Step[S] {
	return Step[S]{state: state, done: true}
}

func (s Step[S]) State() S {
	return s.state
}

func (s Step[S]) IsDone() bool {
	return s.done
}

// WalkUntil is like Walk but stops as soon as step returns a Done step.
func WalkUntil[T, S any](l List[T], start S, step func(state S, e T) Step[S]) S {
	state := start
	for _, e := range l.view() {
		s := step(state, e)
		state = s.state
		if s.done {
			break
		}
	}
	return state
}

// WalkBackwardsUntil is like WalkUntil but elements are visited from right to left.
func WalkBackwardsUntil[T, S any](l List[T], start S, step func(state S, e T) Step[S]) S {
	state := start
	view := l.view()
	for i := len(view) - 1; i >= 0; i-- {
		s := step(state, view[i])
		state = s.state
		if s.done {
			break
		}
	}
	return state
}

// Concat returns the elements of a followed by the elements of b, see List.Concat.
func Concat[T any](a, b List[T]) List[T] {
	return a.Concat(b)
}

// Join flattens a list of lists, the total length is computed before allocating. lists is
// not consumed.
func Join[T any](lists List[List[T]]) List[T] {
	total := 0
	for _, sublist := range lists.view() {
		total += sublist.length
	}

	return joinViews(lists.view(), total)
}

func joinViews[T any](lists []List[T], total int) List[T] {
	if total == 0 {
		return List[T]{}
	}

	joined := newList[T](total)
	for _, sublist := range lists {
		joined.length += copy(joined.buf.slots[joined.length:], sublist.view())
	}
	return joined
}

// JoinMap joins the lists returned by f for each element of l, l is not consumed.
func JoinMap[T, U any](l List[T], f func(T) List[U]) List[U] {
	sublists := make([]List[U], l.length)
	total := 0
	for i, e := range l.view() {
		sublists[i] = f(e)
		total += sublists[i].length
	}
	return joinViews(sublists, total)
}

// Result is either a value or an error.
type Result[T any] struct {
	Value T
	Err   error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func Err[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

func (r Result[T]) IsOk() bool {
	return r.Err == nil
}

// JoinOks returns the values of the successful results, in order.
func JoinOks[T any](results List[Result[T]]) List[T] {
	oks := newList[T](results.CountIf(Result[T].IsOk))
	for _, r := range results.view() {
		if r.IsOk() {
			oks.buf.slots[oks.length] = r.Value
			oks.length++
		}
	}
	return oks
}

// KeepErrs returns the errors of the failed results, in order.
func KeepErrs[T any](results List[Result[T]]) List[error] {
	errs := List[error]{}
	for _, r := range results.view() {
		if !r.IsOk() {
			errs = errs.Append(r.Err)
		}
	}
	return errs
}
