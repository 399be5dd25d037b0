package seqlist

// Zip and ZipMap functions iterate up to the length of the shortest input list, the inputs
// are not consumed.

type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

type Tuple5[A, B, C, D, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

type Tuple6[A, B, C, D, E, F any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
}

type Tuple7[A, B, C, D, E, F, G any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
}

type Tuple8[A, B, C, D, E, F, G, H any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
}

func ZipMap2[A, B, R any](a List[A], b List[B], combine func(A, B) R) List[R] {
	length := min(a.length, b.length)
	if length == 0 {
		return List[R]{}
	}

	aView := a.view()
	bView := b.view()
	zipped := newList[R](length)
	for i := 0; i < length; i++ {
		zipped.buf.slots[i] = combine(aView[i], bView[i])
	}
	zipped.length = length
	return zipped
}

func ZipMap3[A, B, C, R any](a List[A], b List[B], c List[C], combine func(A, B, C) R) List[R] {
	length := min(a.length, b.length, c.length)
	if length == 0 {
		return List[R]{}
	}

	aView := a.view()
	bView := b.view()
	cView := c.view()
	zipped := newList[R](length)
	for i := 0; i < length; i++ {
		zipped.buf.slots[i] = combine(aView[i], bView[i], cView[i])
	}
	zipped.length = length
	return zipped
}

func ZipMap4[A, B, C, D, R any](a List[A], b List[B], c List[C], d List[D], combine func(A, B, C, D) R) List[R] {
	length := min(a.length, b.length, c.length, d.length)
	if length == 0 {
		return List[R]{}
	}

	aView := a.view()
	bView := b.view()
	cView := c.view()
	dView := d.view()
	zipped := newList[R](length)
	for i := 0; i < length; i++ {
		zipped.buf.slots[i] = combine(aView[i], bView[i], cView[i], dView[i])
	}
	zipped.length = length
	return zipped
}

func ZipMap5[A, B, C, D, E, R any](a List[A], b List[B], c List[C], d List[D], e List[E], combine func(A, B, C, D, E) R) List[R] {
	length := min(a.length, b.length, c.length, d.length, e.length)
	if length == 0 {
		return List[R]{}
	}

	aView := a.view()
	bView := b.view()
	cView := c.view()
	dView := d.view()
	eView := e.view()
	zipped := newList[R](length)
	for i := 0; i < length; i++ {
		zipped.buf.slots[i] = combine(aView[i], bView[i], cView[i], dView[i], eView[i])
	}
	zipped.length = length
	return zipped
}

func ZipMap6[A, B, C, D, E, F, R any](a List[A], b List[B], c List[C], d List[D], e List[E], f List[F], combine func(A, B, C, D, E, F) R) List[R] {
	length := min(a.length, b.length, c.length, d.length, e.length, f.length)
	if length == 0 {
		return List[R]{}
	}

	aView := a.view()
	bView := b.view()
	cView := c.view()
	dView := d.view()
	eView := e.view()
	fView := f.view()
	zipped := newList[R](length)
	for i := 0; i < length; i++ {
		zipped.buf.slots[i] = combine(aView[i], bView[i], cView[i], dView[i], eView[i], fView[i])
	}
	zipped.length = length
	return zipped
}

func ZipMap7[A, B, C, D, E, F, G, R any](a List[A], b List[B], c List[C], d List[D], e List[E], f List[F], g List[G], combine func(A, B, C, D, E, F, G) R) List[R] {
	length := min(a.length, b.length, c.length, d.length, e.length, f.length, g.length)
	if length == 0 {
		return List[R]{}
	}

	aView := a.view()
	bView := b.view()
	cView := c.view()
	dView := d.view()
	eView := e.view()
	fView := f.view()
	gView := g.view()
	zipped := newList[R](length)
	for i := 0; i < length; i++ {
		zipped.buf.slots[i] = combine(aView[i], bView[i], cView[i], dView[i], eView[i], fView[i], gView[i])
	}
	zipped.length = length
	return zipped
}

func ZipMap8[A, B, C, D, E, F, G, H, R any](a List[A], b List[B], c List[C], d List[D], e List[E], f List[F], g List[G], h List[H], combine func(A, B, C, D, E, F, G, H) R) List[R] {
	length := min(a.length, b.length, c.length, d.length, e.length, f.length, g.length, h.length)
	if length == 0 {
		return List[R]{}
	}

	aView := a.view()
	bView := b.view()
	cView := c.view()
	dView := d.view()
	eView := e.view()
	fView := f.view()
	gView := g.view()
	hView := h.view()
	zipped := newList[R](length)
	for i := 0; i < length; i++ {
		zipped.buf.slots[i] = combine(aView[i], bView[i], cView[i], dView[i], eView[i], fView[i], gView[i], hView[i])
	}
	zipped.length = length
	return zipped
}

func Zip2[A, B any](a List[A], b List[B]) List[Tuple2[A, B]] {
	return ZipMap2(a, b, func(v0 A, v1 B) Tuple2[A, B] {
		return Tuple2[A, B]{v0, v1}
	})
}

func Zip3[A, B, C any](a List[A], b List[B], c List[C]) List[Tuple3[A, B, C]] {
	return ZipMap3(a, b, c, func(v0 A, v1 B, v2 C) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{v0, v1, v2}
	})
}

func Zip4[A, B, C, D any](a List[A], b List[B], c List[C], d List[D]) List[Tuple4[A, B, C, D]] {
	return ZipMap4(a, b, c, d, func(v0 A, v1 B, v2 C, v3 D) Tuple4[A, B, C, D] {
		return Tuple4[A, B, C, D]{v0, v1, v2, v3}
	})
}

func Zip5[A, B, C, D, E any](a List[A], b List[B], c List[C], d List[D], e List[E]) List[Tuple5[A, B, C, D, E]] {
	return ZipMap5(a, b, c, d, e, func(v0 A, v1 B, v2 C, v3 D, v4 E) Tuple5[A, B, C, D, E] {
		return Tuple5[A, B, C, D, E]{v0, v1, v2, v3, v4}
	})
}

func Zip6[A, B, C, D, E, F any](a List[A], b List[B], c List[C], d List[D], e List[E], f List[F]) List[Tuple6[A, B, C, D, E, F]] {
	return ZipMap6(a, b, c, d, e, f, func(v0 A, v1 B, v2 C, v3 D, v4 E, v5 F) Tuple6[A, B, C, D, E, F] {
		return Tuple6[A, B, C, D, E, F]{v0, v1, v2, v3, v4, v5}
	})
}

func Zip7[A, B, C, D, E, F, G any](a List[A], b List[B], c List[C], d List[D], e List[E], f List[F], g List[G]) List[Tuple7[A, B, C, D, E, F, G]] {
	return ZipMap7(a, b, c, d, e, f, g, func(v0 A, v1 B, v2 C, v3 D, v4 E, v5 F, v6 G) Tuple7[A, B, C, D, E, F, G] {
		return Tuple7[A, B, C, D, E, F, G]{v0, v1, v2, v3, v4, v5, v6}
	})
}

func Zip8[A, B, C, D, E, F, G, H any](a List[A], b List[B], c List[C], d List[D], e List[E], f List[F], g List[G], h List[H]) List[Tuple8[A, B, C, D, E, F, G, H]] {
	return ZipMap8(a, b, c, d, e, f, g, h, func(v0 A, v1 B, v2 C, v3 D, v4 E, v5 F, v6 G, v7 H) Tuple8[A, B, C, D, E, F, G, H] {
		return Tuple8[A, B, C, D, E, F, G, H]{v0, v1, v2, v3, v4, v5, v6, v7}
	})
}
