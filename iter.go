package tabwalk

// PairSource is the resumable-iteration contract shared by every iterator in
// this package: a cursor whose NextPair reports the next (key, value) pair
// until exhaustion. It is what the Values adaptor wraps, so any iterator
// composes transparently with consumers programmed against the contract.
type PairSource interface {
	NextPair() (key, val any, ok bool)
}

// SeqIter walks positional entries. Construct one with IPairs, NPairs,
// RIPairs or RNPairs; each constructor returns a fresh cursor, so iteration
// is restartable by constructing again.
type SeqIter struct {
	c    Container
	pos  int
	last int
	step int
}

// IPairs iterates (1,x[1]), (2,x[2]), ... up to the first gap; the bound is
// Len(v). Non-containers iterate empty.
func IPairs(v any) *SeqIter {
	c, _ := AsContainer(v)
	n := 0
	if c != nil {
		n = Len(v)
	}
	return &SeqIter{c: c, pos: 1, last: n, step: 1}
}

// NPairs iterates forward to the resolved boundary: the length-override when
// present, else MaxN(v). Positions with no entry yield a nil value instead of
// stopping.
func NPairs(v any) *SeqIter {
	c, _ := AsContainer(v)
	n := 0
	if c != nil {
		n = npairsBound(v)
	}
	return &SeqIter{c: c, pos: 1, last: n, step: 1}
}

// RIPairs iterates the IPairs range in descending order, from Len(v) down
// to 1.
func RIPairs(v any) *SeqIter {
	c, _ := AsContainer(v)
	n := 0
	if c != nil {
		n = Len(v)
	}
	return &SeqIter{c: c, pos: n, last: 1, step: -1}
}

// RNPairs iterates the NPairs range in descending order.
func RNPairs(v any) *SeqIter {
	c, _ := AsContainer(v)
	n := 0
	if c != nil {
		n = npairsBound(v)
	}
	return &SeqIter{c: c, pos: n, last: 1, step: -1}
}

func npairsBound(v any) int {
	if fn, ok := lenOverride(v); ok {
		return fn()
	}
	return MaxN(v)
}

// Next returns the next (index, value) pair. Absent positions inside the
// range yield a nil value.
func (it *SeqIter) Next() (int, any, bool) {
	if it.step > 0 {
		if it.pos > it.last {
			return 0, nil, false
		}
	} else if it.pos < it.last {
		return 0, nil, false
	}
	i := it.pos
	it.pos += it.step
	var v any
	if it.c != nil {
		v, _ = it.c.Get(i)
	}
	return i, v, true
}

// NextPair adapts Next to the PairSource contract.
func (it *SeqIter) NextPair() (any, any, bool) {
	i, v, ok := it.Next()
	if !ok {
		return nil, nil, false
	}
	return i, v, true
}

// KeyIter walks the full key enumeration of a container.
type KeyIter struct {
	c    Container
	keys []any
	i    int
}

// Pairs enumerates every (key, value) pair of v. An enumeration-override
// supplies the complete key set and order; otherwise the container's native
// enumeration is used, in an unspecified but stable-for-the-call order.
func Pairs(v any) *KeyIter {
	c, ok := AsContainer(v)
	if !ok {
		return &KeyIter{}
	}
	var keys []any
	if fn, ok := enumOverride(v); ok {
		keys = fn()
	} else {
		keys = c.Keys()
	}
	return &KeyIter{c: c, keys: keys}
}

// Next returns the next (key, value) pair. Keys an enumeration-override
// lists but the container does not hold yield a nil value.
func (it *KeyIter) Next() (any, any, bool) {
	if it.i >= len(it.keys) {
		return nil, nil, false
	}
	k := it.keys[it.i]
	it.i++
	var v any
	if it.c != nil {
		v, _ = it.c.Get(k)
	}
	return k, v, true
}

// NextPair adapts Next to the PairSource contract.
func (it *KeyIter) NextPair() (any, any, bool) { return it.Next() }

// ValIter yields only the values of a wrapped iterator.
type ValIter struct {
	src PairSource
}

// Values adapts any PairSource into a value-only iterator, discarding the
// primary iteration keys.
func Values(src PairSource) *ValIter {
	return &ValIter{src: src}
}

// Next returns the next value.
func (it *ValIter) Next() (any, bool) {
	if it.src == nil {
		return nil, false
	}
	_, v, ok := it.src.NextPair()
	return v, ok
}

// NextPair keeps ValIter composable as a PairSource; the key slot is always
// nil.
func (it *ValIter) NextPair() (any, any, bool) {
	v, ok := it.Next()
	return nil, v, ok
}
