package tabwalk

import (
	"math"
	"reflect"
)

// DeepEqual reports structural equality between two acyclic values as the
// round-trip contract defines it: containers compare by key set with values
// compared recursively, numbers compare numerically across integer and float
// kinds, and NaN equals NaN so pickled specials survive the comparison.
func DeepEqual(a, b any) bool {
	ca, aok := AsContainer(a)
	cb, bok := AsContainer(b)
	if aok != bok {
		return false
	}
	if aok {
		ka := ca.Keys()
		if len(ka) != len(cb.Keys()) {
			return false
		}
		for _, k := range ka {
			va, _ := ca.Get(k)
			vb, present := cb.Get(k)
			if !present || !DeepEqual(va, vb) {
				return false
			}
		}
		return true
	}
	if na, ok := asNumber(a); ok {
		nb, ok := asNumber(b)
		return ok && numberEqual(na, nb)
	}
	if _, ok := asNumber(b); ok {
		return false
	}
	if a == nil || b == nil {
		return a == b
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}

type number struct {
	i       int64
	u       uint64
	f       float64
	isInt   bool
	isUint  bool
	isFloat bool
}

func asNumber(v any) (number, bool) {
	switch n := normKey(v).(type) {
	case int64:
		return number{i: n, isInt: true}, true
	case uint64:
		return number{u: n, isUint: true}, true
	case float64:
		return number{f: n, isFloat: true}, true
	}
	return number{}, false
}

func numberEqual(a, b number) bool {
	switch {
	case a.isInt && b.isInt:
		return a.i == b.i
	case a.isUint && b.isUint:
		return a.u == b.u
	case a.isFloat && b.isFloat:
		if math.IsNaN(a.f) && math.IsNaN(b.f) {
			return true
		}
		return a.f == b.f
	}
	// Mixed kinds: compare through float64; normKey already collapsed every
	// integral value, so only genuinely fractional floats reach here mixed.
	return a.float() == b.float()
}

func (n number) float() float64 {
	switch {
	case n.isInt:
		return float64(n.i)
	case n.isUint:
		return float64(n.u)
	}
	return n.f
}
