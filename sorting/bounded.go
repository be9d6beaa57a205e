// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Bounded is a constraint for element types with an accessible supremum:
// a value no element can exceed. Sentinel merging depends on it.
type Bounded interface {
	constraints.Integer | constraints.Float
}

// Supremum returns the greatest value of E: the maximum representable
// value for integer types and +Inf for floating-point types.
func Supremum[E Bounded]() E {
	var zero E
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		return E(math.Inf(1))
	case reflect.Int:
		m := math.MaxInt
		return E(m)
	case reflect.Int8:
		m := int8(math.MaxInt8)
		return E(m)
	case reflect.Int16:
		m := int16(math.MaxInt16)
		return E(m)
	case reflect.Int32:
		m := int32(math.MaxInt32)
		return E(m)
	case reflect.Int64:
		m := int64(math.MaxInt64)
		return E(m)
	case reflect.Uint:
		m := ^uint(0)
		return E(m)
	case reflect.Uint8:
		m := ^uint8(0)
		return E(m)
	case reflect.Uint16:
		m := ^uint16(0)
		return E(m)
	case reflect.Uint32:
		m := ^uint32(0)
		return E(m)
	case reflect.Uint64:
		m := ^uint64(0)
		return E(m)
	case reflect.Uintptr:
		m := ^uintptr(0)
		return E(m)
	}
	panic("sorting: no supremum for " + reflect.TypeOf(zero).String())
}
