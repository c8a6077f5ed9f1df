// package types describes the numeric element types a stepped range can be
// built over. Go has no way to map one type parameter onto another at compile
// time, so the relationship between an element type and its stride type is
// kept here as a small table keyed by Kind, and checked through reflection
// where generic code cannot express it.
package types

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var ErrUnknownKind = errors.New("unknown numeric kind")

// Kind identifies one of Go's predeclared integer or floating-point types.
type Kind int

const (
	Invalid Kind = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Uintptr
	Float32
	Float64
)

type kindInfo struct {
	name     string
	bits     int
	step     Kind
	unsigned bool
	float    bool
}

var kindTable = map[Kind]kindInfo{
	Int:     {name: "int", bits: strconv.IntSize, step: Int},
	Int8:    {name: "int8", bits: 8, step: Int8},
	Int16:   {name: "int16", bits: 16, step: Int16},
	Int32:   {name: "int32", bits: 32, step: Int32},
	Int64:   {name: "int64", bits: 64, step: Int64},
	Uint:    {name: "uint", bits: strconv.IntSize, step: Int, unsigned: true},
	Uint8:   {name: "uint8", bits: 8, step: Int8, unsigned: true},
	Uint16:  {name: "uint16", bits: 16, step: Int16, unsigned: true},
	Uint32:  {name: "uint32", bits: 32, step: Int32, unsigned: true},
	Uint64:  {name: "uint64", bits: 64, step: Int64, unsigned: true},
	Uintptr: {name: "uintptr", bits: strconv.IntSize, step: Int, unsigned: true},
	Float32: {name: "float32", bits: 32, step: Float32, float: true},
	Float64: {name: "float64", bits: 64, step: Float64, float: true},
}

var reflectKinds = map[reflect.Kind]Kind{
	reflect.Int:     Int,
	reflect.Int8:    Int8,
	reflect.Int16:   Int16,
	reflect.Int32:   Int32,
	reflect.Int64:   Int64,
	reflect.Uint:    Uint,
	reflect.Uint8:   Uint8,
	reflect.Uint16:  Uint16,
	reflect.Uint32:  Uint32,
	reflect.Uint64:  Uint64,
	reflect.Uintptr: Uintptr,
	reflect.Float32: Float32,
	reflect.Float64: Float64,
}

var aliases = map[string]Kind{
	"byte":    Uint8,
	"rune":    Int32,
	"float":   Float64,
	"integer": Int,
}

func (k Kind) String() string {
	if info, ok := kindTable[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// GoType is the name of the predeclared Go type for k.
func (k Kind) GoType() string { return kindTable[k].name }

func (k Kind) Bits() int        { return kindTable[k].bits }
func (k Kind) IsFloat() bool    { return kindTable[k].float }
func (k Kind) IsUnsigned() bool { return kindTable[k].unsigned }
func (k Kind) IsSigned() bool   { return k.Valid() && !k.IsFloat() && !k.IsUnsigned() }

func (k Kind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

// Step returns the kind a stride over k must have: the signed integer of the
// same width for unsigned kinds, k itself for everything else.
func (k Kind) Step() Kind { return kindTable[k].step }

// Lookup resolves a Go type name (or one of a few common aliases) to a Kind.
func Lookup(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, info := range kindTable {
		if info.name == name {
			return k, nil
		}
	}
	if k, ok := aliases[name]; ok {
		return k, nil
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindTable))
	for k := Int; k <= Float64; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// KindOf reports the Kind of T's underlying type, so named types such as
// `type Celsius float64` resolve to Float64.
func KindOf[T Number]() Kind {
	return reflectKinds[reflect.TypeFor[T]().Kind()]
}

// StepMatches reports whether S is the stride type for elements of type T.
func StepMatches[T Number, S Step]() bool {
	return KindOf[T]().Step() == KindOf[S]()
}
