// Package image provides the type-tagged, strided 2D descriptor shared by the
// kernels and the C ABI.
package image

import "strings"

// Element is a constraint for supported image element types.
// int32 stands in for the C "int" of the foreign descriptor.
type Element interface {
	float32 | uint8 | float64 | int32
}

// DataType is the runtime type tag carried by every descriptor.
// The numeric values are part of the foreign ABI and must not change.
type DataType int32

// Supported data types. The table is closed: a new element type needs a new
// constant here and a new member in Element.
const (
	Invalid DataType = -1
	Float32 DataType = 0
	Uint8   DataType = 1
	Float64 DataType = 2
	Int     DataType = 3
)

// Valid reports whether dt is one of the tags in the table.
func (dt DataType) Valid() bool {
	return dt >= Float32 && dt <= Int
}

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int:
		return 4
	case Float64:
		return 8
	case Uint8:
		return 1
	default:
		return 0
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Uint8:
		return "uint8"
	case Float64:
		return "float64"
	case Int:
		return "int"
	default:
		return "unknown"
	}
}

// ParseDataType maps a type name, as a host language spells it, to its tag.
// Unknown names map to Invalid.
func ParseDataType(name string) DataType {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "float32", "float", "f32", "single":
		return Float32
	case "uint8", "u8", "byte", "ubyte":
		return Uint8
	case "float64", "double", "f64":
		return Float64
	case "int", "int32", "i32", "intc":
		return Int
	default:
		return Invalid
	}
}

// DataTypes returns every tag in table order.
func DataTypes() []DataType {
	return []DataType{Float32, Uint8, Float64, Int}
}

// TagOf returns the canonical tag for the element type T.
func TagOf[T Element]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case uint8:
		return Uint8
	case float64:
		return Float64
	case int32:
		return Int
	default:
		return Invalid
	}
}
