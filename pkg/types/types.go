// Package types holds utilities for working with different formats data types.
package types

// DataType represents data type.
type DataType string

const (
	Array   DataType = "array"
	Boolean DataType = "boolean"
	Null    DataType = "null"
	Number  DataType = "number"
	Object  DataType = "object"
	String  DataType = "string"
)

const (
	// Unknown represents unknown data type.
	Unknown DataType = "unknown"

	// Any represents any data type
	Any DataType = "any"
)

// Mapper is entity that has ability to map data's type into corresponding DataType of given format.
type Mapper interface {
	// Map maps data type.
	Map(data any) DataType
}

// IsValidJSONDataType checks whether is valid JSON data type.
func (dt DataType) IsValidJSONDataType() bool {
	dts := []DataType{Null, Array, Object, Number, Boolean, String}

	return isValidDataType(dts, dt)
}

func isValidDataType(set []DataType, in DataType) bool {
	for _, dt := range set {
		if in == dt {
			return true
		}
	}

	return false
}
