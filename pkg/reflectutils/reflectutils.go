// Package reflectutils holds utility methods related with reflect package.
package reflectutils

import "reflect"

// IsValueNil checks whether provided Value is nil.
// Only kinds that can hold nil are inspected, arrays are never nil.
func IsValueNil(v reflect.Value) bool {
	nodeKind := v.Kind()
	if nodeKind == reflect.Ptr || nodeKind == reflect.Map ||
		nodeKind == reflect.Chan || nodeKind == reflect.Slice {
		return v.IsNil()
	}

	return false
}
