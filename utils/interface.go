package utils

import "reflect"

// InterfaceIsNil reports whether i is nil or wraps a nil pointer, map,
// slice, function or channel. A typed nil stored in an interface does not
// compare equal to nil, so callers accepting any need this instead.
// https://mangatmodi.medium.com/go-check-nil-interface-the-right-way-d142776edef1
func InterfaceIsNil(i any) bool {
	if i == nil {
		return true
	}
	switch reflect.TypeOf(i).Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice:
		return reflect.ValueOf(i).IsNil()
	}
	return false
}
