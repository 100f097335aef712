package fields

import (
	"reflect"
	"time"
)

var (
	timeType   = reflect.TypeOf(time.Time{})
	stringType = reflect.TypeOf("")
)

// Compatible decides whether a projection field's declared type is a legal
// narrowing of the exhaustive type's declared field type.
//
// The relation is directed and narrowing-only. Beyond identical types, a
// projection may strip an optionality pointer, strip the extra indirection
// used for self-referential types, or receive a timestamp as its wire
// representation (a string):
//
//	Compatible(T, T)
//	Compatible(*T, T)
//	Compatible(**T, T)
//	Compatible(**T, *T)
//	Compatible(time.Time, string)
//	Compatible(*time.Time, *string)
//	Compatible(*time.Time, string)
//
// Nothing else holds. In particular Compatible(T, *T) is false: a
// projection may never claim a field is more optional than the schema
// says.
func Compatible(full, proj reflect.Type) bool {
	if full == proj {
		return true
	}

	if full.Kind() == reflect.Pointer {
		inner := full.Elem()
		if inner == proj {
			return true
		}
		if inner.Kind() == reflect.Pointer {
			if inner.Elem() == proj {
				return true
			}
			if proj.Kind() == reflect.Pointer && proj.Elem() == inner.Elem() {
				return true
			}
		}
		if inner == timeType {
			if proj == stringType {
				return true
			}
			if proj.Kind() == reflect.Pointer && proj.Elem() == stringType {
				return true
			}
		}
	}

	return full == timeType && proj == stringType
}
