package deltalog

import (
	"reflect"
	"time"
)

// kind defines all of the atoms in our universe, or the shapes of data we
// will encounter while walking a value
type kind uint8

const (
	kindScalar kind = iota
	kindMapping
	kindSequence
	kindDate
	kindUnsupported
)

func (k kind) String() string {
	switch k {
	case kindMapping:
		return "Mapping"
	case kindSequence:
		return "Sequence"
	case kindDate:
		return "Date"
	case kindUnsupported:
		return "Unsupported"
	default:
		return "Scalar"
	}
}

// kindOf assigns a value its shape. anything outside the JSON universe that
// isn't a date or a function is treated as a scalar & compared by deep
// equality
func kindOf(v interface{}) kind {
	switch v.(type) {
	case map[string]interface{}:
		return kindMapping
	case []interface{}:
		return kindSequence
	case nil, bool, string,
		float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return kindScalar
	}
	if _, ok := instant(v); ok {
		return kindDate
	}
	if reflect.ValueOf(v).Kind() == reflect.Func {
		return kindUnsupported
	}
	return kindScalar
}

// pairKind classifies two co-located values jointly, selecting the comparison
// strategy for the pair
type pairKind uint8

const (
	// heterogeneous covers pairs that aren't jointly classifiable as the same
	// composite kind: a shape change (eg sequence -> string) compares the two
	// whole values as opaque scalars
	heterogeneous pairKind = iota
	bothMappings
	bothSequences
	bothDates
	bothScalars
)

// classifyPair must never see an unsupported value. callers check kindOf on
// both sides first so the error can carry the offending path.
func classifyPair(a, b interface{}) pairKind {
	ak, bk := kindOf(a), kindOf(b)
	if ak != bk {
		return heterogeneous
	}
	switch ak {
	case kindMapping:
		return bothMappings
	case kindSequence:
		return bothSequences
	case kindDate:
		return bothDates
	default:
		return bothScalars
	}
}

// instant extracts the date instant from a value, reporting whether the value
// is date-like. dates compare by their underlying instant, never by string
// form or reference.
func instant(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	}
	return time.Time{}, false
}

// scalarsEqual reports strict equality for scalar & heterogeneous pairs.
// numeric values compare by magnitude across numeric types, everything else
// by deep equality.
func scalarsEqual(a, b interface{}) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	if at, ok := instant(a); ok {
		bt, ok := instant(b)
		return ok && at.Equal(bt)
	}
	return reflect.DeepEqual(a, b)
}

// toFloat normalizes any numeric value to float64, the representation JSON
// decoding produces
func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}
