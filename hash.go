package deltalog

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"
	"math"
	"sort"
)

// NewHash returns a new hash interface, wrapped in a function for easy
// hash algorithm switching, package consumers can override NewHash
// with their own desired hash.Hash implementation. default is SHA-256,
// strong enough that digest equality stands in for subtree equality
var NewHash = func() hash.Hash {
	return sha256.New()
}

// kind marker bytes prefix every canonical encoding so that values with
// identical content but different shapes (eg empty mapping vs empty sequence)
// digest differently
const (
	tagNull     = 'z'
	tagBool     = 'b'
	tagNumber   = 'n'
	tagString   = 's'
	tagDate     = 'd'
	tagSequence = 'a'
	tagMapping  = 'm'
	tagOpaque   = 'o'
)

// errCannotCanonicalize marks a value the canonical encoding has no stable
// representation for (functions). equalByContent maps it to "not equal" so
// traversal descends & reports the offending position precisely.
var errCannotCanonicalize = errors.New("deltalog: cannot canonicalize value")

// equalByContent reports whether two values have identical content by
// comparing digests of their canonical encodings. pure function of its
// inputs: no caching across calls.
func equalByContent(a, b interface{}) bool {
	da, err := digest(a)
	if err != nil {
		return false
	}
	db, err := digest(b)
	if err != nil {
		return false
	}
	return bytes.Equal(da, db)
}

// digest produces the content hash of a value's canonical encoding
func digest(v interface{}) ([]byte, error) {
	h := NewHash()
	if err := writeCanonical(h, v); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// writeCanonical streams a deterministic tagged encoding of v into w.
// mapping keys are written in sorted order, numbers normalized to float64
// bits, dates by instant, strings & composites length-prefixed so adjacent
// values can't collide.
func writeCanonical(w io.Writer, v interface{}) error {
	switch x := v.(type) {
	case nil:
		w.Write([]byte{tagNull})
	case bool:
		b := byte(0)
		if x {
			b = 1
		}
		w.Write([]byte{tagBool, b})
	case string:
		writeTagged(w, tagString, []byte(x))
	case map[string]interface{}:
		w.Write([]byte{tagMapping})
		writeLen(w, len(x))
		for _, key := range sortedKeys(x) {
			writeTagged(w, tagString, []byte(key))
			if err := writeCanonical(w, x[key]); err != nil {
				return err
			}
		}
	case []interface{}:
		w.Write([]byte{tagSequence})
		writeLen(w, len(x))
		for _, el := range x {
			if err := writeCanonical(w, el); err != nil {
				return err
			}
		}
	default:
		if t, ok := instant(v); ok {
			w.Write([]byte{tagDate})
			binary.Write(w, binary.BigEndian, t.UnixNano())
			return nil
		}
		if f, ok := toFloat(v); ok {
			w.Write([]byte{tagNumber})
			binary.Write(w, binary.BigEndian, math.Float64bits(f))
			return nil
		}
		if kindOf(v) == kindUnsupported {
			return errCannotCanonicalize
		}
		// out-of-universe scalar. type + value rendering is deterministic
		// per value, which is all the digest contract requires
		writeTagged(w, tagOpaque, fmt.Appendf(nil, "%T=%v", x, x))
	}
	return nil
}

func writeTagged(w io.Writer, tag byte, data []byte) {
	w.Write([]byte{tag})
	writeLen(w, len(data))
	w.Write(data)
}

func writeLen(w io.Writer, n int) {
	binary.Write(w, binary.BigEndian, uint64(n))
}

// sortedKeys enumerates mapping keys in lexical order. go maps carry no
// insertion order, so lexical order doubles as the deterministic key order
// for both hashing & changelog enumeration.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
