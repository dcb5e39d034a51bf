// Package deltalog computes a structural changelog between two versions of a
// nested value, reporting every addition, deletion, and update as a flat,
// path-addressed list of entries. It's intended for change-tracking, audit
// trails, and notification generation over semi-structured (JSON-like) data.
//
// Instead of operating on encoded JSON directly, deltalog operates on the go
// values created by unmarshaling from JSON, which are two composite types:
//
//	map[string]interface{}
//	[]interface{}
//
// plus time.Time for date instants and the scalar types string, bool, the
// numeric kinds, and nil. Function values are not comparable data and abort a
// comparison with the path at which they were found.
//
// The comparison walks both values in lockstep, pruning identical subtrees
// with a content digest before recursing, so the cost of a comparison scales
// with the size of the change rather than the size of the document. Output
// order is a contract: differences keyed by the prior value come first, in
// key order, depth-first, with newly added keys and elements appended per
// level.
//
// Entries serialize to the shape {path, oldVal?, newVal?, note}, with paths
// like "root.data[2].email" rooted at a caller-chosen label.
package deltalog
