// Package visitor offers visitors over host containers.
// It provides iteration over structs (using xunsafe field access and sass/json
// tags), maps (keys stringified and visited in natural order), slices, arrays
// and key ordered host objects, with simple callback-based traversal.
package visitor
