// Package host defines the dynamically-typed values accepted by the
// converter that plain Go types cannot express: key ordered objects,
// arguments-like sequences and explicit dimensions. It also decodes JSON
// and YAML documents into these values, preserving document key order.
package host
