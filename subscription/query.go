// Package subscription provides live document and query watches over
// Firestore snapshot listeners, plus the query descriptions that decide
// when a listener must be torn down and re-created.
package subscription

import (
	"reflect"

	"cloud.google.com/go/firestore"
)

// Clause is a single where filter.
type Clause struct {
	Field string
	Op    string
	Value interface{}
}

// Order is a single sort directive.
type Order struct {
	Field string
	Desc  bool
}

// QuerySpec is a value description of a Firestore query. Two specs that are
// Equal describe the same query, so a live listener keyed by a spec only
// resubscribes when the description actually changes, not when a caller
// rebuilds an identical one.
type QuerySpec struct {
	Clauses []Clause
	Orders  []Order
	Limit   int
}

// Equal reports whether both specs describe the same query, comparing by
// value including clause operands.
func (s QuerySpec) Equal(o QuerySpec) bool {
	if len(s.Clauses) != len(o.Clauses) || len(s.Orders) != len(o.Orders) || s.Limit != o.Limit {
		return false
	}

	for i := range s.Clauses {
		if s.Clauses[i].Field != o.Clauses[i].Field || s.Clauses[i].Op != o.Clauses[i].Op {
			return false
		}

		if !reflect.DeepEqual(s.Clauses[i].Value, o.Clauses[i].Value) {
			return false
		}
	}

	for i := range s.Orders {
		if s.Orders[i] != o.Orders[i] {
			return false
		}
	}

	return true
}

// Apply builds the Firestore query described by the spec on top of q.
func (s QuerySpec) Apply(q firestore.Query) firestore.Query {
	for _, c := range s.Clauses {
		q = q.Where(c.Field, c.Op, c.Value)
	}

	for _, o := range s.Orders {
		dir := firestore.Asc
		if o.Desc {
			dir = firestore.Desc
		}

		q = q.OrderBy(o.Field, dir)
	}

	if s.Limit > 0 {
		q = q.Limit(s.Limit)
	}

	return q
}
