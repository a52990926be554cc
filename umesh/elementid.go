// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package umesh

import (
	"sort"

	"github.com/cpmech/mefi/etype"
)

// ElementId globally identifies one element within one mesh: its type
// plus its block-local index. Stable only until a structural mutation
// (element deletion or reordering) occurs, per spec §3.
type ElementId struct {
	Type  etype.Type
	Index int
}

// ElementIds is the list-form dual collection from spec §3: per-type
// indices kept in insertion order.
type ElementIds struct {
	order []etype.Type
	idx   map[etype.Type][]int
}

// NewElementIds returns an empty ElementIds collection.
func NewElementIds() *ElementIds {
	return &ElementIds{idx: make(map[etype.Type][]int)}
}

// Add appends one element id, creating its type bucket if needed.
func (e *ElementIds) Add(id ElementId) {
	if _, ok := e.idx[id.Type]; !ok {
		e.order = append(e.order, id.Type)
	}
	e.idx[id.Type] = append(e.idx[id.Type], id.Index)
}

// Types returns the element types present, in first-seen order.
func (e *ElementIds) Types() []etype.Type { return append([]etype.Type(nil), e.order...) }

// Indices returns the block-local indices for one type, in insertion order.
func (e *ElementIds) Indices(t etype.Type) []int { return e.idx[t] }

// Len returns the total element count across all types.
func (e *ElementIds) Len() int {
	n := 0
	for _, idxs := range e.idx {
		n += len(idxs)
	}
	return n
}

// All returns every ElementId, per-type sorted (sorted by type, then by
// the order originally inserted).
func (e *ElementIds) All() []ElementId {
	sorted := etype.All()
	var out []ElementId
	present := make(map[etype.Type]bool, len(e.order))
	for _, t := range e.order {
		present[t] = true
	}
	for _, t := range sorted {
		if !present[t] {
			continue
		}
		for _, i := range e.idx[t] {
			out = append(out, ElementId{Type: t, Index: i})
		}
	}
	return out
}

// ToSet converts to the hash-set dual form.
func (e *ElementIds) ToSet() *ElementIdsSet {
	s := NewElementIdsSet()
	for _, t := range e.order {
		for _, i := range e.idx[t] {
			s.Add(ElementId{Type: t, Index: i})
		}
	}
	return s
}

// ElementIdsSet is the set-form dual collection: per-type hash sets for
// fast membership and set algebra.
type ElementIdsSet struct {
	sets map[etype.Type]map[int]bool
}

// NewElementIdsSet returns an empty set.
func NewElementIdsSet() *ElementIdsSet {
	return &ElementIdsSet{sets: make(map[etype.Type]map[int]bool)}
}

// Add inserts one element id.
func (s *ElementIdsSet) Add(id ElementId) {
	m, ok := s.sets[id.Type]
	if !ok {
		m = make(map[int]bool)
		s.sets[id.Type] = m
	}
	m[id.Index] = true
}

// Contains reports membership.
func (s *ElementIdsSet) Contains(id ElementId) bool {
	m, ok := s.sets[id.Type]
	return ok && m[id.Index]
}

// Remove deletes one element id, if present.
func (s *ElementIdsSet) Remove(id ElementId) {
	if m, ok := s.sets[id.Type]; ok {
		delete(m, id.Index)
	}
}

// Len returns the total element count.
func (s *ElementIdsSet) Len() int {
	n := 0
	for _, m := range s.sets {
		n += len(m)
	}
	return n
}

// Types returns the element types with at least one member, unordered.
func (s *ElementIdsSet) Types() []etype.Type {
	out := make([]etype.Type, 0, len(s.sets))
	for t := range s.sets {
		out = append(out, t)
	}
	return out
}

// IndicesOf returns the block-local indices present for one type, unordered.
func (s *ElementIdsSet) IndicesOf(t etype.Type) []int {
	m := s.sets[t]
	out := make([]int, 0, len(m))
	for i := range m {
		out = append(out, i)
	}
	return out
}

// ToList converts set -> list form, sorting per-type indices (spec §3:
// "Converting set→list sorts per type").
func (s *ElementIdsSet) ToList() *ElementIds {
	l := NewElementIds()
	for _, t := range etype.All() {
		m, ok := s.sets[t]
		if !ok || len(m) == 0 {
			continue
		}
		idxs := make([]int, 0, len(m))
		for i := range m {
			idxs = append(idxs, i)
		}
		sort.Ints(idxs)
		for _, i := range idxs {
			l.Add(ElementId{Type: t, Index: i})
		}
	}
	return l
}

// Union returns the elements present in a or b.
func Union(a, b *ElementIdsSet) *ElementIdsSet {
	out := NewElementIdsSet()
	for t, m := range a.sets {
		for i := range m {
			out.Add(ElementId{Type: t, Index: i})
		}
	}
	for t, m := range b.sets {
		for i := range m {
			out.Add(ElementId{Type: t, Index: i})
		}
	}
	return out
}

// Intersection returns the elements present in both a and b.
func Intersection(a, b *ElementIdsSet) *ElementIdsSet {
	out := NewElementIdsSet()
	for t, m := range a.sets {
		bm, ok := b.sets[t]
		if !ok {
			continue
		}
		for i := range m {
			if bm[i] {
				out.Add(ElementId{Type: t, Index: i})
			}
		}
	}
	return out
}

// Difference returns the elements present in a but not in b.
func Difference(a, b *ElementIdsSet) *ElementIdsSet {
	out := NewElementIdsSet()
	for t, m := range a.sets {
		bm := b.sets[t]
		for i := range m {
			if bm == nil || !bm[i] {
				out.Add(ElementId{Type: t, Index: i})
			}
		}
	}
	return out
}

// SymmetricDifference returns the elements present in exactly one of a, b.
func SymmetricDifference(a, b *ElementIdsSet) *ElementIdsSet {
	return Union(Difference(a, b), Difference(b, a))
}
