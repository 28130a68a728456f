// Copyright 2024 The langid Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package langid

import (
	"github.com/RoaringBitmap/roaring"
)

// LanguageSet is a compact, ordinal-indexed set of languages. It backs the
// detector's configured language set and the rule filter's surviving
// candidates: both are built and intersected repeatedly per detect() call,
// so a roaring.Bitmap over the ~75 ordinals is cheaper than a
// map[Language]struct{} and iterates in ordinal order for free, which
// keeps confidence-ranking tiebreaks deterministic (spec.md §4.11 step 5).
type LanguageSet struct {
	bits *roaring.Bitmap
}

// NewLanguageSet builds a LanguageSet containing the given languages.
func NewLanguageSet(langs ...Language) LanguageSet {
	s := LanguageSet{bits: roaring.New()}
	for _, l := range langs {
		s.bits.Add(uint32(l))
	}
	return s
}

// AllLanguageSet returns a LanguageSet containing the full catalogue.
func AllLanguageSet() LanguageSet {
	return NewLanguageSet(AllLanguages()...)
}

func (s LanguageSet) ensure() LanguageSet {
	if s.bits == nil {
		return LanguageSet{bits: roaring.New()}
	}
	return s
}

// Add inserts l into the set, returning the (possibly same) set.
func (s LanguageSet) Add(l Language) LanguageSet {
	s = s.ensure()
	s.bits.Add(uint32(l))
	return s
}

// Contains reports whether l is a member of the set.
func (s LanguageSet) Contains(l Language) bool {
	if s.bits == nil {
		return false
	}
	return s.bits.Contains(uint32(l))
}

// Len returns the number of languages in the set.
func (s LanguageSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.GetCardinality())
}

// Slice returns the set's members in ascending ordinal order.
func (s LanguageSet) Slice() []Language {
	if s.bits == nil {
		return nil
	}
	out := make([]Language, 0, s.bits.GetCardinality())
	it := s.bits.Iterator()
	for it.HasNext() {
		out = append(out, Language(it.Next()))
	}
	return out
}

// Intersect returns the set of languages present in both s and other.
func (s LanguageSet) Intersect(other LanguageSet) LanguageSet {
	s, other = s.ensure(), other.ensure()
	return LanguageSet{bits: roaring.And(s.bits, other.bits)}
}

// IsEmpty reports whether the set has no members.
func (s LanguageSet) IsEmpty() bool { return s.Len() == 0 }
