package utils

import "sort"

// JarSet is a set of jar identifiers
type JarSet map[string]struct{}

// NewJarSet builds a set from names, collapsing duplicates
func NewJarSet(names ...string) JarSet {
	s := make(JarSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

func (s JarSet) Add(name string) {
	s[name] = struct{}{}
}

func (s JarSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members in lexicographic order
func (s JarSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Minus returns members of s not present in other
func (s JarSet) Minus(other JarSet) JarSet {
	out := make(JarSet)
	for k := range s {
		if !other.Has(k) {
			out.Add(k)
		}
	}
	return out
}

// Intersect returns members present in both sets
func (s JarSet) Intersect(other JarSet) JarSet {
	out := make(JarSet)
	for k := range s {
		if other.Has(k) {
			out.Add(k)
		}
	}
	return out
}

// Union merges both sets into a new one
func (s JarSet) Union(other JarSet) JarSet {
	out := make(JarSet, len(s)+len(other))
	for k := range s {
		out.Add(k)
	}
	for k := range other {
		out.Add(k)
	}
	return out
}
