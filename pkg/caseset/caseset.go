// String set used for case identifier membership tests.
package caseset

type Set map[string]struct{}

func New(items ...string) Set {
	set := Set{}
	for _, item := range items {
		set.Add(item)
	}

	return set
}

func (s Set) Add(item string) {
	s[item] = struct{}{}
}

func (s Set) Has(item string) bool {
	_, has := s[item]
	return has
}

func (s Set) Len() int {
	return len(s)
}
