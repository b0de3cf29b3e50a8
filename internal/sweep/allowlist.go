package sweep

// AllowList is the set of filenames exempt from deletion.
// Membership is exact, case-sensitive string equality.
type AllowList map[string]struct{}

// NewAllowList builds a set from names; duplicates collapse
func NewAllowList(names ...string) AllowList {
	a := make(AllowList, len(names))
	for _, n := range names {
		a.Add(n)
	}
	return a
}

func (a AllowList) Add(name string) {
	a[name] = struct{}{}
}

func (a AllowList) Contains(name string) bool {
	_, ok := a[name]
	return ok
}
