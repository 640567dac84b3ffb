package pathview

// Expansion is the transient collapse state of a plan's modules. At most
// one module, keyed by index, is expanded. The zero value has none expanded.
type Expansion struct {
	index    int
	expanded bool
}

// NoneExpanded returns the state with every module collapsed.
func NoneExpanded() Expansion {
	return Expansion{}
}

// Toggle expands module i, collapsing any other. Toggling the expanded
// module collapses it. Negative indexes collapse everything.
func (e Expansion) Toggle(i int) Expansion {
	if i < 0 || (e.expanded && e.index == i) {
		return NoneExpanded()
	}
	return Expansion{index: i, expanded: true}
}

// Expanded returns the expanded module index; ok is false when none is.
func (e Expansion) Expanded() (index int, ok bool) {
	return e.index, e.expanded
}

// IsExpanded reports whether module i is expanded.
func (e Expansion) IsExpanded(i int) bool {
	return e.expanded && e.index == i
}
