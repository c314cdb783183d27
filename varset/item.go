package varset

// Item is a live registry slot bound to a Definition. Global items own their
// storage from registration onward; account children start out mirroring
// their parent and only own storage once explicitly assigned.
type Item struct {
	def  *Definition
	name string

	// value is the owned native storage; nil means unset.
	value Value

	// overridden is meaningful only when parent is non-nil: a child with
	// overridden=false resolves reads through the parent chain.
	overridden bool

	// parent links an account child to the global item it inherits from.
	// Set once at creation; the schema forbids cycles by construction
	// (children are only ever created from existing parent items).
	parent *Item

	// initial, when non-nil, overrides the definition's encoded default
	// for this item. Installed via InitialSet.
	initial *string
}

// Name returns the item's registered name. Account children are named
// "account:variable".
func (it *Item) Name() string {
	return it.name
}

// Definition returns the schema record the item is bound to.
func (it *Item) Definition() *Definition {
	return it.def
}

// Inherits reports whether the item is an account child.
func (it *Item) Inherits() bool {
	return it.parent != nil
}

// Overridden reports whether an account child holds an explicit local value
// instead of mirroring its parent. Always true for global items.
func (it *Item) Overridden() bool {
	if it.parent == nil {
		return true
	}
	return it.overridden
}

// resolve follows parent links until it reaches the item whose storage
// answers reads: the item itself if it owns a value, else the nearest
// ancestor that does.
func (it *Item) resolve() *Item {
	cur := it
	for cur.parent != nil && !cur.overridden {
		cur = cur.parent
	}
	return cur
}

// base follows parent links to the root global item.
func (it *Item) base() *Item {
	cur := it
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// effectiveInitial computes the encoded default that Reset applies: the
// item's own initial override if present, else the definition's default.
// Parent-mirroring children never reach this; their reset clears the
// override instead.
func (it *Item) effectiveInitial() string {
	if it.initial != nil {
		return *it.initial
	}
	return it.def.Initial
}
