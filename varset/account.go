package varset

// Account groups the child items created for one account-scoped override
// set. Children are registered under "account:variable" and mirror their
// global parent until explicitly assigned.
type Account struct {
	name string
	set  *Set
	vars []string
	itms []*Item
}

// AddAccount creates child items for the named variables, each inheriting
// from the matching global item. Creation is atomic: an unknown variable or
// a name collision registers nothing.
func (s *Set) AddAccount(account string, vars []string) (*Account, error) {
	if account == "" {
		return nil, errInternal("empty account name", nil)
	}

	children := make([]*Item, len(vars))
	for i, v := range vars {
		parent := s.items[v]
		if parent == nil {
			return nil, errUnknownVariable(v)
		}
		childName := account + ":" + v
		if _, exists := s.items[childName]; exists {
			return nil, errDuplicate("variable", childName)
		}
		children[i] = &Item{
			def:    parent.def,
			name:   childName,
			parent: parent,
		}
	}

	for _, child := range children {
		s.items[child.name] = child
	}

	return &Account{
		name: account,
		set:  s,
		vars: append([]string(nil), vars...),
		itms: children,
	}, nil
}

// Name returns the account name.
func (a *Account) Name() string {
	return a.name
}

// ItemName returns the registered name of the account's item for a
// variable, e.g. "work:folder".
func (a *Account) ItemName(variable string) string {
	return a.name + ":" + variable
}

// Item returns the account's child item for a variable, or nil when the
// variable is not part of this account's override set.
func (a *Account) Item(variable string) *Item {
	for i, v := range a.vars {
		if v == variable {
			return a.itms[i]
		}
	}
	return nil
}

// StringGet renders the account's value for a variable, falling through to
// the global value when no override is set.
func (a *Account) StringGet(variable string) (string, Result, error) {
	it := a.Item(variable)
	if it == nil {
		return "", Unknown, errUnknownVariable(a.ItemName(variable))
	}
	return a.set.ItemStringGet(it)
}

// StringSet installs an account-local override for a variable.
func (a *Account) StringSet(variable, text string) (Result, error) {
	it := a.Item(variable)
	if it == nil {
		return Unknown, errUnknownVariable(a.ItemName(variable))
	}
	return a.set.ItemStringSet(it, text)
}

// Reset discards the account's override for a variable, reverting to the
// global value.
func (a *Account) Reset(variable string) (Result, error) {
	it := a.Item(variable)
	if it == nil {
		return Unknown, errUnknownVariable(a.ItemName(variable))
	}
	return a.set.ItemReset(it)
}

// Remove unregisters the account's child items, releasing any overrides.
func (a *Account) Remove() {
	for _, it := range a.itms {
		if t, ok := a.set.types[it.def.Kind]; ok {
			t.Destroy(it.value)
		}
		delete(a.set.items, it.name)
	}
	a.itms = nil
	a.vars = nil
}
