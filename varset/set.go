// Package varset implements a typed, introspectable registry of
// runtime-tunable settings. Every variable is described once by an immutable
// Definition, stored in a live Item, and manipulated through a uniform
// six-operation Type contract, so the registry itself never special-cases a
// value kind. Account-scoped items transparently inherit from their global
// counterpart until explicitly overridden, and every successful commit is
// broadcast through a notification hub.
package varset

import (
	"sort"

	"github.com/goliatone/go-varset/logger"
	"github.com/goliatone/go-varset/notify"
)

// Set owns the name→Item map, the Kind→Type registry and the notification
// hub. It is the single entry point for the mutation/query protocol; callers
// thread it explicitly rather than relying on process-wide state.
//
// A Set is not safe for concurrent mutation; it is meant to be driven from
// one logical thread of control, the way an interactive client drives its
// settings.
type Set struct {
	items map[string]*Item
	types map[Kind]Type
	hub   *notify.Hub
	log   logger.Logger
}

// New creates an empty Set. Register type descriptors before definitions.
func New() *Set {
	return &Set{
		items: make(map[string]*Item),
		types: make(map[Kind]Type),
		hub:   notify.New(),
		log:   logger.NewDefaultLogger("varset"),
	}
}

// WithLogger replaces the Set's logger.
func (s *Set) WithLogger(l logger.Logger) *Set {
	if l != nil {
		s.log = l
	}
	return s
}

// Notify returns the Set's notification hub for observer subscriptions.
func (s *Set) Notify() *notify.Hub {
	return s.hub
}

// RegisterType installs the descriptor for a value kind. Registering the
// same kind twice, or a nil descriptor, fails.
func (s *Set) RegisterType(kind Kind, t Type) error {
	if t == nil {
		return errInternal("nil type descriptor", map[string]any{"kind": kind.String()})
	}
	if _, exists := s.types[kind]; exists {
		return errDuplicate("type", kind.String())
	}
	s.types[kind] = t
	return nil
}

// RegisterDefinitions performs a bulk schema load. Registration is atomic:
// if any name collides with an existing item, any kind lacks a descriptor,
// or any default fails to parse, nothing is registered.
func (s *Set) RegisterDefinitions(defs []*Definition) error {
	staged := make([]Value, len(defs))

	for i, def := range defs {
		if def == nil || def.Name == "" {
			return errInternal("definition missing a name", map[string]any{"index": i})
		}
		if _, exists := s.items[def.Name]; exists {
			return errDuplicate("variable", def.Name)
		}
		t, ok := s.types[def.Kind]
		if !ok {
			return errInternal("no descriptor for kind", map[string]any{
				"variable": def.Name,
				"kind":     def.Kind.String(),
			})
		}
		v, res, err := t.Reset(def, def.Initial)
		if !res.IsSuccess() {
			for j, sv := range staged[:i] {
				s.types[defs[j].Kind].Destroy(sv)
			}
			return errInvalidValue(def.Name, err)
		}
		staged[i] = v
	}

	for i, def := range defs {
		s.items[def.Name] = &Item{
			def:   def,
			name:  def.Name,
			value: staged[i],
		}
	}
	return nil
}

// Lookup resolves a name to its Item, for hot paths that want to skip
// repeated map lookups. Returns nil when the name is not registered.
func (s *Set) Lookup(name string) *Item {
	return s.items[name]
}

// Names returns all registered item names, sorted.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.items))
	for name := range s.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// typeOf returns the descriptor for an item, logging when the registry
// invariant (every item's kind has a descriptor) is broken.
func (s *Set) typeOf(it *Item) (Type, error) {
	t, ok := s.types[it.def.Kind]
	if !ok {
		s.log.Error("variable %q has unregistered kind %s", it.name, it.def.Kind)
		return nil, errInternal("no descriptor for kind", map[string]any{
			"variable": it.name,
			"kind":     it.def.Kind.String(),
		})
	}
	return t, nil
}

// render is the structural-equality helper: two values are "the same" when
// their canonical text forms match.
func render(t Type, def *Definition, v Value) (string, bool) {
	text, res, _ := t.StringGet(def, v)
	return text, res.IsSuccess()
}

// StringSet parses text and assigns it to the named item. See ItemStringSet
// for the full protocol.
func (s *Set) StringSet(name, text string) (Result, error) {
	it := s.items[name]
	if it == nil {
		return Unknown, errUnknownVariable(name)
	}
	return s.ItemStringSet(it, text)
}

// ItemStringSet parses text and assigns it to the item: parse, no-change
// check, validator, commit, notify — one atomic step from the caller's
// perspective. A failure at any stage leaves the stored value untouched.
func (s *Set) ItemStringSet(it *Item, text string) (Result, error) {
	if it == nil {
		return Internal, errInternal("nil item", nil)
	}
	t, err := s.typeOf(it)
	if err != nil {
		return Internal, err
	}

	candidate, res, err := t.StringSet(it.def, text)
	if !res.IsSuccess() {
		return Invalid, errInvalidValue(it.name, err)
	}
	empty := res.Has(FlagEmpty)

	return s.commit(it, t, candidate, empty, notify.EventSet)
}

// commit runs the shared tail of every assignment: no-change detection,
// validation, replace, notify.
func (s *Set) commit(it *Item, t Type, candidate Value, empty bool, kind notify.EventKind) (Result, error) {
	// Only compare against storage this item actually owns; a mirroring
	// child always materializes its first explicit assignment.
	if it.parent == nil || it.overridden {
		curText, curOK := render(t, it.def, it.value)
		newText, newOK := render(t, it.def, candidate)
		if curOK && newOK && curText == newText {
			t.Destroy(candidate)
			res := Success | FlagNoChange
			if empty {
				res |= FlagEmpty
			}
			return res, nil
		}
	}

	if it.def.Validate != nil {
		if verr := it.def.Validate(it.def, candidate); verr != nil {
			t.Destroy(candidate)
			return Invalid | FlagValidator, errValidatorRejected(it.name, verr)
		}
	}

	t.Destroy(it.value)
	it.value = candidate
	it.overridden = true

	res := Success
	if empty {
		res |= FlagEmpty
	}
	s.hub.Notify(notify.Event{Name: it.name, Kind: kind})
	return res, nil
}

// StringGet renders the named item's current value. An account child with
// no explicit override renders its parent's live value.
func (s *Set) StringGet(name string) (string, Result, error) {
	it := s.items[name]
	if it == nil {
		return "", Unknown, errUnknownVariable(name)
	}
	return s.ItemStringGet(it)
}

// ItemStringGet renders the item's current value to text. Unset storage
// yields empty text with Success|FlagEmpty.
func (s *Set) ItemStringGet(it *Item) (string, Result, error) {
	if it == nil {
		return "", Internal, errInternal("nil item", nil)
	}
	t, err := s.typeOf(it)
	if err != nil {
		return "", Internal, err
	}
	text, res, gerr := t.StringGet(it.def, it.resolve().value)
	if !res.IsSuccess() {
		return "", Internal, errInternal("value failed to render", map[string]any{"variable": it.name})
	}
	return text, res, gerr
}

// NativeSet installs a copy of a pre-built native value into the named item.
func (s *Set) NativeSet(name string, v Value) (Result, error) {
	it := s.items[name]
	if it == nil {
		return Unknown, errUnknownVariable(name)
	}
	return s.ItemNativeSet(it, v)
}

// ItemNativeSet installs a deep copy of the candidate so the caller's value
// and the registry's value have independent lifetimes. The validator sees
// the raw candidate before the copy is made.
func (s *Set) ItemNativeSet(it *Item, v Value) (Result, error) {
	if it == nil {
		return Internal, errInternal("nil item", nil)
	}
	t, err := s.typeOf(it)
	if err != nil {
		return Internal, err
	}

	candidate, res, cerr := t.NativeSet(it.def, v)
	if !res.IsSuccess() {
		return Invalid, errInvalidValue(it.name, cerr)
	}

	return s.commit(it, t, candidate, res.Has(FlagEmpty), notify.EventSet)
}

// NativeGet returns the named item's native value as a borrowed handle.
// Callers must not mutate it; to hold an independent copy, pass it through
// NativeSet on another item.
func (s *Set) NativeGet(name string) (Value, error) {
	it := s.items[name]
	if it == nil {
		return nil, errUnknownVariable(name)
	}
	return s.ItemNativeGet(it)
}

// ItemNativeGet returns the item's native value, resolving through parent
// links for mirroring children.
func (s *Set) ItemNativeGet(it *Item) (Value, error) {
	if it == nil {
		return nil, errInternal("nil item", nil)
	}
	t, err := s.typeOf(it)
	if err != nil {
		return nil, err
	}
	return t.NativeGet(it.def, it.resolve().value)
}

// Reset restores the named item to its applicable default: the item's own
// initial override if present, else the parent's live value for a mirroring
// child, else the definition's default.
func (s *Set) Reset(name string) (Result, error) {
	it := s.items[name]
	if it == nil {
		return Unknown, errUnknownVariable(name)
	}
	return s.ItemReset(it)
}

// ItemReset restores the item's applicable default. Resetting an account
// child with no per-item initial discards its override and reverts to
// dynamic mirroring of the parent; resetting a parent never cascades into
// children that hold overrides.
func (s *Set) ItemReset(it *Item) (Result, error) {
	if it == nil {
		return Internal, errInternal("nil item", nil)
	}
	t, err := s.typeOf(it)
	if err != nil {
		return Internal, err
	}

	// Child with no local default: reset means "mirror the parent again".
	if it.parent != nil && it.initial == nil {
		if !it.overridden {
			return Success | FlagNoChange, nil
		}
		curText, curOK := render(t, it.def, it.value)
		parentText, parentOK := render(t, it.def, it.parent.resolve().value)

		t.Destroy(it.value)
		it.value = nil
		it.overridden = false

		if curOK && parentOK && curText == parentText {
			return Success | FlagNoChange, nil
		}
		s.hub.Notify(notify.Event{Name: it.name, Kind: notify.EventReset})
		return Success, nil
	}

	initial := it.effectiveInitial()
	candidate, res, rerr := t.Reset(it.def, initial)
	if !res.IsSuccess() {
		// A default that was accepted at registration no longer parses.
		s.log.Error("default for %q failed to parse: %v", it.name, rerr)
		return Internal, errInternal("default value failed to parse", map[string]any{
			"variable": it.name,
			"initial":  initial,
		})
	}
	empty := res.Has(FlagEmpty)

	curText, curOK := render(t, it.def, it.value)
	newText, newOK := render(t, it.def, candidate)
	if curOK && newOK && curText == newText {
		t.Destroy(candidate)
		res := Success | FlagNoChange
		if empty {
			res |= FlagEmpty
		}
		return res, nil
	}

	if it.def.Validate != nil {
		if verr := it.def.Validate(it.def, candidate); verr != nil {
			t.Destroy(candidate)
			return Invalid | FlagValidator, errValidatorRejected(it.name, verr)
		}
	}

	t.Destroy(it.value)
	it.value = candidate
	it.overridden = true

	out := Success
	if empty {
		out |= FlagEmpty
	}
	s.hub.Notify(notify.Event{Name: it.name, Kind: notify.EventReset})
	return out, nil
}

// InitialSet records text as the named item's starting value, the one Reset
// will apply, without touching the current value. The text must parse.
func (s *Set) InitialSet(name, text string) (Result, error) {
	it := s.items[name]
	if it == nil {
		return Unknown, errUnknownVariable(name)
	}
	return s.ItemInitialSet(it, text)
}

// ItemInitialSet records the item's starting value. Not permitted on
// account children; their default is the parent's live value.
func (s *Set) ItemInitialSet(it *Item, text string) (Result, error) {
	if it == nil {
		return Internal, errInternal("nil item", nil)
	}
	if it.parent != nil {
		return Internal, errInternal("cannot set initial value of an inherited item", map[string]any{
			"variable": it.name,
		})
	}
	t, err := s.typeOf(it)
	if err != nil {
		return Internal, err
	}

	candidate, res, perr := t.StringSet(it.def, text)
	if !res.IsSuccess() {
		return Invalid, errInvalidValue(it.name, perr)
	}
	t.Destroy(candidate)

	it.initial = &text
	s.hub.Notify(notify.Event{Name: it.name, Kind: notify.EventInitialSet})
	return Success, nil
}

// InitialGet renders the named item's starting value: its initial override
// if present, the parent's live value for account children, else the
// definition's default.
func (s *Set) InitialGet(name string) (string, Result, error) {
	it := s.items[name]
	if it == nil {
		return "", Unknown, errUnknownVariable(name)
	}
	return s.ItemInitialGet(it)
}

// ItemInitialGet renders the item's starting value.
func (s *Set) ItemInitialGet(it *Item) (string, Result, error) {
	if it == nil {
		return "", Internal, errInternal("nil item", nil)
	}
	if it.parent != nil && it.initial == nil {
		return s.ItemStringGet(it.parent)
	}
	return it.effectiveInitial(), Success, nil
}

// Destroy releases the named item's storage. The item stays registered as a
// reusable unset slot; account children revert to mirroring their parent.
func (s *Set) Destroy(name string) error {
	it := s.items[name]
	if it == nil {
		return errUnknownVariable(name)
	}
	t, err := s.typeOf(it)
	if err != nil {
		return err
	}
	t.Destroy(it.value)
	it.value = nil
	it.overridden = false
	return nil
}

// Close releases the storage of every item. The Set must not be used after
// Close.
func (s *Set) Close() {
	for _, it := range s.items {
		if t, ok := s.types[it.def.Kind]; ok {
			t.Destroy(it.value)
		}
		it.value = nil
		it.overridden = false
	}
	s.items = make(map[string]*Item)
}
