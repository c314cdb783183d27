package varset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-varset/varset"
)

func newAccountSet(t *testing.T) (*varset.Set, *varset.Account) {
	t.Helper()
	s := newSet(t,
		&varset.Definition{Name: "folder", Kind: varset.KindPath, Initial: "~/Mail"},
		&varset.Definition{Name: "sidebar_width", Kind: varset.KindNumber, Initial: "30"},
	)
	acc, err := s.AddAccount("work", []string{"folder", "sidebar_width"})
	require.NoError(t, err)
	return s, acc
}

func TestAddAccountAtomic(t *testing.T) {
	s := newSet(t, &varset.Definition{
		Name: "folder", Kind: varset.KindPath, Initial: "~/Mail",
	})

	_, err := s.AddAccount("work", []string{"folder", "no_such"})
	assert.Error(t, err)
	assert.Nil(t, s.Lookup("work:folder"))

	acc, err := s.AddAccount("work", []string{"folder"})
	require.NoError(t, err)
	assert.Equal(t, "work", acc.Name())
	assert.Equal(t, "work:folder", acc.ItemName("folder"))
	assert.NotNil(t, s.Lookup("work:folder"))

	// Re-adding collides on the child names.
	_, err = s.AddAccount("work", []string{"folder"})
	assert.Error(t, err)
}

func TestChildMirrorsParent(t *testing.T) {
	s, acc := newAccountSet(t)

	it := acc.Item("folder")
	require.NotNil(t, it)
	assert.True(t, it.Inherits())
	assert.False(t, it.Overridden())

	got, _, err := acc.StringGet("folder")
	require.NoError(t, err)
	assert.Equal(t, "~/Mail", got)

	// The mirror is live: parent changes show through immediately.
	_, err = s.StringSet("folder", "~/Maildir")
	require.NoError(t, err)
	got, _, _ = acc.StringGet("folder")
	assert.Equal(t, "~/Maildir", got)

	v, err := s.NativeGet("work:sidebar_width")
	require.NoError(t, err)
	assert.Equal(t, 30, v)
}

func TestOverrideSeversMirror(t *testing.T) {
	s, acc := newAccountSet(t)

	res, err := acc.StringSet("folder", "~/Mail/work")
	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.True(t, acc.Item("folder").Overridden())

	// Parent changes no longer show through.
	_, err = s.StringSet("folder", "~/Maildir")
	require.NoError(t, err)
	got, _, _ := acc.StringGet("folder")
	assert.Equal(t, "~/Mail/work", got)

	// And the override never leaks upward.
	got, _, _ = s.StringGet("folder")
	assert.Equal(t, "~/Maildir", got)
}

func TestFirstChildAssignmentAlwaysCommits(t *testing.T) {
	s, acc := newAccountSet(t)
	n := countEvents(s)

	// Assigning the parent's current value still materializes the override;
	// the child owned nothing to compare against.
	res, err := acc.StringSet("folder", "~/Mail")
	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.False(t, res.Has(varset.FlagNoChange))
	assert.True(t, acc.Item("folder").Overridden())
	assert.Equal(t, 1, *n)

	// The second identical write is the usual no-op.
	res, err = acc.StringSet("folder", "~/Mail")
	require.NoError(t, err)
	assert.True(t, res.Has(varset.FlagNoChange))
	assert.Equal(t, 1, *n)
}

func TestChildResetRevertsToMirroring(t *testing.T) {
	s, acc := newAccountSet(t)

	_, err := acc.StringSet("folder", "~/Mail/work")
	require.NoError(t, err)

	res, err := acc.Reset("folder")
	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.False(t, acc.Item("folder").Overridden())

	got, _, _ := acc.StringGet("folder")
	assert.Equal(t, "~/Mail", got)

	// Mirroring is dynamic again: it tracks later parent changes.
	_, err = s.StringSet("folder", "~/Maildir")
	require.NoError(t, err)
	got, _, _ = acc.StringGet("folder")
	assert.Equal(t, "~/Maildir", got)

	// Resetting an already-mirroring child is a no-op.
	res, err = acc.Reset("folder")
	require.NoError(t, err)
	assert.True(t, res.Has(varset.FlagNoChange))
}

func TestChildResetNotifiesOnlyOnVisibleChange(t *testing.T) {
	s, acc := newAccountSet(t)
	n := countEvents(s)

	// Override equal to the parent's value, then reset: nothing visible
	// changes, so no reset event fires.
	_, err := acc.StringSet("folder", "~/Mail")
	require.NoError(t, err)
	assert.Equal(t, 1, *n)

	res, err := acc.Reset("folder")
	require.NoError(t, err)
	assert.True(t, res.Has(varset.FlagNoChange))
	assert.Equal(t, 1, *n)

	// An override that differs from the parent does announce its removal.
	_, err = acc.StringSet("folder", "~/Mail/work")
	require.NoError(t, err)
	res, err = acc.Reset("folder")
	require.NoError(t, err)
	assert.False(t, res.Has(varset.FlagNoChange))
	assert.Equal(t, 3, *n)
}

func TestParentResetDoesNotCascade(t *testing.T) {
	s, acc := newAccountSet(t)

	_, err := acc.StringSet("sidebar_width", "20")
	require.NoError(t, err)
	_, err = s.StringSet("sidebar_width", "40")
	require.NoError(t, err)

	_, err = s.Reset("sidebar_width")
	require.NoError(t, err)

	got, _, _ := s.StringGet("sidebar_width")
	assert.Equal(t, "30", got)
	got, _, _ = acc.StringGet("sidebar_width")
	assert.Equal(t, "20", got)
}

func TestInitialSetRejectedOnChildren(t *testing.T) {
	s, _ := newAccountSet(t)

	res, err := s.InitialSet("work:folder", "~/elsewhere")
	assert.Error(t, err)
	assert.Equal(t, varset.Internal, res.Code())

	// A child's starting value is its parent's live value.
	_, err = s.StringSet("folder", "~/Maildir")
	require.NoError(t, err)
	got, _, err := s.InitialGet("work:folder")
	require.NoError(t, err)
	assert.Equal(t, "~/Maildir", got)
}

func TestAccountRemove(t *testing.T) {
	s, acc := newAccountSet(t)

	_, err := acc.StringSet("folder", "~/Mail/work")
	require.NoError(t, err)

	acc.Remove()
	assert.Nil(t, s.Lookup("work:folder"))
	assert.Nil(t, s.Lookup("work:sidebar_width"))

	// The globals are untouched.
	got, _, _ := s.StringGet("folder")
	assert.Equal(t, "~/Mail", got)
}
