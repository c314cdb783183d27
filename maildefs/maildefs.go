// Package maildefs carries the static schema for the standard mail-client
// variables: the sidebar panel, attachment handling, and the ask-style
// quads consulted by the forward/reply/bounce workflow. Hosts register the
// table once at startup, after the built-in codecs.
package maildefs

import (
	"github.com/goliatone/go-varset/types"
	"github.com/goliatone/go-varset/varset"
)

// Defaults returns the standard variable table. The caller may append its
// own definitions before registering.
func Defaults() []*varset.Definition {
	return []*varset.Definition{
		// Mailboxes and identity.
		{Name: "folder", Kind: varset.KindPath, Initial: "~/Mail"},
		{Name: "postponed", Kind: varset.KindPath, Initial: "~/postponed"},
		{Name: "signature", Kind: varset.KindPath, Initial: "~/.signature"},
		{Name: "spool_file", Kind: varset.KindPath, Initial: ""},

		// Attachment handling.
		{Name: "mailcap_path", Kind: varset.KindSlice, Flags: varset.SepColon,
			Initial: "~/.mailcap:/etc/mailcap:/usr/etc/mailcap:/usr/local/etc/mailcap"},
		{Name: "mailcap_sanitize", Kind: varset.KindBool, Initial: "yes"},

		// Prompt defaults for the composition workflow.
		{Name: "bounce", Kind: varset.KindQuad, Initial: "ask-yes"},
		{Name: "mime_forward", Kind: varset.KindQuad, Initial: "no"},
		{Name: "mime_forward_rest", Kind: varset.KindQuad, Initial: "yes"},
		{Name: "forward_edit", Kind: varset.KindQuad, Initial: "yes"},
		{Name: "honor_followup_to", Kind: varset.KindQuad, Initial: "yes"},
		{Name: "include", Kind: varset.KindQuad, Initial: "ask-yes"},
		{Name: "recall", Kind: varset.KindQuad, Initial: "ask-yes"},
		{Name: "forward_quote", Kind: varset.KindBool, Initial: "no"},
		{Name: "mime_is_form", Kind: varset.KindBool, Initial: "no"},

		// Pattern settings.
		{Name: "mask", Kind: varset.KindRegex, Flags: varset.AllowNot,
			Initial: "!^\\.[^.]"},
		{Name: "quote_regex", Kind: varset.KindRegex, Initial: "^([ \\t]*[|>:}#])+"},
		{Name: "reply_regex", Kind: varset.KindRegex, Initial: "^((re|aw|sv)(\\[[0-9]+\\])*:[ \\t]*)*"},

		// Sidebar panel.
		{Name: "sidebar_visible", Kind: varset.KindBool, Initial: "no"},
		{Name: "sidebar_on_right", Kind: varset.KindBool, Initial: "no"},
		{Name: "sidebar_width", Kind: varset.KindNumber, Initial: "30",
			Validate: positive},
		{Name: "sidebar_divider_char", Kind: varset.KindString, Initial: "|"},
		{Name: "sidebar_delim_chars", Kind: varset.KindString, Initial: "/."},
		{Name: "sidebar_format", Kind: varset.KindString, Flags: varset.NotEmpty,
			Initial: "%D%*  %n"},
		{Name: "sidebar_short_path", Kind: varset.KindBool, Initial: "no"},
		{Name: "sidebar_folder_indent", Kind: varset.KindBool, Initial: "no"},
		{Name: "sidebar_indent_string", Kind: varset.KindString, Initial: "  "},
		{Name: "sidebar_new_mail_only", Kind: varset.KindBool, Initial: "no"},
		{Name: "sidebar_next_new_wrap", Kind: varset.KindBool, Initial: "no"},
	}
}

// Register installs the built-in codecs and the standard variable table
// into a Set.
func Register(s *varset.Set) error {
	if err := types.Register(s); err != nil {
		return err
	}
	return s.RegisterDefinitions(Defaults())
}

// positive rejects zero and negative values; widths and counts only.
func positive(def *varset.Definition, value varset.Value) error {
	n, ok := value.(int)
	if !ok || n < 1 {
		return errBelowOne(def.Name)
	}
	return nil
}
