// Package mailcap resolves attachment-handling commands from RFC 1524
// mailcap files. It is a consumer of the settings registry: the search path
// comes from the registry's "mailcap_path" list variable, read through the
// public protocol.
//
// Command expansion implements the RFC 1524 placeholders: %s is the file
// holding the body data, %t is the content type, %{param} is a
// content-type parameter, and \% is a literal percent.
package mailcap

import (
	"bufio"
	"os"
	"strings"

	"github.com/goliatone/go-errors"

	"github.com/goliatone/go-varset/varset"
)

// Entry is one parsed mailcap entry for a content type.
type Entry struct {
	Type         string
	Command      string
	Test         string
	Compose      string
	ComposeTyped string
	Edit         string
	Print        string
	NameTemplate string
	Description  string

	NeedsTerminal bool
	CopiousOutput bool
}

// Lookup searches the registry's mailcap_path for the first entry matching
// the content type. Matching follows RFC 1524: an exact "base/sub" match, a
// "base/*" wildcard, or a bare "base" implicit wildcard.
func Lookup(s *varset.Set, contentType string) (*Entry, error) {
	v, err := s.NativeGet("mailcap_path")
	if err != nil {
		return nil, err
	}
	paths, _ := v.([]string)
	if len(paths) == 0 {
		return nil, errors.New("no mailcap path configured", errors.CategoryOperation).
			WithTextCode("MAILCAP_NO_PATH")
	}

	for _, path := range paths {
		entry, err := lookupFile(expandHome(path), contentType)
		if err != nil {
			continue
		}
		if entry != nil {
			return entry, nil
		}
	}
	return nil, errors.New("mailcap entry not found", errors.CategoryOperation).
		WithTextCode("MAILCAP_NOT_FOUND").
		WithMetadata(map[string]any{"type": contentType})
}

// ExpandCommand substitutes the RFC 1524 placeholders into a command.
// params supplies %{name} values, keyed case-insensitively. The returned
// bool reports whether the body must be piped on stdin: true unless the
// command consumed %s.
func ExpandCommand(command, filename, contentType string, params map[string]string) (string, bool) {
	var out strings.Builder
	needsPipe := true

	for i := 0; i < len(command); i++ {
		c := command[i]
		switch {
		case c == '\\' && i+1 < len(command):
			i++
			out.WriteByte(command[i])
		case c == '%' && i+1 < len(command):
			i++
			switch command[i] {
			case 's':
				if filename != "" {
					out.WriteString(quoteFilename(filename))
					needsPipe = false
				}
			case 't':
				out.WriteString(quoteFilename(contentType))
			case '{':
				end := strings.IndexByte(command[i:], '}')
				if end < 0 {
					i = len(command)
					break
				}
				name := command[i+1 : i+end]
				i += end
				out.WriteString(quoteFilename(paramValue(params, name)))
			default:
				// Unsupported placeholders (%n, %F) expand to nothing.
			}
		default:
			out.WriteByte(c)
		}
	}
	return out.String(), needsPipe
}

func paramValue(params map[string]string, name string) string {
	for k, v := range params {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// quoteFilename single-quotes a value for the shell; every substituted
// placeholder is quoted.
func quoteFilename(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return home + path[1:]
		}
	}
	return path
}

// lookupFile scans one mailcap file for the first matching entry. A nil
// entry with nil error means no match in this file.
func lookupFile(path, contentType string) (*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var logical string
	for scanner.Scan() {
		line := scanner.Text()

		// Continuation: a trailing backslash joins physical lines.
		if strings.HasSuffix(line, "\\") {
			logical += strings.TrimSuffix(line, "\\")
			continue
		}
		logical += line
		record := strings.TrimSpace(logical)
		logical = ""

		if record == "" || strings.HasPrefix(record, "#") {
			continue
		}
		entry := parseEntry(record)
		if entry != nil && typeMatches(entry.Type, contentType) {
			return entry, nil
		}
	}
	return nil, scanner.Err()
}

// parseEntry splits a mailcap record into type, command and named fields.
// Fields are ';'-separated; '\;' escapes a literal semicolon.
func parseEntry(record string) *Entry {
	fields := splitFields(record)
	if len(fields) < 2 {
		return nil
	}

	entry := &Entry{
		Type:    strings.ToLower(strings.TrimSpace(fields[0])),
		Command: strings.TrimSpace(fields[1]),
	}

	for _, field := range fields[2:] {
		field = strings.TrimSpace(field)
		key, value, hasValue := strings.Cut(field, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "needsterminal":
			entry.NeedsTerminal = true
		case "copiousoutput":
			entry.CopiousOutput = true
		case "test":
			if hasValue {
				entry.Test = value
			}
		case "compose":
			if hasValue {
				entry.Compose = value
			}
		case "composetyped":
			if hasValue {
				entry.ComposeTyped = value
			}
		case "edit":
			if hasValue {
				entry.Edit = value
			}
		case "print":
			if hasValue {
				entry.Print = value
			}
		case "nametemplate":
			if hasValue {
				entry.NameTemplate = value
			}
		case "description":
			if hasValue {
				entry.Description = value
			}
		}
	}
	return entry
}

func splitFields(record string) []string {
	var fields []string
	var cur strings.Builder
	for i := 0; i < len(record); i++ {
		c := record[i]
		switch {
		case c == '\\' && i+1 < len(record):
			cur.WriteByte(c)
			i++
			cur.WriteByte(record[i])
		case c == ';':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// typeMatches implements RFC 1524 type matching.
func typeMatches(pattern, contentType string) bool {
	pattern = strings.ToLower(pattern)
	contentType = strings.ToLower(contentType)

	if pattern == contentType {
		return true
	}
	base, _, ok := strings.Cut(contentType, "/")
	if !ok {
		return false
	}
	return pattern == base+"/*" || pattern == base
}
