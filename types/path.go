package types

// Path is the codec for filesystem path variables. Values are stored and
// rendered verbatim; expansion of "~" and relative paths is the consuming
// collaborator's business, not the registry's.
type Path struct {
	String
}

func (Path) Name() string { return "path" }
