package employee

// Reference is a tagged variant over a relation: either resolved to a
// display name by the store, or left as the raw identifier. The projector
// branches on the tag instead of inspecting types at runtime.
type Reference struct {
	value    string
	resolved bool
}

func ResolvedRef(name string) Reference {
	return Reference{value: name, resolved: true}
}

func UnresolvedRef(id string) Reference {
	return Reference{value: id}
}

func (r Reference) Resolved() bool {
	return r.resolved
}

// Display returns the name for a resolved reference, the identifier
// otherwise.
func (r Reference) Display() string {
	return r.value
}
