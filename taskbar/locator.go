package taskbar

// The shell nests the task button strip differently on the primary and
// the secondary taskbars.
var (
	primaryButtonBarPath   = []string{"ReBarWindow32", "MSTaskSwWClass"}
	secondaryButtonBarPath = []string{"WorkerW", "MSTaskListWClass"}
)

// ListTaskbars returns a reference for every live taskbar, the primary one
// first. The result is empty when no primary taskbar exists.
func ListTaskbars(shell Shell) []*Ref {
	primary := shell.FindAll(ClassPrimary)
	if len(primary) == 0 {
		return nil
	}

	refs := make([]*Ref, 0, 1+len(primary))
	refs = append(refs, NewRef(shell, primary[0], true))
	for _, hwnd := range shell.FindAll(ClassSecondary) {
		refs = append(refs, NewRef(shell, hwnd, false))
	}
	return refs
}

// ButtonBar resolves the child window holding the task buttons of the
// taskbar. It is looked up on every call since explorer recreates it.
func ButtonBar(shell Shell, r *Ref) uintptr {
	if r.IsPrimary() {
		return shell.FindChild(r.Handle(), primaryButtonBarPath...)
	}
	return shell.FindChild(r.Handle(), secondaryButtonBarPath...)
}
