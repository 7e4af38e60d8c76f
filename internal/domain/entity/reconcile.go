package entity

// Component is one subsystem the reconciler writes to.
type Component string

const (
	ComponentWindow       Component = "window"
	ComponentShell        Component = "shell"
	ComponentIcon         Component = "icon"
	ComponentStyleSymlink Component = "style-symlink"
)

// Components returns all components in apply order.
func Components() []Component {
	return []Component{ComponentWindow, ComponentShell, ComponentStyleSymlink, ComponentIcon}
}

// LoadBearing reports whether a failure of c fails the whole cycle.
func (c Component) LoadBearing() bool {
	return c == ComponentWindow || c == ComponentIcon
}

// ComponentOutcome records what happened to one component.
type ComponentOutcome struct {
	// OK is the value counted towards the cycle result.
	OK bool
	// Changed is true when a write was performed.
	Changed bool
	// Skipped is true for tolerated failures and missing optional subsystems.
	Skipped bool
	// Err holds the swallowed failure, if any.
	Err error
}

// ReconcileResult is the outcome of one reconciliation cycle.
type ReconcileResult struct {
	Success    bool
	State      ThemeState
	Components map[Component]ComponentOutcome
	// Issues lists validation problems. A non-empty list means no
	// component was touched.
	Issues []string
}

// NewReconcileResult returns an empty result for state.
func NewReconcileResult(state ThemeState) *ReconcileResult {
	return &ReconcileResult{
		State:      state,
		Components: make(map[Component]ComponentOutcome, len(Components())),
	}
}

// Record stores the outcome of c.
func (r *ReconcileResult) Record(c Component, outcome ComponentOutcome) {
	r.Components[c] = outcome
}

// Finalize computes Success from the load-bearing components.
func (r *ReconcileResult) Finalize() {
	if r.ValidationFailed() {
		r.Success = false
		return
	}
	success := true
	for _, c := range Components() {
		if !c.LoadBearing() {
			continue
		}
		outcome, ok := r.Components[c]
		success = success && ok && outcome.OK
	}
	r.Success = success
}

// ValidationFailed reports whether the cycle was stopped by validation.
func (r *ReconcileResult) ValidationFailed() bool {
	return len(r.Issues) > 0
}

// Outcomes returns the boolean view of the components.
func (r *ReconcileResult) Outcomes() map[Component]bool {
	out := make(map[Component]bool, len(r.Components))
	for c, o := range r.Components {
		out[c] = o.OK
	}
	return out
}

// Changed reports whether any component was written.
func (r *ReconcileResult) Changed() bool {
	for _, o := range r.Components {
		if o.Changed {
			return true
		}
	}
	return false
}
