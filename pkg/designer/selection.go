// pkg/designer/selection.go
package designer

// Kind says what category of object a handle refers to
type Kind int

const (
	KindNone Kind = iota
	KindGate
	KindAsteroid
)

// String returns a readable kind name for the status line
func (k Kind) String() string {
	switch k {
	case KindGate:
		return "gate"
	case KindAsteroid:
		return "asteroid"
	default:
		return "none"
	}
}

// Handle identifies an object in the scene. IDs are allocated from a
// monotonic counter and never reused, so a handle held across deletes
// can never silently point at a different object.
type Handle struct {
	Kind Kind
	ID   uint64
}

// None reports whether the handle refers to nothing
func (h Handle) None() bool {
	return h.Kind == KindNone
}
