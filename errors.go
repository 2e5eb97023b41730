package planes

import (
	"errors"
	"fmt"
)

// Structural errors. A tree mutation that fails with one of these leaves the
// tree exactly as it was.
var (
	ErrCycle     = errors.New("planes: insertion would create a cycle")
	ErrRootChild = errors.New("planes: a display cannot become a child")
	ErrNilPlane  = errors.New("planes: nil plane")
	ErrNameTaken = errors.New("planes: name already used by a sibling")
)

// ErrNotFound is returned by name lookups that miss.
var ErrNotFound = errors.New("planes: plane not found")

// ErrDestroyed is returned when an operation is attempted on a destroyed
// plane. It always indicates that the caller kept a stale reference.
var ErrDestroyed = errors.New("planes: plane has been destroyed")

// PlaneError records a failed tree operation.
type PlaneError struct {
	Op    string // operation, e.g. "insert"
	Plane string // name of the plane the operation was called on
	Other string // name of the child or lookup key involved, if any
	Err   error
}

func (e *PlaneError) Error() string {
	if e.Other == "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Plane, e.Err)
	}
	return fmt.Sprintf("%s %q on %q: %v", e.Op, e.Other, e.Plane, e.Err)
}

func (e *PlaneError) Unwrap() error {
	return e.Err
}

func planeError(op string, p *Plane, other string, err error) error {
	name := ""
	if p != nil {
		name = p.Name
	}
	return &PlaneError{Op: op, Plane: name, Other: other, Err: err}
}
