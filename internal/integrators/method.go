package integrators

import (
	"fmt"
	"strings"

	"github.com/san-kum/orbitlab/internal/orbit"
)

// Method identifies one of the supported stepping algorithms. Resolving a
// name to a Method happens once, before any stepping; the hot loop never
// sees the string form.
type Method int

const (
	MethodEuler Method = iota
	MethodRK4
)

func (m Method) String() string {
	switch m {
	case MethodEuler:
		return "euler"
	case MethodRK4:
		return "rk4"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// UnknownMethodError reports a method name that is neither accepted value.
type UnknownMethodError struct {
	Name string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown method %q (accepted: %q, %q)", e.Name, "euler", "rk4")
}

// Parse resolves a method name, case-insensitively, to its Method.
func Parse(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "euler":
		return MethodEuler, nil
	case "rk4":
		return MethodRK4, nil
	default:
		return 0, &UnknownMethodError{Name: name}
	}
}

// New returns a fresh stepper for m.
func New(m Method) orbit.Stepper {
	switch m {
	case MethodRK4:
		return NewRK4()
	default:
		return NewEuler()
	}
}

// Names lists the accepted method names.
func Names() []string {
	return []string{"euler", "rk4"}
}
