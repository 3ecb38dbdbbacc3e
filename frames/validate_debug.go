//go:build debug_inflight

package frames

import "fmt"

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_inflight build tag is present
func DebugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}

// DebugCheckKind panics if the kind has no destruction path.
// This method no-ops unless the debug_inflight build tag is present.
func DebugCheckKind(kind ResourceKind) {
	if !kind.IsKnown() {
		panic(fmt.Sprintf("%s has no destruction path", kind))
	}
}

// DebugEnabled reports whether the debug_inflight build tag is present
const DebugEnabled = true
