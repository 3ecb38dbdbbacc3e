//go:build !debug_inflight

package frames

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_inflight build tag is present
func DebugValidate(validatable Validatable) {
}

// DebugCheckKind panics if the kind has no destruction path.
// This method no-ops unless the debug_inflight build tag is present.
func DebugCheckKind(kind ResourceKind) {
}

// DebugEnabled reports whether the debug_inflight build tag is present
const DebugEnabled = false
