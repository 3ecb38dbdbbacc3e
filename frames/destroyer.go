package frames

import (
	cerrors "github.com/cockroachdb/errors"
)

//go:generate mockgen -source destroyer.go -destination mocks/destroyer.go -package mocks

// Destroyer is the set of host engine destruction primitives. Each method receives a handle that
// the host engine previously created and must release it. The calls are assumed to always succeed;
// any failure belongs to the host engine.
type Destroyer[H any] interface {
	DestroyBuffer(handle H)
	DestroyImage(handle H)
	DestroyPipeline(handle H)
	DestroyDescriptorSet(handle H)
}

// DestructionTable maps each known ResourceKind to the Destroyer method that releases it
type DestructionTable[H any] struct {
	paths [resourceKindCount]func(H)
}

// NewDestructionTable builds the kind-to-path table for the provided Destroyer. Storage and
// uniform buffers share the buffer path.
func NewDestructionTable[H any](destroyer Destroyer[H]) DestructionTable[H] {
	var table DestructionTable[H]
	table.paths[ResourceKindStorageBuffer] = destroyer.DestroyBuffer
	table.paths[ResourceKindUniformBuffer] = destroyer.DestroyBuffer
	table.paths[ResourceKindImage] = destroyer.DestroyImage
	table.paths[ResourceKindPipeline] = destroyer.DestroyPipeline
	table.paths[ResourceKindDescriptorSet] = destroyer.DestroyDescriptorSet

	return table
}

// Lookup returns the destruction path for the kind. The boolean is false for ResourceKindUnknown
// and any value outside the declared kinds.
func (t *DestructionTable[H]) Lookup(kind ResourceKind) (func(H), bool) {
	if !kind.IsKnown() {
		return nil, false
	}

	path := t.paths[kind]
	return path, path != nil
}

// Validate returns an error if any kind in AllResourceKinds lacks a destruction path
func (t *DestructionTable[H]) Validate() error {
	for _, kind := range AllResourceKinds() {
		if t.paths[kind] == nil {
			return cerrors.Wrapf(ErrMissingDestructionPath, "%s", kind)
		}
	}

	return nil
}
