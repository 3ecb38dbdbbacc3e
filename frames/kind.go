package frames

// ResourceKind identifies which host engine destruction path a handle must take. The kind is
// always supplied by the caller; nothing in this module inspects a handle to infer it.
type ResourceKind int32

const (
	// ResourceKindUnknown is the zero value. Records of this kind are aged and dropped like any
	// other, but no destruction path is ever invoked for them.
	ResourceKindUnknown ResourceKind = iota
	// ResourceKindStorageBuffer is a shader storage buffer. It shares the buffer destruction path.
	ResourceKindStorageBuffer
	// ResourceKindUniformBuffer is a uniform buffer. It shares the buffer destruction path.
	ResourceKindUniformBuffer
	// ResourceKindImage is an image, including render targets and textures
	ResourceKindImage
	// ResourceKindPipeline is a graphics or compute pipeline
	ResourceKindPipeline
	// ResourceKindDescriptorSet is a descriptor set allocated from a host engine pool
	ResourceKindDescriptorSet

	resourceKindCount
)

var resourceKindMapping = map[ResourceKind]string{
	ResourceKindUnknown:       "ResourceKindUnknown",
	ResourceKindStorageBuffer: "ResourceKindStorageBuffer",
	ResourceKindUniformBuffer: "ResourceKindUniformBuffer",
	ResourceKindImage:         "ResourceKindImage",
	ResourceKindPipeline:      "ResourceKindPipeline",
	ResourceKindDescriptorSet: "ResourceKindDescriptorSet",
}

func (k ResourceKind) String() string {
	str, ok := resourceKindMapping[k]
	if !ok {
		return "ResourceKind(invalid)"
	}
	return str
}

// IsKnown returns true if the kind has a destruction path modeled by DestructionTable
func (k ResourceKind) IsKnown() bool {
	return k > ResourceKindUnknown && k < resourceKindCount
}

// AllResourceKinds returns every kind that must have a destruction path, in declaration order
func AllResourceKinds() []ResourceKind {
	kinds := make([]ResourceKind, 0, resourceKindCount-1)
	for kind := ResourceKindUnknown + 1; kind < resourceKindCount; kind++ {
		kinds = append(kinds, kind)
	}
	return kinds
}
