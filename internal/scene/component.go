package scene

// Category identifies a kind of behaviour attached to a node.
type Category int

const (
	Renderer Category = iota
	Collider
	StreamingMeshHandle
	QuantumObject
	SocketedQuantumObject
	VisibilityObject
	ShapeVisibilityTracker
)

func (c Category) String() string {
	switch c {
	case Renderer:
		return "Renderer"
	case Collider:
		return "Collider"
	case StreamingMeshHandle:
		return "StreamingMeshHandle"
	case QuantumObject:
		return "QuantumObject"
	case SocketedQuantumObject:
		return "SocketedQuantumObject"
	case VisibilityObject:
		return "VisibilityObject"
	case ShapeVisibilityTracker:
		return "ShapeVisibilityTracker"
	default:
		return "Unknown"
	}
}

// IsQuantum reports whether the category belongs to the probabilistic
// visibility family. Copies of these behaviours conflict with the template
// they were cloned from.
func (c Category) IsQuantum() bool {
	switch c {
	case QuantumObject, SocketedQuantumObject, VisibilityObject, ShapeVisibilityTracker:
		return true
	}
	return false
}

// Component is a value attached to a node. AssetBundle is only meaningful for
// StreamingMeshHandle and names the package backing the node's mesh.
type Component struct {
	Category    Category
	AssetBundle string
}
