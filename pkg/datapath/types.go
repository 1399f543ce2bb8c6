package datapath

// M is a shorthand for the most common data map shape.
type M map[string]any

// Func is a unary function stored inside a data map.
type Func func(v any) string

// Getter is a data source that resolves a single key.
// It lets callers back a data map with something other than a Go map.
type Getter interface {
	Get(key string) (any, bool)
}

// Kind classifies a resolved value.
type Kind int

const (
	// Missing means the path did not resolve to anything.
	Missing Kind = iota
	// Map is a container that can be narrowed further.
	Map
	// Callable is a unary function.
	Callable
	// Scalar is any other value.
	Scalar
)

func (k Kind) String() string {
	switch k {
	case Map:
		return "map"
	case Callable:
		return "callable"
	case Scalar:
		return "scalar"
	default:
		return "missing"
	}
}
