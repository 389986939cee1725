package layout

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// EdgeAll is every edge at once. Aligning to it stretches the inner
// rectangle to fill the outer one.
const EdgeAll = EdgeTop | EdgeBottom | EdgeLeft | EdgeRight

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var s string
	for _, n := range [...]struct {
		edge Edges
		name string
	}{
		{EdgeTop, "top"},
		{EdgeBottom, "bottom"},
		{EdgeLeft, "left"},
		{EdgeRight, "right"},
	} {
		if e&n.edge == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	return s
}
