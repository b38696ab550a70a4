package scene

import (
	"fmt"
	"strings"
)

// PathError reports the first segment of a name path that could not be
// resolved.
type PathError struct {
	Path    string
	Segment string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("couldn't find object at path: %s, failed to locate %s", e.Path, e.Segment)
}

// Graph is the set of root nodes of a loaded world plus its sectors.
type Graph struct {
	roots   []*Node
	sectors map[string]*Sector
}

func NewGraph() *Graph {
	return &Graph{sectors: make(map[string]*Sector)}
}

// AddRoot creates a named root node.
func (g *Graph) AddRoot(name string) *Node {
	n := NewNode(name)
	g.roots = append(g.roots, n)
	return n
}

// Root returns the first root node with the given name.
func (g *Graph) Root(name string) *Node {
	for _, r := range g.roots {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// FindByPath resolves a slash separated name path. The first segment names a
// root; each following segment names a direct child. Empty segments, such as
// the one left by a trailing slash, are ignored.
func (g *Graph) FindByPath(path string) (*Node, error) {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return nil, &PathError{Path: path}
	}

	node := g.Root(segments[0])
	if node == nil {
		return nil, &PathError{Path: path, Segment: segments[0]}
	}
	for _, s := range segments[1:] {
		next := node.Find(s)
		if next == nil {
			return nil, &PathError{Path: path, Segment: s}
		}
		node = next
	}
	return node, nil
}

// AddSector registers a sector under its name.
func (g *Graph) AddSector(s *Sector) {
	g.sectors[s.Name] = s
}

// Sector returns the sector registered under name.
func (g *Graph) Sector(name string) (*Sector, bool) {
	s, ok := g.sectors[name]
	return s, ok
}
