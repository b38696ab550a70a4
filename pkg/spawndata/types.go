package spawndata

import "github.com/go-gl/mathgl/mgl32"

// Record is one authored placement entry. Position is local to the origin
// body, Rotation is in Euler degrees.
type Record struct {
	Position    mgl32.Vec3
	Rotation    mgl32.Vec3
	Path        string
	AlignRadial bool
}

// Format identifies which dataset shape a stream uses.
type Format int

const (
	FormatFlat Format = iota
	FormatKeyed
)

func (f Format) String() string {
	switch f {
	case FormatFlat:
		return "flat"
	case FormatKeyed:
		return "keyed"
	default:
		return "unknown"
	}
}
