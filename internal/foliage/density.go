package foliage

import (
	"errors"
	"fmt"

	"thforest/internal/scene"
)

// ErrUnknownDensity is returned for a descriptor outside Hidden..Ultra.
var ErrUnknownDensity = errors.New("unknown density setting")

// Density is the user-facing detail level for a spawned set.
type Density int

const (
	Hidden Density = iota
	Low
	Medium
	High
	Ultra
)

var densityNames = [...]string{"Hidden", "Low", "Medium", "High", "Ultra"}

func (d Density) String() string {
	if d < Hidden || d > Ultra {
		return fmt.Sprintf("Density(%d)", int(d))
	}
	return densityNames[d]
}

// DensityNames lists the accepted descriptors in ascending detail.
func DensityNames() []string {
	return densityNames[:]
}

// ParseDensity maps a descriptor such as "Medium" to its Density.
func ParseDensity(s string) (Density, error) {
	for i, name := range densityNames {
		if name == s {
			return Density(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDensity, s)
}

// Stride is the number of consecutive entities per visible one. Hidden uses
// twice the set size so that nothing is shown.
func (d Density) Stride(setLen int) int {
	switch d {
	case Hidden:
		return setLen * 2
	case Low:
		return 4
	case Medium:
		return 3
	case High:
		return 2
	case Ultra:
		return 1
	}
	return 0
}

// Apply thins set so that exactly one entity in every stride is active: the
// ones at indices stride-1, 2*stride-1 and so on. The result only depends on
// the order of set, so repeated calls are idempotent. It returns the number
// of active entities.
func Apply(set []*scene.Node, d Density) (int, error) {
	if d < Hidden || d > Ultra {
		return 0, fmt.Errorf("%w: %v", ErrUnknownDensity, d)
	}
	stride := d.Stride(len(set))

	active := 0
	ticker := 0
	for _, e := range set {
		ticker++
		if ticker >= stride {
			e.SetActive(true)
			active++
			ticker = 0
		} else {
			e.SetActive(false)
		}
	}
	return active, nil
}

// ApplyNamed parses name and applies it. An unknown descriptor leaves every
// entity as it was.
func ApplyNamed(set []*scene.Node, name string) (int, error) {
	d, err := ParseDensity(name)
	if err != nil {
		return 0, err
	}
	return Apply(set, d)
}
