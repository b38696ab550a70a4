package foliage

import (
	"errors"
	"fmt"
	"math/rand"

	"thforest/internal/profiling"
	"thforest/internal/scene"
	"thforest/pkg/spawndata"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrMissingResource is returned when a template, the origin body or the
// destination region is absent. Nothing is spawned in that case.
var ErrMissingResource = errors.New("missing resource")

const (
	TreeGroupName        = "TH_Trees_Surface"
	GroundcoverGroupName = "TH_Grass_Surface"

	treeJitterDeg  = 0.5
	treeScaleMin   = 0.7
	treeScaleMax   = 1.4
	groundScaleMin = 0.8
	groundScaleMax = 1.2
)

// Templates are the scene subtrees cloned for every record.
type Templates struct {
	Tree        *scene.Node
	Groundcover *scene.Node
}

// Result holds the entities created by one spawn pass. Trees and Groundcover
// keep record order and always have the same length.
type Result struct {
	Trees            []*scene.Node
	Groundcover      []*scene.Node
	Packages         []string
	TreeGroup        *scene.Node
	GroundcoverGroup *scene.Node
}

// Destroy detaches both grouping nodes from the scene.
func (r *Result) Destroy() {
	if r == nil {
		return
	}
	if r.TreeGroup != nil {
		r.TreeGroup.Detach()
	}
	if r.GroundcoverGroup != nil {
		r.GroundcoverGroup.Detach()
	}
}

// Spawn clones one tree and one groundcover entity per record. Positions are
// authored in origin's local space and projected through its current world
// transform; clones are grouped under two nodes placed at the destination's
// origin.
func Spawn(records []spawndata.Record, tpl Templates, origin, destination *scene.Node, rng *rand.Rand) (*Result, error) {
	defer profiling.Track("foliage.Spawn")()

	switch {
	case tpl.Tree == nil:
		return nil, fmt.Errorf("tree template: %w", ErrMissingResource)
	case tpl.Groundcover == nil:
		return nil, fmt.Errorf("groundcover template: %w", ErrMissingResource)
	case origin == nil:
		return nil, fmt.Errorf("origin body: %w", ErrMissingResource)
	case destination == nil:
		return nil, fmt.Errorf("destination region: %w", ErrMissingResource)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	res := &Result{
		Trees:       make([]*scene.Node, 0, len(records)),
		Groundcover: make([]*scene.Node, 0, len(records)),
		Packages:    collectPackages(tpl.Tree, tpl.Groundcover),
	}
	res.TreeGroup = destination.AddChild(TreeGroupName)
	res.GroundcoverGroup = destination.AddChild(GroundcoverGroupName)

	for _, rec := range records {
		worldPos := origin.TransformPoint(rec.Position)

		tree := place(tpl.Tree, res.TreeGroup, worldPos)
		jitter := mgl32.Vec3{
			uniform(rng, -treeJitterDeg, treeJitterDeg),
			uniform(rng, -treeJitterDeg, treeJitterDeg),
			uniform(rng, -treeJitterDeg, treeJitterDeg),
		}
		tree.Transform.Euler = rec.Rotation.Add(jitter)
		tree.Transform.SetUniformScale(uniform(rng, treeScaleMin, treeScaleMax))
		res.Trees = append(res.Trees, tree)

		grass := place(tpl.Groundcover, res.GroundcoverGroup, worldPos)
		grass.Transform.Euler = rec.Rotation
		grass.Transform.SetUniformScale(uniform(rng, groundScaleMin, groundScaleMax))
		res.Groundcover = append(res.Groundcover, grass)
	}

	return res, nil
}

// place clones tpl without its quantum behaviours, parents it under group and
// moves it to worldPos.
func place(tpl, group *scene.Node, worldPos mgl32.Vec3) *scene.Node {
	clone := tpl.Clone()
	clone.RemoveComponentsInChildren(scene.Category.IsQuantum)
	clone.SetParent(group)
	clone.SetWorldPosition(worldPos)
	return clone
}

// collectPackages returns the asset bundles referenced by the templates'
// streaming handles, first occurrence first.
func collectPackages(templates ...*scene.Node) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range templates {
		for _, h := range t.ComponentsInChildren(scene.StreamingMeshHandle) {
			if h.AssetBundle == "" {
				continue
			}
			if _, ok := seen[h.AssetBundle]; ok {
				continue
			}
			seen[h.AssetBundle] = struct{}{}
			out = append(out, h.AssetBundle)
		}
	}
	return out
}

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}
