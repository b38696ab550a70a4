package main

import (
	"strings"

	"thforest/internal/config"
	"thforest/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// regionNodes maps region names to the sector node they cover.
var regionNodes = map[string]string{
	"TimberHearth": "TimberHearth_Body/Sector_TH",
	"QuantumMoon":  "QuantumMoon_Body/Sector_QuantumMoon",
}

// buildSolarSystem lays out a stand-in world containing every object the
// settings refer to: the anchor body, both templates and both regions.
func buildSolarSystem(s config.Settings) (*scene.Graph, *scene.Sector, *scene.Sector) {
	g := scene.NewGraph()

	anchor := ensurePath(g, s.Anchor)
	anchor.Transform.Position = mgl32.Vec3{0, -40, 8593}
	anchor.Transform.Euler = mgl32.Vec3{0, 23.5, 0}

	tree := ensurePath(g, s.TreeTemplate)
	tree.Components = []scene.Component{
		{Category: scene.Renderer},
		{Category: scene.Collider},
		{Category: scene.SocketedQuantumObject},
		{Category: scene.VisibilityObject},
	}
	trunk := tree.AddChild("QAlpine_Trunk")
	trunk.Components = []scene.Component{
		{Category: scene.StreamingMeshHandle, AssetBundle: "quantummoon/tree_alpine"},
		{Category: scene.ShapeVisibilityTracker},
	}

	grass := ensurePath(g, s.GroundcoverTemplate)
	grass.Components = []scene.Component{
		{Category: scene.Renderer},
		{Category: scene.StreamingMeshHandle, AssetBundle: "timberhearth/grass_patch"},
	}

	home := scene.NewSector(s.HomeRegion, ensurePath(g, regionPath(s.HomeRegion)))
	source := scene.NewSector(s.SourceRegion, ensurePath(g, regionPath(s.SourceRegion)))
	g.AddSector(home)
	g.AddSector(source)
	return g, home, source
}

func regionPath(name string) string {
	if p, ok := regionNodes[name]; ok {
		return p
	}
	return name + "_Body/Sector_" + name
}

// ensurePath returns the node at path, creating any missing segment.
func ensurePath(g *scene.Graph, path string) *scene.Node {
	var node *scene.Node
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		if node == nil {
			node = g.Root(seg)
			if node == nil {
				node = g.AddRoot(seg)
			}
			continue
		}
		next := node.Find(seg)
		if next == nil {
			next = node.AddChild(seg)
		}
		node = next
	}
	if node == nil {
		node = g.AddRoot(path)
	}
	return node
}
