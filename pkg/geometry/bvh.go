package geometry

import (
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// BVHNode is a node in the Bounding Volume Hierarchy. Children are either further
// nodes or scene objects; a node built over a single object holds it on both sides.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   core.AABB
}

// NewBVH constructs a BVH over objects for the shutter interval [time0, time1].
// It panics if objects is empty or any object has no bounding box.
func NewBVH(objects []Hittable, time0, time1 float64) *BVHNode {
	return NewBVHNode(objects, time0, time1, 0)
}

// NewBVHNode recursively builds a subtree. The split axis cycles X, Y, Z with depth and
// objects are ordered by the minimum corner of their bounding box on that axis.
func NewBVHNode(objects []Hittable, time0, time1 float64, depth int) *BVHNode {
	if len(objects) == 0 {
		panic(ErrEmptyBVH)
	}

	// Sort a copy of the entries so the caller's slice is never reordered
	entries := make([]bvhEntry, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			panic(fmt.Errorf("%w: object %d (%T)", ErrMissingBoundingBox, i, object))
		}
		entries[i] = bvhEntry{object: object, box: box}
	}

	return buildBVH(entries, time0, time1, depth)
}

type bvhEntry struct {
	object Hittable
	box    core.AABB
}

func buildBVH(entries []bvhEntry, time0, time1 float64, depth int) *BVHNode {
	axis := depth % 3
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].box.Min.Axis(axis) < entries[j].box.Min.Axis(axis)
	})

	node := &BVHNode{}
	var leftBox, rightBox core.AABB
	switch len(entries) {
	case 1:
		node.Left, leftBox = entries[0].object, entries[0].box
		node.Right, rightBox = entries[0].object, entries[0].box
	case 2:
		node.Left, leftBox = entries[0].object, entries[0].box
		node.Right, rightBox = entries[1].object, entries[1].box
	default:
		mid := len(entries) / 2
		left := buildBVH(entries[:mid], time0, time1, depth+1)
		right := buildBVH(entries[mid:], time0, time1, depth+1)
		node.Left, leftBox = left, left.Box
		node.Right, rightBox = right, right.Box
	}

	node.Box = core.SurroundingBox(leftBox, rightBox)
	return node
}

// Hit prunes on the node box, then tests both children over the clipped interval
// (padded by boxSlack and bounded by the caller's) and keeps the nearer hit (left on ties)
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	t0, t1, ok := n.Box.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	// The slab interval and a child's own roots are computed differently, so a hit
	// exactly on a box face can land a rounding step outside [t0, t1]
	lo := math.Max(tMin, t0-boxSlack(t0))
	hi := math.Min(tMax, t1+boxSlack(t1))

	leftHit, leftOk := n.Left.Hit(ray, lo, hi, sampler)
	rightHit, rightOk := n.Right.Hit(ray, lo, hi, sampler)

	switch {
	case leftOk && rightOk:
		if leftHit.T <= rightHit.T {
			return leftHit, true
		}
		return rightHit, true
	case leftOk:
		return leftHit, true
	case rightOk:
		return rightHit, true
	default:
		return nil, false
	}
}

// boxSlack is the padding applied to each end of a node's clipped interval
func boxSlack(t float64) float64 {
	return 1e-9 * math.Max(1, math.Abs(t))
}

// BoundingBox returns the stored union of the children's boxes
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

func (n *BVHNode) hittable() {}

// BVHStats describes the shape of a BVH
type BVHStats struct {
	Nodes    int // Interior nodes
	Leaves   int // Object references held by nodes
	MaxDepth int
}

// Stats walks the tree and counts nodes, leaves and depth
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	for _, child := range []Hittable{n.Left, n.Right} {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
		}
	}
}

// BuildWorld wraps top-level objects in a BVH. An empty scene becomes an empty list.
func BuildWorld(objects []Hittable, time0, time1 float64) Hittable {
	if len(objects) == 0 {
		return NewHittableList()
	}
	return NewBVH(objects, time0, time1)
}
