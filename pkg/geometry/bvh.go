package geometry

import (
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/loves-go/pathtracer/pkg/core"
	"github.com/loves-go/pathtracer/pkg/pathtracererr"
)

// bvhLogger receives the one non-fatal construction warning a BVH build can
// raise (spec.md §7: a child reporting no bounding box). Defaults to stderr;
// SetLogger lets a caller route it through the renderer's own core.Logger.
var bvhLogger core.Logger = stderrLogger{}

type stderrLogger struct{}

func (stderrLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// SetLogger redirects BVH construction warnings to logger.
func SetLogger(logger core.Logger) {
	if logger != nil {
		bvhLogger = logger
	}
}

// BVHNode is a binary tree node over a slice of Hittables. It is either an
// internal node with two Hittable children and its own cached AABB, or a
// leaf wrapping one or two primitives (spec §3, §4.2). Ported from
// original_source's BVH::Node constructor and hit, not the teacher's
// longest-axis/binned-median split.
type BVHNode struct {
	bbox        core.AABB
	left, right core.Hittable
}

// NewBVH builds a BVH over the given primitives. The axis is chosen
// uniformly at random at each node and the slice is split at its midpoint
// index after sorting by bounding-box min on that axis (spec §4.2).
func NewBVH(objects []core.Hittable) *BVHNode {
	items := make([]core.Hittable, len(objects))
	copy(items, objects)
	return buildBVH(items, rand.New(rand.NewSource(1)))
}

// NewBVHWithRand builds a BVH using the given random source to pick split
// axes, for deterministic/reproducible construction.
func NewBVHWithRand(objects []core.Hittable, rng *rand.Rand) *BVHNode {
	items := make([]core.Hittable, len(objects))
	copy(items, objects)
	return buildBVH(items, rng)
}

func buildBVH(objects []core.Hittable, rng *rand.Rand) *BVHNode {
	axis := rng.Intn(3)

	node := &BVHNode{}

	switch len(objects) {
	case 1:
		node.left = objects[0]
		node.right = objects[0]
	case 2:
		if boxMin(objects[0], axis) <= boxMin(objects[1], axis) {
			node.left, node.right = objects[0], objects[1]
		} else {
			node.left, node.right = objects[1], objects[0]
		}
	default:
		sort.Slice(objects, func(i, j int) bool {
			return boxMin(objects[i], axis) < boxMin(objects[j], axis)
		})
		mid := len(objects) / 2
		node.left = buildBVH(objects[:mid], rng)
		node.right = buildBVH(objects[mid:], rng)
	}

	leftBox, rightBox := node.left.BoundingBox(), node.right.BoundingBox()
	if !leftBox.IsValid() {
		bvhLogger.Printf("[WARN] %v\n", pathtracererr.ErrNoBoundingBox(fmt.Sprintf("%T", node.left)))
	}
	if !rightBox.IsValid() {
		bvhLogger.Printf("[WARN] %v\n", pathtracererr.ErrNoBoundingBox(fmt.Sprintf("%T", node.right)))
	}
	node.bbox = leftBox.Union(rightBox)
	return node
}

func boxMin(h core.Hittable, axis int) float64 {
	b := h.BoundingBox()
	switch axis {
	case 0:
		return b.Min.X
	case 1:
		return b.Min.Y
	default:
		return b.Min.Z
	}
}

// Hit slab-tests the node's AABB, then intersects the left child over
// [tMin,tMax] and the right child over [tMin, hitLeft ? rec.T : tMax],
// returning the nearer accepted hit (spec §4.2).
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if !n.bbox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.left.Hit(ray, tMin, tMax)

	rightMax := tMax
	if hitLeft {
		rightMax = leftHit.T
	}
	rightHit, hitRight := n.right.Hit(ray, tMin, rightMax)

	if hitRight {
		return rightHit, true
	}
	if hitLeft {
		return leftHit, true
	}
	return nil, false
}

// BoundingBox returns the union of this node's two children's boxes.
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}
