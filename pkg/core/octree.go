package core

// Item is an entry in the Octree: an opaque id and its bounds
type Item struct {
	ID     uint64
	Bounds Aabb
}

// OctreeNode represents a node of the Octree
type OctreeNode struct {
	Bounds   Aabb          // Tight bounds of every item below this node
	Children []*OctreeNode // Non-empty octants (nil for leaf nodes)
	Items    []Item        // Items stored in a leaf (nil for internal nodes)
}

// Octree is a spatial index over Aabbs for picking and box queries
type Octree struct {
	Root *OctreeNode
	size int
}

// Leaf threshold: if we have this many or fewer items, store them in a leaf node
const leafThreshold = 8

// DefaultOctreeDepth bounds recursion when items cluster around one point
const DefaultOctreeDepth = 16

// NewOctree builds an octree over items. maxDepth <= 0 uses DefaultOctreeDepth.
func NewOctree(items []Item, maxDepth int) *Octree {
	if len(items) == 0 {
		return &Octree{}
	}
	if maxDepth <= 0 {
		maxDepth = DefaultOctreeDepth
	}

	itemsCopy := make([]Item, len(items))
	copy(itemsCopy, items)

	return &Octree{
		Root: buildOctree(itemsCopy, 0, maxDepth),
		size: len(items),
	}
}

// Len returns the number of items in the tree
func (o *Octree) Len() int {
	return o.size
}

// buildOctree splits items at the center of their merged bounds, assigning each item to
// the first octant containing its center
func buildOctree(items []Item, depth, maxDepth int) *OctreeNode {
	bounds := items[0].Bounds
	for _, item := range items[1:] {
		bounds = Merge(bounds, item.Bounds)
	}

	leaf := &OctreeNode{Bounds: bounds, Items: items}
	if len(items) <= leafThreshold || depth >= maxDepth {
		return leaf
	}

	octants, err := bounds.Partition()
	if err != nil {
		// Unbounded items cannot be split
		return leaf
	}

	regions := octants.All()
	var buckets [8][]Item
	for _, item := range items {
		for i, region := range regions {
			if region.Contains(item.Bounds.Center) {
				buckets[i] = append(buckets[i], item)
				break
			}
		}
	}

	// Every center landed in one octant; splitting again would not make progress
	for _, bucket := range buckets {
		if len(bucket) == len(items) {
			return leaf
		}
	}

	node := &OctreeNode{Bounds: bounds}
	for _, bucket := range buckets {
		if len(bucket) > 0 {
			node.Children = append(node.Children, buildOctree(bucket, depth+1, maxDepth))
		}
	}
	return node
}

// Hit returns the item whose bounds the ray enters first
func (o *Octree) Hit(ray Ray, tMin, tMax float32) (Item, float32, bool) {
	if o.Root == nil {
		return Item{}, 0, false
	}
	return o.hitNode(o.Root, ray, tMin, tMax)
}

// hitNode recursively tests ray intersection with octree nodes
func (o *Octree) hitNode(node *OctreeNode, ray Ray, tMin, tMax float32) (Item, float32, bool) {
	// First check if ray hits the node bounds
	if _, ok := node.Bounds.Hit(ray, tMin, tMax); !ok {
		return Item{}, 0, false
	}

	var closest Item
	var closestT float32
	hitAnything := false
	closestSoFar := tMax

	if node.Items != nil {
		for _, item := range node.Items {
			if t, ok := item.Bounds.Hit(ray, tMin, closestSoFar); ok {
				// Ties keep the earlier item
				if hitAnything && t >= closestT {
					continue
				}
				hitAnything = true
				closest, closestT, closestSoFar = item, t, t
			}
		}
		return closest, closestT, hitAnything
	}

	for _, child := range node.Children {
		if item, t, ok := o.hitNode(child, ray, tMin, closestSoFar); ok {
			if hitAnything && t >= closestT {
				continue
			}
			hitAnything = true
			closest, closestT, closestSoFar = item, t, t
		}
	}
	return closest, closestT, hitAnything
}

// Query returns every item whose bounds overlap box
func (o *Octree) Query(box Aabb) []Item {
	if o.Root == nil {
		return nil
	}
	var found []Item
	o.queryNode(o.Root, box, &found)
	return found
}

func (o *Octree) queryNode(node *OctreeNode, box Aabb, found *[]Item) {
	if !node.Bounds.Intersects(box) {
		return
	}
	for _, item := range node.Items {
		if item.Bounds.Intersects(box) {
			*found = append(*found, item)
		}
	}
	for _, child := range node.Children {
		o.queryNode(child, box, found)
	}
}

// getStats returns statistics about the octree structure
func (o *Octree) getStats() octreeStats {
	if o.Root == nil {
		return octreeStats{}
	}

	stats := octreeStats{}
	o.collectStats(o.Root, 0, &stats)
	return stats
}

// octreeStats contains statistics about the octree structure
type octreeStats struct {
	totalNodes int
	leafNodes  int
	maxDepth   int
	totalItems int
}

// collectStats recursively collects statistics about the octree
func (o *Octree) collectStats(node *OctreeNode, depth int, stats *octreeStats) {
	stats.totalNodes++

	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	if node.Items != nil {
		stats.leafNodes++
		stats.totalItems += len(node.Items)
		return
	}
	for _, child := range node.Children {
		o.collectStats(child, depth+1, stats)
	}
}
