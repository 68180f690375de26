package image3d

import "sort"

// sortingPolygon is used specifically for sorting polygons when rendering; only the depth key and the polygon's position
// in the input are shuffled around, not the vertex data.
type sortingPolygon struct {
	index int
	depth float64
}

// SortByDepth returns the polygons ordered by ascending summed Z (see Polygon.DepthSum), so that the polygons with the
// smallest sum are drawn first and the largest sum last, painting over them. Polygons with equal sums keep their input order.
// The input slice is left untouched.
func SortByDepth(polygons []Polygon) []Polygon {

	keys := make([]sortingPolygon, len(polygons))
	for i, p := range polygons {
		keys[i] = sortingPolygon{index: i, depth: p.DepthSum()}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].depth < keys[j].depth
	})

	sorted := make([]Polygon, len(polygons))
	for i, k := range keys {
		sorted[i] = polygons[k.index]
	}

	return sorted

}
