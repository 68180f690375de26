package image3d

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// minParallelPolygons is the smallest polygon count worth fanning out over goroutines.
const minParallelPolygons = 256

// mapPolygons returns a new slice holding f applied to each polygon, in the same order. With Config.Parallelism above 1
// and enough polygons, the slice is split into disjoint contiguous chunks, one goroutine each; every chunk is finished
// before mapPolygons returns, so callers always see a fully materialized result. A panic in f is raised again on the calling
// goroutine, as it would be without workers.
func (p *Pipeline) mapPolygons(polygons []Polygon, f func(Polygon) Polygon) []Polygon {

	out := make([]Polygon, len(polygons))

	workers := p.Config.Parallelism
	if workers <= 1 || len(polygons) < minParallelPolygons {
		for i, polygon := range polygons {
			out[i] = f(polygon)
		}
		return out
	}

	chunk := (len(polygons) + workers - 1) / workers

	var group errgroup.Group
	group.SetLimit(workers)

	for start := 0; start < len(polygons); start += chunk {
		end := min(start+chunk, len(polygons))
		// f cannot fail, so the only error a worker returns is a recovered panic.
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("transforming polygons %d to %d: %v", start, end, r)
				}
			}()
			for i := start; i < end; i++ {
				out[i] = f(polygons[i])
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		panic(err)
	}

	return out

}
