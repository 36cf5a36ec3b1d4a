package batch

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Report summarizes a batch evaluation.
type Report struct {
	// Count is the number of triangles evaluated.
	Count int
	// Degenerate holds the indexes of collinear triangles (zero quadrea).
	Degenerate *roaring64.Bitmap
	// Failed holds the indexes of triangles whose spreads could not be
	// computed, typically because a side has zero quadrance.
	Failed *roaring64.Bitmap
	// Duration is the wall time of the whole batch.
	Duration time.Duration
}

func newReport() *Report {
	return &Report{
		Degenerate: roaring64.New(),
		Failed:     roaring64.New(),
	}
}

// add records results. Not safe for concurrent use; callers merge chunks
// after the workers are done.
func (r *Report) add(results []Result) {
	for _, res := range results {
		r.Count++
		if res.Collinear {
			r.Degenerate.Add(uint64(res.Index))
		}
		if res.Error != "" {
			r.Failed.Add(uint64(res.Index))
		}
	}
}

// DegenerateCount returns the number of collinear triangles.
func (r *Report) DegenerateCount() int {
	return int(r.Degenerate.GetCardinality())
}

// FailedCount returns the number of triangles with a row error.
func (r *Report) FailedCount() int {
	return int(r.Failed.GetCardinality())
}
