package engine

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/piwi3910/MasterPack/internal/model"
)

// maxAspectRatio prunes implausibly elongated candidate boxes: any
// dimension triple whose max/min extent ratio exceeds this never reaches
// evaluation. Fixed by design, not user-configurable.
const maxAspectRatio = 2.0

// rejectedRank is the sentinel assigned to candidates where at least one
// product fails to fit. It sits far below any reachable valid score so a
// rejected candidate can never outrank a valid one.
const rejectedRank = -1e9

// BoundingRange is the inclusive, discretized sweep over one axis of
// candidate external dimensions.
type BoundingRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// Valid reports whether the range generates at least one value.
func (r BoundingRange) Valid() bool {
	return r.Min > 0 && r.Step > 0 && r.Max >= r.Min
}

// CandidateSource is a finite, restartable sequence of candidate external
// dimensions. The exhaustive sweep is the default; alternative strategies
// (pruned, branch-and-bound) can slot in behind the same interface.
type CandidateSource interface {
	// Next returns the next candidate, or ok == false when exhausted.
	Next() (model.Dimensions3D, bool)
	// Reset rewinds the source to its first candidate.
	Reset()
}

// sweep enumerates every (length, width, height) triple of the bounding
// range, skipping triples over the aspect-ratio limit. Enumeration order
// is length-major, height-minor.
type sweep struct {
	rng     BoundingRange
	n       int // values per axis
	i, j, k int
}

// NewSweep returns the exhaustive candidate source over the given range.
func NewSweep(rng BoundingRange) CandidateSource {
	n := 0
	if rng.Valid() {
		n = int(math.Floor((rng.Max-rng.Min)/rng.Step+1e-9)) + 1
	}
	return &sweep{rng: rng, n: n}
}

func (s *sweep) value(idx int) float64 {
	return s.rng.Min + float64(idx)*s.rng.Step
}

func (s *sweep) Next() (model.Dimensions3D, bool) {
	for s.i < s.n {
		d := model.Dimensions3D{
			Length: s.value(s.i),
			Width:  s.value(s.j),
			Height: s.value(s.k),
		}

		s.k++
		if s.k == s.n {
			s.k = 0
			s.j++
			if s.j == s.n {
				s.j = 0
				s.i++
			}
		}

		if d.MaxExtent()/d.MinExtent() <= maxAspectRatio {
			return d, true
		}
	}
	return model.Dimensions3D{}, false
}

func (s *sweep) Reset() { s.i, s.j, s.k = 0, 0, 0 }

// Search sweeps candidate container dimensions and scores each against
// the whole catalog. Candidates where any product fails to fit are kept
// out of the ranking unless nothing at all survives, in which case the
// result reports Feasible == false. The final ordering is deterministic
// regardless of worker count: rank descending, then smaller volume, then
// lexicographic dimensions.
func Search(catalog []model.ProductUnit, pallet model.PalletConfig, rng BoundingRange, settings model.SolveSettings) (model.SearchResult, error) {
	src := NewSweep(rng)
	return SearchWith(src, catalog, pallet, settings)
}

// SearchWith runs the dimension search over an explicit candidate source.
func SearchWith(src CandidateSource, catalog []model.ProductUnit, pallet model.PalletConfig, settings model.SolveSettings) (model.SearchResult, error) {
	if len(catalog) == 0 {
		return model.SearchResult{}, ErrEmptyCatalog
	}
	for _, p := range catalog {
		if !p.Unit.Positive() {
			return model.SearchResult{}, fmt.Errorf("product %s unit %+v: %w", p.SKU, p.Unit, ErrInvalidGeometry)
		}
	}
	if !pallet.Valid() {
		return model.SearchResult{}, fmt.Errorf("pallet %+v: %w", pallet, ErrInvalidGeometry)
	}
	if !settings.Compression.Valid() {
		return model.SearchResult{}, fmt.Errorf("compression %+v: %w", settings.Compression, ErrInvalidGeometry)
	}

	src.Reset()
	var candidates []model.Dimensions3D
	for {
		d, ok := src.Next()
		if !ok {
			break
		}
		// Walls thicker than the box would flip the interior negative;
		// such triples are pruned rather than failed, the sweep simply
		// has nothing to say about them.
		spec := model.ContainerSpec{External: d, WallThickness: settings.WallThickness}
		if !spec.Valid() {
			continue
		}
		candidates = append(candidates, d)
	}
	if len(candidates) == 0 {
		return model.SearchResult{}, ErrEmptySearchSpace
	}

	workers := settings.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	scores := make([]model.CandidateScore, len(candidates))
	errs := make([]error, len(candidates))
	next := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range next {
				scores[idx], errs[idx] = evaluateCandidate(candidates[idx], catalog, pallet, settings)
			}
		}()
	}
	for idx := range candidates {
		next <- idx
	}
	close(next)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return model.SearchResult{}, err
		}
	}

	// Deterministic ordering independent of evaluation order.
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Rank != scores[j].Rank {
			return scores[i].Rank > scores[j].Rank
		}
		vi, vj := scores[i].Container.External.Volume(), scores[j].Container.External.Volume()
		if vi != vj {
			return vi < vj
		}
		di, dj := scores[i].Container.External, scores[j].Container.External
		if di.Length != dj.Length {
			return di.Length < dj.Length
		}
		if di.Width != dj.Width {
			return di.Width < dj.Width
		}
		return di.Height < dj.Height
	})

	result := model.SearchResult{Evaluated: len(candidates)}
	var surviving []model.CandidateScore
	for _, s := range scores {
		if s.AllFit {
			surviving = append(surviving, s)
		}
	}
	if len(surviving) == 0 {
		return result, nil
	}

	topN := settings.TopN
	if topN <= 0 {
		topN = 5
	}
	if topN > len(surviving) {
		topN = len(surviving)
	}
	result.Feasible = true
	result.Best = &surviving[0]
	result.TopN = surviving[:topN]
	return result, nil
}

// evaluateCandidate scores one candidate container size against every
// catalog product and the pallet interlock check.
func evaluateCandidate(external model.Dimensions3D, catalog []model.ProductUnit, pallet model.PalletConfig, settings model.SolveSettings) (model.CandidateScore, error) {
	spec := model.ContainerSpec{
		External:      external,
		WallThickness: settings.WallThickness,
		TareWeight:    settings.TareWeight,
	}

	score := model.CandidateScore{Container: spec, AllFit: true}

	interlock, err := CheckInterlock(external, pallet)
	if err != nil {
		return model.CandidateScore{}, err
	}
	score.Interlock = interlock

	var sumUtil, sumRatio float64
	for _, p := range catalog {
		arr, err := SolveProduct(p, spec, settings)
		if err != nil {
			return model.CandidateScore{}, err
		}
		score.Fits = append(score.Fits, model.ProductFit{
			ProductID:   p.ID,
			SKU:         p.SKU,
			Arrangement: arr,
		})
		if !arr.Fits {
			score.AllFit = false
			continue
		}
		sumUtil += arr.Utilization
		if p.HasBaseline() {
			sumRatio += float64(arr.TotalCount) / float64(p.Baseline)
		} else {
			sumRatio += 1.0
		}
	}

	if !score.AllFit {
		score.Rank = rejectedRank
		return score, nil
	}

	n := float64(len(catalog))
	score.AvgUtilization = sumUtil / n
	score.AvgBaselineRatio = sumRatio / n

	w := settings.Rank
	score.Rank = w.Utilization*score.AvgUtilization -
		w.Volume*external.Volume() +
		w.BaselineRatio*score.AvgBaselineRatio
	if interlock.Feasible {
		score.Rank += w.InterlockBonus + w.CoverageBonus*interlock.AvgCoverage
	}
	return score, nil
}
