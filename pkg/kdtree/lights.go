package kdtree

import "github.com/lumenforge/pathtracer/pkg/surface"

// Emitter pairs a light-emitting surface with its emitted radiance (assumed
// constant over the surface, matching spec's area-light model).
type Emitter struct {
	Surface surface.Surface
	Le      float64 // scalar emitted-radiance magnitude, ||Le||
}

// LightSampler picks one emitter to sample for direct lighting, reporting
// the probability (discrete PMF) with which it was chosen, per spec §4.E.
type LightSampler interface {
	Sample(u float64) (idx int, pmf float64)
	PMF(idx int) float64
	Len() int
}

// UniformSampler picks among N emitters with equal probability 1/N,
// grounded on original_source's pt/src/scenehandler/mod.rs UniformSampler.
type UniformSampler struct {
	n int
}

// NewUniformSampler constructs a uniform light sampler over n emitters.
func NewUniformSampler(n int) *UniformSampler { return &UniformSampler{n: n} }

// Sample implements LightSampler.
func (s *UniformSampler) Sample(u float64) (int, float64) {
	if s.n == 0 {
		return -1, 0
	}
	idx := int(u * float64(s.n))
	if idx >= s.n {
		idx = s.n - 1
	}
	return idx, 1.0 / float64(s.n)
}

// PMF implements LightSampler.
func (s *UniformSampler) PMF(idx int) float64 {
	if s.n == 0 {
		return 0
	}
	return 1.0 / float64(s.n)
}

// Len implements LightSampler.
func (s *UniformSampler) Len() int { return s.n }

// LinearSampler picks among emitters with probability proportional to each
// emitter's total emitted power (||Le|| * Area), via inverse-CDF search
// over the partial sums of sorted weights — grounded on original_source's
// pt/src/scenehandler/mod.rs LinearSampler.
type LinearSampler struct {
	order      []int
	cumWeights []float64 // cumWeights[i] = partial sum through order[i], normalized to [0,1]
	totalPower float64
}

// NewLinearSampler constructs an intensity-weighted light sampler over the
// given emitters.
func NewLinearSampler(emitters []Emitter) *LinearSampler {
	order := make([]int, len(emitters))
	weights := make([]float64, len(emitters))
	var total float64
	for i, e := range emitters {
		order[i] = i
		w := e.Le * e.Surface.Area()
		weights[i] = w
		total += w
	}
	sortBySurfaceArea(order, func(i int) float64 { return weights[i] })

	cum := make([]float64, len(order))
	var running float64
	for i, idx := range order {
		running += weights[idx]
		if total > 0 {
			cum[i] = running / total
		} else {
			cum[i] = float64(i+1) / float64(len(order))
		}
	}
	return &LinearSampler{order: order, cumWeights: cum, totalPower: total}
}

// Sample implements LightSampler via binary search over the cumulative
// weight array.
func (s *LinearSampler) Sample(u float64) (int, float64) {
	if len(s.order) == 0 {
		return -1, 0
	}
	lo, hi := 0, len(s.cumWeights)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if s.cumWeights[mid] < u {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	idx := s.order[lo]
	return idx, s.PMF(idx)
}

// PMF implements LightSampler.
func (s *LinearSampler) PMF(idx int) float64 {
	if s.totalPower <= 0 {
		if len(s.order) == 0 {
			return 0
		}
		return 1.0 / float64(len(s.order))
	}
	for i, oIdx := range s.order {
		if oIdx == idx {
			weight := s.cumWeights[i]
			if i > 0 {
				weight -= s.cumWeights[i-1]
			}
			return weight
		}
	}
	return 0
}

// Len implements LightSampler.
func (s *LinearSampler) Len() int { return len(s.order) }
