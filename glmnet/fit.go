package glmnet

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// fitState holds the mutable optimization state for one grid point.  It is
// owned exclusively by that grid point's solver invocation; the parameter
// values carry forward between grid points as warm starts, everything else
// is reset.
type fitState struct {
	beta0 float64
	beta  []float64

	// The linear predictor implied by the current parameters
	z []float64

	// Cached score and Hessian values, one per parameter position
	g []float64
	h []float64

	active *activeSet

	// Objective values, one per completed cycle
	trace []float64

	converged bool
}

func newFitState(n, p int) *fitState {

	return &fitState{
		beta:   make([]float64, p),
		z:      make([]float64, n),
		g:      make([]float64, p+1),
		h:      make([]float64, p+1),
		active: newActiveSet(p),
	}
}

// Fit fits the model at every point of the lambda grid, warm-starting each
// grid point from the solution at the previous one, and returns the
// regularization path.
func (glm *GLM) Fit() *Path {

	c := glm.config
	n := glm.NumObs()
	p := glm.NumParams()

	st := newFitState(n, p)
	if c.Start != nil {
		st.beta0 = c.Start[0]
		copy(st.beta, c.Start[1:])
	} else {
		rng := rand.New(rand.NewSource(c.Seed))
		st.beta0 = rng.NormFloat64() / float64(p+1)
		for j := range st.beta {
			st.beta[j] = rng.NormFloat64() / float64(p+1)
		}
	}

	path := &Path{
		Alpha: c.Alpha,
		model: glm,
	}

	for _, lambda := range c.Lambdas {

		st.active.reset()
		st.trace = st.trace[:0]
		st.converged = false

		switch c.Solver {
		case CoordinateDescent:
			glm.fitCoordinate(st, lambda)
		case GradientDescent:
			glm.fitGradient(st, lambda)
		}

		beta := make([]float64, p)
		copy(beta, st.beta)
		trace := make([]float64, len(st.trace))
		copy(trace, st.trace)

		rec := &FitRecord{
			Lambda:    lambda,
			Beta0:     st.beta0,
			Beta:      beta,
			LossTrace: trace,
			Converged: st.converged,
		}
		path.Fits = append(path.Fits, rec)

		if glm.log != nil {
			glm.log.Printf("lambda=%f: %d cycles, %d nonzero coefficients, converged=%v",
				lambda, len(trace), rec.NumNonzero(), st.converged)
		}
	}

	return path
}

// done reports whether the objective trace has converged under the
// relative change rule.
func (glm *GLM) done(trace []float64) bool {

	m := len(trace)
	if m < 2 {
		return false
	}
	return math.Abs(trace[m-1]-trace[m-2]) < glm.config.Tol*math.Abs(trace[m-2])
}

// fitCoordinate minimizes the objective at one grid point by cyclic
// coordinate descent, using diagonal Newton steps followed by soft
// thresholding.  The linear predictor is maintained incrementally as each
// coordinate moves, and coordinates whose coefficients reach zero are
// pruned from the active set at the end of the cycle.
func (glm *GLM) fitCoordinate(st *fitState, lambda float64) {

	c := glm.config

	glm.linpred(st.beta0, st.beta, st.z)
	glm.Score(st.beta0, st.beta, lambda, st.g)
	glm.Hessian(st.beta0, st.beta, lambda, st.h)

	thresh := lambda * c.Alpha
	var floored bool
	var buf []int

	for iter := 0; iter < c.MaxIter; iter++ {

		// Newton step for the intercept, which is never thresholded.
		hk := st.h[0]
		if hk < c.HessFloor {
			hk = c.HessFloor
			floored = true
		}
		d := -st.g[0] / hk
		st.beta0 += d
		floats.AddConst(d, st.z)
		st.g[0], st.h[0] = glm.coordScoreHess(st.z, 0, st.beta0, lambda)

		buf = st.active.indices(buf)
		for _, k := range buf {

			hk := st.h[k]
			if hk < c.HessFloor {
				hk = c.HessFloor
				floored = true
			}

			b := softThreshold(st.beta[k-1]-st.g[k]/hk, thresh)
			if b == 0 {
				st.active.mark(k)
			}

			if d := b - st.beta[k-1]; d != 0 {
				floats.AddScaled(st.z, d, glm.xcol(k))
			}
			st.beta[k-1] = b

			st.g[k], st.h[k] = glm.coordScoreHess(st.z, k, b, lambda)
		}

		st.active.prune()

		st.trace = append(st.trace, glm.Objective(st.beta0, st.beta, lambda))
		if glm.done(st.trace) {
			st.converged = true
			break
		}
	}

	if floored && glm.log != nil {
		glm.log.Printf("lambda=%f: Hessian floored at %e", lambda, c.HessFloor)
	}
}

// fitGradient minimizes the objective at one grid point by proximal
// gradient descent with a fixed step size.
func (glm *GLM) fitGradient(st *fitState, lambda float64) {

	c := glm.config
	thresh := lambda * c.Alpha

	for iter := 0; iter < c.MaxIter; iter++ {

		glm.Score(st.beta0, st.beta, lambda, st.g)

		st.beta0 -= c.LearnRate * st.g[0]
		for j := range st.beta {
			st.beta[j] = softThreshold(st.beta[j]-c.LearnRate*st.g[j+1], thresh)
		}

		st.trace = append(st.trace, glm.Objective(st.beta0, st.beta, lambda))
		if glm.done(st.trace) {
			st.converged = true
			break
		}
	}
}
