package glmnet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FitRecord holds the fitted parameters at one point of the regularization
// path.
type FitRecord struct {

	// The regularization strength
	Lambda float64

	// The fitted intercept
	Beta0 float64

	// The fitted coefficients, in the order of the covariates passed
	// to NewGLM
	Beta []float64

	// The objective value after each optimization cycle
	LossTrace []float64

	// Converged is false if the iteration limit was reached before the
	// convergence criterion was met.
	Converged bool
}

// NumNonzero returns the number of nonzero coefficients, not counting the
// intercept.
func (fr *FitRecord) NumNonzero() int {

	var m int
	for _, b := range fr.Beta {
		if b != 0 {
			m++
		}
	}
	return m
}

// Predict returns the fitted mean response for the given data columns,
// which must correspond to the covariates used to fit the model.
func (fr *FitRecord) Predict(x [][]float64) []float64 {

	if len(x) != len(fr.Beta) {
		msg := fmt.Sprintf("Predict: data has %d columns, but the model has %d covariates\n",
			len(x), len(fr.Beta))
		panic(msg)
	}

	fv := make([]float64, len(x[0]))
	for i := range fv {
		fv[i] = fr.Beta0
	}
	for j := range x {
		floats.AddScaled(fv, fr.Beta[j], x[j])
	}
	softplusFunc(fv, fv)

	return fv
}

// Path holds the sequence of fits produced over the lambda grid, ordered
// from the strongest to the weakest regularization.
type Path struct {

	// The elastic net mixing parameter, fixed across the path
	Alpha float64

	// One fit record per grid point
	Fits []*FitRecord

	model *GLM
}

// Model returns the model that produced the path.
func (path *Path) Model() *GLM {
	return path.model
}

// Deviance returns the Poisson deviance of the model at the given
// parameters.
func (glm *GLM) Deviance(beta0 float64, beta []float64) float64 {

	y := glm.response()
	z := make([]float64, glm.NumObs())
	glm.linpred(beta0, beta, z)

	var dev float64
	for i := range y {
		mn := softplus(z[i])
		if y[i] > 0 {
			dev += 2 * y[i] * math.Log(y[i]/mn)
		}
		dev -= 2 * (y[i] - mn)
	}

	return dev
}

// PseudoR2 returns one minus the ratio of the model deviance to the
// deviance of an intercept-only model whose mean is the sample mean of
// the response.
func (glm *GLM) PseudoR2(beta0 float64, beta []float64) float64 {

	y := glm.response()
	mn := stat.Mean(y, nil)

	var dev0 float64
	for i := range y {
		if y[i] > 0 {
			dev0 += 2 * y[i] * math.Log(y[i]/mn)
		}
		dev0 -= 2 * (y[i] - mn)
	}

	return 1 - glm.Deviance(beta0, beta)/dev0
}
