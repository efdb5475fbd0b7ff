package glmnet

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

func diffdata() Dataset {

	y := []float64{0, 1, 3, 2, 1, 1, 0}
	x1 := []float64{4, 1, -1, 3, 5, -5, 3}
	x2 := []float64{1, -1, 1, 1, 2, 5, -1}

	return NewDataset([][]float64{y, x1, x2}, []string{"y", "x1", "x2"})
}

func diffmodel(t *testing.T, alpha float64) *GLM {

	c := DefaultConfig()
	c.Alpha = alpha

	glm, err := NewGLM(diffdata(), "y", []string{"x1", "x2"}, c)
	if err != nil {
		t.Fatal(err)
	}

	return glm
}

var diffParams [][]float64 = [][]float64{
	{0, 0, 0},
	{0.5, 0.1, -0.1},
	{-0.2, 0.3, 0.1},
	{1, -0.5, 0.5},
}

// The score at lambda=0 is the gradient of the negative log-likelihood.
func TestScoreGrad(t *testing.T) {

	glm := diffmodel(t, 0.5)

	nparam := glm.NumParams() + 1
	ngrad := make([]float64, nparam)
	score := make([]float64, nparam)

	negll := func(x []float64) float64 {
		return -glm.LogLike(x[0], x[1:], false)
	}

	for _, params := range diffParams {
		fd.Gradient(ngrad, negll, params, nil)
		glm.Score(params[0], params[1:], 0, score)
		if !floats.EqualApprox(score, ngrad, 1e-5) {
			fmt.Printf("Numerical:  %v\n", ngrad)
			fmt.Printf("Analytical: %v\n", score)
			t.Fail()
		}
	}
}

// The exact log-likelihood differs from the non-exact form by a constant
// that does not depend on the parameters.
func TestLogLikeExact(t *testing.T) {

	glm := diffmodel(t, 0.5)

	d0 := glm.LogLike(0, []float64{0, 0}, true) - glm.LogLike(0, []float64{0, 0}, false)
	for _, params := range diffParams {
		d := glm.LogLike(params[0], params[1:], true) - glm.LogLike(params[0], params[1:], false)
		if math.Abs(d-d0) > 1e-10 {
			t.Errorf("Exact log-likelihood offset is not constant: %e != %e", d, d0)
		}
	}
}

// The penalized score differs from the unpenalized score by the ridge
// term, which never touches the intercept.
func TestScoreRidge(t *testing.T) {

	alpha := 0.25
	lambda := 0.8
	glm := diffmodel(t, alpha)

	nparam := glm.NumParams() + 1
	score0 := make([]float64, nparam)
	score1 := make([]float64, nparam)

	for _, params := range diffParams {
		glm.Score(params[0], params[1:], 0, score0)
		glm.Score(params[0], params[1:], lambda, score1)

		if math.Abs(score1[0]-score0[0]) > 1e-12 {
			t.Errorf("The intercept score should not be penalized")
		}
		for k := 1; k < nparam; k++ {
			d := score1[k] - score0[k] - lambda*(1-alpha)*params[k]
			if math.Abs(d) > 1e-10 {
				t.Errorf("Ridge term mismatch at position %d: %e", k, d)
			}
		}
	}
}

// At zero parameters the linear predictor is zero everywhere, where the
// score and Hessian reduce to closed forms in sigmoid(0)=1/2 and
// softplus(0)=log 2.
func TestClosedFormAtZero(t *testing.T) {

	glm := diffmodel(t, 0.5)
	y := glm.response()

	q := math.Log(2 + linkEps)
	s := 0.5
	sp := 0.25
	tt := sp/q - s/(q*q)

	nparam := glm.NumParams() + 1
	score := make([]float64, nparam)
	hess := make([]float64, nparam)
	zero := make([]float64, glm.NumParams())

	glm.Score(0, zero, 0, score)
	glm.Hessian(0, zero, 0, hess)

	var g0, h0 float64
	for i := range y {
		g0 += s - y[i]*s/q
		h0 += sp - y[i]*tt
	}

	if math.Abs(score[0]-g0) > 1e-10 {
		t.Errorf("intercept score at zero is %e, expected %e", score[0], g0)
	}
	if math.Abs(hess[0]-h0) > 1e-10 {
		t.Errorf("intercept hessian at zero is %e, expected %e", hess[0], h0)
	}

	for k := 1; k < nparam; k++ {
		x := glm.xcol(k)
		var gk, hk float64
		for i := range y {
			gk += (s - y[i]*s/q) * x[i]
			hk += (sp - y[i]*tt) * x[i] * x[i]
		}
		if math.Abs(score[k]-gk) > 1e-10 {
			t.Errorf("score %d at zero is %e, expected %e", k, score[k], gk)
		}
		if math.Abs(hess[k]-hk) > 1e-10 {
			t.Errorf("hessian %d at zero is %e, expected %e", k, hess[k], hk)
		}
	}
}

// The single coordinate forms agree with the batch forms when evaluated
// at the same linear predictor.
func TestCoordScoreHess(t *testing.T) {

	glm := diffmodel(t, 0.5)
	lambda := 0.3

	nparam := glm.NumParams() + 1
	score := make([]float64, nparam)
	hess := make([]float64, nparam)
	z := make([]float64, glm.NumObs())

	for _, params := range diffParams {
		glm.linpred(params[0], params[1:], z)
		glm.Score(params[0], params[1:], lambda, score)
		glm.Hessian(params[0], params[1:], lambda, hess)

		for k := 0; k < nparam; k++ {
			var bk float64
			if k > 0 {
				bk = params[k]
			}
			gk, hk := glm.coordScoreHess(z, k, bk, lambda)
			if math.Abs(gk-score[k]) > 1e-10*(1+math.Abs(score[k])) {
				fmt.Printf("k=%d score: batch %e, coordinate %e\n", k, score[k], gk)
				t.Fail()
			}
			if math.Abs(hk-hess[k]) > 1e-10*(1+math.Abs(hess[k])) {
				fmt.Printf("k=%d hessian: batch %e, coordinate %e\n", k, hess[k], hk)
				t.Fail()
			}
		}
	}
}

// The Hessian diagonal is positive at reasonable parameter values, so the
// Newton steps are well defined.
func TestHessianPositive(t *testing.T) {

	glm := diffmodel(t, 0.5)

	nparam := glm.NumParams() + 1
	hess := make([]float64, nparam)

	for _, params := range diffParams {
		glm.Hessian(params[0], params[1:], 0.1, hess)
		for k := range hess {
			if hess[k] <= 0 {
				t.Errorf("Hessian position %d is %e at %v", k, hess[k], params)
			}
		}
	}
}
