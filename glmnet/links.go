package glmnet

import (
	"math"
)

// linkEps is added inside the softplus logarithm so that the log of the
// mean is finite even when exp(z) underflows to zero.
const linkEps float64 = 2.220446049250313e-16

// softplus is the stabilized softplus mean function, log(1 + eps + exp(z)).
// For positive z the naive form overflows, so it is evaluated as
// z + log1p((1+eps)*exp(-z)).
func softplus(z float64) float64 {
	if z > 0 {
		return z + math.Log1p((1+linkEps)*math.Exp(-z))
	}
	return math.Log1p(linkEps + math.Exp(z))
}

// expit is the logistic sigmoid, exp(z)/(1+exp(z)), the derivative of the
// softplus function.
func expit(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

func softplusFunc(x []float64, y []float64) {
	for i := range x {
		y[i] = softplus(x[i])
	}
}

func expitFunc(x []float64, y []float64) {
	for i := range x {
		y[i] = expit(x[i])
	}
}

// softThreshold returns the value of x shrunk toward zero by gamma,
// becoming exactly zero when |x| <= gamma.
func softThreshold(x, gamma float64) float64 {
	res := math.Max(0, math.Abs(x)-gamma)
	if math.Signbit(x) {
		return -res
	}
	return res
}
