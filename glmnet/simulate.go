package glmnet

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Simulate draws count responses from the softplus model at the given
// parameters.  The mean for row i is softplus(beta0 + x_i'beta) and the
// response is Poisson with that mean.  The data columns in x follow the
// order of beta.
func Simulate(beta0 float64, beta []float64, x [][]float64, src rand.Source) []float64 {

	if len(x) != len(beta) {
		msg := fmt.Sprintf("Simulate: %d data columns but %d coefficients\n", len(x), len(beta))
		panic(msg)
	}
	if len(x) == 0 {
		panic("Simulate: no data columns provided\n")
	}

	z := make([]float64, len(x[0]))
	for i := range z {
		z[i] = beta0
	}
	for j := range x {
		floats.AddScaled(z, beta[j], x[j])
	}

	y := make([]float64, len(z))
	for i := range z {
		po := distuv.Poisson{Lambda: softplus(z[i]), Src: src}
		y[i] = po.Rand()
	}

	return y
}
