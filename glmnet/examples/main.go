// This script simulates data from a sparse softplus count regression
// model, then fits the elastic net regularization path with both solvers
// and prints summaries of the fitted paths.

package main

import (
	"fmt"

	"github.com/kshedden/glmnet/glmnet"
	"golang.org/x/exp/rand"
)

func simulate(n, p int) glmnet.Dataset {

	src := rand.NewSource(4523745)
	rng := rand.New(src)

	x := make([][]float64, p)
	for j := range x {
		col := make([]float64, n)
		for i := range col {
			col[i] = rng.NormFloat64()
		}
		x[j] = col
	}

	// A sparse coefficient vector
	beta := make([]float64, p)
	for j := 0; j < 5; j++ {
		beta[j] = 0.4
	}

	y := glmnet.Simulate(0.5, beta, x, src)

	data := make([][]float64, p+1)
	names := make([]string, p+1)
	data[0] = y
	names[0] = "y"
	for j := range x {
		data[j+1] = x[j]
		names[j+1] = fmt.Sprintf("x%d", j+1)
	}

	return glmnet.NewDataset(data, names)
}

func main() {

	n := 500
	p := 20
	data := simulate(n, p)

	var xnames []string
	for j := 1; j <= p; j++ {
		xnames = append(xnames, fmt.Sprintf("x%d", j))
	}

	c := glmnet.DefaultConfig()
	c.Seed = 1843

	model, err := glmnet.NewGLM(data, "y", xnames, c)
	if err != nil {
		panic(err)
	}
	path := model.Fit()
	fmt.Printf("%v\n", path.Summary())

	c = glmnet.DefaultConfig()
	c.Seed = 1843
	c.Solver = glmnet.GradientDescent
	c.LearnRate = 1e-4
	c.MaxIter = 10000

	model, err = glmnet.NewGLM(data, "y", xnames, c)
	if err != nil {
		panic(err)
	}
	path = model.Fit()
	fmt.Printf("%v\n", path.Summary())

	fit := path.Fits[len(path.Fits)-1]
	fmt.Printf("Pseudo R-squared at lambda=%.3f: %.3f\n",
		fit.Lambda, model.PseudoR2(fit.Beta0, fit.Beta))

	names := model.XNames()
	fmt.Printf("Selected variables:")
	for j := range fit.Beta {
		if fit.Beta[j] != 0 {
			fmt.Printf(" %s", names[j])
		}
	}
	fmt.Printf("\n")
}
