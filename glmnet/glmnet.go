package glmnet

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
)

// SolverType is used to select the algorithm used to fit the model at each
// point of the regularization path.
type SolverType uint8

// CoordinateDescent and GradientDescent indicate the two available solvers.
const (
	CoordinateDescent SolverType = iota
	GradientDescent
)

// GLM represents a count regression model with a softplus mean function,
// penalized with an elastic net penalty.
type GLM struct {

	// The names of the variables.  The order agrees with the order of 'data'.
	varnames []string

	// The data to which the model is fit
	data [][]float64

	// Position of the response variable
	ypos int

	// Positions of the covariates
	xpos []int

	config *Config

	log *log.Logger
}

// Config defines configuration parameters for fitting a regularization path.
type Config struct {

	// Lambdas is the grid of regularization strengths, which must be
	// positive and strictly descending.
	Lambdas []float64

	// Alpha is the elastic net mixing parameter, with 0 giving a pure
	// ridge penalty and 1 a pure lasso penalty.
	Alpha float64

	// Solver selects the fitting algorithm.
	Solver SolverType

	// Tol is the convergence tolerance.  A fit is converged when the
	// relative change of the objective between successive cycles falls
	// below this value.
	Tol float64

	// MaxIter limits the number of cycles at each grid point.
	MaxIter int

	// LearnRate is the step size for the gradient descent solver.
	LearnRate float64

	// Start contains optional starting values for the first grid point,
	// the intercept followed by the coefficients.  If nil, random
	// starting values are drawn using Seed.
	Start []float64

	// Seed seeds the random starting values used when Start is nil.
	Seed uint64

	// HessFloor is the smallest curvature value used in a coordinate
	// descent Newton step.  Smaller Hessian values are floored here.
	HessFloor float64

	// A logger to which logging information is written
	Log *log.Logger
}

// DefaultConfig returns a default configuration struct for fitting a
// regularization path.
func DefaultConfig() *Config {

	return &Config{
		Lambdas:   logspace(0.5, 0.01, 10),
		Alpha:     0.5,
		Solver:    CoordinateDescent,
		Tol:       1e-6,
		MaxIter:   1000,
		LearnRate: 0.2,
		HessFloor: 1e-10,
	}
}

// logspace returns m logarithmically spaced values from a to b inclusive.
func logspace(a, b float64, m int) []float64 {

	la := math.Log(a)
	lb := math.Log(b)
	v := make([]float64, m)
	for i := range v {
		v[i] = math.Exp(la + (lb-la)*float64(i)/float64(m-1))
	}
	return v
}

// NewGLM returns a GLM value from which a regularization path can be fit
// by calling the Fit method.
func NewGLM(data Dataset, yname string, xnames []string, config *Config) (*GLM, error) {

	if config == nil {
		config = DefaultConfig()
	}

	pos := make(map[string]int)
	for i, v := range data.Names() {
		pos[v] = i
	}

	ypos, ok := pos[yname]
	if !ok {
		return nil, fmt.Errorf("Response variable '%s' not found in dataset", yname)
	}

	if len(xnames) == 0 {
		return nil, fmt.Errorf("No predictor variables were provided")
	}

	var xpos []int
	for _, xna := range xnames {
		xp, ok := pos[xna]
		if !ok {
			return nil, fmt.Errorf("Predictor '%s' not found in dataset", xna)
		}
		xpos = append(xpos, xp)
	}

	y := data.Data()[ypos]
	if len(y) == 0 {
		return nil, fmt.Errorf("The dataset has no observations")
	}
	for i := range y {
		if y[i] < 0 {
			return nil, fmt.Errorf("The response must be non-negative, but element %d is %f", i, y[i])
		}
	}

	if err := checkConfig(config, len(xpos)); err != nil {
		return nil, err
	}

	glm := &GLM{
		varnames: data.Names(),
		data:     data.Data(),
		ypos:     ypos,
		xpos:     xpos,
		config:   config,
		log:      config.Log,
	}

	return glm, nil
}

// checkConfig validates the configuration before any optimization work
// begins.
func checkConfig(config *Config, nvar int) error {

	if len(config.Lambdas) == 0 {
		return fmt.Errorf("The lambda grid is empty")
	}
	for i, la := range config.Lambdas {
		if la <= 0 {
			return fmt.Errorf("The lambda grid must be positive, but element %d is %f", i, la)
		}
		if i > 0 && la >= config.Lambdas[i-1] {
			return fmt.Errorf("The lambda grid must be strictly descending")
		}
	}

	if config.Alpha < 0 || config.Alpha > 1 {
		return fmt.Errorf("Alpha is %f but must be between 0 and 1", config.Alpha)
	}

	if config.Solver != CoordinateDescent && config.Solver != GradientDescent {
		return fmt.Errorf("Unknown solver: %v", config.Solver)
	}

	if config.Tol <= 0 {
		return fmt.Errorf("Tol is %f but must be positive", config.Tol)
	}

	if config.MaxIter <= 0 {
		return fmt.Errorf("MaxIter is %d but must be positive", config.MaxIter)
	}

	if config.Solver == GradientDescent && config.LearnRate <= 0 {
		return fmt.Errorf("LearnRate is %f but must be positive", config.LearnRate)
	}

	if config.Start != nil && len(config.Start) != nvar+1 {
		return fmt.Errorf("Start has length %d, but the model has %d parameters",
			len(config.Start), nvar+1)
	}

	if config.HessFloor == 0 {
		config.HessFloor = 1e-10
	}
	if config.HessFloor < 0 {
		return fmt.Errorf("HessFloor is %f but must be positive", config.HessFloor)
	}

	return nil
}

// NumObs returns the number of observations in the data set.
func (glm *GLM) NumObs() int {
	return len(glm.data[glm.ypos])
}

// NumParams returns the number of covariates in the model, not counting
// the intercept.
func (glm *GLM) NumParams() int {
	return len(glm.xpos)
}

// XNames returns the names of the covariates, in the order of the
// coefficients in each fit record.
func (glm *GLM) XNames() []string {

	var v []string
	for _, j := range glm.xpos {
		v = append(v, glm.varnames[j])
	}
	return v
}

// response returns the response column.
func (glm *GLM) response() []float64 {
	return glm.data[glm.ypos]
}

// xcol returns the design column for parameter position k, with k=1
// corresponding to the first covariate.  Position 0 is the intercept and
// has no column.
func (glm *GLM) xcol(k int) []float64 {
	return glm.data[glm.xpos[k-1]]
}

// linpred computes the linear predictor implied by the given parameters,
// storing it in z.
func (glm *GLM) linpred(beta0 float64, beta []float64, z []float64) {

	for i := range z {
		z[i] = beta0
	}
	for j := range beta {
		floats.AddScaled(z, beta[j], glm.data[glm.xpos[j]])
	}
}

// LogLike returns the log-likelihood of the model at the given parameters.
// If exact is false, terms that are constant in the parameters are omitted.
func (glm *GLM) LogLike(beta0 float64, beta []float64, exact bool) float64 {

	y := glm.response()
	z := make([]float64, glm.NumObs())
	glm.linpred(beta0, beta, z)

	var ll float64
	for i := range y {
		q := softplus(z[i])
		ll += y[i]*math.Log(q) - q
	}

	if exact {
		for i := range y {
			lg, _ := math.Lgamma(y[i] + 1)
			ll -= lg
		}
	}

	return ll
}

// penalty returns the elastic net penalty at the given coefficients, which
// never include the intercept.  The ridge part uses the L2 norm of the
// coefficients, not its square.
func penalty(alpha float64, beta []float64) float64 {
	return 0.5*(1-alpha)*floats.Norm(beta, 2) + alpha*floats.Norm(beta, 1)
}

// Objective returns the penalized negative log-likelihood at the given
// parameters.  The L1 part of the penalty is included here but is handled
// by the solvers through soft thresholding rather than through the score.
func (glm *GLM) Objective(beta0 float64, beta []float64, lambda float64) float64 {
	return -glm.LogLike(beta0, beta, false) + lambda*penalty(glm.config.Alpha, beta)
}

// Score computes the gradient of the penalized negative log-likelihood,
// excluding the L1 term, at the given parameters.  The score vector has
// length p+1 with the intercept derivative in position 0.
func (glm *GLM) Score(beta0 float64, beta []float64, lambda float64, score []float64) {

	y := glm.response()
	n := glm.NumObs()
	z := make([]float64, n)
	glm.linpred(beta0, beta, z)

	q := make([]float64, n)
	s := make([]float64, n)
	softplusFunc(z, q)
	expitFunc(z, s)

	u := make([]float64, n)
	for i := range u {
		u[i] = s[i] - y[i]*s[i]/q[i]
	}

	score[0] = floats.Sum(u)

	rw := lambda * (1 - glm.config.Alpha)
	for k := 1; k <= len(beta); k++ {
		score[k] = floats.Dot(u, glm.xcol(k)) + rw*beta[k-1]
	}
}

// Hessian computes the diagonal of the Hessian of the penalized negative
// log-likelihood, excluding the L1 term, at the given parameters.  The
// result has length p+1 with the intercept curvature in position 0.
func (glm *GLM) Hessian(beta0 float64, beta []float64, lambda float64, hess []float64) {

	y := glm.response()
	n := glm.NumObs()
	z := make([]float64, n)
	glm.linpred(beta0, beta, z)

	q := make([]float64, n)
	s := make([]float64, n)
	softplusFunc(z, q)
	expitFunc(z, s)

	v := make([]float64, n)
	for i := range v {
		sp := s[i] * (1 - s[i])
		t := sp/q[i] - s[i]/(q[i]*q[i])
		v[i] = sp - y[i]*t
	}

	hess[0] = floats.Sum(v)

	rw := lambda * (1 - glm.config.Alpha)
	for k := 1; k <= len(beta); k++ {
		x := glm.xcol(k)
		var h float64
		for i := range v {
			h += v[i] * x[i] * x[i]
		}
		hess[k] = h + rw
	}
}

// coordScoreHess computes the score and Hessian values for a single
// parameter position at the current linear predictor, avoiding a full
// pass over the design matrix.
func (glm *GLM) coordScoreHess(z []float64, k int, betak, lambda float64) (float64, float64) {

	y := glm.response()
	var gk, hk float64

	if k == 0 {
		for i := range z {
			s := expit(z[i])
			q := softplus(z[i])
			sp := s * (1 - s)
			t := sp/q - s/(q*q)
			gk += s - y[i]*s/q
			hk += sp - y[i]*t
		}
		return gk, hk
	}

	x := glm.xcol(k)
	for i := range z {
		s := expit(z[i])
		q := softplus(z[i])
		sp := s * (1 - s)
		t := sp/q - s/(q*q)
		gk += (s - y[i]*s/q) * x[i]
		hk += (sp - y[i]*t) * x[i] * x[i]
	}

	rw := lambda * (1 - glm.config.Alpha)
	return gk + rw*betak, hk + rw
}
