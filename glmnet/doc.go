/*
Package glmnet fits elastic net regularization paths for a count regression
model with a softplus mean function.

The penalized negative log-likelihood is minimized over a descending grid of
regularization strengths, warm-starting each fit from the solution at the
previous grid point.  Two solvers are provided: cyclic coordinate descent
with diagonal Newton steps and active set pruning, and proximal gradient
descent.
*/

package glmnet
