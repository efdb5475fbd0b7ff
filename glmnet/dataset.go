package glmnet

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dataset defines a collection of variables to which a model can be fit.
// The data are stored column-wise, one slice per variable, all slices
// having equal length.
type Dataset struct {

	// The data columns.  The order agrees with the order of 'names'.
	data [][]float64

	// The names of the variables.
	names []string
}

// NewDataset creates a Dataset from the given data columns and variable
// names.  All columns must have the same length and there must be one name
// per column.
func NewDataset(data [][]float64, names []string) Dataset {

	if len(data) != len(names) {
		msg := fmt.Sprintf("NewDataset: %d data columns but %d names\n", len(data), len(names))
		panic(msg)
	}

	if len(data) == 0 {
		panic("NewDataset: no data columns provided\n")
	}

	for j := range data {
		if len(data[j]) != len(data[0]) {
			msg := fmt.Sprintf("NewDataset: column '%s' has length %d, expected %d\n",
				names[j], len(data[j]), len(data[0]))
			panic(msg)
		}
	}

	return Dataset{data: data, names: names}
}

// NewDatasetFromMatrix creates a Dataset from a row-major design matrix and
// a response vector.  The response is named "y" and the predictors are
// named "x1", "x2", etc., in column order.
func NewDatasetFromMatrix(x mat.Matrix, y []float64) Dataset {

	n, p := x.Dims()
	if len(y) != n {
		msg := fmt.Sprintf("NewDatasetFromMatrix: design has %d rows but the response has length %d\n",
			n, len(y))
		panic(msg)
	}

	data := make([][]float64, p+1)
	names := make([]string, p+1)

	data[0] = y
	names[0] = "y"
	for j := 0; j < p; j++ {
		col := make([]float64, n)
		mat.Col(col, j, x)
		data[j+1] = col
		names[j+1] = fmt.Sprintf("x%d", j+1)
	}

	return Dataset{data: data, names: names}
}

// Data returns the data columns of the dataset.
func (ds Dataset) Data() [][]float64 {
	return ds.data
}

// Names returns the names of the variables in the dataset.
func (ds Dataset) Names() []string {
	return ds.names
}
