package glmnet

import (
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestNewDataset(t *testing.T) {

	data := [][]float64{{1, 2, 3}, {4, 5, 6}}
	names := []string{"y", "x1"}

	ds := NewDataset(data, names)
	if len(ds.Data()) != 2 || ds.Names()[1] != "x1" {
		t.Errorf("dataset contents are wrong")
	}

	shouldPanic := func(title string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected a panic", title)
			}
		}()
		f()
	}

	shouldPanic("ragged columns", func() {
		NewDataset([][]float64{{1, 2, 3}, {4, 5}}, []string{"y", "x1"})
	})
	shouldPanic("name count mismatch", func() {
		NewDataset(data, []string{"y"})
	})
	shouldPanic("empty data", func() {
		NewDataset(nil, nil)
	})
}

func TestNewDatasetFromMatrix(t *testing.T) {

	x := mat.NewDense(3, 2, []float64{
		1, 4,
		2, 5,
		3, 6,
	})
	y := []float64{0, 1, 2}

	ds := NewDatasetFromMatrix(x, y)

	if ds.Names()[0] != "y" || ds.Names()[1] != "x1" || ds.Names()[2] != "x2" {
		t.Errorf("unexpected names: %v", ds.Names())
	}
	if !floats.Equal(ds.Data()[0], y) {
		t.Errorf("response column is wrong")
	}
	if !floats.Equal(ds.Data()[1], []float64{1, 2, 3}) {
		t.Errorf("first design column is wrong: %v", ds.Data()[1])
	}
	if !floats.Equal(ds.Data()[2], []float64{4, 5, 6}) {
		t.Errorf("second design column is wrong: %v", ds.Data()[2])
	}
}
