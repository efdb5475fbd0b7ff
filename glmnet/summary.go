package glmnet

import (
	"bytes"
	"fmt"
	"strings"
)

// Fmter formats the elements of an array of values for display in a
// summary table.
type Fmter func(interface{}, string) []string

// SummaryTable holds the summary values for a fitted regularization path.
type SummaryTable struct {

	// Title
	Title string

	// Column names
	ColNames []string

	// Formatters for the column values
	ColFmt []Fmter

	// Cols[j] is the j^th column.  Its concrete type should be an
	// array, e.g. of numbers or strings.
	Cols []interface{}

	// Values at the top of the summary
	Top []string

	// Messages displayed below the table
	Msg []string

	// Total width of the table
	tw int
}

// Draw a line constructed of the given character filling the width of
// the table.
func (s *SummaryTable) line(c string) string {
	return strings.Repeat(c, s.tw) + "\n"
}

// cleanTop ensures that all fields in the top part of the table have
// the same width.
func (s *SummaryTable) cleanTop() {

	w := len(s.Top[0])
	for _, x := range s.Top {
		if len(x) > w {
			w = len(x)
		}
	}

	for i, x := range s.Top {
		if len(x) < w {
			s.Top[i] = x + strings.Repeat(" ", w-len(x))
		}
	}
}

// Construct the upper part of the table, which contains summary
// values for the model.
func (s *SummaryTable) top(gap int) string {

	w := []int{0, 0}

	for j, x := range s.Top {
		if len(x) > w[j%2] {
			w[j%2] = len(x)
		}
	}

	var b bytes.Buffer

	for j, x := range s.Top {
		c := fmt.Sprintf("%%-%ds", w[j%2])
		b.Write([]byte(fmt.Sprintf(c, x)))
		if j%2 == 1 {
			b.Write([]byte("\n"))
		} else {
			b.Write([]byte(strings.Repeat(" ", gap)))
		}
	}

	if len(s.Top)%2 == 1 {
		b.Write([]byte("\n"))
	}

	return b.String()
}

// String returns the table as a string.
func (s *SummaryTable) String() string {

	s.cleanTop()

	var tab [][]string
	var wx []int
	for j, c := range s.Cols {
		u := s.ColFmt[j](c, s.ColNames[j])
		tab = append(tab, u)
		if len(u[0]) > len(s.ColNames[j]) {
			wx = append(wx, len(u[0]))
		} else {
			wx = append(wx, len(s.ColNames[j]))
		}
	}

	gap := 10

	// Get the total width of the table
	s.tw = 0
	for _, w := range wx {
		s.tw += w
	}
	if s.tw < len(s.Title) {
		s.tw = len(s.Title)
	}
	if s.tw < gap+2*len(s.Top[0]) {
		s.tw = gap + 2*len(s.Top[0])
	}

	var buf bytes.Buffer

	// Center the title
	k := len(s.Title)
	kr := (s.tw - k) / 2
	if kr < 0 {
		kr = 0
	}
	buf.Write([]byte(strings.Repeat(" ", kr)))
	buf.Write([]byte(s.Title))
	buf.Write([]byte("\n"))

	buf.Write([]byte(s.line("=")))
	buf.Write([]byte(s.top(gap)))
	buf.Write([]byte(s.line("-")))

	for j, c := range s.ColNames {
		f := fmt.Sprintf("%%%ds", wx[j])
		buf.Write([]byte(fmt.Sprintf(f, c)))
	}
	buf.Write([]byte("\n"))
	buf.Write([]byte(s.line("-")))

	for i := 0; i < len(tab[0]); i++ {
		for j := 0; j < len(tab); j++ {
			f := fmt.Sprintf("%%%ds", wx[j])
			buf.Write([]byte(fmt.Sprintf(f, tab[j][i])))
		}
		buf.Write([]byte("\n"))
	}
	buf.Write([]byte(s.line("-")))

	for _, msg := range s.Msg {
		buf.Write([]byte(msg + "\n"))
	}

	return buf.String()
}

func solverName(solver SolverType) string {

	switch solver {
	case CoordinateDescent:
		return "coordinate"
	case GradientDescent:
		return "gradient"
	default:
		msg := fmt.Sprintf("Solver unknown: %v\n", solver)
		panic(msg)
	}
}

// Summary returns a string summarizing the fits along the regularization
// path.
func (path *Path) Summary() string {

	glm := path.model

	sum := &SummaryTable{}

	sum.Title = "Softplus count regression, elastic net path"

	sum.Top = append(sum.Top, fmt.Sprintf("  Sample size: %8d", glm.NumObs()))
	sum.Top = append(sum.Top, fmt.Sprintf("  Covariates:  %8d", glm.NumParams()))
	sum.Top = append(sum.Top, fmt.Sprintf("  Alpha:       %8.3f", path.Alpha))
	sum.Top = append(sum.Top, fmt.Sprintf("  Solver:      %8s", solverName(glm.config.Solver)))

	fn := func(x interface{}, h string) []string {
		y := x.([]float64)
		var s []string
		for i := range y {
			s = append(s, fmt.Sprintf("%12.4f", y[i]))
		}
		return s
	}

	fi := func(x interface{}, h string) []string {
		y := x.([]int)
		var s []string
		for i := range y {
			s = append(s, fmt.Sprintf("%8d", y[i]))
		}
		return s
	}

	fs := func(x interface{}, h string) []string {
		y := x.([]string)
		var s []string
		for i := range y {
			s = append(s, fmt.Sprintf("%10s", y[i]))
		}
		return s
	}

	var lambda, obj []float64
	var df, cycles []int
	var conv []string
	for _, fr := range path.Fits {
		lambda = append(lambda, fr.Lambda)
		df = append(df, fr.NumNonzero())
		obj = append(obj, fr.LossTrace[len(fr.LossTrace)-1])
		cycles = append(cycles, len(fr.LossTrace))
		if fr.Converged {
			conv = append(conv, "yes")
		} else {
			conv = append(conv, "no")
		}
	}

	sum.ColNames = []string{"Lambda", "Df", "Objective", "Cycles", "Converged"}
	sum.ColFmt = []Fmter{fn, fi, fn, fi, fs}
	sum.Cols = []interface{}{lambda, df, obj, cycles, conv}

	var nc int
	for _, fr := range path.Fits {
		if !fr.Converged {
			nc++
		}
	}
	if nc > 0 {
		sum.Msg = append(sum.Msg, fmt.Sprintf("%d grid points did not converge", nc))
	}

	return sum.String()
}
