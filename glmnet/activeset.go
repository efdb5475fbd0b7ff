package glmnet

// activeSet tracks the parameter positions that remain eligible for
// coordinate descent updates within one grid point.  Positions run from 1
// to the number of covariates; the intercept is never a member.  A removed
// position is not re-admitted until the set is reset at the next grid
// point.
type activeSet struct {

	// active[k-1] is true if position k is in the set
	active []bool

	// marked[k-1] is true if position k is removed at the next prune
	marked []bool

	// The number of active positions
	n int
}

func newActiveSet(p int) *activeSet {

	as := &activeSet{
		active: make([]bool, p),
		marked: make([]bool, p),
	}
	as.reset()

	return as
}

// reset restores every position to the set.
func (as *activeSet) reset() {

	for i := range as.active {
		as.active[i] = true
		as.marked[i] = false
	}
	as.n = len(as.active)
}

// indices appends the active positions to buf in ascending order and
// returns the extended buffer.
func (as *activeSet) indices(buf []int) []int {

	buf = buf[:0]
	for i := range as.active {
		if as.active[i] {
			buf = append(buf, i+1)
		}
	}
	return buf
}

// mark flags a position for removal at the next prune.
func (as *activeSet) mark(k int) {
	as.marked[k-1] = true
}

// prune removes the marked positions from the set.
func (as *activeSet) prune() {

	for i := range as.marked {
		if as.marked[i] && as.active[i] {
			as.active[i] = false
			as.n--
		}
		as.marked[i] = false
	}
}

// size returns the number of active positions.
func (as *activeSet) size() int {
	return as.n
}
