package focal

import "gonum.org/v1/gonum/stat"

// evaluateBias decides whether the score mass around the winning slice
// leans toward one side of the axis or is balanced.
//
// A winner on the first slice reports 1 and a winner on the last slice
// reports -1, with the first-slice rule taking precedence when there is
// only one slice. Otherwise the result is the sign of
// mean(scores before winner) − mean(scores after winner), and 0 on exact
// equality. The value is purely a sign used to choose a rule-of-thirds
// alignment line, never a magnitude.
func evaluateBias(scores []float64, best int) Bias {
	switch best {
	case 0:
		return 1
	case len(scores) - 1:
		return -1
	}

	before := stat.Mean(scores[:best], nil)
	after := stat.Mean(scores[best+1:], nil)
	switch {
	case before > after:
		return 1
	case before < after:
		return -1
	}
	return 0
}
