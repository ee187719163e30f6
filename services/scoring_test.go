package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePointsExamples(t *testing.T) {
	tests := []struct {
		name                   string
		predA, predB           int
		actualA, actualB       int
		want                   int
	}{
		{"exact score", 2, 1, 2, 1, 3},
		{"exact draw", 1, 1, 1, 1, 3},
		{"correct winner, wrong score", 2, 0, 3, 1, 1},
		{"correct draw, wrong score", 0, 0, 2, 2, 1},
		{"predicted draw, actual winner", 1, 1, 2, 1, 0},
		{"predicted winner, actual draw", 2, 1, 1, 1, 0},
		{"wrong winner", 0, 2, 2, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculatePoints(tt.predA, tt.predB, tt.actualA, tt.actualB))
		})
	}
}

// Exact predictions always score 3, for every pair in the realistic domain.
func TestCalculatePointsExactMatchAlwaysThree(t *testing.T) {
	for a := 0; a <= 5; a++ {
		for b := 0; b <= 5; b++ {
			assert.Equal(t, PointsExactScore, CalculatePoints(a, b, a, b), "score %d-%d", a, b)
		}
	}
}

// Swapping both sides relabels the teams without changing the outcome class,
// so the award is invariant: score(a,b,c,d) == score(b,a,d,c).
func TestCalculatePointsRelabelingSymmetry(t *testing.T) {
	for a := 0; a <= 4; a++ {
		for b := 0; b <= 4; b++ {
			for c := 0; c <= 4; c++ {
				for d := 0; d <= 4; d++ {
					assert.Equal(t,
						CalculatePoints(a, b, c, d),
						CalculatePoints(b, a, d, c),
						"pred %d-%d actual %d-%d", a, b, c, d)
				}
			}
		}
	}
}

// Every award over the domain is exactly one of {0, 1, 3}, with 1 iff the
// outcome classes agree (and the score differs) and 0 iff they disagree.
func TestCalculatePointsClassification(t *testing.T) {
	for a := 0; a <= 4; a++ {
		for b := 0; b <= 4; b++ {
			for c := 0; c <= 4; c++ {
				for d := 0; d <= 4; d++ {
					got := CalculatePoints(a, b, c, d)
					sameScore := a == c && b == d
					sameOutcome := classifyOutcome(a, b) == classifyOutcome(c, d)
					switch {
					case sameScore:
						assert.Equal(t, PointsExactScore, got)
					case sameOutcome:
						assert.Equal(t, PointsCorrectWinner, got)
					default:
						assert.Equal(t, PointsWrong, got)
					}
				}
			}
		}
	}
}
