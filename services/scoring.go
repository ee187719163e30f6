package services

// Point values awarded per prediction (tunable via config/env later)
const (
	PointsExactScore    = 3
	PointsCorrectWinner = 1
	PointsWrong         = 0
)

// Outcome of a score pair from team A's perspective
type outcome int

const (
	outcomeWinA outcome = iota
	outcomeWinB
	outcomeDraw
)

func classifyOutcome(scoreA, scoreB int) outcome {
	switch {
	case scoreA > scoreB:
		return outcomeWinA
	case scoreB > scoreA:
		return outcomeWinB
	default:
		return outcomeDraw
	}
}

// CalculatePoints maps a predicted score pair and the actual score pair to a
// point award: exact score → 3, correct winner (or both draws) → 1, else 0.
// Pure and total — finalization calls it once per prediction.
func CalculatePoints(predictedScoreA, predictedScoreB, actualScoreA, actualScoreB int) int {
	if predictedScoreA == actualScoreA && predictedScoreB == actualScoreB {
		return PointsExactScore
	}
	if classifyOutcome(predictedScoreA, predictedScoreB) == classifyOutcome(actualScoreA, actualScoreB) {
		return PointsCorrectWinner
	}
	return PointsWrong
}
