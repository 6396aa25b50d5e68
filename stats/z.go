package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ZVal returns the two-tailed Z-value associated with a specific confidence interval.
// The interval is a number from 0 to 100 percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	area := (1 + (confidenceInterval / 100)) / 2
	zValue := dist.Quantile(area)
	return zValue
}

// WinRateInterval returns the Wilson score interval for a win rate of
// wins out of games, at the given confidence level in percent.
func WinRateInterval(wins, games int, confidenceInterval float64) (float64, float64) {
	if games == 0 {
		return 0, 0
	}
	z := ZVal(confidenceInterval)
	n := float64(games)
	p := float64(wins) / n
	denom := 1 + z*z/n
	center := (p + z*z/(2*n)) / denom
	spread := z * math.Sqrt(p*(1-p)/n+z*z/(4*n*n)) / denom
	return center - spread, center + spread
}
