package stats

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

const epsilon = 1e-6

func fuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestStatistic(t *testing.T) {
	is := is.New(t)
	type tc struct {
		values []int
		mean   float64
		stdev  float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]int{1}, 1, 0},
		{[]int{}, 0, 0},
		{[]int{1, 1}, 1, 0},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, v := range c.values {
			s.Push(float64(v))
		}
		is.Equal(s.Count(), len(c.values))
		is.True(fuzzyEqual(s.Mean(), c.mean))
		is.True(fuzzyEqual(s.Stdev(), c.stdev))
	}
}

func TestStatisticExtremes(t *testing.T) {
	is := is.New(t)
	s := &Statistic{}
	for _, v := range []float64{3, -1, 7, 0} {
		s.Push(v)
	}
	is.Equal(s.Min(), -1.0)
	is.Equal(s.Max(), 7.0)
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(math.Abs(ZVal(95)-1.959964) < 1e-4)
	is.True(math.Abs(ZVal(99)-2.575829) < 1e-4)
}

func TestWinRateInterval(t *testing.T) {
	is := is.New(t)
	lo, hi := WinRateInterval(60, 100, 95)
	is.True(lo > 0 && hi < 1)
	is.True(lo < 0.6 && 0.6 < hi)

	lo, hi = WinRateInterval(0, 0, 95)
	is.Equal(lo, 0.0)
	is.Equal(hi, 0.0)
}
