// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package stats estimates playing strength from game results.
package stats

import "math"

// Elo returns the likely elo difference of a player from its opponents
// along with its p < 0.05 lower and upper bounds, called muMin, mu, and
// muMax respectively.
func Elo(ws, ds, ls int) (muMin float64, mu float64, muMax float64) {
	N := float64(ws + ds + ls) // total number of games

	if N == 0 {
		return 0, 0, 0
	}

	w := float64(ws) / N // measured win probability
	d := float64(ds) / N // measured draw probability
	l := float64(ls) / N // measured loss probability

	// empirical mean of random variable
	mu = w + d/2

	// standard deviation of the random variable
	sigma := math.Sqrt(w*math.Pow(1-mu, 2)+d*math.Pow(0.5-mu, 2)+l*math.Pow(0-mu, 2)) / math.Sqrt(N)

	muMax = mu + phiInv(0.975)*sigma // upper bound
	muMin = mu + phiInv(0.025)*sigma // lower bound

	return clampElo(muMin), clampElo(mu), clampElo(muMax)
}

// Error returns the half width of the confidence interval of an Elo
// estimate.
func Error(muMin, mu, muMax float64) float64 {
	return math.Abs(math.Max(muMax-mu, mu-muMin))
}

// Score returns the fraction of points scored, counting draws as half a
// point. It is 0.5 when no games have been played.
func Score(ws, ds, ls int) float64 {
	n := ws + ds + ls
	if n == 0 {
		return 0.5
	}

	return (float64(ws) + float64(ds)/2) / float64(n)
}

// clampElo converts a score to an elo difference. Scores of 0 and 1 have
// no finite elo and are reported as 0.
func clampElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
