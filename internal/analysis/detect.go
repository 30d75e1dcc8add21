// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package analysis

import "sort"

// Minimum separation, in months, between two peaks (or two valleys).
const (
	originalDistance = 2
	hybridDistance   = 3
	strictCount      = 2
)

// InflectionResult lists the peak and valley months (1-based, ascending).
type InflectionResult struct {
	Peaks   []int
	Valleys []int
}

// Detect classifies positions of series as seasonal peaks and valleys using
// method. Positions are reported 1-based, so a 12-point series yields months.
// An empty series yields empty results for every method.
func Detect(series []float64, method Method) InflectionResult {
	res := InflectionResult{Peaks: []int{}, Valleys: []int{}}
	if len(series) == 0 {
		return res
	}

	var peaks, valleys []int
	switch NormalizeMethod(string(method)) {
	case MethodStrict:
		peaks, valleys = rankExtremes(series, strictCount)
	case MethodOriginal:
		peaks, valleys = meanFilteredExtrema(series, originalDistance)
	case MethodHybrid:
		peaks, valleys = meanFilteredExtrema(series, hybridDistance)
	}

	res.Peaks = toMonths(peaks)
	res.Valleys = toMonths(valleys)
	return res
}

// rankExtremes returns the n highest and n lowest positions by a stable
// ascending sort, so ties keep index order.
func rankExtremes(series []float64, n int) (peaks, valleys []int) {
	order := make([]int, len(series))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return series[order[a]] < series[order[b]] })

	if n > len(order) {
		n = len(order)
	}
	valleys = append([]int(nil), order[:n]...)
	peaks = append([]int(nil), order[len(order)-n:]...)
	sort.Ints(valleys)
	sort.Ints(peaks)
	return peaks, valleys
}

// meanFilteredExtrema finds local maxima at or above the series mean and
// local minima at or below it, each pruned to the given minimum separation.
func meanFilteredExtrema(series []float64, distance int) (peaks, valleys []int) {
	var sum float64
	for _, v := range series {
		sum += v
	}
	mean := sum / float64(len(series))

	negated := make([]float64, len(series))
	for i, v := range series {
		negated[i] = -v
	}

	peaks = findPeaks(series, mean, distance)
	valleys = findPeaks(negated, -mean, distance)
	return peaks, valleys
}

// findPeaks returns the positions of local maxima of x with x[i] >= height,
// no two closer than distance.
func findPeaks(x []float64, height float64, distance int) []int {
	candidates := localMaxima(x, distance)

	kept := candidates[:0]
	for _, i := range candidates {
		if x[i] >= height {
			kept = append(kept, i)
		}
	}
	return selectByDistance(x, kept, distance)
}

// localMaxima returns interior points higher than the left neighbour and the
// first differing right neighbour (plateaus resolve to their middle, rounding
// down), plus boundary points higher than their neighbour and not lower than
// any point inside the separation window.
func localMaxima(x []float64, distance int) []int {
	n := len(x)
	if n < 2 {
		return []int{}
	}

	maxima := []int{}
	if boundaryPeak(x, 0, distance) {
		maxima = append(maxima, 0)
	}

	for i := 1; i < n-1; i++ {
		if !(x[i-1] < x[i]) {
			continue
		}
		ahead := i + 1
		for ahead < n-1 && x[ahead] == x[i] {
			ahead++
		}
		if x[ahead] < x[i] {
			maxima = append(maxima, (i+ahead-1)/2)
			i = ahead - 1
		}
	}

	if boundaryPeak(x, n-1, distance) {
		maxima = append(maxima, n-1)
	}
	return maxima
}

func boundaryPeak(x []float64, edge, distance int) bool {
	n := len(x)
	step := 1
	if edge == n-1 {
		step = -1
	}
	if !(x[edge] > x[edge+step]) {
		return false
	}
	for k := 2; k < distance; k++ {
		j := edge + step*k
		if j < 0 || j >= n {
			break
		}
		if x[j] > x[edge] {
			return false
		}
	}
	return true
}

// selectByDistance keeps the tallest peaks first and drops any peak closer
// than distance to one already kept. Equal heights favour the later position.
func selectByDistance(x []float64, peaks []int, distance int) []int {
	if len(peaks) < 2 || distance < 2 {
		return peaks
	}

	priority := make([]int, len(peaks))
	for i := range priority {
		priority[i] = i
	}
	sort.SliceStable(priority, func(a, b int) bool { return x[peaks[priority[a]]] < x[peaks[priority[b]]] })

	keep := make([]bool, len(peaks))
	for i := range keep {
		keep[i] = true
	}

	for p := len(priority) - 1; p >= 0; p-- {
		j := priority[p]
		if !keep[j] {
			continue
		}
		for k := j - 1; k >= 0 && peaks[j]-peaks[k] < distance; k-- {
			keep[k] = false
		}
		for k := j + 1; k < len(peaks) && peaks[k]-peaks[j] < distance; k++ {
			keep[k] = false
		}
	}

	out := make([]int, 0, len(peaks))
	for i, p := range peaks {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// toMonths converts sorted 0-based positions to unique 1-based months.
func toMonths(positions []int) []int {
	sort.Ints(positions)
	months := make([]int, 0, len(positions))
	for i, p := range positions {
		if i > 0 && positions[i-1] == p {
			continue
		}
		months = append(months, p+1)
	}
	return months
}
