package internal

import (
	"fmt"
	"math"

	"roboforecast/internal/domain"
)

// Fit runs one extrapolation method against a series and returns its estimate
// for the target year. All methods are pure functions of their inputs; alpha
// is only consulted by exponential smoothing. Estimates are clamped at zero
// since market sizes and unit counts cannot go negative.
func Fit(method domain.Method, series domain.HistoricalSeries, targetYear int, alpha float64) (*domain.MethodEstimate, error) {
	var (
		value float64
		err   error
	)
	switch method {
	case domain.Method_Linear:
		value, err = fitLinear(series, targetYear)
	case domain.Method_Polynomial:
		value, err = fitPolynomial(series, targetYear)
	case domain.Method_ExponentialSmoothing:
		value, err = fitExponentialSmoothing(series, targetYear, alpha)
	case domain.Method_CAGR:
		value, err = fitCAGR(series, targetYear)
	default:
		return nil, fmt.Errorf("unknown projection method %s", method)
	}
	if err != nil {
		return nil, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, DegenerateInputError{Method: method, Reason: "non-finite projection"}
	}

	return &domain.MethodEstimate{
		Method: method,
		Value:  math.Max(0, value),
	}, nil
}

// fitLinear extrapolates an ordinary least-squares line of value against year.
func fitLinear(series domain.HistoricalSeries, targetYear int) (float64, error) {
	n := series.Len()
	if n < 2 {
		return 0, InsufficientDataError{Method: domain.Method_Linear, Required: 2, Got: n}
	}

	var meanX, meanY float64
	for _, p := range series.Points {
		meanX += float64(p.Year)
		meanY += p.Value
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var sxx, sxy float64
	for _, p := range series.Points {
		dx := float64(p.Year) - meanX
		sxx += dx * dx
		sxy += dx * (p.Value - meanY)
	}
	if sxx == 0 {
		return 0, DegenerateInputError{Method: domain.Method_Linear, Reason: "zero variance in years"}
	}

	slope := sxy / sxx
	return meanY + slope*(float64(targetYear)-meanX), nil
}

// fitPolynomial extrapolates a degree-2 least-squares fit. Years are centered
// on their mean before building the normal equations, which keeps the system
// well conditioned for calendar-year inputs. Degree-2 extrapolation can
// diverge sharply beyond the observed range on long horizons - callers should
// treat it as the least robust method on far extrapolation.
func fitPolynomial(series domain.HistoricalSeries, targetYear int) (float64, error) {
	n := series.Len()
	if n < 3 {
		return 0, InsufficientDataError{Method: domain.Method_Polynomial, Required: 3, Got: n}
	}

	var meanX float64
	for _, p := range series.Points {
		meanX += float64(p.Year)
	}
	meanX /= float64(n)

	// Normal equations for y = a + b*x + c*x^2 over centered x.
	var s1, s2, s3, s4, t0, t1, t2 float64
	for _, p := range series.Points {
		x := float64(p.Year) - meanX
		x2 := x * x
		s1 += x
		s2 += x2
		s3 += x2 * x
		s4 += x2 * x2
		t0 += p.Value
		t1 += x * p.Value
		t2 += x2 * p.Value
	}
	coeffs, ok := solveLinearSystem3([3][4]float64{
		{float64(n), s1, s2, t0},
		{s1, s2, s3, t1},
		{s2, s3, s4, t2},
	})
	if !ok {
		return 0, DegenerateInputError{Method: domain.Method_Polynomial, Reason: "singular normal equations"}
	}

	x := float64(targetYear) - meanX
	return coeffs[0] + coeffs[1]*x + coeffs[2]*x*x, nil
}

// fitExponentialSmoothing computes the smoothed level as of the last observed
// period, then compounds the last smoothed growth rate across the gap to the
// target year.
func fitExponentialSmoothing(series domain.HistoricalSeries, targetYear int, alpha float64) (float64, error) {
	n := series.Len()
	if n < 2 {
		return 0, InsufficientDataError{Method: domain.Method_ExponentialSmoothing, Required: 2, Got: n}
	}

	smoothed := series.Points[0].Value
	prev := smoothed
	for _, p := range series.Points[1:] {
		prev = smoothed
		smoothed = alpha*p.Value + (1-alpha)*smoothed
	}
	if prev == 0 {
		return 0, DegenerateInputError{Method: domain.Method_ExponentialSmoothing, Reason: "zero next-to-last smoothed level"}
	}

	growth := (smoothed - prev) / prev
	gap := targetYear - series.Last().Year
	return smoothed * math.Pow(1+growth, float64(gap)), nil
}

// fitCAGR projects forward at the compound annual growth rate between the
// first and last observed points.
func fitCAGR(series domain.HistoricalSeries, targetYear int) (float64, error) {
	n := series.Len()
	if n < 2 {
		return 0, InsufficientDataError{Method: domain.Method_CAGR, Required: 2, Got: n}
	}

	first := series.First()
	last := series.Last()
	yearsElapsed := series.YearsElapsed()
	if yearsElapsed == 0 {
		return 0, DegenerateInputError{Method: domain.Method_CAGR, Reason: "zero years elapsed"}
	}
	if first.Value <= 0 {
		return 0, DegenerateInputError{Method: domain.Method_CAGR, Reason: fmt.Sprintf("non-positive base value %f", first.Value)}
	}

	rate := math.Pow(last.Value/first.Value, 1/float64(yearsElapsed)) - 1
	gap := targetYear - last.Year
	return last.Value * math.Pow(1+rate, float64(gap)), nil
}

// solveLinearSystem3 solves a 3x3 augmented system via Gaussian elimination
// with partial pivoting. Returns false when the system is singular.
func solveLinearSystem3(m [3][4]float64) ([3]float64, bool) {
	for col := 0; col < 3; col++ {
		pivot := col
		for row := col + 1; row < 3; row++ {
			if math.Abs(m[row][col]) > math.Abs(m[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(m[pivot][col]) < 1e-12 {
			return [3]float64{}, false
		}
		m[col], m[pivot] = m[pivot], m[col]

		for row := col + 1; row < 3; row++ {
			factor := m[row][col] / m[col][col]
			for k := col; k < 4; k++ {
				m[row][k] -= factor * m[col][k]
			}
		}
	}

	var out [3]float64
	for col := 2; col >= 0; col-- {
		sum := m[col][3]
		for k := col + 1; k < 3; k++ {
			sum -= m[col][k] * out[k]
		}
		out[col] = sum / m[col][col]
	}
	return out, true
}
