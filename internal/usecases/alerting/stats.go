package alerting

import "math"

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev é o desvio padrão amostral (n-1). Com menos de dois valores não é definido e retorna 0.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		sq += (v - m) * (v - m)
	}
	return math.Sqrt(sq / float64(len(values)-1))
}

// variation é a variação percentual de current sobre base; 0 quando base <= 0
func variation(current, base float64) float64 {
	if base <= 0 {
		return 0
	}
	return (current - base) / base * 100
}

// zScore retorna 0 quando o desvio é zero ou indefinido
func zScore(current, m, std float64) float64 {
	if std <= 0 || math.IsNaN(std) {
		return 0
	}
	return (current - m) / std
}
