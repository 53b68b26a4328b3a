package transform

import (
	"math"

	"github.com/katalvlaran/tempo/seq"
)

// MeanCenterSequence subtracts each channel's mean from every sample in
// that channel.
func MeanCenterSequence(s seq.Sequence) seq.Sequence {
	out := make([]float64, len(s.Values))
	for c := 0; c < s.D; c++ {
		mean := channelMean(s, c)
		for t := 0; t < s.L; t++ {
			out[t*s.D+c] = s.At(t, c) - mean
		}
	}
	return seq.Sequence{Values: out, D: s.D, L: s.L}
}

// ZNormalizeSequence subtracts each channel's mean and divides by its
// standard deviation. A channel with zero variance is left mean-centered
// only, since scaling by zero is undefined.
func ZNormalizeSequence(s seq.Sequence) seq.Sequence {
	out := make([]float64, len(s.Values))
	for c := 0; c < s.D; c++ {
		mean, std := channelMeanStd(s, c)
		for t := 0; t < s.L; t++ {
			v := s.At(t, c) - mean
			if std > 0 {
				v /= std
			}
			out[t*s.D+c] = v
		}
	}
	return seq.Sequence{Values: out, D: s.D, L: s.L}
}

// MinMaxSequence rescales each channel independently into [0, 1]. A
// channel with zero range is left at 0 for every sample.
func MinMaxSequence(s seq.Sequence) seq.Sequence {
	out := make([]float64, len(s.Values))
	for c := 0; c < s.D; c++ {
		lo, hi := channelMinMax(s, c)
		span := hi - lo
		for t := 0; t < s.L; t++ {
			if span == 0 {
				out[t*s.D+c] = 0
				continue
			}
			out[t*s.D+c] = (s.At(t, c) - lo) / span
		}
	}
	return seq.Sequence{Values: out, D: s.D, L: s.L}
}

// UnitLengthSequence rescales each channel to unit L2 norm. A channel
// that is all zero is left unchanged.
func UnitLengthSequence(s seq.Sequence) seq.Sequence {
	out := make([]float64, len(s.Values))
	for c := 0; c < s.D; c++ {
		var sumSq float64
		for t := 0; t < s.L; t++ {
			v := s.At(t, c)
			sumSq += v * v
		}
		norm := math.Sqrt(sumSq)
		for t := 0; t < s.L; t++ {
			v := s.At(t, c)
			if norm > 0 {
				v /= norm
			}
			out[t*s.D+c] = v
		}
	}
	return seq.Sequence{Values: out, D: s.D, L: s.L}
}

// DerivativeSequence returns the first-order forward difference of s:
// output length L-1, out[t,c] = s[t+1,c] - s[t,c]. Returns
// ErrDegenerateSequence if s.L < 2.
func DerivativeSequence(s seq.Sequence) (seq.Sequence, error) {
	if s.L < 2 {
		return seq.Sequence{}, transformErrorf("DerivativeSequence", ErrDegenerateSequence)
	}
	out := make([]float64, (s.L-1)*s.D)
	for t := 0; t < s.L-1; t++ {
		for c := 0; c < s.D; c++ {
			out[t*s.D+c] = s.At(t+1, c) - s.At(t, c)
		}
	}
	return seq.Sequence{Values: out, D: s.D, L: s.L - 1}, nil
}

func channelMean(s seq.Sequence, c int) float64 {
	var sum float64
	for t := 0; t < s.L; t++ {
		sum += s.At(t, c)
	}
	return sum / float64(s.L)
}

func channelMeanStd(s seq.Sequence, c int) (mean, std float64) {
	mean = channelMean(s, c)
	var sumSq float64
	for t := 0; t < s.L; t++ {
		diff := s.At(t, c) - mean
		sumSq += diff * diff
	}
	return mean, math.Sqrt(sumSq / float64(s.L))
}

func channelMinMax(s seq.Sequence, c int) (lo, hi float64) {
	lo, hi = s.At(0, c), s.At(0, c)
	for t := 1; t < s.L; t++ {
		v := s.At(t, c)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
