// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capture

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// FFTSize is the analysis window length in samples.
	FFTSize = 256
	// BinCount is the number of frequency bins in a snapshot.
	BinCount = FFTSize / 2

	minDecibels     = -100.0
	maxDecibels     = -30.0
	smoothingFactor = 0.8
)

// analyser turns the most recent FFTSize samples into BinCount byte
// magnitudes: Blackman window, FFT, exponential smoothing over time and a
// linear map of [minDecibels, maxDecibels] onto 0..255.
type analyser struct {
	fft      *fourier.FFT
	window   []float64
	input    []float64
	smoothed []float64
}

func newAnalyser() *analyser {
	window := make([]float64, FFTSize)
	const a0, a1, a2 = 0.42, 0.5, 0.08
	for i := range window {
		x := 2 * math.Pi * float64(i) / float64(FFTSize)
		window[i] = a0 - a1*math.Cos(x) + a2*math.Cos(2*x)
	}

	return &analyser{
		fft:      fourier.NewFFT(FFTSize),
		window:   window,
		input:    make([]float64, FFTSize),
		smoothed: make([]float64, BinCount),
	}
}

// snapshot computes the bins for samples. Fewer than FFTSize samples are
// zero-padded at the front.
func (a *analyser) snapshot(samples []int16) []uint8 {
	offset := FFTSize - len(samples)
	if offset < 0 {
		samples = samples[-offset:]
		offset = 0
	}
	for i := range a.input {
		a.input[i] = 0
	}
	for i, s := range samples {
		a.input[offset+i] = float64(s) / 32768 * a.window[offset+i]
	}

	coeffs := a.fft.Coefficients(nil, a.input)

	bins := make([]uint8, BinCount)
	for k := 0; k < BinCount; k++ {
		magnitude := math.Hypot(real(coeffs[k]), imag(coeffs[k])) / FFTSize
		a.smoothed[k] = smoothingFactor*a.smoothed[k] + (1-smoothingFactor)*magnitude
		bins[k] = toByte(a.smoothed[k])
	}
	return bins
}

func toByte(magnitude float64) uint8 {
	if magnitude <= 0 {
		return 0
	}
	db := 20 * math.Log10(magnitude)
	scaled := 255 * (db - minDecibels) / (maxDecibels - minDecibels)
	switch {
	case scaled <= 0:
		return 0
	case scaled >= 255:
		return 255
	default:
		return uint8(scaled)
	}
}
