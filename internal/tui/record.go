// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"math"
	"strings"
)

const (
	spectrumColumns = 32
	spectrumRows    = 8

	// spectrumScale divides a bin magnitude into a bar height.
	spectrumScale = 1.5
)

// barHeights groups bins into columns and converts each group's mean
// magnitude into a bar height of at most rows cells. Height is
// magnitude/spectrumScale relative to the largest possible bar.
func barHeights(bins []uint8, columns, rows int) []int {
	if columns <= 0 || rows <= 0 {
		return nil
	}

	heights := make([]int, columns)
	if len(bins) == 0 {
		return heights
	}

	maxBar := math.MaxUint8 / spectrumScale
	step := float64(len(bins)) / float64(columns)
	for c := range columns {
		lo := int(float64(c) * step)
		if lo >= len(bins) {
			break
		}
		hi := int(float64(c+1) * step)
		if hi <= lo {
			hi = lo + 1
		}
		if hi > len(bins) {
			hi = len(bins)
		}

		sum := 0
		for _, v := range bins[lo:hi] {
			sum += int(v)
		}
		bar := float64(sum) / float64(hi-lo) / spectrumScale
		heights[c] = int(math.Round(bar / maxBar * float64(rows)))
	}
	return heights
}

// renderSpectrum draws the bars bottom-aligned, one line per row.
func renderSpectrum(bins []uint8, columns, rows int) string {
	heights := barHeights(bins, columns, rows)
	lines := make([]string, 0, rows)
	for r := rows; r >= 1; r-- {
		var line strings.Builder
		for _, h := range heights {
			if h >= r {
				line.WriteString("█")
			} else {
				line.WriteString(" ")
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func (m mainModel) viewRecord() string {
	s := m.strings().Record
	var b strings.Builder

	b.WriteString(recordingStyle.Render("● " + formatElapsed(m.elapsed)))
	b.WriteString("\n\n")
	b.WriteString(barStyle.Render(renderSpectrum(m.spectrum, spectrumColumns, spectrumRows)))
	b.WriteString("\n\n")
	if m.submitting {
		b.WriteString(m.spinner.View())
	} else {
		b.WriteString(s.TapToFinish)
	}

	return renderPage(s.Title, b.String(), s.Hints)
}
