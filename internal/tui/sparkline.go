package tui

import "strings"

// sparklineBlocks are block characters for 8-level vertical resolution
// (lowest to highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// sparklineFloor keeps an idle system visibly on the baseline instead of
// rendering a blank strip.
const sparklineFloor = 10.0

// renderSparkline renders CPU history as a block-character graph of the
// given width and height on a fixed 0-100 scale. The most recent sample
// sits at the right edge; columns without data stay on the baseline.
func renderSparkline(data []float64, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	// Only the most recent width points fit.
	if len(data) > width {
		data = data[len(data)-width:]
	}
	offset := width - len(data)

	totalLevels := height * 8
	rows := make([][]rune, height)
	for i := range rows {
		rows[i] = make([]rune, width)
		for j := range rows[i] {
			rows[i][j] = ' '
		}
	}

	for i, v := range data {
		if v < sparklineFloor {
			v = sparklineFloor
		}
		if v > 100 {
			v = 100
		}

		levels := int(v / 100 * float64(totalLevels))
		if levels < 1 {
			levels = 1
		}

		col := offset + i
		// Fill the column bottom-up: full blocks below, partial on top.
		for row := 0; row < height; row++ {
			cell := levels - row*8
			if cell <= 0 {
				break
			}
			if cell > 8 {
				cell = 8
			}
			rows[height-1-row][col] = sparklineBlocks[cell-1]
		}
	}

	// Empty columns keep a baseline on the bottom row.
	for j := 0; j < offset; j++ {
		rows[height-1][j] = '▁'
	}

	lines := make([]string, height)
	for i, row := range rows {
		lines[i] = string(row)
	}
	return sparkStyle.Render(strings.Join(lines, "\n"))
}
