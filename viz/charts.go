// ABOUTME: SVG charts for the analytics view
// ABOUTME: Priority pie chart and per-category bar chart
package viz

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/harperreed/rolodex/analytics"
	"github.com/harperreed/rolodex/layout"
	"github.com/harperreed/rolodex/models"
)

const (
	pieSize   = 400
	pieRadius = 100
	barWidth  = 400
	barHeight = 300
)

const chartFont = "font-family:sans-serif;font-size:12px"

// RenderPriorityPie draws one slice per priority with a non-zero count.
func RenderPriorityPie(w io.Writer, counts []analytics.Count, theme layout.Theme) error {
	p := PaletteFor(theme)
	canvas := svg.New(w)
	canvas.Start(pieSize, pieSize, `class="chart pie"`)
	canvas.Rect(0, 0, pieSize, pieSize, fmt.Sprintf("fill:%s", Hex(p.Background)))

	cx, cy := pieSize/2, pieSize/2-20
	total := analytics.Total(counts)
	if total == 0 {
		canvas.Circle(cx, cy, pieRadius, fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", Hex(p.Grid)))
		canvas.Text(cx, cy+4, "No contacts", fmt.Sprintf("%s;fill:%s;text-anchor:middle", chartFont, Hex(p.Subtle)))
		canvas.End()
		return nil
	}

	angle := -math.Pi / 2
	for _, c := range counts {
		if c.Value == 0 {
			continue
		}
		fill := Hex(PriorityColor(models.Priority(c.Name)))
		if c.Value == total {
			canvas.Circle(cx, cy, pieRadius, attr("data-name", c.Name), fmt.Sprintf("fill:%s", fill))
			break
		}
		sweep := 2 * math.Pi * float64(c.Value) / float64(total)
		canvas.Path(slicePath(float64(cx), float64(cy), pieRadius, angle, angle+sweep),
			attr("data-name", c.Name), fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", fill, Hex(p.Background)))
		angle += sweep
	}

	// legend
	lx, ly := 40, pieSize-60
	for i, c := range counts {
		x := lx + i*120
		canvas.Rect(x, ly, 12, 12, fmt.Sprintf("fill:%s", Hex(PriorityColor(models.Priority(c.Name)))))
		canvas.Text(x+18, ly+11, fmt.Sprintf("%s (%d)", c.Name, c.Value), fmt.Sprintf("%s;fill:%s", chartFont, Hex(p.Text)))
	}

	canvas.End()
	return nil
}

func slicePath(cx, cy, r, from, to float64) string {
	x1, y1 := cx+r*math.Cos(from), cy+r*math.Sin(from)
	x2, y2 := cx+r*math.Cos(to), cy+r*math.Sin(to)
	large := 0
	if to-from > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M%.2f,%.2f L%.2f,%.2f A%.0f,%.0f 0 %d,1 %.2f,%.2f Z", cx, cy, x1, y1, r, r, large, x2, y2)
}

// RenderCategoryBars draws one bar per category in category order.
func RenderCategoryBars(w io.Writer, counts []analytics.Count, theme layout.Theme) error {
	p := PaletteFor(theme)
	canvas := svg.New(w)
	canvas.Start(barWidth, barHeight, `class="chart bars"`)
	canvas.Rect(0, 0, barWidth, barHeight, fmt.Sprintf("fill:%s", Hex(p.Background)))

	const (
		top    = 20
		left   = 40
		right  = 10
		bottom = 40
	)
	plotW := barWidth - left - right
	plotH := barHeight - top - bottom
	baseY := top + plotH

	maxVal := analytics.Max(counts)
	if maxVal == 0 {
		maxVal = 1
	}

	axis := fmt.Sprintf("stroke:%s;stroke-width:1", Hex(p.Subtle))
	canvas.Line(left, top, left, baseY, axis)
	canvas.Line(left, baseY, left+plotW, baseY, axis)

	for _, tick := range ticks(maxVal) {
		y := baseY - tick*plotH/maxVal
		canvas.Line(left, y, left+plotW, y, fmt.Sprintf("stroke:%s;stroke-width:1;stroke-dasharray:3,3", Hex(p.Grid)))
		canvas.Text(left-6, y+4, fmt.Sprintf("%d", tick), fmt.Sprintf("%s;fill:%s;text-anchor:end", chartFont, Hex(p.Subtle)))
	}

	if len(counts) == 0 {
		canvas.Text(left+plotW/2, top+plotH/2, "No categories", fmt.Sprintf("%s;fill:%s;text-anchor:middle", chartFont, Hex(p.Subtle)))
		canvas.End()
		return nil
	}

	slot := plotW / len(counts)
	bw := max(1, slot*2/3)
	for i, c := range counts {
		h := c.Value * plotH / maxVal
		x := left + i*slot + (slot-bw)/2
		canvas.Rect(x, baseY-h, bw, h, attr("data-name", c.Name), fmt.Sprintf("fill:%s", Hex(colorBar)))
		canvas.Text(x+bw/2, baseY+16, truncate(c.Name, 12), fmt.Sprintf("%s;fill:%s;text-anchor:middle", chartFont, Hex(p.Text)))
	}

	canvas.End()
	return nil
}

// ticks returns up to five whole-number gridline values from 0 to maxVal.
func ticks(maxVal int) []int {
	step := max(1, int(math.Ceil(float64(maxVal)/4)))
	var out []int
	for v := 0; v <= maxVal; v += step {
		out = append(out, v)
	}
	return out
}
