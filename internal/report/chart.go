// Package report renders approve/disapprove series from normalized poll
// rows into a simple PDF line chart and provides the rolling-average math
// the chart uses.
package report

import (
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/pollwatch/pollscrape/internal/normalize"
)

// RollingWindow is the trailing window used for the averaged panel.
const RollingWindow = 3

const (
	topSeriesLen     = 50
	rollingSeriesLen = 10
)

// point is one poll with numeric approve/disapprove values.
type point struct {
	label      string
	approve    float64
	disapprove float64
}

// WriteChart renders two stacked panels to outPath: the most recent polls
// as raw approve/disapprove lines, and a rolling average of the most
// recent ten. Rows whose approve or disapprove fields are not numeric are
// dropped here, on the consumer side; the extraction core never filters
// them.
func WriteChart(rows []normalize.Row, outPath string) error {
	pts := numericPoints(rows)
	if len(pts) == 0 {
		return fmt.Errorf("no numeric poll rows to chart")
	}
	recent := head(pts, topSeriesLen)
	last := head(pts, rollingSeriesLen)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Poll approval", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Approve vs Disapprove", "", 1, "C", false, 0, "")

	drawPanel(pdf, panel{x: 20, y: 25, w: 255, h: 75},
		fmt.Sprintf("Most recent %d polls", len(recent)),
		series(recent, func(p point) float64 { return p.approve }),
		series(recent, func(p point) float64 { return p.disapprove }))

	drawPanel(pdf, panel{x: 20, y: 115, w: 255, h: 75},
		fmt.Sprintf("Rolling average (window=%d), most recent %d polls", RollingWindow, len(last)),
		Rolling(series(last, func(p point) float64 { return p.approve }), RollingWindow),
		Rolling(series(last, func(p point) float64 { return p.disapprove }), RollingWindow))

	return pdf.OutputFileAndClose(outPath)
}

func numericPoints(rows []normalize.Row) []point {
	pts := make([]point, 0, len(rows))
	for _, r := range rows {
		a, errA := strconv.ParseFloat(r.Approve, 64)
		d, errD := strconv.ParseFloat(r.Disapprove, 64)
		if errA != nil || errD != nil {
			continue
		}
		pts = append(pts, point{label: r.Pollster + " " + r.Date, approve: a, disapprove: d})
	}
	return pts
}

func head(pts []point, n int) []point {
	if len(pts) > n {
		return pts[:n]
	}
	return pts
}

func series(pts []point, f func(point) float64) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = f(p)
	}
	return out
}

type panel struct {
	x, y, w, h float64
}

// drawPanel plots the approve series in blue and the disapprove series in
// red inside the panel area, with a left and bottom axis and y-axis ticks.
func drawPanel(pdf *gofpdf.Fpdf, area panel, title string, approve, disapprove []float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(area.x, area.y-2, title)

	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.3)
	pdf.Line(area.x, area.y, area.x, area.y+area.h)
	pdf.Line(area.x, area.y+area.h, area.x+area.w, area.y+area.h)

	yMax := 0.0
	for _, v := range append(append([]float64{}, approve...), disapprove...) {
		if v > yMax {
			yMax = v
		}
	}
	if yMax == 0 {
		yMax = 1
	}

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(80, 80, 80)
	for _, frac := range []float64{0, 0.5, 1} {
		v := yMax * frac
		y := area.y + area.h - area.h*frac
		pdf.SetDrawColor(220, 220, 220)
		if frac > 0 {
			pdf.Line(area.x, y, area.x+area.w, y)
		}
		pdf.Text(area.x-12, y+1, strconv.FormatFloat(v, 'f', 1, 64))
	}
	pdf.SetTextColor(0, 0, 0)

	plotSeries(pdf, area, approve, yMax, 31, 119, 180)
	plotSeries(pdf, area, disapprove, yMax, 214, 39, 40)

	// Legend in the panel's top-right corner.
	pdf.SetFont("Helvetica", "", 8)
	lx := area.x + area.w - 40
	pdf.SetDrawColor(31, 119, 180)
	pdf.SetLineWidth(0.6)
	pdf.Line(lx, area.y+3, lx+6, area.y+3)
	pdf.Text(lx+8, area.y+4, "Approve")
	pdf.SetDrawColor(214, 39, 40)
	pdf.Line(lx, area.y+8, lx+6, area.y+8)
	pdf.Text(lx+8, area.y+9, "Disapprove")
}

func plotSeries(pdf *gofpdf.Fpdf, area panel, values []float64, yMax float64, r, g, b int) {
	if len(values) == 0 {
		return
	}
	pdf.SetDrawColor(r, g, b)
	pdf.SetFillColor(r, g, b)
	pdf.SetLineWidth(0.5)

	step := 0.0
	if len(values) > 1 {
		step = area.w / float64(len(values)-1)
	}
	toXY := func(i int) (float64, float64) {
		x := area.x + step*float64(i)
		if len(values) == 1 {
			x = area.x + area.w/2
		}
		y := area.y + area.h - (values[i]/yMax)*area.h
		return x, y
	}
	px, py := toXY(0)
	pdf.Circle(px, py, 0.8, "F")
	for i := 1; i < len(values); i++ {
		x, y := toXY(i)
		pdf.Line(px, py, x, y)
		pdf.Circle(x, y, 0.8, "F")
		px, py = x, y
	}
}
