package Contact1D

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

func (c *Contact) Plot(showGraph bool, graphDelay []time.Duration) {
	var (
		pMin = float32(-0.1 * c.Punch.Amplitude)
		pMax = float32(1.1 * c.Punch.Amplitude)
	)
	if !showGraph {
		return
	}
	c.PlotOnce.Do(func() {
		c.chart = chart2d.NewChart2D(1280, 1024, 0, float32(c.XLength), pMin, pMax)
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()

		x := make([]float64, c.XPoints)
		for ix := range x {
			x[ix] = c.XLength * float64(ix) / float64(c.XPoints)
		}
		if err := c.chart.AddSeries("punch", x, c.Punch.Profile.DataP(),
			chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(1)); err != nil {
			panic("unable to add graph series")
		}
	})

	x := make([]float64, c.XPoints)
	for ix := range x {
		x[ix] = c.XLength * float64(ix) / float64(c.XPoints)
	}
	if err := c.chart.AddSeries("U", x, c.U.DataP(),
		chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}
