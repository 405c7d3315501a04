// This file is part of Mirage09.
//
// Mirage09 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mirage09 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mirage09.  If not, see <https://www.gnu.org/licenses/>.

package samples

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot renders the data as a PNG waveform. The sample number is on the x axis
// and the unsigned sample value on the y axis.
func Plot(w io.Writer, title string, data []uint8) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "sample"
	p.Y.Label.Text = "value"
	p.Y.Min = 0
	p.Y.Max = 0xff

	pts := make(plotter.XYs, len(data))
	for i, v := range data {
		pts[i].X = float64(i)
		pts[i].Y = float64(v)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("samples: plot: %w", err)
	}
	p.Add(line)

	wt, err := p.WriterTo(8*vg.Inch, 3*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("samples: plot: %w", err)
	}

	_, err = wt.WriteTo(w)
	if err != nil {
		return fmt.Errorf("samples: plot: %w", err)
	}

	return nil
}
