package Contact1D

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/badmax333/LaserProcessing/GFMD1D"
)

// reportTo writes the report body with the given line terminator, so the
// same content serves both the console and the HTML report file.
func (c *Contact) reportTo(w io.Writer, res Results, eol string) {
	fmt.Fprintf(w, "INPUT for the GFMD computer simulation:%s", eol)
	fmt.Fprintf(w, "%s%s", c.BC, eol)
	if c.Geometry == GFMD1D.CylindricalPunch {
		fmt.Fprintf(w, "cylindrical punch of radius [m] = %E%s", c.Punch.Radius, eol)
		fmt.Fprintf(w, "punch height [m] = %E%s", c.Punch.Amplitude, eol)
	} else {
		fmt.Fprintf(w, "wave punch asperity radius [m] = %E%s", c.Punch.Radius, eol)
		fmt.Fprintf(w, "wave punch amplitude [m] = %E%s", c.Punch.Amplitude, eol)
	}
	fmt.Fprintf(w, "Young modulus of the punch [Pa] = %E%s", c.Materials.PunchYoungModulus, eol)
	fmt.Fprintf(w, "Poisson's ratio of the punch = %E%s", c.Materials.PunchPoissonRatio, eol)
	fmt.Fprintf(w, "Young modulus of the substrate [Pa] = %E%s", c.Materials.SubstrateYoungModulus, eol)
	fmt.Fprintf(w, "Poisson's ratio of the substrate = %E%s", c.Materials.SubstratePoissonRatio, eol)
	fmt.Fprintf(w, "punch force per unit area [Pa] = %E%s", c.PunchPressure, eol)
	fmt.Fprintf(w, "period of the system in X direction [m] = %E%s", c.XLength, eol)
	fmt.Fprintf(w, "number of the discretization points in X direction = %d%s", c.XPoints, eol)
	fmt.Fprintf(w, "%s", eol)
	fmt.Fprintf(w, "OUTPUT of the computer simulation:%s", eol)
	fmt.Fprintf(w, "converted to the problem of a rigid punch on an elastic substrate.%s", eol)
	fmt.Fprintf(w, "effective elastic modulus of the substrate [Pa] = %E%s", c.EStar, eol)
	fmt.Fprintf(w, "contact width [m] = %E%s", res.ContactWidth, eol)
	fmt.Fprintf(w, "contact width from Hertzian solution [m] = %E%s", res.HertzianContactWidth, eol)
	fmt.Fprintf(w, "relative contact area = %E%s", res.RelativeContactArea, eol)
	fmt.Fprintf(w, "indentation depth [m] = %E%s", res.IndentationDepth, eol)
	fmt.Fprintf(w, "average contact gap [m] = %E%s", res.AverageContactGap, eol)
	fmt.Fprintf(w, "%s", eol)
	fmt.Fprintf(w, "INTERNALS of the computer simulation:%s", eol)
	fmt.Fprintf(w, "mathematical time increment = %E%s", c.TimeIncrement, eol)
	fmt.Fprintf(w, "mathematical time steps = %d%s", c.NSteps, eol)
}

func (c *Contact) PrintReport(res Results) {
	fmt.Printf("\n")
	c.reportTo(os.Stdout, res, "\n")
	fmt.Printf("\n")
}

// WriteResults writes the HTML report and the two tabular per-point files
// into dir, creating it if needed. Any open or write failure is returned to
// the caller; the run must not claim results it did not write.
func (c *Contact) WriteResults(res Results, dir string) (err error) {
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("unable to create output directory %s: %w", dir, err)
	}
	if err = c.writeReport(res, filepath.Join(dir, "textual_report.htm")); err != nil {
		return
	}
	return c.writeSurfaceState(
		filepath.Join(dir, "x_displacement_output.txt"),
		filepath.Join(dir, "x_force_output.txt"))
}

func (c *Contact) writeReport(res Results, filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("unable to open report file %s: %w", filename, err)
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "<P><B><U>Report</U></B> of the GFMD computer simulation:<BR>\n")
	c.reportTo(w, res, "<BR>\n")
	fmt.Fprintf(w, "</P>\n")
	return w.Flush()
}

// writeSurfaceState emits one row per grid sample: position, punch height
// and displacement in the first file; position and force in the second.
func (c *Contact) writeSurfaceState(displacementFile, forceFile string) (err error) {
	df, err := os.Create(displacementFile)
	if err != nil {
		return fmt.Errorf("unable to open output file %s: %w", displacementFile, err)
	}
	defer df.Close()
	ff, err := os.Create(forceFile)
	if err != nil {
		return fmt.Errorf("unable to open output file %s: %w", forceFile, err)
	}
	defer ff.Close()

	var (
		dw      = bufio.NewWriter(df)
		fw      = bufio.NewWriter(ff)
		profile = c.Punch.Profile.DataP()
		u       = c.U.DataP()
		f       = c.F.DataP()
	)
	for ix := 0; ix < c.XPoints; ix++ {
		X := float64(ix) * c.XLength / float64(c.XPoints)
		fmt.Fprintf(dw, "%E\t%E\t%E\n", X, profile[ix], u[ix])
		fmt.Fprintf(fw, "%E\t%E\n", X, f[ix])
	}
	if err = dw.Flush(); err != nil {
		return
	}
	return fw.Flush()
}
