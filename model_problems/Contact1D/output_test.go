package Contact1D

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/badmax333/LaserProcessing/InputParameters"
)

func TestWriteResults(t *testing.T) {
	ip := InputParameters.NewDefaultParameters()
	ip.StepsPrefactor = 1
	c, err := NewContact(ip)
	assert.NoError(t, err)
	c.Run(false)
	res := c.Finalize()

	dir := t.TempDir()
	assert.NoError(t, c.WriteResults(res, dir))

	report, err := os.ReadFile(filepath.Join(dir, "textual_report.htm"))
	assert.NoError(t, err)
	assert.Contains(t, string(report), "contact width")
	assert.Contains(t, string(report), "effective elastic modulus")

	disp, err := os.ReadFile(filepath.Join(dir, "x_displacement_output.txt"))
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(disp), "\n"), "\n")
	assert.Equal(t, c.XPoints, len(lines))
	assert.Equal(t, 3, len(strings.Split(lines[0], "\t")))

	force, err := os.ReadFile(filepath.Join(dir, "x_force_output.txt"))
	assert.NoError(t, err)
	lines = strings.Split(strings.TrimRight(string(force), "\n"), "\n")
	assert.Equal(t, c.XPoints, len(lines))
	assert.Equal(t, 2, len(strings.Split(lines[0], "\t")))
}
