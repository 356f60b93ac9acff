package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file. Zero-valued tuning fields are
// filled from the defaults at construction time, so a case file only needs
// the values it changes.
type InputParametersGFMD struct {
	Title                  string  `yaml:"Title"`
	Geometry               string  `yaml:"Geometry"`          // "cylinder" or "wave"
	BoundaryCondition      string  `yaml:"BoundaryCondition"` // "free" or "fixed"
	PunchYoungModulus      float64 `yaml:"PunchYoungModulus"`
	PunchPoissonRatio      float64 `yaml:"PunchPoissonRatio"`
	SubstrateYoungModulus  float64 `yaml:"SubstrateYoungModulus"`
	SubstratePoissonRatio  float64 `yaml:"SubstratePoissonRatio"`
	XLength                float64 `yaml:"XLength"`
	PunchPressure          float64 `yaml:"PunchPressure"`
	PunchRadius            float64 `yaml:"PunchRadius"` // cylindrical case only; derived for the wave case
	PunchAmplitude         float64 `yaml:"PunchAmplitude"`
	XPoints                int     `yaml:"XPoints"` // should be a power of 2 (128, 256, 512 ...)
	TimeIncrementPrefactor float64 `yaml:"TimeIncrementPrefactor"`
	StepsPrefactor         int     `yaml:"StepsPrefactor"`
	DampingPrefactor       float64 `yaml:"DampingPrefactor"`
	MaxResidual            float64 `yaml:"MaxResidual"` // 0 keeps the fixed-step scheme
}

// NewDefaultParameters is the reference case: silica glass punch on a PDMS
// Sylgard 184 substrate.
func NewDefaultParameters() *InputParametersGFMD {
	return &InputParametersGFMD{
		Title:                  "Rigid punch on elastic substrate",
		Geometry:               "cylinder",
		BoundaryCondition:      "free",
		PunchYoungModulus:      73.1e+9, // silica glass
		PunchPoissonRatio:      0.17,
		SubstrateYoungModulus:  1.6e+6, // PDMS Sylgard 184 static limit
		SubstratePoissonRatio:  0.5,
		XLength:                0.1,
		PunchPressure:          1.0e+5,
		PunchRadius:            0.020,
		PunchAmplitude:         0.010,
		XPoints:                128,
		TimeIncrementPrefactor: 0.001,
		StepsPrefactor:         4,
		DampingPrefactor:       1,
	}
}

func (ip *InputParametersGFMD) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersGFMD) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Geometry\n", ip.Geometry)
	fmt.Printf("[%s]\t\t= BoundaryCondition\n", ip.BoundaryCondition)
	fmt.Printf("%8.4E\t\t= PunchYoungModulus [Pa]\n", ip.PunchYoungModulus)
	fmt.Printf("%8.4E\t\t= PunchPoissonRatio\n", ip.PunchPoissonRatio)
	fmt.Printf("%8.4E\t\t= SubstrateYoungModulus [Pa]\n", ip.SubstrateYoungModulus)
	fmt.Printf("%8.4E\t\t= SubstratePoissonRatio\n", ip.SubstratePoissonRatio)
	fmt.Printf("%8.4E\t\t= XLength [m]\n", ip.XLength)
	fmt.Printf("%8.4E\t\t= PunchPressure [Pa]\n", ip.PunchPressure)
	fmt.Printf("%8.4E\t\t= PunchRadius [m]\n", ip.PunchRadius)
	fmt.Printf("%8.4E\t\t= PunchAmplitude [m]\n", ip.PunchAmplitude)
	fmt.Printf("[%d]\t\t\t= XPoints\n", ip.XPoints)
}
