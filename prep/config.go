// Package prep loads and writes the inputs and outputs surrounding the
// depletion engine: scenario config files, dated pumping schedules, unit
// response tables, and result series. The engine itself stays file-free.
package prep

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	depletion "github.com/Longitude103/stream-depletion"
)

// Config is a scenario file: the aquifer, the method, and where the
// supporting series live. All lengths in ft, times in days.
type Config struct {
	Aquifer struct {
		Transmissivity float64   `yaml:"transmissivity"` // [ft²/day]
		Storativity    float64   `yaml:"storativity"`
		Distance       float64   `yaml:"distance"`   // well to stream [ft]
		Boundaries     []float64 `yaml:"boundaries"` // impermeable boundary distances [ft]
	} `yaml:"aquifer"`
	Method        string  `yaml:"method"`   // glover | alluvial | alluvial-series | sdf | urf
	SDFDays       float64 `yaml:"sdf_days"` // optional direct SDF [days]
	ScheduleCSV   string  `yaml:"schedule_csv"`
	URFTableCSV   string  `yaml:"urf_table_csv"`
	HorizonMonths int     `yaml:"horizon_months"`
	PeriodDays    float64 `yaml:"period_days"`
}

// LoadConfig reads a scenario from a YAML file.
func LoadConfig(fp string) (*Config, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if c.PeriodDays == 0. {
		c.PeriodDays = 30.42 // average month
	}
	return &c, nil
}

// Build resolves the config into a validated parameter set and method.
func (c *Config) Build() (depletion.Method, *depletion.AquiferParameters, error) {
	a := c.Aquifer
	p, err := depletion.NewAquiferParameters(a.Transmissivity, a.Storativity, a.Distance, a.Boundaries...)
	if err != nil {
		return depletion.Method{}, nil, err
	}

	var m depletion.Method
	switch strings.ToLower(c.Method) {
	case "", "glover":
		m = depletion.GloverInfinite()
	case "alluvial":
		m = depletion.GloverAlluvialImage()
	case "alluvial-series":
		m = depletion.AlluvialSeries()
	case "sdf":
		if c.SDFDays != 0. {
			m = depletion.JenkinsSDFDays(c.SDFDays) // evaluation rejects a bad value
		} else {
			m = depletion.JenkinsSDF()
		}
	case "urf":
		tbl, err := LoadURFTable(c.URFTableCSV)
		if err != nil {
			return depletion.Method{}, nil, err
		}
		m = depletion.UnitResponseFunction(tbl)
	default:
		return depletion.Method{}, nil, fmt.Errorf("unknown method %q", c.Method)
	}
	return m, p, nil
}
