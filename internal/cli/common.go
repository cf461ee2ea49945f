package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rshade/ampacity/internal/batch"
	"github.com/rshade/ampacity/internal/config"
	"github.com/rshade/ampacity/internal/diag"
	"github.com/rshade/ampacity/internal/logging"
	"github.com/rshade/ampacity/internal/nec"
	"github.com/rshade/ampacity/internal/raceway"
	"github.com/rshade/ampacity/internal/report"
	"github.com/rshade/ampacity/internal/units"
	"github.com/rshade/ampacity/internal/vdrop"
)

// Exit codes returned by the ampacity binary.
const (
	// ExitUsage reports invalid flags, arguments or configuration.
	ExitUsage = 1
	// ExitDiagnostics reports a calculation that returned error diagnostics.
	ExitDiagnostics = 2
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	ExitCode int
	Reason   string
}

func (e *ExitError) Error() string {
	return e.Reason
}

// diagnosticsExit returns an ExitError when msgs holds errors, after the
// result has been rendered.
func diagnosticsExit(msgs diag.Messages) error {
	if !msgs.HasErrors() {
		return nil
	}
	return &ExitError{ExitCode: ExitDiagnostics, Reason: "calculation failed: " + msgs.Err().Error()}
}

// circuitFlags are the flags describing one circuit, shared by the calculation
// commands. They are turned into a batch.Circuit so that a command line and a
// circuits file entry go through the same construction.
type circuitFlags struct {
	dc         bool
	size       string
	metal      string
	insulation string
	length     string
	ambientF   int
	ambientC   int
	coated     bool

	conduit    string
	nipple     bool
	rooftopIn  float64
	conductors int

	bundle         int
	bundleLengthIn float64

	cable     string
	system    string
	jacketed  bool
	nonlinear bool

	current     float64
	voltage     float64
	phases      int
	sets        int
	powerFactor float64
	maxDrop     float64
}

// register adds the circuit flags to fs. Unset flags fall back to the
// configured defaults.
func (f *circuitFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.dc, "dc", false, "direct current circuit")
	fs.StringVar(&f.size, "size", "", "conductor size, e.g. 12, 1/0, 250")
	fs.StringVar(&f.metal, "metal", "", "conductor metal: copper or aluminum")
	fs.StringVar(&f.insulation, "insulation", "", "insulation code, e.g. THW, THHN, XHHW-2")
	fs.StringVar(&f.length, "length", "", "one-way length with unit, e.g. 150ft, 45m (bare numbers are feet)")
	fs.IntVar(&f.ambientF, "ambient-f", 0, "ambient temperature in °F")
	fs.IntVar(&f.ambientC, "ambient-c", 0, "ambient temperature in °C")
	fs.BoolVar(&f.coated, "coated", false, "coated copper (DC resistance)")

	fs.StringVar(&f.conduit, "conduit", "", "conduit material: pvc, aluminum or steel (omit for free air)")
	fs.BoolVar(&f.nipple, "nipple", false, "conduit is a nipple of 24 in or less")
	fs.Float64Var(&f.rooftopIn, "rooftop-in", -1, "conduit height above a sunlit rooftop in inches")
	fs.IntVar(&f.conductors, "conductors", 1, "identical circuits sharing the conduit")
	fs.IntVar(&f.bundle, "bundle", 0, "bundle this many identical circuits in free air")
	fs.Float64Var(&f.bundleLengthIn, "bundle-length-in", 0, "length over which the bundle runs together, in inches")

	fs.StringVar(&f.cable, "cable", "", "use a multi-conductor cable of this type: AC, MC, NM, UF, SE, USE, TC, MV")
	fs.StringVar(&f.system, "system", "", `cable voltage system, e.g. "120/240V 1ph 3W"`)
	fs.BoolVar(&f.jacketed, "jacketed", false, "cable has an overall jacket")
	fs.BoolVar(&f.nonlinear, "nonlinear", false, "cable serves a nonlinear load")

	fs.Float64Var(&f.current, "current", 0, "load current in amperes")
	fs.Float64Var(&f.voltage, "voltage", 0, "source voltage")
	fs.IntVar(&f.phases, "phases", 0, "1 or 3")
	fs.IntVar(&f.sets, "sets", 0, "parallel sets")
	fs.Float64Var(&f.powerFactor, "pf", 0, "power factor, 0.7 to 1")
	fs.Float64Var(&f.maxDrop, "max-drop", 0, "voltage-drop target in percent")
}

// circuit converts the flags to a circuit entry with defaults applied.
func (f *circuitFlags) circuit(cmd *cobra.Command, task string) batch.Circuit {
	c := batch.Circuit{
		Name:           cmd.Name(),
		Mode:           batch.ModeAC,
		Task:           task,
		Size:           f.size,
		Metal:          f.metal,
		Insulation:     f.insulation,
		Length:         f.length,
		AmbientF:       f.ambientF,
		Coated:         f.coated,
		Current:        f.current,
		SourceVoltage:  f.voltage,
		Phases:         f.phases,
		Sets:           f.sets,
		PowerFactor:    f.powerFactor,
		MaxDropPercent: f.maxDrop,
	}
	if f.dc {
		c.Mode = batch.ModeDC
	}
	if cmd.Flags().Changed("ambient-c") && !cmd.Flags().Changed("ambient-f") {
		c.AmbientF = units.CelsiusToFahrenheit(f.ambientC)
	}
	if f.conduit != "" || f.nipple || f.conductors > 1 || cmd.Flags().Changed("rooftop-in") {
		spec := &batch.ConduitSpec{Material: f.conduit, Nipple: f.nipple, Count: f.conductors}
		if cmd.Flags().Changed("rooftop-in") {
			in := f.rooftopIn
			spec.RooftopIn = &in
		}
		c.Conduit = spec
	}
	if f.bundle > 0 {
		c.Bundle = &batch.BundleSpec{Count: f.bundle, LengthIn: f.bundleLengthIn}
	}
	if f.cable != "" || f.system != "" {
		c.Cable = &batch.CableSpec{Type: f.cable, System: f.system, Jacketed: f.jacketed, Nonlinear: f.nonlinear}
	}
	return c.WithDefaults(config.GetGlobalConfig().Defaults)
}

// build creates the conduitable described by the flags. Malformed flag values
// are usage errors.
func (f *circuitFlags) build(cmd *cobra.Command, task string) (batch.Circuit, raceway.Conduitable, error) {
	c := f.circuit(cmd, task)
	m, err := c.Build(nec.Default())
	if err != nil {
		return c, nil, &ExitError{ExitCode: ExitUsage, Reason: err.Error()}
	}
	logging.FromContext(cmd.Context()).Debug().
		Str("task", task).
		Str("mode", c.Mode).
		Str("size", m.Size().Name()).
		Float64("length_ft", m.Length()).
		Msg("circuit built")
	return c, m, nil
}

// newEngine returns a voltage-drop engine logging through the command logger.
func newEngine(cmd *cobra.Command) (*vdrop.Engine, error) {
	return vdrop.New(nec.Default(), vdrop.WithLogger(*logging.FromContext(cmd.Context())))
}

// newRenderer builds a renderer from --output and --precision, falling back
// to the configured defaults.
func newRenderer(cmd *cobra.Command) (*report.Renderer, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	precision, _ := cmd.Flags().GetInt("precision")
	if precision < 0 {
		precision = config.GetOutputPrecision()
	}
	w := cmd.OutOrStdout()
	r, err := report.NewRenderer(w, format,
		report.WithPrecision(precision),
		report.WithStyle(isWriterTerminal(w)),
	)
	if err != nil {
		return nil, &ExitError{ExitCode: ExitUsage, Reason: err.Error()}
	}
	return r, nil
}

// isWriterTerminal reports whether w is a terminal.
func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isTerminal(f)
	}
	return false
}

func reportCircuit(c batch.Circuit, m raceway.Conduitable) report.Circuit {
	return report.Circuit{Mode: c.Mode, Conductor: raceway.Snap(m), Params: c.Params()}
}
