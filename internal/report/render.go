// Package report formats numbers and renders calculation results as aligned
// text tables or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/ampacity/internal/batch"
	"github.com/rshade/ampacity/internal/diag"
	"github.com/rshade/ampacity/internal/nec"
	"github.com/rshade/ampacity/internal/raceway"
	"github.com/rshade/ampacity/internal/vdrop"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const (
	tabwriterPadding = 2
	defaultPrecision = 2
	factorPrecision  = 3
	jsonIndent       = "  "
	notApplicable    = "-"
)

// Circuit describes the inputs of a single calculation.
type Circuit struct {
	Mode      string           `json:"mode"`
	Conductor raceway.Snapshot `json:"conductor"`
	Params    vdrop.Params     `json:"params"`
}

// Fill describes the occupancy of a conduit.
type Fill struct {
	Material       nec.ConduitMaterial `json:"material"`
	Members        int                 `json:"members"`
	CurrentCarry   int                 `json:"current_carrying"`
	Nipple         bool                `json:"nipple"`
	FillArea       float64             `json:"fill_area_in2"`
	AllowedPercent float64             `json:"allowed_percent"`
	Adjustment     float64             `json:"adjustment_factor"`
	// TradeSize is the smallest trade size that holds the members, if any.
	TradeSize   *nec.TradeSize `json:"trade_size,omitempty"`
	FillPercent float64        `json:"fill_percent,omitempty"`
}

// Renderer writes results to w in one format.
type Renderer struct {
	w         io.Writer
	format    string
	precision int
	styled    bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPrecision sets the number of decimals for voltages, lengths and percentages.
func WithPrecision(n int) Option {
	return func(r *Renderer) { r.precision = n }
}

// WithStyle enables terminal colors for headings and diagnostics.
func WithStyle(styled bool) Option {
	return func(r *Renderer) { r.styled = styled }
}

// NewRenderer returns a renderer writing format to w.
func NewRenderer(w io.Writer, format string, opts ...Option) (*Renderer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatTable
	}
	if format != FormatTable && format != FormatJSON {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	r := &Renderer{w: w, format: format, precision: defaultPrecision}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Format returns the output format.
func (r *Renderer) Format() string { return r.format }

// Drop renders a voltage-drop result.
func (r *Renderer) Drop(c Circuit, d vdrop.Drop) error {
	if r.format == FormatJSON {
		return r.json(struct {
			Circuit Circuit    `json:"circuit"`
			Result  vdrop.Drop `json:"result"`
		}{c, d})
	}
	rows := r.circuitRows(c)
	if !d.Messages.HasErrors() {
		rows = append(rows,
			[2]string{"Voltage at load", r.volts(d.VoltageAtLoad)},
			[2]string{"Drop", r.volts(d.DropVolts)},
			[2]string{"Drop %", FormatPercent(d.DropPercent, r.precision)},
			[2]string{"Ampacity", r.amps(d.Ampacity)},
		)
	}
	return r.section("VOLTAGE DROP", rows, d.Messages)
}

// Sizing renders a minimum-size search.
func (r *Renderer) Sizing(c Circuit, s vdrop.Sizing) error {
	if r.format == FormatJSON {
		return r.json(struct {
			Circuit Circuit      `json:"circuit"`
			Result  vdrop.Sizing `json:"result"`
		}{c, s})
	}
	rows := r.circuitRows(c)
	rows = append(rows, [2]string{"Target", FormatPercent(c.Params.MaxDropPercent, r.precision)})
	if s.Found {
		rows = append(rows,
			[2]string{"Minimum size", s.Size.String()},
			[2]string{"Voltage at load", r.volts(s.VoltageAtLoad)},
			[2]string{"Drop %", FormatPercent(s.DropPercent, r.precision)},
			[2]string{"Max length", r.feet(s.MaxLength)},
			[2]string{"Ampacity", r.amps(s.Ampacity)},
		)
	} else {
		rows = append(rows, [2]string{"Minimum size", "none"})
	}
	return r.section("CONDUCTOR SIZE", rows, s.Messages)
}

// Length renders a maximum-length solve.
func (r *Renderer) Length(c Circuit, l vdrop.Length) error {
	if r.format == FormatJSON {
		return r.json(struct {
			Circuit Circuit      `json:"circuit"`
			Result  vdrop.Length `json:"result"`
		}{c, l})
	}
	rows := r.circuitRows(c)
	rows = append(rows, [2]string{"Target", FormatPercent(c.Params.MaxDropPercent, r.precision)})
	if l.Found {
		rows = append(rows, [2]string{"Max length", r.feet(l.MaxLength)})
	} else {
		rows = append(rows, [2]string{"Max length", "none"})
	}
	return r.section("MAXIMUM LENGTH", rows, l.Messages)
}

// Derating renders the ampacity derating of one or more conduitables.
func (r *Renderer) Derating(snaps []raceway.Snapshot) error {
	if r.format == FormatJSON {
		return r.json(struct {
			Conductors []raceway.Snapshot `json:"conductors"`
		}{snaps})
	}
	if err := r.heading("DERATING"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintln(tw, "SIZE\tMETAL\tINSULATION\tAMBIENT\tCCC\tCORRECTION\tADJUSTMENT\tCOMPOUND\tAMPACITY"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, s := range snaps {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%d°F / %d°C\t%d\t%s\t%s\t%s\t%s\n",
			s.Size, s.Metal, s.Insulation, s.AmbientF, s.AmbientC, s.CurrentCarrying,
			FormatFactor(s.Correction), FormatFactor(s.Adjustment), FormatFactor(s.Compound()),
			r.amps(s.Ampacity),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return tw.Flush()
}

// Fill renders a conduit fill summary.
func (r *Renderer) Fill(f Fill) error {
	if r.format == FormatJSON {
		return r.json(f)
	}
	trade := "none fits"
	fill := notApplicable
	if f.TradeSize != nil {
		trade = f.TradeSize.String()
		fill = FormatPercent(f.FillPercent, r.precision)
	}
	rows := [][2]string{
		{"Material", f.Material.String()},
		{"Members", FormatNumber(int64(f.Members))},
		{"Current-carrying", FormatNumber(int64(f.CurrentCarry))},
		{"Nipple", yesNo(f.Nipple)},
		{"Fill area", FormatFloat(f.FillArea, factorPrecision+1) + " in²"},
		{"Allowed fill", FormatPercent(f.AllowedPercent, 0)},
		{"Adjustment", FormatFactor(f.Adjustment)},
		{"Minimum trade size", trade},
		{"Fill at trade size", fill},
	}
	return r.section("CONDUIT FILL", rows, diag.Messages{})
}

// Batch renders a batch run, one row per circuit followed by the diagnostics
// of every circuit that has any.
func (r *Renderer) Batch(rep *batch.Report) error {
	if r.format == FormatJSON {
		return r.json(rep)
	}
	if err := r.heading("BATCH " + rep.RunID); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintln(tw, "#\tNAME\tMODE\tTASK\tSIZE\tLENGTH\tV LOAD\tDROP%\tMAX LENGTH\tSTATUS"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, res := range rep.Results {
		if _, err := fmt.Fprintln(tw, strings.Join(r.batchRow(res), "\t")); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, res := range rep.Results {
		if res.Error != "" {
			if err := r.line(r.paint(errorColor, "error")+": "+res.Name+": "+res.Error, ""); err != nil {
				return err
			}
			continue
		}
		for _, m := range res.Messages().Items {
			if err := r.message(res.Name+": ", m); err != nil {
				return err
			}
		}
	}
	return r.line(fmt.Sprintf("%s circuits, %s failed, %s",
		FormatNumber(int64(len(rep.Results))), FormatNumber(int64(rep.Failures())), rep.Duration.Round(durationRound)), "")
}

func (r *Renderer) batchRow(res batch.Result) []string {
	row := []string{
		FormatNumber(int64(res.Index + 1)), res.Name, res.Mode, res.Task,
		notApplicable, notApplicable, notApplicable, notApplicable, notApplicable, "ok",
	}
	if res.Error != "" {
		row[9] = "invalid"
		return row
	}
	if res.Failed() {
		row[9] = "error"
	} else if res.Messages().HasWarnings() {
		row[9] = "warning"
	}
	if nec.IsValidSize(res.Conductor.Size) {
		row[4] = res.Conductor.Size.String()
	}
	if res.Conductor.LengthFt > 0 {
		row[5] = r.feet(res.Conductor.LengthFt)
	}
	switch {
	case res.Drop != nil && !res.Failed():
		row[6] = r.volts(res.Drop.VoltageAtLoad)
		row[7] = FormatPercent(res.Drop.DropPercent, r.precision)
	case res.Sizing != nil && res.Sizing.Found:
		row[6] = r.volts(res.Sizing.VoltageAtLoad)
		row[7] = FormatPercent(res.Sizing.DropPercent, r.precision)
		row[8] = r.feet(res.Sizing.MaxLength)
	case res.Length != nil && res.Length.Found:
		row[8] = r.feet(res.Length.MaxLength)
	}
	return row
}

func (r *Renderer) circuitRows(c Circuit) [][2]string {
	s := c.Conductor
	p := c.Params
	system := strings.ToUpper(c.Mode)
	if c.Mode == batch.ModeAC {
		system = fmt.Sprintf("AC %dφ, pf %s", p.Phases, FormatFloat(p.PowerFactor, r.precision))
	}
	size := notApplicable
	if nec.IsValidSize(s.Size) {
		size = s.Size.String()
	}
	return [][2]string{
		{"System", system},
		{"Source", r.volts(p.SourceVoltage)},
		{"Current", r.amps(p.Current)},
		{"Sets", FormatNumber(int64(p.Sets))},
		{"Conductor", strings.TrimSpace(fmt.Sprintf("%s %s %s", size, s.Metal, s.Insulation))},
		{"Raceway", s.Material.String()},
		{"Length", r.feet(s.LengthFt)},
	}
}

func (r *Renderer) section(title string, rows [][2]string, msgs diag.Messages) error {
	if err := r.heading(title); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, tabwriterPadding, ' ', 0)
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, m := range msgs.Items {
		if err := r.message("", m); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) heading(title string) error {
	if r.styled {
		title = lipgloss.NewStyle().Bold(true).Foreground(headingColor).Render(title)
	}
	return r.line(title, "")
}

func (r *Renderer) message(prefix string, m diag.Message) error {
	color := warningColor
	if m.Severity == diag.Error {
		color = errorColor
	}
	return r.line(r.paint(color, m.Severity.String())+": "+prefix+m.Text, " ["+m.Code.String()+"]")
}

func (r *Renderer) paint(color lipgloss.Color, s string) string {
	if !r.styled {
		return s
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(s)
}

func (r *Renderer) line(s, suffix string) error {
	if _, err := fmt.Fprintln(r.w, s+suffix); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func (r *Renderer) volts(v float64) string { return FormatFloat(v, r.precision) + " V" }

func (r *Renderer) amps(a float64) string { return FormatFloat(a, r.precision) + " A" }

func (r *Renderer) feet(ft float64) string { return FormatFloat(ft, r.precision) + " ft" }

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
