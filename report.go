// report.go
//
// Machine-readable twin of the GUESS explanation: everything a caller
// (or the CLI) wants to show or archive about one analysis, with JSON
// and YAML tags.

package solid

type Report struct {
	ID                  string             `json:"id" yaml:"id"`
	Input               float64            `json:"input" yaml:"input"`
	DesiredPrecision    int                `json:"desired_precision" yaml:"desired_precision"`
	SignificantDigits   int                `json:"significant_digits" yaml:"significant_digits"`
	Constant            string             `json:"constant,omitempty" yaml:"constant,omitempty"`
	Value               string             `json:"value" yaml:"value"`
	Barrier             string             `json:"barrier" yaml:"barrier"`
	Gap                 string             `json:"gap" yaml:"gap"`
	Confidence          int                `json:"confidence_x1000" yaml:"confidence_x1000"`
	AchievablePrecision int                `json:"achievable_precision" yaml:"achievable_precision"`
	Explanation         string             `json:"explanation" yaml:"explanation"`
	Trace               ComputationalTrace `json:"trace" yaml:"trace"`
	Detection           BarrierDetection   `json:"detection" yaml:"detection"`
}

// NewReport flattens a completed analysis. Safe on halted pipelines:
// missing pieces stay zero-valued.
func NewReport(r *GGGXResult) Report {
	rep := Report{
		ID:                  r.ID.String(),
		Input:               r.Input,
		DesiredPrecision:    r.Precision,
		SignificantDigits:   r.SignificantDigits,
		Constant:            r.ConstantName,
		Barrier:             r.Detection.KindName,
		Gap:                 gapString(r.Detection.Magnitude),
		AchievablePrecision: r.AchievablePrecision,
		Explanation:         r.Explanation,
		Trace:               r.Trace,
		Detection:           r.Detection,
	}
	if r.Value != nil {
		rep.Value = r.Value.Display()
		rep.Confidence = r.Value.Confidence
	}
	return rep
}
