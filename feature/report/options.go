package report

// Options selects what a run prints.
type Options struct {
	Vertical       bool `json:"vertical"`
	ShowCount      bool `json:"show_count"`
	DifferenceOnly bool `json:"difference_only"`
	AllLines       bool `json:"all_lines"`
	ShowContext    bool `json:"show_context"`
}

// Normalize turns on the count when no detail style is selected, so a run
// always prints something.
func (o Options) Normalize() Options {
	if !o.DifferenceOnly && !o.AllLines {
		o.ShowCount = true
	}
	return o
}

// ShowsDetails reports whether rows are printed at all.
func (o Options) ShowsDetails() bool {
	return o.DifferenceOnly || o.AllLines
}

// NeedsSizeInfo reports whether the reporter needs a deep pre-scan.
func (o Options) NeedsSizeInfo() bool {
	return o.ShowsDetails() && !o.Vertical
}

// showsMatched reports whether a matched pair is printed.
func (o Options) showsMatched(hasDifference bool) bool {
	return o.AllLines || (o.DifferenceOnly && hasDifference)
}
