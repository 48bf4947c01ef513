package report

import "io"

// ContextLine is one "name: value" line of the run context.
type ContextLine struct {
	Name  string
	Value string
	// Section marks a group title; Value is ignored.
	Section bool
}

// Section starts a new group of context lines.
func Section(title string) ContextLine {
	return ContextLine{Name: title, Section: true}
}

// Heading prints the report title and, with opts.ShowContext, the context.
func Heading(w io.Writer, opts Options, context []ContextLine) error {
	p := &printer{w: w}
	p.blank()
	p.line("============ Report ============")

	if opts.ShowContext {
		p.blank()
		p.line("● Context")
		for _, c := range context {
			if c.Section {
				p.line("--- %s ---", c.Name)
				continue
			}
			p.line("%s: %s", c.Name, c.Value)
		}
	}
	return p.err
}

func contentHeading(p *printer, opts Options) {
	p.blank()
	switch {
	case opts.DifferenceOnly:
		p.line("● Differences")
	case opts.AllLines:
		p.line("● All")
	}
}
