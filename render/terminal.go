package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const progressBarWidth = 20

// Printer writes the analysis report and live progress to a terminal.
type Printer struct {
	out        io.Writer
	inProgress bool
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Progress redraws the single status line: a bar, the percentage, and the
// current status message.
func (p *Printer) Progress(percent int, message string) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := percent * progressBarWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
	fmt.Fprintf(p.out, "\r%s %3d%%  %-40s", color.New(color.FgCyan).Render(bar), percent, message)
	p.inProgress = true
}

// ProgressDone ends the status line so following output starts clean.
func (p *Printer) ProgressDone() {
	if p.inProgress {
		fmt.Fprintln(p.out)
		p.inProgress = false
	}
}

// Error prints the user-facing failure line.
func (p *Printer) Error(message string) {
	fmt.Fprintln(p.out, color.New(color.FgRed, color.OpBold).Render("Error: "+message))
}

// Print writes every section of the report. Collapsed sections and groups
// show their header only.
func (p *Printer) Print(sections []Section) {
	for _, section := range sections {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, color.New(color.FgCyan, color.OpBold).Render(section.Title))

		if !section.Expanded {
			continue
		}

		if len(section.Fields) > 0 {
			p.printFields(section.Fields)
		}
		for _, group := range section.Groups {
			p.printGroup(group)
		}
		if section.Text != "" {
			fmt.Fprintf(p.out, "  %s\n", section.Text)
		}
	}
}

func (p *Printer) printFields(fields []Field) {
	table := tablewriter.NewWriter(p.out)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, f := range fields {
		table.Append([]string{"  " + f.Label + ":", f.Value})
	}
	table.Render()
}

func (p *Printer) printGroup(group Group) {
	fmt.Fprintf(p.out, "  %s\n", color.New(color.OpBold).Render(group.Label))
	if !group.Expanded {
		return
	}
	if len(group.Tags) > 0 {
		tags := lo.Map(group.Tags, func(tag string, _ int) string {
			return "[" + tag + "]"
		})
		fmt.Fprintf(p.out, "    %s\n", strings.Join(tags, " "))
	}
	if group.Text != "" {
		fmt.Fprintf(p.out, "    %s\n", group.Text)
	}
}
