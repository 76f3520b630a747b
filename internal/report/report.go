// Package report renders parsed beams as text and PDF reports.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gobeam/internal/batch"
	"github.com/alexiusacademia/gobeam/internal/beamfile"
	"github.com/alexiusacademia/gobeam/internal/model"
	"github.com/alexiusacademia/gobeam/internal/nscp"
)

const rule = "───────────────────────────────────────────────────────────────"

// WriteText writes the text report of one result. A failed result reports
// its error only.
func WriteText(out io.Writer, r batch.Result) error {
	bw := bufio.NewWriter(out)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "═══════════════════════════════════════════════════════════════")
	if r.Description != nil {
		fmt.Fprintf(bw, "     BEAM: %s\n", r.Description.Name)
	} else {
		fmt.Fprintf(bw, "     BEAM: %s\n", r.Source)
	}
	fmt.Fprintln(bw, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(bw)

	if r.Err != nil {
		fmt.Fprintf(bw, "  Error: %v\n\n", r.Err)
		return bw.Flush()
	}
	d := r.Description

	section(bw, "ATTRIBUTES:")
	w := tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
	for _, a := range attributeRows(d.Attributes) {
		fmt.Fprintf(w, "  %s\t%g\t%s\n", a.label, a.value, a.note)
	}
	w.Flush()
	fmt.Fprintln(bw)

	section(bw, "SUPPORTS:")
	w = tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Location\tKind\tRestraint\n")
	for loc, kind := range d.Supports.All() {
		fmt.Fprintf(w, "  %g\t%s\t%s\n", loc, kind, model.RestraintFor(kind).Code())
	}
	w.Flush()
	fmt.Fprintln(bw)

	section(bw, "LOADS:")
	w = tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Type\tDir\tMagnitude\tLocation\tCase\n")
	for _, l := range d.Loads {
		fmt.Fprintln(w, "  "+strings.Join(loadColumns(l), "\t"))
	}
	w.Flush()
	fmt.Fprintln(bw)

	if m := r.Model; m != nil {
		section(bw, "ANALYSIS MODEL:")
		w = tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
		for _, n := range m.Nodes {
			fmt.Fprintf(w, "  Node %s:\tx = %g\n", n.ID, n.X)
		}
		fmt.Fprintf(w, "  Member %s:\t%s → %s\n", m.Member.ID, m.Member.INode, m.Member.JNode)
		fmt.Fprintf(w, "  Shear modulus G:\t%g\n", m.Material.G)
		w.Flush()
		fmt.Fprintln(bw)

		if len(m.Combinations) > 0 {
			section(bw, "LOAD COMBINATIONS (NSCP 2015):")
			w = tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
			for _, c := range m.Combinations {
				fmt.Fprintf(w, "  %s\t%s\t%s\n", c.Name, c.Description, factorsText(c))
			}
			w.Flush()
			fmt.Fprintln(bw)
		}
	}

	if warnings := r.Warnings; len(warnings) > 0 {
		section(bw, "WARNINGS:")
		for _, msg := range warnings {
			fmt.Fprintf(bw, "  ⚠ %s\n", msg)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
}

type attributeRow struct {
	label string
	value float64
	note  string
}

func attributeRows(a beamfile.Attributes) []attributeRow {
	rows := []attributeRow{
		{"Length (L):", a.Length, ""},
		{"Elastic modulus (E):", a.E, ""},
		{"Iz:", a.Iz, ""},
		{"Iy:", a.Iy, ""},
		{"Area (A):", a.A, ""},
		{"Torsion constant (J):", a.J, ""},
		{"Poisson's ratio (nu):", a.Nu, ""},
		{"Density (rho):", a.Rho, ""},
	}
	names := []string{"L", "E", "Iz", "Iy", "A", "J", "nu", "rho"}
	for i := range rows {
		if a.UsesDefault(names[i]) {
			rows[i].note = "(default)"
		}
	}
	return rows
}

func loadColumns(l beamfile.Load) []string {
	switch l := l.(type) {
	case beamfile.PointLoad:
		return []string{"Point", l.Direction, fmt.Sprintf("%g", l.Magnitude), fmt.Sprintf("%g", l.Location), l.Case}
	case beamfile.DistributedLoad:
		mag := fmt.Sprintf("%g", l.StartMagnitude)
		if !l.Uniform() {
			mag = fmt.Sprintf("%g → %g", l.StartMagnitude, l.EndMagnitude)
		}
		return []string{"Dist", l.Direction, mag, fmt.Sprintf("%g → %g", l.StartLocation, l.EndLocation), l.Case}
	}
	return nil
}

func factorsText(c nscp.Combination) string {
	parts := make([]string, len(c.Factors))
	for i, f := range c.Factors {
		parts[i] = fmt.Sprintf("%g·%s", f.Factor, f.Case)
	}
	return strings.Join(parts, " + ")
}

// WritePDF writes a summary of every result to a PDF file, one page per
// beam. Failed records get a page stating the error.
func WritePDF(path string, results []batch.Result) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("gobeam report", true)

	for _, r := range results {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		title := r.Source
		if r.Description != nil {
			title = r.Description.Name
		}
		pdf.Cell(0, 10, pdfText(title))
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "", 9)
		pdf.Cell(0, 6, pdfText(fmt.Sprintf("Source: %s", r.Source)))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
		pdf.Ln(10)

		if r.Err != nil {
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 6, pdfText("Error: "+r.Err.Error()), "", "L", false)
			continue
		}

		d := r.Description
		pdfHeading(pdf, "Attributes")
		for _, a := range attributeRows(d.Attributes) {
			pdfRow(pdf, []float64{60, 40, 30}, a.label, fmt.Sprintf("%g", a.value), a.note)
		}

		pdfHeading(pdf, "Supports")
		for loc, kind := range d.Supports.All() {
			pdfRow(pdf, []float64{60, 40, 30}, fmt.Sprintf("%g", loc), kind.String(), model.RestraintFor(kind).Code())
		}

		pdfHeading(pdf, "Loads")
		for _, l := range d.Loads {
			pdfRow(pdf, []float64{20, 15, 45, 45, 30}, loadColumns(l)...)
		}

		if r.Model != nil && len(r.Model.Combinations) > 0 {
			pdfHeading(pdf, "Load combinations (NSCP 2015)")
			for _, c := range r.Model.Combinations {
				pdfRow(pdf, []float64{25, 75, 80}, c.Name, c.Description, factorsText(c))
			}
		}

		if warnings := r.Warnings; len(warnings) > 0 {
			pdfHeading(pdf, "Warnings")
			for _, msg := range warnings {
				pdf.MultiCell(0, 5, pdfText(msg), "", "L", false)
			}
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing pdf %s: %w", path, err)
	}
	return nil
}

func pdfHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, text)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func pdfRow(pdf *gofpdf.Fpdf, widths []float64, cells ...string) {
	for i, c := range cells {
		pdf.CellFormat(widths[i], 6, pdfText(c), "", 0, "L", false, 0, "")
	}
	pdf.Ln(6)
}

// pdfText replaces characters the core PDF fonts cannot show.
var pdfText = strings.NewReplacer("→", "->", "·", "*", "⚠", "!").Replace
