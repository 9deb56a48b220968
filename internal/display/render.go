package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TextRenderer prints each frame as a plain-text table.
type TextRenderer struct {
	w io.Writer
	// ClearScreen emits an ANSI clear before each frame.
	ClearScreen bool
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (t *TextRenderer) Render(f Frame) error {
	if f.Board == nil {
		return nil
	}
	b := f.Board
	if t.ClearScreen {
		if _, err := io.WriteString(t.w, "\033[H\033[2J"); err != nil {
			return err
		}
	}

	name := b.LayoutName
	if name == "" && f.Layout != nil {
		name = f.Layout.LayoutName
	}
	fmt.Fprintf(t.w, "%s  %s  mode=%s  page %d/%d  employees=%d\n",
		b.Date, name, b.Mode, b.Page+1, b.PageCount, b.TotalEmployees)

	tw := tabwriter.NewWriter(t.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tWORKPLACE\tEMPLOYEES")
	for _, tile := range b.Tiles {
		if tile.Kind == "covered" {
			continue
		}
		pos := fmt.Sprintf("%d,%d", tile.Row, tile.Col)
		if tile.RowSpan > 1 || tile.ColSpan > 1 {
			pos += fmt.Sprintf(" (%dx%d)", tile.RowSpan, tile.ColSpan)
		}
		workplace := "-"
		if tile.WorkplaceName != "" {
			workplace = tile.WorkplaceName
			if tile.WorkplaceNumber != nil {
				workplace = fmt.Sprintf("%d %s", *tile.WorkplaceNumber, tile.WorkplaceName)
			}
		}
		names := make([]string, 0, len(tile.Employees))
		for _, e := range tile.Employees {
			label := e.EmployeeNumber + " " + e.Name
			if e.Absent {
				label += " (absent)"
			}
			names = append(names, label)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", pos, workplace, strings.Join(names, ", "))
	}
	return tw.Flush()
}
