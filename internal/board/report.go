package board

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Garsondee/Soccer-Tactics/internal/roster"
)

// Zone names where an entity sits.
func Zone(e roster.Entity) string {
	switch {
	case e.IsBall():
		return "ball"
	case e.X > 100:
		return "bench"
	default:
		return "pitch"
	}
}

// WriteReport prints the store contents as an aligned table.
func WriteReport(w io.Writer, s *Store) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tNO\tCLASS\tROLE\tX\tY\tZONE")
	s.Each(func(e roster.Entity) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.1f\t%.1f\t%s\n",
			e.ID, e.Name, e.Number, e.Class, e.Role, e.X, e.Y, Zone(e))
	})
	return tw.Flush()
}
