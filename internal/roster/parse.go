package roster

import "strings"

// Column positions in a roster row.
const (
	colName = iota
	colNumber
	colGrade
	colRole
)

// Parse turns delimited roster text into player entities in row order.
//
// The first non-blank line is a header and is dropped. Each remaining line is
// split on ','; there is no quoting, so a comma inside a name shifts every
// later column. Missing columns fall back to defaults and never fail.
// Coordinates are left at zero for the layout assigner.
func Parse(raw string) []Entity {
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	if len(lines) < 2 {
		return nil
	}

	rows := lines[1:]
	out := make([]Entity, 0, len(rows))
	for i, line := range rows {
		out = append(out, parseRow(i, strings.Split(line, ",")))
	}
	return out
}

func parseRow(i int, cols []string) Entity {
	return Entity{
		ID:     PlayerID(i),
		Name:   column(cols, colName, DefaultName),
		Number: column(cols, colNumber, DefaultNumber),
		Role:   column(cols, colRole, DefaultRole),
		Class:  parseCohort(column(cols, colGrade, "")),
	}
}

func column(cols []string, idx int, def string) string {
	if idx >= len(cols) {
		return def
	}
	v := strings.TrimSpace(cols[idx])
	if v == "" {
		return def
	}
	return v
}

// parseCohort reads the leading decimal digits of s, so "2nd" is 2.
// An empty value is DefaultCohort; a value with no leading digits is 0.
func parseCohort(s string) Cohort {
	if s == "" {
		return DefaultCohort
	}
	n := 0
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		digits++
		if digits > 6 {
			break
		}
	}
	return Cohort(n)
}
