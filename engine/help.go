package engine

import "strconv"

type HelpRow struct {
	Key         string
	Description string
}

var keyHelp = []HelpRow{
	{"F1", "Show Help"},
	{"R", "Restart"},
	{"P", "Pause/Play"},
	{"Num+", "More points"},
	{"Num-", "Less points"},
	{"D", "Delete the last base point"},
	{"A", "Add a new knot"},
	{"N", "Select the next knot"},
	{"DELETE", "Delete selected knot"},
	{"Num*", "Speed up selected knot"},
	{"Num/", "Speed down selected knot"},
}

// Help lists the key bindings followed by live counters.
func (e *Engine) Help() []HelpRow {
	basePoints := 0
	if knot, ok := e.knots.Active(); ok {
		basePoints = knot.Len()
	}

	rows := make([]HelpRow, 0, len(keyHelp)+4)
	rows = append(rows, keyHelp...)
	rows = append(rows,
		HelpRow{strconv.Itoa(e.samples), "Current points"},
		HelpRow{strconv.Itoa(e.knots.Len()), "Current number of knots"},
		HelpRow{strconv.Itoa(e.knots.ActiveIndex() + 1), "Knot #"},
		HelpRow{strconv.Itoa(basePoints), "Number of basepoints"},
	)
	return rows
}
