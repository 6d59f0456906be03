package myenergi

import (
	"fmt"
	"strings"
)

// wattSecondsPerKWh converts the API's joule figures to kilowatt-hours.
const wattSecondsPerKWh = 3_600_000

// Report is the outcome of an aggregation run.
type Report struct {
	Totals Totals
	Days   int
	Year   int
}

// Consumption estimates household consumption in watt-seconds as
// import + generation - export.
func (r Report) Consumption() int64 {
	return r.Totals.Imported + r.Totals.GenPositive - r.Totals.Exported
}

// kWh converts a watt-second figure for display.
func kWh(ws int64) float64 {
	return float64(ws) / wattSecondsPerKWh
}

// String renders the final totals report.
func (r Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== %d Totals (%d days) ===\n", r.Year, r.Days)
	fmt.Fprintf(&b, "Import (from grid): %.1f kWh\n", kWh(r.Totals.Imported))
	fmt.Fprintf(&b, "Export (to grid):   %.1f kWh\n", kWh(r.Totals.Exported))
	fmt.Fprintf(&b, "Generation (solar): %.1f kWh\n", kWh(r.Totals.GenPositive))
	fmt.Fprintf(&b, "Consumption (est.): %.1f kWh\n", kWh(r.Consumption()))

	return b.String()
}
