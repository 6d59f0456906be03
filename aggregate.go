package myenergi

import (
	"log"
	"time"
)

// DefaultPause is the fixed delay between daily requests to keep the
// outgoing request rate down.
const DefaultPause = 100 * time.Millisecond

// Aggregator walks a date range one day at a time and accumulates every
// tracked field into running totals.
type Aggregator struct {
	Service *MyEnergiService
	Device  string
	// Pause is slept after every day, successful or not.
	Pause time.Duration
}

// Run fetches each day of the range in ascending order and returns the
// accumulated totals. A day counts as processed only when the response
// carried the device key; failed days are logged and skipped without
// disturbing the totals accumulated so far.
func (a *Aggregator) Run(r DateRange) Report {
	var totals Totals
	days := 0

	for day := range r.Days() {
		readings, found, err := a.Service.DayReadings(a.Device, day)
		if err != nil {
			log.Printf("Error %s: %v", day.Format("2006-01-02"), err)
		} else if found {
			for _, reading := range readings {
				totals.Add(reading)
			}
			days++
		}

		if day.Day() == 1 {
			log.Printf("%s %d... (%d days)", day.Month(), day.Year(), days)
		}

		time.Sleep(a.Pause)
	}

	return Report{Totals: totals, Days: days, Year: r.Start.Year()}
}
