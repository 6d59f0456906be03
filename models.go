package myenergi

// DayReading is a single time-bucket record from the daily endpoint.
// Values are energy in watt-seconds (joules) accumulated over the bucket;
// fields absent from the payload unmarshal to zero.
type DayReading struct {
	Imported    int64 `json:"imp"`
	Exported    int64 `json:"exp"`
	GenPositive int64 `json:"gep"`
	GenNegative int64 `json:"gen"`
	Diverted    int64 `json:"h1d"`
	Boosted     int64 `json:"h1b"`
}

// Totals holds the running sums of every tracked field across a run.
type Totals struct {
	Imported    int64
	Exported    int64
	GenPositive int64
	GenNegative int64
	Diverted    int64
	Boosted     int64
}

// Add folds one reading into the running totals.
func (t *Totals) Add(r DayReading) {
	t.Imported += r.Imported
	t.Exported += r.Exported
	t.GenPositive += r.GenPositive
	t.GenNegative += r.GenNegative
	t.Diverted += r.Diverted
	t.Boosted += r.Boosted
}
