package balance

// Record is one user's allocation for one calendar date. ID is empty until
// the record has been persisted.
type Record struct {
	ID    string `json:"id,omitempty"`
	Date  string `json:"date"`
	Hours Hours  `json:"hours"`
}

// Empty returns the all-zero record used when nothing was saved for date.
func Empty(date string) Record {
	return Record{Date: date}
}

// Score is shorthand for Score(r.Hours).
func (r Record) Score() int {
	return Score(r.Hours)
}
