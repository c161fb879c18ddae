package intent

import (
	"encoding/json"
	"strconv"
)

// wireRecord is the flat JSON schema shared with the model and HTTP clients.
type wireRecord struct {
	Intent     Kind        `json:"intent"`
	Title      *string     `json:"title"`
	Amount     *float64    `json:"amount"`
	Category   *Category   `json:"category"`
	Date       *string     `json:"date"`
	Time       *string     `json:"time"`
	Priority   *Priority   `json:"priority"`
	MemoryType *MemoryType `json:"memoryType"`
	Reply      string      `json:"reply"`
}

// MarshalJSON encodes the record in the flat schema with absent fields as null.
func (r Record) MarshalJSON() ([]byte, error) {
	f := r.Fields()
	w := wireRecord{
		Intent:     r.Kind,
		Amount:     f.Amount,
		Category:   f.Category,
		Priority:   f.Priority,
		MemoryType: f.MemoryType,
		Reply:      r.Reply,
	}
	if f.Title != "" {
		w.Title = &f.Title
	}
	if f.Date != nil {
		s := f.Date.String()
		w.Date = &s
	}
	if f.Time != nil {
		s := f.Time.String()
		w.Time = &s
	}
	return json.Marshal(w)
}

// UnmarshalJSON accepts the flat schema and applies the same validation as
// model output.
func (r *Record) UnmarshalJSON(b []byte) error {
	var raw Raw
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	rec, _, err := Sanitize(raw)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
