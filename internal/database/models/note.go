package models

import (
	"encoding/json"
	"time"
)

// DateLayout is how note dates appear in JSON: UTC with exactly three
// fractional digits, e.g. 2019-05-30T17:30:31.098Z.
const DateLayout = "2006-01-02T15:04:05.000Z"

type Note struct {
	ID        int        `json:"id"`
	Content   string     `json:"content"`
	Important bool       `json:"important"`
	Date      *time.Time `json:"date,omitempty"`
}

func (n Note) MarshalJSON() ([]byte, error) {
	type note Note
	out := struct {
		note
		Date string `json:"date,omitempty"`
	}{note: note(n)}
	if n.Date != nil {
		out.Date = n.Date.UTC().Format(DateLayout)
	}
	return json.Marshal(out)
}

// SeedNotes returns the notes the store starts with. Seed notes carry no date.
func SeedNotes() []Note {
	return []Note{
		{ID: 1, Content: "HTML is easy", Important: true},
		{ID: 2, Content: "Browser can execute only JavaScript", Important: false},
		{ID: 3, Content: "GET and POST are the most important methods of HTTP protocol", Important: true},
	}
}
