package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

// The outcome of one query. Crossings is only set when the point is off the
// boundary, since the count means nothing otherwise.
type report struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Inside    bool    `json:"inside"`
	Location  string  `json:"location"`
	Crossings *int    `json:"crossings,omitempty"`
}

func (r report) verdict() string {
	if r.Inside {
		return "inside"
	}
	return "outside"
}

func (r report) writeText(w io.Writer, color bool) error {
	verdict := r.verdict()
	if color {
		if r.Inside {
			verdict = aurora.Green(verdict).String()
		} else {
			verdict = aurora.Red(verdict).String()
		}
	}
	_, err := fmt.Fprintf(w, "Point (%v, %v) is %s the polygon.\n", r.X, r.Y, verdict)
	return errors.Wrap(err, "could not write result")
}

func (r report) writeJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	if err := encoder.Encode(r); err != nil {
		return errors.Wrap(err, "could not write result")
	}
	return nil
}
