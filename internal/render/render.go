package render

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"

	"flatland/internal/domain"
)

// Total formats a length in its shortest decimal form without an exponent.
// Infinities print as "inf" and "-inf".
func Total(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var messages = map[domain.Kind]string{
	domain.KindIo:           "IO",
	domain.KindOutOfRange:   "Out of range",
	domain.KindMissingValue: "Missing value",
	domain.KindInvalidValue: "Invalid number",
	domain.KindMissingLine:  "Missing line",
}

// Error returns the user-facing line for err. Errors that do not carry a
// domain kind are shown with their own text.
func Error(err error) string {
	var kind domain.Kind
	if errors.As(err, &kind) {
		if msg, ok := messages[kind]; ok {
			return `Error: "` + msg + `"`
		}
	}
	return `Error: "` + err.Error() + `"`
}

// summary is the JSON form of a domain.Result. The total is a string so that
// an infinite length survives encoding.
type summary struct {
	RunID    string `json:"run_id"`
	Angle    int32  `json:"angle"`
	Declared uint32 `json:"declared"`
	Count    int    `json:"count"`
	Merged   int    `json:"merged"`
	Total    string `json:"total"`
	Digest   string `json:"digest"`
}

// JSON writes res as an indented JSON object followed by a newline.
func JSON(w io.Writer, res domain.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summary{
		RunID:    res.RunID.String(),
		Angle:    int32(res.Angle),
		Declared: res.Declared,
		Count:    res.Count,
		Merged:   res.Merged,
		Total:    Total(res.Total),
		Digest:   res.Digest.String(),
	})
}
