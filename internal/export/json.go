package export

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON writes the full report (metadata, summary, transactions) as
// indented JSON. Re-parsing the transactions section yields a list deep-equal
// to the filtered input.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report json: %w", err)
	}
	return nil
}

// ParseJSON decodes a report previously produced by WriteJSON.
func ParseJSON(r io.Reader, out *Report) error {
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("decoding report json: %w", err)
	}
	return nil
}
