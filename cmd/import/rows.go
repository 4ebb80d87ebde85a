package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gym-frontdesk/internal/domain/access"
	"gym-frontdesk/internal/membership"
)

var columns = []string{"first_name", "last_name", "email", "phone", "dni", "expiration_date", "plan"}

type memberRow struct {
	line    int
	fields  membership.ClientFields
	expires *time.Time
	plan    string
}

type rowError struct {
	line int
	err  error
}

func (e rowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.line, e.err)
}

// readRows parses the member export. The header row names the columns; any
// order is accepted and unknown columns are ignored.
func readRows(r io.Reader) ([]memberRow, []rowError, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}
	index := map[string]int{}
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, required := range columns[:2] {
		if _, ok := index[required]; !ok {
			return nil, nil, fmt.Errorf("missing column %q", required)
		}
	}

	var rows []memberRow
	var bad []rowError
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			bad = append(bad, rowError{line: line, err: err})
			continue
		}

		get := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		row := memberRow{
			line: line,
			fields: membership.ClientFields{
				FirstName: get("first_name"),
				LastName:  get("last_name"),
				Email:     get("email"),
				Phone:     get("phone"),
				DNI:       get("dni"),
			},
			plan: get("plan"),
		}
		if raw := get("expiration_date"); raw != "" {
			d, err := access.ParseDate(raw)
			if err != nil {
				bad = append(bad, rowError{line: line, err: fmt.Errorf("expiration_date %q: %w", raw, err)})
				continue
			}
			row.expires = &d
		}
		rows = append(rows, row)
	}
	return rows, bad, nil
}
