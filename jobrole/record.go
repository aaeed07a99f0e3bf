// Package jobrole turns job-role rows into the INSERT script that loads them
// into the karmafy_jobrole table.
package jobrole

import (
	"errors"
	"fmt"
	"strings"
)

// Column names as they appear in the input header and in the target table.
const (
	FieldName                = "name"
	FieldCreatedAt           = "createdAt"
	FieldUpdatedAt           = "updatedAt"
	FieldAlternateRoles      = "alternate_roles"
	FieldKeywords            = "keywords"
	FieldJobTitlesToApplyFor = "jobTitlesToApplyFor"
)

// Fields lists the required columns in tuple order.
var Fields = []string{
	FieldName,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldAlternateRoles,
	FieldKeywords,
	FieldJobTitlesToApplyFor,
}

// ErrMissingField is returned when the header row lacks a required column.
var ErrMissingField = errors.New("jobrole: missing required field")

const bom = "\ufeff"

// Record is one input row.
type Record struct {
	Name                string
	CreatedAt           string
	UpdatedAt           string
	AlternateRoles      string
	Keywords            string
	JobTitlesToApplyFor string
}

// Values returns the record's fields in tuple order.
func (r Record) Values() []string {
	return []string{
		r.Name,
		r.CreatedAt,
		r.UpdatedAt,
		r.AlternateRoles,
		r.Keywords,
		r.JobTitlesToApplyFor,
	}
}

// Binder maps raw rows onto Records using the column positions found in a header row.
type Binder struct {
	index [6]int
}

// NewBinder locates every required field in headers.
// Header cells are trimmed and a leading byte order mark is ignored.
// Extra columns are allowed; a missing one is an error wrapping ErrMissingField.
func NewBinder(headers []string) (*Binder, error) {
	positions := make(map[string]int, len(headers))
	for i, h := range headers {
		if i == 0 {
			h = strings.TrimPrefix(h, bom)
		}
		h = strings.TrimSpace(h)
		if _, dup := positions[h]; !dup {
			positions[h] = i
		}
	}

	b := &Binder{}
	for i, field := range Fields {
		pos, ok := positions[field]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingField, field)
		}
		b.index[i] = pos
	}
	return b, nil
}

// Record builds a Record from row. Cells past the end of a short row are empty.
func (b *Binder) Record(row []string) Record {
	cell := func(i int) string {
		pos := b.index[i]
		if pos < len(row) {
			return row[pos]
		}
		return ""
	}
	return Record{
		Name:                cell(0),
		CreatedAt:           cell(1),
		UpdatedAt:           cell(2),
		AlternateRoles:      cell(3),
		Keywords:            cell(4),
		JobTitlesToApplyFor: cell(5),
	}
}
