package jobrole

import (
	"strings"

	"github.com/darianmavgo/jobrolesql/converters/common"
)

// Tuple is the parenthesized literal list for one Record, ready for a VALUES clause.
type Tuple string

// Tuple escapes and quotes the record's values.
// createdAt and updatedAt are emitted as-is; they are expected to be valid timestamp literals.
func (r Record) Tuple() Tuple {
	var b strings.Builder
	b.Grow(len(r.Name) + len(r.AlternateRoles) + len(r.Keywords) + len(r.JobTitlesToApplyFor) + 96)

	b.WriteByte('(')
	b.WriteString(common.QuoteLiteral(r.Name))
	b.WriteString(", '")
	b.WriteString(r.CreatedAt)
	b.WriteString("', '")
	b.WriteString(r.UpdatedAt)
	b.WriteString("', ")
	b.WriteString(common.QuoteLiteral(r.AlternateRoles))
	b.WriteString(", ")
	b.WriteString(common.QuoteLiteral(r.Keywords))
	b.WriteString(", ")
	b.WriteString(common.QuoteLiteral(r.JobTitlesToApplyFor))
	b.WriteByte(')')
	return Tuple(b.String())
}
