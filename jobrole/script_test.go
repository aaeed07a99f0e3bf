package jobrole

import (
	"errors"
	"strings"
	"testing"

	"github.com/darianmavgo/jobrolesql/converters/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTupleEscapesQuotes(t *testing.T) {
	r := Record{
		Name:                "O'Brien",
		CreatedAt:           "2024-01-01",
		UpdatedAt:           "2024-01-01",
		AlternateRoles:      "",
		Keywords:            "eng",
		JobTitlesToApplyFor: "SWE",
	}
	assert.Equal(t, Tuple("('O''Brien', '2024-01-01', '2024-01-01', '', 'eng', 'SWE')"), r.Tuple())
}

func TestTupleLeavesTimestampsUnescaped(t *testing.T) {
	r := Record{CreatedAt: "a'b", UpdatedAt: "c'd"}
	assert.Equal(t, Tuple("('', 'a'b', 'c'd', '', '', '')"), r.Tuple())
}

// splitTuple splits a tuple produced from quote-free timestamps back into its literals.
func splitTuple(t *testing.T, tuple Tuple) []string {
	t.Helper()
	s := string(tuple)
	require.True(t, strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"))
	s = s[1 : len(s)-1]

	var out []string
	for len(s) > 0 {
		require.Equal(t, byte('\''), s[0])
		end := 1
		for {
			i := strings.IndexByte(s[end:], '\'')
			require.GreaterOrEqual(t, i, 0, "unterminated literal in %q", tuple)
			end += i + 1
			if end < len(s) && s[end] == '\'' {
				end++
				continue
			}
			break
		}
		val, ok := common.UnquoteLiteral(s[:end])
		require.True(t, ok)
		out = append(out, val)
		s = strings.TrimPrefix(s[end:], ", ")
	}
	return out
}

func TestTupleRoundTrip(t *testing.T) {
	records := []Record{
		{"O'Brien", "2024-01-01", "2024-01-01", "", "eng", "SWE"},
		{"'", "2024-01-01", "2024-01-01", "''", "'a', 'b'", "end'"},
		{"", "", "", "", "", ""},
		{"Lead, Platform", "2024-03-04 10:00:00", "2024-03-05", "x\ny", "go,k8s", "Staff"},
	}
	for _, r := range records {
		assert.Equal(t, r.Values(), splitTuple(t, r.Tuple()))
	}
}

func TestScriptWriteTo(t *testing.T) {
	s := NewScript("")
	s.Add(Record{"a", "2024-01-01", "2024-01-01", "", "", ""})
	s.Add(Record{"b'c", "2024-01-02", "2024-01-02", "x", "y", "z"})

	want := `-- AUTO-GENERATED: Import all jobroles
-- Supabase will auto-generate IDs

INSERT INTO karmafy_jobrole (name, "createdAt", "updatedAt", alternate_roles, keywords, "jobTitlesToApplyFor")
VALUES
  ('a', '2024-01-01', '2024-01-01', '', '', ''),
  ('b''c', '2024-01-02', '2024-01-02', 'x', 'y', 'z');

-- Verify import
SELECT COUNT(*) as total_imported FROM karmafy_jobrole;
`
	var b strings.Builder
	n, err := s.WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, want, b.String())
	assert.Equal(t, int64(len(want)), n)
	assert.Equal(t, want, s.String())
}

func TestScriptTupleCountMatchesRecords(t *testing.T) {
	s := NewScript("")
	for i := 0; i < 250; i++ {
		s.Add(Record{Name: "role"})
	}
	out := s.String()
	assert.Equal(t, 250, s.Len())
	assert.Equal(t, 250, strings.Count(out, "\n  ('role'"))
}

func TestScriptEmpty(t *testing.T) {
	out := NewScript("").String()
	assert.Equal(t, `-- AUTO-GENERATED: Import all jobroles
-- Supabase will auto-generate IDs

-- No jobroles found in input; nothing to import.

-- Verify import
SELECT COUNT(*) as total_imported FROM karmafy_jobrole;
`, out)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestScriptWriteToError(t *testing.T) {
	s := NewScript("")
	s.Add(Record{Name: "a"})
	_, err := s.WriteTo(failWriter{})
	assert.ErrorContains(t, err, "disk full")
}

func TestColumnList(t *testing.T) {
	assert.Equal(t, `(name, "createdAt", "updatedAt", alternate_roles, keywords, "jobTitlesToApplyFor")`, ColumnList())
}
