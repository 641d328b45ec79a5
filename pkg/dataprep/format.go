package dataprep

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFieldCount is returned in strict mode when a record's value count differs
// from the frozen schema.
var ErrFieldCount = errors.New("field count mismatch")

// Feature is one id:value pair of a reformatted record.
type Feature struct {
	ID    string
	Value string
}

// Record is a reformatted record: a label followed by sparse id:value pairs.
type Record struct {
	Label    string
	Features []Feature
}

// Pairs joins the features as "id:value" separated by single spaces.
func (r Record) Pairs() string {
	var b strings.Builder
	for i, f := range r.Features {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.ID)
		b.WriteByte(':')
		b.WriteString(f.Value)
	}
	return b.String()
}

// String renders the record as "label\tid:value ...\n".
func (r Record) String() string {
	return r.Label + "\t" + r.Pairs() + "\n"
}

// Reformatter converts tab-separated input lines into Records. The schema is
// taken from the first line it formats and reused for every later line.
type Reformatter struct {
	// Strict makes Format fail when a line's value count differs from the schema.
	Strict bool

	schema *Schema
}

// NewReformatter returns a Reformatter whose schema is set by the first line.
func NewReformatter() *Reformatter {
	return &Reformatter{}
}

// NewReformatterWithSchema returns a Reformatter with an already frozen schema.
func NewReformatterWithSchema(s *Schema) *Reformatter {
	return &Reformatter{schema: s}
}

// Schema returns the frozen schema, or nil before the first line.
func (f *Reformatter) Schema() *Schema {
	return f.schema
}

// Format parses one input line. The trailing "\n" (or "\r\n") is dropped before
// splitting; a line without a terminator keeps all of its content.
func (f *Reformatter) Format(line string) (Record, error) {
	return f.format(line, f.Strict)
}

// FormatLine returns the reformatted line, including its trailing newline.
// Malformed lines degrade silently regardless of Strict.
func (f *Reformatter) FormatLine(line string) string {
	rec, _ := f.format(line, false)
	return rec.String()
}

func (f *Reformatter) format(line string, strict bool) (Record, error) {
	row := strings.Split(trimNewline(line), "\t")
	label, values := row[0], row[1:]

	if f.schema == nil {
		f.schema = NewSchema(len(values))
	}
	if strict && len(values) != f.schema.Len() {
		return Record{}, fmt.Errorf("%w: want %d values, got %d", ErrFieldCount, f.schema.Len(), len(values))
	}

	n := min(len(values), f.schema.Len())
	rec := Record{Label: label, Features: make([]Feature, n)}
	for i := range n {
		rec.Features[i] = Feature{ID: f.schema.FieldIDs[i], Value: values[i]}
	}
	return rec, nil
}

func trimNewline(line string) string {
	if s, ok := strings.CutSuffix(line, "\n"); ok {
		return strings.TrimSuffix(s, "\r")
	}
	return line
}
