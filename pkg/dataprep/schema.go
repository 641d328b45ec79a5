package dataprep

import "strconv"

// FirstSlotID is the identifier given to the first feature position.
const FirstSlotID = 101

// MaxSlotID is the largest slot id the downstream trainer accepts.
const MaxSlotID = 999

// Schema describes the structure of a dataset: one synthetic field id per
// feature position, fixed once the first record has been seen.
type Schema struct {
	FieldIDs []string
}

// NewSchema builds the ids 101, 102, ... for n feature positions.
func NewSchema(n int) *Schema {
	ids := make([]string, n)
	for i := range n {
		ids[i] = strconv.Itoa(FirstSlotID + i)
	}
	return &Schema{FieldIDs: ids}
}

// Len returns the number of feature positions.
func (s *Schema) Len() int {
	return len(s.FieldIDs)
}

// LastSlotID returns the numeric id of the last position, or 0 for an empty schema.
func (s *Schema) LastSlotID() int {
	if len(s.FieldIDs) == 0 {
		return 0
	}
	return FirstSlotID + len(s.FieldIDs) - 1
}
