package data

import (
	"fmt"
	"os"

	"github.com/grailbio/base/tsv"

	"sampleprep/pkg/dataprep"
)

// WriteRecords creates path and writes one "label\tid:value ..." line per record.
// The file is created (and truncated) even when records is empty.
func WriteRecords(path string, records []dataprep.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := tsv.NewWriter(f)
	for i, rec := range records {
		w.WriteString(rec.Label)
		w.WriteString(rec.Pairs())
		if err := w.EndLine(); err != nil {
			return fmt.Errorf("write record %d: %w", i+1, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
