package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"

	"sampleprep/pkg/data"
	"sampleprep/pkg/stats"
)

// ErrVerify is returned when the written partitions do not match the dataset.
var ErrVerify = errors.New("partition verification failed")

// Verify re-reads both partition files in outputDir and checks that their line
// counts match res and that together they hold exactly the records of the
// dataset, in any order.
func Verify(outputDir string, res *Result) error {
	var got stats.Fingerprint
	for _, part := range []struct {
		name string
		want int
	}{
		{TrainFile, res.Train},
		{ValidFile, res.Valid()},
	} {
		lines, err := data.LoadLines(filepath.Join(outputDir, part.name))
		if err != nil {
			return fmt.Errorf("verify %s: %w", part.name, err)
		}
		if len(lines) != part.want {
			return fmt.Errorf("%w: %s has %d lines, want %d", ErrVerify, part.name, len(lines), part.want)
		}
		got.Merge(stats.LinesFingerprint(lines))
	}
	if got != res.Fingerprint {
		return fmt.Errorf("%w: fingerprint %016x, want %016x", ErrVerify, got.Sum, res.Fingerprint.Sum)
	}
	return nil
}
