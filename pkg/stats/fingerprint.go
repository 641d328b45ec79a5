package stats

import (
	farm "github.com/dgryski/go-farm"

	"sampleprep/pkg/dataprep"
)

// Fingerprint is an order-independent digest of a multiset of lines: the
// wrapping sum of their 64-bit farm fingerprints, plus the line count.
type Fingerprint struct {
	Count int
	Sum   uint64
}

// AddLine folds one rendered line (newline included) into the digest.
func (f *Fingerprint) AddLine(line string) {
	f.Count++
	f.Sum += farm.Fingerprint64([]byte(line))
}

// Merge folds other into f.
func (f *Fingerprint) Merge(other Fingerprint) {
	f.Count += other.Count
	f.Sum += other.Sum
}

// RecordsFingerprint digests records as they are written to disk.
func RecordsFingerprint(records []dataprep.Record) Fingerprint {
	var f Fingerprint
	for _, r := range records {
		f.AddLine(r.String())
	}
	return f
}

// LinesFingerprint digests lines read back from a file.
func LinesFingerprint(lines []string) Fingerprint {
	var f Fingerprint
	for _, l := range lines {
		f.AddLine(l)
	}
	return f
}
