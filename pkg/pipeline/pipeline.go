package pipeline

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/golang/glog"

	"sampleprep/pkg/data"
	"sampleprep/pkg/dataprep"
	"sampleprep/pkg/loader"
	"sampleprep/pkg/stats"
)

const (
	// TrainRatio is the share of records written to the train partition.
	TrainRatio = 0.9

	TrainFile = "train_sample"
	ValidFile = "valid_sample"
)

// Options tunes a run. The zero value reproduces the plain reformat-and-split.
type Options struct {
	// Rand drives the shuffle. Nil means a generator seeded from the clock.
	Rand *rand.Rand
	// Strict fails the run on the first record whose value count differs from
	// the first record's.
	Strict bool
	// Verify re-reads both partitions after writing and checks them against
	// the in-memory dataset.
	Verify bool
	// PlotPath, when set, receives a label distribution chart.
	PlotPath string
}

// Result summarizes a completed run.
type Result struct {
	Total int
	Train int

	Schema      *dataprep.Schema
	TrainLabels map[string]int
	ValidLabels map[string]int
	Fingerprint stats.Fingerprint
}

// Valid is the number of records in the validation partition.
func (r *Result) Valid() int {
	return r.Total - r.Train
}

// Reformat converts every input line into a Record. The schema is frozen from
// the first line; in strict mode a later mismatch is reported with its 1-based
// line number.
func Reformat(lines []string, strict bool) ([]dataprep.Record, *dataprep.Schema, error) {
	f := dataprep.NewReformatter()
	f.Strict = strict
	records := make([]dataprep.Record, 0, len(lines))
	for i, l := range lines {
		rec, err := f.Format(l)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, f.Schema(), nil
}

// Run reads inputPath, reformats and shuffles its records, and writes the
// train and validation partitions into outputDir.
func Run(inputPath, outputDir string, opts Options) (*Result, error) {
	lines, err := data.LoadLines(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	glog.Infof("read %d lines from %s", len(lines), inputPath)

	records, schema, err := Reformat(lines, opts.Strict)
	if err != nil {
		return nil, err
	}
	if schema != nil {
		glog.Infof("schema: %d fields, slots %d..%d", schema.Len(), dataprep.FirstSlotID, schema.LastSlotID())
		if schema.LastSlotID() > dataprep.MaxSlotID {
			glog.Warningf("slot id %d exceeds %d; the trainer will reject these features", schema.LastSlotID(), dataprep.MaxSlotID)
		}
	}

	res := &Result{
		Total:       len(records),
		Schema:      schema,
		Fingerprint: stats.RecordsFingerprint(records),
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	train, valid := loader.TrainValidSplit(records, TrainRatio, rng)
	res.Train = len(train)
	res.TrainLabels = stats.LabelCounts(train)
	res.ValidLabels = stats.LabelCounts(valid)

	trainPath := filepath.Join(outputDir, TrainFile)
	if err := data.WriteRecords(trainPath, train); err != nil {
		return nil, fmt.Errorf("create %s: %w", TrainFile, err)
	}
	validPath := filepath.Join(outputDir, ValidFile)
	if err := data.WriteRecords(validPath, valid); err != nil {
		return nil, fmt.Errorf("create %s: %w", ValidFile, err)
	}
	glog.Infof("wrote %d records to %s and %d to %s", res.Train, trainPath, res.Valid(), validPath)

	if glog.V(1) {
		for _, l := range stats.Labels(res.TrainLabels, res.ValidLabels) {
			glog.Infof("label %q: train=%d valid=%d", l, res.TrainLabels[l], res.ValidLabels[l])
		}
	}

	if opts.Verify {
		if err := Verify(outputDir, res); err != nil {
			return nil, err
		}
		glog.Infof("verified %d records, fingerprint %016x", res.Fingerprint.Count, res.Fingerprint.Sum)
	}

	if opts.PlotPath != "" {
		if err := stats.PlotLabelDistribution(res.TrainLabels, res.ValidLabels, opts.PlotPath); err != nil {
			return nil, fmt.Errorf("plot: %w", err)
		}
		glog.Infof("saved label distribution plot to %s", opts.PlotPath)
	}
	return res, nil
}
