package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"sampleprep/pkg/pipeline"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// sampleprep [flags] <input_path> <output_dir>
//
// <input_path>  : tab-separated file, one "label\tv1\tv2..." record per line
// <output_dir>  : existing directory receiving train_sample and valid_sample
//
// --strict      : fail on a record whose value count differs from the first record
// --verify      : re-read both partitions and check them against the dataset
// --plot        : save a label distribution chart (png, svg or pdf by extension)
// -v            : glog verbosity; -v=1 logs per-label partition counts
//
// Example:
//   go run ./cmd/sampleprep --verify --plot labels.png data.tsv ./out
//
// ---------------------------------------------------------------------
//

var (
	strict   = flag.Bool("strict", false, "fail on inconsistent field counts")
	verify   = flag.Bool("verify", false, "verify written partitions")
	plotPath = flag.String("plot", "", "path of a label distribution chart")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <input_path> <output_dir>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	res, err := pipeline.Run(flag.Arg(0), flag.Arg(1), pipeline.Options{
		Strict:   *strict,
		Verify:   *verify,
		PlotPath: *plotPath,
	})
	if err != nil {
		glog.Exitf("sampleprep: %v", err)
	}
	fmt.Println(res.Total, res.Train)
}
