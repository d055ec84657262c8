package recscan_test

import (
	"bytes"
	"os"

	"github.com/ljmsc/recscan"
)

func Example() {
	buff := bytes.Buffer{}
	if err := recscan.WriteTo(&buff, []recscan.Record{
		{Number: 10, Weight: 2.5},
		{Number: 20, Weight: 7.25},
	}); err != nil {
		panic(err)
	}

	records := recscan.LoadFrom(&buff)
	if err := recscan.Report(os.Stdout, recscan.FindMax(records)); err != nil {
		panic(err)
	}
	// Output: 207.25
}
