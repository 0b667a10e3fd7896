// Covbench benchmarks the parallel interval-cover solver against the
// serial greedy, with a per-phase breakdown of the parallel kernel.
//
// Usage:
//
//	covbench [flags] size [size ...]
//
// Each size is benchmarked over a number of runs; results are printed
// as a table and optionally appended to a CSV file.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/exascience/parcover"
)

var phaseNames = []string{"furthest", "link", "sample", "segments", "stitch", "rescan", "extract"}

type result struct {
	n       int
	runs    int
	workers int

	phases   map[string][]float64 // milliseconds, one entry per run
	parallel []float64
	serial   []float64
}

func main() {
	var (
		runs    int
		csvPath string
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:           "covbench size [size ...]",
		Short:         "benchmark the parallel interval-cover solver",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []result
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil || n < 1 {
					return fmt.Errorf("invalid problem size %q", arg)
				}
				results = append(results, bench(n, runs, seed))
			}

			render(results)
			if csvPath != "" {
				return appendCSV(csvPath, results)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&runs, "runs", 3, "runs per problem size")
	cmd.Flags().StringVar(&csvPath, "csv", "", "append results to this CSV file")
	cmd.Flags().Uint64Var(&seed, "seed", 42, "seed of the input generator")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// generate draws a monotone input with left steps in [1,10] and lengths
// in [5,20], clamped to keep the endpoints strictly increasing and the
// union gap free.
func generate(n int, seed uint64) (lefts, rights []int) {
	src := xrand.NewSource(seed)
	step := distuv.Uniform{Min: 1, Max: 11, Src: src}
	length := distuv.Uniform{Min: 5, Max: 21, Src: src}

	lefts = make([]int, n)
	rights = make([]int, n)
	for i := 1; i < n; i++ {
		lefts[i] = lefts[i-1] + int(step.Rand())
	}
	for i := 0; i < n; i++ {
		r := lefts[i] + int(length.Rand())
		if i+1 < n && r < lefts[i+1] {
			r = lefts[i+1]
		}
		if i > 0 && r <= rights[i-1] {
			r = rights[i-1] + 1
		}
		rights[i] = r
	}
	return
}

func bench(n, runs int, seed uint64) result {
	lefts, rights := generate(n, seed)
	left := func(i int) int { return lefts[i] }
	right := func(i int) int { return rights[i] }

	res := result{
		n:       n,
		runs:    runs,
		workers: runtime.GOMAXPROCS(0),
		phases:  make(map[string][]float64, len(phaseNames)),
	}

	for run := 0; run < runs; run++ {
		c := parcover.New(n, left, right)
		c.Observe = func(phase string, elapsed time.Duration) {
			res.phases[phase] = append(res.phases[phase], ms(elapsed))
		}
		start := time.Now()
		c.Run()
		res.parallel = append(res.parallel, ms(time.Since(start)))

		s := parcover.New(n, left, right)
		start = time.Now()
		s.RunSerial()
		res.serial = append(res.serial, ms(time.Since(start)))
	}
	return res
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

func render(results []result) {
	w := table.NewWriter()
	w.SetOutputMirror(os.Stdout)

	header := table.Row{"n", "workers", "runs"}
	for _, phase := range phaseNames {
		header = append(header, phase)
	}
	header = append(header, "total ms", "serial ms", "stddev", "speedup")
	w.AppendHeader(header)

	for _, res := range results {
		row := table.Row{humanize.Comma(int64(res.n)), res.workers, res.runs}
		for _, phase := range phaseNames {
			row = append(row, fmt.Sprintf("%.3f", stat.Mean(res.phases[phase], nil)))
		}
		total := stat.Mean(res.parallel, nil)
		serial := stat.Mean(res.serial, nil)
		row = append(row,
			fmt.Sprintf("%.3f", total),
			fmt.Sprintf("%.3f", serial),
			fmt.Sprintf("%.3f", stat.StdDev(res.parallel, nil)),
			fmt.Sprintf("%.2fx", serial/total))
		w.AppendRow(row)
	}
	w.Render()
}

func appendCSV(path string, results []result) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		header := []string{"n", "workers", "runs"}
		header = append(header, phaseNames...)
		header = append(header, "total_ms", "serial_ms")
		if err := w.Write(header); err != nil {
			return err
		}
	}

	for _, res := range results {
		row := []string{
			strconv.Itoa(res.n),
			strconv.Itoa(res.workers),
			strconv.Itoa(res.runs),
		}
		for _, phase := range phaseNames {
			row = append(row, fmt.Sprintf("%.3f", stat.Mean(res.phases[phase], nil)))
		}
		row = append(row,
			fmt.Sprintf("%.3f", stat.Mean(res.parallel, nil)),
			fmt.Sprintf("%.3f", stat.Mean(res.serial, nil)))
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
