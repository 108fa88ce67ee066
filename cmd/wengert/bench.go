package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/wengert-ml/wengert/autodiff"
)

func benchCmd() *cobra.Command {
	var nodes int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure tape recording and backward-pass throughput",
		Long: `Records a chain of binary multiply/add nodes, runs one backward
pass from the final node, and reports wall time per phase.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if nodes <= 0 {
				return errors.Errorf("bench: --nodes must be positive, got %d", nodes)
			}
			return runBench(nodes)
		},
	}
	cmd.Flags().IntVar(&nodes, "nodes", 1_000_000, "number of nodes to record")
	return cmd
}

func runBench(nodes int) error {
	klog.V(1).Infof("bench: recording %d nodes", nodes)
	tape := autodiff.NewTape()
	bar := progressbar.Default(int64(nodes), "recording")

	start := time.Now()
	v := tape.Var(1.0)
	x := tape.Var(1.0000001)
	for tape.Len() < nodes {
		// Alternate multiply and add so both partial slots stay busy.
		v = v.Mul(x)
		v = v.Add(x)
		_ = bar.Set(tape.Len())
	}
	recordTime := time.Since(start)
	_ = bar.Finish()

	if err := tape.Validate(); err != nil {
		return errors.Wrap(err, "bench: recorded tape failed validation")
	}

	start = time.Now()
	grad := v.Accumulate()
	backwardTime := time.Since(start)

	n := tape.Len()
	fmt.Printf("recorded  %d nodes in %v (%.0f nodes/s)\n",
		n, recordTime, float64(n)/recordTime.Seconds())
	fmt.Printf("backward  pass in %v (%.0f nodes/s)\n",
		backwardTime, float64(n)/backwardTime.Seconds())
	fmt.Printf("d(out)/dx = %g\n", grad.Wrt(x))
	return nil
}
