// Package main provides the wengert command line interface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

const version = "v0.1.0-dev"

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	root := &cobra.Command{
		Use:          "wengert",
		Short:        "Scalar reverse-mode automatic differentiation on a Wengert list",
		SilenceUsage: true,
	}
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	root.AddCommand(versionCmd(), benchCmd())

	if err := root.Execute(); err != nil {
		klog.Errorf("wengert: %v", err)
		klog.Flush()
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wengert %s\n", version)
		},
	}
}
