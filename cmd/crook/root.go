package main

import (
	"github.com/spf13/cobra"
)

var (
	memoryLimit int
	orderLimit  int
	verbose     bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "crook",
		Short:         "An experimental lossless file compressor using a PPM model and a range coder",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().IntVarP(&memoryLimit, "memory", "m", 128,
		"memory limit in MiB (must match between compress and decompress)")
	root.PersistentFlags().IntVarP(&orderLimit, "order", "O", 4,
		"maximum context length in bytes (must match between compress and decompress)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log progress while (de)compressing")

	root.AddCommand(newCompressCmd(), newDecompressCmd())
	return root
}
