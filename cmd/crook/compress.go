package main

import (
	"github.com/crookcomp/crook"
	"github.com/crookcomp/crook/internal/fastio"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compress <input> <output>",
		Short: "Compress a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(args[0], args[1])
		},
	}
}

func runCompress(inPath, outPath string) (err error) {
	opts := crook.Options{MemoryLimit: memoryLimit, OrderLimit: orderLimit}
	if err := opts.Validate(); err != nil {
		return err
	}

	src, err := fastio.OpenReader(inPath)
	if err != nil {
		return errors.Wrapf(err, "cannot open %q", inPath)
	}
	defer src.Close()

	dst, err := fastio.CreateWriter(outPath)
	if err != nil {
		return errors.Wrapf(err, "cannot create %q", outPath)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "cannot write %q", outPath)
		}
	}()

	logger := newLogger(verbose)
	defer logger.Sync() //nolint:errcheck

	bar := newProgressBar(logger, "compress", opts.MemoryLimit)
	err = crook.Compress(dst, src, opts, bar.Progress)
	return err
}
