package main

import (
	"time"

	"go.uber.org/zap"
)

// newLogger returns a no-op logger unless verbose logging was requested,
// matching original_source/progress_bar.hpp's behavior of only printing
// when the tool is actually driving a (de)compression.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// progressBar is the Go analogue of original_source/progress_bar.hpp's
// ProgressBar: it turns the core's Progress callback into periodic log
// lines instead of drawing bar characters to a terminal.
type progressBar struct {
	logger      *zap.Logger
	op          string
	memoryLimit int
	start       time.Time
}

func newProgressBar(logger *zap.Logger, op string, memoryLimit int) *progressBar {
	return &progressBar{logger: logger, op: op, memoryLimit: memoryLimit, start: time.Now()}
}

// Progress satisfies crook.Progress.
func (b *progressBar) Progress(processed, total, memoryMiB uint32) {
	var pct int
	if total > 0 {
		pct = int(uint64(processed) * 100 / uint64(total))
	}

	elapsed := time.Since(b.start).Seconds()
	var kib float64
	if elapsed > 0 {
		kib = float64(processed) / 1024 / elapsed
	}

	b.logger.Info(b.op,
		zap.Int("percent", pct),
		zap.Uint32("processed", processed),
		zap.Uint32("total", total),
		zap.Float64("kib_per_sec", kib),
		zap.Uint32("memory_mib", memoryMiB),
		zap.Int("memory_limit_mib", b.memoryLimit),
	)
}
