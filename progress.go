package crook

// Progress reports compression/decompression state. processed and total
// are byte counts of the uncompressed stream; memoryMiB is the model
// arena's current high-water mark. The core makes no UI decisions: it is
// up to the caller (see cmd/crook) to turn this into a progress bar, a
// log line, or nothing at all.
type Progress func(processed, total uint32, memoryMiB uint32)

// progressPeriod matches original_source/progress_bar.hpp's update
// cadence: call back roughly every 1<<18 processed bytes, plus always on
// the first and last byte.
const progressPeriod = 1 << 18

func (p Progress) report(processed, total, memoryMiB uint32) {
	if p == nil {
		return
	}
	if processed%progressPeriod == 0 || processed == total {
		p(processed, total, memoryMiB)
	}
}
