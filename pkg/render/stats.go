package render

import "time"

// Stats summarizes a completed render. Trimmed from the teacher's
// adaptive-sampling-era RenderStats (TotalSamples/AverageSamples/
// MinSamples/MaxSamplesUsed do not apply here since every pixel takes
// exactly SamplesPerPixel samples; see spec.md §1's adaptive-sampling
// Non-goal).
type Stats struct {
	Elapsed    time.Duration
	RaysTraced uint64
}
