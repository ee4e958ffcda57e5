package response

import (
	"github.com/cwbudde/algo-vecmath/cpu"
)

// VectorInfo reports the SIMD capability the vectorized magnitude path
// can use on this machine, e.g. "amd64/AVX2". Useful as metadata in
// measurement reports.
func VectorInfo() string {
	f := cpu.DetectFeatures()

	switch {
	case f.ForceGeneric:
		return f.Architecture + "/generic"
	case f.HasAVX2:
		return f.Architecture + "/AVX2"
	case f.HasSSE2:
		return f.Architecture + "/SSE2"
	case f.HasNEON:
		return f.Architecture + "/NEON"
	default:
		return f.Architecture + "/generic"
	}
}
