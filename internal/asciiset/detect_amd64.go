//go:build amd64

package asciiset

import "golang.org/x/sys/cpu"

// hasAVX2 reports whether the running CPU supports wide (256-bit) SIMD,
// which makes bulk operations like filling a 128-entry table cheap enough
// to do eagerly rather than defer.
var hasAVX2 = cpu.X86.HasAVX2
