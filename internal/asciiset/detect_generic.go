//go:build !amd64

package asciiset

// hasAVX2 is always false off amd64: there is no feature probe to make,
// so the table always builds lazily.
var hasAVX2 = false
