//go:build windows

package utils

// caseInsensitiveGlob mirrors the host file system: Windows names compare without case.
const caseInsensitiveGlob = true
