//go:build !windows

package utils

const caseInsensitiveGlob = false
