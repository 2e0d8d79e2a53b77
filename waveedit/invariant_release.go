//go:build !wavedebug

package waveedit

const debugInvariants = false
