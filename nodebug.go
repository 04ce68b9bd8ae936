//go:build !vect_debug

package vect

const debugChecks = false
