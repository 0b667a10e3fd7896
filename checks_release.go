//go:build !covdebug

package parcover

const debugChecks = false
