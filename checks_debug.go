//go:build covdebug

package parcover

// Builds tagged covdebug validate the input contract on every Run and
// cross-check each parallel phase against its serial counterpart,
// panicking on any mismatch. The checks multiply the running time and
// exist for development only.
const debugChecks = true
