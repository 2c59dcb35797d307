// Package pooltest holds the scenario and differential-fuzz harness shared
// by every pool strategy's tests. The oracle is a map-backed Reference
// pool; a strategy passes when its externally visible behavior is
// indistinguishable from the oracle's under the same operation sequence.
package pooltest
