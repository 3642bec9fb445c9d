// Package delay provides circular delay lines and a feedback echo built on
// top of them.
package delay
