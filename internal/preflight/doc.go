// Package preflight provides readiness checks for the tools, paths and
// services ytchef depends on.
//
// The CLI "ytchef check" command renders RunAll. The build and sheet
// commands call RunAll too and stop before touching the network when a
// required check fails. Checks for optional features are only run when the
// feature is configured.
package preflight
