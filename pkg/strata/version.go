// Package strata carries project-level metadata shared by the library and
// the CLI.
package strata

// Version is the current strata release. Overridden at build time via
// -ldflags "-X github.com/mesh-intelligence/strata/pkg/strata.Version=...".
var Version = "0.1.0-dev"
