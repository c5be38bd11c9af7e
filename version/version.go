// Package version provides the version of this program.
package version

// Version of po-coverage
const Version = "0.3.1"
