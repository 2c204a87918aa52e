// Package domain contains the core conversion model for fracto.
//
// The domain is presentation- and persistence-agnostic: it does not depend on
// the TUI, the CLI, or the filesystem. Everything here is a pure function from
// an input string (or Rational) to an output value; all arithmetic is
// arbitrary-precision via math/big, so no operation can overflow. The single
// deliberately approximate output is scientific notation (see format.go).
package domain
