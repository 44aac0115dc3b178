// Package uci implements the core.Composer and core.Parser pair for the
// Universal Chess Interface, the line-oriented text protocol spoken by most
// chess engines over standard input/output.
//
// Both sides are stateless: the composer renders one command into one wire
// line, the parser turns one line of engine output into one typed update.
// Supporting another engine dialect only requires a second composer/parser
// pair; process and state management stay untouched.
package uci
