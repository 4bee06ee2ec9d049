// Package grammar defines the Moment Definition Language (MDL) text format
// and exposes a strict parser for it. The grammar is a PEG-style ordered
// choice over a closed set of occurrence rules: each rule is anchored by a
// literal keyword prefix, alternatives are tried in a fixed priority order
// and the first match wins. Parsing either produces a complete parse tree or
// fails with a single error; there is no recovering or partial parse.
//
// The parser is a single forward pass over the input. Alternatives are
// committed per line by their keyword prefix, so cost is linear in the input
// length even for adversarial documents.
package grammar
