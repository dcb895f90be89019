// Package dsl parses the per-file instance declaration language: a
// whitespace-tolerant sequence of `Identifier = Value` assignments with no
// statement terminator. A value is true/false, Vector3.new, CFrame.new,
// Color3.fromRGB, Color3.new, UDim2.new, Enum.Type.Item, a number, a
// quoted string, or a bare identifier, tried in that order.
//
// Parsing is a hand-rolled recursive-descent scan rather than a
// parser-combinator or config-language dependency — the grammar's
// disambiguation order (bare identifiers resolve to strings unless they
// are a recognized constructor or "true"/"false") does not map cleanly
// onto a general-purpose expression language.
package dsl
