// Package highlight renders caret underlines beneath regions of source text.
//
// Given a buffer and a [Span] of two [Position]s,
// [Arrows] prints every line the span touches
// with a row of '^' characters under the affected columns:
//
//	This is a test
//	          ^^^^
//
// Positions are usually produced by a lexer or parser.
// When only an offset or a line and column are known,
// a [LineIndex] builds the remaining fields.
// [Check] verifies that a pair of positions agrees with the buffer;
// [Arrows] itself trusts its input and never fails.
package highlight
