// Package token defines lexical token kinds and trivia for the archdoc
// declaration grammar.
// Invariants:
//   - Token.Text is a copy of the original source slice.
//   - Token.Span matches Text exactly (Start..End).
//   - Doc comments (/// ...) are represented as leading Trivia (TriviaDocLine)
//     and never appear in the main token stream.
//   - Built-in type names (u32, String, bool, ...) are identifiers; the
//     extractor decides what resolves to a declared item.
package token
