// Package model defines the immutable structural model extracted from one
// source unit: declared items, their members and documentation, and the
// relationships inferred between them. The model is built once per run and
// never mutated afterwards; the diagram renderer and the document assembler
// both consume the same instance, so the two outputs cannot drift apart.
package model
