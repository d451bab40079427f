// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathlist defines the math data model: math codes, atoms, fields,
// styles, and the fixed inter-atom spacing table the translator consults.
package mathlist

import "github.com/texcore/texcore/box"

// MathCode is TeX's packed per-character math classification: position in
// font (bits 0-3), font family (bits 4-7), class (bits 8-11), plus flags
// above bit 11.
type MathCode uint16

func (c MathCode) Position() uint8 { return uint8(c & 0xF) }
func (c MathCode) Family() uint8   { return uint8((c >> 4) & 0xF) }
func (c MathCode) Class() AtomKind { return AtomKind((c >> 8) & 0xF) }

// AtomKind is the class of a math atom, used both to pick its layout rules
// and to index the inter-atom spacing table.
type AtomKind int

const (
	Ord AtomKind = iota
	Op
	Bin
	Rel
	Open
	Close
	Punct
	Inner
)

func (k AtomKind) String() string {
	switch k {
	case Ord:
		return "Ord"
	case Op:
		return "Op"
	case Bin:
		return "Bin"
	case Rel:
		return "Rel"
	case Open:
		return "Open"
	case Close:
		return "Close"
	case Punct:
		return "Punct"
	case Inner:
		return "Inner"
	default:
		return "Unknown"
	}
}

// MathStyle is one of TeX's four math layout styles.
type MathStyle int

const (
	Display MathStyle = iota
	Text
	Script
	ScriptScript
)

// IsScript reports whether style is one of the two script styles, which
// suppresses all but Thin-tagged inter-atom spacing.
func (s MathStyle) IsScript() bool {
	return s == Script || s == ScriptScript
}

// MathSymbol is a single math character: the input to pass 1 of the
// translator before it's turned into a box.Char.
type MathSymbol struct {
	Code MathCode
}

// MathField is a tagged union of what an atom's nucleus, subscript, or
// superscript can hold: a bare symbol, a nested math list, or an
// already-packaged box.
type MathField struct {
	Symbol *MathSymbol
	List   *List
	Box    *box.HBox
}

func (f MathField) IsEmpty() bool  { return f.Symbol == nil && f.List == nil && f.Box == nil }
func (f MathField) IsSymbol() bool { return f.Symbol != nil }
func (f MathField) IsList() bool   { return f.List != nil }
func (f MathField) IsBox() bool    { return f.Box != nil }

func SymbolField(s MathSymbol) MathField { return MathField{Symbol: &s} }
func ListField(l List) MathField         { return MathField{List: &l} }
func BoxField(b *box.HBox) MathField     { return MathField{Box: b} }

// MathAtom is one atom in a math list: a classified nucleus with optional
// sub/superscript fields.
type MathAtom struct {
	Kind    AtomKind
	Nucleus MathField
	Sub     MathField
	Sup     MathField
}

// Elem is one element of a math list: either an atom or a style change.
// Style changes carry no spacing of their own; they only update the
// translator's current style for subsequent atoms.
type Elem struct {
	Atom        *MathAtom
	StyleChange *MathStyle
}

func (e Elem) IsAtom() bool        { return e.Atom != nil }
func (e Elem) IsStyleChange() bool { return e.StyleChange != nil }

func AtomElem(a MathAtom) Elem        { return Elem{Atom: &a} }
func StyleChangeElem(s MathStyle) Elem { return Elem{StyleChange: &s} }

// List is a math list: the input to the translator.
type List []Elem
