// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathtranslate implements the two-pass math-list-to-horizontal-list
// translator: pass 1 normalizes every atom's nucleus down to a packaged
// box, pass 2 walks the normalized list inserting inter-atom spacing and
// flattening atoms into a horizontal list.
//
// Malformed input (a residual subscript/superscript, a nucleus that
// failed to normalize to a box) is reported as an explicit *texerr.Error
// rather than a panic.
package mathtranslate

import (
	"github.com/texcore/texcore/box"
	"github.com/texcore/texcore/mathlist"
	"github.com/texcore/texcore/texerr"
)

// ParserOps is the collaborator surface the translator needs from the
// parser/state layer, matching the interface named in the external
// interfaces section of the design: current-font lookup and horizontal box
// construction helpers.
type ParserOps interface {
	// CurrentFont returns the font a bare math symbol should be set in.
	CurrentFont() box.FontName
	// AddToNaturalLayoutHorizontalBox appends elem to hbox and recomputes
	// its natural dimensions.
	AddToNaturalLayoutHorizontalBox(hbox *box.HBox, elem box.HElem) *box.HBox
	// CombineHorizontalListIntoHorizontalBoxWithLayout packages list at its
	// natural width.
	CombineHorizontalListIntoHorizontalBoxWithLayout(list []box.HElem) *box.HBox
	// Skips returns the current math-skip glues pass 2 inserts between
	// atoms, so a caller's scoped assignments are honored instead of a
	// fixed package-level default.
	Skips() mathlist.Skips
}

// Translate converts list into a flat horizontal list, starting in
// startStyle. It fails with texerr.InvariantViolation if an atom still
// carries a subscript or superscript after pass 1: those remain
// unimplemented, exactly as in the grounding source.
func Translate(list mathlist.List, startStyle mathlist.MathStyle, ops ParserOps) ([]box.HElem, error) {
	normalized, err := normalize(list, startStyle, ops)
	if err != nil {
		return nil, err
	}
	return space(normalized, startStyle, ops.Skips())
}

// normalize is pass 1: rewrite every atom's nucleus to an absent value or a
// packaged box.HBox.
func normalize(list mathlist.List, startStyle mathlist.MathStyle, ops ParserOps) (mathlist.List, error) {
	out := make(mathlist.List, 0, len(list))
	currentStyle := startStyle

	for _, elem := range list {
		switch {
		case elem.IsStyleChange():
			currentStyle = *elem.StyleChange
			out = append(out, elem)

		case elem.IsAtom():
			atom := *elem.Atom
			switch {
			case atom.Nucleus.IsSymbol():
				charElem := box.CharElem(box.Char{
					Rune: rune(atom.Nucleus.Symbol.Code.Position()),
					Font: ops.CurrentFont(),
				})
				hbox := ops.AddToNaturalLayoutHorizontalBox(&box.HBox{}, charElem)
				atom.Nucleus = mathlist.BoxField(hbox)

			case atom.Nucleus.IsBox():
				// already a box; nothing to do.

			case atom.Nucleus.IsList():
				hlist, err := normalize(*atom.Nucleus.List, currentStyle, ops)
				if err != nil {
					return nil, err
				}
				helems, err := space(hlist, currentStyle, ops.Skips())
				if err != nil {
					return nil, err
				}
				hbox := ops.CombineHorizontalListIntoHorizontalBoxWithLayout(helems)
				atom.Nucleus = mathlist.BoxField(hbox)

			case atom.Nucleus.IsEmpty():
				// nothing to do.
			}

			if !atom.Sub.IsEmpty() || !atom.Sup.IsEmpty() {
				return nil, texerr.New(texerr.InvariantViolation, "unimplemented superscript/subscript")
			}

			out = append(out, mathlist.AtomElem(atom))

		default:
			return nil, texerr.New(texerr.InvariantViolation, "unimplemented math list element")
		}
	}
	return out, nil
}

// space is pass 2: walk the normalized list, inserting inter-atom spacing
// from the spacing table and flattening atoms into a horizontal list.
func space(list mathlist.List, startStyle mathlist.MathStyle, skips mathlist.Skips) ([]box.HElem, error) {
	var (
		result       []box.HElem
		haveLastKind bool
		lastKind     mathlist.AtomKind
		currentStyle = startStyle
	)

	for _, elem := range list {
		switch {
		case elem.IsStyleChange():
			currentStyle = *elem.StyleChange

		case elem.IsAtom():
			atom := *elem.Atom
			if !atom.Sub.IsEmpty() || !atom.Sup.IsEmpty() {
				return nil, texerr.New(texerr.InvariantViolation, "atoms should be sub/superscript free in second pass")
			}

			if haveLastKind {
				if skip, ok := mathlist.SkipFor(lastKind, atom.Kind, currentStyle, skips); ok {
					result = append(result, box.SkipElem(skip))
				}
			}

			switch {
			case atom.Nucleus.IsBox():
				result = append(result, box.BoxElem(atom.Nucleus.Box))
			case atom.Nucleus.IsEmpty():
				// no box to emit
			default:
				return nil, texerr.New(texerr.InvariantViolation, "atom nucleus should only be a box in second pass")
			}

			haveLastKind = true
			lastKind = atom.Kind

		default:
			return nil, texerr.New(texerr.InvariantViolation, "unimplemented math list element")
		}
	}
	return result, nil
}
