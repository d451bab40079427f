// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package state implements the mutable typesetting state the parser
// threads through assignments and group boundaries: the current font, the
// three math-skip registers, and a scope stack for grouped assignments.
//
// It also implements mathtranslate.ParserOps, the minimal parser
// collaborator surface the math translator needs.
package state

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/texcore/texcore/box"
	"github.com/texcore/texcore/font"
	"github.com/texcore/texcore/mathlist"
	"github.com/texcore/texcore/sp"
)

// scope holds the assignments that should be undone when its group closes:
// the current font and the math-skip glues. More assignable registers can
// be added here as the parser grows without changing the stack discipline.
type scope struct {
	currentFont box.FontName
	skips       mathlist.Skips
}

// State is the scoped assignment store. Scopes form a strict stack,
// mirroring TeX's grouping: PushScope opens a group, PopScope restores the
// enclosing group's values.
type State struct {
	current box.FontName
	skips   mathlist.Skips
	oracle  *font.Oracle
	scopes  *arraystack.Stack
}

// New constructs a State with an empty scope stack, no current font, and
// the default math-skip glues, backed by oracle for character metrics.
func New(oracle *font.Oracle) *State {
	return &State{skips: mathlist.DefaultSkips(), oracle: oracle, scopes: arraystack.New()}
}

// SetSkips overrides the math-skip glues (the \thinmuskip/\mediummuskip/
// \thickmuskip equivalents) that Skips returns.
func (s *State) SetSkips(skips mathlist.Skips) { s.skips = skips }

// CurrentFont implements mathtranslate.ParserOps.
func (s *State) CurrentFont() box.FontName { return s.current }

// SetCurrentFont assigns the current font within the active scope.
func (s *State) SetCurrentFont(name box.FontName) { s.current = name }

// PushScope opens a new group, saving the current assignments so PopScope
// can restore them.
func (s *State) PushScope() {
	s.scopes.Push(scope{currentFont: s.current, skips: s.skips})
}

// PopScope closes the innermost group, restoring the assignments that were
// in effect when the matching PushScope ran. It is a no-op on an empty
// stack: closing more groups than were opened indicates a parser bug, not
// a state bug, so this layer stays silent and lets the caller's own
// group-balance check catch it.
func (s *State) PopScope() {
	v, ok := s.scopes.Pop()
	if !ok {
		return
	}
	sc := v.(scope)
	s.current = sc.currentFont
	s.skips = sc.skips
}

// AddToNaturalLayoutHorizontalBox implements mathtranslate.ParserOps: it
// appends elem and repackages at natural width, looking up character
// metrics through the oracle.
func (s *State) AddToNaturalLayoutHorizontalBox(hbox *box.HBox, elem box.HElem) *box.HBox {
	list := append(append([]box.HElem{}, hbox.List...), elem)
	return box.PackNatural(list, s.charWidth, s.charMetrics)
}

// CombineHorizontalListIntoHorizontalBoxWithLayout implements
// mathtranslate.ParserOps: it packages list at its natural width.
func (s *State) CombineHorizontalListIntoHorizontalBoxWithLayout(list []box.HElem) *box.HBox {
	return box.PackNatural(list, s.charWidth, s.charMetrics)
}

// Skips implements mathtranslate.ParserOps: it returns this state's
// current math-skip glues, so an override set through SetSkips is honored
// by the translator instead of a fixed package-level default.
func (s *State) Skips() mathlist.Skips { return s.skips }

func (s *State) charWidth(c box.Char) sp.SP {
	m, err := s.oracle.Get(string(c.Font))
	if err != nil {
		return 0
	}
	return m.Width(c.Rune)
}

func (s *State) charMetrics(c box.Char) (sp.SP, sp.SP) {
	m, err := s.oracle.Get(string(c.Font))
	if err != nil {
		return 0, 0
	}
	return m.Height(c.Rune), m.Depth(c.Rune)
}
