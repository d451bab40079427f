// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package font

import (
	"github.com/texcore/texcore/sp"
	"github.com/texcore/texcore/texerr"
)

// StaticMetrics is a fixed, in-memory Metrics implementation: every
// character shares the same width/height/depth. It stands in for a real
// TFM-backed implementation in tests and in callers that don't need true
// per-glyph metrics.
type StaticMetrics struct {
	W, H, D    sp.SP
	Check      uint32
	Design     sp.SP
}

func (m StaticMetrics) Width(rune) sp.SP    { return m.W }
func (m StaticMetrics) Height(rune) sp.SP   { return m.H }
func (m StaticMetrics) Depth(rune) sp.SP    { return m.D }
func (m StaticMetrics) Checksum() uint32    { return m.Check }
func (m StaticMetrics) DesignSize() sp.SP   { return m.Design }

// MapLoader loads Metrics out of a fixed in-memory map, failing with
// FontNotFound for any name not present.
type MapLoader map[string]Metrics

func (l MapLoader) Load(name string) (Metrics, error) {
	m, ok := l[name]
	if !ok {
		return nil, texerr.New(texerr.FontNotFound, name)
	}
	return m, nil
}
