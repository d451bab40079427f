// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texcore/texcore/box"
	"github.com/texcore/texcore/font"
	"github.com/texcore/texcore/glue"
	"github.com/texcore/texcore/mathlist"
)

func testOracle(t *testing.T) *font.Oracle {
	t.Helper()
	o, err := font.NewOracle(font.MapLoader{
		"cmr10": font.StaticMetrics{W: 10, H: 7, D: 2},
	})
	require.NoError(t, err)
	return o
}

func TestPushPopScopeRestoresCurrentFont(t *testing.T) {
	s := New(testOracle(t))
	s.SetCurrentFont("cmr10")
	s.PushScope()
	s.SetCurrentFont("cmr7")
	assert.Equal(t, box.FontName("cmr7"), s.CurrentFont())
	s.PopScope()
	assert.Equal(t, box.FontName("cmr10"), s.CurrentFont())
}

func TestPopScopeOnEmptyStackIsNoop(t *testing.T) {
	s := New(testOracle(t))
	s.SetCurrentFont("cmr10")
	s.PopScope()
	assert.Equal(t, box.FontName("cmr10"), s.CurrentFont())
}

func TestAddToNaturalLayoutHorizontalBoxUsesOracleMetrics(t *testing.T) {
	s := New(testOracle(t))
	elem := box.CharElem(box.Char{Rune: 'a', Font: "cmr10"})
	hbox := s.AddToNaturalLayoutHorizontalBox(&box.HBox{}, elem)
	assert.Equal(t, int32(7), int32(hbox.Height))
	assert.Equal(t, int32(2), int32(hbox.Depth))
}

func TestDefaultSkips(t *testing.T) {
	s := New(testOracle(t))
	assert.NotZero(t, s.Skips().Thin.Space)
	assert.NotZero(t, s.Skips().Medium.Space)
	assert.NotZero(t, s.Skips().Thick.Space)
}

func TestSetSkipsOverridesDefault(t *testing.T) {
	s := New(testOracle(t))
	custom := mathlist.Skips{Thin: glue.Glue{Space: 1}}
	s.SetSkips(custom)
	assert.Equal(t, custom, s.Skips())
}
