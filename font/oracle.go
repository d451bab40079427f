// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package font provides the metrics oracle: per-font character
// width/height/depth lookup plus a checksum, backed by a bounded LRU cache
// so a long-running serializer session doesn't grow a font map without
// bound.
package font

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/texcore/texcore/sp"
	"github.com/texcore/texcore/texerr"
)

// Metrics answers width/height/depth/checksum queries for one font.
type Metrics interface {
	Width(c rune) sp.SP
	Height(c rune) sp.SP
	Depth(c rune) sp.SP
	Checksum() uint32
	// DesignSize is the font's natural size. The DVI serializer does not
	// read it: its FntDef4 scale/design_size fields are always
	// sp.DesignSizeUnity.
	DesignSize() sp.SP
}

// Loader loads a font's metrics by name, typically from a TFM file. It is
// the sole I/O boundary of the metrics oracle; this package never reads
// files itself.
type Loader interface {
	Load(name string) (Metrics, error)
}

// DefaultCacheSize is the number of distinct fonts the Oracle caches before
// evicting the least recently used. It comfortably exceeds the number of
// fonts any single document switches between; eviction exists as a safety
// net for pathological inputs, not as steady-state behavior.
const DefaultCacheSize = 64

// Oracle caches Metrics by font name on top of a Loader.
type Oracle struct {
	loader Loader
	cache  *lru.Cache[string, Metrics]
}

// NewOracle constructs an Oracle with the default cache size.
func NewOracle(loader Loader) (*Oracle, error) {
	return NewOracleSize(loader, DefaultCacheSize)
}

// NewOracleSize constructs an Oracle with an explicit cache capacity.
func NewOracleSize(loader Loader, size int) (*Oracle, error) {
	cache, err := lru.New[string, Metrics](size)
	if err != nil {
		return nil, texerr.Wrap(texerr.InvariantViolation, "font: bad cache size", err)
	}
	return &Oracle{loader: loader, cache: cache}, nil
}

// Get returns the cached Metrics for name, loading it on first use.
func (o *Oracle) Get(name string) (Metrics, error) {
	if m, ok := o.cache.Get(name); ok {
		return m, nil
	}
	m, err := o.loader.Load(name)
	if err != nil {
		return nil, texerr.Wrap(texerr.FontNotFound, name, err)
	}
	o.cache.Add(name, m)
	return m, nil
}
