// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dvi implements the DVI command set and the stack-structured
// serializer that flattens a packaged box tree into a linear DVI opcode
// stream.
package dvi

import (
	"encoding/binary"
	"io"
)

// Opcode values from the DVI format this core emits.
const (
	opSetCharNBase = 0
	opSet1         = 128
	opPush         = 141
	opPop          = 142
	opBop          = 139
	opEop          = 140
	opRight4       = 146
	opDown4        = 160
	opFnt4         = 238
	opFntDef4      = 243
)

// Cmd is one DVI command. Exactly one field is set at a time, a
// tagged-variant struct in the style of box.HElem/VElem.
type Cmd struct {
	SetCharN *uint8
	Set1     *uint8
	Right4   *int32
	Down4    *int32
	Fnt4     *int32
	FntDef4  *FntDef4
	Push     bool
	Pop      bool
	Bop      *Bop
	Eop      bool
}

// FntDef4 defines a font and assigns it a number local to the DVI file.
type FntDef4 struct {
	FontNum    int32
	Checksum   uint32
	Scale      int32
	DesignSize int32
	Area       uint8
	FontName   string
}

// Bop begins a page. CS holds the ten \count register values; Pointer is
// the byte offset of the previous Bop, or -1 for the first page.
type Bop struct {
	CS      [10]int32
	Pointer int32
}

func setCharN(c uint8) Cmd { return Cmd{SetCharN: &c} }
func set1(c uint8) Cmd     { return Cmd{Set1: &c} }
func right4(n int32) Cmd   { return Cmd{Right4: &n} }
func down4(n int32) Cmd    { return Cmd{Down4: &n} }
func fnt4(n int32) Cmd     { return Cmd{Fnt4: &n} }

// charCmd picks SetCharN for codes below 128 and Set1 otherwise.
func charCmd(c uint8) Cmd {
	if c < 128 {
		return setCharN(c)
	}
	return set1(c)
}

// ByteSize is the DVI command's fixed on-the-wire size in bytes, per the
// encoding table.
func (c Cmd) ByteSize() int {
	switch {
	case c.SetCharN != nil:
		return 1
	case c.Set1 != nil:
		return 2
	case c.Right4 != nil:
		return 5
	case c.Down4 != nil:
		return 5
	case c.Fnt4 != nil:
		return 5
	case c.FntDef4 != nil:
		return 19 + len(c.FntDef4.FontName)
	case c.Push:
		return 1
	case c.Pop:
		return 1
	case c.Bop != nil:
		return 45
	case c.Eop:
		return 1
	default:
		return 0
	}
}

// WriteTo encodes c in DVI's big-endian wire format.
func (c Cmd) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, c.ByteSize())
	switch {
	case c.SetCharN != nil:
		buf = append(buf, opSetCharNBase+*c.SetCharN)
	case c.Set1 != nil:
		buf = append(buf, opSet1, *c.Set1)
	case c.Right4 != nil:
		buf = append(buf, opRight4)
		buf = binary.BigEndian.AppendUint32(buf, uint32(*c.Right4))
	case c.Down4 != nil:
		buf = append(buf, opDown4)
		buf = binary.BigEndian.AppendUint32(buf, uint32(*c.Down4))
	case c.Fnt4 != nil:
		buf = append(buf, opFnt4)
		buf = binary.BigEndian.AppendUint32(buf, uint32(*c.Fnt4))
	case c.FntDef4 != nil:
		d := c.FntDef4
		buf = append(buf, opFntDef4)
		buf = binary.BigEndian.AppendUint32(buf, uint32(d.FontNum))
		buf = binary.BigEndian.AppendUint32(buf, d.Checksum)
		buf = binary.BigEndian.AppendUint32(buf, uint32(d.Scale))
		buf = binary.BigEndian.AppendUint32(buf, uint32(d.DesignSize))
		buf = append(buf, d.Area, uint8(len(d.FontName)))
		buf = append(buf, d.FontName...)
	case c.Push:
		buf = append(buf, opPush)
	case c.Pop:
		buf = append(buf, opPop)
	case c.Bop != nil:
		buf = append(buf, opBop)
		for _, v := range c.Bop.CS {
			buf = binary.BigEndian.AppendUint32(buf, uint32(v))
		}
		buf = binary.BigEndian.AppendUint32(buf, uint32(c.Bop.Pointer))
	case c.Eop:
		buf = append(buf, opEop)
	}
	n, err := w.Write(buf)
	return int64(n), err
}
