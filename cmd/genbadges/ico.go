package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	icoHeaderSize = 6
	icoEntrySize  = 16
)

// encodeICO builds an ICO file from PNG-encoded square images
func encodeICO(sizes []int, pngs [][]byte) ([]byte, error) {
	if len(sizes) == 0 || len(sizes) != len(pngs) {
		return nil, fmt.Errorf("need one png per size, got %d sizes and %d pngs", len(sizes), len(pngs))
	}

	n := len(sizes)
	var buf bytes.Buffer
	// reserved, type (1 = icon), image count
	binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, uint16(n)})

	offset := uint32(icoHeaderSize + n*icoEntrySize)
	for i, size := range sizes {
		w := uint8(size)
		if size >= 256 {
			w = 0
		}
		buf.Write([]byte{w, w, 0, 0})                                 // width, height, palette, reserved
		binary.Write(&buf, binary.LittleEndian, uint16(1))            // colour planes
		binary.Write(&buf, binary.LittleEndian, uint16(32))           // bits per pixel
		binary.Write(&buf, binary.LittleEndian, uint32(len(pngs[i]))) // data size
		binary.Write(&buf, binary.LittleEndian, offset)               // data offset
		offset += uint32(len(pngs[i]))
	}

	for _, p := range pngs {
		buf.Write(p)
	}
	return buf.Bytes(), nil
}
