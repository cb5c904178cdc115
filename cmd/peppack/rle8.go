package main

import (
	"encoding/binary"
	"image"
	"io"
)

// writeRLE8BMP writes paletted as a BI_RLE8-compressed Windows BMP. The
// bmp package only writes uncompressed BMPs, so the RLE8 path
// spec.md §6 calls out ("BMP / RLE8-BMP export") is hand-rolled here
// against the documented Microsoft RLE8 byte grammar: each encoded run is a
// (count, colorIndex) pair, a run is closed with 0x00 0x00 at end-of-line,
// and the bitmap ends with 0x00 0x01.
func writeRLE8BMP(w io.Writer, paletted *image.Paletted) error {
	bounds := paletted.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var rows [][]byte
	for y := height - 1; y >= 0; y-- {
		start := paletted.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		rows = append(rows, paletted.Pix[start:start+width])
	}

	var data []byte
	for _, row := range rows {
		data = append(data, encodeRLE8Row(row)...)
		data = append(data, 0x00, 0x00) // end of line
	}
	data = append(data, 0x00, 0x01) // end of bitmap

	palBytes := make([]byte, len(paletted.Palette)*4)
	for i, c := range paletted.Palette {
		r, g, b, _ := c.RGBA()
		palBytes[i*4+0] = byte(b >> 8)
		palBytes[i*4+1] = byte(g >> 8)
		palBytes[i*4+2] = byte(r >> 8)
		palBytes[i*4+3] = 0
	}

	const fileHeaderLen = 14
	const infoHeaderLen = 40
	pixOffset := uint32(fileHeaderLen + infoHeaderLen + len(palBytes))
	fileSize := pixOffset + uint32(len(data))

	fileHeader := make([]byte, fileHeaderLen)
	fileHeader[0], fileHeader[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(fileHeader[2:], fileSize)
	binary.LittleEndian.PutUint32(fileHeader[10:], pixOffset)

	infoHeader := make([]byte, infoHeaderLen)
	binary.LittleEndian.PutUint32(infoHeader[0:], infoHeaderLen)
	binary.LittleEndian.PutUint32(infoHeader[4:], uint32(width))
	binary.LittleEndian.PutUint32(infoHeader[8:], uint32(height))
	binary.LittleEndian.PutUint16(infoHeader[12:], 1)  // color planes
	binary.LittleEndian.PutUint16(infoHeader[14:], 8)   // bits per pixel
	binary.LittleEndian.PutUint32(infoHeader[16:], 1)   // BI_RLE8
	binary.LittleEndian.PutUint32(infoHeader[20:], uint32(len(data)))
	binary.LittleEndian.PutUint32(infoHeader[32:], uint32(len(paletted.Palette)))

	for _, chunk := range [][]byte{fileHeader, infoHeader, palBytes, data} {
		if _, err := w.Write(chunk); err != nil {
			return err
		}
	}
	return nil
}

// encodeRLE8Row run-length encodes a single row of palette indices using
// only encoded-mode runs (count, value) capped at 255 repeats each. This
// is always a valid RLE8 stream, just not maximally compact for rows with
// no repeated pixels.
func encodeRLE8Row(row []byte) []byte {
	var out []byte
	i := 0
	for i < len(row) {
		v := row[i]
		run := 1
		for i+run < len(row) && row[i+run] == v && run < 255 {
			run++
		}
		out = append(out, byte(run), v)
		i += run
	}
	return out
}
