package packager

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/png"
	"os"
)

// icoHeaderSize is the ICONDIR header plus one ICONDIRENTRY
const icoHeaderSize = 6 + 16

// ConvertPNGToICO writes a single-image ICO file with the PNG data
// embedded as-is. Windows accepts PNG-compressed entries for icons up
// to 256 pixels, which keeps the conversion lossless.
func ConvertPNGToICO(pngPath, icoPath string) error {
	data, err := os.ReadFile(pngPath)
	if err != nil {
		return fmt.Errorf("failed to read icon %s: %w", pngPath, err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode icon %s: %w", pngPath, err)
	}
	if format != "png" {
		return fmt.Errorf("icon %s is %s, expected png", pngPath, format)
	}

	buf := new(bytes.Buffer)

	// ICONDIR
	binary.Write(buf, binary.LittleEndian, uint16(0)) // reserved
	binary.Write(buf, binary.LittleEndian, uint16(1)) // type: icon
	binary.Write(buf, binary.LittleEndian, uint16(1)) // image count

	// ICONDIRENTRY, width/height bytes use 0 for 256
	w, h := byte(cfg.Width), byte(cfg.Height)
	if cfg.Width >= 256 {
		w = 0
	}
	if cfg.Height >= 256 {
		h = 0
	}
	buf.WriteByte(w)
	buf.WriteByte(h)
	buf.WriteByte(0) // color palette
	buf.WriteByte(0) // reserved
	binary.Write(buf, binary.LittleEndian, uint16(0))             // planes
	binary.Write(buf, binary.LittleEndian, uint16(32))            // bits per pixel
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))     // data size
	binary.Write(buf, binary.LittleEndian, uint32(icoHeaderSize)) // data offset

	buf.Write(data)

	if err := os.WriteFile(icoPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", icoPath, err)
	}
	return nil
}
