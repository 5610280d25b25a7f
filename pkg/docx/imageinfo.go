package docx

import (
	"encoding/binary"
)

// EMF files start with record type 1; placeable WMF files with the
// 0x9AC6CDD7 magic.
const wmfPlaceableMagic = 0x9AC6CDD7

// ProbeDimensions reads the pixel bounds from an EMF or placeable WMF
// header. Word stores vector media without a drawing extent more often
// than raster media, so this is a fallback for callers that want a size
// for every asset. Returns ok=false for anything that is not a
// recognizable EMF/WMF header.
func ProbeDimensions(data []byte) (width, height int, ok bool) {
	if len(data) > 24 && binary.LittleEndian.Uint32(data[0:4]) == 1 {
		left := int32(binary.LittleEndian.Uint32(data[8:12]))
		top := int32(binary.LittleEndian.Uint32(data[12:16]))
		right := int32(binary.LittleEndian.Uint32(data[16:20]))
		bottom := int32(binary.LittleEndian.Uint32(data[20:24]))
		return abs(int(right - left)), abs(int(bottom - top)), true
	}

	// The full magic's low word is 0xCDD7; some writers only get that
	// far, so the 16-bit check covers both.
	if len(data) > 18 && binary.LittleEndian.Uint16(data[0:2]) == wmfPlaceableMagic&0xFFFF {
		left := int16(binary.LittleEndian.Uint16(data[6:8]))
		top := int16(binary.LittleEndian.Uint16(data[8:10]))
		right := int16(binary.LittleEndian.Uint16(data[10:12]))
		bottom := int16(binary.LittleEndian.Uint16(data[12:14]))
		return abs(int(right - left)), abs(int(bottom - top)), true
	}

	return 0, 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
