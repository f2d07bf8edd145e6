package swcodec

// vp8KeyframeSize parses a VP8 frame's uncompressed header (RFC 6386 §9.1)
// to discover coded width/height. Only key frames carry geometry; inter
// frames return ok=false and the decoder keeps the last known size.
func vp8KeyframeSize(payload []byte) (width, height int, ok bool) {
	if len(payload) < 10 {
		return 0, 0, false
	}
	if payload[0]&0x01 != 0 {
		return 0, 0, false // inter frame
	}
	if payload[3] != 0x9d || payload[4] != 0x01 || payload[5] != 0x2a {
		return 0, 0, false // missing start code, not a valid key frame
	}
	widthWord := int(payload[6]) | int(payload[7])<<8
	heightWord := int(payload[8]) | int(payload[9])<<8
	width = widthWord & 0x3fff
	height = heightWord & 0x3fff
	if width == 0 || height == 0 {
		return 0, 0, false
	}
	return width, height, true
}
