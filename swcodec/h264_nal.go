package swcodec

// findH264SPS scans an Annex-B (start-code delimited) access unit for a
// Sequence Parameter Set NAL unit and returns its RBSP payload (header
// byte stripped).
func findH264SPS(payload []byte) ([]byte, bool) {
	for _, nalu := range splitAnnexB(payload) {
		if len(nalu) == 0 {
			continue
		}
		if nalu[0]&0x1F == 7 { // NAL type 7 = SPS
			return nalu[1:], true
		}
	}
	return nil, false
}

// splitAnnexB splits a byte stream on 00 00 01 / 00 00 00 01 start codes.
func splitAnnexB(data []byte) [][]byte {
	var nalus [][]byte
	start := -1
	i := 0
	for i < len(data)-2 {
		if data[i] == 0 && data[i+1] == 0 && data[i+2] == 1 {
			if start >= 0 {
				nalus = append(nalus, trimTrailingZero(data[start:i]))
			}
			i += 3
			start = i
			continue
		}
		i++
	}
	if start >= 0 && start < len(data) {
		nalus = append(nalus, trimTrailingZero(data[start:]))
	}
	return nalus
}

func trimTrailingZero(nalu []byte) []byte {
	for len(nalu) > 0 && nalu[len(nalu)-1] == 0 {
		nalu = nalu[:len(nalu)-1]
	}
	return nalu
}
