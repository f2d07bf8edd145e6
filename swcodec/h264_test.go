package swcodec

// bitWriter is a test-only helper that encodes exponential-Golomb codes,
// the mirror image of bitReader, used to synthesize minimal SPS NALs for
// h264SPSSize tests without depending on a real encoder.
type bitWriter struct {
	bits []bool
}

func (w *bitWriter) writeBit(b uint) { w.bits = append(w.bits, b != 0) }

func (w *bitWriter) writeBits(v uint, n int) {
	for i := n - 1; i >= 0; i-- {
		w.writeBit((v >> uint(i)) & 1)
	}
}

func (w *bitWriter) writeUE(v uint) {
	k := v + 1
	lead := 0
	for uint(1)<<uint(lead+1) <= k {
		lead++
	}
	for i := 0; i < lead; i++ {
		w.writeBit(0)
	}
	w.writeBit(1)
	rem := k - uint(1)<<uint(lead)
	w.writeBits(rem, lead)
}

func (w *bitWriter) bytes() []byte {
	for len(w.bits)%8 != 0 {
		w.writeBit(0)
	}
	out := make([]byte, len(w.bits)/8)
	for i, b := range w.bits {
		if b {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

// buildH264SPS synthesizes a baseline-profile SPS RBSP (no extended
// profile fields, no scaling lists, pic_order_cnt_type 0, frame_mbs_only,
// no cropping) coding the given width/height.
func buildH264SPS(width, height int) []byte {
	w := &bitWriter{}
	w.writeBits(66, 8) // profile_idc: baseline
	w.writeBits(0, 8)  // constraint flags + reserved
	w.writeBits(30, 8) // level_idc
	w.writeUE(0)       // seq_parameter_set_id
	w.writeUE(0)       // log2_max_frame_num_minus4
	w.writeUE(0)       // pic_order_cnt_type
	w.writeUE(0)       // log2_max_pic_order_cnt_lsb_minus4
	w.writeUE(1)       // max_num_ref_frames
	w.writeBit(0)      // gaps_in_frame_num_value_allowed_flag
	w.writeUE(uint(width/16 - 1))
	w.writeUE(uint(height/16 - 1))
	w.writeBit(1) // frame_mbs_only_flag
	w.writeBit(1) // direct_8x8_inference_flag
	w.writeBit(0) // frame_cropping_flag
	return w.bytes()
}

// buildH264SPSNALAnnexB wraps an SPS RBSP in a NAL header and Annex-B
// start code.
func buildH264SPSNALAnnexB(width, height int) []byte {
	sps := buildH264SPS(width, height)
	out := []byte{0, 0, 0, 1, 0x67}
	out = append(out, sps...)
	return out
}
