package swcodec

// h264SPSSize parses an H.264 Sequence Parameter Set NAL (payload only,
// without the NAL header byte) and returns the coded picture width and
// height in luma samples, after cropping. Only geometry is extracted,
// since that is all the software decoder needs to drive the
// format-change protocol.
func h264SPSSize(rbsp []byte) (width, height int, ok bool) {
	data := removeEmulationPrevention(rbsp)
	if len(data) < 4 {
		return 0, 0, false
	}
	br := newBitReader(data)

	profileIDC, err := br.readBits(8)
	if err != nil {
		return 0, 0, false
	}
	if _, err = br.readBits(8); err != nil { // constraint flags + reserved
		return 0, 0, false
	}
	if _, err = br.readBits(8); err != nil { // level_idc
		return 0, 0, false
	}
	if _, err = br.readUE(); err != nil { // seq_parameter_set_id
		return 0, 0, false
	}

	switch profileIDC {
	case 100, 110, 122, 244, 44, 83, 86, 118, 128, 138, 139, 134, 135:
		chromaFormatIDC, err := br.readUE()
		if err != nil {
			return 0, 0, false
		}
		if chromaFormatIDC == 3 {
			if _, err = br.readBits(1); err != nil { // separate_colour_plane_flag
				return 0, 0, false
			}
		}
		if _, err = br.readUE(); err != nil { // bit_depth_luma_minus8
			return 0, 0, false
		}
		if _, err = br.readUE(); err != nil { // bit_depth_chroma_minus8
			return 0, 0, false
		}
		if _, err = br.readBits(1); err != nil { // qpprime_y_zero_transform_bypass_flag
			return 0, 0, false
		}
		scalingPresent, err := br.readBits(1)
		if err != nil {
			return 0, 0, false
		}
		if scalingPresent != 0 {
			// Scaling-list parsing is not needed for geometry and this
			// reference decoder does not accept streams that use it.
			return 0, 0, false
		}
	}

	if _, err = br.readUE(); err != nil { // log2_max_frame_num_minus4
		return 0, 0, false
	}
	picOrderCntType, err := br.readUE()
	if err != nil {
		return 0, 0, false
	}
	switch picOrderCntType {
	case 0:
		if _, err = br.readUE(); err != nil { // log2_max_pic_order_cnt_lsb_minus4
			return 0, 0, false
		}
	case 1:
		if _, err = br.readBits(1); err != nil { // delta_pic_order_always_zero_flag
			return 0, 0, false
		}
		if _, err = br.readSE(); err != nil { // offset_for_non_ref_pic
			return 0, 0, false
		}
		if _, err = br.readSE(); err != nil { // offset_for_top_to_bottom_field
			return 0, 0, false
		}
		n, err := br.readUE() // num_ref_frames_in_pic_order_cnt_cycle
		if err != nil {
			return 0, 0, false
		}
		for i := uint(0); i < n; i++ {
			if _, err = br.readSE(); err != nil {
				return 0, 0, false
			}
		}
	}

	if _, err = br.readUE(); err != nil { // max_num_ref_frames
		return 0, 0, false
	}
	if _, err = br.readBits(1); err != nil { // gaps_in_frame_num_value_allowed_flag
		return 0, 0, false
	}
	widthInMbsMinus1, err := br.readUE()
	if err != nil {
		return 0, 0, false
	}
	heightInMapUnitsMinus1, err := br.readUE()
	if err != nil {
		return 0, 0, false
	}
	frameMbsOnly, err := br.readBits(1)
	if err != nil {
		return 0, 0, false
	}
	if frameMbsOnly == 0 {
		if _, err = br.readBits(1); err != nil { // mb_adaptive_frame_field_flag
			return 0, 0, false
		}
	}
	if _, err = br.readBits(1); err != nil { // direct_8x8_inference_flag
		return 0, 0, false
	}
	cropFlag, err := br.readBits(1)
	if err != nil {
		return 0, 0, false
	}
	var cropLeft, cropRight, cropTop, cropBottom uint
	if cropFlag != 0 {
		if cropLeft, err = br.readUE(); err != nil {
			return 0, 0, false
		}
		if cropRight, err = br.readUE(); err != nil {
			return 0, 0, false
		}
		if cropTop, err = br.readUE(); err != nil {
			return 0, 0, false
		}
		if cropBottom, err = br.readUE(); err != nil {
			return 0, 0, false
		}
	}

	w := (widthInMbsMinus1 + 1) * 16
	frameHeightInMbs := (2 - frameMbsOnly) * (heightInMapUnitsMinus1 + 1)
	h := frameHeightInMbs * 16

	cropUnitX := uint(2)
	cropUnitY := uint(2) * (2 - frameMbsOnly)
	w -= (cropLeft + cropRight) * cropUnitX
	h -= (cropTop + cropBottom) * cropUnitY

	return int(w), int(h), true
}

// readSE reads a signed exponential-Golomb code.
func (br *bitReader) readSE() (int, error) {
	code, err := br.readUE()
	if err != nil {
		return 0, err
	}
	if code%2 == 0 {
		return -int(code / 2), nil
	}
	return int((code + 1) / 2), nil
}
