package codecid

// Attribute binds an RTP payload type number to a codec and its
// rate/params. It does not parse or emit SDP; it only answers whether a
// codec name is one this pipeline can route to a Decoder.
type Attribute struct {
	PayloadID int
	Codec     ID
	Rate      int
	Params    string
	assigned  bool // true once a payload id has been explicitly set
}

// SetPayloadID records an explicitly assigned payload type, overriding the
// reference default that SetCodec would otherwise apply.
func (a *Attribute) SetPayloadID(id int) {
	a.PayloadID = id
	a.assigned = true
}

// SetCodec binds the attribute to a codec by name (case-insensitive). On an
// unknown name it returns false and leaves the attribute unchanged. On
// success it sets Codec, Rate, and Params, and defaults PayloadID to the
// codec's reference value when no payload id has been explicitly assigned.
func (a *Attribute) SetCodec(name string, rate int, params string) bool {
	id, ok := Parse(name)
	if !ok {
		return false
	}
	a.Codec = id
	a.Rate = rate
	a.Params = params
	if !a.assigned {
		a.PayloadID = DefaultPayloadID(id)
	}
	return true
}
