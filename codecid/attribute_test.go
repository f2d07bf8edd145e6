package codecid

import "testing"

func TestSetCodecUnknownNameLeavesAttributeUnchanged(t *testing.T) {
	var a Attribute
	if a.SetCodec("FOO", 90000, "profile-level-id=42e01f") {
		t.Fatal("expected false for unknown codec name")
	}
	if a != (Attribute{}) {
		t.Errorf("attribute mutated on unknown name: got %+v, want zero value", a)
	}
}

func TestSetCodecBindsVP8AndDefaultsPayloadID(t *testing.T) {
	var a Attribute
	if !a.SetCodec("vp8", 90000, "max-fr=30") {
		t.Fatal("expected true for known codec name")
	}
	if a.Codec != VP8 {
		t.Errorf("codec: got %v, want VP8", a.Codec)
	}
	if a.PayloadID != 97 {
		t.Errorf("payload id: got %d, want 97", a.PayloadID)
	}
	if a.Rate != 90000 {
		t.Errorf("rate: got %d, want 90000", a.Rate)
	}
	if a.Params != "max-fr=30" {
		t.Errorf("params: got %q, want %q", a.Params, "max-fr=30")
	}
}

func TestSetCodecCaseInsensitive(t *testing.T) {
	var a Attribute
	if !a.SetCodec("VP8", 90000, "") {
		t.Fatal("expected true for uppercase codec name")
	}
	if a.Codec != VP8 {
		t.Errorf("codec: got %v, want VP8", a.Codec)
	}
}

func TestSetPayloadIDOverridesDefault(t *testing.T) {
	var a Attribute
	a.SetPayloadID(96)
	if !a.SetCodec("vp8", 90000, "") {
		t.Fatal("expected true for known codec name")
	}
	if a.PayloadID != 96 {
		t.Errorf("payload id: got %d, want 96 (explicit assignment must survive SetCodec)", a.PayloadID)
	}
}

func TestSetPayloadIDAfterSetCodecOverrides(t *testing.T) {
	var a Attribute
	a.SetCodec("opus", 48000, "")
	if a.PayloadID != 111 {
		t.Fatalf("payload id: got %d, want 111 before explicit override", a.PayloadID)
	}
	a.SetPayloadID(110)
	if a.PayloadID != 110 {
		t.Errorf("payload id: got %d, want 110 after explicit override", a.PayloadID)
	}
}
