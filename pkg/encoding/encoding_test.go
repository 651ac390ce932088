package encoding

import (
	"errors"
	"testing"
)

func TestDecodeUTF8StripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, "1,2,3"...)

	got, err := Decode(data, "")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != "1,2,3" {
		t.Errorf("expected BOM to be stripped, got %q", got)
	}
}

func TestEncodingRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"euc-kr", "프론테라\n게펜"},
		{"shift_jis", "東京\n大阪"},
		{"Windows-1252", "café\nnaïve"},
		{"latin1", "über"},
		{"utf-16", "a;b;c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Encode(tt.text, tt.name)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if tt.name != "utf-16" && string(encoded) == tt.text {
				t.Errorf("expected %s bytes to differ from UTF-8", tt.name)
			}

			decoded, err := Decode(encoded, tt.name)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if decoded != tt.text {
				t.Errorf("round trip: got %q, want %q", decoded, tt.text)
			}
		})
	}
}

func TestUnknownEncoding(t *testing.T) {
	_, err := Decode([]byte("x"), "klingon")
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("expected ErrUnknownEncoding, got %v", err)
	}
}
