package colour

import "testing"

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "zero padded", rgb: RGB{R: 0, G: 10, B: 255}, want: "#000aff"},
		{name: "black", rgb: RGB{}, want: "#000000"},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: "#ffffff"},
		{name: "lowercase", rgb: RGB{R: 0xe5, G: 0x3b, B: 0x39}, want: "#e53b39"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", input: "#0f0f0f", want: RGB{R: 15, G: 15, B: 15}},
		{name: "without hash", input: "e53b39", want: RGB{R: 229, G: 59, B: 57}},
		{name: "uppercase", input: "#4EB3EC", want: RGB{R: 78, G: 179, B: 236}},
		{name: "too short", input: "#fff", wantErr: true},
		{name: "too long", input: "#1234567", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "non hex", input: "#12345g", wantErr: true},
		{name: "embedded space", input: "#12 456", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseHex(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		rgb := RGB{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2)}
		got, err := ParseHex(rgb.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%s) unexpected error: %v", rgb.Hex(), err)
		}
		if got != rgb {
			t.Fatalf("ParseHex(%s) = %v, want %v", rgb.Hex(), got, rgb)
		}
	}
}

func TestMustParseHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseHex() with malformed input should panic")
		}
	}()
	MustParseHex("nothex")
}

func TestRGBTextMarshalling(t *testing.T) {
	rgb := RGB{R: 0x98, G: 0x71, B: 0x00}
	text, err := rgb.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "#987100" {
		t.Errorf("MarshalText() = %s, want #987100", text)
	}

	var decoded RGB
	if err := decoded.UnmarshalText([]byte("#zzzzzz")); err == nil {
		t.Error("UnmarshalText() with invalid hex should return error")
	}
}
