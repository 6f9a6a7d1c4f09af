package langcode

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "en"},
		{"   ", "en"},
		{"english", "en"},
		{"Russian", "ru"},
		{"URDU", "ur"},
		{"zh", "zh-CN"},
		{"zh-cn", "zh-CN"},
		{"zh-tw", "zh-TW"},
		{"Farsi", "fa"},
		{"Cyrillic", "ru"},
		{" ja ", "ja"},
		{"unknownxyz", "unknownxyz"},
		{"PT-BR", "pt-br"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("fr"); got != "French" {
		t.Errorf("DisplayName(fr) = %q, want French", got)
	}
	if got := DisplayName("unknown"); got != "unknown" {
		t.Errorf("DisplayName(unknown) = %q, want pass-through", got)
	}
}

func TestSupportedHasNoBareCodes(t *testing.T) {
	for _, name := range Supported() {
		if len(name) <= 3 {
			t.Errorf("Supported() contains short code %q", name)
		}
	}
}
