package language

import (
	"errors"
	"testing"
)

func TestResolveTags(t *testing.T) {
	tests := []struct {
		key  string
		name string
		code string
	}{
		{"en", "English", "en"},
		{"EN", "English", "en"},
		{"es", "Spanish", "es"},
		{"ru", "Russian", "ru"},
		{"ar", "Arabic", "ar"},
		{"uk", "Ukrainian", "uk"},
		{"sw", "Swahili", "sw"},
		{"eng", "English", "en"},
	}
	for _, tt := range tests {
		lang, err := Resolve(tt.key)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.key, err)
		}
		if lang.Name != tt.name || lang.Code != tt.code {
			t.Fatalf("Resolve(%q) = %+v, want name %q code %q", tt.key, lang, tt.name, tt.code)
		}
		if lang.NativeName == "" {
			t.Fatalf("Resolve(%q) has no native name", tt.key)
		}
		if lang.IsUndetermined() {
			t.Fatalf("Resolve(%q) reported undetermined", tt.key)
		}
	}
}

func TestResolveNativeNames(t *testing.T) {
	if got := MustResolve("en").NativeName; got != "English" {
		t.Fatalf("native(en) = %q", got)
	}
	if got := MustResolve("es").NativeName; got != "español" {
		t.Fatalf("native(es) = %q", got)
	}
}

func TestResolveUndetermined(t *testing.T) {
	tests := map[string]Language{
		"Kachin":   {Name: "Kachin", Code: "und", NativeName: "ကချင်ဘာသာ"},
		"rohingya": {Name: "Rohingya", Code: "und", NativeName: "Ruáingga"},
		"Karenni":  {Name: "Karenni", Code: "und", NativeName: "Karenni"},
		"Karen":    {Name: "Karen", Code: "und", NativeName: "ကညီကျိ"},
	}
	for key, want := range tests {
		got, err := Resolve(key)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", key, err)
		}
		if got != want {
			t.Fatalf("Resolve(%q) = %+v, want %+v", key, got, want)
		}
		if !got.IsUndetermined() {
			t.Fatalf("Resolve(%q) should be undetermined", key)
		}
	}
}

func TestResolveEnglishName(t *testing.T) {
	lang, err := Resolve("Spanish")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if lang.Code != "es" {
		t.Fatalf("code = %q", lang.Code)
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, key := range []string{"", "  ", "klingonese", "und", "UND"} {
		if _, err := Resolve(key); !errors.Is(err, ErrUnknownLanguage) {
			t.Fatalf("Resolve(%q) error = %v, want ErrUnknownLanguage", key, err)
		}
	}
}
