package youtube

import (
	"errors"
	"testing"
)

func TestParseVideoID(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":                     "dQw4w9WgXcQ",
		"http://youtube.com/watch?v=dQw4w9WgXcQ&t=30":                     "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ":                                    "dQw4w9WgXcQ",
		"www.youtube.com/embed/dQw4w9WgXcQ":                               "dQw4w9WgXcQ",
		"https://www.youtube-nocookie.com/v/dQw4w9WgXcQ":                  "dQw4w9WgXcQ",
		"https://www.youtube.com/attribution_link?u=/watch?v=a-b_c=DEFG1": "a-b_c=DEFG1",
		"  https://youtu.be/dQw4w9WgXcQ  ":                                "dQw4w9WgXcQ",
	}
	for raw, want := range cases {
		got, err := ParseVideoID(raw)
		if err != nil {
			t.Fatalf("ParseVideoID(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseVideoID(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestParseVideoIDRejectsOtherURLs(t *testing.T) {
	for _, raw := range []string{
		"",
		"dQw4w9WgXcQ",
		"https://vimeo.com/123456789012",
		"https://www.youtube.com/watch?v=short",
	} {
		if _, err := ParseVideoID(raw); !errors.Is(err, ErrInvalidURL) {
			t.Fatalf("ParseVideoID(%q) error = %v, want ErrInvalidURL", raw, err)
		}
	}
}

func TestURLHelpers(t *testing.T) {
	if got := VideoURL("abc"); got != "https://www.youtube.com/watch?v=abc" {
		t.Fatalf("VideoURL = %q", got)
	}
	if got := PlaylistURL("PL1"); got != "https://www.youtube.com/playlist?list=PL1" {
		t.Fatalf("PlaylistURL = %q", got)
	}
}

func TestParseLicense(t *testing.T) {
	if info := ParseLicense(""); info.Name != "License not available" || info.CreativeCommons {
		t.Fatalf("empty license = %+v", info)
	}
	info := ParseLicense("Creative Commons Attribution license (reuse allowed)")
	if !info.CreativeCommons {
		t.Fatalf("expected creative commons, got %+v", info)
	}
	if info := ParseLicense("Standard YouTube License"); info.CreativeCommons || info.Name != "Standard YouTube License" {
		t.Fatalf("standard license = %+v", info)
	}
}
