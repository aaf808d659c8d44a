package youtube

import "strings"

const licenseNotAvailable = "License not available"

// LicenseInfo is the interpreted license string of a video.
type LicenseInfo struct {
	Name            string
	CreativeCommons bool
}

// ParseLicense interprets the license string recorded for a video.
func ParseLicense(raw string) LicenseInfo {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return LicenseInfo{Name: licenseNotAvailable}
	case strings.Contains(raw, "Creative Commons"):
		return LicenseInfo{Name: raw, CreativeCommons: true}
	default:
		return LicenseInfo{Name: raw}
	}
}
