package testsupport

import (
	"testing"

	"ytchef/internal/config"
	"ytchef/internal/descriptions"
)

// WriteDescriptions writes the descriptions file at cfg.Paths.DescriptionsPath.
// A nil description is stored as JSON null.
func WriteDescriptions(t testing.TB, cfg *config.Config, byID map[string]*string) {
	t.Helper()

	entries := make(map[string]descriptions.Entry, len(byID))
	for id, desc := range byID {
		entries[id] = descriptions.Entry{Description: desc}
	}
	if err := descriptions.WriteFile(cfg.Paths.DescriptionsPath, entries); err != nil {
		t.Fatalf("write descriptions: %v", err)
	}
}

// Ptr returns a pointer to s.
func Ptr(s string) *string { return &s }
