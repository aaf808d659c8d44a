package channel

import (
	"encoding/json"
	"fmt"

	"ytchef/internal/fileutil"
)

// WriteTree writes ch to path as indented JSON, replacing any previous tree.
func WriteTree(path string, ch *Channel) error {
	data, err := json.MarshalIndent(ch, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}
