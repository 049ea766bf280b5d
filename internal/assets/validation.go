package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that could escape the asset directories.
// Names are bare identifiers: no path separators, no traversal, no null
// bytes, and not empty.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q contains path separator or null byte", ErrInvalidAssetName, name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q contains traversal", ErrInvalidAssetName, name)
	}
	return nil
}
