// Package assets provides the embedded preview stylesheets and the editor
// page shell served by the HTTP frontend.
package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

// DefaultStyleName is the stylesheet used when none is configured.
const DefaultStyleName = "default"

// LoadStyle loads a CSS style from embedded assets by name.
// The name should not include the .css extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// EditorPage returns the embedded editor page HTML.
func EditorPage() string {
	content, err := templates.ReadFile("templates/editor.html")
	if err != nil {
		// The template is embedded at compile time; a missing file is a
		// packaging bug, not a runtime condition.
		panic("assets: embedded editor page missing: " + err.Error())
	}
	return string(content)
}
