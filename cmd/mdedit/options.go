package main

import (
	"fmt"

	mdedit "github.com/Birphon/markdown-editor"
	"github.com/Birphon/markdown-editor/internal/config"
)

// loadConfig loads the named config or the defaults when none is given.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// serviceOptions merges config file values with preview flags (flags win)
// and builds the Service option list.
func serviceOptions(cfg *config.Config, preview *previewFlags) ([]mdedit.Option, error) {
	engine := cfg.Preview.Engine
	if preview.engine != "" {
		engine = preview.engine
	}
	parsed, err := mdedit.ParseEngine(engine)
	if err != nil {
		return nil, err
	}

	style := cfg.Preview.Style
	if preview.style != "" {
		style = preview.style
	}

	opts := []mdedit.Option{
		mdedit.WithEngine(parsed),
		mdedit.WithEscapeHTML(cfg.Preview.EscapeHTML || preview.escapeHTML),
	}
	if style != "" {
		opts = append(opts, mdedit.WithStyle(style))
	}
	return opts, nil
}

// pageSettings merges config file values with export flags (flags win).
func pageSettings(cfg *config.Config, f *exportFlags) (*mdedit.PageSettings, error) {
	page := mdedit.DefaultPageSettings()
	if cfg.PDF.Size != "" {
		page.Size = cfg.PDF.Size
	}
	if cfg.PDF.Orientation != "" {
		page.Orientation = cfg.PDF.Orientation
	}
	if cfg.PDF.Margin != 0 {
		page.Margin = cfg.PDF.Margin
	}

	if f.size != "" {
		page.Size = f.size
	}
	if f.orient != "" {
		page.Orientation = f.orient
	}
	if f.margin != 0 {
		page.Margin = f.margin
	}

	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("page settings: %w", err)
	}
	return page, nil
}
