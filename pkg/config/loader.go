package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// candidates are the settings file names probed in a project root, in
// priority order.
var candidates = []string{
	".copypath",
	".copypath.json",
	".copypath.yaml",
	".copypath.yml",
	".copypath.hcl",
}

// Load loads a project settings file from the given path.
// The format is determined by the file extension:
// - .json for JSON
// - .yaml or .yml for YAML
// - .hcl for HCL
// - .copypath will try both YAML and HCL formats
func Load(ctx context.Context, path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), errors.Errorf("reading settings file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	base := filepath.Base(path)

	// For bare .copypath files, try both YAML and HCL
	if base == ".copypath" {
		settings, yamlErr := loadYAML(data)
		if yamlErr == nil {
			return settings, nil
		}

		settings, hclErr := loadHCL(data, path)
		if hclErr == nil {
			return settings, nil
		}

		return Default(), errors.Errorf("parsing .copypath as YAML or HCL: %w", hclErr)
	}

	switch ext {
	case ".json":
		return loadJSON(data)
	case ".yaml", ".yml":
		return loadYAML(data)
	case ".hcl":
		return loadHCL(data, path)
	default:
		return Default(), errors.Errorf("unsupported settings file extension %q", ext)
	}
}

// Discover finds and loads the project settings for a root directory.
// A missing settings file is not an error: the hardcoded defaults
// apply, mirroring an editor window with no project configuration.
func Discover(ctx context.Context, root string) (Settings, error) {
	for _, name := range candidates {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loading project settings")
		return Load(ctx, path)
	}

	zerolog.Ctx(ctx).Debug().Str("root", root).Msg("no project settings file, using defaults")
	return Default(), nil
}

// loadJSON loads settings from JSON data
func loadJSON(data []byte) (Settings, error) {
	var file File
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&file); err != nil {
		return Default(), errors.Errorf("parsing JSON: %w", err)
	}
	return file.Resolved(), nil
}

// loadYAML loads settings from YAML data
func loadYAML(data []byte) (Settings, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&file); err != nil {
		return Default(), errors.Errorf("parsing YAML: %w", err)
	}
	return file.Resolved(), nil
}

// loadHCL loads settings from HCL data
func loadHCL(data []byte, filename string) (Settings, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return Default(), errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// HCL schema: a settings block holding the copy-paths namespace,
	// with remain bodies so unrelated namespaces survive decoding.
	type hclCopyPaths struct {
		UseBrackets   *bool    `hcl:"c_family_includes_use_brackets,optional"`
		StripPrefixes []string `hcl:"c_family_includes_strip_prefixes,optional"`
		Remain        hcl.Body `hcl:",remain"`
	}
	type hclSettings struct {
		CopyPaths *hclCopyPaths `hcl:"copy-paths,block"`
		Remain    hcl.Body      `hcl:",remain"`
	}
	type hclRoot struct {
		Settings *hclSettings `hcl:"settings,block"`
		Remain   hcl.Body     `hcl:",remain"`
	}

	var root hclRoot
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
	if diags.HasErrors() {
		return Default(), errors.Errorf("decoding HCL: %s", diags.Error())
	}

	settings := Default()
	if root.Settings == nil || root.Settings.CopyPaths == nil {
		return settings, nil
	}
	if root.Settings.CopyPaths.UseBrackets != nil {
		settings.CFamilyIncludesUseBrackets = *root.Settings.CopyPaths.UseBrackets
	}
	settings.CFamilyIncludesStripPrefixes = root.Settings.CopyPaths.StripPrefixes

	return settings, nil
}
