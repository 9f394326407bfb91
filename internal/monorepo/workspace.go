package monorepo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const (
	lernaFile     = "lerna.json"
	rootManifest  = "package.json"
	pnpmWorkspace = "pnpm-workspace.yaml"
)

// ErrNoWorkspaces is returned when the root declares no workspace globs.
var ErrNoWorkspaces = errors.New("no workspace packages declared")

type lernaConfig struct {
	Packages      []string `json:"packages"`
	UseWorkspaces bool     `json:"useWorkspaces"`
}

type rootPackage struct {
	Workspaces json.RawMessage `json:"workspaces"`
}

type pnpmConfig struct {
	Packages []string `yaml:"packages"`
}

// readWorkspacePatterns returns the workspace globs declared at root and the
// file they were read from. lerna.json wins unless it defers to workspaces,
// then package.json, then pnpm-workspace.yaml.
func readWorkspacePatterns(root string) ([]string, string, error) {
	var lerna lernaConfig
	found, err := readJSON(filepath.Join(root, lernaFile), &lerna)
	if err != nil {
		return nil, "", err
	}
	if found && !lerna.UseWorkspaces && len(lerna.Packages) > 0 {
		return lerna.Packages, lernaFile, nil
	}

	var pkg rootPackage
	found, err = readJSON(filepath.Join(root, rootManifest), &pkg)
	if err != nil {
		return nil, "", err
	}
	if found && len(pkg.Workspaces) > 0 {
		patterns, err := decodeWorkspaces(pkg.Workspaces)
		if err != nil {
			return nil, "", fmt.Errorf("parsing %s workspaces: %w", rootManifest, err)
		}
		if len(patterns) > 0 {
			return patterns, rootManifest, nil
		}
	}

	data, err := os.ReadFile(filepath.Join(root, pnpmWorkspace))
	switch {
	case err == nil:
		var pnpm pnpmConfig
		if err := yaml.Unmarshal(data, &pnpm); err != nil {
			return nil, "", fmt.Errorf("parsing %s: %w", pnpmWorkspace, err)
		}
		if len(pnpm.Packages) > 0 {
			return pnpm.Packages, pnpmWorkspace, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, "", fmt.Errorf("reading %s: %w", pnpmWorkspace, err)
	}

	return nil, "", fmt.Errorf("%s: %w", root, ErrNoWorkspaces)
}

// decodeWorkspaces accepts both the array form and the yarn object form
// ({"packages": [...]}) of the workspaces field.
func decodeWorkspaces(raw json.RawMessage) ([]string, error) {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var obj struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	return obj.Packages, nil
}

// readJSON decodes path into v. A missing file reports found=false.
func readJSON(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parsing %s: %w", path, err)
	}
	return true, nil
}
