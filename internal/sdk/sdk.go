// Package sdk locates Connect IQ SDK installations and plans monkeyc
// and monkeydo invocations for the build and deploy commands.
package sdk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound indicates no Connect IQ SDK installation could be located.
var ErrNotFound = errors.New("connect iq sdk not found")

// SDK is one discovered SDK installation.
type SDK struct {
	Root string
}

// Version derives the version label from the install directory name
// (e.g. "connectiq-sdk-lin-7.1.0" -> "7.1.0").
func (s *SDK) Version() string {
	base := filepath.Base(s.Root)
	if idx := strings.LastIndex(base, "-"); idx >= 0 && idx+1 < len(base) {
		return base[idx+1:]
	}
	return base
}

// Monkeyc returns the path to the SDK compiler.
func (s *SDK) Monkeyc() string {
	return filepath.Join(s.Root, "bin", "monkeyc")
}

// Monkeydo returns the path to the SDK deploy/run tool.
func (s *SDK) Monkeydo() string {
	return filepath.Join(s.Root, "bin", "monkeydo")
}

// conventionalRoots are the Sdks container directories checked during
// auto-discovery, most specific first.
func conventionalRoots() []string {
	var roots []string
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots,
			filepath.Join(home, ".Garmin", "ConnectIQ", "Sdks"),
			filepath.Join(home, "Library", "Application Support", "Garmin", "ConnectIQ", "Sdks"),
		)
	}
	roots = append(roots, "/opt/garmin-sdk", "/usr/local/garmin-sdk")
	return roots
}

// Discover returns the SDK to use. A configured root wins outright;
// otherwise the conventional install locations are scanned and the
// newest version directory (highest sorted name) is picked.
func Discover(configuredRoot string) (*SDK, error) {
	if root := strings.TrimSpace(configuredRoot); root != "" {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("configured sdk root %q: %w", root, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("configured sdk root %q is not a directory", root)
		}
		return &SDK{Root: root}, nil
	}

	for _, container := range conventionalRoots() {
		entries, err := os.ReadDir(container)
		if err != nil {
			continue
		}
		var versions []string
		for _, entry := range entries {
			if entry.IsDir() {
				versions = append(versions, entry.Name())
			}
		}
		if len(versions) == 0 {
			continue
		}
		sort.Strings(versions)
		return &SDK{Root: filepath.Join(container, versions[len(versions)-1])}, nil
	}

	return nil, ErrNotFound
}

// BuildPlan describes one monkeyc invocation.
type BuildPlan struct {
	Device   string
	Output   string
	Jungle   string
	Optimize bool
}

// Command returns the monkeyc argv for the plan.
func (s *SDK) Command(p BuildPlan) []string {
	args := []string{s.Monkeyc()}
	if p.Jungle != "" {
		args = append(args, "-f", p.Jungle)
	}
	if p.Device != "" {
		args = append(args, "-d", p.Device)
	}
	if p.Output != "" {
		args = append(args, "-o", p.Output)
	}
	if p.Optimize {
		args = append(args, "-O", "2")
	}
	return args
}

// DeployPlan describes one monkeydo invocation. Simulator targets the
// running sim, which monkeydo selects when no device argument is given.
type DeployPlan struct {
	Executable string
	Device     string
	Simulator  bool
}

// DeployCommand returns the monkeydo argv for the plan.
func (s *SDK) DeployCommand(p DeployPlan) []string {
	args := []string{s.Monkeydo(), p.Executable}
	if p.Simulator {
		return args
	}
	if p.Device != "" {
		args = append(args, p.Device)
	}
	return args
}
