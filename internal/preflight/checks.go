// Package preflight verifies the local environment before builds and
// deploys: SDK presence, toolchain binaries, and directory access.
package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"garmindev/internal/config"
	"garmindev/internal/sdk"
)

// Result is the outcome of one check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckSDK verifies that a Connect IQ SDK can be located.
func CheckSDK(cfg *config.Config) Result {
	const name = "Connect IQ SDK"
	found, err := sdk.Discover(cfg.SDK.Root)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: found.Root}
}

// CheckDirectoryAccess verifies that the directory exists and is
// readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckAll evaluates every environment requirement for the given
// config. Both doctor and the build/deploy commands use this list.
func CheckAll(cfg *config.Config) []Result {
	results := []Result{CheckSDK(cfg)}

	requirements := []Requirement{
		{Name: "monkeyc", Command: toolchainCommand(cfg, cfg.MonkeycBinary()), Description: "Required for compilation"},
		{Name: "monkeydo", Command: toolchainCommand(cfg, cfg.MonkeydoBinary()), Description: "Required for deployment"},
	}
	for _, status := range CheckBinaries(requirements) {
		results = append(results, Result{
			Name:   status.Name,
			Passed: status.Available,
			Detail: statusDetail(status),
		})
	}

	results = append(results,
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	)
	return results
}

// toolchainCommand prefers the discovered SDK bin path for a tool and
// falls back to PATH lookup by bare name.
func toolchainCommand(cfg *config.Config, name string) string {
	found, err := sdk.Discover(cfg.SDK.Root)
	if err != nil {
		return name
	}
	switch name {
	case cfg.MonkeycBinary():
		return found.Monkeyc()
	case cfg.MonkeydoBinary():
		return found.Monkeydo()
	default:
		return name
	}
}

func statusDetail(status Status) string {
	if status.Available {
		return status.Command
	}
	return status.Detail
}
