//go:build mage

// Package main provides build targets for the todo project using Mage.
//
// Usage:
//
//	mage build             Compile bin/todo
//	mage test:all          Run unit and integration tests
//	mage test:unit         Run package tests under internal/ and pkg/
//	mage test:integration  Build, then drive the binary from tests/integration
//	mage test:race         Run package tests with the race detector
//	mage test:cover        Write coverage.out and print per-function coverage
//	mage lint              Run go vet and golangci-lint
//	mage install           Install todo with go install
//	mage clean             Remove bin/ and coverage.out
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	goBin        = "go"
	binaryDir    = "bin"
	mainPkg      = "./cmd/todo"
	coverProfile = "coverage.out"
)

// Default is the target run by a bare `mage`.
var Default = Build

// unitPkgs are the packages with in-process tests.
var unitPkgs = []string{"./internal/...", "./pkg/..."}

// Test groups the test targets.
type Test mg.Namespace

// Build compiles the todo binary to bin/todo.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunWith(map[string]string{"CGO_ENABLED": "0"},
		goBin, "build", "-trimpath", "-o", filepath.Join(binaryDir, "todo"), mainPkg)
}

// All runs unit tests, then integration tests.
func (Test) All() {
	mg.SerialDeps(Test.Unit, Test.Integration)
}

// Unit runs package tests, excluding tests/integration.
func (Test) Unit() error {
	return goTest(unitPkgs...)
}

// Integration builds the binary and runs the end-to-end suite.
func (Test) Integration() error {
	mg.Deps(Build)
	return goTest("./tests/...")
}

// Race runs package tests with the race detector.
func (Test) Race() error {
	return goTest(append([]string{"-race"}, unitPkgs...)...)
}

// Cover writes a coverage profile for the package tests and prints it.
func (Test) Cover() error {
	if err := goTest(append([]string{"-coverprofile=" + coverProfile}, unitPkgs...)...); err != nil {
		return err
	}
	return sh.RunV(goBin, "tool", "cover", "-func="+coverProfile)
}

// Lint runs go vet and golangci-lint.
func Lint() error {
	if err := sh.RunV(goBin, "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Install installs todo into GOBIN.
func Install() error {
	return sh.RunV(goBin, "install", mainPkg)
}

// Clean removes build and coverage artifacts.
func Clean() error {
	for _, path := range []string{binaryDir, coverProfile} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

func goTest(args ...string) error {
	return sh.RunV(goBin, append([]string{"test"}, args...)...)
}
