//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryName = "shabdsetu"

// Build compiles the shabdsetu binary into ./bin.
func Build() error {
	if err := os.MkdirAll("bin", 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", filepath.Join("bin", binaryName), "./cmd/"+binaryName)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Install builds and installs the binary into GOBIN.
func Install() error {
	mg.Deps(Check)
	return sh.RunV("go", "install", "./cmd/"+binaryName)
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("removing bin/")
	return os.RemoveAll("bin")
}
