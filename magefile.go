//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target
var Default = Build

// Build compiles the owsmerge binary
func Build() error {
	return sh.RunV("go", "build", "-o", "owsmerge", "./cmd/owsmerge")
}

// Test runs the whole test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs the binary into GOBIN
func Install() error {
	mg.Deps(Build)
	return sh.RunV("go", "install", "./cmd/owsmerge")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("owsmerge")
}
