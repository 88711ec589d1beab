//go:build mage

package main

import (
	"github.com/magefile/mage/sh"
)

// Build compiles the redub binary into the working directory.
func Build() error {
	return sh.RunV("go", "build", "-o", "redub", "./cmd/redub")
}

// Test runs all unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the whole module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the redub binary into GOBIN.
func Install() error {
	return sh.RunV("go", "install", "./cmd/redub")
}
