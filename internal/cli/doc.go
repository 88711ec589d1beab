// Package cli defines the command-line interface: flag parsing, viper
// configuration loading and API key lookup.
package cli
