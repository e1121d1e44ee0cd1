// Package config provides configuration structures and utilities for
// passwdgen: generation defaults, RNG test settings, report format
// selection, the optional .passwdgen YAML file, and XDG directory
// resolution.
package config
