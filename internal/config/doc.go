// Package config defines installer settings and provides helpers to load,
// validate and save them in YAML format.
//
// The settings file is optional; every field has a stock default so the
// installer works out of the box. The Config type covers the install root
// override, the symlink location, the automated-mode timeout and the
// privilege elevation command.
package config
