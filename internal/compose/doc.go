// Package compose models the Docker Compose manifest the installer
// writes into the install directory.
//
// The manifest is a typed structure serialized through yaml.v3 rather
// than assembled from string templates, so paths and tokens containing
// YAML-significant characters are quoted correctly. The file is fully
// regenerated on every run; it is never merged with a previous version.
package compose
