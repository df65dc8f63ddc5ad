// Package config defines the typed review configuration with explicit
// defaults and YAML file overlay. The merged config is immutable for the
// life of a review session.
package config
