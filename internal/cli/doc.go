// Package cli implements the revu command-line interface.
package cli
