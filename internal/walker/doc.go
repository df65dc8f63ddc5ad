// Package walker lists the reviewable units under a root path, applying the
// fixed extension allow-list and the configured exclude patterns. It is the
// traversal collaborator of the review session and does no scanning itself.
package walker
