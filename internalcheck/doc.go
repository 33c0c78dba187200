// Package internalcheck holds source-level policy tests for the engine
// packages. It has no exported API and is not meant to be imported.
package internalcheck
