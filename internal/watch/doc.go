// Package watch provides file-watching capabilities for addrbook's
// live-reload workflow. It monitors a book file for changes, debounces
// rapid events, and re-runs the format pipeline automatically, reporting
// entry-level changes between generations.
package watch
