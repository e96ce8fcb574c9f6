// Package book parses plain-text label-to-address books and compiles them
// into sorted, checksummed, optionally pattern-filtered entries.
//
// A book line has the form "LABEL => ADDRESS". Entries are ordered by the
// last four characters of the raw address before any parsing happens, so a
// malformed line aborts compilation at an unpredictable point in the file.
package book
