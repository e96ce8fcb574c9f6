// Package output renders compiled books as JSON object blocks and provides
// pluggable output destinations.
//
// The block format is deliberately quirky: every entry line carries a
// trailing comma, including the last one, which makes the output invalid
// strict JSON whenever at least one entry is printed. Downstream consumers
// parse those exact bytes, so the quirk is the default and valid JSON is
// opt-in via [EncodeOptions.StrictJSON].
//
// Destinations implement the [Writer] interface; [StdoutWriter] and
// [FileWriter] cover the CLI's needs.
package output
