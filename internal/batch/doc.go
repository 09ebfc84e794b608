// Package batch aggregates RTAC parses across a directory of export
// files.
//
// Export sets split a station across many files: device exports declare
// the DNP server maps, while standalone tag-list exports carry points
// with no device attribution. The resolver runs two passes so the
// second one can infer map names for those orphaned points from the
// complete set collected by the first. Per-file failures are logged and
// skipped; a bad file never aborts the batch.
package batch
