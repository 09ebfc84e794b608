// Package rtacxml parses RTAC configuration exports.
//
// RTAC export tools produce XML in several incompatible, undocumented
// shapes. This package recovers a device/point/tag-mapping model from
// them without assuming any schema:
//
//  1. Device shape: DNP-server device exports with nested tag lists.
//  2. TagList shape: standalone tag-list exports with no device.
//  3. Tag Processor shape: source->destination tag translation tables.
//  4. Generic fallback: best-effort point discovery for anything else.
//
// Classification is a one-time step (see Classify) and exactly one
// extractor runs per document. Only malformed XML is an error; missing
// fields degrade to empty strings and unrecognizable rows are silently
// skipped.
//
// The document is modeled as an explicit recursive Node tree (tag name,
// attributes, ordered children) rather than struct decoding, so that
// elements like Row, Setting, SettingPage, TagList and Device behave
// identically whether they occur once or many times. Trees built by the
// decoder are acyclic by construction; traversal does not guard against
// revisits.
package rtacxml
