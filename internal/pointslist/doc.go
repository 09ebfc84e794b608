// Package pointslist turns parsed RTAC data into per-device points
// lists.
//
// The generator joins tag mappings against extracted points, resolves
// the control/monitor direction of each mapping, deduplicates records,
// groups them by DNP server device, and sorts them for human
// consumption. Mappings that cannot be attributed to a device (no
// matching point record, or a record without a map name) are silently
// dropped; an RTAC export routinely contains internal logic tags with
// no SCADA-facing point.
//
// Output columns and the data-type table can be extended with a CUE
// profile (see Profile); the base type table always wins over profile
// entries.
package pointslist
