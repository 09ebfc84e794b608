// Package scprofile renders parsed RTAC data as a CIM-compliant
// RDF/XML SCADA Configuration profile.
//
// Devices become cim:RemoteUnit instances and points become
// cim:Analog, cim:Discrete, cim:Accumulator or cim:Control
// measurements, each wired back to its RemoteUnit through a
// cim:RemoteSource (telemetry) or cim:RemoteControl (commands).
// RTAC-specific metadata that standard CIM has no slot for (DNP3
// address, protocol data type, tag name, source file) rides on
// ver: extension elements.
//
// Every rdf:ID is a v5 UUID derived from the substation name and the
// record's own identity, so regenerating a profile from the same
// export produces byte-identical output. The profile can declare
// dependencies on EQ and PE model URNs and link points to equipment
// mRIDs of the EQ profile through an explicit mapping.
package scprofile
