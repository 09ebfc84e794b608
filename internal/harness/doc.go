// Package harness provides a conformance testing framework for the
// RTAC parse and points-list pipeline.
//
// A scenario is a YAML file naming a set of RTAC export fixtures and a
// list of assertions over the generated per-device points lists. The
// harness runs the real pipeline end to end - batch resolution over the
// fixture files, then generation - so scenarios exercise exactly the
// code paths production uses.
//
// Scenarios complement the per-package unit tests: they pin down
// cross-file behavior (map-name inference, duplicate flagging across
// documents) in a form reviewable by people who know RTAC exports but
// not Go. Golden files lock down complete outputs for representative
// fixture sets.
package harness
