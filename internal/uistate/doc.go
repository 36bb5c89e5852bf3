// Package uistate defines the canonical UI-state document reconstructed
// from trace scans and the builder that assembles it.
//
// A Document is built once per capture and treated as immutable after
// Build returns; serializers project it without mutating it.
package uistate
