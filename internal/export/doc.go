// Package export renders a linked labeling config as a YAML or JSON document
// for review. The document lists controls with their resolved objects and
// labels, objects with their data bindings, the embedded example and any
// parse or link diagnostics.
package export
