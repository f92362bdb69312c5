// Package labelconfig parses a labeling config into a linked model and runs
// the checks that guard it.
//
// # Phases
//
// Parsing is permissive and validation is strict, and the two are separate
// steps:
//
//  1. Parse walks the markup once and classifies every element into control,
//     object and label maps. Duplicate names silently overwrite (last write
//     wins). A label without an owning control is dropped with a diagnostic.
//  2. Link resolves each control's toName targets against the object map and
//     attaches the control's labels. Unresolved targets are diagnostics, not
//     errors.
//  3. Validate (structural), ValidateRegion/ValidateTask (data), the
//     consistency checks (historical usage) and HasEssentialChange (revisions)
//     are invoked explicitly by the caller.
//
// A config may be edited incrementally and be temporarily inconsistent, so
// only step 3 fails with *ValidationError. Malformed markup fails step 1 with
// *SyntaxError.
//
// # Embedded example
//
// A config may embed an example task as a JSON comment:
//
//	<View>
//	  <Text name="t" value="$text"/>
//	  <!-- {"data": {"text": "Hello"}, "annotations": [...]} -->
//	</View>
//
// When neither "annotations" nor "predictions" is present and there is no
// "data" key, the whole JSON object is the task data.
//
// # Concurrency
//
// A LabelingConfig is never mutated after New returns. LoadTask returns an
// independent deep copy, so configs and task-bound copies may be shared
// between goroutines freely.
package labelconfig
