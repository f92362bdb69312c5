// Package tags models the elements of a labeling config.
//
// A labeling config is XML markup. Three element roles matter to the engine:
//
//   - Control tags declare an annotatable output (Choices, Labels,
//     RectangleLabels, TextArea, ...). They carry name and toName.
//   - Object tags declare a data source (Text, Image, Audio, ...). They carry
//     name and value, where value is usually a "$key" reference into task data.
//   - Label tags declare one permitted value (Label, Choice, Relation) under a
//     control.
//
// Everything else (View, Header, Style, ...) is layout and is ignored.
//
// Classify decides the role of a Node. The per-type rules (which keys a
// region value must carry, what example data an object produces) live in
// fixed tables keyed by the lower-cased tag name, so the set of known types
// is closed and known at compile time. Unknown control and object tag names
// are still classified and fall back to permissive generic rules.
package tags
