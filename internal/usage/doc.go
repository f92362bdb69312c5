// Package usage holds the summaries of historical annotation data that a
// labeling config edit is checked against.
//
// The engine never stores these counts; a caller fetches them from wherever
// annotations live and hands them over in these shapes:
//
//   - LabelCounts: control name -> label value -> number of uses
//   - TupleCounts: "from_name|to_name|type" -> number of annotations
//
// Finalized annotations and drafts are counted separately and merged by
// summation before any check runs.
package usage
