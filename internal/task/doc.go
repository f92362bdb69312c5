// Package task defines the task, annotation, prediction and region shapes a
// labeling config validates, and decodes them from JSON.
//
// A task is {"data": {...}, "annotations": [...], "predictions": [...]}.
// Each annotation or prediction carries a "result" list of regions, and each
// region names the control (from_name) and object (to_name) it binds plus a
// control-type dependent "value" object.
package task
