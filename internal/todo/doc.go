// Package todo loads, validates, and updates the task file.
//
// The task file (tasks.json) is a JSON array of tasks in insertion order:
//
//	[
//	  {
//	    "description": "Write report",
//	    "done": true
//	  },
//	  {
//	    "description": "Read book",
//	    "done": false
//	  }
//	]
//
// Tasks have no identifier. They are addressed by their 1-based position in
// the list, so a position is only meaningful against the list it was read
// from.
//
// # Loading
//
// Store.Load never fails. A missing file yields an empty list. An unreadable
// file, malformed JSON, or content that does not match the task-file schema
// also yields an empty list, and the problem is logged at warn level.
// Store.Read and Store.Validate report the same problems as errors for
// callers that want them.
//
// # Validation
//
// Content is checked against a JSON Schema (draft 2020-12). The schema is
// embedded in the binary; ValidationOptions.SchemaPath or WithSchemaPath
// replaces it with a file on disk.
//
// # File Format
//
// When writing task files, the package uses:
//   - 2-space indentation
//   - Trailing newline
//   - "[]" for an empty list
package todo
