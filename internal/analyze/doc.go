// Package analyze describes record types.
//
// At run time Describe extracts, and memoizes process-wide, the relevant
// fields and setter methods of a struct type through reflection.
//
// Statically, the Analyzer loads source packages with
// golang.org/x/tools/go/packages and builds a model of their named types and
// fixture tags for the check command.
//
// Key types:
//   - Descriptor: relevant fields and setters of a runtime type
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/map/external)
//   - FieldInfo: describes field name, type, tags, and embedding
package analyze
