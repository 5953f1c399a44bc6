// Package plan decides how a single value is manufactured.
//
// Determine inspects the requested type and the field override in a fixed
// order and the first matching rule wins:
//  1. an exact value fitting the type (num for numbers, str for text)
//  2. a named custom strategy
//  3. a canned primitive value, the empty interface included
//  4. a container: slice, fixed array or map
//  5. a pointer, filled through its element
//  6. a record: struct or interface, instantiated
//
// Channels, functions and unsafe pointers are unsupported.
package plan
