// Package match suggests known names for misspelled ones.
//
// Override files and tags refer to fields, types and strategies by name. When
// a name is unknown, Suggest ranks the known names by the Levenshtein
// similarity of their normalized forms, so "customer_id" finds "CustomerID".
package match
