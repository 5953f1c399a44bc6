package factory

import "github.com/davecgh/go-spew/spew"

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump renders a manufactured value for test failure messages and the
// debug log. Pointer addresses are left out, so two equal values render
// identically.
func Dump(v any) string {
	return dumper.Sdump(v)
}
