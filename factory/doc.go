// Package factory manufactures fully populated values of arbitrary Go types
// for use as test fixtures.
//
//	m := factory.New(
//		factory.WithStrategy("email", strategy.Const("jane@example.com")),
//		factory.WithConstructor(NewOrder),
//	)
//	order, err := factory.Manufacture[Order](m)
//
// Primitives receive canned values: 42 for integers, 42.5 for floats, true,
// and the first letters of the alphabet for strings. Containers get one
// element unless configured otherwise. Records are built through a
// registered constructor, preferring a designated one and then the one with
// the most parameters; without a usable constructor the zero value is
// populated through its setters and exported fields. A type nesting itself
// is built once more and then left at its zero value.
//
// Fields are tuned with the fixture struct tag:
//
//	type Order struct {
//		ID     int64    `fixture:"num=1001"`
//		Items  []Item   `fixture:"size=3"`
//		Notes  []string `fixture:"size=2,elem=note"`
//		Secret string   `fixture:"-"`
//	}
//
// A Manufacturer is immutable after New and safe for concurrent use.
package factory
