// Package mapping parses and combines per-field metadata that steers how a
// field is manufactured.
//
// Metadata is declared in the "fixture" struct tag, given for constructor
// parameters at registration time, or supplied by a configuration file.
// Every source is parsed into the same FieldOverride value.
//
// # Tag grammar
//
// A tag body is a comma separated list of attributes. Values may be single
// quoted to contain commas; a doubled quote inside a quoted value stands for
// one quote.
//
//	type Order struct {
//	    ID       int64       `fixture:"num=42"`
//	    Total    int64       `fixture:"min=1,max=500"`
//	    Note     string      `fixture:"str='fragile, handle with care'"`
//	    Code     string      `fixture:"len=4"`
//	    Items    []OrderItem `fixture:"size=3"`
//	    Tags     []string    `fixture:"size=2,elem=tag"`
//	    Prices   map[string]float64 `fixture:"size=2,key=sku,value=price"`
//	    PostCode string      `fixture:"strategy=postCode"`
//	    cache    []byte      `fixture:"-"`
//	}
//
// # Attributes
//
//   - "-" or exclude: skip the field entirely
//   - num: exact numeric value, wins over min and max
//   - min, max: inclusive bounds for numeric values
//   - str: exact text value, wins over len
//   - len: length of generated strings
//   - size: number of container elements
//   - elem, key, value: strategy per container slot; empty means the declared type
//   - strategy: strategy producing the whole field
//   - comment: free text, ignored
//
// Values are kept as text; they are converted against the field type when
// the field is manufactured, which is where format errors surface.
package mapping
