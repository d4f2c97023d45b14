package extract

import "github.com/fwojciec/wallparse"

// Field names the record field that receives routed text.
type Field int

// Field constants.
const (
	FieldNone Field = iota
	FieldProfile
	FieldDatetime
	FieldData
	FieldLikes

	fieldCount
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldProfile:
		return "profile"
	case FieldDatetime:
		return "datetime"
	case FieldData:
		return "data"
	case FieldLikes:
		return "likes"
	}
	return "none"
}

// OpenAction is the scope transition run when an element opens.
type OpenAction int

// OpenAction constants.
const (
	OpenNone OpenAction = iota
	OpenEntry
	OpenComments
	OpenComment
	OpenLink
	OpenNewline
)

// CloseAction is the scope transition run when an element closes.
type CloseAction int

// CloseAction constants.
const (
	CloseNone CloseAction = iota
	CloseEntry
	CloseComments
	CloseComment
)

// Binding is the meaning of one element/class combination.
type Binding struct {
	Open  OpenAction
	Text  Field
	Close CloseAction
}

// Resolution says how a Lookup was resolved.
type Resolution int

// Resolution constants.
const (
	// ResolvedClass means the class value was found in the table.
	ResolvedClass Resolution = iota

	// ResolvedUnclassed means the element carried no class attribute, or
	// its meaning does not depend on one.
	ResolvedUnclassed

	// ResolvedUnknownClass means the class value is not in the table.
	ResolvedUnknownClass

	// ResolvedTransparent means the element is known to carry no structure.
	ResolvedTransparent

	// ResolvedUnknownElement means the element name is not known at all.
	ResolvedUnknownElement
)

// Match is the result of a dispatch table lookup.
type Match struct {
	Binding

	// Scoped elements push a handler queue entry on open and pop it on close.
	Scoped bool

	Resolution Resolution

	// Class is the class attribute value used for the lookup, if any.
	Class string
}

type element struct {
	scoped bool

	// classes is nil for elements whose meaning ignores the class attribute.
	classes map[string]Binding

	// unclassed applies when there is no class attribute.
	unclassed Binding

	// strict elements report class values missing from classes.
	strict bool
}

var table = map[string]element{
	"div": {
		scoped: true,
		strict: true,
		classes: map[string]Binding{
			"feedentry":      {Open: OpenEntry, Text: FieldData, Close: CloseEntry},
			"comments":       {Open: OpenComments, Close: CloseComments},
			"comment":        {Open: OpenComment, Text: FieldData, Close: CloseComment},
			"comment like":   {Text: FieldLikes},
			"timerow":        {},
			"tabwall":        {},
			"downloadnotice": {},
		},
	},
	"span": {
		scoped: true,
		strict: true,
		classes: map[string]Binding{
			"profile": {Text: FieldProfile},
			"time":    {Text: FieldDatetime},
		},
	},
	"br":  {unclassed: Binding{Open: OpenNewline}},
	"img": {},
	"table": {
		classes: map[string]Binding{
			"walllink": {Open: OpenLink},
		},
	},
}

// transparent elements are expected in an export page but never carry
// structure; text inside them keeps flowing to the enclosing field.
var transparent = map[string]bool{
	"html": true, "head": true, "body": true, "title": true, "meta": true,
	"link": true, "style": true, "script": true,
	"a": true, "p": true, "b": true, "i": true, "u": true, "em": true, "strong": true,
	"small": true, "abbr": true, "label": true, "font": true, "hr": true,
	"h1": true, "h2": true, "h3": true, "h4": true,
	"ul": true, "ol": true, "li": true,
	"tbody": true, "thead": true, "tr": true, "td": true, "th": true,
}

// Lookup resolves an opening tag against the dispatch table.
// Unknown elements and unknown class values resolve to a no-op binding.
func Lookup(name string, attrs []wallparse.Attribute) Match {
	el, ok := table[name]
	if !ok {
		if transparent[name] {
			return Match{Resolution: ResolvedTransparent}
		}
		return Match{Resolution: ResolvedUnknownElement}
	}

	m := Match{Scoped: el.scoped}
	class, hasClass := classAttr(attrs)
	if el.classes == nil || !hasClass {
		m.Binding = el.unclassed
		m.Resolution = ResolvedUnclassed
		return m
	}

	m.Class = class
	if b, ok := el.classes[class]; ok {
		m.Binding = b
		m.Resolution = ResolvedClass
		return m
	}

	if el.strict {
		m.Resolution = ResolvedUnknownClass
	} else {
		m.Resolution = ResolvedUnclassed
	}
	return m
}

// IsScoped reports whether closing name pops the handler queue.
func IsScoped(name string) bool {
	return table[name].scoped
}

// classAttr returns the first class attribute value.
func classAttr(attrs []wallparse.Attribute) (string, bool) {
	for _, a := range attrs {
		if a.Key == "class" {
			return a.Val, true
		}
	}
	return "", false
}
