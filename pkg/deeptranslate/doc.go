// Package deeptranslate resolves translation keys against nested locale trees,
// choosing between conditional branches based on per-request session state.
//
// A locale tree maps dot-delimited keys to strings or to further mappings. When
// a key resolves to a mapping, its entries are tried as candidates. An entry
// whose value is itself a mapping is treated as a condition: the current
// session value of a field named after the entry key is appended to the path.
//
//	label:
//	  applicant-type:
//	    individual: Your name
//	    company: Company name
//	  default: Name
//
// With applicant-type set to "company", resolving "label" yields "Company name".
// With no matching value, the "default" entry is used.
//
// # Multi-value fields
//
// When a session field holds a list of strings, the values are joined with ","
// in the order the model returns them, so ["a", "b"] selects the entry "a,b" but
// never "b,a".
//
// # Win order
//
// Entries are visited from last declared to first, and each hit replaces the
// previous result. The first declared matching entry therefore wins, so
// conditional entries must be declared before the fallback they override.
//
// # Usage
//
//	tree, err := deeptranslate.ParseYAML(data)
//	if err != nil {
//	    return err
//	}
//	resolver := deeptranslate.New(tree.Lookup)
//
//	t := resolver.Bind(sess) // sess implements SessionModel
//	title := t("pages.confirm.title")
//
// # Misses
//
// A key that cannot be resolved comes back unchanged from Resolve and Func.
// Use Lookup to distinguish a miss (ErrNotFound) from a runaway lookup
// function (ErrMaxDepth).
package deeptranslate
