package token

import "github.com/dhamidi/javafront/name"

// Keywords is the table-driven keyword recognizer described in spec
// §4.3: every keyword spelling is interned once during construction and
// indexed by the interned handle's dense index, so Lookup is O(1) and
// does no string comparison.
type Keywords struct {
	byIndex []Kind // dense index -> Kind; IDENTIFIER where no keyword is registered
}

// NewKeywords builds a Keywords recognizer bound to tbl. It interns every
// reserved word, reserved value, and the "_" keyword this package
// defines; the "non-sealed" contextual keyword is not registered here
// (the lexer recognizes it separately).
func NewKeywords(tbl *name.Table) *Keywords {
	kw := &Keywords{}
	for kind, info := range kindInfos {
		if !info.keyword {
			continue
		}
		n := tbl.InternString(info.name)
		kw.set(int(n.Index()), kind)
	}
	return kw
}

func (kw *Keywords) set(index int, kind Kind) {
	for index >= len(kw.byIndex) {
		kw.byIndex = append(kw.byIndex, IDENTIFIER)
	}
	kw.byIndex[index] = kind
}

// Lookup returns the reserved Kind for n's spelling, or IDENTIFIER if n
// is not a keyword, true reserved value, or underscore.
func (kw *Keywords) Lookup(n name.Name) Kind {
	idx := int(n.Index())
	if idx < 0 || idx >= len(kw.byIndex) {
		return IDENTIFIER
	}
	return kw.byIndex[idx]
}
