package event

// Element tags damage with its magic school.
type Element int

const (
	Fire Element = iota
	Frost
	Poison
	Lightning
	Void
	Shadow
)

var elementNames = map[Element]string{
	Fire:      "fire",
	Frost:     "frost",
	Poison:    "poison",
	Lightning: "lightning",
	Void:      "void",
	Shadow:    "shadow",
}

func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return "unknown"
}

// ParseElement resolves a config string to an Element.
// Unknown strings resolve to Fire with ok=false — a malformed spell
// definition degrades instead of failing the cast.
func ParseElement(s string) (Element, bool) {
	for el, name := range elementNames {
		if name == s {
			return el, true
		}
	}
	return Fire, false
}
