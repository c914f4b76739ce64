package scene

import (
	"strings"
)

type styleProp struct {
	name, value string
}

// parseStyle splits an inline style attribute into ordered declarations.
// Later declarations of the same property win.
func parseStyle(attr string) []styleProp {
	var props []styleProp
	for _, decl := range strings.Split(attr, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if name == "" {
			continue
		}
		props = setStyleProp(props, name, value)
	}
	return props
}

func setStyleProp(props []styleProp, name, value string) []styleProp {
	for i := range props {
		if props[i].name == name {
			props[i].value = value
			return props
		}
	}
	return append(props, styleProp{name: name, value: value})
}

func styleValue(props []styleProp, name string) (string, bool) {
	name = strings.ToLower(name)
	for _, p := range props {
		if p.name == name {
			return p.value, true
		}
	}
	return "", false
}

func formatStyle(props []styleProp) string {
	var b strings.Builder
	for i, p := range props {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.name)
		b.WriteString(": ")
		b.WriteString(p.value)
		b.WriteByte(';')
	}
	return b.String()
}
