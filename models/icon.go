package models

// IconKind is the closed set of skill category icons the site can render.
type IconKind int

const (
	// IconCode2 is also the fallback for unknown names.
	IconCode2 IconKind = iota
	IconLayout
	IconServer
	IconSmartphone
)

var iconNames = map[IconKind]string{
	IconCode2:      "Code2",
	IconLayout:     "Layout",
	IconServer:     "Server",
	IconSmartphone: "Smartphone",
}

var iconsByName = map[string]IconKind{
	"Code2":      IconCode2,
	"Layout":     IconLayout,
	"Server":     IconServer,
	"Smartphone": IconSmartphone,
}

// ParseIconKind resolves a stored icon name, falling back to IconCode2.
func ParseIconKind(name string) IconKind {
	if kind, ok := iconsByName[name]; ok {
		return kind
	}
	return IconCode2
}

func (k IconKind) String() string {
	if name, ok := iconNames[k]; ok {
		return name
	}
	return iconNames[IconCode2]
}

// IconKinds lists every renderable icon.
func IconKinds() []IconKind {
	return []IconKind{IconLayout, IconServer, IconSmartphone, IconCode2}
}
