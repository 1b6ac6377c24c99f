package templates

// Theme - оформление страниц. Передается в рендер явно, без глобального состояния.
type Theme struct {
	Name   string
	Accent string
}

var themes = map[string]Theme{
	"light": {Name: "light", Accent: "#2563eb"},
	"dark":  {Name: "dark", Accent: "#60a5fa"},
}

// DefaultTheme используется, когда имя темы неизвестно
var DefaultTheme = themes["light"]

// ResolveTheme находит тему по имени
func ResolveTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return DefaultTheme
}

// Bindings - представление темы для шаблонов
func (t Theme) Bindings() map[string]any {
	return map[string]any{"name": t.Name, "accent": t.Accent}
}
