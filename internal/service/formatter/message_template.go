package formatter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/osteele/liquid"
	"github.com/rs/zerolog/log"

	"rb-admin-console/internal/domain"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// MessageTemplateFormatter проверяет и подставляет шаблоны ответов поддержки
type MessageTemplateFormatter struct {
	engine *liquid.Engine
}

// NewMessageTemplateFormatter создает новый форматтер
func NewMessageTemplateFormatter() *MessageTemplateFormatter {
	return &MessageTemplateFormatter{
		engine: liquid.NewEngine(),
	}
}

// ExtractPlaceholders возвращает имена {плейсхолдеров} шаблона без повторов, по алфавиту
func ExtractPlaceholders(template string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	sort.Strings(names)
	return names
}

// Consistent сравнивает плейсхолдеры шаблона с объявленными как множества
func Consistent(template string, declared []string) bool {
	want := make(map[string]struct{}, len(declared))
	for _, d := range declared {
		if d = strings.TrimSpace(d); d != "" {
			want[d] = struct{}{}
		}
	}
	found := ExtractPlaceholders(template)
	if len(found) != len(want) {
		return false
	}
	for _, name := range found {
		if _, ok := want[name]; !ok {
			return false
		}
	}
	return true
}

// Render подставляет значения; неизвестные плейсхолдеры остаются как есть
func Render(template string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Preview рисует шаблон через liquid: {name} превращается в {{ p["name"] }}.
// Значения лежат под отдельной переменной, поэтому имена вроде {0} или {empty}
// не пересекаются с литералами liquid. Остальной текст со скобками выводится как raw.
// Если liquid не смог разобрать результат, используется Render.
func (f *MessageTemplateFormatter) Preview(template string, values map[string]string) (string, error) {
	var src strings.Builder
	last := 0
	for _, loc := range placeholderRe.FindAllStringSubmatchIndex(template, -1) {
		src.WriteString(rawLiquid(template[last:loc[0]]))
		src.WriteString(`{{ p["` + template[loc[2]:loc[3]] + `"] }}`)
		last = loc[1]
	}
	src.WriteString(rawLiquid(template[last:]))

	bound := make(map[string]any, len(values))
	for _, name := range ExtractPlaceholders(template) {
		v, ok := values[name]
		if !ok {
			v = "{" + name + "}"
		}
		bound[name] = v
	}

	out, err := f.engine.ParseAndRenderString(src.String(), map[string]any{"p": bound})
	if err != nil {
		log.Debug().Err(err).Msg("liquid preview failed, falling back to plain substitution")
		return Render(template, values), nil
	}
	return out, nil
}

func rawLiquid(s string) string {
	if !strings.ContainsAny(s, "{}%") {
		return s
	}
	return "{% raw %}" + s + "{% endraw %}"
}

// TemplateIssue - шаблон, у которого плейсхолдеры не совпадают с объявленными
type TemplateIssue struct {
	ID       string
	Type     string
	Found    []string
	Declared []string
}

// CheckAll проверяет согласованность всех шаблонов ресурса message-templates
func CheckAll(records []domain.Record) []TemplateIssue {
	var issues []TemplateIssue
	for _, r := range records {
		tpl := r.Text("template")
		declared := declaredPlaceholders(r["placeholders"])
		if Consistent(tpl, declared) {
			continue
		}
		issues = append(issues, TemplateIssue{
			ID:       r.Text("id"),
			Type:     r.Text("type"),
			Found:    ExtractPlaceholders(tpl),
			Declared: declared,
		})
	}
	return issues
}

func declaredPlaceholders(v any) []string {
	list, _ := v.([]any)
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, domain.TextOf(item))
	}
	return out
}
