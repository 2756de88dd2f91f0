package tips

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed tips.tmpl
var tipsTemplate string

// Data is what tip wording may interpolate.
type Data struct {
	PerPersonPerMeal float64
	FamilySize       int
	Children         int
	MealNames        []string
	BatchCookMeal    string
	SlowCookerMeal   string
}

// Resolver turns tip identifiers into display text.
type Resolver interface {
	Resolve(id ID, data Data) (string, error)
}

// TemplateResolver renders tips from named text/template definitions.
type TemplateResolver struct {
	tmpl *template.Template
}

// NewTemplateResolver parses the built-in tip wording.
func NewTemplateResolver() (*TemplateResolver, error) {
	return ParseTemplateResolver(tipsTemplate)
}

// ParseTemplateResolver parses custom wording. Each tip is a
// {{define "<id>"}} block.
func ParseTemplateResolver(text string) (*TemplateResolver, error) {
	tmpl, err := template.New("tips").Funcs(template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	}).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tip templates: %w", err)
	}
	return &TemplateResolver{tmpl: tmpl}, nil
}

// Resolve renders a single tip.
func (r *TemplateResolver) Resolve(id ID, data Data) (string, error) {
	t := r.tmpl.Lookup(string(id))
	if t == nil {
		return "", fmt.Errorf("no wording for tip %q", id)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render tip %q: %w", id, err)
	}
	return buf.String(), nil
}

// ResolveAll renders tips in order.
func ResolveAll(r Resolver, ids []ID, data Data) ([]string, error) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		s, err := r.Resolve(id, data)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
