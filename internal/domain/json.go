package domain

import "encoding/json"

// The *_JSON columns are stored as raw TEXT; the API serves them
// decoded. Each MarshalJSON folds the decoded form into the entity's
// wire shape.

func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		Tags []string `json:"tags"`
	}{alias(p), p.Tags()})
}

func (o ProductOption) MarshalJSON() ([]byte, error) {
	type alias ProductOption
	return json.Marshal(struct {
		alias
		Values []string `json:"values"`
	}{alias(o), o.Values()})
}

func (v ProductVariant) MarshalJSON() ([]byte, error) {
	type alias ProductVariant
	out := struct {
		alias
		Attributes map[string]string `json:"attributes"`
		Mockups    map[string]string `json:"mockups,omitempty"`
		DesignZone *DesignZone       `json:"designZone,omitempty"`
		PrintSpec  *PrintSpec        `json:"printSpec,omitempty"`
	}{alias: alias(v), Attributes: v.Attributes(), Mockups: v.Mockups()}
	if z, ok := v.DesignZone(); ok {
		out.DesignZone = &z
	}
	if s, ok := v.PrintSpec(); ok {
		out.PrintSpec = &s
	}
	return json.Marshal(out)
}

func (t Template) MarshalJSON() ([]byte, error) {
	type alias Template
	return json.Marshal(struct {
		alias
		Layout TemplateLayout `json:"layout"`
	}{alias(t), t.Layout()})
}

func (f TemplateField) MarshalJSON() ([]byte, error) {
	type alias TemplateField
	cfg := json.RawMessage(`{}`)
	if f.ConfigJSON != "" && json.Valid([]byte(f.ConfigJSON)) {
		cfg = json.RawMessage(f.ConfigJSON)
	}
	return json.Marshal(struct {
		alias
		Config json.RawMessage `json:"config"`
	}{alias(f), cfg})
}

func (o FieldOption) MarshalJSON() ([]byte, error) {
	type alias FieldOption
	return json.Marshal(struct {
		alias
		Metadata map[string]any `json:"metadata,omitempty"`
	}{alias(o), o.Metadata()})
}

// The aggregate types embed entities that define MarshalJSON, which
// would otherwise swallow the aggregate's own fields.

func (f FieldWithOptions) MarshalJSON() ([]byte, error) {
	opts := f.Options
	if opts == nil {
		opts = []FieldOption{}
	}
	return mergeJSON(f.TemplateField, map[string]any{"options": opts})
}

func (t TemplateWithFields) MarshalJSON() ([]byte, error) {
	fields := t.Fields
	if fields == nil {
		fields = []FieldWithOptions{}
	}
	return mergeJSON(t.Template, map[string]any{"fields": fields})
}

func (s ProductSnapshot) MarshalJSON() ([]byte, error) {
	extra := map[string]any{
		"options":   s.Options,
		"variants":  s.Variants,
		"templates": s.Templates,
	}
	if s.Options == nil {
		extra["options"] = []ProductOption{}
	}
	if s.Variants == nil {
		extra["variants"] = []ProductVariant{}
	}
	if s.Templates == nil {
		extra["templates"] = []TemplateWithFields{}
	}
	return mergeJSON(s.Product, extra)
}

func mergeJSON(base any, extra map[string]any) ([]byte, error) {
	raw, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	for k, v := range extra {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		m[k] = b
	}
	return json.Marshal(m)
}
