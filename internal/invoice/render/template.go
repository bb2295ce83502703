package render

// DefaultTemplate is substituted whenever an unknown or empty template name
// is requested. A stored-but-now-invalid preference must never block
// invoice generation.
const DefaultTemplate = "modern"

// Template is a named layout strategy. Generate draws the complete invoice
// onto the surface; all output is surface mutation.
type Template interface {
	Name() string
	Generate(s Surface, invoice Invoice, issuer Issuer, cfg Config)
}

// Info describes a template for selection UIs.
type Info struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

// Registry maps template names to instances. It is an explicit constructed
// value, built once at startup and passed to whatever resolves templates.
type Registry struct {
	order     []string
	templates map[string]Template
}

// NewRegistry returns a registry with the three built-in templates.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]Template)}
	r.Register(&ModernTemplate{})
	r.Register(&ClassicTemplate{})
	r.Register(&MinimalTemplate{})
	return r
}

// Register adds or overwrites a template by name.
func (r *Registry) Register(t Template) {
	if _, exists := r.templates[t.Name()]; !exists {
		r.order = append(r.order, t.Name())
	}
	r.templates[t.Name()] = t
}

// Get resolves a template by exact name, silently falling back to the
// default template on a miss.
func (r *Registry) Get(name string) Template {
	if t, ok := r.templates[name]; ok {
		return t
	}
	return r.templates[DefaultTemplate]
}

// List returns registered names in registration order.
func (r *Registry) List() []string {
	return append([]string(nil), r.order...)
}

var templateDescriptions = map[string]Info{
	"modern": {
		Name:        "modern",
		DisplayName: "Modern",
		Description: "Clean and contemporary design with colored accents",
	},
	"classic": {
		Name:        "classic",
		DisplayName: "Classic",
		Description: "Traditional business format with professional styling",
	},
	"minimal": {
		Name:        "minimal",
		DisplayName: "Minimal",
		Description: "Simple and elegant design with clean typography",
	},
}

// Describe returns selection metadata for every registered template.
func (r *Registry) Describe() []Info {
	infos := make([]Info, 0, len(r.order))
	for _, name := range r.order {
		if info, ok := templateDescriptions[name]; ok {
			infos = append(infos, info)
			continue
		}
		infos = append(infos, Info{Name: name, DisplayName: name})
	}
	return infos
}
