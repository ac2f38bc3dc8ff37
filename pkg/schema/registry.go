package schema

import (
	"cmp"
	"regexp"
	"slices"
	"sync"
)

// Rule describes one lint rule of the external engine as far as
// configuration is concerned: identity, aliases, and parameter shape.
type Rule struct {
	// ID is the canonical rule code, e.g. "MD013".
	ID string

	// Name is the human-readable rule name, e.g. "line-length".
	Name string

	// Description is a one-line summary of what the rule checks.
	Description string

	// Shape describes the parameter object the rule accepts.
	Shape Shape

	// Tags are the rule groups this rule belongs to, e.g. "whitespace".
	Tags []string
}

// Registry holds all known rule descriptors.
type Registry struct {
	mu      sync.RWMutex
	byID    map[string]Rule
	aliases map[string]string   // alias -> canonical ID
	tags    map[string][]string // tag -> member rule IDs
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:    make(map[string]Rule),
		aliases: make(map[string]string),
		tags:    make(map[string][]string),
	}
}

// Register adds a rule descriptor to the registry.
// The rule's name becomes an alias for its ID, and the rule is added to
// each of its tag groups. An existing rule with the same ID is replaced.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[rule.ID] = rule
	if rule.Name != "" {
		r.aliases[rule.Name] = rule.ID
	}
	for _, tag := range rule.Tags {
		if !slices.Contains(r.tags[tag], rule.ID) {
			r.tags[tag] = append(r.tags[tag], rule.ID)
		}
	}
}

// RegisterAlias maps an additional alias to a canonical rule ID.
// Used for legacy names like "single-h1" -> "MD025".
func (r *Registry) RegisterAlias(alias, ruleID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = ruleID
}

// Get retrieves a rule descriptor by its canonical ID.
func (r *Registry) Get(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byID[id]
	return rule, ok
}

// Resolve returns the canonical ID and descriptor for a given key.
// The key can be a rule ID (any case) or an alias.
// Returns (id, rule, found).
func (r *Registry) Resolve(key string) (string, Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byID[key]; ok {
		return rule.ID, rule, true
	}
	if canonical := canonicalCode(key); canonical != key {
		if rule, ok := r.byID[canonical]; ok {
			return rule.ID, rule, true
		}
	}
	if targetID, ok := r.aliases[key]; ok {
		if rule, ok := r.byID[targetID]; ok {
			return rule.ID, rule, true
		}
	}
	return "", Rule{}, false
}

// IsTag reports whether the key names a rule group.
func (r *Registry) IsTag(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tags[key]
	return ok
}

// TagRules returns the rule IDs belonging to a tag in sorted order.
// Returns nil if the tag is not recognized.
func (r *Registry) TagRules(tag string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.tags[tag]
	if members == nil {
		return nil
	}
	result := make([]string, len(members))
	copy(result, members)
	slices.Sort(result)
	return result
}

// Tags returns all known tag names in sorted order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.tags))
	for tag := range r.tags {
		result = append(result, tag)
	}
	slices.Sort(result)
	return result
}

// Rules returns all registered rule descriptors sorted by ID.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.byID))
	for _, rule := range r.byID {
		result = append(result, rule)
	}
	slices.SortFunc(result, func(a, b Rule) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// IDs returns all registered rule IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}
	slices.Sort(result)
	return result
}

// AliasesFor returns all aliases mapping to the given rule ID in sorted order.
func (r *Registry) AliasesFor(ruleID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []string
	for alias, id := range r.aliases {
		if id == ruleID {
			result = append(result, alias)
		}
	}
	slices.Sort(result)
	return result
}

// ruleCodePattern matches the engine's rule code naming convention.
var ruleCodePattern = regexp.MustCompile(`^(?i)MD\d{3}$`)

// IsRuleCode reports whether the key is syntactically a rule code,
// whether or not the code is known to this registry. Unknown but
// well-formed codes may belong to a newer engine version.
func IsRuleCode(key string) bool {
	return ruleCodePattern.MatchString(key)
}

// canonicalCode folds a syntactically valid rule code to its canonical
// upper-case form. Other keys are returned unchanged.
func canonicalCode(key string) string {
	if !IsRuleCode(key) {
		return key
	}
	// "md013" -> "MD013"
	return "MD" + key[2:]
}

// Default is the global registry holding the builtin rule table.
// Entries register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var Default = NewRegistry()
