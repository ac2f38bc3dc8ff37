// Package configloader loads markdownlint-style configuration documents.
// It implements comment-tolerant parsing, schema validation against the
// rule registry, extends-chain resolution, upward config discovery, and
// environment variable overrides.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/mdlconf/internal/logging"
	"github.com/yaklabco/mdlconf/pkg/config"
	"github.com/yaklabco/mdlconf/pkg/schema"
)

// maxExtendsDepth bounds extends chains; anything deeper is a config bug.
const maxExtendsDepth = 16

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, discovery is skipped.
	ExplicitPath string

	// Policy controls handling of unrecognized rule codes.
	Policy UnknownRulePolicy

	// Registry is the rule schema to validate against.
	// Defaults to schema.Default if nil.
	Registry *schema.Registry

	// IgnoreUserConfig skips the user-level configuration fallback.
	IgnoreUserConfig bool

	// IgnoreEnv skips MDLCONF_* environment variable overrides.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and load metadata.
type LoadResult struct {
	// Config is the validated, normalized configuration.
	Config *config.Config

	// Path is the primary document that was loaded, empty when no
	// document was found and the implicit default applied.
	Path string

	// LoadedFrom lists every file that contributed, base configs first.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the effective configuration. The document is located by
// precedence: explicit path (flag or MDLCONF_CONFIG), then upward project
// discovery, then the user-level config. When no document exists the
// implicit engine default applies: every rule enabled.
//
// Load is all-or-nothing: on *ParseError or *SchemaError no configuration
// is returned.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	registry := opts.Registry
	if registry == nil {
		registry = schema.Default
	}

	policy := opts.Policy
	explicit := opts.ExplicitPath
	if !opts.IgnoreEnv {
		policy = envPolicy(policy)
		if explicit == "" {
			explicit = os.Getenv(EnvConfig)
		}
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	result := &LoadResult{}

	path := explicit
	if path == "" {
		var err error
		path, err = FindProjectConfig(ctx, workDir)
		if err != nil {
			return nil, err
		}
	}
	if path == "" && !opts.IgnoreUserConfig {
		path = findUserConfig()
	}

	if path == "" {
		logger.Debug("no configuration found, using engine defaults",
			logging.FieldWorkingDir, workDir)
		result.Config = config.New()
		result.Warnings = append(result.Warnings,
			"no configuration found; all rules enabled by default")
		return result, nil
	}

	logger.Debug("loading configuration", logging.FieldPath, path)

	chain := &loadChain{registry: registry, policy: policy, result: result}
	cfg, err := chain.loadFile(ctx, path, 0)
	if err != nil {
		return nil, err
	}

	result.Config = cfg
	result.Path = path
	return result, nil
}

// LoadSource parses and validates configuration source text directly.
// Comment stripping is applied before parsing; extends is not resolved
// for in-memory sources and produces a warning if present.
func LoadSource(source []byte, registry *schema.Registry, policy UnknownRulePolicy) (*config.Config, []Violation, error) {
	if registry == nil {
		registry = schema.Default
	}

	doc, err := parseJSONDocument(StripComments(source), "")
	if err != nil {
		return nil, nil, err
	}

	cfg, warnings, err := validate(doc, registry, policy)
	if err != nil {
		return nil, warnings, err
	}

	if base, ok := documentExtends(doc); ok {
		warnings = append(warnings, Violation{
			Field:   extendsKey,
			Value:   base,
			Message: "extends is not resolved for in-memory sources",
		})
	}
	return cfg, warnings, nil
}

// loadChain tracks state across an extends chain.
type loadChain struct {
	registry *schema.Registry
	policy   UnknownRulePolicy
	result   *LoadResult
	visited  []string
}

// loadFile reads, parses, and validates one document, resolving its
// extends base first so the document's own settings win on merge.
func (chain *loadChain) loadFile(ctx context.Context, path string, depth int) (*config.Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load %s: %w", path, ctx.Err())
	default:
	}

	if depth > maxExtendsDepth {
		return nil, fmt.Errorf("extends chain exceeds %d levels at %s", maxExtendsDepth, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	for _, seen := range chain.visited {
		if seen == abs {
			return nil, fmt.Errorf("extends cycle detected at %s", path)
		}
	}
	chain.visited = append(chain.visited, abs)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	doc, err := parseDocument(content, path)
	if err != nil {
		return nil, err
	}

	var base *config.Config
	if basePath, ok := documentExtends(doc); ok {
		resolved := basePath
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(filepath.Dir(path), basePath)
		}
		base, err = chain.loadFile(ctx, resolved, depth+1)
		if err != nil {
			return nil, fmt.Errorf("extends %q: %w", basePath, err)
		}
	}

	cfg, warnings, err := validate(doc, chain.registry, chain.policy)
	for _, w := range warnings {
		chain.result.Warnings = append(chain.result.Warnings, path+": "+w.String())
	}
	if err != nil {
		return nil, err
	}

	chain.result.LoadedFrom = append(chain.result.LoadedFrom, path)

	if base != nil {
		cfg = config.Merge(base, cfg)
	}
	return cfg, nil
}

// parseDocument dispatches on the file extension: YAML documents go to the
// YAML parser, everything else is treated as JSON with comments.
func parseDocument(content []byte, path string) (*rawDocument, error) {
	if IsYAMLConfig(path) {
		return parseYAMLDocument(content, path)
	}
	return parseJSONDocument(StripComments(content), path)
}

// documentExtends returns the extends base path declared by a document.
func documentExtends(doc *rawDocument) (string, bool) {
	for _, entry := range doc.entries {
		if entry.key == extendsKey {
			if base, ok := entry.value.(string); ok {
				return base, true
			}
		}
	}
	return "", false
}
