package importer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"fabcli/internal/hierarchy"
)

// ItemImporter is the slice of DirectAPI the CICD executor needs.
type ItemImporter interface {
	ImportSingleItem(ctx context.Context, target hierarchy.SingleItem, input []string, format string) error
}

// deploymentConfig is the CICD deployment descriptor. Item fields may
// reference parameters as ${name}; parameters come from the descriptor and
// can be overridden per invocation with -P.
type deploymentConfig struct {
	Environments map[string]environment `yaml:"environments"`
	Parameters   map[string]string      `yaml:"parameters"`
}

type environment struct {
	Items []deploymentItem `yaml:"items"`
}

type deploymentItem struct {
	Path   string `yaml:"path"`
	Input  string `yaml:"input"`
	Format string `yaml:"format"`
}

// CICD imports every item a deployment descriptor lists for one
// environment, resolving its own targets from the descriptor.
type CICD struct {
	items ItemImporter
	log   *slog.Logger
}

func NewCICD(items ItemImporter, log *slog.Logger) *CICD {
	return &CICD{items: items, log: log}
}

// ImportWithConfigFile parses the descriptor, selects the named
// environment, applies the serialized -P overrides, and imports each
// listed item in order. The first failing item aborts the run.
func (c *CICD) ImportWithConfigFile(ctx context.Context, configFile, env, params string) error {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("read config file %q: %w", configFile, err)
	}

	var cfg deploymentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config file %q: %w", configFile, err)
	}

	target, ok := cfg.Environments[env]
	if !ok {
		return fmt.Errorf("environment %q not found in %s (available: %s)",
			env, configFile, strings.Join(environmentNames(cfg), ", "))
	}
	if len(target.Items) == 0 {
		return fmt.Errorf("environment %q in %s lists no items", env, configFile)
	}

	values, err := mergeParams(cfg.Parameters, params)
	if err != nil {
		return err
	}

	baseDir := filepath.Dir(configFile)
	c.log.Info("starting deployment import",
		"config", configFile, "env", env, "items", len(target.Items))

	for _, item := range target.Items {
		path := expandParams(item.Path, values)
		element, err := hierarchy.ParsePath(path)
		if err != nil {
			return fmt.Errorf("config file %q: %w", configFile, err)
		}
		single, ok := element.(hierarchy.SingleItem)
		if !ok {
			return fmt.Errorf("config file %q: path %q does not address a single item", configFile, path)
		}

		input := expandParams(item.Input, values)
		if input == "" {
			return fmt.Errorf("config file %q: item %q has no input", configFile, path)
		}
		if !filepath.IsAbs(input) {
			input = filepath.Join(baseDir, input)
		}

		format := expandParams(item.Format, values)
		if err := c.items.ImportSingleItem(ctx, single, []string{input}, format); err != nil {
			return err
		}
	}

	c.log.Info("deployment import complete", "env", env, "items", len(target.Items))
	return nil
}

func environmentNames(cfg deploymentConfig) []string {
	names := make([]string, 0, len(cfg.Environments))
	for name := range cfg.Environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// mergeParams overlays the serialized CLI overrides ("key=value" pairs
// joined by commas) on top of the descriptor parameters.
func mergeParams(base map[string]string, overrides string) (map[string]string, error) {
	merged := make(map[string]string, len(base))
	for k, v := range base {
		merged[k] = v
	}

	if strings.TrimSpace(overrides) == "" {
		return merged, nil
	}
	for _, pair := range strings.Split(overrides, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid -P override %q: expected key=value", pair)
		}
		merged[key] = strings.TrimSpace(value)
	}
	return merged, nil
}

// expandParams substitutes ${name} references with parameter values.
// Unknown references are left untouched so the resulting path error names
// the offending text.
func expandParams(s string, values map[string]string) string {
	return os.Expand(s, func(name string) string {
		if v, ok := values[name]; ok {
			return v
		}
		return "${" + name + "}"
	})
}
