package hcladapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/topoconf/internal/config"
	"github.com/vk/topoconf/internal/ctxlog"
	"github.com/vk/topoconf/internal/fsutil"
	"github.com/vk/topoconf/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates document loading. It is agnostic to which file carries
// which blocks: blueprint and topology documents may even share one file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := findDocumentFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl documents found under %v", paths)
	}
	logger.Debug("Discovered HCL documents.", "count", len(files))

	model := &config.Model{}
	groupsByName := make(map[string]*config.HostGroup)
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.Root
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if err := l.mergeRoot(ctx, model, groupsByName, &root, file); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL loading complete.",
		"host_groups", len(model.HostGroups),
		"configurations", len(model.Configurations),
		"stack_overrides", len(model.StackOverrides))
	return model, nil
}

// mergeRoot folds one decoded file into the model, merging host_group blocks
// by name across files.
func (l *Loader) mergeRoot(ctx context.Context, model *config.Model, groupsByName map[string]*config.HostGroup, root *schema.Root, file string) error {
	for _, b := range root.Blueprints {
		if model.Blueprint != nil && model.Blueprint.Name != b.Name {
			return fmt.Errorf("%s: duplicate blueprint block %q (already have %q)", file, b.Name, model.Blueprint.Name)
		}
		model.Blueprint = &config.Blueprint{Name: b.Name, Stack: b.Stack}
	}

	for _, c := range root.Clusters {
		if model.Cluster != nil && model.Cluster.Name != c.Name {
			return fmt.Errorf("%s: duplicate cluster block %q (already have %q)", file, c.Name, model.Cluster.Name)
		}
		model.Cluster = &config.Cluster{Name: c.Name, Blueprint: c.Blueprint}
	}

	for _, g := range root.HostGroups {
		merged, ok := groupsByName[g.Name]
		if !ok {
			merged = &config.HostGroup{Name: g.Name}
			groupsByName[g.Name] = merged
			model.HostGroups = append(model.HostGroups, merged)
		}
		if g.Cardinality != "" {
			merged.Cardinality = g.Cardinality
		}
		merged.Components = append(merged.Components, g.Components...)
		merged.Hosts = append(merged.Hosts, g.Hosts...)
	}

	for _, c := range root.Configurations {
		translated, err := l.translateConfiguration(ctx, c)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		model.Configurations = append(model.Configurations, translated)
	}

	for _, sc := range root.StackComponents {
		model.StackOverrides = append(model.StackOverrides, &config.StackComponent{
			Name:        sc.Name,
			Service:     sc.Service,
			Cardinality: sc.Cardinality,
			Master:      sc.Master,
		})
	}
	return nil
}

// findDocumentFiles flattens files and directories into a deduplicated list
// of .hcl files.
func findDocumentFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, dup := seen[p]; !dup {
			seen[p] = struct{}{}
			all = append(all, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				add(f)
			}
			continue
		}
		if filepath.Ext(path) == ".hcl" {
			add(path)
		}
	}
	return all, nil
}
