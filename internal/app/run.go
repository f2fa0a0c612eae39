package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vk/topoconf/internal/cardinality"
	"github.com/vk/topoconf/internal/configuration"
	"github.com/vk/topoconf/internal/ctxlog"
	"github.com/vk/topoconf/internal/topology"
)

// resolvedDocument is the JSON shape emitted for both modes.
type resolvedDocument struct {
	Blueprint          string                       `json:"blueprint,omitempty"`
	Cluster            string                       `json:"cluster,omitempty"`
	Configurations     map[string]map[string]string `json:"configurations"`
	RequiredHostGroups []string                     `json:"required_host_groups,omitempty"`
}

// Run executes one resolution pass based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", appConfig.Mode)

	if err := a.checkBinding(); err != nil {
		return err
	}

	top, err := a.assembleTopology(appConfig.Mode)
	if err != nil {
		return err
	}
	cfg := a.assembleConfiguration()
	a.logger.Debug("Domain model assembled.",
		"host_groups", len(top.Groups()), "config_types", len(cfg.Types()))

	doc := resolvedDocument{Configurations: cfg.Properties}
	if a.model.Blueprint != nil {
		doc.Blueprint = a.model.Blueprint.Name
	}
	if a.model.Cluster != nil {
		doc.Cluster = a.model.Cluster.Name
	}

	switch appConfig.Mode {
	case ModeCreate:
		// The host groups a deployment must populate are a property of the
		// unresolved template, so they are computed before resolution.
		required, err := a.resolver.RequiredHostGroups(ctx, top, cfg)
		if err != nil {
			return fmt.Errorf("computing required host groups: %w", err)
		}
		doc.RequiredHostGroups = required

		if err := a.resolver.ResolveForClusterCreate(ctx, top, cfg); err != nil {
			return err
		}
	case ModeExport:
		if err := a.resolver.ResolveForBlueprintExport(ctx, top, cfg); err != nil {
			return err
		}
	}

	if err := a.emit(doc, appConfig.OutputPath); err != nil {
		return err
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// checkBinding verifies the topology document names the loaded blueprint.
func (a *App) checkBinding() error {
	if a.model.Blueprint == nil {
		return fmt.Errorf("no blueprint block found in the loaded documents")
	}
	if a.model.Cluster == nil {
		return fmt.Errorf("no cluster block found in the loaded documents")
	}
	if a.model.Cluster.Blueprint != a.model.Blueprint.Name {
		return fmt.Errorf("cluster %q binds blueprint %q, but blueprint %q was loaded",
			a.model.Cluster.Name, a.model.Cluster.Blueprint, a.model.Blueprint.Name)
	}
	return nil
}

// assembleTopology maps the merged host-group model into the domain topology.
// In create mode a group's declared cardinality is checked against the hosts
// actually mapped to it.
func (a *App) assembleTopology(mode string) (*topology.Topology, error) {
	groups := make([]*topology.HostGroup, 0, len(a.model.HostGroups))
	for _, hg := range a.model.HostGroups {
		if mode == ModeCreate && hg.Cardinality != "" {
			card, err := cardinality.Parse(hg.Cardinality)
			if err != nil {
				return nil, fmt.Errorf("host group %q: %w", hg.Name, err)
			}
			if !card.Satisfied(len(hg.Hosts)) {
				return nil, fmt.Errorf("host group %q maps %d host(s), cardinality %s requires otherwise",
					hg.Name, len(hg.Hosts), card)
			}
		}
		groups = append(groups, &topology.HostGroup{
			Name:       hg.Name,
			Hosts:      hg.Hosts,
			Components: hg.Components,
		})
	}
	return topology.New(groups...)
}

// assembleConfiguration flattens the configuration blocks into the mutable
// resolution target. Later blocks of the same type win key by key.
func (a *App) assembleConfiguration() *configuration.Configuration {
	cfg := configuration.New()
	for _, block := range a.model.Configurations {
		for key, value := range block.Properties {
			cfg.Set(block.Type, key, value)
		}
	}
	return cfg
}

// emit marshals the resolved document and writes it to path, or to the app
// writer when no path is configured.
func (a *App) emit(doc resolvedDocument, path string) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding resolved document: %w", err)
	}
	out = append(out, '\n')

	if path == "" {
		_, err = a.outW.Write(out)
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing resolved document: %w", err)
	}
	a.logger.Info("Resolved document written.", "path", path)
	return nil
}
