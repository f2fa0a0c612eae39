// Package schema declares the HCL block shapes of blueprint and topology
// documents. The hcladapter package decodes files into these structs before
// translating them into the format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// Root decodes every top-level block from any document file: a blueprint
// file and a topology file share the same grammar, so both pass through the
// same schema.
type Root struct {
	Blueprints      []*Blueprint      `hcl:"blueprint,block"`
	Clusters        []*Cluster        `hcl:"cluster,block"`
	HostGroups      []*HostGroup      `hcl:"host_group,block"`
	Configurations  []*Configuration  `hcl:"configuration,block"`
	StackComponents []*StackComponent `hcl:"stack_component,block"`
	Remain          hcl.Body          `hcl:",remain"`
}

// Blueprint is the blueprint header block.
type Blueprint struct {
	Name  string `hcl:"name,label"`
	Stack string `hcl:"stack,optional"`
}

// Cluster is the topology header block.
type Cluster struct {
	Name      string `hcl:"name,label"`
	Blueprint string `hcl:"blueprint,optional"`
}

// HostGroup is a host_group block. Blueprint documents fill components and
// cardinality; topology documents fill hosts.
type HostGroup struct {
	Name        string   `hcl:"name,label"`
	Cardinality string   `hcl:"cardinality,optional"`
	Components  []string `hcl:"components,optional"`
	Hosts       []string `hcl:"hosts,optional"`
}

// Configuration is one configuration block. Properties stays an expression
// here; the adapter evaluates it into a string map.
type Configuration struct {
	Type       string         `hcl:"type,label"`
	Properties hcl.Expression `hcl:"properties"`
}

// StackComponent is a stack_component override block.
type StackComponent struct {
	Name        string `hcl:"name,label"`
	Service     string `hcl:"service"`
	Cardinality string `hcl:"cardinality"`
	Master      bool   `hcl:"master,optional"`
}
