package config

// Model is the unified, format-agnostic representation of all loaded
// documents for one resolution run.
type Model struct {
	Blueprint      *Blueprint
	Cluster        *Cluster
	HostGroups     []*HostGroup
	Configurations []*Configuration
	StackOverrides []*StackComponent
}

// Blueprint carries the blueprint header block.
type Blueprint struct {
	Name  string
	Stack string
}

// Cluster carries the topology header block naming the blueprint it binds.
type Cluster struct {
	Name      string
	Blueprint string
}

// HostGroup is the merged view of a host group across the blueprint document
// (components, declared cardinality) and the topology document (hosts).
// Either side may be absent until both documents are loaded.
type HostGroup struct {
	Name        string
	Cardinality string
	Components  []string
	Hosts       []string
}

// Configuration is one configuration-type block of the template, already
// evaluated to plain strings.
type Configuration struct {
	Type       string
	Properties map[string]string
}

// StackComponent is one stack_component override block.
type StackComponent struct {
	Name        string
	Service     string
	Cardinality string
	Master      bool
}
