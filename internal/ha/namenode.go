package ha

import (
	"fmt"
	"strings"

	"github.com/vk/topoconf/internal/configuration"
	"github.com/vk/topoconf/internal/placeholder"
	"github.com/vk/topoconf/internal/topology"
)

// namenodeAddressPrefixes is the dynamic address-family a NameNode HA setup
// declares per nameservice and namenode id, e.g.
// dfs.namenode.rpc-address.mycluster.nn1.
var namenodeAddressPrefixes = []string{
	"dfs.namenode.rpc-address.",
	"dfs.namenode.servicerpc-address.",
	"dfs.namenode.http-address.",
	"dfs.namenode.https-address.",
}

const (
	hdfsSite  = "hdfs-site"
	hadoopEnv = "hadoop-env"

	initialActiveKey  = "dfs_ha_initial_namenode_active"
	initialStandbyKey = "dfs_ha_initial_namenode_standby"
)

// NameNodeHA describes an active NameNode HA configuration: the declared
// nameservices and, per nameservice, the namenode ids in declared order.
type NameNodeHA struct {
	Nameservices []string
	NameNodes    map[string][]string
}

// DetectNameNodeHA returns the parsed HA description when dfs.nameservices
// is non-empty, nil otherwise.
func DetectNameNodeHA(cfg *configuration.Configuration) *NameNodeHA {
	raw, ok := cfg.Get(hdfsSite, "dfs.nameservices")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}

	h := &NameNodeHA{
		Nameservices: splitTrimmed(raw),
		NameNodes:    make(map[string][]string),
	}
	for _, ns := range h.Nameservices {
		if ids, ok := cfg.Get(hdfsSite, "dfs.ha.namenodes."+ns); ok {
			h.NameNodes[ns] = splitTrimmed(ids)
		}
	}
	return h
}

// AddressProperty identifies one dynamic address-family property and the
// namenode slot it belongs to.
type AddressProperty struct {
	Key         string
	Nameservice string
	NameNodeID  string
}

// AddressProperties scans hdfs-site for every declared address-family
// property of this HA setup, in sorted key order.
func (h *NameNodeHA) AddressProperties(cfg *configuration.Configuration) []AddressProperty {
	var out []AddressProperty
	for _, key := range cfg.Keys(hdfsSite) {
		for _, prefix := range namenodeAddressPrefixes {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			suffix := key[len(prefix):]
			for _, ns := range h.Nameservices {
				if !strings.HasPrefix(suffix, ns+".") {
					continue
				}
				out = append(out, AddressProperty{
					Key:         key,
					Nameservice: ns,
					NameNodeID:  suffix[len(ns)+1:],
				})
			}
		}
	}
	return out
}

// namenodeSlot maps a namenode id to one resolved (group, host) pair. The
// pairs are flattened in topology declaration order; ids beyond the number of
// distinct hosts share the last pair.
func (h *NameNodeHA) namenodeSlot(matches []topology.Match, ns, id string) (string, error) {
	var hosts []string
	for _, m := range matches {
		hosts = append(hosts, m.Hosts...)
	}
	if len(hosts) == 0 {
		return "", fmt.Errorf("nameservice %q declares namenode %q but no NAMENODE host is available", ns, id)
	}

	idx := 0
	for i, candidate := range h.NameNodes[ns] {
		if candidate == id {
			idx = i
			break
		}
	}
	if idx >= len(hosts) {
		idx = len(hosts) - 1
	}
	return hosts[idx], nil
}

// ResolveAddress rewrites one address-family value for cluster creation:
// placeholders resolve through the topology, default literals take the
// namenode's slot host, and concrete hosts stay put.
func (h *NameNodeHA) ResolveAddress(top *topology.Topology, matches []topology.Match, prop AddressProperty, value string) (string, error) {
	if placeholder.Contains(value) {
		return placeholder.ReplaceAll(value, func(t placeholder.Token) (string, error) {
			group, ok := top.Group(t.HostGroup)
			if !ok || len(group.Hosts) == 0 {
				return "", &topology.UnresolvableReferenceError{HostGroup: t.HostGroup}
			}
			if t.HasPort() {
				return group.Hosts[0] + ":" + t.Port, nil
			}
			return group.Hosts[0], nil
		})
	}

	host, port, hasPort := splitHostPort(value)
	if host != "localhost" && host != "127.0.0.1" {
		return value, nil
	}
	slot, err := h.namenodeSlot(matches, prop.Nameservice, prop.NameNodeID)
	if err != nil {
		return "", err
	}
	if hasPort {
		return slot + ":" + port, nil
	}
	return slot, nil
}

// Fixup is one deferred hadoop-env mutation produced by the second pass.
type Fixup struct {
	ConfigType string
	Key        string
	Value      string
}

// InitialNameNodeFixups designates the initial active and standby namenodes
// when the operator has not pre-set them. The rule is deterministic: the
// first host (declared order) of the first NAMENODE-bearing host group
// (topology declaration order) becomes active; every remaining resolved host
// joins the standby value, comma-separated, in the same order. Pre-set
// values win and produce no fixup.
func (h *NameNodeHA) InitialNameNodeFixups(cfg *configuration.Configuration, matches []topology.Match) []Fixup {
	hosts := topology.HostsFor(matches)
	if len(hosts) == 0 {
		return nil
	}

	var fixups []Fixup
	if v, ok := cfg.Get(hadoopEnv, initialActiveKey); !ok || strings.TrimSpace(v) == "" {
		fixups = append(fixups, Fixup{ConfigType: hadoopEnv, Key: initialActiveKey, Value: hosts[0]})
	}
	if v, ok := cfg.Get(hadoopEnv, initialStandbyKey); !ok || strings.TrimSpace(v) == "" {
		if len(hosts) > 1 {
			fixups = append(fixups, Fixup{ConfigType: hadoopEnv, Key: initialStandbyKey, Value: strings.Join(hosts[1:], ",")})
		}
	}
	return fixups
}

func splitTrimmed(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func splitHostPort(value string) (host, port string, hasPort bool) {
	idx := strings.LastIndex(value, ":")
	if idx < 0 {
		return value, "", false
	}
	candidate := value[idx+1:]
	if candidate == "" {
		return value, "", false
	}
	for _, r := range candidate {
		if r < '0' || r > '9' {
			return value, "", false
		}
	}
	return value[:idx], candidate, true
}
