package ha

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/topoconf/internal/cardinality"
	"github.com/vk/topoconf/internal/configuration"
	"github.com/vk/topoconf/internal/ctxlog"
	"github.com/vk/topoconf/internal/topology"
	"github.com/vk/topoconf/internal/updater"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

func haTopology(t *testing.T) (*topology.Topology, []topology.Match) {
	t.Helper()
	top, err := topology.New(
		&topology.HostGroup{Name: "master1", Hosts: []string{"nn1host"}, Components: []string{"NAMENODE", "ZKFC"}},
		&topology.HostGroup{Name: "master2", Hosts: []string{"nn2host"}, Components: []string{"NAMENODE", "ZKFC"}},
	)
	require.NoError(t, err)

	matches, err := top.GroupsFor("NAMENODE", cardinality.Cardinality{Min: 1, Max: 2})
	require.NoError(t, err)
	return top, matches
}

func TestDetectNameNodeHA(t *testing.T) {
	cfg := configuration.New()
	assert.Nil(t, DetectNameNodeHA(cfg))

	cfg.Set("hdfs-site", "dfs.nameservices", "mycluster")
	cfg.Set("hdfs-site", "dfs.ha.namenodes.mycluster", "nn1, nn2")

	h := DetectNameNodeHA(cfg)
	require.NotNil(t, h)
	assert.Equal(t, []string{"mycluster"}, h.Nameservices)
	assert.Equal(t, []string{"nn1", "nn2"}, h.NameNodes["mycluster"])
}

func TestAddressProperties(t *testing.T) {
	cfg := configuration.New()
	cfg.Set("hdfs-site", "dfs.nameservices", "mycluster")
	cfg.Set("hdfs-site", "dfs.ha.namenodes.mycluster", "nn1,nn2")
	cfg.Set("hdfs-site", "dfs.namenode.rpc-address.mycluster.nn1", "localhost:8020")
	cfg.Set("hdfs-site", "dfs.namenode.rpc-address.mycluster.nn2", "localhost:8020")
	cfg.Set("hdfs-site", "dfs.namenode.http-address.mycluster.nn1", "localhost:50070")
	cfg.Set("hdfs-site", "dfs.namenode.rpc-address", "localhost:8020") // not part of the dynamic family

	h := DetectNameNodeHA(cfg)
	require.NotNil(t, h)

	props := h.AddressProperties(cfg)
	require.Len(t, props, 3)
	for _, p := range props {
		assert.Equal(t, "mycluster", p.Nameservice)
		assert.Contains(t, []string{"nn1", "nn2"}, p.NameNodeID)
	}
}

func TestResolveAddressAssignsDistinctHostsPerNameNode(t *testing.T) {
	top, matches := haTopology(t)

	cfg := configuration.New()
	cfg.Set("hdfs-site", "dfs.nameservices", "mycluster")
	cfg.Set("hdfs-site", "dfs.ha.namenodes.mycluster", "nn1,nn2")
	h := DetectNameNodeHA(cfg)

	v1, err := h.ResolveAddress(top, matches, AddressProperty{
		Key: "dfs.namenode.rpc-address.mycluster.nn1", Nameservice: "mycluster", NameNodeID: "nn1",
	}, "localhost:8020")
	require.NoError(t, err)
	assert.Equal(t, "nn1host:8020", v1)

	v2, err := h.ResolveAddress(top, matches, AddressProperty{
		Key: "dfs.namenode.rpc-address.mycluster.nn2", Nameservice: "mycluster", NameNodeID: "nn2",
	}, "localhost:8020")
	require.NoError(t, err)
	assert.Equal(t, "nn2host:8020", v2)
}

func TestResolveAddressPlaceholderAndConcrete(t *testing.T) {
	top, matches := haTopology(t)
	h := &NameNodeHA{Nameservices: []string{"mycluster"}, NameNodes: map[string][]string{"mycluster": {"nn1", "nn2"}}}
	prop := AddressProperty{Key: "dfs.namenode.http-address.mycluster.nn1", Nameservice: "mycluster", NameNodeID: "nn1"}

	resolved, err := h.ResolveAddress(top, matches, prop, "%HOSTGROUP::master2%:50070")
	require.NoError(t, err)
	assert.Equal(t, "nn2host:50070", resolved)

	concrete, err := h.ResolveAddress(top, matches, prop, "nn1host:50070")
	require.NoError(t, err)
	assert.Equal(t, "nn1host:50070", concrete)
}

func TestInitialNameNodeFixups(t *testing.T) {
	_, matches := haTopology(t)
	h := &NameNodeHA{Nameservices: []string{"mycluster"}}

	t.Run("unset pair gets deterministic assignment", func(t *testing.T) {
		cfg := configuration.New()
		fixups := h.InitialNameNodeFixups(cfg, matches)
		require.Len(t, fixups, 2)
		assert.Equal(t, Fixup{ConfigType: "hadoop-env", Key: "dfs_ha_initial_namenode_active", Value: "nn1host"}, fixups[0])
		assert.Equal(t, Fixup{ConfigType: "hadoop-env", Key: "dfs_ha_initial_namenode_standby", Value: "nn2host"}, fixups[1])
	})

	t.Run("operator values win", func(t *testing.T) {
		cfg := configuration.New()
		cfg.Set("hadoop-env", "dfs_ha_initial_namenode_active", "nn2host")
		cfg.Set("hadoop-env", "dfs_ha_initial_namenode_standby", "nn1host")
		assert.Empty(t, h.InitialNameNodeFixups(cfg, matches))
	})
}

func TestResourceManagerHAEnabled(t *testing.T) {
	cfg := configuration.New()
	assert.False(t, ResourceManagerHAEnabled(cfg))

	cfg.Set("yarn-site", "yarn.resourcemanager.ha.enabled", "true")
	assert.True(t, ResourceManagerHAEnabled(cfg))

	assert.Equal(t, cardinality.Cardinality{Min: 1, Max: 2}, ResourceManagerCardinality())
}

func TestHiveHAEnabled(t *testing.T) {
	cfg := configuration.New()
	assert.False(t, HiveHAEnabled(cfg))

	cfg.Set("hive-site", "hive.server2.support.dynamic.service.discovery", "true")
	assert.True(t, HiveHAEnabled(cfg))

	cfg2 := configuration.New()
	cfg2.Set("hive-site", "hive.metastore.uris", `thrift://h1:9083\,thrift://h2:9083`)
	assert.True(t, HiveHAEnabled(cfg2))
}

func TestResolveTempletonHiveProperties(t *testing.T) {
	top, err := topology.New(
		&topology.HostGroup{Name: "hive1", Hosts: []string{"ms1"}, Components: []string{"HIVE_METASTORE"}},
		&topology.HostGroup{Name: "hive2", Hosts: []string{"ms2"}, Components: []string{"HIVE_METASTORE"}},
	)
	require.NoError(t, err)

	matches, err := top.GroupsFor("HIVE_METASTORE", cardinality.AtLeast(1))
	require.NoError(t, err)
	res := updater.Resolution{Topology: top, Matches: matches}

	blob := `hive.metastore.local=false,hive.metastore.uris=thrift://localhost:9933,hive.metastore.sasl.enabled=false`
	result, err := ResolveTempletonHiveProperties(testContext(), res, blob, false)
	require.NoError(t, err)
	assert.Equal(t,
		`hive.metastore.local=false,hive.metastore.uris=thrift://ms1:9933\,thrift://ms2:9933,hive.metastore.sasl.enabled=false`,
		result.Value)

	// Export maps the escaped thrift list back to placeholders, keeping the
	// escaping convention byte-for-byte.
	exported, err := ResolveTempletonHiveProperties(testContext(), updater.Resolution{Topology: top}, result.Value, true)
	require.NoError(t, err)
	assert.Equal(t,
		`hive.metastore.local=false,hive.metastore.uris=thrift://%HOSTGROUP::hive1%:9933\,thrift://%HOSTGROUP::hive2%:9933,hive.metastore.sasl.enabled=false`,
		exported.Value)
}

func TestOozieHAEnabled(t *testing.T) {
	cfg := configuration.New()
	assert.False(t, OozieHAEnabled(cfg))

	cfg.Set("oozie-site", "oozie.services.ext", "org.apache.oozie.service.ZKLocksService,org.apache.oozie.service.ZKUUIDService")
	assert.True(t, OozieHAEnabled(cfg))

	cfg.Set("oozie-site", "oozie.services.ext", "org.apache.oozie.service.PartitionDependencyManagerService")
	assert.False(t, OozieHAEnabled(cfg))
}
