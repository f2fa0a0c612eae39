package registry

// Default builds the built-in updater table for the Hadoop service family.
// The table is deliberately data, not code: adding a property means adding a
// row here, never a new conditional in the resolver.
func Default() *Registry {
	r := New()

	single := func(configType, key, component string) {
		r.Register(Entry{ConfigType: configType, Key: key, Component: component, Kind: SingleHost})
	}
	multi := func(configType, key, component string) {
		r.Register(Entry{ConfigType: configType, Key: key, Component: component, Kind: MultiHost})
	}

	// core-site
	single("core-site", "fs.defaultFS", "NAMENODE")
	single("core-site", "fs.default.name", "NAMENODE")
	multi("core-site", "ha.zookeeper.quorum", "ZOOKEEPER_SERVER")

	// hdfs-site
	single("hdfs-site", "dfs.namenode.rpc-address", "NAMENODE")
	single("hdfs-site", "dfs.namenode.http-address", "NAMENODE")
	single("hdfs-site", "dfs.namenode.https-address", "NAMENODE")
	single("hdfs-site", "dfs.http.address", "NAMENODE")
	single("hdfs-site", "dfs.https.address", "NAMENODE")
	single("hdfs-site", "dfs.namenode.secondary.http-address", "SECONDARY_NAMENODE")
	single("hdfs-site", "dfs.secondary.http.address", "SECONDARY_NAMENODE")

	// yarn-site
	single("yarn-site", "yarn.resourcemanager.hostname", "RESOURCEMANAGER")
	single("yarn-site", "yarn.resourcemanager.address", "RESOURCEMANAGER")
	single("yarn-site", "yarn.resourcemanager.admin.address", "RESOURCEMANAGER")
	single("yarn-site", "yarn.resourcemanager.resource-tracker.address", "RESOURCEMANAGER")
	single("yarn-site", "yarn.resourcemanager.scheduler.address", "RESOURCEMANAGER")
	single("yarn-site", "yarn.resourcemanager.webapp.address", "RESOURCEMANAGER")
	single("yarn-site", "yarn.resourcemanager.webapp.https.address", "RESOURCEMANAGER")
	single("yarn-site", "yarn.timeline-service.address", "APP_TIMELINE_SERVER")
	single("yarn-site", "yarn.timeline-service.webapp.address", "APP_TIMELINE_SERVER")
	single("yarn-site", "yarn.timeline-service.webapp.https.address", "APP_TIMELINE_SERVER")
	multi("yarn-site", "yarn.resourcemanager.zk-address", "ZOOKEEPER_SERVER")
	r.Register(Entry{ConfigType: "yarn-site", Key: "yarn.log.server.url", Component: "HISTORYSERVER", Kind: EmbeddedURL})

	// mapred-site
	single("mapred-site", "mapreduce.jobhistory.address", "HISTORYSERVER")
	single("mapred-site", "mapreduce.jobhistory.webapp.address", "HISTORYSERVER")

	// hive-site
	multi("hive-site", "hive.metastore.uris", "HIVE_METASTORE")
	multi("hive-site", "hive.zookeeper.quorum", "ZOOKEEPER_SERVER")
	multi("hive-site", "hive.cluster.delegation.token.store.zookeeper.connectString", "ZOOKEEPER_SERVER")
	r.Register(Entry{ConfigType: "hive-site", Key: "javax.jdo.option.ConnectionURL", Component: "MYSQL_SERVER", Kind: EmbeddedURL})

	// webhcat-site
	multi("webhcat-site", "templeton.zookeeper.hosts", "ZOOKEEPER_SERVER")
	multi("webhcat-site", "templeton.hive.properties", "HIVE_METASTORE")

	// oozie-site
	single("oozie-site", "oozie.base.url", "OOZIE_SERVER")
	single("oozie-site", "oozie.authentication.kerberos.name.rules", "OOZIE_SERVER")
	multi("oozie-site", "oozie.zookeeper.connection.string", "ZOOKEEPER_SERVER")

	// hbase-site
	single("hbase-site", "hbase.rootdir", "NAMENODE")
	multi("hbase-site", "hbase.zookeeper.quorum", "ZOOKEEPER_SERVER")

	// storm-site
	single("storm-site", "nimbus.host", "NIMBUS")
	r.Register(Entry{ConfigType: "storm-site", Key: "storm.zookeeper.servers", Component: "ZOOKEEPER_SERVER", Kind: BracketedList})

	// kafka-broker
	multi("kafka-broker", "zookeeper.connect", "ZOOKEEPER_SERVER")

	// accumulo-site
	single("accumulo-site", "instance.volumes", "NAMENODE")
	multi("accumulo-site", "instance.zookeeper.host", "ZOOKEEPER_SERVER")

	return r
}
