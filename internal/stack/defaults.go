package stack

import "github.com/vk/topoconf/internal/cardinality"

// Default returns the built-in Hadoop-family stack table covering every
// component the default updater registry references.
func Default() *Stack {
	exactly1 := cardinality.Exactly(1)
	oneOrMore := cardinality.AtLeast(1)
	zeroOrMore := cardinality.AtLeast(0)
	zeroOrOne := cardinality.Cardinality{Min: 0, Max: 1}
	oneOrTwo := cardinality.Cardinality{Min: 1, Max: 2}

	components := []Component{
		{Name: "NAMENODE", Service: "HDFS", Cardinality: oneOrTwo, Master: true},
		{Name: "SECONDARY_NAMENODE", Service: "HDFS", Cardinality: exactly1, Master: true},
		{Name: "DATANODE", Service: "HDFS", Cardinality: oneOrMore},
		{Name: "JOURNALNODE", Service: "HDFS", Cardinality: zeroOrMore},
		{Name: "ZKFC", Service: "HDFS", Cardinality: zeroOrMore},

		// A second ResourceManager group is only legal once RM HA is
		// enabled; the resolver relaxes this to 1-2 in that case.
		{Name: "RESOURCEMANAGER", Service: "YARN", Cardinality: exactly1, Master: true},
		{Name: "NODEMANAGER", Service: "YARN", Cardinality: oneOrMore},
		{Name: "APP_TIMELINE_SERVER", Service: "YARN", Cardinality: zeroOrOne, Master: true},

		{Name: "HISTORYSERVER", Service: "MAPREDUCE2", Cardinality: exactly1, Master: true},

		{Name: "ZOOKEEPER_SERVER", Service: "ZOOKEEPER", Cardinality: oneOrMore, Master: true},

		{Name: "HIVE_SERVER", Service: "HIVE", Cardinality: oneOrMore, Master: true},
		{Name: "HIVE_METASTORE", Service: "HIVE", Cardinality: oneOrMore, Master: true},
		{Name: "MYSQL_SERVER", Service: "HIVE", Cardinality: zeroOrOne},
		{Name: "WEBHCAT_SERVER", Service: "HIVE", Cardinality: zeroOrOne, Master: true},

		{Name: "OOZIE_SERVER", Service: "OOZIE", Cardinality: oneOrMore, Master: true},

		{Name: "HBASE_MASTER", Service: "HBASE", Cardinality: oneOrMore, Master: true},
		{Name: "HBASE_REGIONSERVER", Service: "HBASE", Cardinality: oneOrMore},

		{Name: "NIMBUS", Service: "STORM", Cardinality: exactly1, Master: true},
		{Name: "SUPERVISOR", Service: "STORM", Cardinality: oneOrMore},

		{Name: "KAFKA_BROKER", Service: "KAFKA", Cardinality: oneOrMore, Master: true},

		{Name: "ACCUMULO_MASTER", Service: "ACCUMULO", Cardinality: oneOrMore, Master: true},

		{Name: "GANGLIA_SERVER", Service: "GANGLIA", Cardinality: exactly1, Master: true},
	}

	services := []Service{
		{Name: "HDFS", ConfigTypes: []string{"core-site", "hdfs-site", "hadoop-env"}},
		{Name: "YARN", ConfigTypes: []string{"yarn-site"}},
		{Name: "MAPREDUCE2", ConfigTypes: []string{"mapred-site"}},
		{Name: "ZOOKEEPER", ConfigTypes: []string{"zoo.cfg", "zookeeper-env"}},
		{Name: "HIVE", ConfigTypes: []string{"hive-site", "hive-env", "webhcat-site"}},
		{Name: "OOZIE", ConfigTypes: []string{"oozie-site", "oozie-env"}},
		{Name: "HBASE", ConfigTypes: []string{"hbase-site", "hbase-env"}},
		{Name: "STORM", ConfigTypes: []string{"storm-site"}},
		{Name: "KAFKA", ConfigTypes: []string{"kafka-broker"}},
		{Name: "ACCUMULO", ConfigTypes: []string{"accumulo-site"}},
		{Name: "GANGLIA", ConfigTypes: []string{"ganglia-env"}},
	}

	return New(components, services)
}
