package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/topoconf/internal/cardinality"
)

func TestDefaultTable(t *testing.T) {
	s := Default()

	card, err := s.Cardinality("NAMENODE")
	require.NoError(t, err)
	assert.Equal(t, cardinality.Cardinality{Min: 1, Max: 2}, card)

	card, err = s.Cardinality("APP_TIMELINE_SERVER")
	require.NoError(t, err)
	assert.True(t, card.Optional())

	svc, ok := s.ServiceFor("ZOOKEEPER_SERVER")
	require.True(t, ok)
	assert.Equal(t, "ZOOKEEPER", svc)

	assert.True(t, s.IsMaster("RESOURCEMANAGER"))
	assert.False(t, s.IsMaster("DATANODE"))

	assert.Contains(t, s.ConfigTypesFor("HDFS"), "hdfs-site")
	assert.Empty(t, s.ExcludedConfigTypesFor("HDFS"))

	_, err = s.Cardinality("NO_SUCH_COMPONENT")
	require.Error(t, err)
}

func TestOverride(t *testing.T) {
	s := Default()
	s.Override(Component{
		Name:        "NAMENODE",
		Service:     "HDFS",
		Cardinality: cardinality.Exactly(1),
		Master:      true,
	})

	card, err := s.Cardinality("NAMENODE")
	require.NoError(t, err)
	assert.Equal(t, cardinality.Exactly(1), card)
}
