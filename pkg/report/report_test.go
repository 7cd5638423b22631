package report_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bimmap/pkg/constants"
	"github.com/agentstation/bimmap/pkg/datamodel"
	"github.com/agentstation/bimmap/pkg/report"
	"github.com/agentstation/bimmap/pkg/types"
)

func sample() *datamodel.Bundle {
	return &datamodel.Bundle{
		Entities: []datamodel.ResolvedEntity{
			{ID: 1, Name: types.Some("Wall"), System: "RevitX, SAP"},
			{ID: 2, Name: types.Some("Door"), System: "RevitX"},
			{ID: 3, Name: types.Some("Window"), System: constants.EntityMismatch},
			{ID: 4, Name: types.Some("Roof"), System: "RevitX"},
		},
		Attributes: []datamodel.ResolvedAttribute{
			{ID: 10000, Name: types.Some("WallID"), EntityID: types.Some(1), System: "RevitX"},
			{ID: 10001, Name: types.Some("DoorWidth"), EntityID: types.Some(2), System: "RevitX"},
			{ID: 10002, Name: types.Some("DoorHeight"), EntityID: types.Some(2), System: constants.AttributeMismatch},
			{ID: 10003, Name: types.Some("Pitch"), System: constants.AttributeMismatch},
		},
		Relationships: []datamodel.ResolvedRelationship{
			{Parent: types.Some("Wall"), Child: types.Some("Door"), Type: constants.StandardEntity},
			{Parent: types.Some("Ghost"), Child: types.Some("Wall"), Type: constants.ReferenceDataTable},
			{Parent: types.Some("Wall"), Child: types.None[string](), Type: constants.StandardEntity},
			{Parent: types.Some("Ghost"), Child: types.Some("Attic"), Type: constants.StandardEntity},
		},
		Meta: datamodel.Meta{Stats: datamodel.Stats{UnexpectedFlags: 1}},
	}
}

func TestBuild(t *testing.T) {
	r := report.Build(sample(), 0)

	t.Run("mismatches", func(t *testing.T) {
		assert.Equal(t, []report.EntityMismatch{{ID: 3, Name: "Window"}}, r.EntityMismatches)
		assert.Equal(t, []report.AttributeMismatch{
			{ID: 10002, Name: "DoorHeight", EntityID: "2"},
			{ID: 10003, Name: "Pitch", EntityID: ""},
		}, r.AttributeMismatches)
	})

	t.Run("missing endpoints", func(t *testing.T) {
		assert.Equal(t, []string{"Ghost"}, r.MissingParents)
		assert.Equal(t, []string{"", "Attic"}, r.MissingChildren)
	})

	t.Run("distributions", func(t *testing.T) {
		assert.Equal(t, []report.Count{
			{Label: constants.StandardEntity, Count: 3},
			{Label: constants.ReferenceDataTable, Count: 1},
		}, r.RelationshipTypes)
		assert.Equal(t, []report.Count{
			{Label: "RevitX", Count: 2},
			{Label: "RevitX, SAP", Count: 1},
			{Label: constants.EntityMismatch, Count: 1},
		}, r.EntitySystems)
	})

	t.Run("attributes per entity", func(t *testing.T) {
		assert.Equal(t, []report.EntityAttributes{
			{ID: 2, Name: "Door", Count: 2},
			{ID: 1, Name: "Wall", Count: 1},
			{ID: 3, Name: "Window", Count: 0},
			{ID: 4, Name: "Roof", Count: 0},
		}, r.AttributesPerEntity)
		assert.Equal(t, constants.DefaultTopEntities, r.TopN)
	})

	t.Run("issues", func(t *testing.T) {
		assert.True(t, r.HasIssues())
		assert.Equal(t, 1, r.UnexpectedFlags)
	})
}

func TestBuildTopN(t *testing.T) {
	b := &datamodel.Bundle{}
	for i := 1; i <= 20; i++ {
		b.Entities = append(b.Entities, datamodel.ResolvedEntity{ID: i, Name: types.Some(fmt.Sprintf("E%02d", i)), System: "S"})
		for j := 0; j < i; j++ {
			b.Attributes = append(b.Attributes, datamodel.ResolvedAttribute{EntityID: types.Some(i), System: "S"})
		}
	}

	r := report.Build(b, 0)
	require.Len(t, r.AttributesPerEntity, 15)
	assert.Equal(t, 20, r.AttributesPerEntity[0].Count)
	assert.Equal(t, 6, r.AttributesPerEntity[14].Count)

	r = report.Build(b, 3)
	assert.Len(t, r.AttributesPerEntity, 3)
	assert.False(t, r.HasIssues())
}

func TestBuildEmpty(t *testing.T) {
	r := report.Build(&datamodel.Bundle{}, 5)
	assert.Empty(t, r.EntityMismatches)
	assert.Empty(t, r.MissingParents)
	assert.Empty(t, r.RelationshipTypes)
	assert.Empty(t, r.AttributesPerEntity)
	assert.False(t, r.HasIssues())
}

func TestDistribution(t *testing.T) {
	assert.Equal(t, []report.Count{
		{Label: "a", Count: 2},
		{Label: "b", Count: 2},
		{Label: "c", Count: 1},
	}, report.Distribution([]string{"b", "c", "a", "b", "a"}))
}
