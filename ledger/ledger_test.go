package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReserveFilterGuardsCapacityAtomically(t *testing.T) {
	eventID := primitive.NewObjectID()
	filter := reserveFilter(eventID, 4)

	assert.Equal(t, eventID, filter["_id"])
	// The capacity check must live in the filter itself so the check and
	// the increment are one server-side operation.
	assert.Equal(t, bson.M{
		"$lte": bson.A{
			bson.M{"$add": bson.A{"$attendees", 4}},
			"$capacity",
		},
	}, filter["$expr"])
}

func TestReserveUpdateIncrementsAttendees(t *testing.T) {
	update := reserveUpdate(4)

	assert.Equal(t, bson.M{"attendees": 4}, update["$inc"])

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Contains(t, set, "updatedAt")
}

func TestReleaseUpdateFloorsAtZero(t *testing.T) {
	pipeline := releaseUpdate(3)
	require.Len(t, pipeline, 1)

	stage := pipeline[0]
	require.Equal(t, "$set", stage[0].Key)

	set, ok := stage[0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{
		"$max": bson.A{0, bson.M{"$subtract": bson.A{"$attendees", 3}}},
	}, set["attendees"])
	assert.Contains(t, set, "updatedAt")
}
