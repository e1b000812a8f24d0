package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func stageValue(t *testing.T, stage bson.D, key string) bson.M {
	t.Helper()
	require.Len(t, stage, 1)
	require.Equal(t, key, stage[0].Key)
	v, ok := stage[0].Value.(bson.M)
	require.True(t, ok)
	return v
}

func TestEventStatsPipeline(t *testing.T) {
	eventID := primitive.NewObjectID()
	pipeline := eventStatsPipeline(eventID)
	require.Len(t, pipeline, 5)

	match := stageValue(t, pipeline[0], "$match")
	assert.Equal(t, eventID, match["eventId"])

	lookup := stageValue(t, pipeline[1], "$lookup")
	assert.Equal(t, "users", lookup["from"])
	assert.Equal(t, "userId", lookup["localField"])

	group := stageValue(t, pipeline[3], "$group")
	assert.Equal(t, bson.M{"$sum": "$attendees"}, group["totalAttendees"])
	assert.Equal(t, bson.M{"$sum": "$amount"}, group["totalRevenue"])
	assert.Equal(t, bson.M{"$addToSet": "$owner.homeNumber"}, group["houses"])

	project := stageValue(t, pipeline[4], "$project")
	assert.Equal(t, bson.M{"$size": "$houses"}, project["uniqueHouses"])
}

func TestPopulateStagesJoinEventAndOwner(t *testing.T) {
	stages := populateStages()
	require.Len(t, stages, 5)

	eventLookup := stageValue(t, stages[0], "$lookup")
	assert.Equal(t, "events", eventLookup["from"])
	assert.Equal(t, "eventId", eventLookup["localField"])

	// Bookings must survive event deletion with a nil event.
	eventUnwind := stageValue(t, stages[1], "$unwind")
	assert.Equal(t, true, eventUnwind["preserveNullAndEmptyArrays"])

	userLookup := stageValue(t, stages[2], "$lookup")
	assert.Equal(t, "users", userLookup["from"])

	project := stageValue(t, stages[4], "$project")
	assert.Equal(t, 0, project["user.password"])
}
