package utility

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"touch_crm/internal/common"
)

func TestParseObjectID(t *testing.T) {
	id, err := ParseObjectID("5f1b7c3e9d1e8a2b3c4d5e6f")
	require.NoError(t, err)
	assert.Equal(t, "5f1b7c3e9d1e8a2b3c4d5e6f", ObjectID2String(id))

	for _, bad := range []string{"", "abc", "5f1b7c3e9d1e8a2b3c4d5e6z", "김철수"} {
		_, err := ParseObjectID(bad)
		assert.ErrorIs(t, err, common.ErrInvalidIdentifier, bad)

		var appErr *common.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, common.StatusBadRequest, appErr.StatusCode)
	}
}

func TestToMapAndDropEmptyStrings(t *testing.T) {
	type doc struct {
		Name   string `bson:"cust_name"`
		Mobile string `bson:"cust_mobile"`
		Count  int    `bson:"count"`
	}
	m, err := ToMap(doc{Name: "김철수"})
	require.NoError(t, err)
	assert.Equal(t, "", m["cust_mobile"])

	m = DropEmptyStrings(m)
	assert.Equal(t, map[string]interface{}{"cust_name": "김철수", "count": int32(0)}, m)
}

func TestBsonWrapper(t *testing.T) {
	assert.True(t, (&BsonWrapper{}).IsEmpty())

	w := BsonWrapper{Unset: map[string]interface{}{"cust_mobile": ""}}
	assert.False(t, w.IsEmpty())

	raw, err := bson.Marshal(w)
	require.NoError(t, err)
	var decoded bson.M
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	_, hasSet := decoded["$set"]
	assert.False(t, hasSet)
	assert.Equal(t, bson.M{"cust_mobile": ""}, decoded["$unset"])
}

func TestCurrentTimeString(t *testing.T) {
	parsed, err := time.Parse(time.RFC3339, CurrentTimeString())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 2*time.Second)
}

func TestGoProtect_RecoversPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		GoProtect(func() { panic("boom") })
	})
}
