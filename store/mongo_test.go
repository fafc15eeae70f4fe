package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestChangesToUpdate(t *testing.T) {
	t.Run("NonNilValuesAreSet", func(t *testing.T) {
		update := changesToUpdate(Changes{"name": "Ada", "order": 2})

		require.Contains(t, update, "$set")
		assert.NotContains(t, update, "$unset")
		set := update["$set"].(bson.M)
		assert.Equal(t, "Ada", set["name"])
		assert.Equal(t, 2, set["order"])
	})

	t.Run("NilValuesRemoveTheField", func(t *testing.T) {
		update := changesToUpdate(Changes{"otp_code": nil, "otp_expires_at": nil})

		require.Contains(t, update, "$unset")
		assert.NotContains(t, update, "$set")
		unset := update["$unset"].(bson.M)
		assert.Contains(t, unset, "otp_code")
		assert.Contains(t, unset, "otp_expires_at")
	})

	t.Run("MixedChangesSplit", func(t *testing.T) {
		update := changesToUpdate(Changes{"is_active": false, "otp_code": nil})

		set := update["$set"].(bson.M)
		unset := update["$unset"].(bson.M)
		assert.Equal(t, false, set["is_active"])
		assert.NotContains(t, set, "otp_code")
		assert.Contains(t, unset, "otp_code")
	})
}
