package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ID
		wantErr bool
	}{
		{name: "number", in: `1`, want: "1"},
		{name: "large number keeps digits", in: `9007199254740993`, want: "9007199254740993"},
		{name: "string", in: `"c9a1"`, want: "c9a1"},
		{name: "null", in: `null`, want: ""},
		{name: "bool", in: `true`, wantErr: true},
		{name: "object", in: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.in), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestUser_DecodeNumericIDThenReencode(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"email":"a@b.com"}`), &u))
	assert.Equal(t, ID("1"), u.ID)

	b, err := json.Marshal(u)
	require.NoError(t, err)

	var again User
	require.NoError(t, json.Unmarshal(b, &again))
	assert.Equal(t, u, again)
}

func TestUser_Normalize(t *testing.T) {
	u := User{ID: "1", Email: "a@b.com"}.Normalize()
	assert.Equal(t, RoleUser, u.Role)
	assert.Equal(t, "", u.ImageURL)
	assert.False(t, u.IsAdmin())

	admin := User{ID: "2", Email: "x@y.z", Role: RoleAdmin}.Normalize()
	assert.Equal(t, RoleAdmin, admin.Role)
	assert.True(t, admin.IsAdmin())
}

func TestEnumValid(t *testing.T) {
	assert.True(t, MoodGood.Valid())
	assert.False(t, Mood("ECSTATIC").Valid())
	assert.True(t, FrequencyWeekly.Valid())
	assert.False(t, Frequency("HOURLY").Valid())
	assert.True(t, GoalAbandoned.Valid())
	assert.False(t, GoalStatus("").Valid())
}
