package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

func TestParseFacilityID(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name        string
		raw         string
		expectedID  entities.FacilityID
		expectedErr error
	}{
		{name: "plain", raw: "7", expectedID: 7},
		{name: "leading zeros", raw: "007", expectedID: 7},
		{name: "surrounding whitespace", raw: "  12 ", expectedID: 12},
		{name: "plus sign", raw: "+3", expectedID: 3},
		{name: "empty", raw: "   ", expectedErr: errs.ErrInvalidFacilityID},
		{name: "not a number", raw: "seven", expectedErr: errs.ErrInvalidFacilityID},
		{name: "zero", raw: "0", expectedErr: errs.ErrInvalidFacilityID},
		{name: "negative", raw: "-4", expectedErr: errs.ErrInvalidFacilityID},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			id, err := entities.ParseFacilityID(testCase.raw)
			if testCase.expectedErr != nil {
				require.ErrorIs(t, err, testCase.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expectedID, id)
		})
	}
}

func TestFacilityID_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var payload struct {
		Number entities.FacilityID `json:"number"`
		Text   entities.FacilityID `json:"text"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"number": 7, "text": " 007"}`), &payload))
	assert.Equal(t, entities.FacilityID(7), payload.Number)
	assert.Equal(t, entities.FacilityID(7), payload.Text)

	err := json.Unmarshal([]byte(`{"number": "abc"}`), &payload)
	require.ErrorIs(t, err, errs.ErrInvalidFacilityID)
}

func TestNormalizeRole(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		input        string
		expectedRole entities.Role
		expectedErr  error
	}{
		{input: "ADMIN", expectedRole: entities.RoleAdmin},
		{input: " role_admin ", expectedRole: entities.RoleAdmin},
		{input: "facility", expectedRole: entities.RoleFacility},
		{input: "ROLE_TECHNICIAN", expectedRole: entities.RoleFacility},
		{input: "technician", expectedRole: entities.RoleFacility},
		{input: "guest", expectedErr: errs.ErrUnknownRole},
		{input: "", expectedErr: errs.ErrUnknownRole},
	}

	for _, testCase := range testTable {
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			role, err := entities.NormalizeRole(testCase.input)
			if testCase.expectedErr != nil {
				require.ErrorIs(t, err, testCase.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expectedRole, role)
		})
	}
}

func TestSupplies(t *testing.T) {
	t.Parallel()

	levels := entities.Supplies{Water: 5, Milk: 0, Beans: 4, Sugar: 0.5}

	assert.False(t, levels.Covers(entities.Supplies{Water: 8, Beans: 4}))
	assert.True(t, levels.Covers(entities.Supplies{Water: 5, Beans: 4, Sugar: 0.5}))
	assert.Equal(t,
		entities.Supplies{Water: 0, Milk: 0, Beans: 0, Sugar: 0},
		levels.Subtract(entities.Supplies{Water: 6, Milk: 1, Beans: 4, Sugar: 0.5}),
	)
}
