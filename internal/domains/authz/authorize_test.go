package authz_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/authz"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	mustParse := func(raw string) entities.FacilityID {
		id, err := entities.ParseFacilityID(raw)
		require.NoError(t, err)
		return id
	}

	testTable := []struct {
		name           string
		actx           entities.AuthorizationContext
		requested      entities.FacilityID
		expectedResult authz.Result
	}{
		{
			name:           "admin reads any facility",
			actx:           entities.NewAdminContext("admin"),
			requested:      8,
			expectedResult: authz.Result{Decision: authz.Allow, Reason: authz.ReasonNone},
		},
		{
			name:           "admin reads unknown facility",
			actx:           entities.NewAdminContext("admin"),
			requested:      999999,
			expectedResult: authz.Result{Decision: authz.Allow, Reason: authz.ReasonNone},
		},
		{
			name:           "facility user reads own facility",
			actx:           entities.NewFacilityContext("tech", lo.ToPtr(entities.FacilityID(7))),
			requested:      7,
			expectedResult: authz.Result{Decision: authz.Allow, Reason: authz.ReasonNone},
		},
		{
			name:           "facility user reads other facility",
			actx:           entities.NewFacilityContext("tech", lo.ToPtr(entities.FacilityID(7))),
			requested:      8,
			expectedResult: authz.Result{Decision: authz.Deny, Reason: authz.ReasonFacilityMismatch},
		},
		{
			name:           "facility user without assignment",
			actx:           entities.NewFacilityContext("tech", nil),
			requested:      7,
			expectedResult: authz.Result{Decision: authz.Deny, Reason: authz.ReasonNoFacilityAssignment},
		},
		{
			name:           "textual facility id is normalized",
			actx:           entities.NewFacilityContext("tech", lo.ToPtr(entities.FacilityID(7))),
			requested:      mustParse("007"),
			expectedResult: authz.Result{Decision: authz.Allow, Reason: authz.ReasonNone},
		},
		{
			name:           "unknown role",
			actx:           entities.AuthorizationContext{Subject: "guest", Role: "GUEST"},
			requested:      7,
			expectedResult: authz.Result{Decision: authz.Deny, Reason: authz.ReasonUnknownRole},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result := authz.Authorize(testCase.actx, testCase.requested)
			assert.Equal(t, testCase.expectedResult, result)
			assert.Equal(t, testCase.expectedResult.Decision == authz.Allow, result.Allowed())
		})
	}
}

func TestAuthorizeFleet(t *testing.T) {
	t.Parallel()

	assert.True(t, authz.AuthorizeFleet(entities.NewAdminContext("admin")).Allowed())
	assert.Equal(t,
		authz.Result{Decision: authz.Deny, Reason: authz.ReasonAdminOnly},
		authz.AuthorizeFleet(entities.NewFacilityContext("tech", lo.ToPtr(entities.FacilityID(1)))),
	)
	assert.Equal(t,
		authz.Result{Decision: authz.Deny, Reason: authz.ReasonUnknownRole},
		authz.AuthorizeFleet(entities.AuthorizationContext{Subject: "guest"}),
	)
}
