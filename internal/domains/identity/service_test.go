package identity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/authz"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/authz/authz_mocks"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/identity"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

const (
	testSecret = "0123456789abcdef0123"
)

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(role string, facilityID any) jwt.MapClaims {
	claims := jwt.MapClaims{
		"sub":  "user@example.com",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	if facilityID != nil {
		claims["facilityId"] = facilityID
	}

	return claims
}

func TestService_Resolve(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name         string
		token        func(t *testing.T) string
		expectedActx entities.AuthorizationContext
		expectedErr  error
	}{
		{
			name: "admin",
			token: func(t *testing.T) string {
				return sign(t, testSecret, validClaims("ROLE_ADMIN", nil))
			},
			expectedActx: entities.NewAdminContext("user@example.com"),
		},
		{
			name: "facility user with numeric facility",
			token: func(t *testing.T) string {
				return sign(t, testSecret, validClaims("facility", 7))
			},
			expectedActx: entities.NewFacilityContext("user@example.com", lo.ToPtr(entities.FacilityID(7))),
		},
		{
			name: "technician with textual facility",
			token: func(t *testing.T) string {
				return sign(t, testSecret, validClaims("technician", "007"))
			},
			expectedActx: entities.NewFacilityContext("user@example.com", lo.ToPtr(entities.FacilityID(7))),
		},
		{
			name: "facility user without facility",
			token: func(t *testing.T) string {
				return sign(t, testSecret, validClaims("FACILITY", nil))
			},
			expectedActx: entities.NewFacilityContext("user@example.com", nil),
		},
		{
			name: "facility user with empty facility",
			token: func(t *testing.T) string {
				return sign(t, testSecret, validClaims("FACILITY", ""))
			},
			expectedActx: entities.NewFacilityContext("user@example.com", nil),
		},
		{
			name: "facility user with zero facility",
			token: func(t *testing.T) string {
				return sign(t, testSecret, validClaims("FACILITY", 0))
			},
			expectedActx: entities.NewFacilityContext("user@example.com", nil),
		},
		{
			name: "facility user with zero textual facility",
			token: func(t *testing.T) string {
				return sign(t, testSecret, validClaims("FACILITY", " 0 "))
			},
			expectedActx: entities.NewFacilityContext("user@example.com", nil),
		},
		{
			name: "facility user with negative facility",
			token: func(t *testing.T) string {
				return sign(t, testSecret, validClaims("FACILITY", -4))
			},
			expectedErr: errs.ErrUnauthenticated,
		},
		{
			name: "unknown role is kept",
			token: func(t *testing.T) string {
				return sign(t, testSecret, validClaims("guest", 7))
			},
			expectedActx: entities.AuthorizationContext{Subject: "user@example.com", Role: "GUEST"},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, "another-secret-value", validClaims("ADMIN", nil))
			},
			expectedErr: errs.ErrUnauthenticated,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				claims := validClaims("ADMIN", nil)
				claims["exp"] = time.Now().Add(-time.Minute).Unix()
				return sign(t, testSecret, claims)
			},
			expectedErr: errs.ErrUnauthenticated,
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				claims := validClaims("ADMIN", nil)
				delete(claims, "sub")
				return sign(t, testSecret, claims)
			},
			expectedErr: errs.ErrUnauthenticated,
		},
		{
			name: "garbage",
			token: func(_ *testing.T) string {
				return "not-a-token"
			},
			expectedErr: errs.ErrUnauthenticated,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			service := identity.NewService(testSecret)
			actx, err := service.Resolve(testCase.token(t))
			if testCase.expectedErr != nil {
				require.ErrorIs(t, err, testCase.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expectedActx, actx)
		})
	}
}

func TestService_ResolveUnassignedDenied(t *testing.T) {
	t.Parallel()

	service := identity.NewService(testSecret)
	metricsService := authz_mocks.NewMockIMetricsService(t)
	metricsService.EXPECT().IncAuthzDecision(mock.Anything, mock.Anything).Return().Maybe()
	authzService := authz.NewService(metricsService)

	for _, facilityID := range []any{"", 0} {
		actx, err := service.Resolve(sign(t, testSecret, validClaims("FACILITY", facilityID)))
		require.NoError(t, err)

		result := authzService.Check(actx, 3)
		assert.False(t, result.Allowed())
		assert.Equal(t, authz.ReasonNoFacilityAssignment, result.Reason)
	}
}

func TestService_Authenticate(t *testing.T) {
	t.Parallel()

	service := identity.NewService(testSecret)
	token := sign(t, testSecret, validClaims("ADMIN", nil))

	r := httptest.NewRequest(http.MethodGet, "/api/admin/summary", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	actx, err := service.Authenticate(r)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleAdmin, actx.Role)

	r = httptest.NewRequest(http.MethodGet, "/api/facility/1/live?access_token="+token, nil)
	actx, err = service.Authenticate(r)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleAdmin, actx.Role)

	r = httptest.NewRequest(http.MethodGet, "/api/admin/summary", nil)
	_, err = service.Authenticate(r)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestContext(t *testing.T) {
	t.Parallel()

	_, ok := identity.FromContext(context.Background())
	assert.False(t, ok)

	actx := entities.NewAdminContext("admin")
	stored, ok := identity.FromContext(identity.WithContext(context.Background(), actx))
	require.True(t, ok)
	assert.Equal(t, actx, stored)
}
