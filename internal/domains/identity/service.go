package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

// Claims issued by login service.
type Claims struct {
	Role       string        `json:"role"`
	FacilityID FacilityClaim `json:"facilityId"`
	jwt.RegisteredClaims
}

// FacilityClaim is facility assignment of token. Null, empty string and zero mean no assignment.
type FacilityClaim struct {
	ID *entities.FacilityID
}

func (c *FacilityClaim) UnmarshalJSON(data []byte) error {
	raw := string(bytes.TrimSpace(data))
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("UnmarshalJSON: %w", err)
		}
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		c.ID = nil
		return nil
	}

	if value, err := strconv.ParseInt(raw, 10, 64); err == nil && value == 0 {
		c.ID = nil
		return nil
	}

	id, err := entities.ParseFacilityID(raw)
	if err != nil {
		return fmt.Errorf("UnmarshalJSON: %w", err)
	}

	c.ID = &id
	return nil
}

type contextKey struct{}

// Service resolves bearer tokens to authorization context.
type Service struct {
	secret []byte
	parser *jwt.Parser
}

func NewService(secret string) *Service {
	return &Service{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Resolve verifies token and builds authorization context.
// Unknown roles are kept as is and denied later by authorization.
func (s *Service) Resolve(token string) (actx entities.AuthorizationContext, err error) {
	var claims Claims
	if _, err = s.parser.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return actx, fmt.Errorf("Resolve: %w: %w", errs.ErrUnauthenticated, err)
	}

	if lo.IsEmpty(claims.Subject) {
		return actx, fmt.Errorf("Resolve: empty subject: %w", errs.ErrUnauthenticated)
	}

	role, err := entities.NormalizeRole(claims.Role)
	if err != nil {
		return entities.AuthorizationContext{
			Subject: claims.Subject,
			Role:    entities.Role(strings.ToUpper(strings.TrimSpace(claims.Role))),
		}, nil
	}

	if role == entities.RoleAdmin {
		return entities.NewAdminContext(claims.Subject), nil
	}

	return entities.NewFacilityContext(claims.Subject, claims.FacilityID.ID), nil
}

// Authenticate resolves caller of http request. Websocket clients may pass token in query.
func (s *Service) Authenticate(r *http.Request) (actx entities.AuthorizationContext, err error) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		token = r.URL.Query().Get(constants.AccessTokenQueryParam)
	}

	if lo.IsEmpty(strings.TrimSpace(token)) {
		return actx, fmt.Errorf("Authenticate: missing bearer token: %w", errs.ErrUnauthenticated)
	}

	if actx, err = s.Resolve(strings.TrimSpace(token)); err != nil {
		return actx, fmt.Errorf("Authenticate: %w", err)
	}

	return actx, nil
}

func WithContext(ctx context.Context, actx entities.AuthorizationContext) context.Context {
	return context.WithValue(ctx, contextKey{}, actx)
}

func FromContext(ctx context.Context) (actx entities.AuthorizationContext, ok bool) {
	actx, ok = ctx.Value(contextKey{}).(entities.AuthorizationContext)
	return actx, ok
}
