package fleetclient

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/dashboard"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

const (
	facilityPath     = "/api/facility/{facilityId}"
	ownMachinesPath  = "/api/facility/machines"
	adminSummaryPath = "/api/admin/summary"
	adminAlertsPath  = "/api/admin/alerts"
)

type apiError struct {
	Error string `json:"error"`
}

// Service is dashboard api client.
type Service struct {
	client *resty.Client
}

func NewService(baseURL, token string) *Service {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(constants.FleetctlRetryCount).
		SetTimeout(constants.FleetctlReqTimeout).
		SetError(&apiError{})

	if !lo.IsEmpty(token) {
		client.SetAuthToken(token)
	}

	return &Service{
		client: client,
	}
}

// Machines returns machines of facility, own facility when facilityID is zero.
func (s *Service) Machines(ctx context.Context, facilityID entities.FacilityID) (resp dashboard.MachinesResponse, err error) {
	request := s.client.R().
		SetContext(ctx).
		SetResult(&resp)

	path := ownMachinesPath
	if facilityID != 0 {
		path = facilityPath + "/machines"
		request.SetPathParam(constants.FacilityIDURLParam, facilityID.String())
	}

	if err = s.do(request, path); err != nil {
		return resp, fmt.Errorf("Machines: %w", err)
	}

	return resp, nil
}

func (s *Service) Usage(ctx context.Context, facilityID entities.FacilityID, since string) (resp dashboard.UsageResponse, err error) {
	request := s.client.R().
		SetContext(ctx).
		SetPathParam(constants.FacilityIDURLParam, facilityID.String()).
		SetResult(&resp)

	if !lo.IsEmpty(since) {
		request.SetQueryParam(constants.SinceQueryParam, since)
	}

	if err = s.do(request, facilityPath+"/usage-history"); err != nil {
		return resp, fmt.Errorf("Usage: %w", err)
	}

	return resp, nil
}

func (s *Service) Alerts(ctx context.Context, facilityID entities.FacilityID, since string) (resp dashboard.AlertsResponse, err error) {
	request := s.client.R().
		SetContext(ctx).
		SetPathParam(constants.FacilityIDURLParam, facilityID.String()).
		SetResult(&resp)

	if !lo.IsEmpty(since) {
		request.SetQueryParam(constants.SinceQueryParam, since)
	}

	if err = s.do(request, facilityPath+"/alerts"); err != nil {
		return resp, fmt.Errorf("Alerts: %w", err)
	}

	return resp, nil
}

// FleetAlerts returns alerts of every facility, admin only.
func (s *Service) FleetAlerts(ctx context.Context, since string) (resp dashboard.AlertsResponse, err error) {
	request := s.client.R().
		SetContext(ctx).
		SetResult(&resp)

	if !lo.IsEmpty(since) {
		request.SetQueryParam(constants.SinceQueryParam, since)
	}

	if err = s.do(request, adminAlertsPath); err != nil {
		return resp, fmt.Errorf("FleetAlerts: %w", err)
	}

	return resp, nil
}

func (s *Service) Summary(ctx context.Context) (summary entities.FleetSummary, err error) {
	request := s.client.R().
		SetContext(ctx).
		SetResult(&summary)

	if err = s.do(request, adminSummaryPath); err != nil {
		return summary, fmt.Errorf("Summary: %w", err)
	}

	return summary, nil
}

func (s *Service) do(request *resty.Request, path string) error {
	resp, err := request.Get(path)
	if err != nil {
		return err
	}

	if resp.IsError() {
		message := resp.Status()
		if body, ok := resp.Error().(*apiError); ok && !lo.IsEmpty(body.Error) {
			message = body.Error
		}

		return fmt.Errorf("%d: %s: %w", resp.StatusCode(), message, errs.ErrAPIError)
	}

	return nil
}
