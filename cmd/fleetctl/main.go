package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/dashboard"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/fleetclient"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

type options struct {
	api      string
	token    string
	facility int64
	since    string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "fleetctl",
		Short:         "Query coffee fleet dashboard api",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.api, "api", constants.DefaultFleetAPIURL, "dashboard api url")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv(constants.FleetctlTokenEnv), "bearer token, defaults to $"+constants.FleetctlTokenEnv)

	root.AddCommand(
		newMachinesCmd(opts),
		newUsageCmd(opts),
		newAlertsCmd(opts),
		newSummaryCmd(opts),
	)

	return root
}

func (o *options) client() *fleetclient.Service {
	return fleetclient.NewService(o.api, o.token)
}

func (o *options) facilityID(required bool) (entities.FacilityID, error) {
	if o.facility == 0 && !required {
		return 0, nil
	}

	if o.facility <= 0 {
		return 0, fmt.Errorf("--facility %d: %w", o.facility, errs.ErrInvalidFacilityID)
	}

	return entities.FacilityID(o.facility), nil
}

func newMachinesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "machines",
		Short: "List latest machine states of facility",
		RunE: func(cmd *cobra.Command, _ []string) error {
			facilityID, err := opts.facilityID(false)
			if err != nil {
				return err
			}

			resp, err := opts.client().Machines(cmd.Context(), facilityID)
			if err != nil {
				return err
			}

			renderMachines(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().Int64Var(&opts.facility, "facility", 0, "facility id, own facility when omitted")
	return cmd
}

func newUsageCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Show hourly brew usage of facility",
		RunE: func(cmd *cobra.Command, _ []string) error {
			facilityID, err := opts.facilityID(true)
			if err != nil {
				return err
			}

			resp, err := opts.client().Usage(cmd.Context(), facilityID, opts.since)
			if err != nil {
				return err
			}

			renderUsage(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().Int64Var(&opts.facility, "facility", 0, "facility id")
	cmd.Flags().StringVar(&opts.since, "since", "", "lookback duration or RFC3339 time (default 24h)")
	_ = cmd.MarkFlagRequired("facility")
	return cmd
}

func newAlertsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List recent alerts of facility, every facility when omitted (admin only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			facilityID, err := opts.facilityID(false)
			if err != nil {
				return err
			}

			var resp dashboard.AlertsResponse
			if facilityID == 0 {
				resp, err = opts.client().FleetAlerts(cmd.Context(), opts.since)
			} else {
				resp, err = opts.client().Alerts(cmd.Context(), facilityID, opts.since)
			}
			if err != nil {
				return err
			}

			renderAlerts(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().Int64Var(&opts.facility, "facility", 0, "facility id, every facility when omitted")
	cmd.Flags().StringVar(&opts.since, "since", "", "lookback duration or RFC3339 time (default 24h)")
	return cmd
}

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show fleet summary (admin only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := opts.client().Summary(cmd.Context())
			if err != nil {
				return err
			}

			renderSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}
