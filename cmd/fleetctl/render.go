package main

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/dashboard"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
)

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)

	return t
}

func renderMachines(w io.Writer, resp dashboard.MachinesResponse) {
	t := newTable(w, table.Row{"MACHINE", "FACILITY", "STATUS", "TEMP", "WATER", "MILK", "BEANS", "SUGAR", "LAST BREW", "UPDATED"})
	for _, m := range resp.Machines {
		t.AppendRow(table.Row{
			m.MachineID, m.FacilityID, m.Status, m.Temperature,
			level(m.WaterLevel), level(m.MilkLevel), level(m.BeansLevel), level(m.SugarLevel),
			m.BrewType, timestamp(m.Timestamp),
		})
	}
	t.SetCaption("%d alerts in last 24h, refreshed %s", len(resp.Alerts), timestamp(resp.RefreshedAt))
	t.Render()
}

func renderUsage(w io.Writer, resp dashboard.UsageResponse) {
	t := newTable(w, table.Row{"HOUR", "MACHINE", "BREW", "COUNT"})

	var total int
	for _, row := range resp.Rows {
		t.AppendRow(table.Row{timestamp(row.Timestamp), row.MachineID, row.BrewType, row.Count})
		total += row.Count
	}
	t.AppendFooter(table.Row{"", "", "TOTAL", total})
	t.SetCaption("since %s", timestamp(resp.Since))
	t.Render()
}

func renderAlerts(w io.Writer, resp dashboard.AlertsResponse) {
	t := newTable(w, table.Row{"TIME", "FACILITY", "MACHINE", "TYPE", "MESSAGE"})
	for _, alert := range resp.Alerts {
		t.AppendRow(table.Row{timestamp(alert.Timestamp), alert.FacilityID, alert.MachineID, alert.Type, alert.Message})
	}
	t.Render()
}

func renderSummary(w io.Writer, summary entities.FleetSummary) {
	t := newTable(w, table.Row{"FACILITY", "MACHINES", "ACTIVE", "ALERTS", "BREWS"})
	for _, f := range summary.Facilities {
		t.AppendRow(table.Row{f.FacilityID, f.TotalMachines, f.ActiveMachines, f.TotalAlerts, f.BrewsToday})
	}
	t.AppendFooter(table.Row{
		fmt.Sprintf("%d facilities", summary.TotalFacilities),
		summary.TotalMachines, summary.ActiveMachines, summary.TotalAlerts, summary.BrewsToday,
	})
	t.Render()

	brewTypes := lo.Keys(summary.BrewsByType)
	slices.Sort(brewTypes)

	byType := newTable(w, table.Row{"BREW", "COUNT"})
	for _, brewType := range brewTypes {
		byType.AppendRow(table.Row{brewType, summary.BrewsByType[brewType]})
	}
	byType.SetCaption("since %s", timestamp(summary.Since))
	byType.Render()
}

func level(value float64) string {
	return fmt.Sprintf("%.1f", value)
}

func timestamp(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}

	return ts.UTC().Format(time.DateTime)
}
