package analytics

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
)

// Service is durable analytics sink over badger. Every record expires after retention.
type Service struct {
	db        *badger.DB
	retention time.Duration
}

func NewService(db *badger.DB, retention time.Duration) *Service {
	return &Service{
		db:        db,
		retention: retention,
	}
}

// AppendTelemetry stores telemetry record and refreshes latest machine snapshot.
func (s *Service) AppendTelemetry(ctx context.Context, message entities.TelemetryMessage) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("AppendTelemetry: %w", err)
	}

	data, err := marshal(message)
	if err != nil {
		return fmt.Errorf("AppendTelemetry: %w", err)
	}

	if err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.SetEntry(badger.NewEntry(telemetryKey(message), data).WithTTL(s.retention)); err != nil {
			return err
		}

		return txn.SetEntry(badger.NewEntry(machineKey(message.FacilityID, message.MachineID), data).WithTTL(s.retention))
	}); err != nil {
		return fmt.Errorf("AppendTelemetry: %w", err)
	}

	return nil
}

func (s *Service) AppendAlert(_ context.Context, alert entities.Alert) error {
	data, err := marshal(alert)
	if err != nil {
		return fmt.Errorf("AppendAlert: %w", err)
	}

	if err = s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(alertKey(alert), data).WithTTL(s.retention))
	}); err != nil {
		return fmt.Errorf("AppendAlert: %w", err)
	}

	return nil
}

// ListMachines returns latest snapshot of every facility machine ordered by machine id.
func (s *Service) ListMachines(ctx context.Context, facilityID entities.FacilityID) (machines []entities.TelemetryMessage, err error) {
	prefix := facilityPrefix(machinePrefix, facilityID)
	err = scan(ctx, s.db, prefix, prefix, func(_ []byte, value []byte) error {
		var message entities.TelemetryMessage
		if err := unmarshal(value, &message); err != nil {
			return err
		}

		machines = append(machines, message)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ListMachines: %w", err)
	}

	return machines, nil
}

// ListUsage returns brews since given time aggregated per machine, recipe and hour.
func (s *Service) ListUsage(ctx context.Context, facilityID entities.FacilityID, since time.Time) (rows []entities.UsageRow, err error) {
	type usageKey struct {
		machineID int
		brewType  entities.BrewType
		hour      time.Time
	}

	counts := make(map[usageKey]int)
	err = scan(ctx, s.db, facilityPrefix(telemetryPrefix, facilityID), seekKey(telemetryPrefix, facilityID, since),
		func(_ []byte, value []byte) error {
			var message entities.TelemetryMessage
			if err := unmarshal(value, &message); err != nil {
				return err
			}

			if !message.BrewType.IsBrewed() {
				return nil
			}

			counts[usageKey{
				machineID: message.MachineID,
				brewType:  message.BrewType,
				hour:      message.Timestamp.UTC().Truncate(time.Hour),
			}]++
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsage: %w", err)
	}

	rows = make([]entities.UsageRow, 0, len(counts))
	for key, count := range counts {
		rows = append(rows, entities.UsageRow{
			MachineID: key.machineID,
			BrewType:  key.brewType,
			Count:     count,
			Timestamp: key.hour,
		})
	}

	slices.SortFunc(rows, func(a, b entities.UsageRow) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		if a.MachineID != b.MachineID {
			return a.MachineID - b.MachineID
		}
		return strings.Compare(a.BrewType.String(), b.BrewType.String())
	})

	return rows, nil
}

// ListAlerts returns facility alerts since given time, newest first.
func (s *Service) ListAlerts(ctx context.Context, facilityID entities.FacilityID, since time.Time) (alerts []entities.Alert, err error) {
	err = scan(ctx, s.db, facilityPrefix(alertPrefix, facilityID), seekKey(alertPrefix, facilityID, since),
		func(_ []byte, value []byte) error {
			var alert entities.Alert
			if err := unmarshal(value, &alert); err != nil {
				return err
			}

			alerts = append(alerts, alert)
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("ListAlerts: %w", err)
	}

	slices.Reverse(alerts)
	return alerts, nil
}

// ListFleetAlerts returns alerts of every facility since given time, newest first.
func (s *Service) ListFleetAlerts(ctx context.Context, since time.Time) (alerts []entities.Alert, err error) {
	sinceNano := since.UnixNano()
	prefix := []byte(alertPrefix)
	err = scan(ctx, s.db, prefix, prefix, func(key []byte, value []byte) error {
		if keyTimestamp(key) < sinceNano {
			return nil
		}

		var alert entities.Alert
		if err := unmarshal(value, &alert); err != nil {
			return err
		}

		alerts = append(alerts, alert)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ListFleetAlerts: %w", err)
	}

	slices.SortStableFunc(alerts, func(a, b entities.Alert) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return int(a.FacilityID - b.FacilityID)
	})
	return alerts, nil
}

// Summary aggregates fleet wide counters since given time.
func (s *Service) Summary(ctx context.Context, since time.Time) (summary entities.FleetSummary, err error) {
	facilities := make(map[entities.FacilityID]*entities.FacilitySummary)
	facility := func(id entities.FacilityID) *entities.FacilitySummary {
		if _, ok := facilities[id]; !ok {
			facilities[id] = &entities.FacilitySummary{FacilityID: id}
		}
		return facilities[id]
	}

	summary.Since = since.UTC()
	summary.BrewsByType = make(map[entities.BrewType]int)

	// latest snapshots
	prefix := []byte(machinePrefix)
	if err = scan(ctx, s.db, prefix, prefix, func(_ []byte, value []byte) error {
		var message entities.TelemetryMessage
		if err := unmarshal(value, &message); err != nil {
			return err
		}

		f := facility(message.FacilityID)
		f.TotalMachines++
		if message.Status == entities.MachineStatusOn {
			f.ActiveMachines++
		}
		return nil
	}); err != nil {
		return summary, fmt.Errorf("Summary: %w", err)
	}

	// brews and alerts in window
	sinceNano := since.UnixNano()
	prefix = []byte(telemetryPrefix)
	if err = scan(ctx, s.db, prefix, prefix, func(key []byte, value []byte) error {
		if keyTimestamp(key) < sinceNano {
			return nil
		}

		var message entities.TelemetryMessage
		if err := unmarshal(value, &message); err != nil {
			return err
		}

		if message.BrewType.IsBrewed() {
			facility(message.FacilityID).BrewsToday++
			summary.BrewsByType[message.BrewType]++
		}
		return nil
	}); err != nil {
		return summary, fmt.Errorf("Summary: %w", err)
	}

	prefix = []byte(alertPrefix)
	if err = scan(ctx, s.db, prefix, prefix, func(key []byte, value []byte) error {
		if keyTimestamp(key) < sinceNano {
			return nil
		}

		var alert entities.Alert
		if err := unmarshal(value, &alert); err != nil {
			return err
		}

		facility(alert.FacilityID).TotalAlerts++
		return nil
	}); err != nil {
		return summary, fmt.Errorf("Summary: %w", err)
	}

	summary.Facilities = lo.MapToSlice(facilities, func(_ entities.FacilityID, f *entities.FacilitySummary) entities.FacilitySummary {
		return *f
	})
	slices.SortFunc(summary.Facilities, func(a, b entities.FacilitySummary) int {
		return int(a.FacilityID - b.FacilityID)
	})

	for _, f := range summary.Facilities {
		summary.TotalMachines += f.TotalMachines
		summary.ActiveMachines += f.ActiveMachines
		summary.TotalAlerts += f.TotalAlerts
		summary.BrewsToday += f.BrewsToday
	}
	summary.TotalFacilities = len(summary.Facilities)

	return summary, nil
}

// scan walks keys with prefix starting at seek.
func scan(ctx context.Context, db *badger.DB, prefix, seek []byte, fn func(key, value []byte) error) error {
	return db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix

		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := it.Item()
			key := item.KeyCopy(nil)
			if err := item.Value(func(value []byte) error {
				return fn(key, value)
			}); err != nil {
				return err
			}
		}

		return nil
	})
}

// keyTimestamp extracts unix nano part of telemetry or alert key, -1 for malformed keys.
func keyTimestamp(key []byte) int64 {
	parts := bytes.Split(key, []byte(":"))
	if len(parts) < 3 {
		return -1
	}

	ts, err := strconv.ParseInt(string(parts[2]), 10, 64)
	if err != nil {
		return -1
	}

	return ts
}
