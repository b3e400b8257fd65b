package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

// FacilityID is the normalized numeric identity of a facility.
type FacilityID int64

// ParseFacilityID converts textual facility representation ("7", " 007 ", "+7") to its numeric identity.
func ParseFacilityID(raw string) (id FacilityID, err error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return id, fmt.Errorf("ParseFacilityID: empty value: %w", errs.ErrInvalidFacilityID)
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return id, fmt.Errorf("ParseFacilityID: %q: %w", raw, errs.ErrInvalidFacilityID)
	}

	if parsed <= 0 {
		return id, fmt.Errorf("ParseFacilityID: %q is not positive: %w", raw, errs.ErrInvalidFacilityID)
	}

	return FacilityID(parsed), nil
}

func (id FacilityID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// UnmarshalJSON accepts both JSON numbers and numeric strings.
func (id *FacilityID) UnmarshalJSON(data []byte) (err error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err = json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("UnmarshalJSON: %w", err)
		}

		*id, err = ParseFacilityID(raw)
		return err
	}

	*id, err = ParseFacilityID(string(data))
	return err
}
