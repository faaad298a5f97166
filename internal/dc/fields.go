package dc

import (
	"errors"
	"strings"
)

const fieldSeparator = ";"

var errNotPositive = errors.New("must be a positive integer")

// materialize writes the fields carried by a closed scope into rec.
func materialize(scope ScopeKind, text string, rec *Record) error {
	switch scope {
	case ScopeSuspectInfo:
		parts, err := splitFields(scope, text, 6)
		if err != nil {
			return err
		}
		age, err := parseDigits(parts[3])
		if err != nil || age <= 0 {
			return &FieldError{Scope: scope, Field: FieldSuspectAge, Raw: parts[3], Reason: "invalid age", Err: errNotPositive}
		}
		rec.SuspectName = parts[0]
		rec.SuspectID = parts[1]
		rec.SuspectRace = parts[2]
		rec.SuspectAge = age
		rec.SuspectGender = parts[4]
		rec.SuspectNationality = parts[5]

	case ScopeChargeInfo:
		parts, err := splitFields(scope, text, 3)
		if err != nil {
			return err
		}
		date, err := formatField(scope, FieldOffenseDate, parts[1])
		if err != nil {
			return err
		}
		rec.ChargeTitle = parts[0]
		rec.OffenseDate = date
		rec.ChargeExplanation = parts[2]

	case ScopeStatute:
		statute := strings.TrimSpace(text)
		if statute == "" {
			return &FieldError{Scope: scope, Field: FieldStatute, Reason: "no statute text"}
		}
		rec.Statute = statute

	case ScopeChargingOfficer:
		parts, err := splitFields(scope, text, 3)
		if err != nil {
			return err
		}
		date, err := formatField(scope, FieldChargingDate, parts[2])
		if err != nil {
			return err
		}
		rec.ChargingOfficerName = parts[0]
		rec.ChargingOfficerRoleAndDivision = parts[1]
		rec.ChargingDate = date
	}
	return nil
}

func splitFields(scope ScopeKind, text string, want int) ([]string, error) {
	parts := strings.Split(text, fieldSeparator)
	if len(parts) != want {
		return nil, &FieldError{Scope: scope, Expected: want, Actual: len(parts), Raw: text}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

func formatField(scope ScopeKind, field, raw string) (string, error) {
	date, err := FormatDate(raw)
	if err != nil {
		return "", &FieldError{Scope: scope, Field: field, Raw: raw, Reason: err.Error(), Err: err}
	}
	return date, nil
}
