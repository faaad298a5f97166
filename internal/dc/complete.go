package dc

// CheckComplete verifies every required field of rec was populated. The
// first missing field in a fixed order is reported, so diagnostics are
// reproducible.
func CheckComplete(rec *Record) error {
	checks := []struct {
		field   string
		missing bool
	}{
		{FieldSuspectName, rec.SuspectName == ""},
		{FieldSuspectID, rec.SuspectID == ""},
		{FieldSuspectRace, rec.SuspectRace == ""},
		{FieldSuspectAge, rec.SuspectAge == 0},
		{FieldSuspectGender, rec.SuspectGender == ""},
		{FieldSuspectNationality, rec.SuspectNationality == ""},
		{FieldChargeTitle, rec.ChargeTitle == ""},
		{FieldOffenseDate, rec.OffenseDate == ""},
		{FieldChargeExplanation, rec.ChargeExplanation == ""},
		{FieldStatute, rec.Statute == ""},
		{FieldOfficerName, rec.ChargingOfficerName == ""},
		{FieldOfficerRole, rec.ChargingOfficerRoleAndDivision == ""},
		{FieldChargingDate, rec.ChargingDate == ""},
		{FieldOutputFormat, rec.OutputFormat == ""},
	}
	for _, c := range checks {
		if c.missing {
			return &IncompleteError{Field: c.field}
		}
	}
	return nil
}
