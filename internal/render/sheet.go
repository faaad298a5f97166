package render

import (
	"fmt"
	"strconv"

	"github.com/dgallion1/dc4u/internal/dc"
)

const sheetTitle = "Draft Charge"

type line struct {
	Label string
	Value string
}

// sheet is the fixed charge sheet layout shared by every renderer.
type sheet struct {
	Title   string
	Accused []line
	Charge  string
	Officer []line
}

func newSheet(rec *dc.Record) sheet {
	return sheet{
		Title: sheetTitle,
		Accused: []line{
			{"Name", rec.SuspectName},
			{"Identification No.", rec.SuspectID},
			{"Race", rec.SuspectRace},
			{"Age", strconv.Itoa(rec.SuspectAge)},
			{"Gender", rec.SuspectGender},
			{"Nationality", rec.SuspectNationality},
		},
		Charge: fmt.Sprintf("You, %s, are charged that you, on %s, did commit the offence of %s, "+
			"to wit: %s, and you have thereby committed an offence punishable under %s.",
			rec.SuspectName, rec.OffenseDate, rec.ChargeTitle, rec.ChargeExplanation, rec.Statute),
		Officer: []line{
			{"Charging Officer", rec.ChargingOfficerName},
			{"Role and Division", rec.ChargingOfficerRoleAndDivision},
			{"Date of Charge", rec.ChargingDate},
		},
	}
}
