package dc

// OutputFormat is the rendering target declared by a charge block.
type OutputFormat string

const (
	FormatPDF  OutputFormat = "PDF"
	FormatHTML OutputFormat = "HTML"
	FormatTXT  OutputFormat = "TXT"
	FormatMD   OutputFormat = "MD"
	FormatDOC  OutputFormat = "DOC"
)

// Formats lists every supported output format.
var Formats = []OutputFormat{FormatPDF, FormatHTML, FormatTXT, FormatMD, FormatDOC}

// ParseOutputFormat matches a format literal exactly.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	for _, f := range Formats {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// Record is a draft charge assembled from one block.
type Record struct {
	OutputFormat OutputFormat `json:"output_format"`

	SuspectName        string `json:"suspect_name"`
	SuspectID          string `json:"suspect_id"`
	SuspectRace        string `json:"suspect_race"`
	SuspectAge         int    `json:"suspect_age"`
	SuspectGender      string `json:"suspect_gender"`
	SuspectNationality string `json:"suspect_nationality"`

	ChargeTitle       string `json:"charge_title"`
	OffenseDate       string `json:"offense_date"`
	ChargeExplanation string `json:"charge_explanation"`

	Statute string `json:"statute"`

	ChargingOfficerName            string `json:"charging_officer_name"`
	ChargingOfficerRoleAndDivision string `json:"charging_officer_role_and_division"`
	ChargingDate                   string `json:"charging_date"`
}

// Field labels used in diagnostics.
const (
	FieldSuspectName        = "suspect name"
	FieldSuspectID          = "suspect ID"
	FieldSuspectRace        = "suspect race"
	FieldSuspectAge         = "suspect age"
	FieldSuspectGender      = "suspect gender"
	FieldSuspectNationality = "suspect nationality"
	FieldChargeTitle        = "charge title"
	FieldOffenseDate        = "date of offense"
	FieldChargeExplanation  = "charge explanation"
	FieldStatute            = "statute"
	FieldOfficerName        = "charging officer name"
	FieldOfficerRole        = "charging officer role and division"
	FieldChargingDate       = "date of charge"
	FieldOutputFormat       = "output format"
)
