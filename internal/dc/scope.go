package dc

// ScopeKind names a delimited section of a charge block.
type ScopeKind uint8

const (
	ScopeNone ScopeKind = iota
	ScopeOutputFormat
	ScopeSuspectInfo
	ScopeChargeInfo
	ScopeStatute
	ScopeChargingOfficer
	ScopeComment

	numScopes
)

// String returns the human-readable section name used in diagnostics.
func (s ScopeKind) String() string {
	switch s {
	case ScopeOutputFormat:
		return "output format"
	case ScopeSuspectInfo:
		return "suspect information"
	case ScopeChargeInfo:
		return "charge information"
	case ScopeStatute:
		return "statute"
	case ScopeChargingOfficer:
		return "charging officer information"
	case ScopeComment:
		return "comment"
	}
	return "none"
}

// Delimiters returns the marker characters that bound the scope.
func (s ScopeKind) Delimiters() string {
	switch s {
	case ScopeOutputFormat:
		return "`"
	case ScopeSuspectInfo:
		return "<>"
	case ScopeChargeInfo:
		return "[]"
	case ScopeStatute:
		return "@"
	case ScopeChargingOfficer:
		return "{}"
	case ScopeComment:
		return "#"
	}
	return ""
}

// carriesData reports whether words inside the scope accumulate into a field.
func (s ScopeKind) carriesData() bool {
	switch s {
	case ScopeSuspectInfo, ScopeChargeInfo, ScopeStatute, ScopeChargingOfficer:
		return true
	}
	return false
}

// matchStack is the insertion-ordered set of currently open scopes.
type matchStack []ScopeKind

func (m matchStack) has(s ScopeKind) bool {
	for _, open := range m {
		if open == s {
			return true
		}
	}
	return false
}

func (m *matchStack) push(s ScopeKind) {
	*m = append(*m, s)
}

func (m *matchStack) remove(s ScopeKind) {
	st := *m
	for i, open := range st {
		if open == s {
			*m = append(st[:i], st[i+1:]...)
			return
		}
	}
}
