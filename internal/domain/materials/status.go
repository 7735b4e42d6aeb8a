package materials

type Status string

const (
	StatusNormal   Status = "normal"
	StatusWarning  Status = "warning"
	StatusAbnormal Status = "abnormal"
)

// WarningThreshold остаток ниже порога считается предупреждением.
const WarningThreshold = 10

// DeriveStatus вычисляет статус по остатку. Ручная пометка (pinned) сильнее остатка.
func DeriveStatus(qty int, pinned bool) Status {
	switch {
	case pinned:
		return StatusAbnormal
	case qty < WarningThreshold:
		return StatusWarning
	default:
		return StatusNormal
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusNormal, StatusWarning, StatusAbnormal:
		return true
	}
	return false
}
