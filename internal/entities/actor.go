package entities

// Actor — аутентифицированный инициатор операции. Владение назначением
// проверяется по DriverID до любой мутации, админ проходит всегда.
type Actor struct {
	DriverID int64
	Login    string
	IsAdmin  bool
}

func (a Actor) CanMutate(assignmentDriverID *int64) bool {
	if a.IsAdmin {
		return true
	}
	return assignmentDriverID != nil && *assignmentDriverID == a.DriverID
}
