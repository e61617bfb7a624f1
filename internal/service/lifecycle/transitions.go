package lifecycle

import "dispatch/internal/entities"

// successors перечисляет допустимые переходы. Повтор текущего статуса
// разрешен для нетерминальных состояний и обрабатывается идемпотентно:
// метки времени не перештамповываются. Из терминальных выхода нет.
var successors = map[entities.AssignmentStatusType][]entities.AssignmentStatusType{
	entities.AssignmentAssigned: {
		entities.AssignmentAssigned,
		entities.AssignmentAccepted,
		entities.AssignmentCancelled,
		entities.AssignmentBroken,
	},
	entities.AssignmentAccepted: {
		entities.AssignmentAccepted,
		entities.AssignmentStarted,
		entities.AssignmentCancelled,
		entities.AssignmentBroken,
	},
	entities.AssignmentStarted: {
		entities.AssignmentStarted,
		entities.AssignmentDelivered,
		entities.AssignmentCancelled,
		entities.AssignmentBroken,
	},
	entities.AssignmentBroken: {
		entities.AssignmentBroken,
		entities.AssignmentStarted,
		entities.AssignmentCancelled,
	},
	entities.AssignmentDelivered: {},
	entities.AssignmentCancelled: {},
}

func isKnownStatus(status entities.AssignmentStatusType) bool {
	_, ok := successors[status]
	return ok
}

func canTransition(from, to entities.AssignmentStatusType) bool {
	for _, next := range successors[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NormalizeStatus переводит легаси-написания (in_progress, completed) в
// канонический словарь. Используется на границе HTTP, внутри движка
// легаси-значения не живут.
func NormalizeStatus(raw string) entities.AssignmentStatusType {
	switch raw {
	case "in_progress":
		return entities.AssignmentStarted
	case "completed":
		return entities.AssignmentDelivered
	default:
		return entities.AssignmentStatusType(raw)
	}
}
