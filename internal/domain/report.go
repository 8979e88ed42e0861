package domain

import "fmt"

// Report — итог разбора одного источника.
type Report struct {
	Flights  []Flight             // принятые рейсы в порядке документа
	Total    int                  // найдено узлов flight
	Rejected int                  // отброшено узлов flight
	Reasons  map[RejectReason]int // отказы по причинам
}

// Summary — краткая сводка вида "2 valid / 1 invalid".
func (r Report) Summary() string {
	return fmt.Sprintf("%d valid / %d invalid", len(r.Flights), r.Rejected)
}
