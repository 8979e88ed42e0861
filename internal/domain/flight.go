package domain

// Checkpoint — событие вылета или прилёта: код аэропорта и время.
// Создаётся только после успешной валидации обоих полей.
type Checkpoint struct {
	Code string `json:"code"`
	Time string `json:"time"`
}

// Flight — принятая запись о рейсе; владеет двумя checkpoint'ами по значению.
type Flight struct {
	FlightNumber string     `json:"flight_number"`
	Aircraft     string     `json:"aircraft"`
	Status       string     `json:"status"`
	Origin       Checkpoint `json:"origin"`
	Destination  Checkpoint `json:"destination"`
}
