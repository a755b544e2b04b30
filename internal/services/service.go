package services

// Service is one entry of the offered services catalog. Price and
// duration are estimates and optional, active controls whether the
// service is shown as bookable.
type Service struct {
	Id          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Active      bool     `json:"active"`
}
