package entity

// Plan is a paid listing tier controlling visibility and duration.
type Plan struct {
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	DurationDays int     `json:"duration_days"`
	Featured     bool    `json:"featured"`
	Premium      bool    `json:"premium"`
}

var Plans = map[string]Plan{
	"standard": {Name: "standard", Amount: 500, Currency: "NGN", DurationDays: 7, Featured: false, Premium: false},
	"featured": {Name: "featured", Amount: 1500, Currency: "NGN", DurationDays: 14, Featured: true, Premium: false},
	"pro":      {Name: "pro", Amount: 3000, Currency: "NGN", DurationDays: 30, Featured: false, Premium: true},
	"premium":  {Name: "premium", Amount: 5000, Currency: "NGN", DurationDays: 30, Featured: true, Premium: true},
}
