package models

// Hospital represents a hospital listed on the patient "Find Care" view
// TokensAvailable is a display field; bookings do not decrement it
type Hospital struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	Specializations []string `json:"specializations"`
	Rating          float64  `json:"rating"`
	TokensAvailable int      `json:"tokensAvailable"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	WaitTime        string   `json:"waitTimes,omitempty"`
}

// HospitalInput carries the admin-supplied fields of a new hospital
type HospitalInput struct {
	Name            string   `json:"name" binding:"required"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	Specializations []string `json:"specializations"`
	Rating          float64  `json:"rating"`
	ImageURL        string   `json:"imageUrl"`
	WaitTime        string   `json:"waitTimes"`
}
