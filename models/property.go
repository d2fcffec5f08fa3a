package models

// PropertyLocation identifies where a listing sits; used for display only.
type PropertyLocation struct {
	District string `json:"district"`
	City     string `json:"city"`
}

// Property is the caller-supplied shape of the listing a viewing is booked for.
// The scheduler only reads the identifier and labels; the listing store itself
// lives outside this service.
type Property struct {
	ID       string           `json:"id" binding:"required"`
	Title    string           `json:"title" binding:"required"`
	Location PropertyLocation `json:"location"`
}
