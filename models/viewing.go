package models

import "time"

// Viewing represents a confirmed property-viewing appointment.
type Viewing struct {
	ID            string    `bson:"id" json:"id"`                         // Unique viewing identifier (UUID)
	PropertyID    string    `bson:"property_id" json:"propertyId"`        // Listing being viewed
	PropertyTitle string    `bson:"property_title" json:"propertyTitle"`  // Denormalized listing label
	Date          string    `bson:"date" json:"date"`                     // Viewing date in "YYYY-MM-DD" format
	Time          string    `bson:"time" json:"time"`                     // Hourly slot, e.g. "14:00"
	Name          string    `bson:"name" json:"name"`                     // Visitor contact name
	Email         string    `bson:"email" json:"email"`                   // Visitor contact email
	Phone         string    `bson:"phone" json:"phone"`                   // Visitor contact phone
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"` // Timestamp when the viewing was booked
}

// TimeSlots is the fixed enumeration of bookable hourly slots, 09:00 through 18:00.
var TimeSlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// IsValidTimeSlot reports whether slot is one of the bookable hourly slots.
func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// ContactDetails is the contact form submitted at the final wizard step.
type ContactDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"`
}

// ViewingConfirmation is the read-only summary returned once a viewing is booked.
type ViewingConfirmation struct {
	ViewingID     string `json:"viewingId"`
	PropertyTitle string `json:"propertyTitle"`
	Date          string `json:"date"` // long form, e.g. "Monday, 2 March 2026"
	Time          string `json:"time"` // 12-hour clock, e.g. "2:00 PM"
	Message       string `json:"message"`
}
