package models

import "time"

// TimeSlot is a bookable interval embedded in a Service. A Booking copies the
// slot's data at reservation time rather than pointing at it, so later edits to
// the service's slot list never change a confirmed booking.
type TimeSlot struct {
	Date      string   `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime string   `bson:"start_time" json:"startTime"` // "HH:MM"
	EndTime   string   `bson:"end_time" json:"endTime"`     // "HH:MM"
	Cost      float64  `bson:"cost" json:"cost"`
	Duration  int      `bson:"duration" json:"duration"` // minutes
	StaffIDs  []string `bson:"staff_ids,omitempty" json:"staffIds,omitempty"`
	IsBooked  bool     `bson:"is_booked" json:"isBooked"`
}

// StartsAt parses the slot's date and start time in the given location.
func (s TimeSlot) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", s.Date+" "+s.StartTime, loc)
}

// EndsAt parses the slot's date and end time in the given location.
func (s TimeSlot) EndsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", s.Date+" "+s.EndTime, loc)
}

// Service is an offering of a business with its own slot list.
type Service struct {
	ID          string     `bson:"id" json:"id"`
	BusinessID  string     `bson:"business_id" json:"businessId"`
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64    `bson:"price" json:"price"`
	Duration    int        `bson:"duration" json:"duration"` // minutes
	TimeSlots   []TimeSlot `bson:"time_slots" json:"timeSlots"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updatedAt"`
}
