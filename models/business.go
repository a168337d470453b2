package models

import "time"

// BankDetails is collected for manual payouts; no transfer is performed in-process.
type BankDetails struct {
	AccountHolder string `bson:"account_holder,omitempty" json:"accountHolder,omitempty"`
	AccountNumber string `bson:"account_number,omitempty" json:"accountNumber,omitempty"`
	BankName      string `bson:"bank_name,omitempty" json:"bankName,omitempty"`
	RoutingNumber string `bson:"routing_number,omitempty" json:"routingNumber,omitempty"`
}

// Business represents a service business (salon, grooming, massage, ...).
type Business struct {
	ID          string      `bson:"id" json:"id"`
	OwnerID     string      `bson:"owner_id" json:"ownerId"`
	Name        string      `bson:"name" json:"name"`
	Category    string      `bson:"category" json:"category"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	Email       string      `bson:"email" json:"email"`
	PhoneNumber string      `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	Address     string      `bson:"address,omitempty" json:"address,omitempty"`
	City        string      `bson:"city,omitempty" json:"city,omitempty"`
	BankDetails BankDetails `bson:"bank_details,omitempty" json:"bankDetails,omitempty"`
	CreatedAt   time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updatedAt"`
}

// Staff is a member of a business's team. Staff are soft-deactivated, never
// hard-deleted, so historical bookings keep a resolvable reference.
type Staff struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"business_id" json:"businessId"`
	Name       string    `bson:"name" json:"name"`
	Role       string    `bson:"role,omitempty" json:"role,omitempty"`
	Email      string    `bson:"email,omitempty" json:"email,omitempty"`
	IsActive   bool      `bson:"is_active" json:"isActive"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}
