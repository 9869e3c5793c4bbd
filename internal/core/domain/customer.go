package domain

// Customer is a read-only contact record managed by user admins.
type Customer struct {
	ID          int    `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email" bson:"email"`
	PhoneNumber string `json:"phoneNumber" bson:"phoneNumber"`
	City        string `json:"city" bson:"city"`
	Address     string `json:"address" bson:"address"`
}
