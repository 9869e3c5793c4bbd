package domain

import (
	"slices"
	"time"
)

const (
	RoleUser         = "user"
	RoleAdmin        = "admin"
	RoleProductAdmin = "product_admin"
	RoleUserAdmin    = "user_admin"
)

// Address is the postal address attached to a user profile.
type Address struct {
	City    string `json:"city" bson:"city"`
	Address string `json:"address" bson:"address"`
}

// User models an account. The session lives on the record itself: Token is
// empty when logged out, and Expired (when set) is the instant the token stops
// being accepted. A user holds at most one live token.
type User struct {
	ID          int        `json:"id" bson:"id"`
	Email       string     `json:"email" bson:"email"`
	Password    string     `json:"password" bson:"password"`
	Token       string     `json:"token" bson:"token"`
	PhoneNumber string     `json:"phoneNumber" bson:"phoneNumber"`
	Address     Address    `json:"address" bson:"address"`
	Avatar      string     `json:"avatar" bson:"avatar"`
	Rules       []string   `json:"rules" bson:"rules"`
	Expired     *time.Time `json:"expired,omitempty" bson:"expired,omitempty"`
}

// HasAnyRole reports whether the user's role set intersects roles.
func (u User) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if slices.Contains(u.Rules, r) {
			return true
		}
	}
	return false
}

// AddRole appends role when absent and reports whether the set changed.
func (u *User) AddRole(role string) bool {
	if slices.Contains(u.Rules, role) {
		return false
	}
	u.Rules = append(u.Rules, role)
	return true
}

// SessionExpired reports whether the stored token is past its expiry at now.
// A token without an expiry lives until logout.
func (u User) SessionExpired(now time.Time) bool {
	return u.Expired != nil && !now.Before(*u.Expired)
}

// ClearSession logs the user out.
func (u *User) ClearSession() {
	u.Token = ""
	u.Expired = nil
}

// Clone returns a copy that shares no slices or pointers with u.
func (u User) Clone() User {
	u.Rules = cloneStrings(u.Rules)
	if u.Expired != nil {
		exp := *u.Expired
		u.Expired = &exp
	}
	return u
}
