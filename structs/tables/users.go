package tables

import (
	"time"

	"github.com/google/uuid"
)

// User is the account record. Email is the login identifier; accounts start
// inactive and are activated through the email verification flow.
type User struct {
	tableName    struct{}   `bun:"table:users,alias:u"`
	Id           uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Email        string     `bun:"email,unique,notnull" json:"email"`
	FirstName    string     `bun:"first_name,notnull" json:"first_name"`
	LastName     string     `bun:"last_name" json:"last_name,omitempty"`
	Country      string     `bun:"country" json:"country,omitempty"`
	MobileNumber string     `bun:"mobile_number,unique,notnull" json:"mobile_number"`
	Gender       string     `bun:"gender" json:"gender,omitempty"` // Male, Female, Other
	PasswordHash string     `bun:"password_hash,notnull" json:"-"`
	ProfileId    *uuid.UUID `bun:"profile_id,type:uuid,unique" json:"profile_id,omitempty"`
	AddressId    *uuid.UUID `bun:"address_id,type:uuid,unique" json:"address_id,omitempty"`
	IsActive     bool       `bun:"is_active,notnull,default:false" json:"is_active"`
	IsStaff      bool       `bun:"is_staff,notnull,default:false" json:"is_staff"`
	LastLogin    *time.Time `bun:"last_login" json:"last_login,omitempty"`
	CreatedAt    time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt    time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Profile *Profile `bun:"rel:belongs-to,join:profile_id=id" json:"profile,omitempty"`
	Address *Address `bun:"rel:belongs-to,join:address_id=id" json:"address,omitempty"`
}

type Profile struct {
	tableName   struct{}  `bun:"table:profiles,alias:pr"`
	Id          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Description string    `bun:"description" json:"description,omitempty"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// Address rows are keyed by a generated uuid rather than a sequential id.
type Address struct {
	tableName            struct{}  `bun:"table:addresses,alias:a"`
	Id                   uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	FullName             string    `bun:"full_name,notnull" json:"full_name"`
	Phone                string    `bun:"phone,notnull" json:"phone"`
	Postcode             string    `bun:"postcode,notnull" json:"postcode"`
	AddressLine1         string    `bun:"address_line1,notnull" json:"address_line1"`
	AddressLine2         string    `bun:"address_line2" json:"address_line2,omitempty"`
	TownCity             string    `bun:"town_city,notnull" json:"town_city"`
	DeliveryInstructions string    `bun:"delivery_instructions" json:"delivery_instructions,omitempty"`
	CreatedAt            time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt            time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
