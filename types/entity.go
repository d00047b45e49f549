package types

import "time"

// InternalID is the database identifier of an entity, it is never exposed
// outside of the service
type InternalID int64

// PublicID is the identifier used to refer to an entity from clients
type PublicID string

// EntityBase is the embedded type for all models, it defines the common
// meta data that every entity shares
type EntityBase struct {
	ID          InternalID `json:"-"`
	PubID       PublicID   `json:"pubId"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	OwnerID     InternalID `json:"-"`
	OwnerPubID  PublicID   `json:"ownerPubId,omitempty"`
	Public      bool       `json:"public"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastUpdated time.Time  `json:"lastUpdated"`
	DeletedAt   time.Time  `json:"deletedAt"`
}

// GetEntity returns the embedded entity, it allows the common fields to be
// read from any model that embeds EntityBase
func (e *EntityBase) GetEntity() *EntityBase {
	return e
}

func (e *EntityBase) GetID() InternalID  { return e.ID }
func (e *EntityBase) GetPubID() PublicID { return e.PubID }
func (e *EntityBase) GetName() string    { return e.Name }

func (e *EntityBase) SetName(v string)        { e.Name = v }
func (e *EntityBase) SetDescription(v string) { e.Description = v }

// Clone returns a copy of the entity
func (e *EntityBase) Clone() *EntityBase {
	c := *e
	return &c
}

// User is an entity that can authenticate, it is embedded by persons and
// organizations
type User struct {
	EntityBase
	AuthID      string `json:"authId"`
	LegalID     string `json:"legalID"`
	LegalIDType string `json:"legalIDType"`
	Active      bool   `json:"active"`
}

// NewUser creates a new active or inactive User
func NewUser(name, description, authID, legalID, legalIDType string, active bool) *User {
	return &User{
		EntityBase: EntityBase{
			Name:        name,
			Description: description,
		},
		AuthID:      authID,
		LegalID:     legalID,
		LegalIDType: legalIDType,
		Active:      active,
	}
}

func (u *User) GetAuthID() string { return u.AuthID }

// Clone returns a copy of the user
func (u *User) Clone() *User {
	return &User{
		EntityBase:  *u.EntityBase.Clone(),
		AuthID:      u.AuthID,
		LegalID:     u.LegalID,
		LegalIDType: u.LegalIDType,
		Active:      u.Active,
	}
}
