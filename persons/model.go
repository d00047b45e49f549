package persons

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/errwrap"
	"github.com/jumppad-labs/personsmodel/convert"
	"github.com/jumppad-labs/personsmodel/errors"
	"github.com/jumppad-labs/personsmodel/locations"
	"github.com/jumppad-labs/personsmodel/schema"
	"github.com/jumppad-labs/personsmodel/types"
	"github.com/zclconf/go-cty/cty"
)

const (
	// Name is the singular name of the resource and the block type used in
	// config files
	Name = "person"
	// ResourceName is the name persons are registered and looked up with
	ResourceName = "persons"
)

var phoneOutFormatter = regexp.MustCompile(`^(\d{3})(\d{3})(\d{4})$`)

// Person is a User with contact details. Addresses is nil when the addresses
// have not been provided, a person with nil Addresses is not complete.
type Person struct {
	types.User
	DisplayName string              `json:"displayName"`
	GivenName   string              `json:"givenName"`
	FamilyName  string              `json:"familyName"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	BackupEmail string              `json:"backupEmail"`
	PhoneBackup string              `json:"phoneBackup"`
	PhotoURL    string              `json:"photoUrl"`
	Addresses   locations.Addresses `json:"addresses"`
	ChangeDesc  []string            `json:"changeDesc,omitempty"`
}

func NewPerson(
	user *types.User,
	displayName string,
	givenName string,
	familyName string,
	email string,
	phone string,
	backupEmail string,
	phoneBackup string,
	photoURL string,
	addresses locations.Addresses) *Person {
	return &Person{
		User:        *user,
		DisplayName: displayName,
		GivenName:   givenName,
		FamilyName:  familyName,
		Email:       email,
		Phone:       phone,
		BackupEmail: backupEmail,
		PhoneBackup: phoneBackup,
		PhotoURL:    photoURL,
		Addresses:   addresses,
	}
}

func (p *Person) ResourceName() string { return ResourceName }

// FormatOut formats ten digit phone numbers as ddd-ddd-dddd
func (p *Person) FormatOut() *Person {
	p.Phone = phoneOutFormatter.ReplaceAllString(p.Phone, `$1-$2-$3`)
	p.PhoneBackup = phoneOutFormatter.ReplaceAllString(p.PhoneBackup, `$1-$2-$3`)
	return p
}

func (p *Person) Clone() *Person {
	var changeDesc []string
	if p.ChangeDesc != nil {
		changeDesc = make([]string, len(p.ChangeDesc))
		copy(changeDesc, p.ChangeDesc)
	}

	c := *p
	c.User = *p.User.Clone()
	c.Addresses = p.Addresses.Clone()
	c.ChangeDesc = changeDesc

	return &c
}

// PromoteChanges collects the change descriptions of the addresses onto the
// person
func (p *Person) PromoteChanges() {
	p.ChangeDesc = p.Addresses.PromoteChanges(p.ChangeDesc)
}

// Entity returns the person as an entity of PropsSchema
func (p *Person) Entity() (*schema.Entity, error) {
	addrs, err := p.Addresses.ToCty()
	if err != nil {
		return nil, errwrap.Wrapf("unable to convert addresses: {{err}}", err)
	}

	lastUpdated := cty.NullVal(cty.String)
	if !p.LastUpdated.IsZero() {
		lastUpdated = cty.StringVal(p.LastUpdated.UTC().Format(time.RFC3339))
	}

	e, err := schema.New(PropsSchema, map[string]cty.Value{
		"displayName": cty.StringVal(p.DisplayName),
		"phone":       cty.StringVal(p.Phone),
		"email":       cty.StringVal(p.Email),
		"phoneBackup": cty.StringVal(p.PhoneBackup),
		"photoUrl":    cty.StringVal(p.PhotoURL),
		"givenName":   cty.StringVal(p.GivenName),
		"familyName":  cty.StringVal(p.FamilyName),
		"backupEmail": cty.StringVal(p.BackupEmail),
		"pubId":       cty.StringVal(string(p.PubID)),
		"legalID":     cty.StringVal(p.LegalID),
		"legalIDType": cty.StringVal(p.LegalIDType),
		"active":      cty.BoolVal(p.Active),
		"authId":      cty.StringVal(p.AuthID),
		"lastUpdated": lastUpdated,
		"addresses":   addrs,
	})
	if err != nil {
		return nil, err
	}

	if p.ChangeDesc != nil {
		cd, err := convert.GoToCtyValue(p.ChangeDesc)
		if err != nil {
			return nil, errwrap.Wrapf("unable to convert change descriptions: {{err}}", err)
		}

		if err := e.Set("changeDesc", cd); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// IsComplete returns true when every required field of the person is set
func (p *Person) IsComplete() bool {
	return len(p.GetMissing()) == 0
}

// GetMissing returns the required fields that are not set, in schema order.
// A field holding an invalid value is reported as missing.
func (p *Person) GetMissing() []string {
	e, err := p.Entity()
	if err != nil {
		if ve, ok := err.(*errors.ValidationError); ok {
			return []string{strings.FieldsFunc(ve.Field, isPathSeparator)[0]}
		}

		return PropsSchema.Names()
	}

	return e.GetMissing()
}

func isPathSeparator(r rune) bool {
	return r == '[' || r == '.'
}

// FromEntity creates a person from an entity of PropsSchema
func FromEntity(e *schema.Entity) (*Person, error) {
	if e.Schema() != PropsSchema {
		return nil, fmt.Errorf("unable to create person from entity of schema %s", e.Schema().Name())
	}

	p := &Person{}
	var pubID, lastUpdated string

	targets := map[string]any{
		"displayName": &p.DisplayName,
		"phone":       &p.Phone,
		"email":       &p.Email,
		"phoneBackup": &p.PhoneBackup,
		"photoUrl":    &p.PhotoURL,
		"givenName":   &p.GivenName,
		"familyName":  &p.FamilyName,
		"backupEmail": &p.BackupEmail,
		"pubId":       &pubID,
		"legalID":     &p.LegalID,
		"legalIDType": &p.LegalIDType,
		"active":      &p.Active,
		"authId":      &p.AuthID,
		"lastUpdated": &lastUpdated,
		"changeDesc":  &p.ChangeDesc,
	}

	for name, target := range targets {
		v, err := e.Get(name)
		if err != nil {
			return nil, err
		}

		if err := convert.CtyToGo(v, target); err != nil {
			return nil, errwrap.Wrapf("unable to decode "+name+": {{err}}", err)
		}
	}

	p.PubID = types.PublicID(pubID)

	if lastUpdated != "" {
		t, err := time.Parse(time.RFC3339, lastUpdated)
		if err != nil {
			return nil, errwrap.Wrapf("unable to decode lastUpdated: {{err}}", err)
		}

		p.LastUpdated = t
	}

	addrs, err := e.Get("addresses")
	if err != nil {
		return nil, err
	}

	p.Addresses, err = locations.AddressesFromCty(addrs)
	if err != nil {
		return nil, errwrap.Wrapf("unable to decode addresses: {{err}}", err)
	}

	p.Name = p.DisplayName

	return p, nil
}

// FromEntities creates a person for every entity, failing on the first
// entity that can not be decoded
func FromEntities(entities []*schema.Entity) ([]*Person, error) {
	ps := make([]*Person, 0, len(entities))
	for i, e := range entities {
		p, err := FromEntity(e)
		if err != nil {
			return nil, errwrap.Wrapf(fmt.Sprintf("unable to decode entity %d: {{err}}", i), err)
		}

		ps = append(ps, p)
	}

	return ps, nil
}
