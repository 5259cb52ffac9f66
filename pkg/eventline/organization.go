package eventline

import "time"

// Organization is the organization owning accounts and projects.
type Organization struct {
	ID                    string    `json:"id"                                  yaml:"id"`
	Name                  string    `json:"name"                                yaml:"name"`
	Address               string    `json:"address"                             yaml:"address"`
	PostalCode            string    `json:"postal_code"                         yaml:"postal_code"`
	City                  string    `json:"city"                                yaml:"city"`
	Country               string    `json:"country"                             yaml:"country"`
	CreationTime          time.Time `json:"creation_time"                       yaml:"creation_time"`
	Disabled              bool      `json:"disabled,omitempty"                  yaml:"disabled,omitempty"`
	ContactEmailAddress   string    `json:"contact_email_address"               yaml:"contact_email_address"`
	NonEssentialMailOptIn bool      `json:"non_essential_mail_opt_in,omitempty" yaml:"non_essential_mail_opt_in,omitempty"`
	VATIDNumber           *string   `json:"vat_id_number,omitempty"             yaml:"vat_id_number,omitempty"`
}

// ObjectName implements ReadableObject.
func (o *Organization) ObjectName() string {
	return "organization"
}

// ReadData implements ReadableObject.
func (o *Organization) ReadData(r *ObjectReader) {
	r.String("id", &o.ID)
	r.String("name", &o.Name)
	r.String("address", &o.Address)
	r.String("postal_code", &o.PostalCode)
	r.String("city", &o.City)
	r.String("country", &o.Country)
	r.Datetime("creation_time", &o.CreationTime)
	r.BooleanDefault("disabled", &o.Disabled, false)
	r.String("contact_email_address", &o.ContactEmailAddress)
	r.BooleanDefault("non_essential_mail_opt_in", &o.NonEssentialMailOptIn, false)
	r.OptionalString("vat_id_number", &o.VATIDNumber)
}

func (o *Organization) String() string {
	return objectString(o.ObjectName(), o.ID)
}
