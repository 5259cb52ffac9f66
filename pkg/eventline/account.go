package eventline

import "time"

// Account is a user account.
type Account struct {
	ID            string          `json:"id"                        yaml:"id"`
	OrgID         string          `json:"org_id"                    yaml:"org_id"`
	CreationTime  time.Time       `json:"creation_time"             yaml:"creation_time"`
	Disabled      bool            `json:"disabled,omitempty"        yaml:"disabled,omitempty"`
	EmailAddress  string          `json:"email_address"             yaml:"email_address"`
	Name          *string         `json:"name,omitempty"            yaml:"name,omitempty"`
	Role          string          `json:"role"                      yaml:"role"`
	LastLoginTime *time.Time      `json:"last_login_time,omitempty" yaml:"last_login_time,omitempty"`
	LastProjectID *string         `json:"last_project_id,omitempty" yaml:"last_project_id,omitempty"`
	Settings      AccountSettings `json:"settings"                  yaml:"settings"`
}

// ObjectName implements ReadableObject.
func (a *Account) ObjectName() string {
	return "account"
}

// ReadData implements ReadableObject.
func (a *Account) ReadData(r *ObjectReader) {
	r.String("id", &a.ID)
	r.String("org_id", &a.OrgID)
	r.Datetime("creation_time", &a.CreationTime)
	r.BooleanDefault("disabled", &a.Disabled, false)
	r.String("email_address", &a.EmailAddress)
	r.OptionalString("name", &a.Name)
	r.String("role", &a.Role)
	r.OptionalDatetime("last_login_time", &a.LastLoginTime)
	r.OptionalString("last_project_id", &a.LastProjectID)
	ReadObject(r, "settings", &a.Settings)
}

func (a *Account) String() string {
	return objectString(a.ObjectName(), a.ID)
}

// AccountSettings holds the settings associated with a user account.
type AccountSettings struct {
	DateFormat *string `json:"date_format,omitempty" yaml:"date_format,omitempty"`
}

// ObjectName implements ReadableObject.
func (s *AccountSettings) ObjectName() string {
	return "account_settings"
}

// ReadData implements ReadableObject.
func (s *AccountSettings) ReadData(r *ObjectReader) {
	r.OptionalString("date_format", &s.DateFormat)
}
