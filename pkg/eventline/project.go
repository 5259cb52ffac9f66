package eventline

// Project groups the resources of an organization.
type Project struct {
	ID    string `json:"id"     yaml:"id"`
	OrgID string `json:"org_id" yaml:"org_id"`
	Name  string `json:"name"   yaml:"name"`
}

// ObjectName implements ReadableObject.
func (p *Project) ObjectName() string {
	return "project"
}

// ReadData implements ReadableObject.
func (p *Project) ReadData(r *ObjectReader) {
	r.String("id", &p.ID)
	r.String("org_id", &p.OrgID)
	r.String("name", &p.Name)
}

func (p *Project) String() string {
	return objectString(p.ObjectName(), p.ID)
}

// ProjectCreateRequest is the body of a project creation call.
type ProjectCreateRequest struct {
	Name string `json:"name"`
}

// ProjectUpdateRequest is the body of a project update call.
type ProjectUpdateRequest struct {
	Name string `json:"name"`
}
