package registry

import (
	"time"

	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmZone         = "zone"
	elmZoneList     = "zoneList"
	elmGroup        = "group"
	elmServices     = "services"
	elmObjURI       = "objURI"
	elmSvcExtension = "svcExtension"
	elmExtURI       = "extURI"
	elmRelated      = "related"
	elmFields       = "fields"
	elmField        = "field"
	elmZoneMember   = "zoneMember"
	elmPhase        = "phase"
	elmDescription  = "description"
	elmStartDate    = "startDate"
	elmEndDate      = "endDate"
	elmCrID         = "crID"
	elmCrDate       = "crDate"
	elmUpID         = "upID"
	elmUpDate       = "upDate"
	attrRequired    = "required"
	attrName        = "name"
)

// Related field synchronization types.
const (
	FieldsShared = "shared"
	FieldsSync   = "sync"
)

// Zone member types.
const (
	MemberPrimary              = "primary"
	MemberAlternate            = "alternate"
	MemberPrimaryBasedOnCrDate = "primaryBasedOnCrDate"
	MemberEqual                = "equal"
)

// Launch phase types.
const (
	PhaseSunrise  = "sunrise"
	PhaseLandrush = "landrush"
	PhaseClaims   = "claims"
	PhaseOpen     = "open"
	PhaseCustom   = "custom"
)

// ---- Zone -------------------------------------------------------------------

// Zone is the full policy of one zone.
type Zone struct {
	Name     string
	Group    string
	Services *Services
	Related  *Related
	Phases   []Phase
	Domain   *Domain
	Host     *Host
	Contact  *Contact
	CrID     string
	CrDate   *time.Time
	UpID     string
	UpDate   *time.Time
}

func (z *Zone) Validate() error {
	v := eppmap.Check(NS.Qualify(elmZone))
	v.Require(z.Name != "", elmName)
	if z.Services != nil {
		v.Nested(elmServices, z.Services.Validate())
	}
	if z.Related != nil {
		v.Nested(elmRelated, z.Related.Validate())
	}
	for i := range z.Phases {
		v.Nested(indexed(elmPhase, i), z.Phases[i].Validate())
	}
	v.Child(elmDomain, z.Domain, z.Domain != nil)
	v.Child(elmHost, z.Host, z.Host != nil)
	v.Child(elmContactPolicy, z.Contact, z.Contact != nil)
	return v.Err()
}

func (z *Zone) Encode() (*etree.Element, error) {
	if err := z.Validate(); err != nil {
		return nil, err
	}
	return z.element(), nil
}

func (z *Zone) element() *etree.Element {
	el := NS.NewRoot(elmZone)
	NS.AddText(el, elmName, z.Name)
	NS.AddOptText(el, elmGroup, z.Group)
	if z.Services != nil {
		el.AddChild(z.Services.element())
	}
	if z.Related != nil {
		el.AddChild(z.Related.element())
	}
	for i := range z.Phases {
		el.AddChild(z.Phases[i].element())
	}
	if z.Domain != nil {
		el.AddChild(z.Domain.element())
	}
	if z.Host != nil {
		el.AddChild(z.Host.element())
	}
	if z.Contact != nil {
		el.AddChild(z.Contact.element())
	}
	NS.AddOptText(el, elmCrID, z.CrID)
	NS.AddOptTime(el, elmCrDate, z.CrDate)
	NS.AddOptText(el, elmUpID, z.UpID)
	NS.AddOptTime(el, elmUpDate, z.UpDate)
	return el
}

func (z *Zone) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmZone); err != nil {
		return err
	}
	*z = Zone{
		Name:  NS.Text(el, elmName),
		Group: NS.Text(el, elmGroup),
		CrID:  NS.Text(el, elmCrID),
		UpID:  NS.Text(el, elmUpID),
	}
	var err error
	if z.Services, err = eppmap.DecodeOpt[Services](NS, el, elmServices); err != nil {
		return err
	}
	if z.Related, err = eppmap.DecodeOpt[Related](NS, el, elmRelated); err != nil {
		return err
	}
	if z.Phases, err = eppmap.DecodeList[Phase](NS, el, elmPhase); err != nil {
		return err
	}
	if z.Domain, err = eppmap.DecodeOpt[Domain](NS, el, elmDomain); err != nil {
		return err
	}
	if z.Host, err = eppmap.DecodeOpt[Host](NS, el, elmHost); err != nil {
		return err
	}
	if z.Contact, err = eppmap.DecodeOpt[Contact](NS, el, elmContactPolicy); err != nil {
		return err
	}
	if z.CrDate, err = NS.OptTime(el, elmCrDate); err != nil {
		return err
	}
	z.UpDate, err = NS.OptTime(el, elmUpDate)
	return err
}

func (z *Zone) Clone() *Zone {
	if z == nil {
		return nil
	}
	c := *z
	c.Services = z.Services.Clone()
	c.Related = z.Related.Clone()
	c.Phases = eppmap.CloneAll(z.Phases)
	c.Domain = z.Domain.Clone()
	c.Host = z.Host.Clone()
	c.Contact = z.Contact.Clone()
	c.CrDate = eppmap.ClonePtr(z.CrDate)
	c.UpDate = eppmap.ClonePtr(z.UpDate)
	return &c
}

func (z *Zone) String() string { return eppmap.Render(z.element()) }

// ---- Services ---------------------------------------------------------------

// Services lists the object and extension namespaces a zone supports.
type Services struct {
	ObjURIs   []ObjURI
	Extension *ServicesExt
}

func (s *Services) Validate() error {
	v := eppmap.Check(NS.Qualify(elmServices))
	v.Require(len(s.ObjURIs) > 0, elmObjURI)
	for i := range s.ObjURIs {
		v.Nested(indexed(elmObjURI, i), s.ObjURIs[i].Validate())
	}
	if s.Extension != nil {
		v.Nested(elmSvcExtension, s.Extension.Validate())
	}
	return v.Err()
}

func (s *Services) Encode() (*etree.Element, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.element(), nil
}

func (s *Services) element() *etree.Element {
	el := NS.NewRoot(elmServices)
	for i := range s.ObjURIs {
		el.AddChild(s.ObjURIs[i].element())
	}
	if s.Extension != nil {
		el.AddChild(s.Extension.element())
	}
	return el
}

func (s *Services) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmServices); err != nil {
		return err
	}
	*s = Services{}
	var err error
	if s.ObjURIs, err = eppmap.DecodeList[ObjURI](NS, el, elmObjURI); err != nil {
		return err
	}
	s.Extension, err = eppmap.DecodeOpt[ServicesExt](NS, el, elmSvcExtension)
	return err
}

func (s *Services) Clone() *Services {
	if s == nil {
		return nil
	}
	return &Services{ObjURIs: eppmap.CloneSlice(s.ObjURIs), Extension: s.Extension.Clone()}
}

func (s *Services) String() string { return eppmap.Render(s.element()) }

// ServicesExt lists the extension namespaces a zone supports.
type ServicesExt struct {
	ExtURIs []ExtURI
}

func (s *ServicesExt) Validate() error {
	v := eppmap.Check(NS.Qualify(elmSvcExtension))
	v.Require(len(s.ExtURIs) > 0, elmExtURI)
	for i := range s.ExtURIs {
		v.Nested(indexed(elmExtURI, i), s.ExtURIs[i].Validate())
	}
	return v.Err()
}

func (s *ServicesExt) Encode() (*etree.Element, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.element(), nil
}

func (s *ServicesExt) element() *etree.Element {
	el := NS.NewRoot(elmSvcExtension)
	for i := range s.ExtURIs {
		el.AddChild(s.ExtURIs[i].element())
	}
	return el
}

func (s *ServicesExt) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmSvcExtension); err != nil {
		return err
	}
	*s = ServicesExt{}
	var err error
	s.ExtURIs, err = eppmap.DecodeList[ExtURI](NS, el, elmExtURI)
	return err
}

func (s *ServicesExt) Clone() *ServicesExt {
	if s == nil {
		return nil
	}
	return &ServicesExt{ExtURIs: eppmap.CloneSlice(s.ExtURIs)}
}

func (s *ServicesExt) String() string { return eppmap.Render(s.element()) }

// serviceURI is the shape shared by objURI and extURI.
type serviceURI struct {
	URI      string
	Required bool
}

func (u serviceURI) check(root string) error {
	v := eppmap.Check(NS.Qualify(root))
	v.Require(u.URI != "", root)
	return v.Err()
}

func (u serviceURI) element(root string) *etree.Element {
	el := NS.NewRoot(root)
	el.CreateAttr(attrRequired, eppmap.FormatBool(u.Required))
	el.SetText(u.URI)
	return el
}

func decodeServiceURI(el *etree.Element, root string) (serviceURI, error) {
	if err := NS.Expect(el, root); err != nil {
		return serviceURI{}, err
	}
	req, err := eppmap.BoolAttr(el, attrRequired, false)
	if err != nil {
		return serviceURI{}, err
	}
	return serviceURI{URI: textOf(el), Required: req}, nil
}

// ObjURI is an object namespace and whether the zone requires it.
type ObjURI struct {
	URI      string
	Required bool
}

func (o *ObjURI) Validate() error { return serviceURI(*o).check(elmObjURI) }

func (o *ObjURI) Encode() (*etree.Element, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o.element(), nil
}

func (o *ObjURI) element() *etree.Element { return serviceURI(*o).element(elmObjURI) }

func (o *ObjURI) Decode(el *etree.Element) error {
	u, err := decodeServiceURI(el, elmObjURI)
	if err != nil {
		return err
	}
	*o = ObjURI(u)
	return nil
}

func (o *ObjURI) Clone() *ObjURI { return eppmap.ClonePtr(o) }

func (o *ObjURI) String() string { return eppmap.Render(o.element()) }

// ExtURI is an extension namespace and whether the zone requires it.
type ExtURI struct {
	URI      string
	Required bool
}

func (e *ExtURI) Validate() error { return serviceURI(*e).check(elmExtURI) }

func (e *ExtURI) Encode() (*etree.Element, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e.element(), nil
}

func (e *ExtURI) element() *etree.Element { return serviceURI(*e).element(elmExtURI) }

func (e *ExtURI) Decode(el *etree.Element) error {
	u, err := decodeServiceURI(el, elmExtURI)
	if err != nil {
		return err
	}
	*e = ExtURI(u)
	return nil
}

func (e *ExtURI) Clone() *ExtURI { return eppmap.ClonePtr(e) }

func (e *ExtURI) String() string { return eppmap.Render(e.element()) }

// ---- Related ----------------------------------------------------------------

// Related describes the zones related to this one.
type Related struct {
	Fields  *RelatedFields
	Members []ZoneMember
}

func (r *Related) Validate() error {
	v := eppmap.Check(NS.Qualify(elmRelated))
	if r.Fields != nil {
		v.Nested(elmFields, r.Fields.Validate())
	}
	for i := range r.Members {
		v.Nested(indexed(elmZoneMember, i), r.Members[i].Validate())
	}
	return v.Err()
}

func (r *Related) Encode() (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.element(), nil
}

func (r *Related) element() *etree.Element {
	el := NS.NewRoot(elmRelated)
	if r.Fields != nil {
		el.AddChild(r.Fields.element())
	}
	for i := range r.Members {
		el.AddChild(r.Members[i].element())
	}
	return el
}

func (r *Related) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmRelated); err != nil {
		return err
	}
	*r = Related{}
	var err error
	if r.Fields, err = eppmap.DecodeOpt[RelatedFields](NS, el, elmFields); err != nil {
		return err
	}
	r.Members, err = eppmap.DecodeList[ZoneMember](NS, el, elmZoneMember)
	return err
}

func (r *Related) Clone() *Related {
	if r == nil {
		return nil
	}
	return &Related{Fields: r.Fields.Clone(), Members: eppmap.CloneSlice(r.Members)}
}

func (r *Related) String() string { return eppmap.Render(r.element()) }

// RelatedFields lists the fields shared or synchronized across related zones.
type RelatedFields struct {
	Type   string
	Fields []string
}

func (f *RelatedFields) Validate() error {
	v := eppmap.Check(NS.Qualify(elmFields))
	v.OneOf(attrType, f.Type, FieldsShared, FieldsSync)
	v.Require(len(f.Fields) > 0, elmField)
	return v.Err()
}

func (f *RelatedFields) Encode() (*etree.Element, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f.element(), nil
}

func (f *RelatedFields) element() *etree.Element {
	el := NS.NewRoot(elmFields)
	el.CreateAttr(attrType, f.Type)
	NS.AddTexts(el, elmField, f.Fields)
	return el
}

func (f *RelatedFields) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmFields); err != nil {
		return err
	}
	*f = RelatedFields{Type: eppmap.Attr(el, attrType, ""), Fields: NS.Texts(el, elmField)}
	return nil
}

func (f *RelatedFields) Clone() *RelatedFields {
	if f == nil {
		return nil
	}
	return &RelatedFields{Type: f.Type, Fields: eppmap.CloneSlice(f.Fields)}
}

func (f *RelatedFields) String() string { return eppmap.Render(f.element()) }

// ZoneMember names a related zone and its role.
type ZoneMember struct {
	Type string
	Name string
}

func (m *ZoneMember) Validate() error {
	v := eppmap.Check(NS.Qualify(elmZoneMember))
	v.OneOf(attrType, m.Type, MemberPrimary, MemberAlternate, MemberPrimaryBasedOnCrDate, MemberEqual)
	v.Require(m.Name != "", elmName)
	return v.Err()
}

func (m *ZoneMember) Encode() (*etree.Element, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m.element(), nil
}

func (m *ZoneMember) element() *etree.Element {
	el := NS.NewRoot(elmZoneMember)
	el.CreateAttr(attrType, m.Type)
	el.SetText(m.Name)
	return el
}

func (m *ZoneMember) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmZoneMember); err != nil {
		return err
	}
	*m = ZoneMember{Type: eppmap.Attr(el, attrType, ""), Name: textOf(el)}
	return nil
}

func (m *ZoneMember) Clone() *ZoneMember { return eppmap.ClonePtr(m) }

func (m *ZoneMember) String() string { return eppmap.Render(m.element()) }

// ---- Phase ------------------------------------------------------------------

// Phase is a launch phase of a zone.
type Phase struct {
	Type        string
	Name        string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
}

func (p *Phase) Validate() error {
	v := eppmap.Check(NS.Qualify(elmPhase))
	v.OneOf(attrType, p.Type, PhaseSunrise, PhaseLandrush, PhaseClaims, PhaseOpen, PhaseCustom)
	if p.Type == PhaseCustom {
		v.Require(p.Name != "", attrName)
	}
	v.Require(!p.StartDate.IsZero(), elmStartDate)
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		v.Add("%s %s is before %s %s", elmEndDate, eppmap.FormatTime(*p.EndDate), elmStartDate, eppmap.FormatTime(p.StartDate))
	}
	return v.Err()
}

func (p *Phase) Encode() (*etree.Element, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.element(), nil
}

func (p *Phase) element() *etree.Element {
	el := NS.NewRoot(elmPhase)
	el.CreateAttr(attrType, p.Type)
	if p.Name != "" {
		el.CreateAttr(attrName, p.Name)
	}
	NS.AddOptText(el, elmDescription, p.Description)
	NS.AddTime(el, elmStartDate, p.StartDate)
	NS.AddOptTime(el, elmEndDate, p.EndDate)
	return el
}

func (p *Phase) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmPhase); err != nil {
		return err
	}
	*p = Phase{
		Type:        eppmap.Attr(el, attrType, ""),
		Name:        eppmap.Attr(el, attrName, ""),
		Description: NS.Text(el, elmDescription),
	}
	var err error
	if p.StartDate, err = NS.Time(el, elmStartDate); err != nil {
		return err
	}
	p.EndDate, err = NS.OptTime(el, elmEndDate)
	return err
}

func (p *Phase) Clone() *Phase {
	if p == nil {
		return nil
	}
	c := *p
	c.EndDate = eppmap.ClonePtr(p.EndDate)
	return &c
}

func (p *Phase) String() string { return eppmap.Render(p.element()) }

// ---- ZoneList ---------------------------------------------------------------

// ZoneSummary is one entry of a zone list.
type ZoneSummary struct {
	Name   string
	CrDate time.Time
	UpDate *time.Time
}

func (s *ZoneSummary) Validate() error {
	v := eppmap.Check(NS.Qualify(elmZone))
	v.Require(s.Name != "", elmName)
	v.Require(!s.CrDate.IsZero(), elmCrDate)
	return v.Err()
}

func (s *ZoneSummary) Encode() (*etree.Element, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.element(), nil
}

func (s *ZoneSummary) element() *etree.Element {
	el := NS.NewRoot(elmZone)
	NS.AddText(el, elmName, s.Name)
	NS.AddTime(el, elmCrDate, s.CrDate)
	NS.AddOptTime(el, elmUpDate, s.UpDate)
	return el
}

func (s *ZoneSummary) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmZone); err != nil {
		return err
	}
	*s = ZoneSummary{Name: NS.Text(el, elmName)}
	var err error
	if s.CrDate, err = NS.Time(el, elmCrDate); err != nil {
		return err
	}
	s.UpDate, err = NS.OptTime(el, elmUpDate)
	return err
}

func (s *ZoneSummary) Clone() *ZoneSummary {
	if s == nil {
		return nil
	}
	c := *s
	c.UpDate = eppmap.ClonePtr(s.UpDate)
	return &c
}

func (s *ZoneSummary) String() string { return eppmap.Render(s.element()) }

// ZoneList lists the zones a client may see.
type ZoneList struct {
	Zones []ZoneSummary
}

func (l *ZoneList) Validate() error {
	v := eppmap.Check(NS.Qualify(elmZoneList))
	for i := range l.Zones {
		v.Nested(indexed(elmZone, i), l.Zones[i].Validate())
	}
	return v.Err()
}

func (l *ZoneList) Encode() (*etree.Element, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l.element(), nil
}

func (l *ZoneList) element() *etree.Element {
	el := NS.NewRoot(elmZoneList)
	for i := range l.Zones {
		el.AddChild(l.Zones[i].element())
	}
	return el
}

func (l *ZoneList) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmZoneList); err != nil {
		return err
	}
	*l = ZoneList{}
	var err error
	l.Zones, err = eppmap.DecodeList[ZoneSummary](NS, el, elmZone)
	return err
}

func (l *ZoneList) Clone() *ZoneList {
	if l == nil {
		return nil
	}
	return &ZoneList{Zones: eppmap.CloneAll(l.Zones)}
}

func (l *ZoneList) String() string { return eppmap.Render(l.element()) }
