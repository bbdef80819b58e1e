// Package defreg maps the defensive registration EPP extension.
package defreg

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

// NS is the defensive registration namespace.
var NS = eppmap.Namespace{URI: "http://www.verisign.com/epp/defReg-1.0", Prefix: "defReg"}

// Name levels.
const (
	LevelPremium  = "premium"
	LevelStandard = "standard"
)

// Period units.
const (
	UnitYear  = "y"
	UnitMonth = "m"
)

// Statuses a defensive registration may carry.
const (
	StatusOK                       = "ok"
	StatusClientDeleteProhibited   = "clientDeleteProhibited"
	StatusClientHold               = "clientHold"
	StatusClientRenewProhibited    = "clientRenewProhibited"
	StatusClientTransferProhibited = "clientTransferProhibited"
	StatusClientUpdateProhibited   = "clientUpdateProhibited"
	StatusPendingCreate            = "pendingCreate"
	StatusPendingDelete            = "pendingDelete"
	StatusPendingRenew             = "pendingRenew"
	StatusPendingTransfer          = "pendingTransfer"
	StatusPendingUpdate            = "pendingUpdate"
	StatusServerDeleteProhibited   = "serverDeleteProhibited"
	StatusServerHold               = "serverHold"
	StatusServerRenewProhibited    = "serverRenewProhibited"
	StatusServerTransferProhibited = "serverTransferProhibited"
	StatusServerUpdateProhibited   = "serverUpdateProhibited"
)

var statuses = []string{
	StatusOK,
	StatusClientDeleteProhibited, StatusClientHold, StatusClientRenewProhibited,
	StatusClientTransferProhibited, StatusClientUpdateProhibited,
	StatusPendingCreate, StatusPendingDelete, StatusPendingRenew,
	StatusPendingTransfer, StatusPendingUpdate,
	StatusServerDeleteProhibited, StatusServerHold, StatusServerRenewProhibited,
	StatusServerTransferProhibited, StatusServerUpdateProhibited,
}

// DefaultLang is the language assumed for status text and reasons.
const DefaultLang = "en"

const (
	elmName         = "name"
	elmPeriod       = "period"
	elmStatus       = "status"
	elmAuthInfo     = "authInfo"
	elmPW           = "pw"
	elmRoid         = "roid"
	elmRegistrant   = "registrant"
	elmTM           = "tm"
	elmTMCountry    = "tmCountry"
	elmTMDate       = "tmDate"
	elmAdminContact = "adminContact"
	elmCurExpDate   = "curExpDate"
	elmClID         = "clID"
	elmCrID         = "crID"
	elmCrDate       = "crDate"
	elmUpID         = "upID"
	elmUpDate       = "upDate"
	elmExDate       = "exDate"
	elmTrDate       = "trDate"
	elmReason       = "reason"
	attrLevel       = "level"
	attrUnit        = "unit"
	attrS           = "s"
	attrLang        = "lang"
	attrRoid        = "roid"
	attrAvail       = "avail"

	maxPeriod = 99
)

// ---- Name -------------------------------------------------------------------

// Name is a defensive registration name and its level.
type Name struct {
	Level string
	Name  string
}

// NewName returns a standard level name.
func NewName(name string) *Name { return &Name{Level: LevelStandard, Name: name} }

func (n *Name) Validate() error {
	v := eppmap.Check(NS.Qualify(elmName))
	n.check(v)
	return v.Err()
}

func (n *Name) check(v *eppmap.Violations) {
	v.OneOf(attrLevel, n.Level, LevelPremium, LevelStandard)
	v.Require(n.Name != "", elmName)
}

func (n *Name) Encode() (*etree.Element, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n.element(), nil
}

func (n *Name) element() *etree.Element {
	el := NS.NewRoot(elmName)
	n.fill(el)
	return el
}

func (n *Name) fill(el *etree.Element) {
	el.CreateAttr(attrLevel, n.Level)
	el.SetText(n.Name)
}

func (n *Name) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmName); err != nil {
		return err
	}
	*n = Name{Level: eppmap.Attr(el, attrLevel, ""), Name: strings.TrimSpace(el.Text())}
	return nil
}

func (n *Name) Clone() *Name { return eppmap.ClonePtr(n) }

func (n *Name) String() string { return eppmap.Render(n.element()) }

// ---- Period -----------------------------------------------------------------

// Period is a registration period of 1 to 99 years or months.
type Period struct {
	Unit  string
	Value int
}

// NewPeriod returns a period in years.
func NewPeriod(years int) *Period { return &Period{Unit: UnitYear, Value: years} }

func (p *Period) Validate() error {
	v := eppmap.Check(NS.Qualify(elmPeriod))
	v.OneOf(attrUnit, p.Unit, UnitYear, UnitMonth)
	v.Between(elmPeriod, p.Value, 1, maxPeriod)
	return v.Err()
}

func (p *Period) Encode() (*etree.Element, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.element(), nil
}

func (p *Period) element() *etree.Element {
	el := NS.NewRoot(elmPeriod)
	el.CreateAttr(attrUnit, p.Unit)
	el.SetText(strconv.Itoa(p.Value))
	return el
}

// Decode assumes years when the unit attribute is absent.
func (p *Period) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmPeriod); err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(el.Text()))
	if err != nil {
		return &eppmap.DecodeError{Element: el.FullTag(), Err: err}
	}
	*p = Period{Unit: eppmap.Attr(el, attrUnit, UnitYear), Value: n}
	return nil
}

func (p *Period) Clone() *Period { return eppmap.ClonePtr(p) }

func (p *Period) String() string { return eppmap.Render(p.element()) }

// ---- Status -----------------------------------------------------------------

// Status is a status value with optional free text.
type Status struct {
	S    string
	Lang string
	Text string
}

func (s *Status) Validate() error {
	v := eppmap.Check(NS.Qualify(elmStatus))
	v.OneOf(attrS, s.S, statuses...)
	return v.Err()
}

func (s *Status) Encode() (*etree.Element, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.element(), nil
}

func (s *Status) element() *etree.Element {
	el := NS.NewRoot(elmStatus)
	el.CreateAttr(attrS, s.S)
	if s.Text != "" {
		s.Lang = orDefault(s.Lang, DefaultLang)
		el.CreateAttr(attrLang, s.Lang)
		el.SetText(s.Text)
	}
	return el
}

func (s *Status) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmStatus); err != nil {
		return err
	}
	*s = Status{S: eppmap.Attr(el, attrS, ""), Text: strings.TrimSpace(el.Text())}
	if s.Text != "" {
		s.Lang = eppmap.Attr(el, attrLang, DefaultLang)
	}
	return nil
}

func (s *Status) Clone() *Status { return eppmap.ClonePtr(s) }

func (s *Status) String() string { return eppmap.Render(s.element()) }

func checkStatuses(v *eppmap.Violations, ss []Status) {
	for i := range ss {
		v.Nested(indexed(elmStatus, i), ss[i].Validate())
	}
}

func addStatuses(el *etree.Element, ss []Status) {
	for i := range ss {
		el.AddChild(ss[i].element())
	}
}

// ---- AuthInfo ---------------------------------------------------------------

// AuthInfo is password authorization information, optionally tied to the
// roid of the object it authorizes.
type AuthInfo struct {
	Password string
	Roid     string
}

func (a *AuthInfo) Validate() error {
	v := eppmap.Check(NS.Qualify(elmAuthInfo))
	v.Require(a.Password != "", elmPW)
	return v.Err()
}

func (a *AuthInfo) Encode() (*etree.Element, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a.element(), nil
}

func (a *AuthInfo) element() *etree.Element {
	el := NS.NewRoot(elmAuthInfo)
	pw := NS.AddText(el, elmPW, a.Password)
	if a.Roid != "" {
		pw.CreateAttr(attrRoid, a.Roid)
	}
	return el
}

func (a *AuthInfo) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmAuthInfo); err != nil {
		return err
	}
	*a = AuthInfo{}
	if pw := NS.Child(el, elmPW); pw != nil {
		a.Password = strings.TrimSpace(pw.Text())
		a.Roid = eppmap.Attr(pw, attrRoid, "")
	}
	return nil
}

func (a *AuthInfo) Clone() *AuthInfo { return eppmap.ClonePtr(a) }

func (a *AuthInfo) String() string { return eppmap.Render(a.element()) }

// ---- helpers ----------------------------------------------------------------

func indexed(name string, i int) string { return name + "[" + strconv.Itoa(i) + "]" }

func orDefault(v, dflt string) string {
	if v == "" {
		return dflt
	}
	return v
}

func checkOpt(v *eppmap.Violations, path string, e eppmap.Element, present bool) {
	if present {
		v.Nested(path, e.Validate())
	}
}

func checkCountry(v *eppmap.Violations, cc string) {
	if cc != "" && len(cc) != 2 {
		v.Add("%s %q is not a two letter country code", elmTMCountry, cc)
	}
}
