package registry

import (
	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmContactPolicy             = "contact"
	elmPostalInfoTypeSupport     = "postalInfoTypeSupport"
	elmPostalInfo                = "postalInfo"
	elmMaxCheckContact           = "maxCheckContact"
	elmClientDisclosureSupported = "clientDisclosureSupported"
	elmPrivacyContactSupported   = "privacyContactSupported"
	elmProxyContactSupported     = "proxyContactSupported"
	elmName                      = "name"
	elmOrg                       = "org"
	elmAddress                   = "address"
	elmStreet                    = "street"
	elmCity                      = "city"
	elmSP                        = "sp"
	elmPC                        = "pc"
	elmVoiceRequired             = "voiceRequired"
	elmEmail                     = "email"
	elmMinEntry                  = "minEntry"
	elmMaxEntry                  = "maxEntry"

	maxStreetEntries = 3
)

// Postal info type support values.
const (
	PostalLoc       = "loc"
	PostalInt       = "int"
	PostalLocOrInt  = "locOrInt"
	PostalLocAndInt = "locAndInt"
)

// Contact is the contact object policy of a zone.
type Contact struct {
	ContactIDRegex            *Regex
	SharePolicy               string
	PostalInfoTypeSupport     string
	PostalInfo                *Postal
	MaxCheckContact           int
	AuthInfoRegex             *Regex
	ClientDisclosureSupported bool
	SupportedStatus           *SupportedStatus
	TransferHoldPeriod        *Period
	PrivacyContactSupported   bool
	ProxyContactSupported     bool
	CustomData                *CustomData
}

func (c *Contact) Validate() error {
	v := eppmap.Check(NS.Qualify(elmContactPolicy))
	checkRegex(v, ContactIDRegexRoot, c.ContactIDRegex, true)
	v.OptOneOf(elmSharePolicy, c.SharePolicy, SharePerZone, SharePerSystem)
	v.OneOf(elmPostalInfoTypeSupport, c.PostalInfoTypeSupport, PostalLoc, PostalInt, PostalLocOrInt, PostalLocAndInt)
	v.Require(c.PostalInfo != nil, elmPostalInfo)
	if c.PostalInfo != nil {
		v.Nested(elmPostalInfo, c.PostalInfo.Validate())
	}
	v.AtLeast(elmMaxCheckContact, c.MaxCheckContact, 1)
	checkRegex(v, AuthInfoRegexRoot, c.AuthInfoRegex, false)
	if c.SupportedStatus != nil {
		v.Nested(elmSupportedStat, c.SupportedStatus.Validate())
	}
	checkOptPeriod(v, elmTransferHold, c.TransferHoldPeriod, transferHoldRule)
	if c.CustomData != nil {
		v.Nested(elmCustomData, c.CustomData.Validate())
	}
	return v.Err()
}

func (c *Contact) Encode() (*etree.Element, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.element(), nil
}

func (c *Contact) element() *etree.Element {
	el := NS.NewRoot(elmContactPolicy)
	addRegex(el, ContactIDRegexRoot, c.ContactIDRegex)
	NS.AddOptText(el, elmSharePolicy, c.SharePolicy)
	NS.AddText(el, elmPostalInfoTypeSupport, c.PostalInfoTypeSupport)
	if c.PostalInfo != nil {
		el.AddChild(c.PostalInfo.element())
	}
	NS.AddInt(el, elmMaxCheckContact, c.MaxCheckContact)
	addRegex(el, AuthInfoRegexRoot, c.AuthInfoRegex)
	NS.AddBool(el, elmClientDisclosureSupported, c.ClientDisclosureSupported)
	if c.SupportedStatus != nil {
		el.AddChild(c.SupportedStatus.element())
	}
	if c.TransferHoldPeriod != nil {
		c.TransferHoldPeriod.appendTo(el, elmTransferHold)
	}
	NS.AddBool(el, elmPrivacyContactSupported, c.PrivacyContactSupported)
	NS.AddBool(el, elmProxyContactSupported, c.ProxyContactSupported)
	if c.CustomData != nil {
		el.AddChild(c.CustomData.element())
	}
	return el
}

func (c *Contact) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmContactPolicy); err != nil {
		return err
	}
	*c = Contact{
		SharePolicy:           NS.Text(el, elmSharePolicy),
		PostalInfoTypeSupport: NS.Text(el, elmPostalInfoTypeSupport),
	}
	var err error
	if c.ContactIDRegex, err = decodeRegex(el, ContactIDRegexRoot); err != nil {
		return err
	}
	if c.PostalInfo, err = eppmap.DecodeOpt[Postal](NS, el, elmPostalInfo); err != nil {
		return err
	}
	if c.MaxCheckContact, err = NS.Int(el, elmMaxCheckContact); err != nil {
		return err
	}
	if c.AuthInfoRegex, err = decodeRegex(el, AuthInfoRegexRoot); err != nil {
		return err
	}
	if c.ClientDisclosureSupported, err = NS.Bool(el, elmClientDisclosureSupported, false); err != nil {
		return err
	}
	if c.SupportedStatus, err = eppmap.DecodeOpt[SupportedStatus](NS, el, elmSupportedStat); err != nil {
		return err
	}
	if c.TransferHoldPeriod, err = decodeOptPeriod(el, elmTransferHold); err != nil {
		return err
	}
	if c.PrivacyContactSupported, err = NS.Bool(el, elmPrivacyContactSupported, false); err != nil {
		return err
	}
	if c.ProxyContactSupported, err = NS.Bool(el, elmProxyContactSupported, false); err != nil {
		return err
	}
	c.CustomData, err = eppmap.DecodeOpt[CustomData](NS, el, elmCustomData)
	return err
}

func (c *Contact) Clone() *Contact {
	if c == nil {
		return nil
	}
	out := *c
	out.ContactIDRegex = c.ContactIDRegex.Clone()
	out.PostalInfo = c.PostalInfo.Clone()
	out.AuthInfoRegex = c.AuthInfoRegex.Clone()
	out.SupportedStatus = c.SupportedStatus.Clone()
	out.TransferHoldPeriod = eppmap.ClonePtr(c.TransferHoldPeriod)
	out.CustomData = c.CustomData.Clone()
	return &out
}

func (c *Contact) String() string { return eppmap.Render(c.element()) }

// ---- Postal -----------------------------------------------------------------

// Postal is the postal info policy of a contact.
type Postal struct {
	Name          *ContactName
	Org           *ContactOrg
	Address       *ContactAddress
	VoiceRequired bool
	Email         *ContactEmail
}

func (p *Postal) Validate() error {
	v := eppmap.Check(NS.Qualify(elmPostalInfo))
	v.Child(elmName, p.Name, p.Name != nil)
	v.Child(elmOrg, p.Org, p.Org != nil)
	v.Child(elmAddress, p.Address, p.Address != nil)
	v.Child(elmEmail, p.Email, p.Email != nil)
	return v.Err()
}

func (p *Postal) Encode() (*etree.Element, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.element(), nil
}

func (p *Postal) element() *etree.Element {
	el := NS.NewRoot(elmPostalInfo)
	if p.Name != nil {
		el.AddChild(p.Name.element())
	}
	if p.Org != nil {
		el.AddChild(p.Org.element())
	}
	if p.Address != nil {
		el.AddChild(p.Address.element())
	}
	NS.AddBool(el, elmVoiceRequired, p.VoiceRequired)
	if p.Email != nil {
		el.AddChild(p.Email.element())
	}
	return el
}

func (p *Postal) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmPostalInfo); err != nil {
		return err
	}
	*p = Postal{}
	var err error
	if p.Name, err = eppmap.DecodeOpt[ContactName](NS, el, elmName); err != nil {
		return err
	}
	if p.Org, err = eppmap.DecodeOpt[ContactOrg](NS, el, elmOrg); err != nil {
		return err
	}
	if p.Address, err = eppmap.DecodeOpt[ContactAddress](NS, el, elmAddress); err != nil {
		return err
	}
	if p.VoiceRequired, err = NS.Bool(el, elmVoiceRequired, false); err != nil {
		return err
	}
	p.Email, err = eppmap.DecodeOpt[ContactEmail](NS, el, elmEmail)
	return err
}

func (p *Postal) Clone() *Postal {
	if p == nil {
		return nil
	}
	return &Postal{
		Name:          eppmap.ClonePtr(p.Name),
		Org:           eppmap.ClonePtr(p.Org),
		Address:       p.Address.Clone(),
		VoiceRequired: p.VoiceRequired,
		Email:         eppmap.ClonePtr(p.Email),
	}
}

func (p *Postal) String() string { return eppmap.Render(p.element()) }

// ---- ContactAddress ---------------------------------------------------------

// ContactAddress is the address policy of a contact.
type ContactAddress struct {
	Street *ContactStreet
	City   *ContactCity
	SP     *ContactSP
	PC     *ContactPC
}

func (a *ContactAddress) Validate() error {
	v := eppmap.Check(NS.Qualify(elmAddress))
	v.Child(elmStreet, a.Street, a.Street != nil)
	v.Child(elmCity, a.City, a.City != nil)
	v.Child(elmSP, a.SP, a.SP != nil)
	v.Child(elmPC, a.PC, a.PC != nil)
	return v.Err()
}

func (a *ContactAddress) Encode() (*etree.Element, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a.element(), nil
}

func (a *ContactAddress) element() *etree.Element {
	el := NS.NewRoot(elmAddress)
	if a.Street != nil {
		el.AddChild(a.Street.element())
	}
	if a.City != nil {
		el.AddChild(a.City.element())
	}
	if a.SP != nil {
		el.AddChild(a.SP.element())
	}
	if a.PC != nil {
		el.AddChild(a.PC.element())
	}
	return el
}

func (a *ContactAddress) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmAddress); err != nil {
		return err
	}
	*a = ContactAddress{}
	var err error
	if a.Street, err = eppmap.DecodeOpt[ContactStreet](NS, el, elmStreet); err != nil {
		return err
	}
	if a.City, err = eppmap.DecodeOpt[ContactCity](NS, el, elmCity); err != nil {
		return err
	}
	if a.SP, err = eppmap.DecodeOpt[ContactSP](NS, el, elmSP); err != nil {
		return err
	}
	a.PC, err = eppmap.DecodeOpt[ContactPC](NS, el, elmPC)
	return err
}

func (a *ContactAddress) Clone() *ContactAddress {
	if a == nil {
		return nil
	}
	return &ContactAddress{
		Street: eppmap.ClonePtr(a.Street),
		City:   eppmap.ClonePtr(a.City),
		SP:     eppmap.ClonePtr(a.SP),
		PC:     eppmap.ClonePtr(a.PC),
	}
}

func (a *ContactAddress) String() string { return eppmap.Render(a.element()) }

// ---- ContactStreet ----------------------------------------------------------

// ContactStreet bounds street line length and the number of street lines.
type ContactStreet struct {
	MinMaxLength
	MinEntry int
	MaxEntry int
}

func (s *ContactStreet) Validate() error {
	v := eppmap.Check(NS.Qualify(elmStreet))
	s.MinMaxLength.check(v, lengthRule{floor: 1, ceiling: maxLengthCeiling})
	v.Between(elmMinEntry, s.MinEntry, 0, maxStreetEntries)
	v.Between(elmMaxEntry, s.MaxEntry, 0, maxStreetEntries)
	if s.MaxEntry < s.MinEntry {
		v.Add("%s %d is less than %s %d", elmMaxEntry, s.MaxEntry, elmMinEntry, s.MinEntry)
	}
	return v.Err()
}

func (s *ContactStreet) Encode() (*etree.Element, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.element(), nil
}

func (s *ContactStreet) element() *etree.Element {
	el := NS.NewRoot(elmStreet)
	s.MinMaxLength.appendTo(el)
	NS.AddInt(el, elmMinEntry, s.MinEntry)
	NS.AddInt(el, elmMaxEntry, s.MaxEntry)
	return el
}

func (s *ContactStreet) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmStreet); err != nil {
		return err
	}
	*s = ContactStreet{}
	var err error
	if s.MinMaxLength, err = decodeMinMaxLength(el); err != nil {
		return err
	}
	if s.MinEntry, err = NS.Int(el, elmMinEntry); err != nil {
		return err
	}
	s.MaxEntry, err = NS.Int(el, elmMaxEntry)
	return err
}

func (s *ContactStreet) Clone() *ContactStreet { return eppmap.ClonePtr(s) }

func (s *ContactStreet) String() string { return eppmap.Render(s.element()) }
