package registry

import (
	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmDomain                = "domain"
	elmPremiumSupport        = "premiumSupport"
	elmContactsSupported     = "contactsSupported"
	elmContact               = "contact"
	elmNS                    = "ns"
	elmChildHost             = "childHost"
	elmMaxCheckDomain        = "maxCheckDomain"
	elmExpiryPolicy          = "expiryPolicy"
	elmNullAuthInfoSupported = "nullAuthInfoSupported"
	attrType                 = "type"

	maxDomainContacts = 3
)

// Domain contact types.
const (
	ContactAdmin   = "admin"
	ContactTech    = "tech"
	ContactBilling = "billing"
)

// Expiry policies.
const (
	ExpiryAutoRenew  = "autoRenew"
	ExpiryAutoDelete = "autoDelete"
)

// Domain is the domain object policy of a zone.
type Domain struct {
	DomainNames           []DomainName
	IDN                   *IDN
	PremiumSupport        bool
	ContactsSupported     bool
	Contacts              []DomainContact
	NameServers           *DomainNS
	ChildHost             *DomainHost
	Periods               []DomainPeriod
	TransferHoldPeriod    *Period
	GracePeriods          []GracePeriod
	RGP                   *RGP
	DNSSEC                *DNSSEC
	MaxCheckDomain        int
	SupportedStatus       *SupportedStatus
	AuthInfoRegex         *Regex
	ExpiryPolicy          string
	NullAuthInfoSupported bool
	CustomData            *CustomData
}

// NewDomain returns a Domain policy with contacts supported.
func NewDomain() *Domain {
	return &Domain{ContactsSupported: true}
}

func (d *Domain) Validate() error {
	v := eppmap.Check(NS.Qualify(elmDomain))
	v.Require(len(d.DomainNames) > 0, elmDomainName)
	for i := range d.DomainNames {
		v.Nested(indexed(elmDomainName, i), d.DomainNames[i].Validate())
	}
	if d.IDN != nil {
		v.Nested(elmIDN, d.IDN.Validate())
	}
	if len(d.Contacts) > maxDomainContacts {
		v.Add("%s has %d entries, at most %d allowed", elmContact, len(d.Contacts), maxDomainContacts)
	}
	for i := range d.Contacts {
		v.Nested(indexed(elmContact, i), d.Contacts[i].Validate())
	}
	v.Require(d.NameServers != nil, elmNS)
	if d.NameServers != nil {
		v.Nested(elmNS, d.NameServers.Validate())
	}
	v.Require(d.ChildHost != nil, elmChildHost)
	if d.ChildHost != nil {
		v.Nested(elmChildHost, d.ChildHost.Validate())
	}
	v.Require(len(d.Periods) > 0, elmPeriod)
	for i := range d.Periods {
		v.Nested(indexed(elmPeriod, i), d.Periods[i].Validate())
	}
	v.Require(d.TransferHoldPeriod != nil, elmTransferHold)
	checkOptPeriod(v, elmTransferHold, d.TransferHoldPeriod, transferHoldRule)
	for i := range d.GracePeriods {
		v.Nested(indexed(elmGracePeriod, i), d.GracePeriods[i].Validate())
	}
	if d.RGP != nil {
		v.Nested(elmRGP, d.RGP.Validate())
	}
	if d.DNSSEC != nil {
		v.Nested(elmDNSSEC, d.DNSSEC.Validate())
	}
	v.AtLeast(elmMaxCheckDomain, d.MaxCheckDomain, 1)
	if d.SupportedStatus != nil {
		v.Nested(elmSupportedStat, d.SupportedStatus.Validate())
	}
	checkRegex(v, AuthInfoRegexRoot, d.AuthInfoRegex, true)
	v.OptOneOf(elmExpiryPolicy, d.ExpiryPolicy, ExpiryAutoRenew, ExpiryAutoDelete)
	if d.CustomData != nil {
		v.Nested(elmCustomData, d.CustomData.Validate())
	}
	return v.Err()
}

func (d *Domain) Encode() (*etree.Element, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d.element(), nil
}

func (d *Domain) element() *etree.Element {
	el := NS.NewRoot(elmDomain)
	for i := range d.DomainNames {
		el.AddChild(d.DomainNames[i].element())
	}
	if d.IDN != nil {
		el.AddChild(d.IDN.element())
	}
	NS.AddBool(el, elmPremiumSupport, d.PremiumSupport)
	NS.AddBool(el, elmContactsSupported, d.ContactsSupported)
	for i := range d.Contacts {
		el.AddChild(d.Contacts[i].element())
	}
	if d.NameServers != nil {
		el.AddChild(d.NameServers.element())
	}
	if d.ChildHost != nil {
		el.AddChild(d.ChildHost.element())
	}
	for i := range d.Periods {
		el.AddChild(d.Periods[i].element())
	}
	if d.TransferHoldPeriod != nil {
		d.TransferHoldPeriod.appendTo(el, elmTransferHold)
	}
	for i := range d.GracePeriods {
		el.AddChild(d.GracePeriods[i].element())
	}
	if d.RGP != nil {
		el.AddChild(d.RGP.element())
	}
	if d.DNSSEC != nil {
		el.AddChild(d.DNSSEC.element())
	}
	NS.AddInt(el, elmMaxCheckDomain, d.MaxCheckDomain)
	if d.SupportedStatus != nil {
		el.AddChild(d.SupportedStatus.element())
	}
	addRegex(el, AuthInfoRegexRoot, d.AuthInfoRegex)
	NS.AddOptText(el, elmExpiryPolicy, d.ExpiryPolicy)
	NS.AddBool(el, elmNullAuthInfoSupported, d.NullAuthInfoSupported)
	if d.CustomData != nil {
		el.AddChild(d.CustomData.element())
	}
	return el
}

func (d *Domain) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmDomain); err != nil {
		return err
	}
	*d = Domain{ExpiryPolicy: NS.Text(el, elmExpiryPolicy)}
	var err error
	if d.DomainNames, err = eppmap.DecodeList[DomainName](NS, el, elmDomainName); err != nil {
		return err
	}
	if d.IDN, err = eppmap.DecodeOpt[IDN](NS, el, elmIDN); err != nil {
		return err
	}
	if d.PremiumSupport, err = NS.Bool(el, elmPremiumSupport, false); err != nil {
		return err
	}
	if d.ContactsSupported, err = NS.Bool(el, elmContactsSupported, true); err != nil {
		return err
	}
	if d.Contacts, err = eppmap.DecodeList[DomainContact](NS, el, elmContact); err != nil {
		return err
	}
	if d.NameServers, err = eppmap.DecodeOpt[DomainNS](NS, el, elmNS); err != nil {
		return err
	}
	if d.ChildHost, err = eppmap.DecodeOpt[DomainHost](NS, el, elmChildHost); err != nil {
		return err
	}
	if d.Periods, err = eppmap.DecodeList[DomainPeriod](NS, el, elmPeriod); err != nil {
		return err
	}
	if d.TransferHoldPeriod, err = decodeOptPeriod(el, elmTransferHold); err != nil {
		return err
	}
	if d.GracePeriods, err = eppmap.DecodeList[GracePeriod](NS, el, elmGracePeriod); err != nil {
		return err
	}
	if d.RGP, err = eppmap.DecodeOpt[RGP](NS, el, elmRGP); err != nil {
		return err
	}
	if d.DNSSEC, err = eppmap.DecodeOpt[DNSSEC](NS, el, elmDNSSEC); err != nil {
		return err
	}
	if d.MaxCheckDomain, err = NS.Int(el, elmMaxCheckDomain); err != nil {
		return err
	}
	if d.SupportedStatus, err = eppmap.DecodeOpt[SupportedStatus](NS, el, elmSupportedStat); err != nil {
		return err
	}
	if d.AuthInfoRegex, err = decodeRegex(el, AuthInfoRegexRoot); err != nil {
		return err
	}
	if d.NullAuthInfoSupported, err = NS.Bool(el, elmNullAuthInfoSupported, false); err != nil {
		return err
	}
	d.CustomData, err = eppmap.DecodeOpt[CustomData](NS, el, elmCustomData)
	return err
}

func (d *Domain) Clone() *Domain {
	if d == nil {
		return nil
	}
	c := *d
	c.DomainNames = eppmap.CloneAll(d.DomainNames)
	c.IDN = d.IDN.Clone()
	c.Contacts = eppmap.CloneAll(d.Contacts)
	c.NameServers = d.NameServers.Clone()
	c.ChildHost = d.ChildHost.Clone()
	c.Periods = eppmap.CloneAll(d.Periods)
	c.TransferHoldPeriod = eppmap.ClonePtr(d.TransferHoldPeriod)
	c.GracePeriods = eppmap.CloneSlice(d.GracePeriods)
	c.RGP = d.RGP.Clone()
	c.DNSSEC = d.DNSSEC.Clone()
	c.SupportedStatus = d.SupportedStatus.Clone()
	c.AuthInfoRegex = d.AuthInfoRegex.Clone()
	c.CustomData = d.CustomData.Clone()
	return &c
}

func (d *Domain) String() string { return eppmap.Render(d.element()) }

// ---- DomainContact ----------------------------------------------------------

// DomainContact bounds the number of contacts of one type per domain.
type DomainContact struct {
	Type string
	MinMax
}

// NewDomainContact returns a contact policy of typ with the given bounds.
func NewDomainContact(typ string, min int, max *int) *DomainContact {
	return &DomainContact{Type: typ, MinMax: MinMax{Min: min, Max: max}}
}

func (c *DomainContact) Validate() error {
	v := eppmap.Check(NS.Qualify(elmContact))
	v.OneOf(attrType, c.Type, ContactAdmin, ContactTech, ContactBilling)
	c.MinMax.check(v, minMaxRule)
	return v.Err()
}

func (c *DomainContact) Encode() (*etree.Element, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.element(), nil
}

func (c *DomainContact) element() *etree.Element {
	el := NS.NewRoot(elmContact)
	el.CreateAttr(attrType, c.Type)
	c.MinMax.appendTo(el, minMaxRule)
	return el
}

func (c *DomainContact) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmContact); err != nil {
		return err
	}
	mm, err := decodeMinMax(el, minMaxRule)
	if err != nil {
		return err
	}
	*c = DomainContact{Type: eppmap.Attr(el, attrType, ""), MinMax: mm}
	return nil
}

func (c *DomainContact) Clone() *DomainContact {
	if c == nil {
		return nil
	}
	return &DomainContact{Type: c.Type, MinMax: c.MinMax.clone()}
}

func (c *DomainContact) String() string { return eppmap.Render(c.element()) }

// ---- DomainNS / DomainHost --------------------------------------------------

// DomainNS bounds the number of name servers per domain.
type DomainNS struct {
	MinMax
}

func (n *DomainNS) Validate() error {
	v := eppmap.Check(NS.Qualify(elmNS))
	n.MinMax.check(v, minMaxRule)
	return v.Err()
}

func (n *DomainNS) Encode() (*etree.Element, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n.element(), nil
}

func (n *DomainNS) element() *etree.Element {
	el := NS.NewRoot(elmNS)
	n.MinMax.appendTo(el, minMaxRule)
	return el
}

func (n *DomainNS) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmNS); err != nil {
		return err
	}
	mm, err := decodeMinMax(el, minMaxRule)
	if err != nil {
		return err
	}
	*n = DomainNS{MinMax: mm}
	return nil
}

func (n *DomainNS) Clone() *DomainNS {
	if n == nil {
		return nil
	}
	return &DomainNS{MinMax: n.MinMax.clone()}
}

func (n *DomainNS) String() string { return eppmap.Render(n.element()) }

// DomainHost bounds the number of child hosts per domain.
type DomainHost struct {
	MinMax
}

func (h *DomainHost) Validate() error {
	v := eppmap.Check(NS.Qualify(elmChildHost))
	h.MinMax.check(v, minMaxRule)
	return v.Err()
}

func (h *DomainHost) Encode() (*etree.Element, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h.element(), nil
}

func (h *DomainHost) element() *etree.Element {
	el := NS.NewRoot(elmChildHost)
	h.MinMax.appendTo(el, minMaxRule)
	return el
}

func (h *DomainHost) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmChildHost); err != nil {
		return err
	}
	mm, err := decodeMinMax(el, minMaxRule)
	if err != nil {
		return err
	}
	*h = DomainHost{MinMax: mm}
	return nil
}

func (h *DomainHost) Clone() *DomainHost {
	if h == nil {
		return nil
	}
	return &DomainHost{MinMax: h.MinMax.clone()}
}

func (h *DomainHost) String() string { return eppmap.Render(h.element()) }
