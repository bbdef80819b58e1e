package defreg

import (
	"time"

	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmCreate  = "create"
	elmCreData = "creData"
)

// CreateCmd creates a defensive registration.
type CreateCmd struct {
	Name         *Name
	Registrant   string
	TM           string
	TMCountry    string
	TMDate       *time.Time
	AdminContact string
	Period       *Period
	AuthInfo     *AuthInfo
}

func (c *CreateCmd) Verb() string { return elmCreate }

func (c *CreateCmd) Validate() error {
	v := eppmap.Check(NS.Qualify(elmCreate))
	v.Child(elmName, c.Name, c.Name != nil)
	v.Require(c.Registrant != "", elmRegistrant)
	checkCountry(v, c.TMCountry)
	v.Require(c.AdminContact != "", elmAdminContact)
	checkOpt(v, elmPeriod, c.Period, c.Period != nil)
	v.Child(elmAuthInfo, c.AuthInfo, c.AuthInfo != nil)
	return v.Err()
}

func (c *CreateCmd) Encode() (*etree.Element, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.element(), nil
}

func (c *CreateCmd) element() *etree.Element {
	el := NS.NewRoot(elmCreate)
	if c.Name != nil {
		el.AddChild(c.Name.element())
	}
	NS.AddText(el, elmRegistrant, c.Registrant)
	NS.AddOptText(el, elmTM, c.TM)
	NS.AddOptText(el, elmTMCountry, c.TMCountry)
	NS.AddOptDate(el, elmTMDate, c.TMDate)
	NS.AddText(el, elmAdminContact, c.AdminContact)
	if c.Period != nil {
		el.AddChild(c.Period.element())
	}
	if c.AuthInfo != nil {
		el.AddChild(c.AuthInfo.element())
	}
	return el
}

func (c *CreateCmd) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmCreate); err != nil {
		return err
	}
	*c = CreateCmd{
		Registrant:   NS.Text(el, elmRegistrant),
		TM:           NS.Text(el, elmTM),
		TMCountry:    NS.Text(el, elmTMCountry),
		AdminContact: NS.Text(el, elmAdminContact),
	}
	var err error
	if c.Name, err = eppmap.DecodeOpt[Name](NS, el, elmName); err != nil {
		return err
	}
	if c.TMDate, err = NS.OptDate(el, elmTMDate); err != nil {
		return err
	}
	if c.Period, err = eppmap.DecodeOpt[Period](NS, el, elmPeriod); err != nil {
		return err
	}
	c.AuthInfo, err = eppmap.DecodeOpt[AuthInfo](NS, el, elmAuthInfo)
	return err
}

func (c *CreateCmd) Clone() *CreateCmd {
	if c == nil {
		return nil
	}
	out := *c
	out.Name = c.Name.Clone()
	out.TMDate = eppmap.ClonePtr(c.TMDate)
	out.Period = c.Period.Clone()
	out.AuthInfo = c.AuthInfo.Clone()
	return &out
}

func (c *CreateCmd) String() string { return eppmap.Render(c.element()) }

// CreateResp answers a CreateCmd.
type CreateResp struct {
	Roid   string
	Name   string
	CrDate time.Time
	ExDate time.Time
}

func (r *CreateResp) Validate() error {
	v := eppmap.Check(NS.Qualify(elmCreData))
	v.Require(r.Roid != "", elmRoid)
	v.Require(r.Name != "", elmName)
	v.Require(!r.CrDate.IsZero(), elmCrDate)
	v.Require(!r.ExDate.IsZero(), elmExDate)
	return v.Err()
}

func (r *CreateResp) Encode() (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.element(), nil
}

func (r *CreateResp) element() *etree.Element {
	el := NS.NewRoot(elmCreData)
	NS.AddText(el, elmRoid, r.Roid)
	NS.AddText(el, elmName, r.Name)
	NS.AddTime(el, elmCrDate, r.CrDate)
	NS.AddTime(el, elmExDate, r.ExDate)
	return el
}

func (r *CreateResp) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmCreData); err != nil {
		return err
	}
	*r = CreateResp{Roid: NS.Text(el, elmRoid), Name: NS.Text(el, elmName)}
	var err error
	if r.CrDate, err = NS.Time(el, elmCrDate); err != nil {
		return err
	}
	r.ExDate, err = NS.Time(el, elmExDate)
	return err
}

func (r *CreateResp) Clone() *CreateResp { return eppmap.ClonePtr(r) }

func (r *CreateResp) String() string { return eppmap.Render(r.element()) }
