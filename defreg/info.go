package defreg

import (
	"time"

	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmInfo    = "info"
	elmInfData = "infData"
	elmDelete  = "delete"
)

// ---- InfoCmd ----------------------------------------------------------------

// InfoCmd asks for a defensive registration by roid.
type InfoCmd struct {
	Roid     string
	AuthInfo *AuthInfo
}

// NewInfoCmd returns an info command for roid.
func NewInfoCmd(roid string) *InfoCmd { return &InfoCmd{Roid: roid} }

func (c *InfoCmd) Verb() string { return elmInfo }

func (c *InfoCmd) Validate() error {
	v := eppmap.Check(NS.Qualify(elmInfo))
	v.Require(c.Roid != "", elmRoid)
	checkOpt(v, elmAuthInfo, c.AuthInfo, c.AuthInfo != nil)
	return v.Err()
}

func (c *InfoCmd) Encode() (*etree.Element, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.element(), nil
}

func (c *InfoCmd) element() *etree.Element {
	el := NS.NewRoot(elmInfo)
	NS.AddText(el, elmRoid, c.Roid)
	if c.AuthInfo != nil {
		el.AddChild(c.AuthInfo.element())
	}
	return el
}

func (c *InfoCmd) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmInfo); err != nil {
		return err
	}
	*c = InfoCmd{Roid: NS.Text(el, elmRoid)}
	var err error
	c.AuthInfo, err = eppmap.DecodeOpt[AuthInfo](NS, el, elmAuthInfo)
	return err
}

func (c *InfoCmd) Clone() *InfoCmd {
	if c == nil {
		return nil
	}
	return &InfoCmd{Roid: c.Roid, AuthInfo: c.AuthInfo.Clone()}
}

func (c *InfoCmd) String() string { return eppmap.Render(c.element()) }

// ---- InfoResp ---------------------------------------------------------------

// InfoResp answers an InfoCmd.
type InfoResp struct {
	Roid         string
	Name         *Name
	Registrant   string
	TM           string
	TMCountry    string
	TMDate       *time.Time
	AdminContact string
	Statuses     []Status
	ClID         string
	CrID         string
	CrDate       time.Time
	UpID         string
	UpDate       *time.Time
	ExDate       *time.Time
	TrDate       *time.Time
	AuthInfo     *AuthInfo
}

func (r *InfoResp) Validate() error {
	v := eppmap.Check(NS.Qualify(elmInfData))
	v.Require(r.Roid != "", elmRoid)
	v.Child(elmName, r.Name, r.Name != nil)
	v.Require(r.Registrant != "", elmRegistrant)
	checkCountry(v, r.TMCountry)
	v.Require(r.AdminContact != "", elmAdminContact)
	checkStatuses(v, r.Statuses)
	v.Require(r.ClID != "", elmClID)
	v.Require(r.CrID != "", elmCrID)
	v.Require(!r.CrDate.IsZero(), elmCrDate)
	checkOpt(v, elmAuthInfo, r.AuthInfo, r.AuthInfo != nil)
	return v.Err()
}

func (r *InfoResp) Encode() (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.element(), nil
}

func (r *InfoResp) element() *etree.Element {
	el := NS.NewRoot(elmInfData)
	NS.AddText(el, elmRoid, r.Roid)
	if r.Name != nil {
		el.AddChild(r.Name.element())
	}
	NS.AddText(el, elmRegistrant, r.Registrant)
	NS.AddOptText(el, elmTM, r.TM)
	NS.AddOptText(el, elmTMCountry, r.TMCountry)
	NS.AddOptDate(el, elmTMDate, r.TMDate)
	NS.AddText(el, elmAdminContact, r.AdminContact)
	addStatuses(el, r.Statuses)
	NS.AddText(el, elmClID, r.ClID)
	NS.AddText(el, elmCrID, r.CrID)
	NS.AddTime(el, elmCrDate, r.CrDate)
	NS.AddOptText(el, elmUpID, r.UpID)
	NS.AddOptTime(el, elmUpDate, r.UpDate)
	NS.AddOptTime(el, elmExDate, r.ExDate)
	NS.AddOptTime(el, elmTrDate, r.TrDate)
	if r.AuthInfo != nil {
		el.AddChild(r.AuthInfo.element())
	}
	return el
}

func (r *InfoResp) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmInfData); err != nil {
		return err
	}
	*r = InfoResp{
		Roid:         NS.Text(el, elmRoid),
		Registrant:   NS.Text(el, elmRegistrant),
		TM:           NS.Text(el, elmTM),
		TMCountry:    NS.Text(el, elmTMCountry),
		AdminContact: NS.Text(el, elmAdminContact),
		ClID:         NS.Text(el, elmClID),
		CrID:         NS.Text(el, elmCrID),
		UpID:         NS.Text(el, elmUpID),
	}
	var err error
	if r.Name, err = eppmap.DecodeOpt[Name](NS, el, elmName); err != nil {
		return err
	}
	if r.TMDate, err = NS.OptDate(el, elmTMDate); err != nil {
		return err
	}
	if r.Statuses, err = eppmap.DecodeList[Status](NS, el, elmStatus); err != nil {
		return err
	}
	if r.CrDate, err = NS.Time(el, elmCrDate); err != nil {
		return err
	}
	if r.UpDate, err = NS.OptTime(el, elmUpDate); err != nil {
		return err
	}
	if r.ExDate, err = NS.OptTime(el, elmExDate); err != nil {
		return err
	}
	if r.TrDate, err = NS.OptTime(el, elmTrDate); err != nil {
		return err
	}
	r.AuthInfo, err = eppmap.DecodeOpt[AuthInfo](NS, el, elmAuthInfo)
	return err
}

func (r *InfoResp) Clone() *InfoResp {
	if r == nil {
		return nil
	}
	c := *r
	c.Name = r.Name.Clone()
	c.TMDate = eppmap.ClonePtr(r.TMDate)
	c.Statuses = eppmap.CloneSlice(r.Statuses)
	c.UpDate = eppmap.ClonePtr(r.UpDate)
	c.ExDate = eppmap.ClonePtr(r.ExDate)
	c.TrDate = eppmap.ClonePtr(r.TrDate)
	c.AuthInfo = r.AuthInfo.Clone()
	return &c
}

func (r *InfoResp) String() string { return eppmap.Render(r.element()) }

// ---- DeleteCmd --------------------------------------------------------------

// DeleteCmd deletes a defensive registration.
type DeleteCmd struct {
	Roid string
}

func (c *DeleteCmd) Verb() string { return elmDelete }

func (c *DeleteCmd) Validate() error {
	v := eppmap.Check(NS.Qualify(elmDelete))
	v.Require(c.Roid != "", elmRoid)
	return v.Err()
}

func (c *DeleteCmd) Encode() (*etree.Element, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.element(), nil
}

func (c *DeleteCmd) element() *etree.Element {
	el := NS.NewRoot(elmDelete)
	NS.AddText(el, elmRoid, c.Roid)
	return el
}

func (c *DeleteCmd) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmDelete); err != nil {
		return err
	}
	*c = DeleteCmd{Roid: NS.Text(el, elmRoid)}
	return nil
}

func (c *DeleteCmd) Clone() *DeleteCmd { return eppmap.ClonePtr(c) }

func (c *DeleteCmd) String() string { return eppmap.Render(c.element()) }
