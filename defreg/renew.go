package defreg

import (
	"time"

	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmRenew   = "renew"
	elmRenData = "renData"
)

// RenewCmd extends a defensive registration from its current expiry date.
type RenewCmd struct {
	Roid       string
	CurExpDate time.Time
	Period     *Period
}

func (c *RenewCmd) Verb() string { return elmRenew }

func (c *RenewCmd) Validate() error {
	v := eppmap.Check(NS.Qualify(elmRenew))
	v.Require(c.Roid != "", elmRoid)
	v.Require(!c.CurExpDate.IsZero(), elmCurExpDate)
	checkOpt(v, elmPeriod, c.Period, c.Period != nil)
	return v.Err()
}

func (c *RenewCmd) Encode() (*etree.Element, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.element(), nil
}

func (c *RenewCmd) element() *etree.Element {
	el := NS.NewRoot(elmRenew)
	NS.AddText(el, elmRoid, c.Roid)
	NS.AddDate(el, elmCurExpDate, c.CurExpDate)
	if c.Period != nil {
		el.AddChild(c.Period.element())
	}
	return el
}

func (c *RenewCmd) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmRenew); err != nil {
		return err
	}
	*c = RenewCmd{Roid: NS.Text(el, elmRoid)}
	var err error
	if c.CurExpDate, err = NS.Date(el, elmCurExpDate); err != nil {
		return err
	}
	c.Period, err = eppmap.DecodeOpt[Period](NS, el, elmPeriod)
	return err
}

func (c *RenewCmd) Clone() *RenewCmd {
	if c == nil {
		return nil
	}
	return &RenewCmd{Roid: c.Roid, CurExpDate: c.CurExpDate, Period: c.Period.Clone()}
}

func (c *RenewCmd) String() string { return eppmap.Render(c.element()) }

// RenewResp answers a RenewCmd.
type RenewResp struct {
	Roid   string
	ExDate *time.Time
}

func (r *RenewResp) Validate() error {
	v := eppmap.Check(NS.Qualify(elmRenData))
	v.Require(r.Roid != "", elmRoid)
	return v.Err()
}

func (r *RenewResp) Encode() (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.element(), nil
}

func (r *RenewResp) element() *etree.Element {
	el := NS.NewRoot(elmRenData)
	NS.AddText(el, elmRoid, r.Roid)
	NS.AddOptTime(el, elmExDate, r.ExDate)
	return el
}

func (r *RenewResp) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmRenData); err != nil {
		return err
	}
	*r = RenewResp{Roid: NS.Text(el, elmRoid)}
	var err error
	r.ExDate, err = NS.OptTime(el, elmExDate)
	return err
}

func (r *RenewResp) Clone() *RenewResp {
	if r == nil {
		return nil
	}
	return &RenewResp{Roid: r.Roid, ExDate: eppmap.ClonePtr(r.ExDate)}
}

func (r *RenewResp) String() string { return eppmap.Render(r.element()) }
