package registry

import (
	"time"

	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmChkData = "chkData"
	elmCreData = "creData"
	elmInfData = "infData"
	elmCD      = "cd"
	elmReason  = "reason"
	attrAvail  = "avail"
)

// ---- CheckResult / CheckResp ------------------------------------------------

// CheckResult is the availability of one zone name.
type CheckResult struct {
	Name   string
	Avail  bool
	Reason string
	Lang   string
}

func (r *CheckResult) Validate() error {
	v := eppmap.Check(NS.Qualify(elmCD))
	v.Require(r.Name != "", elmName)
	return v.Err()
}

func (r *CheckResult) Encode() (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.element(), nil
}

func (r *CheckResult) element() *etree.Element {
	el := NS.NewRoot(elmCD)
	n := NS.AddText(el, elmName, r.Name)
	n.CreateAttr(attrAvail, eppmap.FormatBool(r.Avail))
	if r.Reason != "" {
		if r.Lang == "" {
			r.Lang = DefaultLang
		}
		c := NS.AddText(el, elmReason, r.Reason)
		c.CreateAttr(attrLang, r.Lang)
	}
	return el
}

func (r *CheckResult) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmCD); err != nil {
		return err
	}
	*r = CheckResult{}
	if n := NS.Child(el, elmName); n != nil {
		r.Name = textOf(n)
		avail, err := eppmap.BoolAttr(n, attrAvail, false)
		if err != nil {
			return err
		}
		r.Avail = avail
	}
	if c := NS.Child(el, elmReason); c != nil {
		r.Reason = textOf(c)
		r.Lang = eppmap.Attr(c, attrLang, DefaultLang)
	}
	return nil
}

func (r *CheckResult) Clone() *CheckResult { return eppmap.ClonePtr(r) }

func (r *CheckResult) String() string { return eppmap.Render(r.element()) }

// CheckResp answers a CheckCmd.
type CheckResp struct {
	Results []CheckResult
}

func (r *CheckResp) Validate() error {
	v := eppmap.Check(NS.Qualify(elmChkData))
	v.Require(len(r.Results) > 0, elmCD)
	for i := range r.Results {
		v.Nested(indexed(elmCD, i), r.Results[i].Validate())
	}
	return v.Err()
}

func (r *CheckResp) Encode() (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.element(), nil
}

func (r *CheckResp) element() *etree.Element {
	el := NS.NewRoot(elmChkData)
	for i := range r.Results {
		el.AddChild(r.Results[i].element())
	}
	return el
}

func (r *CheckResp) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmChkData); err != nil {
		return err
	}
	*r = CheckResp{}
	var err error
	r.Results, err = eppmap.DecodeList[CheckResult](NS, el, elmCD)
	return err
}

func (r *CheckResp) Clone() *CheckResp {
	if r == nil {
		return nil
	}
	return &CheckResp{Results: eppmap.CloneSlice(r.Results)}
}

func (r *CheckResp) String() string { return eppmap.Render(r.element()) }

// ---- CreateResp -------------------------------------------------------------

// CreateResp answers a CreateCmd.
type CreateResp struct {
	Name   string
	CrDate time.Time
}

func (r *CreateResp) Validate() error {
	v := eppmap.Check(NS.Qualify(elmCreData))
	v.Require(r.Name != "", elmName)
	v.Require(!r.CrDate.IsZero(), elmCrDate)
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
	NS.AddText(el, elmName, r.Name)
	NS.AddTime(el, elmCrDate, r.CrDate)
	return el
}

func (r *CreateResp) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmCreData); err != nil {
		return err
	}
	*r = CreateResp{Name: NS.Text(el, elmName)}
	var err error
	r.CrDate, err = NS.Time(el, elmCrDate)
	return err
}

func (r *CreateResp) Clone() *CreateResp { return eppmap.ClonePtr(r) }

func (r *CreateResp) String() string { return eppmap.Render(r.element()) }

// ---- InfoResp ---------------------------------------------------------------

// InfoResp answers an InfoCmd with either the zone list or one zone.
type InfoResp struct {
	ZoneList *ZoneList
	Zone     *Zone
}

func (r *InfoResp) Validate() error {
	v := eppmap.Check(NS.Qualify(elmInfData))
	v.ExactlyOne(elmZoneList, r.ZoneList != nil, elmZone, r.Zone != nil)
	if r.ZoneList != nil {
		v.Nested(elmZoneList, r.ZoneList.Validate())
	}
	if r.Zone != nil {
		v.Nested(elmZone, r.Zone.Validate())
	}
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
	if r.ZoneList != nil {
		el.AddChild(r.ZoneList.element())
	}
	if r.Zone != nil {
		el.AddChild(r.Zone.element())
	}
	return el
}

func (r *InfoResp) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmInfData); err != nil {
		return err
	}
	*r = InfoResp{}
	var err error
	if r.ZoneList, err = eppmap.DecodeOpt[ZoneList](NS, el, elmZoneList); err != nil {
		return err
	}
	r.Zone, err = eppmap.DecodeOpt[Zone](NS, el, elmZone)
	return err
}

func (r *InfoResp) Clone() *InfoResp {
	if r == nil {
		return nil
	}
	return &InfoResp{ZoneList: r.ZoneList.Clone(), Zone: r.Zone.Clone()}
}

func (r *InfoResp) String() string { return eppmap.Render(r.element()) }
