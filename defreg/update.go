package defreg

import (
	"time"

	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmUpdate = "update"
	elmAdd    = "add"
	elmRem    = "rem"
	elmChg    = "chg"
)

// UpdateCmd changes a defensive registration. At least one of Add, Remove or
// Change is set.
type UpdateCmd struct {
	Roid   string
	Add    *Add
	Remove *Remove
	Change *Change
}

func (c *UpdateCmd) Verb() string { return elmUpdate }

func (c *UpdateCmd) Validate() error {
	v := eppmap.Check(NS.Qualify(elmUpdate))
	v.Require(c.Roid != "", elmRoid)
	if c.Add == nil && c.Remove == nil && c.Change == nil {
		v.Add("one of %s, %s or %s is required", elmAdd, elmRem, elmChg)
	}
	checkOpt(v, elmAdd, c.Add, c.Add != nil)
	checkOpt(v, elmRem, c.Remove, c.Remove != nil)
	checkOpt(v, elmChg, c.Change, c.Change != nil)
	return v.Err()
}

func (c *UpdateCmd) Encode() (*etree.Element, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.element(), nil
}

func (c *UpdateCmd) element() *etree.Element {
	el := NS.NewRoot(elmUpdate)
	NS.AddText(el, elmRoid, c.Roid)
	if c.Add != nil {
		el.AddChild(c.Add.element())
	}
	if c.Remove != nil {
		el.AddChild(c.Remove.element())
	}
	if c.Change != nil {
		el.AddChild(c.Change.element())
	}
	return el
}

func (c *UpdateCmd) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmUpdate); err != nil {
		return err
	}
	*c = UpdateCmd{Roid: NS.Text(el, elmRoid)}
	var err error
	if c.Add, err = eppmap.DecodeOpt[Add](NS, el, elmAdd); err != nil {
		return err
	}
	if c.Remove, err = eppmap.DecodeOpt[Remove](NS, el, elmRem); err != nil {
		return err
	}
	c.Change, err = eppmap.DecodeOpt[Change](NS, el, elmChg)
	return err
}

func (c *UpdateCmd) Clone() *UpdateCmd {
	if c == nil {
		return nil
	}
	return &UpdateCmd{Roid: c.Roid, Add: c.Add.Clone(), Remove: c.Remove.Clone(), Change: c.Change.Clone()}
}

func (c *UpdateCmd) String() string { return eppmap.Render(c.element()) }

// ---- Add / Remove -----------------------------------------------------------

func checkStatusList(root string, ss []Status) error {
	v := eppmap.Check(NS.Qualify(root))
	v.Require(len(ss) > 0, elmStatus)
	checkStatuses(v, ss)
	return v.Err()
}

func statusListElement(root string, ss []Status) *etree.Element {
	el := NS.NewRoot(root)
	addStatuses(el, ss)
	return el
}

func decodeStatusList(el *etree.Element, root string) ([]Status, error) {
	if err := NS.Expect(el, root); err != nil {
		return nil, err
	}
	return eppmap.DecodeList[Status](NS, el, elmStatus)
}

// Add lists statuses to add.
type Add struct {
	Statuses []Status
}

func (a *Add) Validate() error { return checkStatusList(elmAdd, a.Statuses) }

func (a *Add) Encode() (*etree.Element, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a.element(), nil
}

func (a *Add) element() *etree.Element { return statusListElement(elmAdd, a.Statuses) }

func (a *Add) Decode(el *etree.Element) (err error) {
	a.Statuses, err = decodeStatusList(el, elmAdd)
	return err
}

func (a *Add) Clone() *Add {
	if a == nil {
		return nil
	}
	return &Add{Statuses: eppmap.CloneSlice(a.Statuses)}
}

func (a *Add) String() string { return eppmap.Render(a.element()) }

// Remove lists statuses to remove.
type Remove struct {
	Statuses []Status
}

func (r *Remove) Validate() error { return checkStatusList(elmRem, r.Statuses) }

func (r *Remove) Encode() (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.element(), nil
}

func (r *Remove) element() *etree.Element { return statusListElement(elmRem, r.Statuses) }

func (r *Remove) Decode(el *etree.Element) (err error) {
	r.Statuses, err = decodeStatusList(el, elmRem)
	return err
}

func (r *Remove) Clone() *Remove {
	if r == nil {
		return nil
	}
	return &Remove{Statuses: eppmap.CloneSlice(r.Statuses)}
}

func (r *Remove) String() string { return eppmap.Render(r.element()) }

// ---- Change -----------------------------------------------------------------

// Change replaces registration data. At least one field is set.
type Change struct {
	Registrant   string
	TM           string
	TMCountry    string
	TMDate       *time.Time
	AdminContact string
	AuthInfo     *AuthInfo
}

func (c *Change) Validate() error {
	v := eppmap.Check(NS.Qualify(elmChg))
	if c.Registrant == "" && c.TM == "" && c.TMCountry == "" && c.TMDate == nil &&
		c.AdminContact == "" && c.AuthInfo == nil {
		v.Add("at least one field to change is required")
	}
	checkCountry(v, c.TMCountry)
	checkOpt(v, elmAuthInfo, c.AuthInfo, c.AuthInfo != nil)
	return v.Err()
}

func (c *Change) Encode() (*etree.Element, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.element(), nil
}

func (c *Change) element() *etree.Element {
	el := NS.NewRoot(elmChg)
	NS.AddOptText(el, elmRegistrant, c.Registrant)
	NS.AddOptText(el, elmTM, c.TM)
	NS.AddOptText(el, elmTMCountry, c.TMCountry)
	NS.AddOptDate(el, elmTMDate, c.TMDate)
	NS.AddOptText(el, elmAdminContact, c.AdminContact)
	if c.AuthInfo != nil {
		el.AddChild(c.AuthInfo.element())
	}
	return el
}

func (c *Change) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmChg); err != nil {
		return err
	}
	*c = Change{
		Registrant:   NS.Text(el, elmRegistrant),
		TM:           NS.Text(el, elmTM),
		TMCountry:    NS.Text(el, elmTMCountry),
		AdminContact: NS.Text(el, elmAdminContact),
	}
	var err error
	if c.TMDate, err = NS.OptDate(el, elmTMDate); err != nil {
		return err
	}
	c.AuthInfo, err = eppmap.DecodeOpt[AuthInfo](NS, el, elmAuthInfo)
	return err
}

func (c *Change) Clone() *Change {
	if c == nil {
		return nil
	}
	out := *c
	out.TMDate = eppmap.ClonePtr(c.TMDate)
	out.AuthInfo = c.AuthInfo.Clone()
	return &out
}

func (c *Change) String() string { return eppmap.Render(c.element()) }
