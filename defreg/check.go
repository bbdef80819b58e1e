package defreg

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmCheck   = "check"
	elmChkData = "chkData"
	elmCD      = "cd"
)

// CheckCmd asks whether names are available for defensive registration.
type CheckCmd struct {
	Names []Name
}

// NewCheckCmd returns a check command for standard level names.
func NewCheckCmd(names ...string) *CheckCmd {
	c := &CheckCmd{Names: make([]Name, len(names))}
	for i, n := range names {
		c.Names[i] = *NewName(n)
	}
	return c
}

func (c *CheckCmd) Verb() string { return elmCheck }

func (c *CheckCmd) Validate() error {
	v := eppmap.Check(NS.Qualify(elmCheck))
	v.Require(len(c.Names) > 0, elmName)
	for i := range c.Names {
		v.Nested(indexed(elmName, i), c.Names[i].Validate())
	}
	return v.Err()
}

func (c *CheckCmd) Encode() (*etree.Element, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.element(), nil
}

func (c *CheckCmd) element() *etree.Element {
	el := NS.NewRoot(elmCheck)
	for i := range c.Names {
		el.AddChild(c.Names[i].element())
	}
	return el
}

func (c *CheckCmd) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmCheck); err != nil {
		return err
	}
	*c = CheckCmd{}
	var err error
	c.Names, err = eppmap.DecodeList[Name](NS, el, elmName)
	return err
}

func (c *CheckCmd) Clone() *CheckCmd {
	if c == nil {
		return nil
	}
	return &CheckCmd{Names: eppmap.CloneSlice(c.Names)}
}

func (c *CheckCmd) String() string { return eppmap.Render(c.element()) }

// CheckResult is the availability of one name.
type CheckResult struct {
	Name   Name
	Avail  bool
	Reason string
	Lang   string
}

func (r *CheckResult) Validate() error {
	v := eppmap.Check(NS.Qualify(elmCD))
	r.Name.check(v)
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
	n := NS.Add(el, elmName)
	r.Name.fill(n)
	n.CreateAttr(attrAvail, eppmap.FormatBool(r.Avail))
	if r.Reason != "" {
		reason := NS.AddText(el, elmReason, r.Reason)
		r.Lang = orDefault(r.Lang, DefaultLang)
		reason.CreateAttr(attrLang, r.Lang)
	}
	return el
}

func (r *CheckResult) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmCD); err != nil {
		return err
	}
	*r = CheckResult{}
	if n := NS.Child(el, elmName); n != nil {
		if err := r.Name.Decode(n); err != nil {
			return err
		}
		avail, err := eppmap.BoolAttr(n, attrAvail, false)
		if err != nil {
			return err
		}
		r.Avail = avail
	}
	if reason := NS.Child(el, elmReason); reason != nil {
		r.Reason = strings.TrimSpace(reason.Text())
		r.Lang = eppmap.Attr(reason, attrLang, DefaultLang)
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
