package registry

import (
	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmCheck  = "check"
	elmCreate = "create"
	elmUpdate = "update"
	elmDelete = "delete"
	elmInfo   = "info"
	elmAll    = "all"
)

// ---- CheckCmd ---------------------------------------------------------------

// CheckCmd asks whether zone names are available.
type CheckCmd struct {
	Names []string
}

// NewCheckCmd returns a check command for names.
func NewCheckCmd(names ...string) *CheckCmd { return &CheckCmd{Names: names} }

func (c *CheckCmd) Verb() string { return elmCheck }

func (c *CheckCmd) Validate() error {
	v := eppmap.Check(NS.Qualify(elmCheck))
	v.Require(len(c.Names) > 0, elmName)
	for i, n := range c.Names {
		v.Require(n != "", indexed(elmName, i))
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
	NS.AddTexts(el, elmName, c.Names)
	return el
}

func (c *CheckCmd) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmCheck); err != nil {
		return err
	}
	*c = CheckCmd{Names: NS.Texts(el, elmName)}
	return nil
}

func (c *CheckCmd) Clone() *CheckCmd {
	if c == nil {
		return nil
	}
	return &CheckCmd{Names: eppmap.CloneSlice(c.Names)}
}

func (c *CheckCmd) String() string { return eppmap.Render(c.element()) }

// ---- CreateCmd / UpdateCmd --------------------------------------------------

// CreateCmd creates a zone.
type CreateCmd struct {
	Zone *Zone
}

func (c *CreateCmd) Verb() string { return elmCreate }

func (c *CreateCmd) Validate() error {
	v := eppmap.Check(NS.Qualify(elmCreate))
	v.Child(elmZone, c.Zone, c.Zone != nil)
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
	if c.Zone != nil {
		el.AddChild(c.Zone.element())
	}
	return el
}

func (c *CreateCmd) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmCreate); err != nil {
		return err
	}
	*c = CreateCmd{}
	var err error
	c.Zone, err = eppmap.DecodeOpt[Zone](NS, el, elmZone)
	return err
}

func (c *CreateCmd) Clone() *CreateCmd {
	if c == nil {
		return nil
	}
	return &CreateCmd{Zone: c.Zone.Clone()}
}

func (c *CreateCmd) String() string { return eppmap.Render(c.element()) }

// UpdateCmd replaces the policy of an existing zone.
type UpdateCmd struct {
	Zone *Zone
}

func (c *UpdateCmd) Verb() string { return elmUpdate }

func (c *UpdateCmd) Validate() error {
	v := eppmap.Check(NS.Qualify(elmUpdate))
	v.Child(elmZone, c.Zone, c.Zone != nil)
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
	if c.Zone != nil {
		el.AddChild(c.Zone.element())
	}
	return el
}

func (c *UpdateCmd) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmUpdate); err != nil {
		return err
	}
	*c = UpdateCmd{}
	var err error
	c.Zone, err = eppmap.DecodeOpt[Zone](NS, el, elmZone)
	return err
}

func (c *UpdateCmd) Clone() *UpdateCmd {
	if c == nil {
		return nil
	}
	return &UpdateCmd{Zone: c.Zone.Clone()}
}

func (c *UpdateCmd) String() string { return eppmap.Render(c.element()) }

// ---- DeleteCmd --------------------------------------------------------------

// DeleteCmd deletes a zone by name.
type DeleteCmd struct {
	Name string
}

func (c *DeleteCmd) Verb() string { return elmDelete }

func (c *DeleteCmd) Validate() error {
	v := eppmap.Check(NS.Qualify(elmDelete))
	v.Require(c.Name != "", elmName)
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
	NS.AddText(el, elmName, c.Name)
	return el
}

func (c *DeleteCmd) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmDelete); err != nil {
		return err
	}
	*c = DeleteCmd{Name: NS.Text(el, elmName)}
	return nil
}

func (c *DeleteCmd) Clone() *DeleteCmd { return eppmap.ClonePtr(c) }

func (c *DeleteCmd) String() string { return eppmap.Render(c.element()) }

// ---- InfoCmd ----------------------------------------------------------------

// InfoCmd asks for one zone by name, or for the list of all zones.
type InfoCmd struct {
	Name string
	All  bool
}

// NewInfoCmd returns an info command for one zone.
func NewInfoCmd(name string) *InfoCmd { return &InfoCmd{Name: name} }

// NewInfoAllCmd returns an info command for the zone list.
func NewInfoAllCmd() *InfoCmd { return &InfoCmd{All: true} }

func (c *InfoCmd) Verb() string { return elmInfo }

func (c *InfoCmd) Validate() error {
	v := eppmap.Check(NS.Qualify(elmInfo))
	v.ExactlyOne(elmName, c.Name != "", elmAll, c.All)
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
	NS.AddOptText(el, elmName, c.Name)
	if c.All {
		NS.Add(el, elmAll)
	}
	return el
}

func (c *InfoCmd) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmInfo); err != nil {
		return err
	}
	*c = InfoCmd{Name: NS.Text(el, elmName), All: NS.Has(el, elmAll)}
	return nil
}

func (c *InfoCmd) Clone() *InfoCmd { return eppmap.ClonePtr(c) }

func (c *InfoCmd) String() string { return eppmap.Render(c.element()) }
