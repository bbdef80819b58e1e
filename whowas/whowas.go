// Package whowas maps the WhoWas EPP extension, which looks up the history of
// a domain by name or roid.
package whowas

import (
	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

// NS is the WhoWas namespace.
var NS = eppmap.Namespace{URI: "http://www.verisign.com/epp/whowas-1.0", Prefix: "whowas"}

// TypeDomain is the only object type WhoWas answers for, and the default.
const TypeDomain = "domain"

const (
	elmInfo    = "info"
	elmInfData = "infData"
	elmType    = "type"
	elmName    = "name"
	elmRoid    = "roid"
)

// InfoCmd asks for the history of a domain. Exactly one of Name and Roid is
// set.
type InfoCmd struct {
	Type string
	Name string
	Roid string
}

// NewInfoCmd returns a lookup by domain name.
func NewInfoCmd(name string) *InfoCmd { return &InfoCmd{Type: TypeDomain, Name: name} }

// NewRoidInfoCmd returns a lookup by roid.
func NewRoidInfoCmd(roid string) *InfoCmd { return &InfoCmd{Type: TypeDomain, Roid: roid} }

func (c *InfoCmd) Verb() string { return elmInfo }

func (c *InfoCmd) Validate() error {
	v := eppmap.Check(NS.Qualify(elmInfo))
	v.OptOneOf(elmType, c.Type, TypeDomain)
	v.ExactlyOne(elmName, c.Name != "", elmRoid, c.Roid != "")
	return v.Err()
}

func (c *InfoCmd) Encode() (*etree.Element, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.element(), nil
}

func (c *InfoCmd) element() *etree.Element {
	if c.Type == "" {
		c.Type = TypeDomain
	}
	el := NS.NewRoot(elmInfo)
	NS.AddText(el, elmType, c.Type)
	NS.AddOptText(el, elmName, c.Name)
	NS.AddOptText(el, elmRoid, c.Roid)
	return el
}

// Decode assumes TypeDomain when no type is given.
func (c *InfoCmd) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmInfo); err != nil {
		return err
	}
	*c = InfoCmd{Type: NS.Text(el, elmType), Name: NS.Text(el, elmName), Roid: NS.Text(el, elmRoid)}
	if c.Type == "" {
		c.Type = TypeDomain
	}
	return nil
}

func (c *InfoCmd) Clone() *InfoCmd { return eppmap.ClonePtr(c) }

func (c *InfoCmd) String() string { return eppmap.Render(c.element()) }
