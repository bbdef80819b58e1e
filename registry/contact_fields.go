package registry

import (
	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

// The postal info fields below share one shape: a minLength/maxLength pair
// under their own element name, with a per-field floor.

func checkLength(root string, m MinMaxLength, floor int) error {
	v := eppmap.Check(NS.Qualify(root))
	m.check(v, lengthRule{floor: floor, ceiling: maxLengthCeiling})
	return v.Err()
}

func lengthElement(root string, m MinMaxLength) *etree.Element {
	el := NS.NewRoot(root)
	m.appendTo(el)
	return el
}

func decodeLength(el *etree.Element, root string) (MinMaxLength, error) {
	if err := NS.Expect(el, root); err != nil {
		return MinMaxLength{}, err
	}
	return decodeMinMaxLength(el)
}

func encodeLength(root string, m MinMaxLength, floor int) (*etree.Element, error) {
	if err := checkLength(root, m, floor); err != nil {
		return nil, err
	}
	return lengthElement(root, m), nil
}

// ContactName bounds the length of a contact name.
type ContactName struct{ MinMaxLength }

func (n *ContactName) Validate() error                 { return checkLength(elmName, n.MinMaxLength, 1) }
func (n *ContactName) Encode() (*etree.Element, error) { return encodeLength(elmName, n.MinMaxLength, 1) }
func (n *ContactName) element() *etree.Element         { return lengthElement(elmName, n.MinMaxLength) }
func (n *ContactName) Clone() *ContactName             { return eppmap.ClonePtr(n) }
func (n *ContactName) String() string                  { return eppmap.Render(n.element()) }

func (n *ContactName) Decode(el *etree.Element) (err error) {
	n.MinMaxLength, err = decodeLength(el, elmName)
	return err
}

// ContactOrg bounds the length of a contact organization. It may be empty.
type ContactOrg struct{ MinMaxLength }

func (o *ContactOrg) Validate() error                 { return checkLength(elmOrg, o.MinMaxLength, 0) }
func (o *ContactOrg) Encode() (*etree.Element, error) { return encodeLength(elmOrg, o.MinMaxLength, 0) }
func (o *ContactOrg) element() *etree.Element         { return lengthElement(elmOrg, o.MinMaxLength) }
func (o *ContactOrg) Clone() *ContactOrg              { return eppmap.ClonePtr(o) }
func (o *ContactOrg) String() string                  { return eppmap.Render(o.element()) }

func (o *ContactOrg) Decode(el *etree.Element) (err error) {
	o.MinMaxLength, err = decodeLength(el, elmOrg)
	return err
}

// ContactCity bounds the length of a city.
type ContactCity struct{ MinMaxLength }

func (c *ContactCity) Validate() error                 { return checkLength(elmCity, c.MinMaxLength, 1) }
func (c *ContactCity) Encode() (*etree.Element, error) { return encodeLength(elmCity, c.MinMaxLength, 1) }
func (c *ContactCity) element() *etree.Element         { return lengthElement(elmCity, c.MinMaxLength) }
func (c *ContactCity) Clone() *ContactCity             { return eppmap.ClonePtr(c) }
func (c *ContactCity) String() string                  { return eppmap.Render(c.element()) }

func (c *ContactCity) Decode(el *etree.Element) (err error) {
	c.MinMaxLength, err = decodeLength(el, elmCity)
	return err
}

// ContactSP bounds the length of a state or province.
type ContactSP struct{ MinMaxLength }

func (s *ContactSP) Validate() error                 { return checkLength(elmSP, s.MinMaxLength, 0) }
func (s *ContactSP) Encode() (*etree.Element, error) { return encodeLength(elmSP, s.MinMaxLength, 0) }
func (s *ContactSP) element() *etree.Element         { return lengthElement(elmSP, s.MinMaxLength) }
func (s *ContactSP) Clone() *ContactSP               { return eppmap.ClonePtr(s) }
func (s *ContactSP) String() string                  { return eppmap.Render(s.element()) }

func (s *ContactSP) Decode(el *etree.Element) (err error) {
	s.MinMaxLength, err = decodeLength(el, elmSP)
	return err
}

// ContactPC bounds the length of a postal code.
type ContactPC struct{ MinMaxLength }

func (p *ContactPC) Validate() error                 { return checkLength(elmPC, p.MinMaxLength, 0) }
func (p *ContactPC) Encode() (*etree.Element, error) { return encodeLength(elmPC, p.MinMaxLength, 0) }
func (p *ContactPC) element() *etree.Element         { return lengthElement(elmPC, p.MinMaxLength) }
func (p *ContactPC) Clone() *ContactPC               { return eppmap.ClonePtr(p) }
func (p *ContactPC) String() string                  { return eppmap.Render(p.element()) }

func (p *ContactPC) Decode(el *etree.Element) (err error) {
	p.MinMaxLength, err = decodeLength(el, elmPC)
	return err
}

// ContactEmail bounds the length of an email address.
type ContactEmail struct{ MinMaxLength }

func (e *ContactEmail) Validate() error                 { return checkLength(elmEmail, e.MinMaxLength, 1) }
func (e *ContactEmail) Encode() (*etree.Element, error) { return encodeLength(elmEmail, e.MinMaxLength, 1) }
func (e *ContactEmail) element() *etree.Element         { return lengthElement(elmEmail, e.MinMaxLength) }
func (e *ContactEmail) Clone() *ContactEmail            { return eppmap.ClonePtr(e) }
func (e *ContactEmail) String() string                  { return eppmap.Render(e.element()) }

func (e *ContactEmail) Decode(el *etree.Element) (err error) {
	e.MinMaxLength, err = decodeLength(el, elmEmail)
	return err
}
