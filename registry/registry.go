// Package registry maps the registry EPP extension: zone policy objects and
// the check, create, info, update and delete commands that manage them.
package registry

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

// NS is the registry mapping namespace.
var NS = eppmap.Namespace{URI: "http://www.verisign.com/epp/registry-1.0", Prefix: "registry"}

// Period units.
const (
	UnitYear  = "y"
	UnitMonth = "m"
	UnitDay   = "d"
	UnitHour  = "h"
)

// Share policies for hosts and contacts.
const (
	SharePerZone   = "perZone"
	SharePerSystem = "perSystem"
)

const (
	elmMin       = "min"
	elmMax       = "max"
	elmDefault   = "default"
	elmMinLength = "minLength"
	elmMaxLength = "maxLength"
	attrUnit     = "unit"

	maxLengthCeiling = 255
)

// ---- MinMaxLength -----------------------------------------------------------

// MinMaxLength is a minLength/maxLength pair. Owners embed it and validate it
// with their own floor and ceiling.
type MinMaxLength struct {
	MinLength int
	MaxLength int
}

type lengthRule struct {
	floor   int
	ceiling int // 0 means no ceiling
}

// Validate applies the generic rule: minLength >= 0 and maxLength >= minLength.
func (m MinMaxLength) Validate() error {
	v := eppmap.Check("minMaxLength")
	m.check(v, lengthRule{})
	return v.Err()
}

func (m MinMaxLength) check(v *eppmap.Violations, r lengthRule) {
	v.AtLeast(elmMinLength, m.MinLength, r.floor)
	if m.MaxLength < m.MinLength {
		v.Add("%s %d is less than %s %d", elmMaxLength, m.MaxLength, elmMinLength, m.MinLength)
	}
	if r.ceiling > 0 && m.MaxLength > r.ceiling {
		v.Add("%s %d exceeds %d", elmMaxLength, m.MaxLength, r.ceiling)
	}
}

func (m MinMaxLength) appendTo(el *etree.Element) {
	NS.AddInt(el, elmMinLength, m.MinLength)
	NS.AddInt(el, elmMaxLength, m.MaxLength)
}

func decodeMinMaxLength(el *etree.Element) (MinMaxLength, error) {
	var m MinMaxLength
	var err error
	if m.MinLength, err = NS.Int(el, elmMinLength); err != nil {
		return m, err
	}
	m.MaxLength, err = NS.Int(el, elmMaxLength)
	return m, err
}

// ---- MinMax -----------------------------------------------------------------

// MinMax is a required minimum with an optional maximum.
type MinMax struct {
	Min int
	Max *int
}

type rangeRule struct {
	minElm, maxElm string
	floor          int
}

var minMaxRule = rangeRule{minElm: elmMin, maxElm: elmMax}

func (m MinMax) check(v *eppmap.Violations, r rangeRule) {
	v.AtLeast(r.minElm, m.Min, r.floor)
	if m.Max != nil && *m.Max < m.Min {
		v.Add("%s %d is less than %s %d", r.maxElm, *m.Max, r.minElm, m.Min)
	}
}

func (m MinMax) appendTo(el *etree.Element, r rangeRule) {
	NS.AddInt(el, r.minElm, m.Min)
	NS.AddOptInt(el, r.maxElm, m.Max)
}

func (m MinMax) clone() MinMax { return MinMax{Min: m.Min, Max: eppmap.ClonePtr(m.Max)} }

func decodeMinMax(el *etree.Element, r rangeRule) (MinMax, error) {
	var m MinMax
	var err error
	if m.Min, err = NS.Int(el, r.minElm); err != nil {
		return m, err
	}
	m.Max, err = NS.OptInt(el, r.maxElm)
	return m, err
}

// ---- Period -----------------------------------------------------------------

// Period is a number qualified by a unit attribute, for example
// <registry:min unit="y">1</registry:min>.
type Period struct {
	Number int
	Unit   string
}

type periodRule struct {
	units  []string
	lo, hi int // hi < 0 means unbounded
}

var (
	registrationRule = periodRule{units: []string{UnitYear, UnitMonth}, lo: 1, hi: 99}
	transferHoldRule = periodRule{units: []string{UnitYear, UnitMonth, UnitDay}, lo: 0, hi: 99}
	// grace and RGP periods count days, hours or minutes ("m").
	gracePeriodRule = periodRule{units: []string{UnitDay, UnitHour, UnitMonth}, lo: 0, hi: -1}
)

func (p Period) check(v *eppmap.Violations, field string, r periodRule) {
	v.OneOf(field+" unit", p.Unit, r.units...)
	if r.hi < 0 {
		v.AtLeast(field, p.Number, r.lo)
	} else {
		v.Between(field, p.Number, r.lo, r.hi)
	}
}

// months normalizes a y/m period to months.
func (p Period) months() (int, bool) {
	switch p.Unit {
	case UnitYear:
		return p.Number * 12, true
	case UnitMonth:
		return p.Number, true
	}
	return 0, false
}

func (p Period) appendTo(parent *etree.Element, local string) {
	p.fill(NS.Add(parent, local))
}

func (p Period) fill(el *etree.Element) {
	el.CreateAttr(attrUnit, p.Unit)
	el.SetText(strconv.Itoa(p.Number))
}

func decodePeriod(el *etree.Element) (Period, error) {
	p := Period{Unit: eppmap.Attr(el, attrUnit, "")}
	n, err := strconv.Atoi(strings.TrimSpace(el.Text()))
	if err != nil {
		return p, &eppmap.DecodeError{Element: el.FullTag(), Err: err}
	}
	p.Number = n
	return p, nil
}

func decodePeriodChild(el *etree.Element, local string) (Period, error) {
	c := NS.Child(el, local)
	if c == nil {
		return Period{}, nil
	}
	return decodePeriod(c)
}

func decodeOptPeriod(el *etree.Element, local string) (*Period, error) {
	c := NS.Child(el, local)
	if c == nil {
		return nil, nil
	}
	p, err := decodePeriod(c)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func checkOptPeriod(v *eppmap.Violations, field string, p *Period, r periodRule) {
	if p != nil {
		p.check(v, field, r)
	}
}

func indexed(name string, i int) string { return name + "[" + strconv.Itoa(i) + "]" }

func itoa(n int) string { return strconv.Itoa(n) }

func textOf(el *etree.Element) string { return strings.TrimSpace(el.Text()) }
