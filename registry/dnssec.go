package registry

import (
	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmDNSSEC        = "dnssec"
	elmDSData        = "dsDataInterface"
	elmKeyData       = "keyDataInterface"
	elmMaxSigLife    = "maxSigLife"
	elmUrgent        = "urgent"
	elmAlg           = "alg"
	elmDigestType    = "digestType"
	elmClientDefined = "clientDefined"

	maxAlgorithm = 255
)

// DNSSEC is the DNSSEC policy of a zone. Exactly one of DS or Key is set,
// matching the interface the registry accepts DNSSEC data through.
type DNSSEC struct {
	DS         *DSPolicy
	Key        *KeyPolicy
	MaxSigLife *MaxSig
	Urgent     bool
}

func (d *DNSSEC) Validate() error {
	v := eppmap.Check(NS.Qualify(elmDNSSEC))
	v.ExactlyOne(elmDSData, d.DS != nil, elmKeyData, d.Key != nil)
	if d.DS != nil {
		v.Nested(elmDSData, d.DS.Validate())
	}
	if d.Key != nil {
		v.Nested(elmKeyData, d.Key.Validate())
	}
	if d.MaxSigLife != nil {
		v.Nested(elmMaxSigLife, d.MaxSigLife.Validate())
	}
	return v.Err()
}

func (d *DNSSEC) Encode() (*etree.Element, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d.element(), nil
}

func (d *DNSSEC) element() *etree.Element {
	el := NS.NewRoot(elmDNSSEC)
	if d.DS != nil {
		el.AddChild(d.DS.element())
	}
	if d.Key != nil {
		el.AddChild(d.Key.element())
	}
	if d.MaxSigLife != nil {
		el.AddChild(d.MaxSigLife.element())
	}
	NS.AddBool(el, elmUrgent, d.Urgent)
	return el
}

func (d *DNSSEC) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmDNSSEC); err != nil {
		return err
	}
	*d = DNSSEC{}
	var err error
	if d.DS, err = eppmap.DecodeOpt[DSPolicy](NS, el, elmDSData); err != nil {
		return err
	}
	if d.Key, err = eppmap.DecodeOpt[KeyPolicy](NS, el, elmKeyData); err != nil {
		return err
	}
	if d.MaxSigLife, err = eppmap.DecodeOpt[MaxSig](NS, el, elmMaxSigLife); err != nil {
		return err
	}
	d.Urgent, err = NS.Bool(el, elmUrgent, false)
	return err
}

func (d *DNSSEC) Clone() *DNSSEC {
	if d == nil {
		return nil
	}
	return &DNSSEC{DS: d.DS.Clone(), Key: d.Key.Clone(), MaxSigLife: d.MaxSigLife.Clone(), Urgent: d.Urgent}
}

func (d *DNSSEC) String() string { return eppmap.Render(d.element()) }

func checkAlgorithms(v *eppmap.Violations, field string, algs []int) {
	for i, a := range algs {
		v.Between(indexed(field, i), a, 0, maxAlgorithm)
	}
}

// ---- DSPolicy ---------------------------------------------------------------

// DSPolicy bounds the DS records per domain and lists the accepted
// algorithms and digest types.
type DSPolicy struct {
	MinMax
	Algorithms  []int
	DigestTypes []int
}

func (p *DSPolicy) Validate() error {
	v := eppmap.Check(NS.Qualify(elmDSData))
	p.MinMax.check(v, minMaxRule)
	checkAlgorithms(v, elmAlg, p.Algorithms)
	checkAlgorithms(v, elmDigestType, p.DigestTypes)
	return v.Err()
}

func (p *DSPolicy) Encode() (*etree.Element, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.element(), nil
}

func (p *DSPolicy) element() *etree.Element {
	el := NS.NewRoot(elmDSData)
	p.MinMax.appendTo(el, minMaxRule)
	NS.AddInts(el, elmAlg, p.Algorithms)
	NS.AddInts(el, elmDigestType, p.DigestTypes)
	return el
}

func (p *DSPolicy) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmDSData); err != nil {
		return err
	}
	*p = DSPolicy{}
	var err error
	if p.MinMax, err = decodeMinMax(el, minMaxRule); err != nil {
		return err
	}
	if p.Algorithms, err = NS.Ints(el, elmAlg); err != nil {
		return err
	}
	p.DigestTypes, err = NS.Ints(el, elmDigestType)
	return err
}

func (p *DSPolicy) Clone() *DSPolicy {
	if p == nil {
		return nil
	}
	return &DSPolicy{
		MinMax:      p.MinMax.clone(),
		Algorithms:  eppmap.CloneSlice(p.Algorithms),
		DigestTypes: eppmap.CloneSlice(p.DigestTypes),
	}
}

func (p *DSPolicy) String() string { return eppmap.Render(p.element()) }

// ---- KeyPolicy --------------------------------------------------------------

// KeyPolicy bounds the DNSKEY records per domain and lists the accepted
// algorithms.
type KeyPolicy struct {
	MinMax
	Algorithms []int
}

func (p *KeyPolicy) Validate() error {
	v := eppmap.Check(NS.Qualify(elmKeyData))
	p.MinMax.check(v, minMaxRule)
	checkAlgorithms(v, elmAlg, p.Algorithms)
	return v.Err()
}

func (p *KeyPolicy) Encode() (*etree.Element, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.element(), nil
}

func (p *KeyPolicy) element() *etree.Element {
	el := NS.NewRoot(elmKeyData)
	p.MinMax.appendTo(el, minMaxRule)
	NS.AddInts(el, elmAlg, p.Algorithms)
	return el
}

func (p *KeyPolicy) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmKeyData); err != nil {
		return err
	}
	*p = KeyPolicy{}
	var err error
	if p.MinMax, err = decodeMinMax(el, minMaxRule); err != nil {
		return err
	}
	p.Algorithms, err = NS.Ints(el, elmAlg)
	return err
}

func (p *KeyPolicy) Clone() *KeyPolicy {
	if p == nil {
		return nil
	}
	return &KeyPolicy{MinMax: p.MinMax.clone(), Algorithms: eppmap.CloneSlice(p.Algorithms)}
}

func (p *KeyPolicy) String() string { return eppmap.Render(p.element()) }

// ---- MaxSig -----------------------------------------------------------------

// MaxSig is the maximum signature lifetime policy, in seconds.
type MaxSig struct {
	ClientDefined bool
	Default       *int
	Min           *int
	Max           *int
}

func (m *MaxSig) Validate() error {
	v := eppmap.Check(NS.Qualify(elmMaxSigLife))
	for _, f := range []struct {
		name string
		val  *int
	}{{elmDefault, m.Default}, {elmMin, m.Min}, {elmMax, m.Max}} {
		if f.val != nil {
			v.AtLeast(f.name, *f.val, 1)
		}
	}
	if m.Min != nil && m.Max != nil && *m.Max < *m.Min {
		v.Add("%s %d is less than %s %d", elmMax, *m.Max, elmMin, *m.Min)
	}
	if m.Default != nil {
		if m.Min != nil && *m.Default < *m.Min {
			v.Add("%s %d is less than %s %d", elmDefault, *m.Default, elmMin, *m.Min)
		}
		if m.Max != nil && *m.Default > *m.Max {
			v.Add("%s %d is greater than %s %d", elmDefault, *m.Default, elmMax, *m.Max)
		}
	}
	return v.Err()
}

func (m *MaxSig) Encode() (*etree.Element, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m.element(), nil
}

func (m *MaxSig) element() *etree.Element {
	el := NS.NewRoot(elmMaxSigLife)
	NS.AddBool(el, elmClientDefined, m.ClientDefined)
	NS.AddOptInt(el, elmDefault, m.Default)
	NS.AddOptInt(el, elmMin, m.Min)
	NS.AddOptInt(el, elmMax, m.Max)
	return el
}

func (m *MaxSig) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmMaxSigLife); err != nil {
		return err
	}
	*m = MaxSig{}
	var err error
	if m.ClientDefined, err = NS.Bool(el, elmClientDefined, false); err != nil {
		return err
	}
	if m.Default, err = NS.OptInt(el, elmDefault); err != nil {
		return err
	}
	if m.Min, err = NS.OptInt(el, elmMin); err != nil {
		return err
	}
	m.Max, err = NS.OptInt(el, elmMax)
	return err
}

func (m *MaxSig) Clone() *MaxSig {
	if m == nil {
		return nil
	}
	return &MaxSig{
		ClientDefined: m.ClientDefined,
		Default:       eppmap.ClonePtr(m.Default),
		Min:           eppmap.ClonePtr(m.Min),
		Max:           eppmap.ClonePtr(m.Max),
	}
}

func (m *MaxSig) String() string { return eppmap.Render(m.element()) }
