package registry

import (
	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmDomainName       = "domainName"
	elmAlphaNumStart    = "alphaNumStart"
	elmAlphaNumEnd      = "alphaNumEnd"
	elmOnlyDNSChars     = "onlyDnsChars"
	elmReservedNames    = "reservedNames"
	elmReservedName     = "reservedName"
	elmReservedURI      = "reservedURI"
	elmIDN              = "idn"
	elmIDNVersion       = "idnVersion"
	elmIDNAVersion      = "idnaVersion"
	elmUnicodeVersion   = "unicodeVersion"
	elmEncoding         = "encoding"
	elmCommingleAllowed = "commingleAllowed"
	elmLanguage         = "language"
	elmTable            = "table"
	elmVariantStrategy  = "variantStrategy"
	attrLevel           = "level"
	attrCode            = "code"

	// DefaultEncoding is the IDN encoding assumed when none is given.
	DefaultEncoding = "Punycode"

	maxLabelLength = 63
)

// Variant strategies for an IDN language table.
const (
	VariantBlocked    = "blocked"
	VariantRestricted = "restricted"
	VariantOpen       = "open"
)

// ---- DomainName -------------------------------------------------------------

// DomainName is the label policy for domains at one level.
type DomainName struct {
	Level         int
	MinLength     *int
	MaxLength     *int
	AlphaNumStart bool
	AlphaNumEnd   bool
	OnlyDNSChars  bool
	Regexes       []Regex
	ReservedNames *ReservedNames
}

func (d *DomainName) Validate() error {
	v := eppmap.Check(NS.Qualify(elmDomainName))
	v.AtLeast(attrLevel, d.Level, 2)
	if d.MinLength != nil {
		v.Between(elmMinLength, *d.MinLength, 1, maxLabelLength)
	}
	if d.MaxLength != nil {
		v.Between(elmMaxLength, *d.MaxLength, 1, maxLabelLength)
		if d.MinLength != nil && *d.MaxLength < *d.MinLength {
			v.Add("%s %d is less than %s %d", elmMaxLength, *d.MaxLength, elmMinLength, *d.MinLength)
		}
	}
	checkRegexes(v, RegexRoot, d.Regexes)
	if d.ReservedNames != nil {
		v.Nested(elmReservedNames, d.ReservedNames.Validate())
	}
	return v.Err()
}

func (d *DomainName) Encode() (*etree.Element, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d.element(), nil
}

func (d *DomainName) element() *etree.Element {
	el := NS.NewRoot(elmDomainName)
	el.CreateAttr(attrLevel, itoa(d.Level))
	NS.AddOptInt(el, elmMinLength, d.MinLength)
	NS.AddOptInt(el, elmMaxLength, d.MaxLength)
	NS.AddBool(el, elmAlphaNumStart, d.AlphaNumStart)
	NS.AddBool(el, elmAlphaNumEnd, d.AlphaNumEnd)
	NS.AddBool(el, elmOnlyDNSChars, d.OnlyDNSChars)
	addRegexes(el, RegexRoot, d.Regexes)
	if d.ReservedNames != nil {
		el.AddChild(d.ReservedNames.element())
	}
	return el
}

func (d *DomainName) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmDomainName); err != nil {
		return err
	}
	*d = DomainName{}
	level, err := eppmap.IntAttr(el, attrLevel)
	if err != nil {
		return err
	}
	if level != nil {
		d.Level = *level
	}
	if d.MinLength, err = NS.OptInt(el, elmMinLength); err != nil {
		return err
	}
	if d.MaxLength, err = NS.OptInt(el, elmMaxLength); err != nil {
		return err
	}
	if d.AlphaNumStart, err = NS.Bool(el, elmAlphaNumStart, false); err != nil {
		return err
	}
	if d.AlphaNumEnd, err = NS.Bool(el, elmAlphaNumEnd, false); err != nil {
		return err
	}
	if d.OnlyDNSChars, err = NS.Bool(el, elmOnlyDNSChars, false); err != nil {
		return err
	}
	if d.Regexes, err = decodeRegexes(el, RegexRoot); err != nil {
		return err
	}
	d.ReservedNames, err = eppmap.DecodeOpt[ReservedNames](NS, el, elmReservedNames)
	return err
}

func (d *DomainName) Clone() *DomainName {
	if d == nil {
		return nil
	}
	c := *d
	c.MinLength = eppmap.ClonePtr(d.MinLength)
	c.MaxLength = eppmap.ClonePtr(d.MaxLength)
	c.Regexes = eppmap.CloneSlice(d.Regexes)
	c.ReservedNames = d.ReservedNames.Clone()
	return &c
}

func (d *DomainName) String() string { return eppmap.Render(d.element()) }

// ---- ReservedNames ----------------------------------------------------------

// ReservedNames lists reserved labels inline or points at a list by URI.
type ReservedNames struct {
	Names []string
	URI   string
}

func (r *ReservedNames) Validate() error {
	v := eppmap.Check(NS.Qualify(elmReservedNames))
	if len(r.Names) > 0 && r.URI != "" {
		v.Add("%s and %s are mutually exclusive", elmReservedName, elmReservedURI)
	}
	return v.Err()
}

func (r *ReservedNames) Encode() (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.element(), nil
}

func (r *ReservedNames) element() *etree.Element {
	el := NS.NewRoot(elmReservedNames)
	NS.AddTexts(el, elmReservedName, r.Names)
	NS.AddOptText(el, elmReservedURI, r.URI)
	return el
}

func (r *ReservedNames) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmReservedNames); err != nil {
		return err
	}
	*r = ReservedNames{Names: NS.Texts(el, elmReservedName), URI: NS.Text(el, elmReservedURI)}
	return nil
}

func (r *ReservedNames) Clone() *ReservedNames {
	if r == nil {
		return nil
	}
	return &ReservedNames{Names: eppmap.CloneSlice(r.Names), URI: r.URI}
}

func (r *ReservedNames) String() string { return eppmap.Render(r.element()) }

// ---- IDN --------------------------------------------------------------------

// IDN is the internationalized domain name policy.
type IDN struct {
	IDNVersion       string
	IDNAVersion      string
	UnicodeVersion   string
	Encoding         string
	CommingleAllowed bool
	Languages        []Language
}

// NewIDN returns an IDN policy with the default encoding.
func NewIDN(idnaVersion, unicodeVersion string) *IDN {
	return &IDN{IDNAVersion: idnaVersion, UnicodeVersion: unicodeVersion, Encoding: DefaultEncoding}
}

func (i *IDN) Validate() error {
	v := eppmap.Check(NS.Qualify(elmIDN))
	v.Require(i.IDNAVersion != "", elmIDNAVersion)
	v.Require(i.UnicodeVersion != "", elmUnicodeVersion)
	for n := range i.Languages {
		v.Nested(indexed(elmLanguage, n), i.Languages[n].Validate())
	}
	return v.Err()
}

func (i *IDN) Encode() (*etree.Element, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return i.element(), nil
}

func (i *IDN) element() *etree.Element {
	if i.Encoding == "" {
		i.Encoding = DefaultEncoding
	}
	el := NS.NewRoot(elmIDN)
	NS.AddOptText(el, elmIDNVersion, i.IDNVersion)
	NS.AddText(el, elmIDNAVersion, i.IDNAVersion)
	NS.AddText(el, elmUnicodeVersion, i.UnicodeVersion)
	NS.AddText(el, elmEncoding, i.Encoding)
	NS.AddBool(el, elmCommingleAllowed, i.CommingleAllowed)
	for n := range i.Languages {
		el.AddChild(i.Languages[n].element())
	}
	return el
}

func (i *IDN) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmIDN); err != nil {
		return err
	}
	*i = IDN{
		IDNVersion:     NS.Text(el, elmIDNVersion),
		IDNAVersion:    NS.Text(el, elmIDNAVersion),
		UnicodeVersion: NS.Text(el, elmUnicodeVersion),
		Encoding:       NS.Text(el, elmEncoding),
	}
	if i.Encoding == "" {
		i.Encoding = DefaultEncoding
	}
	var err error
	if i.CommingleAllowed, err = NS.Bool(el, elmCommingleAllowed, false); err != nil {
		return err
	}
	i.Languages, err = eppmap.DecodeList[Language](NS, el, elmLanguage)
	return err
}

func (i *IDN) Clone() *IDN {
	if i == nil {
		return nil
	}
	c := *i
	c.Languages = eppmap.CloneSlice(i.Languages)
	return &c
}

func (i *IDN) String() string { return eppmap.Render(i.element()) }

// ---- Language ---------------------------------------------------------------

// Language is one IDN language table.
type Language struct {
	Code            string
	Table           string
	VariantStrategy string
}

func (l *Language) Validate() error {
	v := eppmap.Check(NS.Qualify(elmLanguage))
	v.Require(l.Code != "", attrCode)
	v.OptOneOf(elmVariantStrategy, l.VariantStrategy, VariantBlocked, VariantRestricted, VariantOpen)
	return v.Err()
}

func (l *Language) Encode() (*etree.Element, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l.element(), nil
}

func (l *Language) element() *etree.Element {
	el := NS.NewRoot(elmLanguage)
	el.CreateAttr(attrCode, l.Code)
	NS.AddOptText(el, elmTable, l.Table)
	NS.AddOptText(el, elmVariantStrategy, l.VariantStrategy)
	return el
}

func (l *Language) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmLanguage); err != nil {
		return err
	}
	*l = Language{
		Code:            eppmap.Attr(el, attrCode, ""),
		Table:           NS.Text(el, elmTable),
		VariantStrategy: NS.Text(el, elmVariantStrategy),
	}
	return nil
}

func (l *Language) Clone() *Language { return eppmap.ClonePtr(l) }

func (l *Language) String() string { return eppmap.Render(l.element()) }
