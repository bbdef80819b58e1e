package registry

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

// Element names a Regex is bound to by its parent.
const (
	RegexRoot          = "regex"
	NameRegexRoot      = "nameRegex"
	ContactIDRegexRoot = "contactIdRegex"
	AuthInfoRegexRoot  = "authInfoRegex"
)

const (
	elmExpression    = "expression"
	elmExplanation   = "explanation"
	elmKeyValue      = "keyValue"
	elmCustomData    = "customData"
	elmSupportedStat = "supportedStatus"
	elmStatus        = "status"
	attrLang         = "lang"
	attrKey          = "key"

	// DefaultLang is the language assumed for explanations and reasons.
	DefaultLang = "en"
)

// Regex is a regular expression with an optional explanation. The same shape
// appears under several element names, so the parent binds RootName before
// encoding or decoding. An unbound Regex encodes as regex.
type Regex struct {
	RootName    string
	Expression  string
	Explanation string
	Lang        string
}

// NewRegex returns a Regex bound to root.
func NewRegex(root, expression string) *Regex {
	return &Regex{RootName: root, Expression: expression}
}

func (r *Regex) Validate() error {
	v := eppmap.Check(NS.Qualify(r.root()))
	v.Require(r.Expression != "", elmExpression)
	return v.Err()
}

func (r *Regex) root() string {
	if r.RootName == "" {
		return RegexRoot
	}
	return r.RootName
}

func (r *Regex) Encode() (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.element(), nil
}

func (r *Regex) element() *etree.Element {
	r.RootName = r.root()
	el := NS.NewRoot(r.RootName)
	NS.AddText(el, elmExpression, r.Expression)
	if r.Explanation != "" {
		if r.Lang == "" {
			r.Lang = DefaultLang
		}
		c := NS.AddText(el, elmExplanation, r.Explanation)
		c.CreateAttr(attrLang, r.Lang)
	}
	return el
}

// Decode requires RootName to be bound to the element's local name.
func (r *Regex) Decode(el *etree.Element) error {
	if r.RootName == "" {
		return &eppmap.DecodeError{Element: el.FullTag(), Err: eppmap.ErrMissingRootName}
	}
	if err := NS.Expect(el, r.RootName); err != nil {
		return err
	}
	*r = Regex{RootName: r.RootName, Expression: NS.Text(el, elmExpression)}
	if c := NS.Child(el, elmExplanation); c != nil {
		r.Explanation = strings.TrimSpace(c.Text())
		r.Lang = eppmap.Attr(c, attrLang, DefaultLang)
	}
	return nil
}

func (r *Regex) Clone() *Regex { return eppmap.ClonePtr(r) }

func (r *Regex) String() string { return eppmap.Render(r.element()) }

func decodeRegex(el *etree.Element, root string) (*Regex, error) {
	c := NS.Child(el, root)
	if c == nil {
		return nil, nil
	}
	r := &Regex{RootName: root}
	if err := r.Decode(c); err != nil {
		return nil, err
	}
	return r, nil
}

func decodeRegexes(el *etree.Element, root string) ([]Regex, error) {
	cs := NS.Children(el, root)
	if len(cs) == 0 {
		return nil, nil
	}
	out := make([]Regex, len(cs))
	for i, c := range cs {
		out[i].RootName = root
		if err := out[i].Decode(c); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// bind sets the element name r is written under by its parent.
func (r *Regex) bind(root string) *Regex {
	r.RootName = root
	return r
}

func checkRegexes(v *eppmap.Violations, root string, rs []Regex) {
	for i := range rs {
		v.Nested(indexed(root, i), rs[i].bind(root).Validate())
	}
}

func checkRegex(v *eppmap.Violations, root string, r *Regex, required bool) {
	if r == nil {
		v.Require(!required, root)
		return
	}
	v.Nested(root, r.bind(root).Validate())
}

func addRegexes(el *etree.Element, root string, rs []Regex) {
	for i := range rs {
		el.AddChild(rs[i].bind(root).element())
	}
}

func addRegex(el *etree.Element, root string, r *Regex) {
	if r != nil {
		el.AddChild(r.bind(root).element())
	}
}

// ---- KeyValue ---------------------------------------------------------------

// KeyValue is a key attribute with a text value. Like Regex, the element name
// is bound by the parent and defaults to keyValue.
type KeyValue struct {
	RootName string
	Key      string
	Value    string
}

// NewKeyValue returns a KeyValue bound to the customData keyValue element.
func NewKeyValue(key, value string) KeyValue {
	return KeyValue{RootName: elmKeyValue, Key: key, Value: value}
}

func (kv *KeyValue) Validate() error {
	v := eppmap.Check(NS.Qualify(kv.root()))
	v.Require(kv.Key != "", attrKey)
	return v.Err()
}

func (kv *KeyValue) root() string {
	if kv.RootName == "" {
		return elmKeyValue
	}
	return kv.RootName
}

func (kv *KeyValue) bind(root string) *KeyValue {
	kv.RootName = root
	return kv
}

func (kv *KeyValue) Encode() (*etree.Element, error) {
	if err := kv.Validate(); err != nil {
		return nil, err
	}
	return kv.element(), nil
}

func (kv *KeyValue) element() *etree.Element {
	kv.RootName = kv.root()
	el := NS.NewRoot(kv.RootName)
	el.CreateAttr(attrKey, kv.Key)
	el.SetText(kv.Value)
	return el
}

func (kv *KeyValue) Decode(el *etree.Element) error {
	if kv.RootName == "" {
		return &eppmap.DecodeError{Element: el.FullTag(), Err: eppmap.ErrMissingRootName}
	}
	if err := NS.Expect(el, kv.RootName); err != nil {
		return err
	}
	*kv = KeyValue{RootName: kv.RootName, Key: eppmap.Attr(el, attrKey, ""), Value: strings.TrimSpace(el.Text())}
	return nil
}

func (kv *KeyValue) Clone() *KeyValue { return eppmap.ClonePtr(kv) }

func (kv *KeyValue) String() string { return eppmap.Render(kv.element()) }

// ---- CustomData -------------------------------------------------------------

// CustomData carries registry specific key/value pairs.
type CustomData struct {
	KeyValues []KeyValue
}

func (c *CustomData) Validate() error {
	v := eppmap.Check(NS.Qualify(elmCustomData))
	for i := range c.KeyValues {
		v.Nested(indexed(elmKeyValue, i), c.KeyValues[i].bind(elmKeyValue).Validate())
	}
	return v.Err()
}

func (c *CustomData) Encode() (*etree.Element, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.element(), nil
}

func (c *CustomData) element() *etree.Element {
	el := NS.NewRoot(elmCustomData)
	for i := range c.KeyValues {
		el.AddChild(c.KeyValues[i].bind(elmKeyValue).element())
	}
	return el
}

func (c *CustomData) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmCustomData); err != nil {
		return err
	}
	*c = CustomData{}
	for _, kc := range NS.Children(el, elmKeyValue) {
		kv := KeyValue{RootName: elmKeyValue}
		if err := kv.Decode(kc); err != nil {
			return err
		}
		c.KeyValues = append(c.KeyValues, kv)
	}
	return nil
}

func (c *CustomData) Clone() *CustomData {
	if c == nil {
		return nil
	}
	return &CustomData{KeyValues: eppmap.CloneSlice(c.KeyValues)}
}

func (c *CustomData) String() string { return eppmap.Render(c.element()) }

// ---- SupportedStatus --------------------------------------------------------

// SupportedStatus lists the EPP statuses a registry supports for an object.
type SupportedStatus struct {
	Statuses []string
}

func (s *SupportedStatus) Validate() error {
	v := eppmap.Check(NS.Qualify(elmSupportedStat))
	v.Require(len(s.Statuses) > 0, elmStatus)
	for i, st := range s.Statuses {
		v.Require(st != "", indexed(elmStatus, i))
	}
	return v.Err()
}

func (s *SupportedStatus) Encode() (*etree.Element, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.element(), nil
}

func (s *SupportedStatus) element() *etree.Element {
	el := NS.NewRoot(elmSupportedStat)
	NS.AddTexts(el, elmStatus, s.Statuses)
	return el
}

func (s *SupportedStatus) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmSupportedStat); err != nil {
		return err
	}
	*s = SupportedStatus{Statuses: NS.Texts(el, elmStatus)}
	return nil
}

func (s *SupportedStatus) Clone() *SupportedStatus {
	if s == nil {
		return nil
	}
	return &SupportedStatus{Statuses: eppmap.CloneSlice(s.Statuses)}
}

func (s *SupportedStatus) String() string { return eppmap.Render(s.element()) }
