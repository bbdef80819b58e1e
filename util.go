package eppmap

import (
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
)

const (
	dateTimeLayout = "2006-01-02T15:04:05.000Z"
	dateLayout     = "2006-01-02"
)

// ---- encode ---------------------------------------------------------------

// AddText appends <local>v</local> to parent.
func (ns Namespace) AddText(parent *etree.Element, local, v string) *etree.Element {
	c := ns.Add(parent, local)
	c.SetText(v)
	return c
}

// AddOptText appends <local>v</local> when v is not empty.
func (ns Namespace) AddOptText(parent *etree.Element, local, v string) {
	if v != "" {
		ns.AddText(parent, local, v)
	}
}

// AddTexts appends one <local> element per value.
func (ns Namespace) AddTexts(parent *etree.Element, local string, vs []string) {
	for _, v := range vs {
		ns.AddText(parent, local, v)
	}
}

func (ns Namespace) AddInt(parent *etree.Element, local string, v int) {
	ns.AddText(parent, local, strconv.Itoa(v))
}

func (ns Namespace) AddOptInt(parent *etree.Element, local string, v *int) {
	if v != nil {
		ns.AddInt(parent, local, *v)
	}
}

func (ns Namespace) AddInts(parent *etree.Element, local string, vs []int) {
	for _, v := range vs {
		ns.AddInt(parent, local, v)
	}
}

func (ns Namespace) AddBool(parent *etree.Element, local string, v bool) {
	ns.AddText(parent, local, strconv.FormatBool(v))
}

// AddTime appends a dateTime in UTC with millisecond precision.
func (ns Namespace) AddTime(parent *etree.Element, local string, t time.Time) {
	ns.AddText(parent, local, FormatTime(t))
}

func (ns Namespace) AddOptTime(parent *etree.Element, local string, t *time.Time) {
	if t != nil {
		ns.AddTime(parent, local, *t)
	}
}

// AddDate appends a date with no time component.
func (ns Namespace) AddDate(parent *etree.Element, local string, t time.Time) {
	ns.AddText(parent, local, t.Format(dateLayout))
}

func (ns Namespace) AddOptDate(parent *etree.Element, local string, t *time.Time) {
	if t != nil {
		ns.AddDate(parent, local, *t)
	}
}

// AddElement encodes child and adopts it under parent.
func AddElement(parent *etree.Element, child Element) error {
	el, err := child.Encode()
	if err != nil {
		return err
	}
	parent.AddChild(el)
	return nil
}

// FormatTime renders t the way dateTime values are written on the wire.
func FormatTime(t time.Time) string { return t.UTC().Format(dateTimeLayout) }

// FormatBool writes the canonical xsd:boolean form.
func FormatBool(b bool) string { return strconv.FormatBool(b) }

// ---- decode ---------------------------------------------------------------

// Text returns the trimmed text of the child local, or "" when absent.
func (ns Namespace) Text(el *etree.Element, local string) string {
	if c := ns.Child(el, local); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}

// Texts returns the trimmed text of every child named local.
func (ns Namespace) Texts(el *etree.Element, local string) []string {
	var out []string
	for _, c := range ns.Children(el, local) {
		out = append(out, strings.TrimSpace(c.Text()))
	}
	return out
}

// Int parses the child local; absent yields 0.
func (ns Namespace) Int(el *etree.Element, local string) (int, error) {
	p, err := ns.OptInt(el, local)
	if err != nil || p == nil {
		return 0, err
	}
	return *p, nil
}

// OptInt parses the child local; absent yields nil.
func (ns Namespace) OptInt(el *etree.Element, local string) (*int, error) {
	c := ns.Child(el, local)
	if c == nil {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(c.Text()))
	if err != nil {
		return nil, &DecodeError{Element: el.FullTag(), Field: local, Err: err}
	}
	return &n, nil
}

// Ints parses every child named local.
func (ns Namespace) Ints(el *etree.Element, local string) ([]int, error) {
	var out []int
	for _, c := range ns.Children(el, local) {
		n, err := strconv.Atoi(strings.TrimSpace(c.Text()))
		if err != nil {
			return nil, &DecodeError{Element: el.FullTag(), Field: local, Err: err}
		}
		out = append(out, n)
	}
	return out, nil
}

// Bool parses the xsd:boolean child local; absent yields dflt.
func (ns Namespace) Bool(el *etree.Element, local string, dflt bool) (bool, error) {
	c := ns.Child(el, local)
	if c == nil {
		return dflt, nil
	}
	b, err := ParseBool(c.Text())
	if err != nil {
		return false, &DecodeError{Element: el.FullTag(), Field: local, Err: err}
	}
	return b, nil
}

// Time parses the dateTime child local; absent yields the zero time.
func (ns Namespace) Time(el *etree.Element, local string) (time.Time, error) {
	p, err := ns.OptTime(el, local)
	if err != nil || p == nil {
		return time.Time{}, err
	}
	return *p, nil
}

func (ns Namespace) OptTime(el *etree.Element, local string) (*time.Time, error) {
	c := ns.Child(el, local)
	if c == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(c.Text()))
	if err != nil {
		return nil, &DecodeError{Element: el.FullTag(), Field: local, Err: err}
	}
	t = t.UTC()
	return &t, nil
}

// OptDate parses a date-only child; absent yields nil.
func (ns Namespace) OptDate(el *etree.Element, local string) (*time.Time, error) {
	c := ns.Child(el, local)
	if c == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(c.Text()))
	if err != nil {
		return nil, &DecodeError{Element: el.FullTag(), Field: local, Err: err}
	}
	return &t, nil
}

func (ns Namespace) Date(el *etree.Element, local string) (time.Time, error) {
	p, err := ns.OptDate(el, local)
	if err != nil || p == nil {
		return time.Time{}, err
	}
	return *p, nil
}

// Attr returns the value of attribute key on el, or dflt when absent.
func Attr(el *etree.Element, key, dflt string) string {
	for _, a := range el.Attr {
		if a.Space == "" && a.Key == key {
			return a.Value
		}
	}
	return dflt
}

// IntAttr parses attribute key; absent yields nil.
func IntAttr(el *etree.Element, key string) (*int, error) {
	v := Attr(el, key, "")
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil, &DecodeError{Element: el.FullTag(), Field: "@" + key, Err: err}
	}
	return &n, nil
}

// BoolAttr parses the xsd:boolean attribute key; absent yields dflt.
func BoolAttr(el *etree.Element, key string, dflt bool) (bool, error) {
	v := Attr(el, key, "")
	if v == "" {
		return dflt, nil
	}
	b, err := ParseBool(v)
	if err != nil {
		return false, &DecodeError{Element: el.FullTag(), Field: "@" + key, Err: err}
	}
	return b, nil
}

// ParseBool accepts the xsd:boolean lexical forms.
func ParseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, strconv.ErrSyntax
}

// Expect returns ErrUnexpectedObject unless el is local in ns.
func (ns Namespace) Expect(el *etree.Element, local string) error {
	if !ns.Is(el, local) {
		return ErrUnexpectedObject(ns.Qualify(local))
	}
	return nil
}

// DecodeOpt decodes the child local into a new T, or returns nil when the
// child is absent.
func DecodeOpt[T any, PT interface {
	*T
	Element
}](ns Namespace, el *etree.Element, local string) (*T, error) {
	c := ns.Child(el, local)
	if c == nil {
		return nil, nil
	}
	v := PT(new(T))
	if err := v.Decode(c); err != nil {
		return nil, err
	}
	return (*T)(v), nil
}

// DecodeList decodes every child named local into a T.
func DecodeList[T any, PT interface {
	*T
	Element
}](ns Namespace, el *etree.Element, local string) ([]T, error) {
	cs := ns.Children(el, local)
	if len(cs) == 0 {
		return nil, nil
	}
	out := make([]T, len(cs))
	for i, c := range cs {
		if err := PT(&out[i]).Decode(c); err != nil {
			return nil, err
		}
	}
	return out, nil
}
