// Package eppmap holds the pieces shared by the EPP extension mappings in
// this module: the Element contract, namespace-aware DOM helpers, validation
// and decode errors, and whole-document marshalling.
//
// Every mapping type (see packages registry, defreg and whowas) is a plain
// data struct with exported fields. Encode validates the whole tree first and
// only then builds it, so a failed Encode never yields a partial element.
// Decode is permissive: absent optional structure becomes the zero value or
// the documented default, and only malformed values fail.
package eppmap

import (
	"strings"

	"github.com/beevik/etree"
)

// EPP is the namespace of the core EPP envelope.
var EPP = Namespace{URI: "urn:ietf:params:xml:ns:epp-1.0"}

// Element is implemented by every mapping type.
type Element interface {
	// Encode validates the element and returns a detached DOM element for it.
	Encode() (*etree.Element, error)
	// Decode populates the receiver from el. It does not validate.
	Decode(el *etree.Element) error
	// Validate reports every rule the element (and its children) violates.
	// It returns nil or a *ValidationError.
	Validate() error
	// String renders the element as indented XML, valid or not.
	String() string
}

// Command is an Element sent inside an EPP <command>. Verb names the EPP
// command element that wraps it ("info", "check", ...).
type Command interface {
	Element
	Verb() string
}

// TransferCommand is implemented by commands whose EPP verb element carries
// an op attribute.
type TransferCommand interface {
	Command
	TransferOp() string
	SetTransferOp(op string)
}

// Namespace binds a namespace URI to the prefix written on the wire. An empty
// Prefix writes unprefixed names under a default namespace declaration.
type Namespace struct {
	URI    string
	Prefix string
}

// Qualify returns the prefixed name of local, as used in error messages.
func (ns Namespace) Qualify(local string) string {
	if ns.Prefix == "" {
		return local
	}
	return ns.Prefix + ":" + local
}

func (ns Namespace) declKey() string {
	if ns.Prefix == "" {
		return "xmlns"
	}
	return "xmlns:" + ns.Prefix
}

// NewRoot creates a detached element that declares ns.
func (ns Namespace) NewRoot(local string) *etree.Element {
	el := etree.NewElement(ns.Qualify(local))
	el.CreateAttr(ns.declKey(), ns.URI)
	return el
}

// Add appends an empty child element in ns to parent.
func (ns Namespace) Add(parent *etree.Element, local string) *etree.Element {
	return parent.CreateElement(ns.Qualify(local))
}

// Is reports whether el is the element local in ns.
func (ns Namespace) Is(el *etree.Element, local string) bool {
	return el != nil && el.Tag == local && NamespaceOf(el) == ns.URI
}

// Child returns the first child of el named local in ns, or nil.
func (ns Namespace) Child(el *etree.Element, local string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, c := range el.ChildElements() {
		if ns.Is(c, local) {
			return c
		}
	}
	return nil
}

// Children returns the children of el named local in ns, in document order.
func (ns Namespace) Children(el *etree.Element, local string) []*etree.Element {
	if el == nil {
		return nil
	}
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if ns.Is(c, local) {
			out = append(out, c)
		}
	}
	return out
}

// Has reports whether el has a child named local in ns.
func (ns Namespace) Has(el *etree.Element, local string) bool {
	return ns.Child(el, local) != nil
}

// NamespaceOf resolves the namespace URI of el from the xmlns declarations on
// el and its ancestors.
func NamespaceOf(el *etree.Element) string {
	key, space := "xmlns", ""
	if el.Space != "" {
		key, space = el.Space, "xmlns"
	}
	for e := el; e != nil; e = e.Parent() {
		for _, a := range e.Attr {
			if a.Space == space && a.Key == key {
				return a.Value
			}
		}
	}
	return ""
}

// LocalName strips any prefix from a qualified name.
func LocalName(qname string) string {
	if i := strings.IndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}
