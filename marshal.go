package eppmap

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// DefaultIndent is the indentation used by Marshal and Render.
const DefaultIndent = 2

// Marshal encodes e as a standalone XML document.
func Marshal(e Element) ([]byte, error) {
	return MarshalIndent(e, DefaultIndent)
}

// MarshalIndent is Marshal with a custom indent; a negative indent writes
// the document on a single line.
func MarshalIndent(e Element, indent int) ([]byte, error) {
	el, err := e.Encode()
	if err != nil {
		return nil, err
	}
	return WriteDocument(el, indent)
}

// WriteDocument serializes root with an XML declaration, dropping namespace
// declarations an ancestor already makes.
func WriteDocument(root *etree.Element, indent int) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="no"`)
	doc.SetRoot(root)
	PruneNamespaces(root)
	if indent >= 0 {
		doc.Indent(indent)
	}
	return doc.WriteToBytes()
}

// Unmarshal parses data and decodes its root element into e.
func Unmarshal(data []byte, e Element) error {
	root, err := Parse(data)
	if err != nil {
		return err
	}
	return e.Decode(root)
}

// Parse reads an XML document and returns its root element.
func Parse(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &DecodeError{Element: "document", Err: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, &DecodeError{Element: "document", Err: errors.New("no root element")}
	}
	return root, nil
}

// Render returns el as indented XML without a declaration. It is meant for
// String methods and never fails.
func Render(el *etree.Element) string {
	if el == nil {
		return ""
	}
	doc := etree.NewDocument()
	doc.SetRoot(el)
	PruneNamespaces(el)
	doc.Indent(DefaultIndent)
	s, err := doc.WriteToString()
	if err != nil {
		return fmt.Sprintf("<!-- %v -->", err)
	}
	return s
}

// PruneNamespaces removes xmlns declarations that repeat a binding already
// in scope from an ancestor.
func PruneNamespaces(root *etree.Element) {
	pruneNamespaces(root, map[string]string{})
}

func pruneNamespaces(el *etree.Element, scope map[string]string) {
	var local map[string]string
	kept := el.Attr[:0]
	for _, a := range el.Attr {
		key, isDecl := declPrefix(a)
		if !isDecl {
			kept = append(kept, a)
			continue
		}
		if uri, ok := scope[key]; ok && uri == a.Value {
			continue
		}
		if local == nil {
			local = make(map[string]string, len(scope)+1)
			for k, v := range scope {
				local[k] = v
			}
		}
		local[key] = a.Value
		kept = append(kept, a)
	}
	el.Attr = kept
	if local == nil {
		local = scope
	}
	for _, c := range el.ChildElements() {
		pruneNamespaces(c, local)
	}
}

func declPrefix(a etree.Attr) (string, bool) {
	switch {
	case a.Space == "xmlns":
		return a.Key, true
	case a.Space == "" && a.Key == "xmlns":
		return "", true
	}
	return "", false
}
