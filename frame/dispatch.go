package frame

import (
	"errors"

	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
	"github.com/datum-labs/eppmap/defreg"
	"github.com/datum-labs/eppmap/registry"
	"github.com/datum-labs/eppmap/whowas"
)

// Namespaces lists the mapping namespaces the codec dispatches to.
var Namespaces = []eppmap.Namespace{registry.NS, defreg.NS, whowas.NS}

func noMapping(el *etree.Element) error {
	return eppmap.ErrNoMapping("{" + eppmap.NamespaceOf(el) + "}" + el.Tag)
}

func (c *Codec) commandFor(el *etree.Element) (eppmap.Command, error) {
	uri := eppmap.NamespaceOf(el)
	c.log.Debug("dispatch command", "namespace", uri, "element", el.Tag)
	switch uri {
	case registry.NS.URI:
		return registry.DecodeCommand(el)
	case defreg.NS.URI:
		return defreg.DecodeCommand(el)
	case whowas.NS.URI:
		return whowas.DecodeCommand(el)
	}
	return nil, noMapping(el)
}

func (c *Codec) responseFor(el *etree.Element) (eppmap.Element, error) {
	uri := eppmap.NamespaceOf(el)
	c.log.Debug("dispatch response", "namespace", uri, "element", el.Tag)
	switch uri {
	case registry.NS.URI:
		return registry.DecodeResponse(el)
	case defreg.NS.URI:
		return defreg.DecodeResponse(el)
	case whowas.NS.URI:
		return whowas.DecodeResponse(el)
	}
	return nil, noMapping(el)
}

// elementFor decodes a bare command or response element. Command verbs and
// response names never collide within a namespace.
func (c *Codec) elementFor(el *etree.Element) (eppmap.Element, error) {
	cmd, err := c.commandFor(el)
	if err == nil {
		return c.checked(cmd)
	}
	var nm eppmap.ErrNoMapping
	if !errors.As(err, &nm) {
		return nil, err
	}
	resp, err := c.responseFor(el)
	if err != nil {
		return nil, err
	}
	return c.checked(resp)
}

func (c *Codec) checked(e eppmap.Element) (eppmap.Element, error) {
	if c.strict {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}
	return e, nil
}
