package registry

import (
	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

// NewCommand returns an empty registry command for verb.
func NewCommand(verb string) (eppmap.Command, error) {
	switch verb {
	case elmCheck:
		return &CheckCmd{}, nil
	case elmCreate:
		return &CreateCmd{}, nil
	case elmDelete:
		return &DeleteCmd{}, nil
	case elmInfo:
		return &InfoCmd{}, nil
	case elmUpdate:
		return &UpdateCmd{}, nil
	}
	return nil, eppmap.ErrNoMapping(NS.Qualify(verb))
}

// NewResponse returns an empty registry response for its resData element
// name.
func NewResponse(local string) (eppmap.Element, error) {
	switch local {
	case elmChkData:
		return &CheckResp{}, nil
	case elmCreData:
		return &CreateResp{}, nil
	case elmInfData:
		return &InfoResp{}, nil
	}
	return nil, eppmap.ErrNoMapping(NS.Qualify(local))
}

// DecodeCommand decodes a registry command element.
func DecodeCommand(el *etree.Element) (eppmap.Command, error) {
	return eppmap.DecodeMapped(NS, el, NewCommand)
}

// DecodeResponse decodes a registry response element.
func DecodeResponse(el *etree.Element) (eppmap.Element, error) {
	return eppmap.DecodeMapped(NS, el, NewResponse)
}
