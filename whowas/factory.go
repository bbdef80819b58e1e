package whowas

import (
	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

// NewCommand returns an empty WhoWas command for verb.
func NewCommand(verb string) (eppmap.Command, error) {
	if verb == elmInfo {
		return &InfoCmd{}, nil
	}
	return nil, eppmap.ErrNoMapping(NS.Qualify(verb))
}

// NewResponse returns an empty WhoWas response for its resData element name.
func NewResponse(local string) (eppmap.Element, error) {
	if local == elmInfData {
		return &InfoResp{}, nil
	}
	return nil, eppmap.ErrNoMapping(NS.Qualify(local))
}

func DecodeCommand(el *etree.Element) (eppmap.Command, error) {
	return eppmap.DecodeMapped(NS, el, NewCommand)
}

func DecodeResponse(el *etree.Element) (eppmap.Element, error) {
	return eppmap.DecodeMapped(NS, el, NewResponse)
}
