package defreg

import (
	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

// NewCommand returns an empty defReg command for verb.
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
	case elmRenew:
		return &RenewCmd{}, nil
	case elmTransfer:
		return &TransferCmd{}, nil
	case elmUpdate:
		return &UpdateCmd{}, nil
	}
	return nil, eppmap.ErrNoMapping(NS.Qualify(verb))
}

// NewResponse returns an empty defReg response for its resData element name.
func NewResponse(local string) (eppmap.Element, error) {
	switch local {
	case elmChkData:
		return &CheckResp{}, nil
	case elmCreData:
		return &CreateResp{}, nil
	case elmInfData:
		return &InfoResp{}, nil
	case elmRenData:
		return &RenewResp{}, nil
	case elmTrnData:
		return &TransferResp{}, nil
	case elmPanData:
		return &PendActionMsg{}, nil
	}
	return nil, eppmap.ErrNoMapping(NS.Qualify(local))
}

// DecodeCommand decodes a defReg command element.
func DecodeCommand(el *etree.Element) (eppmap.Command, error) {
	return eppmap.DecodeMapped(NS, el, NewCommand)
}

// DecodeResponse decodes a defReg response element.
func DecodeResponse(el *etree.Element) (eppmap.Element, error) {
	return eppmap.DecodeMapped(NS, el, NewResponse)
}
