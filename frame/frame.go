// Package frame wraps mapping elements in the EPP envelope and dispatches
// incoming object elements to the registry, defreg and whowas factories.
package frame

import (
	"time"

	"github.com/datum-labs/eppmap"
)

// Result codes used by the mappings' servers.
const (
	CodeSuccess         = 1000
	CodeActionPending   = 1001
	CodeNoMessages      = 1300
	CodeAckToDequeue    = 1301
	CodeSyntaxError     = 2001
	CodeObjectExists    = 2302
	CodeObjectNotExist  = 2303
	CodeParameterPolicy = 2306
	CodeCommandFailed   = 2400

	minCode, maxCode = 1000, 2599
)

const (
	elmEPP       = "epp"
	elmCommand   = "command"
	elmResponse  = "response"
	elmResult    = "result"
	elmMsg       = "msg"
	elmMsgQ      = "msgQ"
	elmQDate     = "qDate"
	elmResData   = "resData"
	elmTrID      = "trID"
	elmClTRID    = "clTRID"
	elmSvTRID    = "svTRID"
	elmExtension = "extension"
	attrCode     = "code"
	attrLang     = "lang"
	attrOp       = "op"
	attrCount    = "count"
	attrID       = "id"
	defaultLang  = "en"
)

// Command is an EPP command frame carrying one mapping command.
type Command struct {
	ClientTRID string
	Object     eppmap.Command
}

// Validate checks the frame and the object it carries.
func (c *Command) Validate() error {
	v := eppmap.Check(elmCommand)
	if c.Object == nil {
		v.Add("object is required")
		return v.Err()
	}
	if tc, ok := c.Object.(eppmap.TransferCommand); ok {
		v.Require(tc.TransferOp() != "", c.Object.Verb()+"/@"+attrOp)
	}
	v.Nested(c.Object.Verb(), c.Object.Validate())
	return v.Err()
}

// Result is one result of a response.
type Result struct {
	Code int
	Msg  string
	Lang string
}

// Success reports whether the result code is in the 1xxx range.
func (r Result) Success() bool { return r.Code >= 1000 && r.Code < 2000 }

// MsgQueue describes the poll queue in a response.
type MsgQueue struct {
	Count int
	ID    string
	QDate *time.Time
	Msg   string
}

// TransID holds the transaction ids echoed by a response.
type TransID struct {
	ClientTRID string
	ServerTRID string
}

// Response is an EPP response frame. ResData is nil for responses without
// mapping data.
type Response struct {
	Results []Result
	MsgQ    *MsgQueue
	ResData eppmap.Element
	TransID TransID
}

// Validate checks the frame and, when present, the response data.
func (r *Response) Validate() error {
	v := eppmap.Check(elmResponse)
	v.Require(len(r.Results) > 0, elmResult)
	for i, res := range r.Results {
		v.Between(elmResult+"["+itoa(i)+"]/@"+attrCode, res.Code, minCode, maxCode)
		v.Require(res.Msg != "", elmResult+"["+itoa(i)+"]/"+elmMsg)
	}
	if r.MsgQ != nil {
		v.Require(r.MsgQ.ID != "", elmMsgQ+"/@"+attrID)
	}
	if r.ResData != nil {
		v.Nested(elmResData, r.ResData.Validate())
	}
	v.Require(r.TransID.ServerTRID != "", elmTrID+"/"+elmSvTRID)
	return v.Err()
}

// Success reports whether every result succeeded.
func (r *Response) Success() bool {
	for _, res := range r.Results {
		if !res.Success() {
			return false
		}
	}
	return len(r.Results) > 0
}
