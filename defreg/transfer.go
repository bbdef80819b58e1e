package defreg

import (
	"time"

	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmTransfer = "transfer"
	elmTrnData  = "trnData"
	elmTrStatus = "trStatus"
	elmReID     = "reID"
	elmReDate   = "reDate"
	elmAcID     = "acID"
	elmAcDate   = "acDate"
)

// Transfer operations, written on the EPP transfer element.
const (
	OpRequest = "request"
	OpApprove = "approve"
	OpCancel  = "cancel"
	OpQuery   = "query"
	OpReject  = "reject"
)

// Transfer statuses.
const (
	TransferClientApproved  = "clientApproved"
	TransferClientCancelled = "clientCancelled"
	TransferClientRejected  = "clientRejected"
	TransferPending         = "pending"
	TransferServerApproved  = "serverApproved"
	TransferServerCancelled = "serverCancelled"
)

// TransferCmd requests or acts on the transfer of a defensive registration.
// Op is not part of the defReg element: the EPP frame writes it on the
// enclosing transfer element.
type TransferCmd struct {
	Op       string
	Roid     string
	Period   *Period
	AuthInfo *AuthInfo
}

// NewTransferCmd returns a transfer command for roid.
func NewTransferCmd(op, roid string) *TransferCmd { return &TransferCmd{Op: op, Roid: roid} }

func (c *TransferCmd) Verb() string { return elmTransfer }

func (c *TransferCmd) TransferOp() string { return c.Op }

func (c *TransferCmd) SetTransferOp(op string) { c.Op = op }

func (c *TransferCmd) Validate() error {
	v := eppmap.Check(NS.Qualify(elmTransfer))
	v.OptOneOf("op", c.Op, OpRequest, OpApprove, OpCancel, OpQuery, OpReject)
	v.Require(c.Roid != "", elmRoid)
	checkOpt(v, elmPeriod, c.Period, c.Period != nil)
	checkOpt(v, elmAuthInfo, c.AuthInfo, c.AuthInfo != nil)
	return v.Err()
}

func (c *TransferCmd) Encode() (*etree.Element, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.element(), nil
}

func (c *TransferCmd) element() *etree.Element {
	el := NS.NewRoot(elmTransfer)
	NS.AddText(el, elmRoid, c.Roid)
	if c.Period != nil {
		el.AddChild(c.Period.element())
	}
	if c.AuthInfo != nil {
		el.AddChild(c.AuthInfo.element())
	}
	return el
}

// Decode keeps Op, which the enclosing frame sets.
func (c *TransferCmd) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmTransfer); err != nil {
		return err
	}
	*c = TransferCmd{Op: c.Op, Roid: NS.Text(el, elmRoid)}
	var err error
	if c.Period, err = eppmap.DecodeOpt[Period](NS, el, elmPeriod); err != nil {
		return err
	}
	c.AuthInfo, err = eppmap.DecodeOpt[AuthInfo](NS, el, elmAuthInfo)
	return err
}

func (c *TransferCmd) Clone() *TransferCmd {
	if c == nil {
		return nil
	}
	return &TransferCmd{Op: c.Op, Roid: c.Roid, Period: c.Period.Clone(), AuthInfo: c.AuthInfo.Clone()}
}

func (c *TransferCmd) String() string { return eppmap.Render(c.element()) }

// TransferResp answers a TransferCmd.
type TransferResp struct {
	Roid     string
	TrStatus string
	ReID     string
	ReDate   time.Time
	AcID     string
	AcDate   time.Time
	ExDate   *time.Time
}

func (r *TransferResp) Validate() error {
	v := eppmap.Check(NS.Qualify(elmTrnData))
	v.Require(r.Roid != "", elmRoid)
	v.OneOf(elmTrStatus, r.TrStatus, TransferClientApproved, TransferClientCancelled, TransferClientRejected,
		TransferPending, TransferServerApproved, TransferServerCancelled)
	v.Require(r.ReID != "", elmReID)
	v.Require(!r.ReDate.IsZero(), elmReDate)
	v.Require(r.AcID != "", elmAcID)
	v.Require(!r.AcDate.IsZero(), elmAcDate)
	return v.Err()
}

func (r *TransferResp) Encode() (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.element(), nil
}

func (r *TransferResp) element() *etree.Element {
	el := NS.NewRoot(elmTrnData)
	NS.AddText(el, elmRoid, r.Roid)
	NS.AddText(el, elmTrStatus, r.TrStatus)
	NS.AddText(el, elmReID, r.ReID)
	NS.AddTime(el, elmReDate, r.ReDate)
	NS.AddText(el, elmAcID, r.AcID)
	NS.AddTime(el, elmAcDate, r.AcDate)
	NS.AddOptTime(el, elmExDate, r.ExDate)
	return el
}

func (r *TransferResp) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmTrnData); err != nil {
		return err
	}
	*r = TransferResp{
		Roid:     NS.Text(el, elmRoid),
		TrStatus: NS.Text(el, elmTrStatus),
		ReID:     NS.Text(el, elmReID),
		AcID:     NS.Text(el, elmAcID),
	}
	var err error
	if r.ReDate, err = NS.Time(el, elmReDate); err != nil {
		return err
	}
	if r.AcDate, err = NS.Time(el, elmAcDate); err != nil {
		return err
	}
	r.ExDate, err = NS.OptTime(el, elmExDate)
	return err
}

func (r *TransferResp) Clone() *TransferResp {
	if r == nil {
		return nil
	}
	c := *r
	c.ExDate = eppmap.ClonePtr(r.ExDate)
	return &c
}

func (r *TransferResp) String() string { return eppmap.Render(r.element()) }
