package whowas

import (
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmHistory = "history"
	elmRec     = "rec"
	elmDate    = "date"
	elmNewName = "newName"
	elmOp      = "op"
	elmClID    = "clID"
	elmClName  = "clName"
)

// Operations recorded in a history record.
const (
	OpCreate   = "create"
	OpDelete   = "delete"
	OpTransfer = "transfer"
	OpUpdate   = "update"
	OpRename   = "rename"
)

// InfoResp is the answer to an InfoCmd.
type InfoResp struct {
	Name    string
	Roid    string
	History History
}

func (r *InfoResp) Validate() error {
	v := eppmap.Check(NS.Qualify(elmInfData))
	v.Nested(elmHistory, r.History.Validate())
	return v.Err()
}

func (r *InfoResp) Encode() (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.element(), nil
}

func (r *InfoResp) element() *etree.Element {
	el := NS.NewRoot(elmInfData)
	NS.AddOptText(el, elmName, r.Name)
	NS.AddOptText(el, elmRoid, r.Roid)
	el.AddChild(r.History.element())
	return el
}

// Decode treats a missing history as an empty one.
func (r *InfoResp) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmInfData); err != nil {
		return err
	}
	*r = InfoResp{Name: NS.Text(el, elmName), Roid: NS.Text(el, elmRoid)}
	if h := NS.Child(el, elmHistory); h != nil {
		return r.History.Decode(h)
	}
	return nil
}

func (r *InfoResp) Clone() *InfoResp {
	if r == nil {
		return nil
	}
	return &InfoResp{Name: r.Name, Roid: r.Roid, History: *r.History.Clone()}
}

func (r *InfoResp) String() string { return eppmap.Render(r.element()) }

// History is the ordered list of records for one lookup.
type History struct {
	Records []HistoryRecord
}

func (h *History) Validate() error {
	v := eppmap.Check(NS.Qualify(elmHistory))
	for i := range h.Records {
		v.Nested(elmRec+"["+strconv.Itoa(i)+"]", h.Records[i].Validate())
	}
	return v.Err()
}

func (h *History) Encode() (*etree.Element, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h.element(), nil
}

func (h *History) element() *etree.Element {
	el := NS.NewRoot(elmHistory)
	for i := range h.Records {
		el.AddChild(h.Records[i].element())
	}
	return el
}

func (h *History) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmHistory); err != nil {
		return err
	}
	*h = History{}
	var err error
	h.Records, err = eppmap.DecodeList[HistoryRecord](NS, el, elmRec)
	return err
}

func (h *History) Clone() *History {
	if h == nil {
		return nil
	}
	return &History{Records: eppmap.CloneSlice(h.Records)}
}

func (h *History) String() string { return eppmap.Render(h.element()) }

// HistoryRecord is one past state of a domain.
type HistoryRecord struct {
	Date    time.Time
	Name    string
	NewName string
	Roid    string
	Op      string
	ClID    string
	ClName  string
}

func (r *HistoryRecord) Validate() error {
	v := eppmap.Check(NS.Qualify(elmRec))
	v.Require(!r.Date.IsZero(), elmDate)
	v.Require(r.Name != "", elmName)
	v.Require(r.Roid != "", elmRoid)
	v.OneOf(elmOp, r.Op, OpCreate, OpDelete, OpTransfer, OpUpdate, OpRename)
	v.Require(r.ClID != "", elmClID)
	return v.Err()
}

func (r *HistoryRecord) Encode() (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.element(), nil
}

func (r *HistoryRecord) element() *etree.Element {
	el := NS.NewRoot(elmRec)
	NS.AddTime(el, elmDate, r.Date)
	NS.AddText(el, elmName, r.Name)
	NS.AddOptText(el, elmNewName, r.NewName)
	NS.AddText(el, elmRoid, r.Roid)
	NS.AddText(el, elmOp, r.Op)
	NS.AddText(el, elmClID, r.ClID)
	NS.AddOptText(el, elmClName, r.ClName)
	return el
}

func (r *HistoryRecord) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmRec); err != nil {
		return err
	}
	*r = HistoryRecord{
		Name:    NS.Text(el, elmName),
		NewName: NS.Text(el, elmNewName),
		Roid:    NS.Text(el, elmRoid),
		Op:      NS.Text(el, elmOp),
		ClID:    NS.Text(el, elmClID),
		ClName:  NS.Text(el, elmClName),
	}
	var err error
	r.Date, err = NS.Time(el, elmDate)
	return err
}

func (r *HistoryRecord) Clone() *HistoryRecord { return eppmap.ClonePtr(r) }

func (r *HistoryRecord) String() string { return eppmap.Render(r.element()) }
