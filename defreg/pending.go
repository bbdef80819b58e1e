package defreg

import (
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmPanData   = "panData"
	elmPaTRID    = "paTRID"
	elmPaDate    = "paDate"
	elmClTRID    = "clTRID"
	elmSvTRID    = "svTRID"
	attrPaResult = "paResult"
)

// PendActionMsg is the poll message that reports the outcome of a pending
// action. The transaction ids inside paTRID are in the EPP namespace.
type PendActionMsg struct {
	Name       string
	PaResult   bool
	ClientTRID string
	ServerTRID string
	PaDate     time.Time
}

func (m *PendActionMsg) Validate() error {
	v := eppmap.Check(NS.Qualify(elmPanData))
	v.Require(m.Name != "", elmName)
	v.Require(m.ServerTRID != "", elmPaTRID+"/"+elmSvTRID)
	v.Require(!m.PaDate.IsZero(), elmPaDate)
	return v.Err()
}

func (m *PendActionMsg) Encode() (*etree.Element, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m.element(), nil
}

func (m *PendActionMsg) element() *etree.Element {
	el := NS.NewRoot(elmPanData)
	n := NS.AddText(el, elmName, m.Name)
	n.CreateAttr(attrPaResult, eppmap.FormatBool(m.PaResult))

	tr := NS.Add(el, elmPaTRID)
	if m.ClientTRID != "" {
		c := eppmap.EPP.NewRoot(elmClTRID)
		c.SetText(m.ClientTRID)
		tr.AddChild(c)
	}
	s := eppmap.EPP.NewRoot(elmSvTRID)
	s.SetText(m.ServerTRID)
	tr.AddChild(s)

	NS.AddTime(el, elmPaDate, m.PaDate)
	return el
}

func (m *PendActionMsg) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmPanData); err != nil {
		return err
	}
	*m = PendActionMsg{}
	if n := NS.Child(el, elmName); n != nil {
		m.Name = strings.TrimSpace(n.Text())
		res, err := eppmap.BoolAttr(n, attrPaResult, false)
		if err != nil {
			return err
		}
		m.PaResult = res
	}
	if tr := NS.Child(el, elmPaTRID); tr != nil {
		m.ClientTRID = eppmap.EPP.Text(tr, elmClTRID)
		m.ServerTRID = eppmap.EPP.Text(tr, elmSvTRID)
	}
	var err error
	m.PaDate, err = NS.Time(el, elmPaDate)
	return err
}

func (m *PendActionMsg) Clone() *PendActionMsg { return eppmap.ClonePtr(m) }

func (m *PendActionMsg) String() string { return eppmap.Render(m.element()) }
