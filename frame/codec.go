package frame

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/datum-labs/eppmap"
)

var epp = eppmap.EPP

// ErrNotFrame is returned when a document's root is not an EPP command or
// response frame.
var ErrNotFrame = errors.New("not an EPP command or response")

// Codec reads and writes EPP frames. It holds no per-message state and is
// safe for concurrent use.
type Codec struct {
	log     *slog.Logger
	strict  bool
	newTRID func() string
	indent  int
}

// New returns a Codec that decodes permissively, discards its logs and
// generates UUID client transaction ids.
func New(opts ...Option) *Codec {
	c := &Codec{
		log:     slog.New(slog.DiscardHandler),
		newTRID: uuid.NewString,
		indent:  eppmap.DefaultIndent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ---- commands ---------------------------------------------------------------

// EncodeCommand validates cmd and writes it as an EPP document. A missing
// client transaction id is generated.
func (c *Codec) EncodeCommand(cmd *Command) ([]byte, error) {
	root, err := c.CommandElement(cmd)
	if err != nil {
		return nil, err
	}
	return eppmap.WriteDocument(root, c.indent)
}

// CommandElement is EncodeCommand without serialization. A generated clTRID
// is stored back on cmd.
func (c *Codec) CommandElement(cmd *Command) (*etree.Element, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	obj, err := cmd.Object.Encode()
	if err != nil {
		return nil, err
	}
	root := epp.NewRoot(elmEPP)
	ce := epp.Add(root, elmCommand)
	verb := epp.Add(ce, cmd.Object.Verb())
	if tc, ok := cmd.Object.(eppmap.TransferCommand); ok {
		verb.CreateAttr(attrOp, tc.TransferOp())
	}
	verb.AddChild(obj)

	if cmd.ClientTRID == "" {
		cmd.ClientTRID = c.newTRID()
	}
	epp.AddText(ce, elmClTRID, cmd.ClientTRID)
	c.log.Debug("encoded command", "verb", cmd.Object.Verb(), "namespace", eppmap.NamespaceOf(obj), "clTRID", cmd.ClientTRID)
	return root, nil
}

// DecodeCommand parses an EPP command document.
func (c *Codec) DecodeCommand(data []byte) (*Command, error) {
	root, err := eppmap.Parse(data)
	if err != nil {
		return nil, err
	}
	ce := epp.Child(root, elmCommand)
	if !epp.Is(root, elmEPP) || ce == nil {
		return nil, ErrNotFrame
	}
	return c.decodeCommand(ce)
}

func (c *Codec) decodeCommand(ce *etree.Element) (*Command, error) {
	verb := commandVerb(ce)
	if verb == nil {
		return nil, &eppmap.DecodeError{Element: elmCommand, Err: errors.New("no command verb")}
	}
	objEl := firstChild(verb)
	if objEl == nil {
		return nil, &eppmap.DecodeError{Element: verb.Tag, Err: errors.New("no object element")}
	}
	obj, err := c.commandFor(objEl)
	if err != nil {
		return nil, err
	}
	if obj.Verb() != verb.Tag {
		return nil, &eppmap.DecodeError{Element: verb.Tag, Err: fmt.Errorf("holds a %s command", obj.Verb())}
	}
	if tc, ok := obj.(eppmap.TransferCommand); ok {
		tc.SetTransferOp(eppmap.Attr(verb, attrOp, ""))
	}
	cmd := &Command{ClientTRID: epp.Text(ce, elmClTRID), Object: obj}
	if c.strict {
		if err := cmd.Validate(); err != nil {
			return nil, err
		}
	}
	return cmd, nil
}

// commandVerb returns the verb element of a command: its first EPP child
// that is neither the extension block nor the transaction id.
func commandVerb(ce *etree.Element) *etree.Element {
	for _, el := range ce.ChildElements() {
		if eppmap.NamespaceOf(el) != epp.URI || el.Tag == elmClTRID || el.Tag == elmExtension {
			continue
		}
		return el
	}
	return nil
}

func firstChild(el *etree.Element) *etree.Element {
	if cs := el.ChildElements(); len(cs) > 0 {
		return cs[0]
	}
	return nil
}

// ---- responses --------------------------------------------------------------

// EncodeResponse validates r and writes it as an EPP document.
func (c *Codec) EncodeResponse(r *Response) ([]byte, error) {
	root, err := c.ResponseElement(r)
	if err != nil {
		return nil, err
	}
	return eppmap.WriteDocument(root, c.indent)
}

// ResponseElement is EncodeResponse without serialization. Results without a
// language are set to en.
func (c *Codec) ResponseElement(r *Response) (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	root := epp.NewRoot(elmEPP)
	re := epp.Add(root, elmResponse)
	for i := range r.Results {
		res := &r.Results[i]
		if res.Lang == "" {
			res.Lang = defaultLang
		}
		rel := epp.Add(re, elmResult)
		rel.CreateAttr(attrCode, strconv.Itoa(res.Code))
		msg := epp.AddText(rel, elmMsg, res.Msg)
		if res.Lang != defaultLang {
			msg.CreateAttr(attrLang, res.Lang)
		}
	}
	if q := r.MsgQ; q != nil {
		qe := epp.Add(re, elmMsgQ)
		qe.CreateAttr(attrCount, strconv.Itoa(q.Count))
		qe.CreateAttr(attrID, q.ID)
		epp.AddOptTime(qe, elmQDate, q.QDate)
		epp.AddOptText(qe, elmMsg, q.Msg)
	}
	if r.ResData != nil {
		obj, err := r.ResData.Encode()
		if err != nil {
			return nil, err
		}
		epp.Add(re, elmResData).AddChild(obj)
	}
	tr := epp.Add(re, elmTrID)
	epp.AddOptText(tr, elmClTRID, r.TransID.ClientTRID)
	epp.AddText(tr, elmSvTRID, r.TransID.ServerTRID)
	return root, nil
}

// DecodeResponse parses an EPP response document.
func (c *Codec) DecodeResponse(data []byte) (*Response, error) {
	root, err := eppmap.Parse(data)
	if err != nil {
		return nil, err
	}
	re := epp.Child(root, elmResponse)
	if !epp.Is(root, elmEPP) || re == nil {
		return nil, ErrNotFrame
	}
	return c.decodeResponse(re)
}

func (c *Codec) decodeResponse(re *etree.Element) (*Response, error) {
	r := &Response{}
	for _, rel := range epp.Children(re, elmResult) {
		code, err := strconv.Atoi(eppmap.Attr(rel, attrCode, ""))
		if err != nil {
			return nil, &eppmap.DecodeError{Element: elmResult, Field: "@" + attrCode, Err: err}
		}
		res := Result{Code: code, Msg: epp.Text(rel, elmMsg), Lang: defaultLang}
		if m := epp.Child(rel, elmMsg); m != nil {
			res.Lang = eppmap.Attr(m, attrLang, defaultLang)
		}
		r.Results = append(r.Results, res)
	}
	if qe := epp.Child(re, elmMsgQ); qe != nil {
		q := &MsgQueue{ID: eppmap.Attr(qe, attrID, ""), Msg: epp.Text(qe, elmMsg)}
		n, err := eppmap.IntAttr(qe, attrCount)
		if err != nil {
			return nil, err
		}
		if n != nil {
			q.Count = *n
		}
		if q.QDate, err = epp.OptTime(qe, elmQDate); err != nil {
			return nil, err
		}
		r.MsgQ = q
	}
	if rd := epp.Child(re, elmResData); rd != nil {
		if objEl := firstChild(rd); objEl != nil {
			obj, err := c.responseFor(objEl)
			if err != nil {
				return nil, err
			}
			r.ResData = obj
		}
	}
	if tr := epp.Child(re, elmTrID); tr != nil {
		r.TransID = TransID{ClientTRID: epp.Text(tr, elmClTRID), ServerTRID: epp.Text(tr, elmSvTRID)}
	}
	if c.strict {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ---- auto-detect ------------------------------------------------------------

// Decode reads a command frame, a response frame or a bare mapping element
// and returns a *Command, a *Response or an eppmap.Element.
func (c *Codec) Decode(data []byte) (any, error) {
	root, err := eppmap.Parse(data)
	if err != nil {
		return nil, err
	}
	if epp.Is(root, elmEPP) {
		if ce := epp.Child(root, elmCommand); ce != nil {
			return c.decodeCommand(ce)
		}
		if re := epp.Child(root, elmResponse); re != nil {
			return c.decodeResponse(re)
		}
		return nil, ErrNotFrame
	}
	return c.elementFor(root)
}

// Encode writes the result of Decode back out.
func (c *Codec) Encode(v any) ([]byte, error) {
	switch m := v.(type) {
	case *Command:
		return c.EncodeCommand(m)
	case *Response:
		return c.EncodeResponse(m)
	case eppmap.Element:
		return eppmap.MarshalIndent(m, c.indent)
	}
	return nil, fmt.Errorf("frame: cannot encode %T", v)
}

func itoa(n int) string { return strconv.Itoa(n) }
