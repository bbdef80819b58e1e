package registry

import (
	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmLength           = "length"
	elmPeriod           = "period"
	elmServerDecided    = "serverDecided"
	elmGracePeriod      = "gracePeriod"
	elmTransferHold     = "transferHoldPeriod"
	elmRGP              = "rgp"
	elmPendingRestore   = "pendingRestore"
	elmRedemptionPeriod = "redemptionPeriod"
	elmPendingDelete    = "pendingDelete"
	attrCommand         = "command"
)

// Commands a period or grace period policy applies to.
const (
	CommandCreate    = "create"
	CommandRenew     = "renew"
	CommandTransfer  = "transfer"
	CommandAutoRenew = "autoRenew"
)

// ---- MinMaxPeriod -----------------------------------------------------------

// MinMaxPeriod bounds a registration period and gives its default.
type MinMaxPeriod struct {
	Min     Period
	Max     Period
	Default Period
}

func (m *MinMaxPeriod) Validate() error {
	v := eppmap.Check(NS.Qualify(elmLength))
	m.check(v)
	return v.Err()
}

func (m *MinMaxPeriod) check(v *eppmap.Violations) {
	m.Min.check(v, elmMin, registrationRule)
	m.Max.check(v, elmMax, registrationRule)
	m.Default.check(v, elmDefault, registrationRule)

	lo, okLo := m.Min.months()
	hi, okHi := m.Max.months()
	def, okDef := m.Default.months()
	if !okLo || !okHi || !okDef {
		return
	}
	if lo > hi {
		v.Add("min %d%s is greater than max %d%s", m.Min.Number, m.Min.Unit, m.Max.Number, m.Max.Unit)
	}
	if def < lo || def > hi {
		v.Add("default %d%s is outside min %d%s and max %d%s",
			m.Default.Number, m.Default.Unit, m.Min.Number, m.Min.Unit, m.Max.Number, m.Max.Unit)
	}
}

func (m *MinMaxPeriod) Encode() (*etree.Element, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m.element(), nil
}

func (m *MinMaxPeriod) element() *etree.Element {
	el := NS.NewRoot(elmLength)
	m.Min.appendTo(el, elmMin)
	m.Max.appendTo(el, elmMax)
	m.Default.appendTo(el, elmDefault)
	return el
}

func (m *MinMaxPeriod) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmLength); err != nil {
		return err
	}
	*m = MinMaxPeriod{}
	var err error
	if m.Min, err = decodePeriodChild(el, elmMin); err != nil {
		return err
	}
	if m.Max, err = decodePeriodChild(el, elmMax); err != nil {
		return err
	}
	m.Default, err = decodePeriodChild(el, elmDefault)
	return err
}

func (m *MinMaxPeriod) Clone() *MinMaxPeriod { return eppmap.ClonePtr(m) }

func (m *MinMaxPeriod) String() string { return eppmap.Render(m.element()) }

// ---- DomainPeriod -----------------------------------------------------------

// DomainPeriod is the registration period policy for one command: either an
// explicit Length or a period decided by the server.
type DomainPeriod struct {
	Command       string
	Length        *MinMaxPeriod
	ServerDecided bool
}

// NewDomainPeriod returns a period policy with an explicit length.
func NewDomainPeriod(command string, minNum int, minUnit string, maxNum int, maxUnit string, defNum int, defUnit string) *DomainPeriod {
	return &DomainPeriod{
		Command: command,
		Length: &MinMaxPeriod{
			Min:     Period{Number: minNum, Unit: minUnit},
			Max:     Period{Number: maxNum, Unit: maxUnit},
			Default: Period{Number: defNum, Unit: defUnit},
		},
	}
}

// NewServerDecidedPeriod returns a period policy left to the server.
func NewServerDecidedPeriod(command string) *DomainPeriod {
	return &DomainPeriod{Command: command, ServerDecided: true}
}

func (p *DomainPeriod) Validate() error {
	v := eppmap.Check(NS.Qualify(elmPeriod))
	v.OneOf(attrCommand, p.Command, CommandCreate, CommandRenew, CommandTransfer)
	v.ExactlyOne(elmLength, p.Length != nil, elmServerDecided, p.ServerDecided)
	if p.Length != nil {
		v.Nested(elmLength, p.Length.Validate())
	}
	return v.Err()
}

func (p *DomainPeriod) Encode() (*etree.Element, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.element(), nil
}

func (p *DomainPeriod) element() *etree.Element {
	el := NS.NewRoot(elmPeriod)
	el.CreateAttr(attrCommand, p.Command)
	if p.Length != nil {
		el.AddChild(p.Length.element())
	}
	if p.ServerDecided {
		NS.AddBool(el, elmServerDecided, true)
	}
	return el
}

func (p *DomainPeriod) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmPeriod); err != nil {
		return err
	}
	*p = DomainPeriod{Command: eppmap.Attr(el, attrCommand, "")}
	var err error
	if p.Length, err = eppmap.DecodeOpt[MinMaxPeriod](NS, el, elmLength); err != nil {
		return err
	}
	p.ServerDecided, err = NS.Bool(el, elmServerDecided, false)
	return err
}

func (p *DomainPeriod) Clone() *DomainPeriod {
	if p == nil {
		return nil
	}
	c := *p
	c.Length = p.Length.Clone()
	return &c
}

func (p *DomainPeriod) String() string { return eppmap.Render(p.element()) }

// ---- GracePeriod ------------------------------------------------------------

// GracePeriod is the grace period that follows a command, in days, hours or
// minutes.
type GracePeriod struct {
	Command string
	Period
}

// NewGracePeriod returns a grace period policy for command.
func NewGracePeriod(command string, number int, unit string) *GracePeriod {
	return &GracePeriod{Command: command, Period: Period{Number: number, Unit: unit}}
}

func (g *GracePeriod) Validate() error {
	v := eppmap.Check(NS.Qualify(elmGracePeriod))
	v.OneOf(attrCommand, g.Command, CommandCreate, CommandRenew, CommandTransfer, CommandAutoRenew)
	g.Period.check(v, "number", gracePeriodRule)
	return v.Err()
}

func (g *GracePeriod) Encode() (*etree.Element, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g.element(), nil
}

func (g *GracePeriod) element() *etree.Element {
	el := NS.NewRoot(elmGracePeriod)
	el.CreateAttr(attrCommand, g.Command)
	g.Period.fill(el)
	return el
}

func (g *GracePeriod) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmGracePeriod); err != nil {
		return err
	}
	p, err := decodePeriod(el)
	if err != nil {
		return err
	}
	*g = GracePeriod{Command: eppmap.Attr(el, attrCommand, ""), Period: p}
	return nil
}

func (g *GracePeriod) Clone() *GracePeriod { return eppmap.ClonePtr(g) }

func (g *GracePeriod) String() string { return eppmap.Render(g.element()) }

// ---- RGP --------------------------------------------------------------------

// RGP is the redemption grace period policy.
type RGP struct {
	PendingRestore   Period
	RedemptionPeriod Period
	PendingDelete    Period
}

func (r *RGP) Validate() error {
	v := eppmap.Check(NS.Qualify(elmRGP))
	r.PendingRestore.check(v, elmPendingRestore, gracePeriodRule)
	r.RedemptionPeriod.check(v, elmRedemptionPeriod, gracePeriodRule)
	r.PendingDelete.check(v, elmPendingDelete, gracePeriodRule)
	return v.Err()
}

func (r *RGP) Encode() (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.element(), nil
}

func (r *RGP) element() *etree.Element {
	el := NS.NewRoot(elmRGP)
	r.PendingRestore.appendTo(el, elmPendingRestore)
	r.RedemptionPeriod.appendTo(el, elmRedemptionPeriod)
	r.PendingDelete.appendTo(el, elmPendingDelete)
	return el
}

func (r *RGP) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmRGP); err != nil {
		return err
	}
	*r = RGP{}
	var err error
	if r.PendingRestore, err = decodePeriodChild(el, elmPendingRestore); err != nil {
		return err
	}
	if r.RedemptionPeriod, err = decodePeriodChild(el, elmRedemptionPeriod); err != nil {
		return err
	}
	r.PendingDelete, err = decodePeriodChild(el, elmPendingDelete)
	return err
}

func (r *RGP) Clone() *RGP { return eppmap.ClonePtr(r) }

func (r *RGP) String() string { return eppmap.Render(r.element()) }
