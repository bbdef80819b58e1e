package registry

import (
	"github.com/beevik/etree"

	"github.com/datum-labs/eppmap"
)

const (
	elmHost         = "host"
	elmInternal     = "internal"
	elmExternal     = "external"
	elmMinIP        = "minIP"
	elmMaxIP        = "maxIP"
	elmSharePolicy  = "sharePolicy"
	elmMaxCheckHost = "maxCheckHost"
)

var ipRule = rangeRule{minElm: elmMinIP, maxElm: elmMaxIP}

// Host is the host object policy of a zone.
type Host struct {
	Internal        *InternalHost
	External        *ExternalHost
	NameRegexes     []Regex
	MaxCheckHost    int
	SupportedStatus *SupportedStatus
	CustomData      *CustomData
}

func (h *Host) Validate() error {
	v := eppmap.Check(NS.Qualify(elmHost))
	v.Require(h.Internal != nil, elmInternal)
	if h.Internal != nil {
		v.Nested(elmInternal, h.Internal.Validate())
	}
	v.Require(h.External != nil, elmExternal)
	if h.External != nil {
		v.Nested(elmExternal, h.External.Validate())
	}
	checkRegexes(v, NameRegexRoot, h.NameRegexes)
	v.AtLeast(elmMaxCheckHost, h.MaxCheckHost, 1)
	if h.SupportedStatus != nil {
		v.Nested(elmSupportedStat, h.SupportedStatus.Validate())
	}
	if h.CustomData != nil {
		v.Nested(elmCustomData, h.CustomData.Validate())
	}
	return v.Err()
}

func (h *Host) Encode() (*etree.Element, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h.element(), nil
}

func (h *Host) element() *etree.Element {
	el := NS.NewRoot(elmHost)
	if h.Internal != nil {
		el.AddChild(h.Internal.element())
	}
	if h.External != nil {
		el.AddChild(h.External.element())
	}
	addRegexes(el, NameRegexRoot, h.NameRegexes)
	NS.AddInt(el, elmMaxCheckHost, h.MaxCheckHost)
	if h.SupportedStatus != nil {
		el.AddChild(h.SupportedStatus.element())
	}
	if h.CustomData != nil {
		el.AddChild(h.CustomData.element())
	}
	return el
}

func (h *Host) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmHost); err != nil {
		return err
	}
	*h = Host{}
	var err error
	if h.Internal, err = eppmap.DecodeOpt[InternalHost](NS, el, elmInternal); err != nil {
		return err
	}
	if h.External, err = eppmap.DecodeOpt[ExternalHost](NS, el, elmExternal); err != nil {
		return err
	}
	if h.NameRegexes, err = decodeRegexes(el, NameRegexRoot); err != nil {
		return err
	}
	if h.MaxCheckHost, err = NS.Int(el, elmMaxCheckHost); err != nil {
		return err
	}
	if h.SupportedStatus, err = eppmap.DecodeOpt[SupportedStatus](NS, el, elmSupportedStat); err != nil {
		return err
	}
	h.CustomData, err = eppmap.DecodeOpt[CustomData](NS, el, elmCustomData)
	return err
}

func (h *Host) Clone() *Host {
	if h == nil {
		return nil
	}
	return &Host{
		Internal:        h.Internal.Clone(),
		External:        h.External.Clone(),
		NameRegexes:     eppmap.CloneSlice(h.NameRegexes),
		MaxCheckHost:    h.MaxCheckHost,
		SupportedStatus: h.SupportedStatus.Clone(),
		CustomData:      h.CustomData.Clone(),
	}
}

func (h *Host) String() string { return eppmap.Render(h.element()) }

// ---- IPPolicy ---------------------------------------------------------------

// IPPolicy bounds the IP addresses of a host and says how hosts are shared.
// InternalHost and ExternalHost embed it.
type IPPolicy struct {
	MinMax
	SharePolicy string
}

func (p IPPolicy) check(v *eppmap.Violations) {
	p.MinMax.check(v, ipRule)
	v.OptOneOf(elmSharePolicy, p.SharePolicy, SharePerZone, SharePerSystem)
}

func (p IPPolicy) fill(el *etree.Element) {
	p.MinMax.appendTo(el, ipRule)
	NS.AddOptText(el, elmSharePolicy, p.SharePolicy)
}

func (p IPPolicy) clone() IPPolicy {
	return IPPolicy{MinMax: p.MinMax.clone(), SharePolicy: p.SharePolicy}
}

func decodeIPPolicy(el *etree.Element) (IPPolicy, error) {
	mm, err := decodeMinMax(el, ipRule)
	if err != nil {
		return IPPolicy{}, err
	}
	return IPPolicy{MinMax: mm, SharePolicy: NS.Text(el, elmSharePolicy)}, nil
}

// InternalHost is the policy for hosts inside the zone.
type InternalHost struct {
	IPPolicy
}

func (h *InternalHost) Validate() error {
	v := eppmap.Check(NS.Qualify(elmInternal))
	h.IPPolicy.check(v)
	return v.Err()
}

func (h *InternalHost) Encode() (*etree.Element, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h.element(), nil
}

func (h *InternalHost) element() *etree.Element {
	el := NS.NewRoot(elmInternal)
	h.IPPolicy.fill(el)
	return el
}

func (h *InternalHost) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmInternal); err != nil {
		return err
	}
	p, err := decodeIPPolicy(el)
	if err != nil {
		return err
	}
	*h = InternalHost{IPPolicy: p}
	return nil
}

func (h *InternalHost) Clone() *InternalHost {
	if h == nil {
		return nil
	}
	return &InternalHost{IPPolicy: h.IPPolicy.clone()}
}

func (h *InternalHost) String() string { return eppmap.Render(h.element()) }

// ExternalHost is the policy for hosts outside the zone.
type ExternalHost struct {
	IPPolicy
}

func (h *ExternalHost) Validate() error {
	v := eppmap.Check(NS.Qualify(elmExternal))
	h.IPPolicy.check(v)
	return v.Err()
}

func (h *ExternalHost) Encode() (*etree.Element, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h.element(), nil
}

func (h *ExternalHost) element() *etree.Element {
	el := NS.NewRoot(elmExternal)
	h.IPPolicy.fill(el)
	return el
}

func (h *ExternalHost) Decode(el *etree.Element) error {
	if err := NS.Expect(el, elmExternal); err != nil {
		return err
	}
	p, err := decodeIPPolicy(el)
	if err != nil {
		return err
	}
	*h = ExternalHost{IPPolicy: p}
	return nil
}

func (h *ExternalHost) Clone() *ExternalHost {
	if h == nil {
		return nil
	}
	return &ExternalHost{IPPolicy: h.IPPolicy.clone()}
}

func (h *ExternalHost) String() string { return eppmap.Render(h.element()) }
