package registry

import (
	"errors"
	"strings"
	"testing"
	"time"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/datum-labs/eppmap"
)

const nsDecl = `xmlns:registry="http://www.verisign.com/epp/registry-1.0"`

// roundTrip writes e as a document, parses it back into a fresh value made by
// fresh, and returns it.
func roundTrip[T eppmap.Element](t *testing.T, e T, fresh T) T {
	t.Helper()
	data, err := eppmap.Marshal(e)
	require.NoError(t, err)
	require.NoError(t, eppmap.Unmarshal(data, fresh))
	require.True(t, eppmap.Equal(e, fresh), "round trip diff (-want +got):\n%s", eppmap.Diff(e, fresh))
	return fresh
}

func decodeXML(t *testing.T, s string, e eppmap.Element) {
	t.Helper()
	require.NoError(t, eppmap.Unmarshal([]byte(s), e))
}

func violations(t *testing.T, err error) []error {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, eppmap.ErrInvalid)
	var ve *eppmap.ValidationError
	require.True(t, errors.As(err, &ve))
	return ve.Violations
}

var (
	t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	t1 = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)

func sampleDomain() *Domain {
	d := NewDomain()
	d.DomainNames = []DomainName{{
		Level:         2,
		MinLength:     eppmap.Int(3),
		MaxLength:     eppmap.Int(63),
		AlphaNumStart: true,
		AlphaNumEnd:   true,
		OnlyDNSChars:  true,
		Regexes: []Regex{
			*NewRegex(RegexRoot, "^[a-z]+$"),
			{RootName: RegexRoot, Expression: "^xn--", Explanation: "A-label", Lang: "en"},
		},
		ReservedNames: &ReservedNames{Names: []string{"nic", "whois"}},
	}}
	idn := NewIDN("2008", "6.0")
	idn.Languages = []Language{{Code: "LATN", Table: "latn.txt", VariantStrategy: VariantBlocked}}
	d.IDN = idn
	d.Contacts = []DomainContact{
		*NewDomainContact(ContactAdmin, 1, eppmap.Int(4)),
		*NewDomainContact(ContactTech, 0, nil),
	}
	d.NameServers = &DomainNS{MinMax{Min: 0, Max: eppmap.Int(13)}}
	d.ChildHost = &DomainHost{MinMax{Min: 0}}
	d.Periods = []DomainPeriod{
		*NewDomainPeriod(CommandCreate, 1, UnitYear, 10, UnitYear, 2, UnitYear),
		*NewServerDecidedPeriod(CommandTransfer),
	}
	d.TransferHoldPeriod = &Period{Number: 5, Unit: UnitDay}
	d.GracePeriods = []GracePeriod{
		*NewGracePeriod(CommandCreate, 5, UnitDay),
		*NewGracePeriod(CommandRenew, 5, UnitDay),
		*NewGracePeriod(CommandAutoRenew, 45, UnitDay),
	}
	d.RGP = &RGP{
		PendingRestore:   Period{Number: 7, Unit: UnitDay},
		RedemptionPeriod: Period{Number: 30, Unit: UnitDay},
		PendingDelete:    Period{Number: 5, Unit: UnitDay},
	}
	d.DNSSEC = &DNSSEC{
		DS:         &DSPolicy{MinMax: MinMax{Min: 0, Max: eppmap.Int(13)}, Algorithms: []int{8, 13}, DigestTypes: []int{2}},
		MaxSigLife: &MaxSig{ClientDefined: true, Default: eppmap.Int(604800), Min: eppmap.Int(86400), Max: eppmap.Int(31536000)},
	}
	d.MaxCheckDomain = 5
	d.SupportedStatus = &SupportedStatus{Statuses: []string{"ok", "clientHold"}}
	d.AuthInfoRegex = NewRegex(AuthInfoRegexRoot, "^.{8,32}$")
	d.ExpiryPolicy = ExpiryAutoRenew
	d.CustomData = &CustomData{KeyValues: []KeyValue{NewKeyValue("tier", "gold")}}
	return d
}

func sampleHost() *Host {
	return &Host{
		Internal:     &InternalHost{IPPolicy{MinMax: MinMax{Min: 1, Max: eppmap.Int(13)}, SharePolicy: SharePerZone}},
		External:     &ExternalHost{IPPolicy{MinMax: MinMax{Min: 0}, SharePolicy: SharePerSystem}},
		NameRegexes:  []Regex{*NewRegex(NameRegexRoot, "^ns[0-9]+")},
		MaxCheckHost: 5,
	}
}

func sampleContact() *Contact {
	return &Contact{
		ContactIDRegex:        NewRegex(ContactIDRegexRoot, "^[A-Z0-9]{3,16}$"),
		SharePolicy:           SharePerZone,
		PostalInfoTypeSupport: PostalLocOrInt,
		PostalInfo: &Postal{
			Name: &ContactName{MinMaxLength{MinLength: 1, MaxLength: 255}},
			Org:  &ContactOrg{MinMaxLength{MinLength: 0, MaxLength: 255}},
			Address: &ContactAddress{
				Street: &ContactStreet{MinMaxLength: MinMaxLength{MinLength: 1, MaxLength: 255}, MinEntry: 1, MaxEntry: 3},
				City:   &ContactCity{MinMaxLength{MinLength: 1, MaxLength: 255}},
				SP:     &ContactSP{MinMaxLength{MinLength: 0, MaxLength: 255}},
				PC:     &ContactPC{MinMaxLength{MinLength: 0, MaxLength: 16}},
			},
			VoiceRequired: true,
			Email:         &ContactEmail{MinMaxLength{MinLength: 1, MaxLength: 255}},
		},
		MaxCheckContact:    5,
		TransferHoldPeriod: &Period{Number: 60, Unit: UnitDay},
	}
}

func sampleZone() *Zone {
	return &Zone{
		Name:  "EXAMPLE",
		Group: "STANDARD",
		Services: &Services{
			ObjURIs:   []ObjURI{{URI: "urn:ietf:params:xml:ns:domain-1.0", Required: true}, {URI: "urn:ietf:params:xml:ns:host-1.0"}},
			Extension: &ServicesExt{ExtURIs: []ExtURI{{URI: "urn:ietf:params:xml:ns:rgp-1.0", Required: true}}},
		},
		Related: &Related{
			Fields:  &RelatedFields{Type: FieldsSync, Fields: []string{"clID", "registrant"}},
			Members: []ZoneMember{{Type: MemberPrimary, Name: "EXAMPLE"}, {Type: MemberAlternate, Name: "EXAMPLE2"}},
		},
		Phases: []Phase{
			{Type: PhaseSunrise, Description: "trademark holders", StartDate: t0, EndDate: &t1},
			{Type: PhaseCustom, Name: "early", StartDate: t1},
		},
		Domain:  sampleDomain(),
		Host:    sampleHost(),
		Contact: sampleContact(),
		CrID:    "admin",
		CrDate:  &t0,
	}
}

// ---------- shared types ----------

func TestMinMaxLength_Validate(t *testing.T) {
	violations(t, MinMaxLength{MinLength: 5, MaxLength: 3}.Validate())
	require.NoError(t, MinMaxLength{MinLength: 5, MaxLength: 5}.Validate())
	require.NoError(t, MinMaxLength{}.Validate())
	violations(t, MinMaxLength{MinLength: -1, MaxLength: 3}.Validate())
}

func TestContactFields_FloorsAndCeiling(t *testing.T) {
	violations(t, (&ContactName{MinMaxLength{MinLength: 0, MaxLength: 10}}).Validate())
	require.NoError(t, (&ContactOrg{MinMaxLength{MinLength: 0, MaxLength: 10}}).Validate())
	require.NoError(t, (&ContactSP{MinMaxLength{MinLength: 0, MaxLength: 255}}).Validate())
	violations(t, (&ContactPC{MinMaxLength{MinLength: 0, MaxLength: 256}}).Validate())
	violations(t, (&ContactEmail{MinMaxLength{MinLength: 4, MaxLength: 3}}).Validate())

	street := &ContactStreet{MinMaxLength: MinMaxLength{MinLength: 1, MaxLength: 255}, MinEntry: 2, MaxEntry: 1}
	errs := violations(t, street.Validate())
	require.Len(t, errs, 1)
	street.MaxEntry = 4
	violations(t, street.Validate())
	street.MaxEntry = 3
	require.NoError(t, street.Validate())
	roundTrip(t, street, &ContactStreet{})
}

func TestRegex_DecodeRequiresRootName(t *testing.T) {
	var r Regex
	err := eppmap.Unmarshal([]byte(`<registry:regex `+nsDecl+`><registry:expression>x</registry:expression></registry:regex>`), &r)
	require.ErrorIs(t, err, eppmap.ErrMissingRootName)

	r = Regex{RootName: RegexRoot}
	decodeXML(t, `<registry:regex `+nsDecl+`><registry:expression>x</registry:expression>`+
		`<registry:explanation>any</registry:explanation></registry:regex>`, &r)
	require.Equal(t, "x", r.Expression)
	require.Equal(t, DefaultLang, r.Lang)
}

func TestRegex_ParentBindsRootName(t *testing.T) {
	h := sampleHost()
	h.NameRegexes[0].RootName = ""
	el, err := h.Encode()
	require.NoError(t, err)
	require.NotNil(t, NS.Child(el, NameRegexRoot))
	require.Equal(t, NameRegexRoot, h.NameRegexes[0].RootName)
	roundTrip(t, h, &Host{})
}

func TestRoundTrip_LiteralDefaults(t *testing.T) {
	domain := sampleDomain()
	domain.AuthInfoRegex = &Regex{Expression: "^.{8,}$", Explanation: "eight or more"}
	domain.DomainNames[0].Regexes = append(domain.DomainNames[0].Regexes, Regex{Expression: "^[^-]"})
	domain.IDN = &IDN{IDNVersion: "4.0", IDNAVersion: "2008", UnicodeVersion: "6.0"}

	tests := []struct {
		name  string
		in    eppmap.Element
		fresh eppmap.Element
	}{
		{"regex", &Regex{Expression: "^a", Explanation: "starts with a"}, &Regex{RootName: RegexRoot}},
		{"key value", &KeyValue{Key: "tier", Value: "gold"}, &KeyValue{RootName: elmKeyValue}},
		{"custom data", &CustomData{KeyValues: []KeyValue{{Key: "tier", Value: "gold"}}}, &CustomData{}},
		{"idn", &IDN{IDNVersion: "4.0", IDNAVersion: "2008", UnicodeVersion: "6.0"}, &IDN{}},
		{"check result", &CheckResult{Name: "TAKEN", Reason: "In use"}, &CheckResult{}},
		{"check response", &CheckResp{Results: []CheckResult{{Name: "TAKEN", Reason: "In use"}}}, &CheckResp{}},
		{"contact", sampleContact(), &Contact{}},
		{"domain", domain, &Domain{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roundTrip(t, tt.in, tt.fresh)
		})
	}
}

func TestKeyValueAndCustomData_RoundTrip(t *testing.T) {
	c := &CustomData{KeyValues: []KeyValue{NewKeyValue("a", "1"), NewKeyValue("b", "2")}}
	got := roundTrip(t, c, &CustomData{})
	require.Equal(t, "a", got.KeyValues[0].Key)
	require.Equal(t, "2", got.KeyValues[1].Value)

	violations(t, (&CustomData{KeyValues: []KeyValue{{RootName: elmKeyValue}}}).Validate())

	var ve *eppmap.ValidationError
	require.ErrorAs(t, (&KeyValue{RootName: "entry"}).Validate(), &ve)
	require.Equal(t, "registry:entry", ve.Element)
	require.ErrorAs(t, (&KeyValue{}).Validate(), &ve)
	require.Equal(t, "registry:keyValue", ve.Element)
}

func TestSupportedStatus_RequiresStatus(t *testing.T) {
	violations(t, (&SupportedStatus{}).Validate())
	roundTrip(t, &SupportedStatus{Statuses: []string{"ok"}}, &SupportedStatus{})
}

// ---------- periods ----------

func TestDomainPeriod_CreateRoundTripAndMaxBelowMin(t *testing.T) {
	p := NewDomainPeriod(CommandCreate, 1, UnitYear, 10, UnitYear, 2, UnitYear)
	got := roundTrip(t, p, &DomainPeriod{})
	require.Equal(t, CommandCreate, got.Command)
	require.Equal(t, Period{Number: 2, Unit: UnitYear}, got.Length.Default)

	p.Length.Max.Number = 0
	el, err := p.Encode()
	require.Nil(t, el)
	violations(t, err)
}

func TestDomainPeriod_Exclusivity(t *testing.T) {
	p := NewDomainPeriod(CommandRenew, 1, UnitYear, 10, UnitYear, 1, UnitYear)
	p.ServerDecided = true
	errs := violations(t, p.Validate())
	require.Contains(t, errs[0].Error(), "mutually exclusive")

	violations(t, (&DomainPeriod{Command: CommandRenew}).Validate())
	roundTrip(t, NewServerDecidedPeriod(CommandRenew), &DomainPeriod{})
	violations(t, NewServerDecidedPeriod(CommandAutoRenew).Validate())
}

func TestMinMaxPeriod_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		p       MinMaxPeriod
		wantErr bool
	}{
		{"years", MinMaxPeriod{Period{1, UnitYear}, Period{99, UnitYear}, Period{1, UnitYear}}, false},
		{"months", MinMaxPeriod{Period{1, UnitMonth}, Period{99, UnitMonth}, Period{12, UnitMonth}}, false},
		{"mixed units normalize", MinMaxPeriod{Period{6, UnitMonth}, Period{2, UnitYear}, Period{1, UnitYear}}, false},
		{"default above max", MinMaxPeriod{Period{1, UnitYear}, Period{12, UnitMonth}, Period{2, UnitYear}}, true},
		{"default below min", MinMaxPeriod{Period{2, UnitYear}, Period{5, UnitYear}, Period{18, UnitMonth}}, true},
		{"number above 99", MinMaxPeriod{Period{1, UnitYear}, Period{100, UnitYear}, Period{1, UnitYear}}, true},
		{"day unit", MinMaxPeriod{Period{1, UnitDay}, Period{10, UnitYear}, Period{1, UnitYear}}, true},
		{"zero", MinMaxPeriod{Period{0, UnitYear}, Period{10, UnitYear}, Period{1, UnitYear}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr {
				violations(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGracePeriod_Units(t *testing.T) {
	violations(t, NewGracePeriod(CommandCreate, 5, "w").Validate())
	violations(t, NewGracePeriod(CommandCreate, -1, UnitDay).Validate())
	violations(t, NewGracePeriod("restore", 1, UnitDay).Validate())
	for _, u := range []string{UnitDay, UnitHour, UnitMonth} {
		require.NoError(t, NewGracePeriod(CommandAutoRenew, 0, u).Validate())
	}

	el, err := NewGracePeriod(CommandRenew, 5, UnitDay).Encode()
	require.NoError(t, err)
	require.Equal(t, CommandRenew, el.SelectAttrValue(attrCommand, ""))
	require.Equal(t, UnitDay, el.SelectAttrValue(attrUnit, ""))
	require.Equal(t, "5", el.Text())
}

func TestRGP_RoundTrip(t *testing.T) {
	roundTrip(t, sampleDomain().RGP, &RGP{})
	bad := sampleDomain().RGP
	bad.PendingDelete.Unit = UnitYear
	violations(t, bad.Validate())
}

// ---------- domain ----------

func TestDomainName_Validate(t *testing.T) {
	d := sampleDomain().DomainNames[0]
	require.NoError(t, d.Validate())

	d.Level = 1
	d.MinLength = eppmap.Int(10)
	d.MaxLength = eppmap.Int(5)
	d.ReservedNames.URI = "https://example.test/reserved"
	errs := violations(t, d.Validate())
	require.Len(t, errs, 3)
}

func TestIDN_EncodingDefault(t *testing.T) {
	var i IDN
	decodeXML(t, `<registry:idn `+nsDecl+`><registry:idnaVersion>2008</registry:idnaVersion>`+
		`<registry:unicodeVersion>6.0</registry:unicodeVersion></registry:idn>`, &i)
	require.Equal(t, DefaultEncoding, i.Encoding)
	require.False(t, i.CommingleAllowed)

	el, err := (&IDN{IDNAVersion: "2008", UnicodeVersion: "6.0"}).Encode()
	require.NoError(t, err)
	require.Equal(t, DefaultEncoding, NS.Text(el, elmEncoding))

	violations(t, (&Language{Code: "LATN", VariantStrategy: "loose"}).Validate())
}

func TestDNSSEC_Exclusivity(t *testing.T) {
	ds := &DSPolicy{MinMax: MinMax{Min: 0}}
	key := &KeyPolicy{MinMax: MinMax{Min: 0}, Algorithms: []int{13}}

	violations(t, (&DNSSEC{DS: ds, Key: key}).Validate())
	violations(t, (&DNSSEC{}).Validate())
	roundTrip(t, &DNSSEC{DS: ds}, &DNSSEC{})
	roundTrip(t, &DNSSEC{Key: key, Urgent: true}, &DNSSEC{})

	violations(t, (&DSPolicy{MinMax: MinMax{Min: 0}, Algorithms: []int{256}}).Validate())
	violations(t, (&MaxSig{Min: eppmap.Int(0)}).Validate())
	violations(t, (&MaxSig{ClientDefined: true, Default: eppmap.Int(1), Min: eppmap.Int(5)}).Validate())
	require.NoError(t, (&MaxSig{Default: eppmap.Int(3600), Min: eppmap.Int(60), Max: eppmap.Int(86400)}).Validate())
}

func TestDNSSEC_UrgentDefault(t *testing.T) {
	var d DNSSEC
	decodeXML(t, `<registry:dnssec `+nsDecl+`><registry:dsDataInterface><registry:min>0</registry:min>`+
		`</registry:dsDataInterface></registry:dnssec>`, &d)
	require.False(t, d.Urgent)
	require.NotNil(t, d.DS)
	require.Nil(t, d.DS.Max)
}

func TestDomain_RoundTripPreservesOrder(t *testing.T) {
	got := roundTrip(t, sampleDomain(), &Domain{})
	cmds := make([]string, len(got.GracePeriods))
	for i, g := range got.GracePeriods {
		cmds[i] = g.Command
	}
	require.Equal(t, []string{CommandCreate, CommandRenew, CommandAutoRenew}, cmds)
	require.Equal(t, []int{8, 13}, got.DNSSEC.DS.Algorithms)
	require.True(t, got.ContactsSupported)
}

func TestDomain_Defaults(t *testing.T) {
	var d Domain
	decodeXML(t, `<registry:domain `+nsDecl+`><registry:maxCheckDomain>5</registry:maxCheckDomain></registry:domain>`, &d)
	require.True(t, d.ContactsSupported)
	require.False(t, d.PremiumSupport)
	require.False(t, d.NullAuthInfoSupported)
	require.True(t, NewDomain().ContactsSupported)
}

func TestDomain_ValidateCollectsNestedViolations(t *testing.T) {
	d := sampleDomain()
	d.Periods[0].Length.Max.Number = 0
	d.GracePeriods[1].Unit = "w"
	d.AuthInfoRegex = nil
	d.MaxCheckDomain = 0

	errs := violations(t, d.Validate())
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	joined := strings.Join(msgs, "\n")
	require.Contains(t, joined, "period[0]: length:")
	require.Contains(t, joined, "gracePeriod[1]:")
	require.Contains(t, joined, "authInfoRegex is required")
	require.Contains(t, joined, "maxCheckDomain")
}

func TestDomain_TooManyContacts(t *testing.T) {
	d := sampleDomain()
	d.Contacts = append(d.Contacts, *NewDomainContact(ContactBilling, 0, nil), *NewDomainContact(ContactBilling, 0, nil))
	violations(t, d.Validate())
}

// ---------- host and contact ----------

func TestHost_RoundTrip(t *testing.T) {
	roundTrip(t, sampleHost(), &Host{})

	h := sampleHost()
	h.Internal.SharePolicy = "global"
	h.External.Max = eppmap.Int(-1)
	h.MaxCheckHost = 0
	require.Len(t, violations(t, h.Validate()), 3)
}

func TestContact_RoundTrip(t *testing.T) {
	got := roundTrip(t, sampleContact(), &Contact{})
	require.True(t, got.PostalInfo.VoiceRequired)
	require.False(t, got.ProxyContactSupported)

	c := sampleContact()
	c.PostalInfoTypeSupport = "both"
	c.TransferHoldPeriod = &Period{Number: 100, Unit: UnitDay}
	c.PostalInfo.Address.City = nil
	require.Len(t, violations(t, c.Validate()), 3)
}

// ---------- zone, commands and responses ----------

func TestZone_RoundTrip(t *testing.T) {
	got := roundTrip(t, sampleZone(), &Zone{})
	require.Equal(t, "early", got.Phases[1].Name)
	require.True(t, got.CrDate.Equal(t0))
}

func TestPhase_Validate(t *testing.T) {
	violations(t, (&Phase{Type: PhaseCustom, StartDate: t0}).Validate())
	violations(t, (&Phase{Type: PhaseOpen, StartDate: t1, EndDate: &t0}).Validate())
	violations(t, (&Phase{Type: PhaseOpen}).Validate())
	require.NoError(t, (&Phase{Type: PhaseOpen, StartDate: t0}).Validate())
}

func TestInfoCmd_All(t *testing.T) {
	el, err := NewInfoAllCmd().Encode()
	require.NoError(t, err)
	require.NotNil(t, NS.Child(el, elmAll))
	require.Nil(t, NS.Child(el, elmName))
	require.Empty(t, NS.Child(el, elmAll).ChildElements())

	got := roundTrip(t, NewInfoAllCmd(), &InfoCmd{})
	require.True(t, got.All)
	require.Empty(t, got.Name)

	roundTrip(t, NewInfoCmd("EXAMPLE"), &InfoCmd{})
	violations(t, (&InfoCmd{Name: "EXAMPLE", All: true}).Validate())
	violations(t, (&InfoCmd{}).Validate())
}

func TestCommands_RoundTrip(t *testing.T) {
	roundTrip(t, NewCheckCmd("EXAMPLE", "EXAMPLE2"), &CheckCmd{})
	roundTrip(t, &CreateCmd{Zone: sampleZone()}, &CreateCmd{})
	roundTrip(t, &UpdateCmd{Zone: sampleZone()}, &UpdateCmd{})
	roundTrip(t, &DeleteCmd{Name: "EXAMPLE"}, &DeleteCmd{})

	violations(t, (&CheckCmd{}).Validate())
	violations(t, (&CreateCmd{}).Validate())
	violations(t, (&DeleteCmd{}).Validate())
}

func TestResponses_RoundTrip(t *testing.T) {
	roundTrip(t, &CheckResp{Results: []CheckResult{
		{Name: "EXAMPLE", Avail: true},
		{Name: "TAKEN", Reason: "In use", Lang: DefaultLang},
	}}, &CheckResp{})
	roundTrip(t, &CreateResp{Name: "EXAMPLE", CrDate: t0}, &CreateResp{})
	roundTrip(t, &InfoResp{Zone: sampleZone()}, &InfoResp{})
	roundTrip(t, &InfoResp{ZoneList: &ZoneList{Zones: []ZoneSummary{
		{Name: "EXAMPLE", CrDate: t0, UpDate: &t1},
		{Name: "EXAMPLE2", CrDate: t1},
	}}}, &InfoResp{})

	violations(t, (&InfoResp{}).Validate())
	violations(t, (&InfoResp{Zone: sampleZone(), ZoneList: &ZoneList{}}).Validate())
}

func TestCheckResult_ReasonLangDefault(t *testing.T) {
	var r CheckResult
	decodeXML(t, `<registry:cd `+nsDecl+`><registry:name avail="0">TAKEN</registry:name>`+
		`<registry:reason>In use</registry:reason></registry:cd>`, &r)
	require.Equal(t, CheckResult{Name: "TAKEN", Reason: "In use", Lang: DefaultLang}, r)
}

// ---------- factory ----------

func TestFactory_Dispatch(t *testing.T) {
	for _, verb := range []string{"check", "create", "delete", "info", "update"} {
		c, err := NewCommand(verb)
		require.NoError(t, err)
		require.Equal(t, verb, c.Verb())
	}
	for _, name := range []string{"chkData", "creData", "infData"} {
		_, err := NewResponse(name)
		require.NoError(t, err)
	}

	_, err := NewCommand("renew")
	var nm eppmap.ErrNoMapping
	require.ErrorAs(t, err, &nm)
	_, err = NewResponse("panData")
	require.ErrorAs(t, err, &nm)

	el, err := NewInfoAllCmd().Encode()
	require.NoError(t, err)
	cmd, err := DecodeCommand(el)
	require.NoError(t, err)
	require.IsType(t, &InfoCmd{}, cmd)

	other := eppmap.Namespace{URI: "urn:example:other", Prefix: "o"}.NewRoot("info")
	_, err = DecodeCommand(other)
	require.ErrorAs(t, err, &nm)
}

// ---------- equality and clone ----------

func TestEqualAndClone(t *testing.T) {
	z := sampleZone()
	c := z.Clone()
	require.True(t, eppmap.Equal(z, c))

	c.Domain.GracePeriods[0].Number = 99
	c.Domain.DNSSEC.DS.Algorithms[0] = 1
	c.Phases[0].EndDate = nil
	*c.Domain.DomainNames[0].MinLength = 7
	require.False(t, eppmap.Equal(z, c))
	require.Equal(t, 5, z.Domain.GracePeriods[0].Number)
	require.Equal(t, 8, z.Domain.DNSSEC.DS.Algorithms[0])
	require.NotNil(t, z.Phases[0].EndDate)
	require.Equal(t, 3, *z.Domain.DomainNames[0].MinLength)

	require.False(t, eppmap.Equal(&CreateCmd{}, &UpdateCmd{}))
	require.True(t, eppmap.Equal(&CheckCmd{}, &CheckCmd{Names: []string{}}))
	require.Nil(t, (*Zone)(nil).Clone())
}

func TestString_RendersInvalidValues(t *testing.T) {
	s := (&InfoCmd{}).String()
	require.Contains(t, s, "<registry:info")
	require.Contains(t, sampleZone().String(), "<registry:zone")
}

// ---------- randomized ----------

func label(s *string, c fuzz.Continue) {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789-"
	b := make([]byte, 1+c.Intn(24))
	for i := range b {
		b[i] = alphabet[c.Intn(len(alphabet))]
	}
	*s = string(b)
}

func TestFuzz_CheckRoundTrip(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(1, 8).Funcs(label)
	for i := 0; i < 200; i++ {
		var cmd CheckCmd
		f.Fuzz(&cmd)
		roundTrip(t, &cmd, &CheckCmd{})

		var resp CheckResp
		f.Fuzz(&resp)
		if i%2 == 0 {
			for j := range resp.Results {
				resp.Results[j].Lang = ""
			}
		}
		roundTrip(t, &resp, &CheckResp{})
	}
}
