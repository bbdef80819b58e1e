package defreg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/datum-labs/eppmap"
)

const nsDecl = `xmlns:defReg="http://www.verisign.com/epp/defReg-1.0"`

func roundTrip[T eppmap.Element](t *testing.T, e T, fresh T) T {
	t.Helper()
	data, err := eppmap.Marshal(e)
	require.NoError(t, err)
	require.NoError(t, eppmap.Unmarshal(data, fresh))
	require.True(t, eppmap.Equal(e, fresh), "round trip diff (-want +got):\n%s", eppmap.Diff(e, fresh))
	return fresh
}

func requireInvalid(t *testing.T, e eppmap.Element) {
	t.Helper()
	el, err := e.Encode()
	require.Nil(t, el)
	require.ErrorIs(t, err, eppmap.ErrInvalid)
}

var (
	crDate  = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	exDate  = time.Date(2034, 1, 15, 10, 30, 0, 0, time.UTC)
	tmDate  = time.Date(2019, 7, 4, 0, 0, 0, 0, time.UTC)
	curDate = time.Date(2034, 1, 15, 0, 0, 0, 0, time.UTC)
)

func sampleCreate() *CreateCmd {
	return &CreateCmd{
		Name:         &Name{Level: LevelPremium, Name: "doe"},
		Registrant:   "jd1234",
		TM:           "XYZ-123",
		TMCountry:    "US",
		TMDate:       &tmDate,
		AdminContact: "sh8013",
		Period:       NewPeriod(10),
		AuthInfo:     &AuthInfo{Password: "2fooBAR"},
	}
}

func sampleInfo() *InfoResp {
	upDate := crDate.Add(48 * time.Hour)
	return &InfoResp{
		Roid:         "EXAMPLE1-REP",
		Name:         NewName("doe"),
		Registrant:   "jd1234",
		TMCountry:    "US",
		TMDate:       &tmDate,
		AdminContact: "sh8013",
		Statuses:     []Status{{S: StatusOK}, {S: StatusClientHold, Lang: "en", Text: "Payment overdue."}},
		ClID:         "ClientX",
		CrID:         "ClientY",
		CrDate:       crDate,
		UpID:         "ClientX",
		UpDate:       &upDate,
		ExDate:       &exDate,
		AuthInfo:     &AuthInfo{Password: "2fooBAR", Roid: "EXAMPLE1-REP"},
	}
}

// ---------- shared types ----------

func TestName_Level(t *testing.T) {
	requireInvalid(t, &Name{Name: "doe"})
	requireInvalid(t, &Name{Level: "gold", Name: "doe"})
	requireInvalid(t, &Name{Level: LevelStandard})
	roundTrip(t, NewName("doe"), &Name{})
}

func TestPeriod_RangeAndUnitDefault(t *testing.T) {
	requireInvalid(t, &Period{Unit: UnitYear, Value: 0})
	requireInvalid(t, &Period{Unit: UnitYear, Value: 100})
	requireInvalid(t, &Period{Unit: "d", Value: 1})
	roundTrip(t, &Period{Unit: UnitMonth, Value: 1}, &Period{})
	roundTrip(t, NewPeriod(99), &Period{})

	var p Period
	require.NoError(t, eppmap.Unmarshal([]byte(`<defReg:period `+nsDecl+`>3</defReg:period>`), &p))
	require.Equal(t, Period{Unit: UnitYear, Value: 3}, p)

	err := eppmap.Unmarshal([]byte(`<defReg:period `+nsDecl+` unit="y">three</defReg:period>`), &p)
	var de *eppmap.DecodeError
	require.ErrorAs(t, err, &de)
}

func TestStatus_LangDefault(t *testing.T) {
	var s Status
	require.NoError(t, eppmap.Unmarshal([]byte(`<defReg:status `+nsDecl+` s="clientHold">held</defReg:status>`), &s))
	require.Equal(t, Status{S: StatusClientHold, Lang: DefaultLang, Text: "held"}, s)

	require.NoError(t, eppmap.Unmarshal([]byte(`<defReg:status `+nsDecl+` s="ok"/>`), &s))
	require.Equal(t, Status{S: StatusOK}, s)

	requireInvalid(t, &Status{S: "frozen"})
}

func TestRoundTrip_LiteralDefaults(t *testing.T) {
	info := sampleInfo()
	info.Statuses = []Status{{S: StatusClientHold, Text: "Payment overdue."}}

	tests := []struct {
		name  string
		in    eppmap.Element
		fresh eppmap.Element
	}{
		{"status", &Status{S: StatusOK, Text: "held"}, &Status{}},
		{"check result", &CheckResult{Name: Name{Level: LevelStandard, Name: "doe"}, Reason: "Reserved"}, &CheckResult{}},
		{"info", info, &InfoResp{}},
		{"update", &UpdateCmd{
			Roid: "EXAMPLE1-REP",
			Add:  &Add{Statuses: []Status{{S: StatusClientHold, Text: "dispute"}}},
		}, &UpdateCmd{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roundTrip(t, tt.in, tt.fresh)
		})
	}
}

func TestAuthInfo_RoidAttribute(t *testing.T) {
	a := &AuthInfo{Password: "secret", Roid: "R-1"}
	el, err := a.Encode()
	require.NoError(t, err)
	require.Equal(t, "R-1", NS.Child(el, elmPW).SelectAttrValue(attrRoid, ""))
	roundTrip(t, a, &AuthInfo{})
	requireInvalid(t, &AuthInfo{Roid: "R-1"})
}

// ---------- commands ----------

func TestCheck_RoundTrip(t *testing.T) {
	cmd := NewCheckCmd("doe", "smith")
	cmd.Names[1].Level = LevelPremium
	got := roundTrip(t, cmd, &CheckCmd{})
	require.Equal(t, LevelPremium, got.Names[1].Level)
	requireInvalid(t, &CheckCmd{})

	roundTrip(t, &CheckResp{Results: []CheckResult{
		{Name: *NewName("doe"), Avail: true},
		{Name: Name{Level: LevelPremium, Name: "smith"}, Reason: "Already registered", Lang: "en"},
	}}, &CheckResp{})
	requireInvalid(t, &CheckResp{Results: []CheckResult{{Name: Name{Name: "doe"}}}})
}

func TestCreate_RoundTripAndValidate(t *testing.T) {
	got := roundTrip(t, sampleCreate(), &CreateCmd{})
	require.True(t, got.TMDate.Equal(tmDate))

	c := sampleCreate()
	c.TMCountry = "USA"
	requireInvalid(t, c)

	c = sampleCreate()
	c.AuthInfo = nil
	c.Registrant = ""
	err := c.Validate()
	var ve *eppmap.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Violations, 2)

	c = sampleCreate()
	c.Period = nil
	c.TM, c.TMCountry, c.TMDate = "", "", nil
	roundTrip(t, c, &CreateCmd{})

	roundTrip(t, &CreateResp{Roid: "EXAMPLE1-REP", Name: "doe", CrDate: crDate, ExDate: exDate}, &CreateResp{})
	requireInvalid(t, &CreateResp{Roid: "EXAMPLE1-REP", Name: "doe", CrDate: crDate})
}

func TestInfo_RoundTrip(t *testing.T) {
	roundTrip(t, NewInfoCmd("EXAMPLE1-REP"), &InfoCmd{})
	roundTrip(t, &InfoCmd{Roid: "EXAMPLE1-REP", AuthInfo: &AuthInfo{Password: "x"}}, &InfoCmd{})
	requireInvalid(t, &InfoCmd{})

	got := roundTrip(t, sampleInfo(), &InfoResp{})
	require.Equal(t, []string{StatusOK, StatusClientHold}, []string{got.Statuses[0].S, got.Statuses[1].S})

	r := sampleInfo()
	r.Statuses[0].S = "frozen"
	requireInvalid(t, r)
}

func TestDelete_RoundTrip(t *testing.T) {
	roundTrip(t, &DeleteCmd{Roid: "EXAMPLE1-REP"}, &DeleteCmd{})
	requireInvalid(t, &DeleteCmd{})
}

func TestRenew_RoundTrip(t *testing.T) {
	got := roundTrip(t, &RenewCmd{Roid: "EXAMPLE1-REP", CurExpDate: curDate, Period: NewPeriod(1)}, &RenewCmd{})
	require.True(t, got.CurExpDate.Equal(curDate))

	el, err := (&RenewCmd{Roid: "EXAMPLE1-REP", CurExpDate: curDate}).Encode()
	require.NoError(t, err)
	require.Equal(t, "2034-01-15", NS.Text(el, elmCurExpDate))

	requireInvalid(t, &RenewCmd{Roid: "EXAMPLE1-REP"})
	roundTrip(t, &RenewResp{Roid: "EXAMPLE1-REP", ExDate: &exDate}, &RenewResp{})
	roundTrip(t, &RenewResp{Roid: "EXAMPLE1-REP"}, &RenewResp{})
}

func TestTransfer_OpLivesOutsideElement(t *testing.T) {
	cmd := NewTransferCmd(OpRequest, "EXAMPLE1-REP")
	cmd.Period = NewPeriod(1)
	cmd.AuthInfo = &AuthInfo{Password: "2fooBAR"}

	el, err := cmd.Encode()
	require.NoError(t, err)
	require.Empty(t, el.SelectAttrValue("op", ""))

	got := &TransferCmd{Op: OpRequest}
	require.NoError(t, got.Decode(el))
	require.True(t, eppmap.Equal(cmd, got))

	var tc eppmap.TransferCommand = got
	tc.SetTransferOp(OpApprove)
	require.Equal(t, OpApprove, got.TransferOp())

	requireInvalid(t, NewTransferCmd("steal", "EXAMPLE1-REP"))

	roundTrip(t, &TransferResp{
		Roid: "EXAMPLE1-REP", TrStatus: TransferPending,
		ReID: "ClientX", ReDate: crDate, AcID: "ClientY", AcDate: crDate.Add(120 * time.Hour),
		ExDate: &exDate,
	}, &TransferResp{})
	requireInvalid(t, &TransferResp{Roid: "EXAMPLE1-REP", TrStatus: "waiting"})
}

func TestUpdate_RequiresAChange(t *testing.T) {
	requireInvalid(t, &UpdateCmd{Roid: "EXAMPLE1-REP"})
	requireInvalid(t, &UpdateCmd{Roid: "EXAMPLE1-REP", Change: &Change{}})
	requireInvalid(t, &UpdateCmd{Roid: "EXAMPLE1-REP", Add: &Add{}})

	u := &UpdateCmd{
		Roid:   "EXAMPLE1-REP",
		Add:    &Add{Statuses: []Status{{S: StatusClientHold}, {S: StatusClientUpdateProhibited}}},
		Remove: &Remove{Statuses: []Status{{S: StatusClientRenewProhibited, Lang: "en", Text: "lifted"}}},
		Change: &Change{Registrant: "sh8013", TMDate: &tmDate, AuthInfo: &AuthInfo{Password: "new"}},
	}
	got := roundTrip(t, u, &UpdateCmd{})
	require.Equal(t, StatusClientUpdateProhibited, got.Add.Statuses[1].S)

	roundTrip(t, &UpdateCmd{Roid: "EXAMPLE1-REP", Change: &Change{AdminContact: "sh8013"}}, &UpdateCmd{})
}

func TestPendActionMsg_RoundTrip(t *testing.T) {
	m := &PendActionMsg{Name: "doe", PaResult: true, ClientTRID: "ABC-12345", ServerTRID: "54321-XYZ", PaDate: crDate}
	el, err := m.Encode()
	require.NoError(t, err)
	tr := NS.Child(el, elmPaTRID)
	require.NotNil(t, tr)
	require.Equal(t, "ABC-12345", eppmap.EPP.Text(tr, elmClTRID))
	require.Empty(t, NS.Text(tr, elmClTRID))

	roundTrip(t, m, &PendActionMsg{})
	roundTrip(t, &PendActionMsg{Name: "doe", ServerTRID: "54321-XYZ", PaDate: crDate}, &PendActionMsg{})
	requireInvalid(t, &PendActionMsg{Name: "doe", PaDate: crDate})
}

// ---------- factory ----------

func TestFactory_Dispatch(t *testing.T) {
	for _, verb := range []string{"check", "create", "delete", "info", "renew", "transfer", "update"} {
		c, err := NewCommand(verb)
		require.NoError(t, err, verb)
		require.Equal(t, verb, c.Verb())
	}
	for _, name := range []string{"chkData", "creData", "infData", "renData", "trnData", "panData"} {
		_, err := NewResponse(name)
		require.NoError(t, err, name)
	}

	var nm eppmap.ErrNoMapping
	_, err := NewCommand("restore")
	require.ErrorAs(t, err, &nm)
	require.Equal(t, "no such mapping: defReg:restore", err.Error())

	el, err := sampleInfo().Encode()
	require.NoError(t, err)
	resp, err := DecodeResponse(el)
	require.NoError(t, err)
	require.IsType(t, &InfoResp{}, resp)
	require.True(t, eppmap.Equal(sampleInfo(), resp))
}

// ---------- clone ----------

func TestClone_Independent(t *testing.T) {
	r := sampleInfo()
	c := r.Clone()
	require.True(t, eppmap.Equal(r, c))

	c.Statuses[0].S = StatusServerHold
	c.AuthInfo.Password = "changed"
	c.Name.Level = LevelPremium
	*c.ExDate = crDate
	require.Equal(t, StatusOK, r.Statuses[0].S)
	require.Equal(t, "2fooBAR", r.AuthInfo.Password)
	require.Equal(t, LevelStandard, r.Name.Level)
	require.True(t, r.ExDate.Equal(exDate))
}
