package whowas

import (
	"testing"
	"time"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/datum-labs/eppmap"
)

func roundTrip[T eppmap.Element](t *testing.T, e T, fresh T) T {
	t.Helper()
	data, err := eppmap.Marshal(e)
	require.NoError(t, err)
	require.NoError(t, eppmap.Unmarshal(data, fresh))
	require.True(t, eppmap.Equal(e, fresh), "round trip diff (-want +got):\n%s", eppmap.Diff(e, fresh))
	return fresh
}

var t0 = time.Date(2021, 3, 9, 17, 45, 12, 250e6, time.UTC)

func sampleResp() *InfoResp {
	return &InfoResp{
		Name: "example.com",
		History: History{Records: []HistoryRecord{
			{Date: t0, Name: "example.com", Roid: "EXAMPLE1-REP", Op: OpCreate, ClID: "ClientX", ClName: "Client X Inc."},
			{Date: t0.Add(24 * time.Hour), Name: "example.com", NewName: "example.net", Roid: "EXAMPLE1-REP", Op: OpRename, ClID: "ClientX"},
			{Date: t0.Add(48 * time.Hour), Name: "example.net", Roid: "EXAMPLE1-REP", Op: OpTransfer, ClID: "ClientY"},
		}},
	}
}

// ---------- info command ----------

func TestInfoCmd_NameOrRoid(t *testing.T) {
	both := &InfoCmd{Type: TypeDomain, Name: "example.com", Roid: "EXAMPLE1-REP"}
	el, err := both.Encode()
	require.Nil(t, el)
	require.ErrorIs(t, err, eppmap.ErrInvalid)
	require.ErrorContains(t, err, "mutually exclusive")

	neither := &InfoCmd{Type: TypeDomain}
	_, err = neither.Encode()
	require.ErrorIs(t, err, eppmap.ErrInvalid)
	require.ErrorContains(t, err, "one of name or roid is required")

	got := roundTrip(t, NewInfoCmd("example.com"), &InfoCmd{})
	require.Empty(t, got.Roid)
	got = roundTrip(t, NewRoidInfoCmd("EXAMPLE1-REP"), &InfoCmd{})
	require.Empty(t, got.Name)
}

func TestInfoCmd_TypeDefault(t *testing.T) {
	cmd := &InfoCmd{Name: "example.com"}
	el, err := cmd.Encode()
	require.NoError(t, err)
	require.Equal(t, TypeDomain, NS.Text(el, elmType))
	require.Equal(t, TypeDomain, cmd.Type)

	roundTrip(t, &InfoCmd{Name: "example.com"}, &InfoCmd{})
	roundTrip(t, &InfoCmd{Roid: "EXAMPLE1-REP"}, &InfoCmd{})

	var c InfoCmd
	data := `<whowas:info xmlns:whowas="http://www.verisign.com/epp/whowas-1.0"><whowas:name>example.com</whowas:name></whowas:info>`
	require.NoError(t, eppmap.Unmarshal([]byte(data), &c))
	require.Equal(t, InfoCmd{Type: TypeDomain, Name: "example.com"}, c)

	_, err = (&InfoCmd{Type: "host", Name: "ns1.example.com"}).Encode()
	require.ErrorIs(t, err, eppmap.ErrInvalid)
}

// ---------- info response ----------

func TestInfoResp_RoundTripPreservesOrder(t *testing.T) {
	got := roundTrip(t, sampleResp(), &InfoResp{})
	ops := make([]string, len(got.History.Records))
	for i, r := range got.History.Records {
		ops[i] = r.Op
	}
	require.Equal(t, []string{OpCreate, OpRename, OpTransfer}, ops)
	require.True(t, got.History.Records[0].Date.Equal(t0))
}

func TestInfoResp_EmptyHistory(t *testing.T) {
	r := &InfoResp{Roid: "EXAMPLE1-REP"}
	el, err := r.Encode()
	require.NoError(t, err)
	require.True(t, NS.Has(el, elmHistory))
	roundTrip(t, r, &InfoResp{})

	var got InfoResp
	data := `<whowas:infData xmlns:whowas="http://www.verisign.com/epp/whowas-1.0"><whowas:roid>R-1</whowas:roid></whowas:infData>`
	require.NoError(t, eppmap.Unmarshal([]byte(data), &got))
	require.Empty(t, got.History.Records)
}

func TestHistoryRecord_Validate(t *testing.T) {
	r := sampleResp()
	r.History.Records[1] = HistoryRecord{Op: "merge"}
	err := r.Validate()
	var ve *eppmap.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Violations, 5)
	require.ErrorContains(t, err, "history: rec[1]: op")

	_, err = (&HistoryRecord{Date: t0, Name: "a.com", Roid: "R", Op: OpDelete}).Encode()
	require.ErrorContains(t, err, "clID is required")
}

func TestHistoryRecord_BadDate(t *testing.T) {
	var r HistoryRecord
	data := `<whowas:rec xmlns:whowas="http://www.verisign.com/epp/whowas-1.0"><whowas:date>yesterday</whowas:date></whowas:rec>`
	err := eppmap.Unmarshal([]byte(data), &r)
	var de *eppmap.DecodeError
	require.ErrorAs(t, err, &de)
}

// ---------- factory ----------

func TestFactory_Dispatch(t *testing.T) {
	el, err := NewInfoCmd("example.com").Encode()
	require.NoError(t, err)
	cmd, err := DecodeCommand(el)
	require.NoError(t, err)
	require.Equal(t, "info", cmd.Verb())

	el, err = sampleResp().Encode()
	require.NoError(t, err)
	resp, err := DecodeResponse(el)
	require.NoError(t, err)
	require.True(t, eppmap.Equal(sampleResp(), resp))

	var nm eppmap.ErrNoMapping
	_, err = NewCommand("check")
	require.ErrorAs(t, err, &nm)
	_, err = NewResponse("chkData")
	require.ErrorAs(t, err, &nm)

	other := eppmap.Namespace{URI: "urn:example:other", Prefix: "o"}.NewRoot("info")
	_, err = DecodeCommand(other)
	require.ErrorAs(t, err, &nm)
}

// ---------- clone ----------

func TestClone_Independent(t *testing.T) {
	r := sampleResp()
	c := r.Clone()
	require.True(t, eppmap.Equal(r, c))
	c.History.Records[0].Op = OpDelete
	require.Equal(t, OpCreate, r.History.Records[0].Op)
	require.Nil(t, (*InfoResp)(nil).Clone())
}

func TestString_RendersInvalid(t *testing.T) {
	s := (&InfoCmd{Name: "a.com", Roid: "R"}).String()
	require.Contains(t, s, "<whowas:name>a.com</whowas:name>")
	require.Contains(t, s, "<whowas:roid>R</whowas:roid>")
}

func label(s *string, c fuzz.Continue) {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789-."
	b := make([]byte, 1+c.Intn(32))
	for i := range b {
		b[i] = alphabet[c.Intn(len(alphabet))]
	}
	*s = string(b)
}

func TestFuzz_HistoryRoundTrip(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(0, 6).Funcs(label)
	ops := []string{OpCreate, OpDelete, OpTransfer, OpUpdate, OpRename}
	for i := 0; i < 200; i++ {
		var r InfoResp
		f.Fuzz(&r.Name)
		f.Fuzz(&r.History.Records)
		for j := range r.History.Records {
			r.History.Records[j].Date = t0.Add(time.Duration(i*j) * time.Minute)
			r.History.Records[j].Op = ops[(i+j)%len(ops)]
		}
		roundTrip(t, &r, &InfoResp{})
	}
}

func TestFuzz_InfoCmdRoundTrip(t *testing.T) {
	f := fuzz.New().Funcs(label)
	for i := 0; i < 200; i++ {
		var key string
		f.Fuzz(&key)
		cmd := &InfoCmd{Name: key}
		if i%2 == 1 {
			cmd = &InfoCmd{Roid: key}
		}
		roundTrip(t, cmd, &InfoCmd{})
	}
}
