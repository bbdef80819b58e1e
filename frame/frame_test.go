package frame

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/datum-labs/eppmap"
	"github.com/datum-labs/eppmap/defreg"
	"github.com/datum-labs/eppmap/registry"
	"github.com/datum-labs/eppmap/whowas"
)

func fixedTRID() string { return "ABC-12345" }

var qDate = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

// ---------- commands ----------

func TestCommand_RoundTrip(t *testing.T) {
	c := New(WithClientTRID(fixedTRID))
	data, err := c.EncodeCommand(&Command{Object: registry.NewInfoCmd("com")})
	require.NoError(t, err)

	s := string(data)
	require.Contains(t, s, `<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">`)
	require.Contains(t, s, `<registry:info xmlns:registry="http://www.verisign.com/epp/registry-1.0">`)
	require.Contains(t, s, `<clTRID>ABC-12345</clTRID>`)

	got, err := c.DecodeCommand(data)
	require.NoError(t, err)
	require.Equal(t, "ABC-12345", got.ClientTRID)
	require.True(t, eppmap.Equal(registry.NewInfoCmd("com"), got.Object))
}

func TestCommand_GeneratesClientTRID(t *testing.T) {
	c := New()
	data, err := c.EncodeCommand(&Command{Object: whowas.NewInfoCmd("example.com")})
	require.NoError(t, err)
	got, err := c.DecodeCommand(data)
	require.NoError(t, err)
	_, err = uuid.Parse(got.ClientTRID)
	require.NoError(t, err)
}

func TestCommand_TransferOp(t *testing.T) {
	c := New(WithClientTRID(fixedTRID), WithIndent(-1))
	tr := defreg.NewTransferCmd(defreg.OpApprove, "EXAMPLE1-REP")
	data, err := c.EncodeCommand(&Command{Object: tr})
	require.NoError(t, err)
	require.Contains(t, string(data), `<transfer op="approve"><defReg:transfer`)

	got, err := c.DecodeCommand(data)
	require.NoError(t, err)
	require.IsType(t, &defreg.TransferCmd{}, got.Object)
	require.Equal(t, defreg.OpApprove, got.Object.(*defreg.TransferCmd).Op)

	_, err = c.EncodeCommand(&Command{Object: defreg.NewTransferCmd("", "EXAMPLE1-REP")})
	require.ErrorIs(t, err, eppmap.ErrInvalid)
	require.ErrorContains(t, err, "transfer/@op is required")
}

func TestCommand_Invalid(t *testing.T) {
	c := New()
	_, err := c.EncodeCommand(&Command{})
	require.ErrorIs(t, err, eppmap.ErrInvalid)

	_, err = c.EncodeCommand(&Command{Object: &whowas.InfoCmd{}})
	require.ErrorIs(t, err, eppmap.ErrInvalid)
	require.ErrorContains(t, err, "info: one of name or roid is required")
}

const frameHead = `<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><command>`

func TestDecodeCommand_Errors(t *testing.T) {
	c := New()

	_, err := c.DecodeCommand([]byte(`<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><hello/></epp>`))
	require.ErrorIs(t, err, ErrNotFrame)

	_, err = c.DecodeCommand([]byte(frameHead + `<info><x:info xmlns:x="urn:example:x"/></info></command></epp>`))
	var nm eppmap.ErrNoMapping
	require.ErrorAs(t, err, &nm)
	require.Equal(t, "no such mapping: {urn:example:x}info", err.Error())

	_, err = c.DecodeCommand([]byte(frameHead + `<check><whowas:info xmlns:whowas="http://www.verisign.com/epp/whowas-1.0">` +
		`<whowas:name>a.com</whowas:name></whowas:info></check></command></epp>`))
	var de *eppmap.DecodeError
	require.ErrorAs(t, err, &de)

	_, err = c.DecodeCommand([]byte(frameHead + `<clTRID>x</clTRID></command></epp>`))
	require.ErrorAs(t, err, &de)
}

func TestDecodeCommand_StrictValidates(t *testing.T) {
	data := []byte(frameHead + `<info><whowas:info xmlns:whowas="http://www.verisign.com/epp/whowas-1.0">` +
		`<whowas:name>a.com</whowas:name><whowas:roid>R-1</whowas:roid></whowas:info></info>` +
		`<clTRID>ABC</clTRID></command></epp>`)

	got, err := New().DecodeCommand(data)
	require.NoError(t, err)
	require.Equal(t, "R-1", got.Object.(*whowas.InfoCmd).Roid)

	_, err = New(WithStrictDecode(true)).DecodeCommand(data)
	require.ErrorIs(t, err, eppmap.ErrInvalid)
}

// ---------- responses ----------

func sampleResponse() *Response {
	return &Response{
		Results: []Result{{Code: CodeSuccess, Msg: "Command completed successfully", Lang: "en"}},
		ResData: &whowas.InfoResp{Name: "example.com", History: whowas.History{Records: []whowas.HistoryRecord{
			{Date: qDate, Name: "example.com", Roid: "EXAMPLE1-REP", Op: whowas.OpCreate, ClID: "ClientX"},
		}}},
		TransID: TransID{ClientTRID: "ABC-12345", ServerTRID: "54322-XYZ"},
	}
}

func TestResponse_RoundTrip(t *testing.T) {
	c := New()
	data, err := c.EncodeResponse(sampleResponse())
	require.NoError(t, err)
	require.Contains(t, string(data), `<result code="1000">`)

	got, err := c.DecodeResponse(data)
	require.NoError(t, err)
	require.True(t, got.Success())
	require.Equal(t, sampleResponse().Results, got.Results)
	require.Equal(t, sampleResponse().TransID, got.TransID)
	require.True(t, eppmap.Equal(sampleResponse().ResData, got.ResData))
}

func TestResponse_PollMessage(t *testing.T) {
	r := &Response{
		Results: []Result{{Code: CodeAckToDequeue, Msg: "Command completed successfully; ack to dequeue", Lang: "en"}},
		MsgQ:    &MsgQueue{Count: 5, ID: "12345", QDate: &qDate, Msg: "Pending action completed successfully."},
		ResData: &defreg.PendActionMsg{Name: "doe", PaResult: true, ClientTRID: "ABC-12345", ServerTRID: "54321-XYZ", PaDate: qDate},
		TransID: TransID{ServerTRID: "54322-XYZ"},
	}
	c := New()
	data, err := c.EncodeResponse(r)
	require.NoError(t, err)

	got, err := c.DecodeResponse(data)
	require.NoError(t, err)
	require.Equal(t, 5, got.MsgQ.Count)
	require.Equal(t, "12345", got.MsgQ.ID)
	require.True(t, got.MsgQ.QDate.Equal(qDate))
	require.True(t, eppmap.Equal(r.ResData, got.ResData))
}

func TestResponse_WithoutResData(t *testing.T) {
	r := &Response{
		Results: []Result{{Code: CodeObjectNotExist, Msg: "Object does not exist", Lang: "en"}},
		TransID: TransID{ServerTRID: "S-1"},
	}
	c := New()
	data, err := c.EncodeResponse(r)
	require.NoError(t, err)
	got, err := c.DecodeResponse(data)
	require.NoError(t, err)
	require.Nil(t, got.ResData)
	require.False(t, got.Success())
}

func TestResponse_LiteralDefaults(t *testing.T) {
	c := New(WithIndent(-1))
	r := &Response{
		Results: []Result{{Code: CodeSuccess, Msg: "ok"}, {Code: CodeSuccess, Msg: "d'accord", Lang: "fr"}},
		ResData: &whowas.InfoResp{Name: "example.com"},
		TransID: TransID{ServerTRID: "S-1"},
	}
	data, err := c.EncodeResponse(r)
	require.NoError(t, err)
	require.Contains(t, string(data), `<msg>ok</msg>`)
	require.Contains(t, string(data), `<msg lang="fr">`)
	require.Equal(t, "en", r.Results[0].Lang)

	got, err := c.DecodeResponse(data)
	require.NoError(t, err)
	require.Equal(t, r.Results, got.Results)
	require.True(t, eppmap.Equal(r.ResData, got.ResData))
}

func TestCommand_LiteralRoundTrip(t *testing.T) {
	c := New(WithClientTRID(fixedTRID))
	cmd := &Command{Object: &whowas.InfoCmd{Name: "example.com"}}
	data, err := c.EncodeCommand(cmd)
	require.NoError(t, err)
	require.Equal(t, "ABC-12345", cmd.ClientTRID)

	got, err := c.DecodeCommand(data)
	require.NoError(t, err)
	require.Equal(t, cmd.ClientTRID, got.ClientTRID)
	require.True(t, eppmap.Equal(cmd.Object, got.Object), eppmap.Diff(cmd.Object, got.Object))
}

func TestResponse_Validate(t *testing.T) {
	err := (&Response{Results: []Result{{Code: 42}}}).Validate()
	var ve *eppmap.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Violations, 3)
}

// ---------- auto-detect ----------

func TestDecode_DetectsFramesAndBareElements(t *testing.T) {
	c := New(WithClientTRID(fixedTRID))

	cmdData, err := c.EncodeCommand(&Command{Object: registry.NewInfoAllCmd()})
	require.NoError(t, err)
	v, err := c.Decode(cmdData)
	require.NoError(t, err)
	require.IsType(t, &Command{}, v)

	respData, err := c.EncodeResponse(sampleResponse())
	require.NoError(t, err)
	v, err = c.Decode(respData)
	require.NoError(t, err)
	require.IsType(t, &Response{}, v)

	bare, err := eppmap.Marshal(defreg.NewCheckCmd("doe"))
	require.NoError(t, err)
	v, err = c.Decode(bare)
	require.NoError(t, err)
	require.IsType(t, &defreg.CheckCmd{}, v)

	bare, err = eppmap.Marshal(sampleResponse().ResData)
	require.NoError(t, err)
	v, err = c.Decode(bare)
	require.NoError(t, err)
	require.IsType(t, &whowas.InfoResp{}, v)

	out, err := c.Encode(v)
	require.NoError(t, err)
	require.Equal(t, string(bare), string(out))
}

func TestCodec_LogsDispatch(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := New(WithLogger(log), WithClientTRID(fixedTRID))

	data, err := c.EncodeCommand(&Command{Object: registry.NewCheckCmd("com", "net")})
	require.NoError(t, err)
	_, err = c.DecodeCommand(data)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "encoded command")
	require.Contains(t, out, "dispatch command")
	require.True(t, strings.Contains(out, registry.NS.URI))
}

func TestNamespaces(t *testing.T) {
	uris := make([]string, len(Namespaces))
	for i, ns := range Namespaces {
		uris[i] = ns.URI
	}
	require.ElementsMatch(t, []string{
		"http://www.verisign.com/epp/registry-1.0",
		"http://www.verisign.com/epp/defReg-1.0",
		"http://www.verisign.com/epp/whowas-1.0",
	}, uris)
}
