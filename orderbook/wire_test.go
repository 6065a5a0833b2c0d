package orderbook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeCommand_Limit(t *testing.T) {
	cmd, err := DecodeCommand([]byte(`{"kind":"Limit","id":"00000000000000000000000000000001","side":"Bid","price":100,"qty":10,"tif":"IOC"}`))
	require.NoError(t, err)
	require.Equal(t, KindLimit, cmd.Kind())
	require.Equal(t, Bid, cmd.Side())
	require.Equal(t, Price(100), cmd.Price())
	require.Equal(t, Qty(10), cmd.Qty())
	require.Equal(t, IOC, cmd.TimeInForce())
}

func TestDecodeCommand_MarketAndCancel(t *testing.T) {
	cmd, err := DecodeCommand([]byte(`{"kind":"Market","id":"00000000000000000000000000000002","side":"Ask","qty":5}`))
	require.NoError(t, err)
	require.Equal(t, KindMarket, cmd.Kind())

	cmd, err = DecodeCommand([]byte(`{"kind":"Cancel","id":"00000000000000000000000000000002"}`))
	require.NoError(t, err)
	require.Equal(t, KindCancel, cmd.Kind())
}

func TestDecodeCommand_RejectsUnknownKind(t *testing.T) {
	_, err := DecodeCommand([]byte(`{"kind":"Bogus","id":"00000000000000000000000000000001"}`))
	require.Error(t, err)
}

func TestDecodeCommand_EmptyIDMintsFresh(t *testing.T) {
	cmd, err := DecodeCommand([]byte(`{"kind":"Market","id":"","side":"Bid","qty":1}`))
	require.NoError(t, err)
	require.False(t, cmd.ID().IsZero())
}

func TestEncodeEvent_RoundTripsThroughJSON(t *testing.T) {
	evt := Filled{
		ID:        id(1),
		Side:      Bid,
		OrderKind: KindLimit,
		Fills:     []Fill{{OppositeOrderID: id(2), Price: 100, Qty: 5}},
	}

	data, err := EncodeEvent(evt)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "Filled", decoded["type"])
	require.Equal(t, id(1).String(), decoded["id"])
}

func TestEncodeEvent_Rejected(t *testing.T) {
	data, err := EncodeEvent(Rejected{ID: id(1), Reason: ReasonBadQuantity})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "Rejected", decoded["type"])
	require.Equal(t, "BadQuantity", decoded["reason"])
}

func TestCommandRoundTrip_DecodeThenExecute(t *testing.T) {
	e := NewEngine(BackendBTree)
	cmd, err := DecodeCommand([]byte(`{"kind":"Limit","id":"00000000000000000000000000000001","side":"Bid","price":100,"qty":10}`))
	require.NoError(t, err)

	evt := e.Execute(cmd)
	require.Equal(t, Placed{ID: cmd.ID()}, evt)
}
