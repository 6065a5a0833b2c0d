package orderbook

import (
	"encoding/json"
	"fmt"
)

// wireCommand is the JSON-on-the-wire shape for Command; eventToWire builds
// the JSON shape for Event. The core types themselves (Command's unexported fields,
// Event's closed interface) are deliberately not JSON-tagged — encoding is
// a binding concern, not a core one (spec.md §6: "a language binding wraps
// execute ... it performs no matching logic of its own"). This file is
// that binding's shared vocabulary, used by cmd/lobcli.
type wireCommand struct {
	Kind        string `json:"kind"`
	ID          string `json:"id"`
	Side        string `json:"side,omitempty"`
	Price       Price  `json:"price,omitempty"`
	Qty         Qty    `json:"qty,omitempty"`
	TimeInForce string `json:"tif,omitempty"`
}

// DecodeCommand parses one line of the lobcli command script format into a
// Command.
func DecodeCommand(data []byte) (Command, error) {
	var w wireCommand
	if err := json.Unmarshal(data, &w); err != nil {
		return Command{}, err
	}

	id, err := parseOrderID(w.ID)
	if err != nil {
		return Command{}, err
	}

	switch w.Kind {
	case "Cancel":
		return Cancel(id), nil
	case "Limit":
		side, err := parseSide(w.Side)
		if err != nil {
			return Command{}, err
		}
		tif, err := parseTimeInForce(w.TimeInForce)
		if err != nil {
			return Command{}, err
		}
		return Limit(id, side, w.Price, w.Qty, tif), nil
	case "Market":
		side, err := parseSide(w.Side)
		if err != nil {
			return Command{}, err
		}
		return Market(id, side, w.Qty), nil
	default:
		return Command{}, fmt.Errorf("orderbook: unknown command kind %q", w.Kind)
	}
}

func parseOrderID(s string) (OrderID, error) {
	if s == "" {
		return NewOrderID(), nil
	}
	id, err := parseUUIDOrHex(s)
	if err != nil {
		return OrderID{}, fmt.Errorf("orderbook: invalid order id %q: %w", s, err)
	}
	return id, nil
}

func parseSide(s string) (Side, error) {
	switch s {
	case "Bid":
		return Bid, nil
	case "Ask":
		return Ask, nil
	default:
		return SideUnspecified, fmt.Errorf("orderbook: invalid side %q (want Bid or Ask)", s)
	}
}

func parseTimeInForce(s string) (TimeInForce, error) {
	switch s {
	case "", "GTC":
		return GTC, nil
	case "IOC":
		return IOC, nil
	case "FOK":
		return FOK, nil
	case "GTX":
		return GTX, nil
	default:
		return GTC, fmt.Errorf("orderbook: invalid time-in-force %q", s)
	}
}

// EncodeEvent renders an Event in the same wire vocabulary DecodeCommand
// reads, for cmd/lobcli's output stream.
func EncodeEvent(evt Event) ([]byte, error) {
	return json.Marshal(eventToWire(evt))
}

func eventToWire(evt Event) map[string]any {
	switch e := evt.(type) {
	case Filled:
		return map[string]any{
			"type": "Filled", "id": e.ID.String(), "side": e.Side.String(),
			"orderKind": e.OrderKind.String(), "fills": wireFills(e.Fills),
		}
	case PartiallyFilled:
		return map[string]any{
			"type": "PartiallyFilled", "id": e.ID.String(), "side": e.Side.String(),
			"orderKind": e.OrderKind.String(), "fills": wireFills(e.Fills),
			"qtyRemaining": e.QtyRemaining,
		}
	case Placed:
		return map[string]any{"type": "Placed", "id": e.ID.String()}
	case Canceled:
		return map[string]any{"type": "Canceled", "id": e.ID.String()}
	case Rejected:
		return map[string]any{"type": "Rejected", "id": e.ID.String(), "reason": string(e.Reason)}
	default:
		return map[string]any{"type": "Unknown"}
	}
}

func wireFills(fills []Fill) []map[string]any {
	out := make([]map[string]any, 0, len(fills))
	for _, f := range fills {
		out = append(out, map[string]any{
			"oppositeOrderId": f.OppositeOrderID.String(),
			"price":           f.Price,
			"qty":             f.Qty,
		})
	}
	return out
}
