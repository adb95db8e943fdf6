package protocol

import (
	"encoding/json"
	"testing"

	"riftlane/server/internal/content"
)

func TestDecodeClientFrameDefaultsVersion(t *testing.T) {
	frame, err := DecodeClientFrame([]byte(`{"type":"PING","timestamp":123}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if frame.Ver != Version {
		t.Fatalf("ver = %d, want %d", frame.Ver, Version)
	}
	if frame.Type != TypePing || frame.Timestamp != 123 {
		t.Fatalf("frame = %+v", frame)
	}
}

func TestDecodeClientFrameRejectsWrongVersion(t *testing.T) {
	_, err := DecodeClientFrame([]byte(`{"ver":2,"type":"PING"}`))
	if err == nil {
		t.Fatal("version 2 accepted")
	}
}

func TestDecodeClientFrameRejectsEmptyInput(t *testing.T) {
	_, err := DecodeClientFrame([]byte(`{"ver":1,"type":"INPUT"}`))
	if err == nil {
		t.Fatal("INPUT frame without body accepted")
	}
}

func TestDecodeInputFrame(t *testing.T) {
	raw := `{"ver":1,"type":"INPUT","input":{"seq":7,"type":"MOVE","targetX":1500,"targetY":0}}`
	frame, err := DecodeClientFrame([]byte(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	in := frame.Input
	if in.Seq != 7 || in.Type != InputMove {
		t.Fatalf("input = %+v", in)
	}
	if in.TargetX == nil || *in.TargetX != 1500 {
		t.Fatal("targetX lost")
	}
	// Zero must stay distinguishable from absent.
	if in.TargetY == nil || *in.TargetY != 0 {
		t.Fatal("explicit zero targetY decoded as absent")
	}
}

func TestSlotRefBothForms(t *testing.T) {
	var ability SlotRef
	if err := json.Unmarshal([]byte(`"Q"`), &ability); err != nil {
		t.Fatalf("unmarshal string slot: %v", err)
	}
	if ability.Ability != content.SlotQ || ability.Item != -1 {
		t.Fatalf("ability slot = %+v", ability)
	}

	var item SlotRef
	if err := json.Unmarshal([]byte(`3`), &item); err != nil {
		t.Fatalf("unmarshal numeric slot: %v", err)
	}
	if item.Ability != "" || item.Item != 3 {
		t.Fatalf("item slot = %+v", item)
	}

	for _, ref := range []SlotRef{ability, item} {
		data, err := json.Marshal(ref)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var back SlotRef
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if back != ref {
			t.Fatalf("round trip %+v -> %s -> %+v", ref, data, back)
		}
	}
}

func TestEncodersStampVersionAndType(t *testing.T) {
	cases := []struct {
		name     string
		encode   func() ([]byte, error)
		wantType string
	}{
		{"state update", func() ([]byte, error) { return EncodeStateUpdate(StateUpdate{Tick: 9}) }, TypeStateUpdate},
		{"full state", func() ([]byte, error) { return EncodeFullState(FullState{Tick: 9}) }, TypeFullState},
		{"game start", func() ([]byte, error) { return EncodeGameStart(GameStart{GameID: "g"}) }, TypeGameStart},
		{"game end", func() ([]byte, error) { return EncodeGameEnd(GameEnd{}) }, TypeGameEnd},
		{"pong", func() ([]byte, error) { return EncodePong(Pong{}) }, TypePong},
		{"error", func() ([]byte, error) { return EncodeError("nope") }, TypeError},
		{"event", func() ([]byte, error) { return EncodeEvent("PING", nil) }, TypeEvent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := tc.encode()
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			var head struct {
				Ver  int    `json:"ver"`
				Type string `json:"type"`
			}
			if err := json.Unmarshal(data, &head); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if head.Ver != Version {
				t.Fatalf("ver = %d, want %d", head.Ver, Version)
			}
			if head.Type != tc.wantType {
				t.Fatalf("type = %q, want %q", head.Type, tc.wantType)
			}
		})
	}
}

func TestFullStateEventsNeverNull(t *testing.T) {
	data, err := EncodeFullState(FullState{Tick: 1})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(raw["events"]) != "[]" {
		t.Fatalf("events = %s, want []", raw["events"])
	}
}
