package api

import (
	"encoding/json"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestDecodeCommand_JSONForms(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		wantX int
	}{
		{"Nested payload", `{"action":"move","payload":{"x":3,"y":1}}`, 3},
		{"Flat payload", `{"action":"move","x":5,"y":1}`, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := EncodingJSON.DecodeCommand([]byte(tt.frame))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if cmd.Action != "move" {
				t.Errorf("Action = %q", cmd.Action)
			}
			var p MovePayload
			if err := json.Unmarshal(cmd.Payload, &p); err != nil {
				t.Fatal(err)
			}
			if p.X != tt.wantX || p.Y != 1 {
				t.Errorf("Payload = %+v", p)
			}
		})
	}
}

func TestDecodeCommand_Errors(t *testing.T) {
	if _, err := EncodingJSON.DecodeCommand([]byte(`not json`)); err == nil {
		t.Error("Expected error for garbage frame")
	}
	if _, err := EncodingJSON.DecodeCommand([]byte(`{"payload":{}}`)); err != ErrEmptyAction {
		t.Errorf("Expected ErrEmptyAction, got %v", err)
	}
}

func TestMsgpack_RoundTripCommand(t *testing.T) {
	frame, err := msgpack.Marshal(map[string]interface{}{
		"action":  "attack",
		"payload": map[string]interface{}{"targetId": "goblin1"},
	})
	if err != nil {
		t.Fatal(err)
	}

	cmd, err := EncodingMsgpack.DecodeCommand(frame)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	var p EntityPayload
	if err := json.Unmarshal(cmd.Payload, &p); err != nil {
		t.Fatal(err)
	}
	if cmd.Action != "attack" || p.TargetID != "goblin1" {
		t.Errorf("Decoded %q %+v", cmd.Action, p)
	}
}

func TestMsgpack_EncodeUsesJSONNames(t *testing.T) {
	data, err := EncodingMsgpack.Encode(ServerMessage{Type: MsgPlayerCreated, PlayerID: "player1"})
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := msgpack.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["type"] != MsgPlayerCreated || decoded["playerId"] != "player1" {
		t.Errorf("Unexpected keys: %v", decoded)
	}
	if _, ok := decoded["state"]; ok {
		t.Error("Empty state must be omitted")
	}
}

func TestParseEncoding(t *testing.T) {
	if ParseEncoding("msgpack") != EncodingMsgpack || !EncodingMsgpack.Binary() {
		t.Error("msgpack not recognised")
	}
	if ParseEncoding("") != EncodingJSON || ParseEncoding("xml") != EncodingJSON {
		t.Error("Unknown encodings must fall back to JSON")
	}
}
