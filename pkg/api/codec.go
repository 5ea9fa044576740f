package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Encoding - формат кадров одного соединения
type Encoding string

const (
	EncodingJSON    Encoding = "json"
	EncodingMsgpack Encoding = "msgpack"
)

var ErrEmptyAction = errors.New("action is required")

// ParseEncoding возвращает JSON для пустого или неизвестного значения
func ParseEncoding(s string) Encoding {
	if Encoding(s) == EncodingMsgpack {
		return EncodingMsgpack
	}
	return EncodingJSON
}

// Binary сообщает, нужно ли слать кадры как websocket BinaryMessage
func (e Encoding) Binary() bool {
	return e == EncodingMsgpack
}

// Encode сериализует исходящее сообщение. msgpack использует те же имена полей, что и JSON.
func (e Encoding) Encode(msg ServerMessage) ([]byte, error) {
	if e != EncodingMsgpack {
		return json.Marshal(msg)
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	enc.SetOmitEmpty(true)
	if err := enc.Encode(&msg); err != nil {
		return nil, fmt.Errorf("msgpack encode: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeCommand разбирает входящий кадр. Если Payload не передан,
// полезной нагрузкой считается весь кадр (плоская форма команды).
func (e Encoding) DecodeCommand(data []byte) (ClientCommand, error) {
	var cmd ClientCommand

	if e == EncodingMsgpack {
		var frame map[string]interface{}
		if err := msgpack.Unmarshal(data, &frame); err != nil {
			return cmd, fmt.Errorf("msgpack decode: %w", err)
		}
		action, _ := frame["action"].(string)
		cmd.Action = action

		body := interface{}(frame)
		if p, ok := frame["payload"]; ok && p != nil {
			body = p
		}
		raw, err := json.Marshal(body)
		if err != nil {
			return cmd, fmt.Errorf("msgpack payload: %w", err)
		}
		cmd.Payload = raw
	} else {
		if err := json.Unmarshal(data, &cmd); err != nil {
			return cmd, fmt.Errorf("json decode: %w", err)
		}
		if len(cmd.Payload) == 0 || string(cmd.Payload) == "null" {
			cmd.Payload = json.RawMessage(data)
		}
	}

	if cmd.Action == "" {
		return cmd, ErrEmptyAction
	}
	return cmd, nil
}
