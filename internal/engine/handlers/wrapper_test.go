package handlers

import (
	"encoding/json"
	"errors"
	"testing"

	"realm-server/pkg/api"
)

func TestWithPayload(t *testing.T) {
	var got api.EntityPayload
	h := WithPayload(func(ctx Context, p api.EntityPayload) (Result, error) {
		got = p
		return Changed("ok"), nil
	})

	res, err := h(Context{}, json.RawMessage(`{"targetId":"orc1"}`))
	if err != nil || !res.Changed || got.TargetID != "orc1" {
		t.Fatalf("Unexpected result %+v err=%v got=%+v", res, err, got)
	}

	if _, err := h(Context{}, json.RawMessage(`{"targetId":`)); !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}

	_, err = h(Context{}, json.RawMessage(`{}`))
	if err == nil || errors.Is(err, ErrMalformed) {
		t.Errorf("Validation failure must be a plain rejection, got %v", err)
	}
}

func TestWithEmptyPayload(t *testing.T) {
	called := false
	h := WithEmptyPayload(func(ctx Context) (Result, error) {
		called = true
		return EmptyResult(), nil
	})
	if _, err := h(Context{}, json.RawMessage(`garbage`)); err != nil || !called {
		t.Errorf("Empty handler must ignore the payload, err=%v called=%v", err, called)
	}
}
