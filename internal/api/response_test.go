package api

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestStatusCodesAreStringified(t *testing.T) {
	cases := []struct {
		resp *Response
		want string
	}{
		{OK("done", nil), "200"},
		{BadRequest("bad"), "400"},
		{Unauthorized("no"), "401"},
		{NotFound("missing"), "404"},
		{Conflict("dup"), "409"},
		{ServerError(errors.New("boom")), "500"},
	}
	for _, tc := range cases {
		if tc.resp.StatusCode != tc.want {
			t.Errorf("StatusCode = %q, want %q", tc.resp.StatusCode, tc.want)
		}
	}
}

func TestCodeRoundTrip(t *testing.T) {
	if got := NotFound("x").Code(); got != 404 {
		t.Errorf("Code() = %d, want 404", got)
	}
	malformed := &Response{StatusCode: "teapot"}
	if got := malformed.Code(); got != 0 {
		t.Errorf("malformed Code() = %d, want 0", got)
	}
}

func TestConflictCarriesErrorList(t *testing.T) {
	resp := Conflict("Title already exists", "Title already exist")
	if len(resp.Error) != 1 || resp.Error[0] != "Title already exist" {
		t.Errorf("Error = %v", resp.Error)
	}
}

func TestServerErrorUsesErrorText(t *testing.T) {
	resp := ServerError(errors.New("pq: connection refused"))
	if resp.Message != "pq: connection refused" {
		t.Errorf("Message = %q", resp.Message)
	}
	if ServerError(nil).Message != "internal server error" {
		t.Error("nil error should fall back to a generic message")
	}
}

func TestWireKeys(t *testing.T) {
	raw, err := json.Marshal(OK("hello", []int{1}))
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"statusCode":"200"`, `"message":"hello"`, `"data":[1]`} {
		if !strings.Contains(string(raw), key) {
			t.Errorf("marshaled envelope missing %s: %s", key, raw)
		}
	}
}
