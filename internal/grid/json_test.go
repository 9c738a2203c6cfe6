package grid

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeJSON(t *testing.T) {
	in := `{"name":"map","info":{"width":2,"height":2,"resolution":0.05},"data":[0,100,-1,255]}`
	msg, err := DecodeJSON(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if msg.Name != "map" || msg.Info.Width != 2 || msg.Info.Resolution != 0.05 {
		t.Fatalf("unexpected message %+v", msg)
	}
	if msg.Data[2] != Unknown || msg.Data[3] != Unknown {
		t.Fatalf("-1 and 255 should both decode as unknown, got %v", msg.Data)
	}
}

func TestDecodeJSONSizeMismatch(t *testing.T) {
	in := `{"name":"map","info":{"width":3,"height":2},"data":[0,1]}`
	if _, err := DecodeJSON(strings.NewReader(in)); !errors.Is(err, ErrDataSize) {
		t.Fatalf("expected ErrDataSize, got %v", err)
	}
}
