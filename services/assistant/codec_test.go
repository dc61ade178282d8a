package assistant

import (
	"bytes"
	"testing"
)

func TestDecodeImage(t *testing.T) {
	want := []byte("hello")

	t.Run("raw base64", func(t *testing.T) {
		got, err := decodeImage("aGVsbG8=")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("got %q", got)
		}
	})

	t.Run("data URI prefix", func(t *testing.T) {
		got, err := decodeImage("data:image/jpeg;base64,aGVsbG8=")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("got %q", got)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		if _, err := decodeImage("***"); err == nil {
			t.Fatal("expected an error")
		}
	})
}
