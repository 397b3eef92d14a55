package yamlutil

import (
	"bytes"
	"errors"
	"testing"
)

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("parses into struct", func(t *testing.T) {
		t.Parallel()

		var out struct {
			Addr    string `yaml:"addr"`
			Workers int    `yaml:"workers"`
		}
		data := []byte("addr: \":8080\"\nworkers: 4\n")
		if err := Unmarshal(data, &out); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if out.Addr != ":8080" || out.Workers != 4 {
			t.Errorf("got %+v", out)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()

		var out map[string]any
		if err := Unmarshal(nil, &out); !errors.Is(err, ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		if err := Unmarshal([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()

		var out map[string]any
		data := bytes.Repeat([]byte("a"), MaxInputSize+1)
		if err := Unmarshal(data, &out); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("malformed input", func(t *testing.T) {
		t.Parallel()

		var out map[string]any
		if err := Unmarshal([]byte("a: [1, 2"), &out); err == nil {
			t.Error("want parse error for malformed input")
		}
	})
}
