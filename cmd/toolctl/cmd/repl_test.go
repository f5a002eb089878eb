package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestReplLoop_ExitWithoutRPC(t *testing.T) {
	for _, word := range []string{"exit", "quit"} {
		t.Run(word, func(t *testing.T) {
			var out strings.Builder
			calls := 0

			err := replLoop(context.Background(), strings.NewReader(word+"\n"), &out,
				func(ctx context.Context, line string) (string, error) {
					calls++
					return "", nil
				})

			if err != nil {
				t.Fatalf("replLoop() error = %v", err)
			}
			if calls != 0 {
				t.Errorf("%q must terminate without issuing a call, got %d calls", word, calls)
			}
			if !strings.Contains(out.String(), "Goodbye!") {
				t.Errorf("output %q missing farewell", out.String())
			}
		})
	}
}

func TestReplLoop_EndOfInput(t *testing.T) {
	var out strings.Builder
	err := replLoop(context.Background(), strings.NewReader(""), &out,
		func(ctx context.Context, line string) (string, error) {
			t.Fatal("no call expected on empty input")
			return "", nil
		})
	if err != nil {
		t.Fatalf("replLoop() error = %v", err)
	}
}

func TestReplLoop_ExecutesLines(t *testing.T) {
	var out strings.Builder
	var got []string

	input := "print(1)\n\nprint(2)\nexit\n"
	err := replLoop(context.Background(), strings.NewReader(input), &out,
		func(ctx context.Context, line string) (string, error) {
			got = append(got, line)
			return "ok:" + line, nil
		})

	if err != nil {
		t.Fatalf("replLoop() error = %v", err)
	}
	if len(got) != 2 || got[0] != "print(1)" || got[1] != "print(2)" {
		t.Errorf("executed lines = %v, want non-blank lines in order", got)
	}
	if !strings.Contains(out.String(), "ok:print(1)") || !strings.Contains(out.String(), "ok:print(2)") {
		t.Errorf("output %q missing results", out.String())
	}
}

func TestReplLoop_ContinuesAfterError(t *testing.T) {
	var out strings.Builder
	calls := 0

	input := "boom\nprint(1)\nexit\n"
	err := replLoop(context.Background(), strings.NewReader(input), &out,
		func(ctx context.Context, line string) (string, error) {
			calls++
			if line == "boom" {
				return "", errors.New("script execution failed with code 5")
			}
			return "2", nil
		})

	if err != nil {
		t.Fatalf("replLoop() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("loop should keep running after an error, got %d calls", calls)
	}
	if !strings.Contains(out.String(), "Error: script execution failed with code 5") {
		t.Errorf("output %q missing the per-line error", out.String())
	}
}

func TestReplLoop_EmptyResultNotPrinted(t *testing.T) {
	var out strings.Builder
	err := replLoop(context.Background(), strings.NewReader("pass\nexit\n"), &out,
		func(ctx context.Context, line string) (string, error) {
			return "", nil
		})
	if err != nil {
		t.Fatalf("replLoop() error = %v", err)
	}

	want := ">>> >>> Goodbye!\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q (empty results stay silent)", out.String(), want)
	}
}
