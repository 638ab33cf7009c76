package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggers(t *testing.T) {
	var text bytes.Buffer
	logger, err := newTextLogger("warn", &text)
	if err != nil {
		t.Fatalf("text logger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shop closed", "action", "buy_phone")
	out := text.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "level=WARN") || !strings.Contains(out, "action=buy_phone") {
		t.Fatalf("got text log %q", out)
	}

	var js bytes.Buffer
	logger, err = newLogger("info", &js)
	if err != nil {
		t.Fatalf("json logger: %v", err)
	}
	logger.Info("listening")
	if !strings.HasPrefix(js.String(), "{") || !strings.Contains(js.String(), `"msg":"listening"`) {
		t.Fatalf("got json log %q", js.String())
	}

	if _, err := newTextLogger("loud", &text); err == nil {
		t.Fatalf("expected bad level to fail")
	}
}
