package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"smolclaw/cmd/version"
	"smolclaw/pkg/config"
)

func TestNewApp_Commands(t *testing.T) {
	t.Parallel()

	app := newApp(nil)

	want := map[string]bool{"config": false, "version": false}
	for _, c := range app.Commands {
		want[c.Name] = true
	}

	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestNewApp_Version(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	deps := &config.Dependencies{
		Stdout: func() io.Writer { return &out },
	}

	if err := newApp(deps).Run(context.Background(), []string{"smolclaw", "version"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := out.String(); got != version.Version+"\n" {
		t.Errorf("output = %q, want %q", got, version.Version+"\n")
	}
}
