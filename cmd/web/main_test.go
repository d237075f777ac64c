package main

import (
	"strings"
	"testing"
)

func TestRenderPage(t *testing.T) {
	page := renderPage(htmlPage, "play.example.org", "2222")

	if !strings.Contains(page, "ssh -p 2222 play.example.org") {
		t.Errorf("page should show the ssh command with port")
	}
	if strings.Contains(page, "{{.") {
		t.Errorf("page still has unfilled placeholders")
	}

	if got := renderPage("{{.SSHCommand}}", "host", "22"); got != "ssh host" {
		t.Errorf("default port should be omitted, got %q", got)
	}
}
