package notify

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/pixelpaint/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
}

func recorder() (*[]sent, Sender) {
	var got []sent
	return &got, func(title, body string, opts platform.Options) error {
		got = append(got, sent{title, body, opts})
		return nil
	}
}

func TestDisabledEventsAreSilent(t *testing.T) {
	got, send := recorder()
	n := NewWithSender(DefaultPreferences(), send)
	n.Save("a.png")
	n.Copy("")
	n.Error(errors.New("boom"))
	if len(*got) != 0 {
		t.Fatalf("expected no notifications, got %+v", *got)
	}
}

func TestSaveUsesFileAsIcon(t *testing.T) {
	got, send := recorder()
	n := NewWithSender(DefaultPreferences(), send)
	n.Enable(EventSave, true)

	path := filepath.Join(t.TempDir(), "art.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	n.Save(path)
	if len(*got) != 1 {
		t.Fatalf("expected one notification, got %d", len(*got))
	}
	msg := (*got)[0]
	if msg.title != "PixelPaint" || !strings.HasPrefix(msg.body, "Saved ") || !strings.HasSuffix(msg.body, "art.png") {
		t.Fatalf("unexpected notification %+v", msg)
	}
	if msg.opts.IconPath != path {
		t.Fatalf("icon = %q, want %q", msg.opts.IconPath, path)
	}
}

func TestErrorIsUrgent(t *testing.T) {
	got, send := recorder()
	n := NewWithSender(DefaultPreferences(), send)
	n.Enable(EventError, true)
	n.Error(errors.New("load art.png: permission denied"))
	if len(*got) != 1 || !(*got)[0].opts.Urgent || (*got)[0].body != "load art.png: permission denied" {
		t.Fatalf("unexpected notifications %+v", *got)
	}
}

func TestCopyDefaultDetail(t *testing.T) {
	got, send := recorder()
	n := NewWithSender(DefaultPreferences(), send)
	n.Enable(EventCopy, true)
	n.Copy(" ")
	if len(*got) != 1 || (*got)[0].body != "Copied image to clipboard" {
		t.Fatalf("unexpected notifications %+v", *got)
	}
}

func TestNilNotifier(t *testing.T) {
	var n *Notifier
	n.Enable(EventSave, true)
	n.Save("x.png")
	n.Error(errors.New("x"))
}
