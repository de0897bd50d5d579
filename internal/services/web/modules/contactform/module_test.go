package contactform

import (
	"testing"

	"github.com/brookmere/contactsite/internal/services/web/routepath"
)

func TestModuleID(t *testing.T) {
	t.Parallel()

	if got := New(&fakeDeliverer{}).ID(); got != "contactform" {
		t.Fatalf("ID() = %q, want contactform", got)
	}
}

func TestMountRequiresDeliverer(t *testing.T) {
	t.Parallel()

	if _, err := New(nil).Mount(); err == nil {
		t.Fatal("Mount() with nil deliverer should error")
	}
}

func TestMountServesRoot(t *testing.T) {
	t.Parallel()

	mount, err := New(&fakeDeliverer{}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Root {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.Root)
	}
	if mount.Handler == nil {
		t.Fatal("mount handler is nil")
	}
}
