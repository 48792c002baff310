package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/mindguard/dashboard/internal/config"
	"github.com/mindguard/dashboard/internal/model"
	"github.com/mindguard/dashboard/internal/plot"
)

func TestShellStartAndClose(t *testing.T) {
	app := test.NewApp()
	shell := NewShell(app, plot.NewService())

	if err := shell.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	if shell.window == nil {
		t.Fatal("Start should create a window")
	}
	if shell.window.Title() != AppTitle {
		t.Errorf("Expected title %q, got %q", AppTitle, shell.window.Title())
	}
	if shell.window.Content() != shell.scroll {
		t.Error("Window content should be the scroll container")
	}
	if shell.view == nil || shell.view.Footer == nil {
		t.Error("Start should build the dashboard")
	}

	shell.Close()
	shell.Close()
}

func TestShellCloseBeforeStart(t *testing.T) {
	shell := NewShell(test.NewApp(), plot.NewService())

	if err := shell.Run(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Expected ErrNotStarted, got %v", err)
	}

	shell.Close()

	if err := shell.Run(); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}

func TestShellStartFailure(t *testing.T) {
	boom := errors.New("no backend")
	shell := NewShell(test.NewApp(), &stubRenderer{lineErr: boom})

	if err := shell.Start(); !errors.Is(err, boom) {
		t.Fatalf("Expected build error, got %v", err)
	}
	if shell.window != nil {
		t.Error("Failed start should not keep a window")
	}
	shell.Close()
}

func TestShellScrollCoversContent(t *testing.T) {
	app := test.NewApp()
	shell := NewShell(app, plot.NewService())
	if err := shell.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer shell.Close()

	shell.window.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))

	scroll := shell.scroll
	if scroll.Direction != container.ScrollVerticalOnly {
		t.Errorf("Expected a vertical scroll region, got direction %v", scroll.Direction)
	}

	content := scroll.Content
	minSize := content.MinSize()
	size := content.Size()
	if size.Width < minSize.Width || size.Height < minSize.Height {
		t.Errorf("Scroll content %v is smaller than its minimum %v", size, minSize)
	}
}

func TestShellOpensAtFixedSize(t *testing.T) {
	app := test.NewApp()
	first := NewShell(app, plot.NewService())
	if err := first.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if size := first.window.Canvas().Size(); size != fyne.NewSize(400, 800) {
		t.Errorf("Expected first window at 400x800, got %v", size)
	}

	first.window.Resize(fyne.NewSize(900, 1200))
	first.Close()

	second := NewShell(app, plot.NewService())
	if err := second.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer second.Close()

	if size := second.window.Canvas().Size(); size != fyne.NewSize(config.WindowWidth, config.WindowHeight) {
		t.Errorf("Expected second window at 400x800, got %v", size)
	}
}

func TestShellStartAfterClose(t *testing.T) {
	shell := NewShell(test.NewApp(), plot.NewService())
	if err := shell.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	shell.Close()

	if err := shell.Start(); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed from Start after Close, got %v", err)
	}
	if err := shell.Run(); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed from Run after Close, got %v", err)
	}
}

func TestShellFooterHover(t *testing.T) {
	shell := NewShell(test.NewApp(), plot.NewService())
	if err := shell.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer shell.Close()

	icons := shell.view.Footer.Icons
	icons[0].MouseIn(&desktop.MouseEvent{})

	for i, icon := range icons {
		want := model.IconStateDefault
		if i == 0 {
			want = model.IconStateHighlighted
		}
		if got := shell.hover.State(icon.id); got != want {
			t.Errorf("Icon %d: expected %s, got %s", i, want, got)
		}
	}
}
