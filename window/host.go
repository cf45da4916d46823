//go:build windows

package window

import (
	"fmt"
	"image"
	"sync"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/rpdg/taskbarclock/overlay"
)

const (
	overlayClassName = "TaskbarClockOverlay"
	repaintTimerID   = 1
	repaintInterval  = 1000 // ms
)

// GDI types for SetDIBitsToDevice.
const (
	DIB_RGB_COLORS = 0
	BI_RGB         = 0
)

type BITMAPINFOHEADER struct {
	BiSize          uint32
	BiWidth         int32
	BiHeight        int32
	BiPlanes        uint16
	BiBitCount      uint16
	BiCompression   uint32
	BiSizeImage     uint32
	BiXPelsPerMeter int32
	BiYPelsPerMeter int32
	BiClrUsed       uint32
	BiClrImportant  uint32
}

type nativeOverlay struct {
	w        *overlay.Window
	tracking bool // TrackMouseEvent armed for WM_MOUSELEAVE
	frame    *image.RGBA
	bgra     []byte
}

var (
	registerOnce sync.Once
	registerErr  error

	overlaysMu sync.Mutex
	overlays   = map[win.HWND]*nativeOverlay{}

	overlayWndProc = windows.NewCallback(wndProc)
)

func registerOverlayClass() error {
	registerOnce.Do(func() {
		hInst := win.GetModuleHandle(nil)
		wc := win.WNDCLASSEX{
			Style:       win.CS_HREDRAW | win.CS_VREDRAW,
			LpfnWndProc: overlayWndProc,
			HInstance:   hInst,
			HCursor:     win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_ARROW)),
			// Black turns transparent once the window is a taskbar child.
			HbrBackground: win.HBRUSH(win.GetStockObject(win.BLACK_BRUSH)),
			LpszClassName: utf16Ptr(overlayClassName),
		}
		wc.CbSize = uint32(unsafe.Sizeof(wc))
		if win.RegisterClassEx(&wc) == 0 {
			registerErr = fmt.Errorf("RegisterClassEx(%s) failed", overlayClassName)
		}
	})
	return registerErr
}

// CreateOverlayWindow creates the hidden popup backing w and starts its
// repaint timer. The window becomes visible on its first SetPosSize.
func CreateOverlayWindow(w *overlay.Window) (uintptr, error) {
	if err := registerOverlayClass(); err != nil {
		return 0, err
	}

	size := w.TargetSize()
	hwnd := win.CreateWindowEx(
		win.WS_EX_TOOLWINDOW,
		utf16Ptr(overlayClassName),
		utf16Ptr(""),
		win.WS_POPUP,
		0, 0, size.Width, size.Height,
		0, 0, win.GetModuleHandle(nil), nil,
	)
	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowEx(%s) failed", overlayClassName)
	}

	overlaysMu.Lock()
	overlays[hwnd] = &nativeOverlay{w: w}
	overlaysMu.Unlock()

	ProcSetTimer.Call(uintptr(hwnd), repaintTimerID, repaintInterval, 0)
	return uintptr(hwnd), nil
}

// DestroyOverlayWindow destroys a window made by CreateOverlayWindow.
func DestroyOverlayWindow(hwnd uintptr) error {
	if !win.DestroyWindow(win.HWND(hwnd)) {
		return fmt.Errorf("DestroyWindow(%#x) failed", hwnd)
	}
	return nil
}

func lookupOverlay(hwnd win.HWND) *nativeOverlay {
	overlaysMu.Lock()
	defer overlaysMu.Unlock()
	return overlays[hwnd]
}

func wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	o := lookupOverlay(hwnd)
	if o == nil {
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	}

	switch msg {
	case win.WM_MOUSEMOVE:
		if !o.tracking {
			tme := win.TRACKMOUSEEVENT{DwFlags: win.TME_LEAVE, HwndTrack: hwnd}
			tme.CbSize = uint32(unsafe.Sizeof(tme))
			o.tracking = win.TrackMouseEvent(&tme)
			o.w.HandlePointer(overlay.PointerEnter)
		}
		return 0

	case win.WM_MOUSELEAVE:
		o.tracking = false
		o.w.HandlePointer(overlay.PointerLeave)
		return 0

	case win.WM_LBUTTONDOWN:
		o.w.HandlePointer(overlay.LeftDown)
		return 0

	case win.WM_LBUTTONUP:
		o.w.HandlePointer(overlay.LeftUp)
		return 0

	case win.WM_TIMER:
		win.InvalidateRect(hwnd, nil, false)
		return 0

	case win.WM_ERASEBKGND:
		// WM_PAINT covers the whole client area.
		return 1

	case win.WM_PAINT:
		o.paint(hwnd)
		return 0

	case win.WM_DESTROY:
		ProcKillTimer.Call(uintptr(hwnd), repaintTimerID)
		overlaysMu.Lock()
		delete(overlays, hwnd)
		remaining := len(overlays)
		overlaysMu.Unlock()
		if remaining == 0 {
			win.PostQuitMessage(0)
		}
		return 0
	}
	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

// paint renders the full frame off screen and copies it in one blit.
func (o *nativeOverlay) paint(hwnd win.HWND) {
	var ps win.PAINTSTRUCT
	hdc := win.BeginPaint(hwnd, &ps)
	defer win.EndPaint(hwnd, &ps)

	size := ClientSize(uintptr(hwnd))
	width, height := int(size.Width), int(size.Height)
	if width <= 0 || height <= 0 {
		return
	}
	if o.frame == nil || o.frame.Rect.Dx() != width || o.frame.Rect.Dy() != height {
		o.frame = image.NewRGBA(image.Rect(0, 0, width, height))
		o.bgra = make([]byte, len(o.frame.Pix))
	}

	o.w.Paint(o.frame)

	// RGBA -> BGRA
	src := o.frame.Pix
	for i := 0; i < len(src); i += 4 {
		o.bgra[i] = src[i+2]
		o.bgra[i+1] = src[i+1]
		o.bgra[i+2] = src[i]
		o.bgra[i+3] = src[i+3]
	}

	// Top-down DIB (negative height) so (0,0) is top-left.
	bmi := BITMAPINFOHEADER{
		BiWidth:       int32(width),
		BiHeight:      -int32(height),
		BiPlanes:      1,
		BiBitCount:    32,
		BiCompression: BI_RGB,
	}
	bmi.BiSize = uint32(unsafe.Sizeof(bmi))

	ProcSetDIBitsToDevice.Call(
		uintptr(hdc),
		0, 0, uintptr(width), uintptr(height),
		0, 0, 0, uintptr(height),
		uintptr(unsafe.Pointer(&o.bgra[0])),
		uintptr(unsafe.Pointer(&bmi)),
		DIB_RGB_COLORS,
	)
}

// Invalidate requests a WM_PAINT for hwnd.
func Invalidate(hwnd uintptr) {
	win.InvalidateRect(win.HWND(hwnd), nil, false)
}

// RunMessageLoop pumps messages for the calling thread until WM_QUIT. It
// must run on the thread that created the overlays and installed the hook.
func RunMessageLoop() int {
	var msg win.MSG
	for {
		switch win.GetMessage(&msg, 0, 0, 0) {
		case 0:
			return int(msg.WParam)
		case -1:
			return -1
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
}

// CurrentThreadID identifies the calling thread for QuitMessageLoop.
func CurrentThreadID() uint32 {
	return windows.GetCurrentThreadId()
}

// QuitMessageLoop ends the message loop running on threadID. It may be
// called from any goroutine.
func QuitMessageLoop(threadID uint32) {
	ProcPostThreadMessageW.Call(uintptr(threadID), win.WM_QUIT, 0, 0)
}

// ShowError shows a modal error box.
func ShowError(title, text string) {
	win.MessageBox(0, utf16Ptr(text), utf16Ptr(title), win.MB_OK|win.MB_ICONERROR)
}
