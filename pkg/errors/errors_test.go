package errors

import (
	"errors"
	"testing"
	"time"
)

func TestWidgetErrorString(t *testing.T) {
	err := &WidgetError{
		Op:   "dropdown.LoadSettingsFile",
		Kind: KindConfig,
		Err:  errors.New("bad yaml"),
	}
	got := err.Error()
	want := "dropdown.LoadSettingsFile [config]: bad yaml"
	if got != want {
		t.Errorf("WidgetError.Error() = %q, want %q", got, want)
	}
}

func TestWidgetErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &WidgetError{Op: "op", Kind: KindUnknown, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should reach the wrapped error")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindUpdate, "update"},
		{KindView, "view"},
		{KindTransport, "transport"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:    "program.Dispatch",
		Value: "test panic",
	}
	if got, want := err.Error(), "panic in program.Dispatch: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

// captureHandler records reported errors for assertions.
type captureHandler struct {
	errs   []*WidgetError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *WidgetError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError)  { h.panics = append(h.panics, err) }

func TestReportUsesGlobalHandler(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&WidgetError{Op: "op", Kind: KindTransport, Err: errors.New("x")})
	if len(h.errs) != 1 {
		t.Fatalf("handler received %d errors, want 1", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("Report should stamp a zero Timestamp")
	}
}

func TestReportNilIsNoop(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(nil)
	ReportPanic(nil)
	if len(h.errs) != 0 || len(h.panics) != 0 {
		t.Error("nil reports should not reach the handler")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("boom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("handler received %d panics, want 1", len(h.panics))
	}
	p := h.panics[0]
	if p.Op != "test.op" || p.Value != "boom" {
		t.Errorf("unexpected panic report: %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("DefaultHandler = %T, want *LogHandler", DefaultHandler)
	}
}
