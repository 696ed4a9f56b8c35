package vterm

// Performer receives the semantic events the Parser decodes from a byte
// stream. Screen implements Performer directly; a host that wants to
// intercept events instead of applying them to the default screen model
// can implement Performer itself, or wrap Handlers (whose fields are all
// optional — a nil field is silently skipped rather than panicking).
type Performer interface {
	Print(r rune)
	Execute(b byte)
	CSIDispatch(params *Params, intermediates []byte, ignore bool, final byte)
	EscDispatch(intermediates []byte, ignore bool, final byte)
	OSCDispatch(params [][]byte, bellTerminated bool)
	Hook(params *Params, intermediates []byte, ignore bool, final byte)
	Put(b byte)
	Unhook()
}

// Handlers adapts a set of optional callback functions into a Performer,
// per §6: "every dispatch slot is optional (absent slots are silently
// dropped)". Set only the slots you want to receive; an event whose
// slot is nil is dropped.
type Handlers struct {
	OnPrint       func(r rune)
	OnExecute     func(b byte)
	OnCSIDispatch func(params *Params, intermediates []byte, ignore bool, final byte)
	OnEscDispatch func(intermediates []byte, ignore bool, final byte)
	OnOSCDispatch func(params [][]byte, bellTerminated bool)
	OnHook        func(params *Params, intermediates []byte, ignore bool, final byte)
	OnPut         func(b byte)
	OnUnhook      func()
}

func (h *Handlers) Print(r rune) {
	if h.OnPrint != nil {
		h.OnPrint(r)
	}
}

func (h *Handlers) Execute(b byte) {
	if h.OnExecute != nil {
		h.OnExecute(b)
	}
}

func (h *Handlers) CSIDispatch(params *Params, intermediates []byte, ignore bool, final byte) {
	if h.OnCSIDispatch != nil {
		h.OnCSIDispatch(params, intermediates, ignore, final)
	}
}

func (h *Handlers) EscDispatch(intermediates []byte, ignore bool, final byte) {
	if h.OnEscDispatch != nil {
		h.OnEscDispatch(intermediates, ignore, final)
	}
}

func (h *Handlers) OSCDispatch(params [][]byte, bellTerminated bool) {
	if h.OnOSCDispatch != nil {
		h.OnOSCDispatch(params, bellTerminated)
	}
}

func (h *Handlers) Hook(params *Params, intermediates []byte, ignore bool, final byte) {
	if h.OnHook != nil {
		h.OnHook(params, intermediates, ignore, final)
	}
}

func (h *Handlers) Put(b byte) {
	if h.OnPut != nil {
		h.OnPut(b)
	}
}

func (h *Handlers) Unhook() {
	if h.OnUnhook != nil {
		h.OnUnhook()
	}
}
