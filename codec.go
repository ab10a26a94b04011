package icer

import (
	"sync"
	"sync/atomic"
)

// Params are the reconstruction parameters passed to the codec on every
// decompress call. They mirror the native ABI, hence the uint8 counts.
type Params struct {
	Stages   uint8
	Filter   Filter
	Segments uint8
}

// Codec is the boundary to the engine that performs the actual wavelet
// and bit-plane reconstruction.
//
// Dimensions parses only the stream header. The decompress entry points
// fill the supplied planes, whose length is the buffer capacity in
// samples, and report the dimensions actually reconstructed. Buffer
// contents are unspecified whenever the returned status is not StatusOK.
// Decompress is the single-plane entry point and never sees chroma
// buffers.
type Codec interface {
	Init() error
	Dimensions(data []byte) (width, height int, st Status)
	DecompressYUV(y, u, v []int16, data []byte, p Params) (width, height int, st Status)
	Decompress(plane []int16, data []byte, p Params) (width, height int, st Status)
}

// Limits are the codec's upper bounds on reconstruction parameters.
type Limits struct {
	MaxStages   uint8
	MaxSegments uint8
}

// Limiter is implemented by codecs that publish their parameter bounds.
// When available, out-of-range requests are rejected before any buffer is
// allocated or the codec is called.
type Limiter interface {
	Limits() Limits
}

// State is the lifecycle state of a Runtime.
type State int32

const (
	StateUninitialized State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Runtime owns the one-time initialization of a codec. A Runtime moves
// from StateUninitialized to either StateReady or StateFailed on the
// first call to Init and never leaves that state; there is no teardown.
type Runtime struct {
	codec Codec
	once  sync.Once
	state atomic.Int32
	dec   *Decoder
	err   error
}

// NewRuntime wraps c. Nothing is initialized until Init is called.
func NewRuntime(c Codec) *Runtime {
	return &Runtime{codec: c}
}

// State reports the lifecycle state. It is safe to call concurrently
// with Init.
func (r *Runtime) State() State {
	return State(r.state.Load())
}

// Init runs the codec's initialization exactly once and returns the
// decoder bound to it. Later calls return the same decoder, or the same
// error if initialization failed. Callers that issue concurrent decodes
// should call Init once before fanning out.
func (r *Runtime) Init() (*Decoder, error) {
	r.once.Do(func() {
		if r.codec == nil {
			r.err = &Error{Stage: StageInit, Status: StatusFatalError, Err: ErrNilCodec}
			r.state.Store(int32(StateFailed))
			return
		}
		if err := r.codec.Init(); err != nil {
			r.err = initError(err)
			r.state.Store(int32(StateFailed))
			return
		}
		r.dec = &Decoder{codec: r.codec}
		r.state.Store(int32(StateReady))
	})
	return r.dec, r.err
}

func initError(err error) error {
	if st, ok := err.(Status); ok {
		return statusError(StageInit, st)
	}
	return &Error{Stage: StageInit, Status: StatusFatalError, Err: err}
}

var defaultRuntime = NewRuntime(Native())

// Default returns the decoder for the native libicer codec, initializing
// the library on first use.
func Default() (*Decoder, error) {
	return defaultRuntime.Init()
}
