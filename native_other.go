//go:build !(cgo && libicer)

package icer

// unavailableCodec stands in for libicer when the binding is not built.
// Its Init fails, so no decode can ever reach the other methods.
type unavailableCodec struct{}

// Native returns the libicer codec. This build has no binding; build with
// cgo enabled and -tags libicer to link against libicer.
func Native() Codec {
	return unavailableCodec{}
}

func (unavailableCodec) Init() error {
	return ErrNoNativeCodec
}

func (unavailableCodec) Dimensions([]byte) (int, int, Status) {
	return 0, 0, StatusFatalError
}

func (unavailableCodec) DecompressYUV(_, _, _ []int16, _ []byte, _ Params) (int, int, Status) {
	return 0, 0, StatusFatalError
}

func (unavailableCodec) Decompress([]int16, []byte, Params) (int, int, Status) {
	return 0, 0, StatusFatalError
}
