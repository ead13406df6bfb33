// Package options implements the generic functional-option machinery used
// by chroma's configurable entry points, such as snapshot encoding:
//
//	func WithCompression(ct format.CompressionType) Option {
//	    return options.New(func(cfg *encoderConfig) error {
//	        if !ct.Valid() {
//	            return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompressionType, uint8(ct))
//	        }
//	        cfg.compression = ct
//
//	        return nil
//	    })
//	}
//
// Option values are opaque to callers; packages expose typed aliases like
// snapshot.Option and apply them with Apply at the start of the operation,
// so an invalid option fails the whole call before any work happens.
package options

// Option configures a target of type T. Implementations are created with
// New or NoError; the apply method is unexported so all options funnel
// through this package.
type Option[T any] interface {
	apply(T) error
}

// Func is the function-backed Option implementation returned by New and
// NoError.
type Func[T any] struct {
	applyFunc func(T) error
}

// apply implements the Option interface.
func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an Option from a function that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply applies opts to target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError creates an Option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}
