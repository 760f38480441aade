package di

// Closer is the capability the container looks for when disposing an
// instance whose provider has no explicit dispose function.
//
// Either of these Close method signatures is recognized:
//
//	Close() error
//	Close()
//
// The container calls Close at most once per disposal event: when the
// instance is evicted by an override change, a scope clear, or a full
// [Container.Dispose]. An explicit [WithDisposeFunc] on the provider takes
// precedence and suppresses the capability check entirely.
type Closer interface {
	Close() error
}

// closerFor returns val's close capability, or nil if val has none.
func closerFor(val any) Closer {
	switch c := val.(type) {
	case Closer:
		return c
	case closerNoError:
		return noErrorCloser{c}
	default:
		return nil
	}
}

type closerNoError interface {
	Close()
}

type noErrorCloser struct {
	c closerNoError
}

func (w noErrorCloser) Close() error {
	w.c.Close()
	return nil
}
