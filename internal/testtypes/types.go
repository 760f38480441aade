// Package testtypes provides fixture types for tests.
package testtypes

// InterfaceA is a service with an error-returning Close method.
type InterfaceA interface {
	A()
	Close() error
}

// InterfaceB is a service with a plain Close method.
type InterfaceB interface {
	B()
	Close()
}

// InterfaceC is a service with no close capability.
type InterfaceC interface {
	C()
}

// StructA counts how many times it has been closed.
type StructA struct {
	Closes int
}

func (a *StructA) A() {}

func (a *StructA) Close() error {
	a.Closes++
	return nil
}

// StructB counts how many times it has been closed.
type StructB struct {
	A      InterfaceA
	Closes int
}

func (b *StructB) B() {}

func (b *StructB) Close() {
	b.Closes++
}

// StructC has no close capability.
type StructC struct{}

func (c *StructC) C() {}

func NewInterfaceA() InterfaceA {
	return &StructA{}
}

func NewInterfaceB(a InterfaceA) InterfaceB {
	return &StructB{A: a}
}

func NewInterfaceC() InterfaceC {
	return &StructC{}
}
