package lights

// None accepts every call and drives nothing
type None struct {
	size int
}

// NewNone creates a silent light bank
func NewNone(size int) *None {
	return &None{size: size}
}

func (n *None) TurnOn(index int) error  { return checkIndex(index, n.size) }
func (n *None) TurnOff(index int) error { return checkIndex(index, n.size) }
func (n *None) ResetAll() error         { return nil }
func (n *None) Size() int               { return n.size }
func (n *None) Close() error            { return nil }
