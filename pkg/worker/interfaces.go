package worker

//go:generate mockgen -source=interfaces.go -destination=./worker_mock.go -package=worker

// Digester produces a fixed-width digest for arbitrary input
type Digester interface {
	Name() string
	Digest(data []byte) []byte
	BitWidth() int
}
