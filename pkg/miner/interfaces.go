package miner

//go:generate mockgen -source=interfaces.go -destination=./miner_mock.go -package=miner

// Lights is the indicator bank driven by mining progress.
// Failures are logged by the miner and never stop the search.
type Lights interface {
	TurnOn(index int) error
	TurnOff(index int) error
	ResetAll() error
	Size() int
}
