package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/screa/hashbrown-miner/internal/lights"
)

// Block is the persisted block file: the dummy coinbase, the transactions
// mined with it and the pins of the LED bank, in order. Pins are physical
// header positions unless pin_numbering is "bcm".
type Block struct {
	Coinbase     string   `json:"coinbase"`
	Transactions []string `json:"txs"`
	LEDPins      []int    `json:"led_pins"`
	PinNumbering string   `json:"pin_numbering,omitempty"`
	Lights       string   `json:"lights,omitempty"`
}

// DefaultBlock is used when no block file exists
func DefaultBlock() *Block {
	return &Block{
		Coinbase:     "hashbrown coinbase",
		Transactions: []string{},
	}
}

// LoadBlock reads and decodes a block file
func LoadBlock(path string) (*Block, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBlock(content)
}

// ParseBlock decodes block file contents
func ParseBlock(content []byte) (*Block, error) {
	var b Block
	if err := json.Unmarshal(content, &b); err != nil {
		return nil, fmt.Errorf("parse block file: %w", err)
	}
	if b.Transactions == nil {
		b.Transactions = []string{}
	}
	return &b, nil
}

// Pins returns the LED pins for the gpio lights
func (b *Block) Pins() lights.Pins {
	return lights.Pins{Numbers: b.LEDPins, Numbering: b.PinNumbering}
}

// Message returns coinbase followed by every transaction
func (b *Block) Message() []byte {
	var sb strings.Builder
	sb.WriteString(b.Coinbase)
	for _, tx := range b.Transactions {
		sb.WriteString(tx)
	}
	return []byte(sb.String())
}
