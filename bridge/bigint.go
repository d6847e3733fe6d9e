package bridge

import (
	"fmt"
	"math/big"
	"strings"
)

// BigInt decodes the quoted decimal strings bridge APIs use for amounts.
type BigInt struct {
	*big.Int
}

func NewBigInt(i int64) *BigInt {
	return &BigInt{big.NewInt(i)}
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	if b.Int == nil {
		b.Int = new(big.Int)
	}

	s := strings.Trim(string(data), "\"")
	_, ok := b.SetString(s, 10)
	if !ok {
		return fmt.Errorf("failed to parse big.Int from %s", s)
	}

	return nil
}

func (b *BigInt) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", b.String())), nil
}
