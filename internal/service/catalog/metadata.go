package catalog

import (
	"fmt"
	"math/rand"
)

type randMetadata struct{}

func newRandMetadata() randMetadata {
	return randMetadata{}
}

func (randMetadata) Views() int {
	return rand.Intn(999_000) + 1_000
}

func (randMetadata) Duration() string {
	return fmt.Sprintf("%d:%02d", rand.Intn(55)+5, rand.Intn(60))
}
