package reservations

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const codePrefix = "BK"

// codeSuffixRange gives 900,000 possible suffixes per day (100000-999999),
// wide enough that same-day collisions stay rare at realistic volumes.
const codeSuffixRange = 900000

// CodeGenerator produces confirmation codes. Implementations are stateless
// and make no uniqueness guarantee; uniqueness comes from the database
// constraint plus the service's bounded retry.
type CodeGenerator interface {
	Generate() (string, error)
}

type codeGenerator struct {
	now func() time.Time
}

// NewCodeGenerator returns the default generator, producing codes of the
// form BK-YYYYMMDD-NNNNNN with a 6 digit random suffix.
func NewCodeGenerator() CodeGenerator {
	return &codeGenerator{now: time.Now}
}

func (g *codeGenerator) Generate() (string, error) {
	datePart := g.now().Format("20060102")

	n, err := rand.Int(rand.Reader, big.NewInt(codeSuffixRange))
	if err != nil {
		return "", err
	}
	suffix := n.Int64() + 100000

	return fmt.Sprintf("%s-%s-%06d", codePrefix, datePart, suffix), nil
}
