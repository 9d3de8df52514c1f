// Package chem provides the molecule tools exposed to chemistry agents: a
// uniqueness check against a catalog of known compounds and a deterministic
// price quote. They mirror the tool surface of the experiment's stdio tool
// servers so that agents can be exercised without spawning server processes.
package chem

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/amarathe84/ChARGe/providers/tool"
)

// knownMolecules is the catalog of compounds the uniqueness check considers
// already known. SMILES strings are stored in their common written form.
var knownMolecules = map[string]string{
	"C":                "methane",
	"O":                "water",
	"CCO":              "ethanol",
	"CC(=O)O":          "acetic acid",
	"CC(=O)C":          "acetone",
	"c1ccccc1":         "benzene",
	"Cc1ccccc1":        "toluene",
	"CC(=O)Oc1ccccc1C(=O)O": "aspirin",
	"CN1C=NC2=C1C(=O)N(C(=O)N2C)C": "caffeine",
}

// smilesAtoms lists the atom symbols accepted by the naive validity check.
// Two-character symbols must be checked before their one-character prefixes.
var smilesAtoms = []string{"Cl", "Br", "C", "N", "O", "P", "S", "F", "I", "B", "H",
	"c", "n", "o", "p", "s", "b"}

// UniqueInput is the argument accepted by the uniqueness check tool.
type UniqueInput struct {
	SMILES string `json:"smiles" jsonschema:"description=The molecule in SMILES notation,required"`
}

// UniqueOutput reports whether a molecule is chemically plausible and absent
// from the known-compound catalog.
type UniqueOutput struct {
	SMILES string `json:"smiles"`
	Valid  bool   `json:"valid"`
	Unique bool   `json:"unique"`
	Reason string `json:"reason,omitempty"`
}

// PriceInput is the argument accepted by the pricing tool.
type PriceInput struct {
	SMILES string `json:"smiles" jsonschema:"description=The molecule in SMILES notation,required"`
}

// PriceOutput carries a deterministic catalog price quote for a molecule.
type PriceOutput struct {
	SMILES   string  `json:"smiles"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

// NewCheckUniqueTool returns the tool that validates a SMILES string and
// checks it against the known-compound catalog.
func NewCheckUniqueTool() *tool.Tool[UniqueInput, UniqueOutput] {
	return tool.NewTool("check_molecule_unique", CheckUnique,
		tool.WithDescription("Validates a molecule given in SMILES notation and reports whether it is unique (not present in the catalog of known compounds)."),
	)
}

// NewPriceTool returns the tool that quotes a deterministic USD price for a
// molecule.
func NewPriceTool() *tool.Tool[PriceInput, PriceOutput] {
	return tool.NewTool("get_molecule_price", QuotePrice,
		tool.WithDescription("Quotes the catalog price of a molecule (SMILES notation) in USD. Prices are stable across calls for the same molecule."),
	)
}

// Tools returns the full chemistry tool surface, ready for catalog
// registration.
func Tools() []tool.GenericTool {
	return []tool.GenericTool{NewCheckUniqueTool(), NewPriceTool()}
}

// CheckUnique validates the SMILES string and looks it up in the
// known-compound catalog. Invalid molecules are reported as non-unique with
// the validation failure in Reason.
func CheckUnique(_ context.Context, in UniqueInput) (UniqueOutput, error) {
	smiles := strings.TrimSpace(in.SMILES)
	if smiles == "" {
		return UniqueOutput{}, fmt.Errorf("smiles cannot be empty")
	}

	if err := validateSMILES(smiles); err != nil {
		return UniqueOutput{SMILES: smiles, Valid: false, Unique: false, Reason: err.Error()}, nil
	}

	if name, known := knownMolecules[smiles]; known {
		return UniqueOutput{SMILES: smiles, Valid: true, Unique: false, Reason: "known compound: " + name}, nil
	}

	return UniqueOutput{SMILES: smiles, Valid: true, Unique: true}, nil
}

// QuotePrice returns a deterministic price in the $1.00-$49.99 range derived
// from the SMILES string, so repeated quotes for the same molecule agree.
func QuotePrice(_ context.Context, in PriceInput) (PriceOutput, error) {
	smiles := strings.TrimSpace(in.SMILES)
	if smiles == "" {
		return PriceOutput{}, fmt.Errorf("smiles cannot be empty")
	}

	h := fnv.New32a()
	h.Write([]byte(smiles))
	cents := 100 + h.Sum32()%4900

	return PriceOutput{
		SMILES:   smiles,
		Price:    float64(cents) / 100,
		Currency: "USD",
	}, nil
}

// validateSMILES performs a syntactic plausibility check: recognised atom
// symbols and bond/branch/ring characters only, balanced parentheses and
// brackets, and paired ring-closure digits. It is not a full SMILES parser.
func validateSMILES(smiles string) error {
	parens := 0
	brackets := 0
	ringClosures := map[byte]int{}

	for i := 0; i < len(smiles); {
		c := smiles[i]
		switch {
		case c == '(':
			parens++
			i++
		case c == ')':
			parens--
			if parens < 0 {
				return fmt.Errorf("unbalanced parentheses")
			}
			i++
		case c == '[':
			brackets++
			i++
		case c == ']':
			brackets--
			if brackets < 0 {
				return fmt.Errorf("unbalanced brackets")
			}
			i++
		case c >= '0' && c <= '9':
			ringClosures[c]++
			i++
		case c == '=' || c == '#' || c == '-' || c == '+' || c == '/' || c == '\\' || c == '@' || c == '%':
			i++
		default:
			matched := false
			for _, atom := range smilesAtoms {
				if strings.HasPrefix(smiles[i:], atom) {
					i += len(atom)
					matched = true
					break
				}
			}
			if !matched {
				return fmt.Errorf("unrecognised symbol %q at position %d", string(c), i)
			}
		}
	}

	if parens != 0 {
		return fmt.Errorf("unbalanced parentheses")
	}
	if brackets != 0 {
		return fmt.Errorf("unbalanced brackets")
	}
	for digit, count := range ringClosures {
		if count%2 != 0 {
			return fmt.Errorf("unclosed ring bond %q", string(digit))
		}
	}

	return nil
}
