package wallet

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// DerivationPath is the internal representation of a hierarchical
// deterministic wallet path
type DerivationPath []uint32

var (
	// DefaultBaseDerivationPath is the template used when importing a mnemonic
	// without specifying any path.
	DefaultBaseDerivationPath = "m/0"

	// templateRegexp matches absolute paths ending with a non-hardened
	// numeric component. The first group is everything up to the last '/'.
	templateRegexp = regexp.MustCompile(`^(m(?:/[0-9]+'?)*/)([0-9]+)$`)
)

// ExpandDerivationPath validates the given path template and returns it with
// its last component replaced by index. The template must be in the form
// m(/<n>'?)*/<n>, otherwise ErrInvalidDerivationPath is returned.
func ExpandDerivationPath(basePath string, index int) (string, error) {
	matches := templateRegexp.FindStringSubmatch(basePath)
	if matches == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDerivationPath, basePath)
	}
	if index < 0 || uint64(index) >= hdkeychain.HardenedKeyStart {
		return "", fmt.Errorf(
			"%w: index %d out of range", ErrInvalidDerivationPath, index,
		)
	}
	return matches[1] + strconv.Itoa(index), nil
}

// ValidateDerivationPathTemplate returns an error if the given path can't be
// expanded with ExpandDerivationPath.
func ValidateDerivationPathTemplate(basePath string) error {
	_, err := ExpandDerivationPath(basePath, 0)
	return err
}

// ParseDerivationPath converts a derivation path string to the
// internal binary representation
func ParseDerivationPath(strPath string) (DerivationPath, error) {
	var path DerivationPath

	elems := strings.Split(strPath, "/")
	switch {
	case strPath == "":
		return nil, ErrNullDerivationPath

	case containsEmptyString(elems):
		return nil, ErrMalformedDerivationPath
	case len(elems) < 2:
		return nil, ErrMalformedDerivationPath

	case len(elems) > 1:
		if strings.TrimSpace(elems[0]) == "m" {
			elems = elems[1:]
		}

	default:
		return nil, ErrInvalidDerivationPath
	}

	// all remaining elems are relative, append one by one
	for _, elem := range elems {
		elem = strings.TrimSpace(elem)
		var value uint32

		if strings.HasSuffix(elem, "'") {
			value = hdkeychain.HardenedKeyStart
			elem = strings.TrimSpace(strings.TrimSuffix(elem, "'"))
		}

		// use big int for convertion
		bigval, ok := new(big.Int).SetString(elem, 0)
		if !ok {
			return nil, fmt.Errorf("invalid elem '%s' in path", elem)
		}

		max := math.MaxUint32 - value
		if bigval.Sign() < 0 || bigval.Cmp(big.NewInt(int64(max))) > 0 {
			if value == 0 {
				return nil, fmt.Errorf("elem %v must be in range [0, %d]", bigval, max)
			}
			return nil, fmt.Errorf("elem %v must be in hardened range [0, %d]", bigval, max)
		}
		value += uint32(bigval.Uint64())

		path = append(path, value)
	}

	return path, nil
}

// String converts a binary derivation path to its canonical representation
func (path DerivationPath) String() string {
	if len(path) <= 0 {
		return ""
	}

	result := "m"
	for _, component := range path {
		var hardened bool
		if component >= hdkeychain.HardenedKeyStart {
			component -= hdkeychain.HardenedKeyStart
			hardened = true
		}
		result = fmt.Sprintf("%s/%d", result, component)
		if hardened {
			result += "'"
		}
	}
	return result
}

func containsEmptyString(composedPath []string) bool {
	for _, s := range composedPath {
		if s == "" {
			return true
		}
	}
	return false
}
