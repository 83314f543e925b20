package lending

import (
	"errors"
	"fmt"
	"strings"
)

// PositionIDSeparator separates pool id and token id in a position id
const PositionIDSeparator = "-"

// ErrInvalidPositionID position id is not "poolId-tokenId"
var ErrInvalidPositionID = errors.New("invalid position id")

// ParsePositionID split a position id into pool id and token id
func ParsePositionID(id string) (poolID, tokenID string, err error) {
	parts := strings.Split(id, PositionIDSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPositionID, id)
	}

	return parts[0], parts[1], nil
}
