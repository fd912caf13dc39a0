package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/Victor-armando18/service-fees/internal/infrastructure/yaml"
	"github.com/Victor-armando18/service-fees/internal/interfaces"
)

// NewPathFeeLoader picks the YAML or JSON loader from the file extension.
func NewPathFeeLoader(path string) interfaces.FeeLoader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.NewFeePackLoader(path)
	default:
		return NewFileFeeLoader(path)
	}
}

// FileFeeLoader reads fee records from a JSON file. The file holds either a fee pack
// object or a bare array of fees.
type FileFeeLoader struct {
	Path string
}

func NewFileFeeLoader(path string) interfaces.FeeLoader {
	return &FileFeeLoader{Path: path}
}

func (l *FileFeeLoader) Load(ctx context.Context) ([]domain.FeeRecord, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fee file %s: %w", l.Path, err)
	}

	var fees []domain.FeeRecord
	if err := json.Unmarshal(data, &fees); err != nil {
		var pack domain.FeePack
		if packErr := json.Unmarshal(data, &pack); packErr != nil {
			return nil, fmt.Errorf("failed to unmarshal fee file %s: %w", l.Path, err)
		}
		fees = pack.Fees
	}

	for i := range fees {
		if err := fees[i].Validate(); err != nil {
			return nil, err
		}
	}
	return fees, nil
}
