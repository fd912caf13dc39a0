package yaml

import (
	"context"
	"fmt"
	"os"

	"github.com/Victor-armando18/service-fees/internal/domain"

	"gopkg.in/yaml.v3"
)

func LoadFeePack(path string) (domain.FeePack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.FeePack{}, err
	}

	var pack domain.FeePack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return domain.FeePack{}, fmt.Errorf("parse fee pack %s: %w", path, err)
	}
	for i := range pack.Fees {
		if err := pack.Fees[i].Validate(); err != nil {
			return domain.FeePack{}, err
		}
	}
	return pack, nil
}

// FeePackLoader serves the fees of a YAML fee pack.
type FeePackLoader struct {
	Path string
}

func NewFeePackLoader(path string) *FeePackLoader {
	return &FeePackLoader{Path: path}
}

func (l *FeePackLoader) Load(ctx context.Context) ([]domain.FeeRecord, error) {
	pack, err := LoadFeePack(l.Path)
	if err != nil {
		return nil, err
	}
	return pack.Fees, nil
}
