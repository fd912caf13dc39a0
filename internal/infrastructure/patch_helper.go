package infrastructure

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Victor-armando18/service-fees/internal/domain"
	jsonpatch "github.com/evanphx/json-patch/v5"
)

// ErrPatchRejected marks patches that are malformed or touch server-owned fields.
var ErrPatchRejected = errors.New("order patch rejected")

// ApplyOrderPatch applies an RFC 6902 patch to order and returns the patched copy, which
// must still be a valid order. Adjustments are recomputed by the server on refresh, so
// operations reading or writing an adjustments path are rejected. The original is left
// untouched.
func ApplyOrderPatch(original domain.Order, patchData []byte) (domain.Order, error) {
	patch, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return original, fmt.Errorf("%w: decode: %v", ErrPatchRejected, err)
	}
	for i, op := range patch {
		if err := checkPatchOperation(op); err != nil {
			return original, fmt.Errorf("%w: operation %d: %v", ErrPatchRejected, i, err)
		}
	}

	originalJSON, err := json.Marshal(original)
	if err != nil {
		return original, fmt.Errorf("encode order: %w", err)
	}
	modifiedJSON, err := patch.Apply(originalJSON)
	if err != nil {
		return original, fmt.Errorf("%w: %v", ErrPatchRejected, err)
	}

	var updated domain.Order
	if err := json.Unmarshal(modifiedJSON, &updated); err != nil {
		return original, fmt.Errorf("%w: patched order does not decode: %v", ErrPatchRejected, err)
	}
	if err := checkAdjustmentsKept(original, updated); err != nil {
		return original, fmt.Errorf("%w: %v", ErrPatchRejected, err)
	}
	if err := updated.Validate(); err != nil {
		return original, err
	}
	return updated, nil
}

// checkAdjustmentsKept catches adjustments smuggled in through a parent value, such as a
// replaced item list. Fee adjustments are ignored since every refresh recomputes them;
// any other adjustment must be carried over unchanged, and new items start without one.
func checkAdjustmentsKept(original, updated domain.Order) error {
	if !sameAdjustments(original.Adjustments, updated.Adjustments) {
		return errors.New("order adjustments are managed by the fee engine")
	}
	before := make(map[string][]domain.Adjustment, len(original.Items))
	for _, item := range original.Items {
		if item != nil {
			before[item.ID] = item.Adjustments
		}
	}
	for _, item := range updated.Items {
		if item != nil && !sameAdjustments(before[item.ID], item.Adjustments) {
			return fmt.Errorf("adjustments of item %s are managed by the fee engine", item.ID)
		}
	}
	return nil
}

func sameAdjustments(a, b []domain.Adjustment) bool {
	a, b = nonFee(a), nonFee(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Type != b[i].Type || a[i].Label != b[i].Label || a[i].SourceID != b[i].SourceID ||
			a[i].Included != b[i].Included || !a[i].Amount.Equal(b[i].Amount) {
			return false
		}
	}
	return true
}

func checkPatchOperation(op jsonpatch.Operation) error {
	path, err := op.Path()
	if err != nil {
		return err
	}
	if touchesAdjustments(path) {
		return fmt.Errorf("path %s is managed by the fee engine", path)
	}
	switch op.Kind() {
	case "move", "copy":
		from, err := op.From()
		if err != nil {
			return err
		}
		if touchesAdjustments(from) {
			return fmt.Errorf("path %s is managed by the fee engine", from)
		}
	}
	return nil
}

// touchesAdjustments matches /adjustments and /items/<n>/adjustments, and anything below them.
func touchesAdjustments(path string) bool {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	switch {
	case len(segments) >= 1 && segments[0] == "adjustments":
		return true
	case len(segments) >= 3 && segments[0] == "items" && segments[2] == "adjustments":
		return true
	}
	return false
}

func nonFee(adjustments []domain.Adjustment) []domain.Adjustment {
	var out []domain.Adjustment
	for _, a := range adjustments {
		if a.Type != domain.AdjustmentTypeFee {
			out = append(out, a)
		}
	}
	return out
}
