package diff

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

type Differ struct{}

// Diff returns the RFC 7386 merge patch turning before into after, or nil when
// both encode to the same document.
func (d *Differ) Diff(before, after any) (json.RawMessage, error) {
	beforeJSON, err := json.Marshal(before)
	if err != nil {
		return nil, err
	}
	afterJSON, err := json.Marshal(after)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(beforeJSON, afterJSON)
	if err != nil {
		return nil, err
	}
	if string(patch) == "{}" {
		return nil, nil
	}
	return patch, nil
}
