package pbx

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/pbx-format/go-pbx/ir"
)

// PatchSettings applies an RFC 6902 JSON patch to a configuration's
// build settings. The settings are converted through the JSON form of
// the ir tree and replaced wholesale on success; a failing patch
// leaves them untouched.
func PatchSettings(cfg *BuildConfiguration, patchDoc []byte) error {
	p, err := jsonpatch.DecodePatch(patchDoc)
	if err != nil {
		return err
	}
	doc, err := ir.ToJSON(cfg.BuildSettings)
	if err != nil {
		return err
	}
	out, err := p.Apply(doc)
	if err != nil {
		return err
	}
	node, err := ir.FromJSON(out)
	if err != nil {
		return err
	}
	if node.Type != ir.ObjectType {
		return fmt.Errorf("%w: patched settings are %s, not object", ir.ErrConvert, node.Type)
	}
	cfg.BuildSettings = node
	return nil
}
