package ir

import "github.com/goccy/go-yaml"

// ToYAML renders a node as YAML for inspection tooling. Field order is
// not preserved; use the pbxproj encoder for faithful output.
func ToYAML(y *Node) ([]byte, error) {
	return yaml.Marshal(ToAny(y))
}
