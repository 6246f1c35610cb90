// Package kind enumerates the Xcode object type tags found in pbxproj
// "isa" fields.
//
// The enumeration is closed with an [Unknown] catch-all: a tag that has
// the lexical shape of a kind but is not in the table maps to Unknown
// rather than failing, so project files written by newer Xcode versions
// still parse.
package kind

type Kind int

const (
	Unknown Kind = iota
	PBXBuildFile
	PBXFileReference
	PBXGroup
	PBXVariantGroup
	XCVersionGroup
	PBXProject
	PBXNativeTarget
	PBXAggregateTarget
	PBXLegacyTarget
	PBXTargetDependency
	PBXContainerItemProxy
	PBXReferenceProxy
	PBXBuildRule
	PBXSourcesBuildPhase
	PBXFrameworksBuildPhase
	PBXResourcesBuildPhase
	PBXHeadersBuildPhase
	PBXRezBuildPhase
	PBXCopyFilesBuildPhase
	PBXShellScriptBuildPhase
	XCBuildConfiguration
	XCConfigurationList
	XCRemoteSwiftPackageReference
	XCLocalSwiftPackageReference
	XCSwiftPackageProductDependency
)

var tags = map[string]Kind{
	"PBXBuildFile":                    PBXBuildFile,
	"PBXFileReference":                PBXFileReference,
	"PBXGroup":                        PBXGroup,
	"PBXVariantGroup":                 PBXVariantGroup,
	"XCVersionGroup":                  XCVersionGroup,
	"PBXProject":                      PBXProject,
	"PBXNativeTarget":                 PBXNativeTarget,
	"PBXAggregateTarget":              PBXAggregateTarget,
	"PBXLegacyTarget":                 PBXLegacyTarget,
	"PBXTargetDependency":             PBXTargetDependency,
	"PBXContainerItemProxy":           PBXContainerItemProxy,
	"PBXReferenceProxy":               PBXReferenceProxy,
	"PBXBuildRule":                    PBXBuildRule,
	"PBXSourcesBuildPhase":            PBXSourcesBuildPhase,
	"PBXFrameworksBuildPhase":         PBXFrameworksBuildPhase,
	"PBXResourcesBuildPhase":          PBXResourcesBuildPhase,
	"PBXHeadersBuildPhase":            PBXHeadersBuildPhase,
	"PBXRezBuildPhase":                PBXRezBuildPhase,
	"PBXCopyFilesBuildPhase":          PBXCopyFilesBuildPhase,
	"PBXShellScriptBuildPhase":        PBXShellScriptBuildPhase,
	"XCBuildConfiguration":            XCBuildConfiguration,
	"XCConfigurationList":             XCConfigurationList,
	"XCRemoteSwiftPackageReference":   XCRemoteSwiftPackageReference,
	"XCLocalSwiftPackageReference":    XCLocalSwiftPackageReference,
	"XCSwiftPackageProductDependency": XCSwiftPackageProductDependency,
}

var names = func() map[Kind]string {
	m := make(map[Kind]string, len(tags))
	for tag, k := range tags {
		m[k] = tag
	}
	return m
}()

// FromTag maps a raw isa tag to a Kind. Tags not in the table map to
// Unknown, never an error.
func FromTag(tag string) Kind {
	if k, ok := tags[tag]; ok {
		return k
	}
	return Unknown
}

// Tag returns the pbxproj spelling of k, or "" for Unknown: callers that
// hold an Unknown kind must keep the raw tag themselves.
func (k Kind) Tag() string {
	return names[k]
}

func (k Kind) String() string {
	if k == Unknown {
		return "Unknown"
	}
	return names[k]
}

// IsTag reports whether s has the lexical shape of a kind tag: a "PBX"
// or "XC" prefix followed by alphanumerics. The tokenizer uses this to
// classify bare words; membership in the known table does not matter at
// that layer.
func IsTag(s string) bool {
	rest := ""
	switch {
	case len(s) > 3 && s[:3] == "PBX":
		rest = s[3:]
	case len(s) > 2 && s[:2] == "XC":
		rest = s[2:]
	default:
		return false
	}
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			continue
		}
		return false
	}
	return true
}
