// Package pbx maps generic pbxproj records into typed domain objects
// and owns the object graph of a project document.
package pbx

import (
	"github.com/pbx-format/go-pbx/debug"
	"github.com/pbx-format/go-pbx/kind"
)

// Object is one variant of the pbxproj object sum. Cross-object links
// are raw identifier strings; resolution is always an on-demand graph
// lookup, never an owning pointer.
type Object interface {
	// Kind reports the variant's object kind.
	Kind() kind.Kind
	// ToRecord renders the object back to a generic record, including
	// any unconsumed residue kept from construction.
	ToRecord() Record
}

type constructor func(Record, Handle) (Object, error)

// constructors is the static isa-tag dispatch table. Supporting a new
// object kind means adding a table entry.
var constructors = map[kind.Kind]constructor{
	kind.PBXBuildFile:                    newBuildFile,
	kind.PBXFileReference:                newFileReference,
	kind.PBXGroup:                        newGroup(kind.PBXGroup),
	kind.PBXVariantGroup:                 newGroup(kind.PBXVariantGroup),
	kind.XCVersionGroup:                  newGroup(kind.XCVersionGroup),
	kind.PBXProject:                      newProjectObject,
	kind.PBXNativeTarget:                 newNativeTarget,
	kind.PBXAggregateTarget:              newAggregateTarget,
	kind.PBXLegacyTarget:                 newLegacyTarget,
	kind.PBXTargetDependency:             newTargetDependency,
	kind.PBXContainerItemProxy:           newContainerItemProxy,
	kind.PBXReferenceProxy:               newReferenceProxy,
	kind.PBXBuildRule:                    newBuildRule,
	kind.PBXSourcesBuildPhase:            newBuildPhase(kind.PBXSourcesBuildPhase),
	kind.PBXFrameworksBuildPhase:         newBuildPhase(kind.PBXFrameworksBuildPhase),
	kind.PBXResourcesBuildPhase:          newBuildPhase(kind.PBXResourcesBuildPhase),
	kind.PBXHeadersBuildPhase:            newBuildPhase(kind.PBXHeadersBuildPhase),
	kind.PBXRezBuildPhase:                newBuildPhase(kind.PBXRezBuildPhase),
	kind.PBXCopyFilesBuildPhase:          newCopyFilesBuildPhase,
	kind.PBXShellScriptBuildPhase:        newShellScriptBuildPhase,
	kind.XCBuildConfiguration:            newBuildConfiguration,
	kind.XCConfigurationList:             newConfigurationList,
	kind.XCRemoteSwiftPackageReference:   newRemoteSwiftPackageReference,
	kind.XCLocalSwiftPackageReference:    newLocalSwiftPackageReference,
	kind.XCSwiftPackageProductDependency: newSwiftPackageProductDependency,
}

// FromRecord consumes rec and produces a typed object. Kinds without a
// registered constructor, including Unknown, yield a passthrough
// object retaining the raw record.
func FromRecord(rec Record, h Handle) (Object, error) {
	k, raw, err := rec.TakeKind()
	if err != nil {
		return nil, err
	}
	ctor := constructors[k]
	if ctor == nil {
		if debug.Map() {
			debug.Dump("passthrough object", raw, rec)
		}
		return &UnknownObject{RawTag: raw, Fields: rec}, nil
	}
	return ctor(rec, h)
}

// UnknownObject retains the record of any kind this package does not
// model, preserving it for round trips.
type UnknownObject struct {
	RawTag string
	Fields Record
}

func (o *UnknownObject) Kind() kind.Kind {
	return kind.FromTag(o.RawTag)
}

func (o *UnknownObject) ToRecord() Record {
	rec := o.Fields.Clone()
	rec["isa"] = kindNode(o.RawTag)
	return rec
}
